package content

import "github.com/abhisek/promptascent/internal/llm"

// itemProperties is the schema fragment shared by every generated item.
func itemProperties(extra map[string]any, required []any) map[string]any {
	props := map[string]any{
		"id": map[string]any{
			"type":        "string",
			"description": "Stable identifier, unique within the lesson",
		},
		"title": map[string]any{
			"type":        "string",
			"description": "Short display label (2-6 words)",
		},
		"points_awarded": map[string]any{
			"type":        "integer",
			"minimum":     0,
			"description": "Points for a correct first attempt",
		},
		"points_for_incorrect": map[string]any{
			"type":        "integer",
			"minimum":     0,
			"description": "Always 0",
		},
	}
	for k, v := range extra {
		props[k] = v
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             append([]any{"id", "title", "points_awarded", "points_for_incorrect"}, required...),
		"additionalProperties": false,
	}
}

// LessonSchema defines the JSON schema for generated lessons.
var LessonSchema = &llm.Schema{
	Name:        "prompt-lesson",
	Description: "A prompt engineering lesson composed of snippets, multiple-choice questions, free-response questions, and prompting tasks",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":          map[string]any{"type": "string"},
			"title":       map[string]any{"type": "string"},
			"description": map[string]any{"type": "string"},
			"items": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type": "string",
							"enum": []any{"snippet", "multiple_choice", "free_response", "prompting_task"},
						},
						"snippet": itemProperties(map[string]any{
							"content": map[string]any{
								"type":        "string",
								"description": "Informational text, 2-6 sentences",
							},
						}, []any{"content"}),
						"multiple_choice": itemProperties(map[string]any{
							"question": map[string]any{"type": "string"},
							"options": map[string]any{
								"type":     "array",
								"items":    map[string]any{"type": "string"},
								"minItems": MinOptions,
								"maxItems": MaxOptions,
							},
							"correct_option_index": map[string]any{"type": "integer", "minimum": 0},
						}, []any{"question", "options", "correct_option_index"}),
						"free_response": itemProperties(map[string]any{
							"question":        map[string]any{"type": "string"},
							"expected_answer": map[string]any{"type": "string"},
						}, []any{"question", "expected_answer"}),
						"prompting_task": itemProperties(map[string]any{
							"task_description":    map[string]any{"type": "string"},
							"evaluation_guidance": map[string]any{"type": "string"},
						}, []any{"task_description", "evaluation_guidance"}),
					},
					"required":             []any{"type"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"id", "title", "description", "items"},
		"additionalProperties": false,
	},
}
