package oracle

import "github.com/abhisek/promptascent/internal/llm"

// verdictSchema is the structured output contract for free-response
// validation.
var verdictSchema = &llm.Schema{
	Name:        "answer-verdict",
	Description: "Correctness judgment for a learner's free-response answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"is_valid": map[string]any{
				"type":        "boolean",
				"description": "True if the answer matches the expected answer in meaning",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "One or two sentences for the learner, encouraging and specific",
			},
		},
		"required":             []string{"is_valid", "feedback"},
		"additionalProperties": false,
	},
}

// evaluationSchema is the structured output contract for prompt scoring.
var evaluationSchema = &llm.Schema{
	Name:        "prompt-evaluation",
	Description: "Quality score for a learner-authored prompt",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "Overall prompt quality from 0 to 100",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Short explanation of the score with one concrete improvement",
			},
			"is_correct": map[string]any{
				"type":        "boolean",
				"description": "True if the prompt satisfies the evaluation guidance",
			},
		},
		"required":             []string{"score", "explanation", "is_correct"},
		"additionalProperties": false,
	},
}
