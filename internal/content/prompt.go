package content

import (
	"fmt"
	"strings"
)

const generatorSystemPrompt = `You are a curriculum author for an interactive prompt engineering course. You write short, practical lessons that mix explanation with hands-on practice. Learners range from beginners to working engineers.`

func buildGeneratorUserMessage(input GenerateInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n", input.Topic))
	if input.Audience != "" {
		b.WriteString(fmt.Sprintf("Audience: %s\n", input.Audience))
	}
	b.WriteString(fmt.Sprintf("Item count: %d\n", input.ItemCount))

	b.WriteString(`
Instructions:
Create one lesson on the topic above with exactly the requested number of items.
1. Open with an informational snippet introducing the concept.
2. Mix the remaining items: multiple-choice questions checking understanding,
   free-response questions with a clear expected answer, and at least one
   prompting task where the learner writes a prompt themselves.
3. Multiple-choice questions have 2-5 options and exactly one correct option.
4. Free-response expected answers are one or two sentences, concrete enough
   to judge a learner's answer against.
5. Prompting tasks include evaluation guidance: the criteria a good prompt
   for the task must meet.
6. Award 2-3 points for snippets, 5-10 for questions, 10-15 for prompting
   tasks. Set points_for_incorrect to 0 on every item.
7. Give every item a unique id like "item-1", "item-2", ... Never reuse an id.`)

	return b.String()
}
