package oracle

import (
	"fmt"
	"strings"
)

const validateSystemPrompt = `You are grading short answers in a course that teaches prompt engineering.

Judge whether the learner's answer matches the expected answer in meaning. Accept paraphrases, different word order, and minor spelling mistakes. Reject answers that miss the key idea or state the opposite. Do not reward length.

Write feedback directly to the learner in one or two sentences. If the answer is wrong, say what the key idea was without quoting the expected answer verbatim.`

const evaluateSystemPrompt = `You are scoring a prompt written by a learner in a course that teaches prompt engineering.

Score the prompt from 0 to 100 against the evaluation guidance. A prompt passes when it would reliably get the described result from a capable language model. Reward clarity, specificity, and constraints the task calls for; penalize vagueness and missing requirements. A score of 70 or above passes.

Explain the score in two or three sentences addressed to the learner, naming the single most useful improvement.`

func buildValidateMessage(in ValidationInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n\n", in.Question)
	fmt.Fprintf(&b, "Expected answer: %s\n\n", in.ExpectedAnswer)
	fmt.Fprintf(&b, "Learner's answer: %s\n", in.UserAnswer)
	return b.String()
}

func buildEvaluateMessage(in EvaluationInput) string {
	var b strings.Builder
	if in.Context != "" {
		fmt.Fprintf(&b, "Task context: %s\n\n", in.Context)
	}
	fmt.Fprintf(&b, "Evaluation guidance: %s\n\n", in.Guidance)
	fmt.Fprintf(&b, "Learner's prompt:\n%s\n", in.Prompt)
	return b.String()
}
