package content

// ItemKind identifies the concrete type of a lesson item.
type ItemKind string

const (
	KindSnippet        ItemKind = "snippet"
	KindMultipleChoice ItemKind = "multiple_choice"
	KindFreeResponse   ItemKind = "free_response"
	KindPromptingTask  ItemKind = "prompting_task"
)

// IsQuestion reports whether the kind requires a submitted answer and a
// verdict. Snippets are acknowledged, not answered.
func (k ItemKind) IsQuestion() bool {
	return k == KindMultipleChoice || k == KindFreeResponse || k == KindPromptingTask
}

// ItemCore holds the fields every item variant carries.
type ItemCore struct {
	// ID is stable and unique within a lesson.
	ID string

	// Title is the display label.
	Title string

	// Points is the base award for a correct (or acknowledged) first attempt.
	Points int

	// PointsForIncorrect is part of the content contract but is never
	// applied in scoring: incorrect attempts award zero and retries decay
	// from Points. Kept so generated and stored lessons round-trip intact.
	PointsForIncorrect int
}

// Item is the closed union of lesson item variants. Only the four types in
// this package implement it; code consuming items type-switches over
// *Snippet, *MultipleChoice, *FreeResponse, and *PromptingTask and treats
// any other case as a programming error.
type Item interface {
	Core() ItemCore
	Kind() ItemKind

	// sealed prevents implementations outside this package.
	sealed()
}

// Snippet is an informational item the learner reads and acknowledges.
type Snippet struct {
	ItemCore
	Content string
}

// MultipleChoice poses a question with 2-5 options, one of them correct.
type MultipleChoice struct {
	ItemCore
	Question      string
	Options       []string
	CorrectOption int // index into Options
}

// FreeResponse poses an open question judged against an expected answer
// by the validation oracle.
type FreeResponse struct {
	ItemCore
	Question       string
	ExpectedAnswer string
}

// PromptingTask asks the learner to author a prompt, evaluated against
// guidance by the evaluation oracle.
type PromptingTask struct {
	ItemCore
	TaskDescription    string
	EvaluationGuidance string
}

func (c ItemCore) Core() ItemCore { return c }

func (*Snippet) Kind() ItemKind        { return KindSnippet }
func (*MultipleChoice) Kind() ItemKind { return KindMultipleChoice }
func (*FreeResponse) Kind() ItemKind   { return KindFreeResponse }
func (*PromptingTask) Kind() ItemKind  { return KindPromptingTask }

func (*Snippet) sealed()        {}
func (*MultipleChoice) sealed() {}
func (*FreeResponse) sealed()   {}
func (*PromptingTask) sealed()  {}
