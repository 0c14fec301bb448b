package lesson

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/promptascent/internal/content"
	"github.com/abhisek/promptascent/internal/oracle"
	"github.com/abhisek/promptascent/internal/points"
	"github.com/abhisek/promptascent/internal/progress"
	"github.com/abhisek/promptascent/internal/router"
	"github.com/abhisek/promptascent/internal/screen"
	"github.com/abhisek/promptascent/internal/screens/summary"
	"github.com/abhisek/promptascent/internal/session"
	"github.com/abhisek/promptascent/internal/store"
	"github.com/abhisek/promptascent/internal/ui/components"
	"github.com/abhisek/promptascent/internal/ui/layout"
)

// uiState is the fine-grained interaction state within a stage.
type uiState int

const (
	stateAnswering uiState = iota
	stateWaiting           // oracle verdict in flight, controls disabled
	stateFeedback          // verdict shown, any key continues
	stateStageDone         // stage interstitial between stages
	stateError
)

// run is the method set shared by ordinary and challenge stage runs.
type run interface {
	Token() string
	Matches(token string) bool
	Phase() session.Phase
	Points() int
	Started() time.Time
	Tracker() *session.Tracker
	Current() *session.QueuedItem
	Remaining() int
	Submitted() bool
	Submit(verdict bool) (int, error)
	SubmitOracleError() error
	Advance() error
	IsComplete() bool
	Summarize() session.Summary
}

// feedbackState holds what the verdict overlay displays.
type feedbackState struct {
	verdict      bool
	fromErr      bool
	text         string
	awarded      int
	score        int
	attemptsLeft int
}

// Screen drives one lesson from first item to summary. Staged lessons run
// stage by stage; flat lessons run as a single stage whose id is the
// lesson id.
type Screen struct {
	deps   Deps
	lesson *content.Lesson
	stages []content.Stage

	stageIdx  int
	run       run
	lessonRun *session.LessonRun // set when the active run allows snippets

	state    uiState
	feedback feedbackState
	results  []StageResult
	awards   []points.BadgeAward
	started  time.Time

	mc     components.MultiChoice
	input  components.TextInput
	editor components.PromptEditor

	width       int
	height      int
	quitConfirm bool
	errMsg      string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.EscHandler = (*Screen)(nil)

// New creates the screen for a lesson. Flat lessons are normalized to a
// single stage so the stage loop handles both shapes.
func New(l *content.Lesson, deps Deps) *Screen {
	stages := l.Stages
	if !l.Staged() {
		stages = []content.Stage{{ID: l.ID, Title: l.Title, Items: l.Items}}
	}
	return &Screen{
		deps:    deps,
		lesson:  l,
		stages:  stages,
		started: time.Now(),
	}
}

func (s *Screen) Init() tea.Cmd {
	s.deps.Points.ResetRun()
	return s.startStage(0)
}

func (s *Screen) Title() string {
	if len(s.stages) > 1 {
		return fmt.Sprintf("%s (%d/%d)", s.lesson.Title, s.stageIdx+1, len(s.stages))
	}
	return s.lesson.Title
}

// startStage builds the run for stage i and prepares the first item.
func (s *Screen) startStage(i int) tea.Cmd {
	s.stageIdx = i
	st := s.stages[i]

	if st.Challenge {
		cr, err := session.NewChallengeRun(s.lesson.ID, st.ID, st.Items)
		if err != nil {
			s.errMsg = err.Error()
			s.state = stateError
			return nil
		}
		s.run = cr
		s.lessonRun = nil
	} else {
		lr := session.NewLessonRun(s.lesson.ID, st.Items)
		s.run = lr
		s.lessonRun = lr
	}

	_ = s.deps.Events.AppendRun(context.Background(), store.RunEventData{
		RunID:      s.run.Token(),
		UserID:     s.deps.UserID,
		LessonID:   s.lesson.ID,
		Action:     store.RunActionStart,
		ItemsTotal: s.run.Tracker().Len(),
	})

	// A stage with no items is already complete.
	if s.run.IsComplete() {
		s.state = stateWaiting
		return s.finishStage()
	}

	s.state = stateAnswering
	return s.setupItem()
}

// setupItem configures the input component for the current queue item.
func (s *Screen) setupItem() tea.Cmd {
	cur := s.run.Current()
	if cur == nil {
		return nil
	}
	switch item := cur.Item.(type) {
	case *content.MultipleChoice:
		s.mc = components.NewMultiChoice(item.Question, item.Options, item.CorrectOption)
		return nil
	case *content.FreeResponse:
		s.input = components.NewTextInput("Type your answer...", 300)
		return s.input.Init()
	case *content.PromptingTask:
		s.editor = components.NewPromptEditor("Write your prompt...", s.editorWidth(), 8)
		return s.editor.Init()
	}
	return nil
}

func (s *Screen) editorWidth() int {
	w := s.width - 12
	if w < 40 {
		w = 40
	}
	return w
}

// HandleEsc intercepts Esc so an active run asks before being abandoned.
func (s *Screen) HandleEsc() (bool, tea.Cmd) {
	if s.state == stateError || s.state == stateStageDone {
		return false, nil
	}
	s.quitConfirm = !s.quitConfirm
	return true, nil
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave lesson"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch s.state {
	case stateWaiting:
		return []layout.KeyHint{{Key: "...", Description: "Checking your answer"}}
	case stateFeedback:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	case stateStageDone:
		return []layout.KeyHint{{Key: "Enter", Description: "Next stage"}}
	case stateError:
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}

	cur := s.run.Current()
	if cur == nil {
		return nil
	}
	switch cur.Item.(type) {
	case *content.Snippet:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Got it"},
			{Key: "Esc", Description: "Leave"},
		}
	case *content.MultipleChoice:
		return []layout.KeyHint{
			{Key: "↑↓/A-E", Description: "Choose"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Leave"},
		}
	case *content.PromptingTask:
		return []layout.KeyHint{
			{Key: "Ctrl+S", Description: "Submit prompt"},
			{Key: "Esc", Description: "Leave"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Leave"},
		}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.editor.Resize(s.editorWidth(), 8)
		return s, nil

	case verdictMsg:
		return s.handleVerdict(msg)

	case stageFinishedMsg:
		return s.handleStageFinished(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardToComponent(msg)
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N":
			s.quitConfirm = false
		}
		return s, nil
	}

	switch s.state {
	case stateError:
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case stateWaiting:
		// Verdict in flight; controls stay disabled.
		return s, nil

	case stateFeedback:
		return s.advanceItem()

	case stateStageDone:
		if key == "enter" {
			return s, s.startStage(s.stageIdx + 1)
		}
		return s, nil
	}

	// Answering.
	cur := s.run.Current()
	if cur == nil {
		return s, nil
	}

	switch item := cur.Item.(type) {
	case *content.Snippet:
		if key == "enter" {
			return s.acknowledgeSnippet(cur)
		}
		return s, nil

	case *content.MultipleChoice:
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		if s.mc.Submitted {
			return s.commitVerdict(cur, s.mc.IsCorrect(), "", 0, false)
		}
		return s, cmd

	case *content.FreeResponse:
		if key == "enter" {
			answer := s.input.Value()
			if answer == "" {
				return s, nil
			}
			s.state = stateWaiting
			return s, s.validateAnswer(cur, item, answer)
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case *content.PromptingTask:
		if key == "ctrl+s" {
			prompt := s.editor.Value()
			if prompt == "" {
				return s, nil
			}
			s.state = stateWaiting
			return s, s.evaluatePrompt(cur, item, prompt)
		}
		var cmd tea.Cmd
		s.editor, cmd = s.editor.Update(msg)
		return s, cmd
	}

	return s, nil
}

// forwardToComponent delivers non-key messages (cursor blinks) to the
// active input component.
func (s *Screen) forwardToComponent(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.state != stateAnswering || s.run == nil {
		return s, nil
	}
	cur := s.run.Current()
	if cur == nil {
		return s, nil
	}
	var cmd tea.Cmd
	switch cur.Item.(type) {
	case *content.FreeResponse:
		s.input, cmd = s.input.Update(msg)
	case *content.PromptingTask:
		s.editor, cmd = s.editor.Update(msg)
	}
	return s, cmd
}

// validateAnswer asks the oracle to judge a free-response answer.
func (s *Screen) validateAnswer(cur *session.QueuedItem, item *content.FreeResponse, answer string) tea.Cmd {
	token := s.run.Token()
	key := cur.Key
	orc := s.deps.Oracle
	return func() tea.Msg {
		res, err := orc.ValidateAnswer(context.Background(), oracle.ValidationInput{
			Question:       item.Question,
			ExpectedAnswer: item.ExpectedAnswer,
			UserAnswer:     answer,
		})
		if err != nil {
			return verdictMsg{Token: token, ItemKey: key, OracleErr: true}
		}
		return verdictMsg{Token: token, ItemKey: key, Verdict: res.IsValid, Feedback: res.Feedback}
	}
}

// evaluatePrompt asks the oracle to score an authored prompt.
func (s *Screen) evaluatePrompt(cur *session.QueuedItem, item *content.PromptingTask, prompt string) tea.Cmd {
	token := s.run.Token()
	key := cur.Key
	orc := s.deps.Oracle
	return func() tea.Msg {
		res, err := orc.EvaluatePrompt(context.Background(), oracle.EvaluationInput{
			Prompt:   prompt,
			Context:  item.TaskDescription,
			Guidance: item.EvaluationGuidance,
		})
		if err != nil {
			return verdictMsg{Token: token, ItemKey: key, OracleErr: true}
		}
		return verdictMsg{
			Token:    token,
			ItemKey:  key,
			Verdict:  res.IsCorrect,
			Feedback: res.Explanation,
			Score:    res.Score,
		}
	}
}

func (s *Screen) handleVerdict(msg verdictMsg) (screen.Screen, tea.Cmd) {
	// A verdict for a run that was abandoned or already advanced past the
	// item is stale; drop it.
	if s.run == nil || !s.run.Matches(msg.Token) {
		return s, nil
	}
	cur := s.run.Current()
	if cur == nil || cur.Key != msg.ItemKey || s.run.Submitted() {
		return s, nil
	}
	return s.commitVerdict(cur, msg.Verdict, msg.Feedback, msg.Score, msg.OracleErr)
}

// commitVerdict records the verdict on the run, persists the attempt, and
// shows feedback.
func (s *Screen) commitVerdict(cur *session.QueuedItem, verdict bool, feedback string, score int, fromErr bool) (screen.Screen, tea.Cmd) {
	var awarded int
	if fromErr {
		verdict = false
		if err := s.run.SubmitOracleError(); err != nil {
			s.errMsg = err.Error()
			s.state = stateError
			return s, nil
		}
	} else {
		var err error
		awarded, err = s.run.Submit(verdict)
		if err != nil {
			s.errMsg = err.Error()
			s.state = stateError
			return s, nil
		}
	}

	ctx := context.Background()
	_ = s.deps.Events.AppendAttempt(ctx, store.AttemptEventData{
		RunID:         s.run.Token(),
		UserID:        s.deps.UserID,
		LessonID:      s.lesson.ID,
		ItemID:        cur.OriginalItemID,
		ItemKind:      string(cur.Item.Kind()),
		AttemptNumber: cur.AttemptNumber,
		Verdict:       verdict,
		OracleError:   fromErr,
		PointsAwarded: awarded,
		Feedback:      feedback,
	})
	if awarded > 0 {
		_ = s.deps.Points.RecordPoints(ctx, s.deps.UserID, awarded, "item:"+cur.OriginalItemID, s.run.Token())
	}

	attemptsLeft := 0
	if s.lessonRun != nil && !verdict {
		attemptsLeft = session.MaxAttempts - cur.AttemptNumber
	}

	s.feedback = feedbackState{
		verdict:      verdict,
		fromErr:      fromErr,
		text:         feedback,
		awarded:      awarded,
		score:        score,
		attemptsLeft: attemptsLeft,
	}
	s.state = stateFeedback
	return s, nil
}

// acknowledgeSnippet awards and advances past an informational snippet.
func (s *Screen) acknowledgeSnippet(cur *session.QueuedItem) (screen.Screen, tea.Cmd) {
	if s.lessonRun == nil {
		return s, nil
	}
	itemID := cur.OriginalItemID
	attempt := cur.AttemptNumber
	awarded, err := s.lessonRun.AcknowledgeSnippet()
	if err != nil {
		s.errMsg = err.Error()
		s.state = stateError
		return s, nil
	}

	ctx := context.Background()
	_ = s.deps.Events.AppendAttempt(ctx, store.AttemptEventData{
		RunID:         s.run.Token(),
		UserID:        s.deps.UserID,
		LessonID:      s.lesson.ID,
		ItemID:        itemID,
		ItemKind:      string(content.KindSnippet),
		AttemptNumber: attempt,
		Verdict:       true,
		PointsAwarded: awarded,
	})
	if awarded > 0 {
		_ = s.deps.Points.RecordPoints(ctx, s.deps.UserID, awarded, "item:"+itemID, s.run.Token())
	}

	if s.run.IsComplete() {
		s.state = stateWaiting
		return s, s.finishStage()
	}
	s.state = stateAnswering
	return s, s.setupItem()
}

// advanceItem moves past the current item after feedback is dismissed.
func (s *Screen) advanceItem() (screen.Screen, tea.Cmd) {
	if err := s.run.Advance(); err != nil {
		s.errMsg = err.Error()
		s.state = stateError
		return s, nil
	}
	if s.run.IsComplete() {
		s.state = stateWaiting
		return s, s.finishStage()
	}
	s.state = stateAnswering
	return s, s.setupItem()
}

// finishStage persists the stage outcome and awards badges off the UI
// goroutine.
func (s *Screen) finishStage() tea.Cmd {
	st := s.stages[s.stageIdx]
	r := s.run
	deps := s.deps
	lessonID := s.lesson.ID
	lessonTitle := s.lesson.Title
	totalStages := len(s.stages)
	final := s.stageIdx == len(s.stages)-1

	// Accuracy across the whole lesson, for the completion badge rating.
	prevCorrect, prevTotal := 0, 0
	for _, res := range s.results {
		prevCorrect += res.Summary.ItemsCorrect
		prevTotal += res.Summary.ItemsTotal
	}

	return func() tea.Msg {
		ctx := context.Background()
		sum := r.Summarize()
		sum.StageID = st.ID
		status := progress.ClassifyStage(sum, st.Challenge)

		// Read before the end event lands so the streak sees the previous
		// day's run, not this one.
		lastRun, _ := deps.Events.LastRunEnd(ctx, deps.UserID)

		_ = deps.Events.AppendRun(ctx, store.RunEventData{
			RunID:        r.Token(),
			UserID:       deps.UserID,
			LessonID:     lessonID,
			Action:       store.RunActionEnd,
			ItemsTotal:   sum.ItemsTotal,
			ItemsCorrect: sum.ItemsCorrect,
			PointsEarned: sum.Points,
			DurationSecs: int(sum.Duration.Seconds()),
		})

		prog, err := deps.Progress.CompleteStage(ctx, deps.UserID, lessonID, st.ID, status, sum.Points, r.Token(), totalStages)
		if err != nil {
			return stageFinishedMsg{Err: err}
		}

		var awards []points.BadgeAward
		if st.Challenge && sum.Passed {
			awards = append(awards, *deps.Points.AwardChallenge(ctx, deps.UserID, lessonID, st.Title, r.Token()))
		} else if sum.Perfect && status.Completed() {
			awards = append(awards, *deps.Points.AwardPerfectStage(ctx, deps.UserID, lessonID, st.Title, r.Token()))
		}

		if final {
			lessonDone := false
			for _, id := range prog.CompletedLessons {
				if id == lessonID {
					lessonDone = true
					break
				}
			}
			if lessonDone {
				total := prevTotal + sum.ItemsTotal
				correct := prevCorrect + sum.ItemsCorrect
				accuracy := 0.0
				if total > 0 {
					accuracy = float64(correct) / float64(total)
				}
				awards = append(awards, *deps.Points.AwardLesson(ctx, deps.UserID, lessonID, lessonTitle, r.Token(), accuracy))
			}

			streak := points.NextStreak(prog.Streak, lastRun, time.Now())
			if streak != prog.Streak {
				_ = deps.Progress.UpdateStreak(ctx, deps.UserID, streak)
				if points.IsStreakMilestone(streak) {
					awards = append(awards, *deps.Points.AwardStreak(ctx, deps.UserID, streak, r.Token()))
				}
			}
		}

		for _, a := range awards {
			_ = deps.Progress.RecordBadge(ctx, deps.UserID, string(a.Type))
		}
		if _, err := deps.Progress.UpdateTotalPoints(ctx, deps.UserID); err != nil {
			return stageFinishedMsg{Err: err}
		}

		return stageFinishedMsg{
			Result: StageResult{
				StageID:    st.ID,
				StageTitle: st.Title,
				Challenge:  st.Challenge,
				Status:     status,
				Summary:    sum,
			},
			Awards: awards,
		}
	}
}

func (s *Screen) handleStageFinished(msg stageFinishedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		s.state = stateError
		return s, nil
	}

	s.results = append(s.results, msg.Result)
	s.awards = append(s.awards, msg.Awards...)

	if s.stageIdx < len(s.stages)-1 {
		s.state = stateStageDone
		return s, nil
	}

	// Lesson finished: hand off to the summary so popping it skips this
	// screen entirely.
	res := s.buildResult()
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(res)}
	}
}

func (s *Screen) buildResult() summary.Result {
	res := summary.Result{
		LessonID:    s.lesson.ID,
		LessonTitle: s.lesson.Title,
		Duration:    time.Since(s.started),
		Awards:      s.awards,
	}
	for _, sr := range s.results {
		res.Stages = append(res.Stages, summary.StageLine{
			Title:        sr.StageTitle,
			Challenge:    sr.Challenge,
			Status:       sr.Status,
			Points:       sr.Summary.Points,
			ItemsCorrect: sr.Summary.ItemsCorrect,
			ItemsTotal:   sr.Summary.ItemsTotal,
		})
		res.TotalPoints += sr.Summary.Points
		res.ItemsCorrect += sr.Summary.ItemsCorrect
		res.ItemsTotal += sr.Summary.ItemsTotal
	}
	return res
}
