package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/promptascent/internal/store"
)

func TestMockProviderFIFO(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"n":1}`)},
		MockResponse{Content: json.RawMessage(`{"n":2}`)},
	)

	for want := 1; want <= 2; want++ {
		resp, err := mock.Generate(context.Background(), Request{})
		if err != nil {
			t.Fatalf("generate %d: %v", want, err)
		}
		var out struct {
			N int `json:"n"`
		}
		if err := json.Unmarshal(resp.Content, &out); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if out.N != want {
			t.Errorf("response %d = %d", want, out.N)
		}
	}

	// Exhausted queue fails.
	_, err := mock.Generate(context.Background(), Request{})
	var unavailable *ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Errorf("exhausted mock err = %v, want ErrProviderUnavailable", err)
	}
}

func TestMockProviderRecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})

	_, err := mock.Generate(context.Background(), Request{System: "judge answers"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d", mock.CallCount())
	}
	if mock.Calls[0].System != "judge answers" {
		t.Errorf("recorded system = %q", mock.Calls[0].System)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if got := PurposeFrom(ctx); got != "unknown" {
		t.Errorf("default purpose = %q, want unknown", got)
	}

	ctx = WithPurpose(ctx, "answer-validation")
	if got := PurposeFrom(ctx); got != "answer-validation" {
		t.Errorf("purpose = %q", got)
	}
}

// loggingRepo captures LLM request events for logging tests.
type loggingRepo struct {
	events []store.LLMRequestEventData
}

func (r *loggingRepo) AppendAttempt(_ context.Context, _ store.AttemptEventData) error { return nil }
func (r *loggingRepo) Attempts(_ context.Context, _ string, _ store.QueryOpts) ([]store.AttemptRecord, error) {
	return nil, nil
}
func (r *loggingRepo) AttemptsForRun(_ context.Context, _ string) ([]store.AttemptRecord, error) {
	return nil, nil
}
func (r *loggingRepo) AppendRun(_ context.Context, _ store.RunEventData) error { return nil }
func (r *loggingRepo) Runs(_ context.Context, _ string, _ store.QueryOpts) ([]store.RunRecord, error) {
	return nil, nil
}
func (r *loggingRepo) AppendStage(_ context.Context, _ store.StageEventData) error { return nil }
func (r *loggingRepo) Stages(_ context.Context, _, _ string) ([]store.StageRecord, error) {
	return nil, nil
}
func (r *loggingRepo) AppendPoints(_ context.Context, _ store.PointsEventData) error { return nil }
func (r *loggingRepo) TotalPoints(_ context.Context, _ string) (int, error)          { return 0, nil }
func (r *loggingRepo) AppendBadge(_ context.Context, _ store.BadgeEventData) error   { return nil }
func (r *loggingRepo) Badges(_ context.Context, _ string) ([]store.BadgeRecord, error) {
	return nil, nil
}
func (r *loggingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return nil
}
func (r *loggingRepo) LLMRequests(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestRecord, error) {
	return nil, nil
}
func (r *loggingRepo) LLMUsage(_ context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}
func (r *loggingRepo) LastRunEnd(_ context.Context, _ string) (time.Time, error) {
	return time.Time{}, nil
}

func TestLoggingProviderRecordsSuccess(t *testing.T) {
	repo := &loggingRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{}`),
		Usage:   Usage{InputTokens: 100, OutputTokens: 20},
	})
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), "prompt-evaluation")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("events = %d, want 1", len(repo.events))
	}
	ev := repo.events[0]
	if !ev.Success {
		t.Error("expected success event")
	}
	if ev.Purpose != "prompt-evaluation" {
		t.Errorf("purpose = %q", ev.Purpose)
	}
	if ev.InputTokens != 100 || ev.OutputTokens != 20 {
		t.Errorf("tokens = %d/%d", ev.InputTokens, ev.OutputTokens)
	}
}

func TestLoggingProviderRecordsFailure(t *testing.T) {
	repo := &loggingRepo{}
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	p := WithLogging(mock, repo)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}
	if len(repo.events) != 1 {
		t.Fatalf("events = %d, want 1", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success {
		t.Error("expected failure event")
	}
	if ev.ErrorMessage == "" {
		t.Error("expected error message recorded")
	}
}

func TestWithLoggingNilRepo(t *testing.T) {
	mock := NewMockProvider()
	if p := WithLogging(mock, nil); p != Provider(mock) {
		t.Error("nil repo should return the provider unwrapped")
	}
}
