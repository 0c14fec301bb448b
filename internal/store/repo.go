package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// UserProgressData captures one learner's accumulated state inside a snapshot.
type UserProgressData struct {
	TotalPoints      int               `json:"total_points"`
	CompletedLessons []string          `json:"completed_lessons,omitempty"`
	StageStatus      map[string]string `json:"stage_status,omitempty"` // "<lessonID>/<stageID>" -> status
	Badges           []string          `json:"badges,omitempty"`
	Streak           int               `json:"streak"`
	LastActive       time.Time         `json:"last_active"`
}

// SnapshotData captures the full application state at a point in time.
// Keyed by user ID so local multi-profile play shares one database.
type SnapshotData struct {
	Version int                          `json:"version"`
	Users   map[string]*UserProgressData `json:"users,omitempty"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AttemptEventData records a single answer attempt on a queue item.
type AttemptEventData struct {
	RunID         string
	UserID        string
	LessonID      string
	ItemID        string
	ItemKind      string
	AttemptNumber int
	Answer        string
	Verdict       bool
	OracleError   bool
	PointsAwarded int
	Feedback      string
}

// AttemptRecord is a stored attempt event read back from the database.
type AttemptRecord struct {
	Sequence      int64
	Timestamp     time.Time
	RunID         string
	UserID        string
	LessonID      string
	ItemID        string
	ItemKind      string
	AttemptNumber int
	Verdict       bool
	OracleError   bool
	PointsAwarded int
}

// RunEventData records the start or end of a lesson run.
type RunEventData struct {
	RunID        string
	UserID       string
	LessonID     string
	Action       string // "start" or "end"
	ItemsTotal   int
	ItemsCorrect int
	PointsEarned int
	DurationSecs int
}

// RunRecord is a stored run event read back from the database.
type RunRecord struct {
	Sequence     int64
	Timestamp    time.Time
	RunID        string
	UserID       string
	LessonID     string
	Action       string
	ItemsTotal   int
	ItemsCorrect int
	PointsEarned int
	DurationSecs int
}

// StageEventData records the final status of a lesson stage.
type StageEventData struct {
	UserID       string
	LessonID     string
	StageID      string
	Status       string
	PointsEarned int
	RunID        string
}

// StageRecord is a stored stage event read back from the database.
type StageRecord struct {
	Sequence     int64
	Timestamp    time.Time
	UserID       string
	LessonID     string
	StageID      string
	Status       string
	PointsEarned int
	RunID        string
}

// PointsEventData records a points award.
type PointsEventData struct {
	UserID string
	Delta  int
	Reason string
	RunID  string
}

// PointsRecord is a stored points event read back from the database.
type PointsRecord struct {
	Sequence  int64
	Timestamp time.Time
	UserID    string
	Delta     int
	Reason    string
	RunID     string
}

// BadgeEventData records a badge award.
type BadgeEventData struct {
	UserID    string
	BadgeType string
	Rarity    string
	LessonID  string
	RunID     string
	Reason    string
}

// BadgeRecord is a stored badge event read back from the database.
type BadgeRecord struct {
	Sequence  int64
	Timestamp time.Time
	UserID    string
	BadgeType string
	Rarity    string
	LessonID  string
	RunID     string
	Reason    string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestRecord is a stored LLM request event read back from the database.
type LLMRequestRecord struct {
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMUsageStat aggregates LLM request events by purpose.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs float64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAttempt records a single answer attempt.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// Attempts returns attempt events for a user, oldest first.
	Attempts(ctx context.Context, userID string, opts QueryOpts) ([]AttemptRecord, error)

	// AttemptsForRun returns all attempt events in a run, oldest first.
	AttemptsForRun(ctx context.Context, runID string) ([]AttemptRecord, error)

	// AppendRun records a lesson run start or end.
	AppendRun(ctx context.Context, data RunEventData) error

	// Runs returns run events for a user, oldest first.
	Runs(ctx context.Context, userID string, opts QueryOpts) ([]RunRecord, error)

	// AppendStage records a stage completion status.
	AppendStage(ctx context.Context, data StageEventData) error

	// Stages returns stage events for a user and lesson, oldest first.
	Stages(ctx context.Context, userID, lessonID string) ([]StageRecord, error)

	// AppendPoints records a points award.
	AppendPoints(ctx context.Context, data PointsEventData) error

	// TotalPoints sums all points awarded to a user.
	TotalPoints(ctx context.Context, userID string) (int, error)

	// AppendBadge records a badge award.
	AppendBadge(ctx context.Context, data BadgeEventData) error

	// Badges returns badge events for a user, oldest first.
	Badges(ctx context.Context, userID string) ([]BadgeRecord, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// LLMRequests returns LLM request events, oldest first.
	LLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestRecord, error)

	// LLMUsage aggregates LLM request events by purpose.
	LLMUsage(ctx context.Context) ([]LLMUsageStat, error)

	// LastRunEnd returns the timestamp of the user's most recent completed
	// run, or the zero time if none exist.
	LastRunEnd(ctx context.Context, userID string) (time.Time, error)
}
