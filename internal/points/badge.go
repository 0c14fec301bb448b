package points

import "time"

// BadgeAward represents a single badge earned.
type BadgeAward struct {
	Type      BadgeType
	Rarity    Rarity
	LessonID  string // empty for streak badges
	RunID     string
	Reason    string // human-readable, e.g. "Completed Prompt Basics"
	AwardedAt time.Time
}
