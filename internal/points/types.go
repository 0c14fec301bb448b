package points

// BadgeType identifies the category of achievement.
type BadgeType string

const (
	BadgeLesson       BadgeType = "lesson"
	BadgePerfectStage BadgeType = "perfect-stage"
	BadgeChallenge    BadgeType = "challenge"
	BadgeStreak       BadgeType = "streak"
)

// AllBadgeTypes returns all badge types in display order.
func AllBadgeTypes() []BadgeType {
	return []BadgeType{BadgeLesson, BadgePerfectStage, BadgeChallenge, BadgeStreak}
}

// DisplayName returns a human-readable label for the badge type.
func (t BadgeType) DisplayName() string {
	switch t {
	case BadgeLesson:
		return "Lesson"
	case BadgePerfectStage:
		return "Perfect Stage"
	case BadgeChallenge:
		return "Challenge"
	case BadgeStreak:
		return "Streak"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the badge type.
func (t BadgeType) Icon() string {
	switch t {
	case BadgeLesson:
		return "📘"
	case BadgePerfectStage:
		return "🌟"
	case BadgeChallenge:
		return "🏆"
	case BadgeStreak:
		return "🔥"
	default:
		return "✦"
	}
}
