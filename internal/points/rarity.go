package points

// Rarity represents the achievement tier of a badge.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// AllRarities returns all rarities in order from lowest to highest.
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}
}

// DisplayName returns a human-readable label for the rarity.
func (r Rarity) DisplayName() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityRare:
		return "Rare"
	case RarityEpic:
		return "Epic"
	case RarityLegendary:
		return "Legendary"
	default:
		return string(r)
	}
}

// LessonRarity returns the rarity of a lesson badge from the share of items
// answered correctly (0.0-1.0).
func LessonRarity(accuracy float64) Rarity {
	switch {
	case accuracy >= 0.95:
		return RarityLegendary
	case accuracy >= 0.80:
		return RarityEpic
	case accuracy >= 0.60:
		return RarityRare
	default:
		return RarityCommon
	}
}

// StreakRarity returns the rarity for a given daily streak length.
func StreakRarity(length int) Rarity {
	switch {
	case length >= 30:
		return RarityLegendary
	case length >= 14:
		return RarityEpic
	case length >= 7:
		return RarityRare
	default:
		return RarityCommon
	}
}
