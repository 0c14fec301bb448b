package points

import "testing"

func TestLessonRarity(t *testing.T) {
	tests := []struct {
		accuracy float64
		want     Rarity
	}{
		{0.0, RarityCommon},
		{0.59, RarityCommon},
		{0.60, RarityRare},
		{0.79, RarityRare},
		{0.80, RarityEpic},
		{0.94, RarityEpic},
		{0.95, RarityLegendary},
		{1.0, RarityLegendary},
	}
	for _, tt := range tests {
		if got := LessonRarity(tt.accuracy); got != tt.want {
			t.Errorf("LessonRarity(%.2f) = %q, want %q", tt.accuracy, got, tt.want)
		}
	}
}

func TestStreakRarity(t *testing.T) {
	tests := []struct {
		length int
		want   Rarity
	}{
		{1, RarityCommon},
		{6, RarityCommon},
		{7, RarityRare},
		{13, RarityRare},
		{14, RarityEpic},
		{29, RarityEpic},
		{30, RarityLegendary},
		{100, RarityLegendary},
	}
	for _, tt := range tests {
		if got := StreakRarity(tt.length); got != tt.want {
			t.Errorf("StreakRarity(%d) = %q, want %q", tt.length, got, tt.want)
		}
	}
}

func TestAllRarities(t *testing.T) {
	rarities := AllRarities()
	if len(rarities) != 4 {
		t.Errorf("expected 4 rarities, got %d", len(rarities))
	}
	if rarities[0] != RarityCommon || rarities[3] != RarityLegendary {
		t.Errorf("unexpected order: %v", rarities)
	}
}

func TestBadgeTypeDisplay(t *testing.T) {
	if got := BadgeChallenge.DisplayName(); got != "Challenge" {
		t.Errorf("DisplayName = %q", got)
	}
	if got := BadgeType("custom").DisplayName(); got != "custom" {
		t.Errorf("unknown DisplayName = %q", got)
	}
	for _, bt := range AllBadgeTypes() {
		if bt.Icon() == "" {
			t.Errorf("badge %q has empty icon", bt)
		}
	}
}
