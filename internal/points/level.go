package points

// levelStep is how many points each level costs beyond the previous one.
// Level 1 starts at 0 points; level 2 needs 50, level 3 needs 50+75, and so
// on, each step growing by half.
const (
	baseStep   = 50
	stepGrowth = 25
)

// Level returns the 1-based level for a point total.
func Level(total int) int {
	if total < 0 {
		return 1
	}
	level := 1
	threshold := 0
	step := baseStep
	for {
		threshold += step
		if total < threshold {
			return level
		}
		level++
		step += stepGrowth
	}
}

// NextLevelAt returns the point total at which the next level is reached.
func NextLevelAt(total int) int {
	threshold := 0
	step := baseStep
	for {
		threshold += step
		if total < threshold {
			return threshold
		}
		step += stepGrowth
	}
}

// LevelProgress returns how far through the current level a point total is,
// as a fraction in [0, 1).
func LevelProgress(total int) float64 {
	if total < 0 {
		return 0
	}
	floor := 0
	threshold := 0
	step := baseStep
	for {
		threshold += step
		if total < threshold {
			return float64(total-floor) / float64(threshold-floor)
		}
		floor = threshold
		step += stepGrowth
	}
}
