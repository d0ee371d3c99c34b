package engine

import "github.com/eren460540/ZyraZoo/internal/domain"

// Window is the acceptable opponent-power interval for a requesting team
type Window struct {
	Min float64
	Max float64
}

// Contains reports whether a power value lies inside the window
func (w Window) Contains(power float64) bool {
	return power >= w.Min && power <= w.Max
}

// widenPerStage is the symmetric widening applied per mutation stage, in
// percentage points on each bound.
const widenPerStage = 2.5

// DifficultyWindow derives the opponent-power interval from the requester's
// power and composition. The base percentage band narrows as the team
// carries more mutations and foods, then widens symmetrically with the
// highest mutation stage present.
func DifficultyWindow(teamPower float64, lineup domain.Lineup) Window {
	minPct, maxPct := baseRange(lineup.MutatedCount(), lineup.FoodCount())

	widen := widenPerStage * float64(lineup.HighestStage())
	minPct -= widen
	maxPct += widen
	if minPct < 0 {
		minPct = 0
	}
	if maxPct < 0 {
		maxPct = 0
	}

	return Window{
		Min: teamPower * minPct / 100.0,
		Max: teamPower * maxPct / 100.0,
	}
}

// baseRange returns the [min%, max%] band keyed on mutated-slot count and
// equipped-food count. The 0/0 baseline is the widest band; more mutations
// or foods never widen it.
func baseRange(mutatedCount, foodCount int) (float64, float64) {
	switch {
	case mutatedCount == 0:
		switch foodCount {
		case 0:
			return 80.0, 150.0
		case 1:
			return 80.0, 145.0
		default:
			return 80.0, 140.0
		}
	case mutatedCount == domain.TeamSize:
		if foodCount == 0 {
			return 75.0, 130.0
		}
		return 70.0, 130.0
	default: // 1-2 mutated slots
		if foodCount == 0 {
			return 75.0, 135.0
		}
		return 70.0, 135.0
	}
}
