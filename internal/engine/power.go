package engine

import "github.com/eren460540/ZyraZoo/internal/domain"

// Power weighting constants. Attack counts 1.5x, defense 1.2x, health 1.0x.
// The difficulty window and opponent synthesizer are calibrated against
// these exact coefficients; do not change them independently.
const (
	hpWeight  = 1.0
	atkWeight = 1.5
	defWeight = 1.2
)

// AnimalPower returns the weighted base power of an animal. Stats are
// clamped to non-negative before weighting.
func AnimalPower(a *domain.AnimalDefinition) float64 {
	if a == nil {
		return 0
	}
	return float64(clampNonNegative(a.HP))*hpWeight +
		float64(clampNonNegative(a.ATK))*atkWeight +
		float64(clampNonNegative(a.DEF))*defWeight
}

// FoodPower returns the weighted power of a food's bonuses, zero if nil
func FoodPower(f *domain.FoodDefinition) float64 {
	if f == nil {
		return 0
	}
	return float64(clampNonNegative(f.HPBonus))*hpWeight +
		float64(clampNonNegative(f.ATKBonus))*atkWeight +
		float64(clampNonNegative(f.DEFBonus))*defWeight
}

// SlotPower returns the effective power of one populated slot:
// (animal + food) scaled by the mutation multiplier.
func SlotPower(slot domain.SlotLoadout) float64 {
	return (AnimalPower(slot.Animal) + FoodPower(slot.Food)) * slot.Mutation.Multiplier()
}

// TeamPower returns the summed effective power of all three slots. It is a
// pure function of the lineup and always non-negative.
func TeamPower(lineup domain.Lineup) float64 {
	total := 0.0
	for _, slot := range lineup {
		total += SlotPower(slot)
	}
	return total
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
