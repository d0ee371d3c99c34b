package domain

import "strings"

// TeamSize is the fixed number of slots in a battle team
const TeamSize = 3

// SlotLoadout describes one populated team slot ready for battle.
type SlotLoadout struct {
	Animal   *AnimalDefinition
	Food     *FoodDefinition // nil when nothing is equipped
	Mutation Mutation
}

// Lineup is a full 3-slot battle team in slot order: tank, attack, support.
type Lineup [TeamSize]SlotLoadout

// Validate rejects incomplete teams and role mismatches before any
// simulation runs, so a failed battle request never produces partial state.
func (l Lineup) Validate() error {
	for i, slot := range l {
		if slot.Animal == nil {
			return ErrIncompleteTeam
		}
		if slot.Animal.Role != SlotRoles[i+1] {
			return ErrRoleMismatch
		}
		if !slot.Mutation.IsValid() {
			return ErrInvalidMutation
		}
	}
	return nil
}

// Signature returns the canonical opponent identity string used for
// repeat avoidance: ordered animal-id:mutation pairs joined by "|".
func (l Lineup) Signature() string {
	parts := make([]string, 0, TeamSize)
	for _, slot := range l {
		if slot.Animal == nil {
			parts = append(parts, ":"+string(slot.Mutation))
			continue
		}
		parts = append(parts, slot.Animal.ID+":"+string(slot.Mutation))
	}
	return strings.Join(parts, "|")
}

// FoodCount returns the number of slots with an equipped food
func (l Lineup) FoodCount() int {
	count := 0
	for _, slot := range l {
		if slot.Food != nil {
			count++
		}
	}
	return count
}

// MutatedCount returns the number of slots with a non-none mutation
func (l Lineup) MutatedCount() int {
	count := 0
	for _, slot := range l {
		if slot.Mutation != MutationNone {
			count++
		}
	}
	return count
}

// HighestStage returns the highest mutation widening stage across slots
func (l Lineup) HighestStage() int {
	highest := 0
	for _, slot := range l {
		if stage := slot.Mutation.Stage(); stage > highest {
			highest = stage
		}
	}
	return highest
}

// AverageRarityIndex returns the mean rarity index of the lineup's animals
func (l Lineup) AverageRarityIndex() float64 {
	total := 0
	for _, slot := range l {
		if slot.Animal != nil {
			total += slot.Animal.Rarity.Index()
		}
	}
	return float64(total) / float64(TeamSize)
}
