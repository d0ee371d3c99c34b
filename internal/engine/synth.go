package engine

import (
	"math"
	"math/rand"
	"sort"

	"github.com/eren460540/ZyraZoo/internal/catalog"
	"github.com/eren460540/ZyraZoo/internal/domain"
)

const (
	drawAttempts     = 300
	repairIterations = 350
	pinnedIterations = 200
	foodEquipChance  = 0.35
)

// SynthesizeOpponent builds an enemy lineup whose power lands inside the
// window. It draws random candidates from the rarity band around the
// player's average rarity, preferring an in-window draw whose signature
// differs from the previous opponent, then repairs the chosen candidate
// until its power fits. A lineup that still ends outside the window is a
// hard error rather than a silently unfair fight.
func SynthesizeOpponent(rng *rand.Rand, cat *catalog.Catalog, player domain.Lineup, window Window, lastSignature string) (domain.Lineup, error) {
	band := catalog.RarityBand(int(math.Round(player.AverageRarityIndex())))

	var (
		bestOverall        domain.Lineup
		bestDelta          = math.Inf(1)
		bestInRange        *domain.Lineup
		bestInRangeNotSame *domain.Lineup
	)

	for attempt := 0; attempt < drawAttempts; attempt++ {
		lineup := randomLineup(rng, cat, band)
		power := TeamPower(lineup)

		if window.Contains(power) {
			if lineup.Signature() != lastSignature {
				l := lineup
				bestInRangeNotSame = &l
				break
			}
			if bestInRange == nil {
				l := lineup
				bestInRange = &l
			}
		}

		delta := 0.0
		if power < window.Min {
			delta = window.Min - power
		} else if power > window.Max {
			delta = power - window.Max
		}
		if delta < bestDelta {
			bestDelta = delta
			bestOverall = lineup
		}
	}

	chosen := bestOverall
	if bestInRangeNotSame != nil {
		chosen = *bestInRangeNotSame
	} else if bestInRange != nil {
		chosen = *bestInRange
	}

	repairLineup(rng, cat, &chosen, band, window)
	if !window.Contains(TeamPower(chosen)) {
		repairLineup(rng, cat, &chosen, band, window)
	}
	if !window.Contains(TeamPower(chosen)) {
		return domain.Lineup{}, ErrSearchExhausted
	}
	return chosen, nil
}

func randomLineup(rng *rand.Rand, cat *catalog.Catalog, band []int) domain.Lineup {
	var lineup domain.Lineup
	for i := 0; i < domain.TeamSize; i++ {
		pool := cat.AnimalsByRoleAndRarity(band, domain.SlotRoles[i+1])
		animal := pool[rng.Intn(len(pool))]
		lineup[i] = domain.SlotLoadout{
			Animal:   animal,
			Food:     randomEnemyFood(rng, cat, animal),
			Mutation: randomEnemyMutation(rng),
		}
	}
	return lineup
}

// randomEnemyFood equips a food 35% of the time, drawn from foods within
// one rarity tier of the animal.
func randomEnemyFood(rng *rand.Rand, cat *catalog.Catalog, animal *domain.AnimalDefinition) *domain.FoodDefinition {
	if rng.Float64() >= foodEquipChance {
		return nil
	}
	pool := cat.FoodsNearRarity(animal.Rarity.Index())
	return pool[rng.Intn(len(pool))]
}

// randomEnemyMutation draws a tier with weights 55/20/15/7/3.
func randomEnemyMutation(rng *rand.Rand) domain.Mutation {
	roll := rng.Float64()
	switch {
	case roll < 0.55:
		return domain.MutationNone
	case roll < 0.75:
		return domain.MutationGolden
	case roll < 0.90:
		return domain.MutationDiamond
	case roll < 0.97:
		return domain.MutationEmerald
	default:
		return domain.MutationRainbow
	}
}

// repairLineup nudges an out-of-window lineup toward the target interval.
// The first phase applies the cheapest corrective step each iteration:
// dropping or adding food, then shifting mutation tiers, then rerolling a
// random slot. The final phase pins rerolls to the band's extreme rarity
// index to guarantee movement when the gentle steps stall.
func repairLineup(rng *rand.Rand, cat *catalog.Catalog, lineup *domain.Lineup, band []int, window Window) {
	for i := 0; i < repairIterations; i++ {
		power := TeamPower(*lineup)
		if window.Contains(power) {
			return
		}
		if power > window.Max {
			if removeHighestFood(lineup) {
				continue
			}
			if downgradeMutation(lineup) {
				continue
			}
		} else {
			if addMissingFood(rng, cat, lineup) {
				continue
			}
			if upgradeMutation(lineup) {
				continue
			}
		}
		rerollSlot(rng, cat, lineup, band, power > window.Max)
	}

	topFood := strongestFood(cat)
	weakest := band[0]
	strongest := band[len(band)-1]

	for i := 0; i < pinnedIterations; i++ {
		power := TeamPower(*lineup)
		if window.Contains(power) {
			return
		}
		if power > window.Max {
			if removeHighestFood(lineup) {
				continue
			}
			if downgradeMutation(lineup) {
				continue
			}
			slot := rng.Intn(domain.TeamSize)
			lineup[slot].Animal = pinnedAnimal(rng, cat, band, weakest, domain.SlotRoles[slot+1])
			lineup[slot].Food = nil
			lineup[slot].Mutation = domain.MutationNone
		} else {
			if addMissingFood(rng, cat, lineup) {
				continue
			}
			if upgradeMutation(lineup) {
				continue
			}
			slot := rng.Intn(domain.TeamSize)
			lineup[slot].Animal = pinnedAnimal(rng, cat, band, strongest, domain.SlotRoles[slot+1])
			lineup[slot].Food = topFood
			lineup[slot].Mutation = domain.MutationRainbow
		}
	}
}

// pinnedAnimal draws from the single pinned rarity index, widening back to
// the full band when no animal of that role exists there.
func pinnedAnimal(rng *rand.Rand, cat *catalog.Catalog, band []int, pinned int, role domain.Role) *domain.AnimalDefinition {
	pool := cat.AnimalsByRoleAndRarity([]int{pinned}, role)
	if len(pool) == 0 {
		pool = cat.AnimalsByRoleAndRarity(band, role)
	}
	return pool[rng.Intn(len(pool))]
}

func removeHighestFood(lineup *domain.Lineup) bool {
	slot := -1
	highest := -1.0
	for i := range lineup {
		if lineup[i].Food == nil {
			continue
		}
		if fp := FoodPower(lineup[i].Food); fp > highest {
			highest = fp
			slot = i
		}
	}
	if slot < 0 {
		return false
	}
	lineup[slot].Food = nil
	return true
}

// addMissingFood picks a random empty slot and rolls for food. The roll can
// still come up empty; the caller falls through to the next step then.
func addMissingFood(rng *rand.Rand, cat *catalog.Catalog, lineup *domain.Lineup) bool {
	var empty []int
	for i := range lineup {
		if lineup[i].Food == nil {
			empty = append(empty, i)
		}
	}
	if len(empty) == 0 {
		return false
	}
	slot := empty[rng.Intn(len(empty))]
	lineup[slot].Food = randomEnemyFood(rng, cat, lineup[slot].Animal)
	return lineup[slot].Food != nil
}

// downgradeMutation lowers the strongest non-base mutation one tier
func downgradeMutation(lineup *domain.Lineup) bool {
	order := slotsByMultiplier(lineup, true)
	for _, i := range order {
		m := lineup[i].Mutation
		if m.Order() > 0 && m.Multiplier() > 1.0 {
			lineup[i].Mutation = m.Prev()
			return true
		}
	}
	return false
}

// upgradeMutation raises the weakest non-terminal mutation one tier
func upgradeMutation(lineup *domain.Lineup) bool {
	order := slotsByMultiplier(lineup, false)
	for _, i := range order {
		m := lineup[i].Mutation
		if m.Order() < len(domain.AllMutations)-1 {
			lineup[i].Mutation = m.Next()
			return true
		}
	}
	return false
}

func slotsByMultiplier(lineup *domain.Lineup, descending bool) []int {
	order := []int{0, 1, 2}
	sort.SliceStable(order, func(a, b int) bool {
		ma := lineup[order[a]].Mutation.Multiplier()
		mb := lineup[order[b]].Mutation.Multiplier()
		if descending {
			return ma > mb
		}
		return ma < mb
	})
	return order
}

func rerollSlot(rng *rand.Rand, cat *catalog.Catalog, lineup *domain.Lineup, band []int, overshooting bool) {
	slot := rng.Intn(domain.TeamSize)
	pool := cat.AnimalsByRoleAndRarity(band, domain.SlotRoles[slot+1])
	lineup[slot].Animal = pool[rng.Intn(len(pool))]
	if overshooting {
		lineup[slot].Food = nil
		lineup[slot].Mutation = domain.MutationNone
	} else {
		lineup[slot].Food = randomEnemyFood(rng, cat, lineup[slot].Animal)
		lineup[slot].Mutation = randomEnemyMutation(rng)
	}
}

func strongestFood(cat *catalog.Catalog) *domain.FoodDefinition {
	var best *domain.FoodDefinition
	bestPower := -1.0
	for _, f := range cat.Foods() {
		if fp := FoodPower(f); fp > bestPower {
			bestPower = fp
			best = f
		}
	}
	return best
}
