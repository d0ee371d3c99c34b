// Package economy holds the progression rules around the battle engine:
// hunt drops, acquisition mutation rolls, fusion, leveling, sale pricing,
// and the fixed costs and cooldowns the services enforce. Everything here
// is pure; randomness always comes in through the caller's source.
package economy

import (
	"math/rand"
	"time"

	"github.com/eren460540/ZyraZoo/internal/catalog"
	"github.com/eren460540/ZyraZoo/internal/domain"
)

// Fixed costs and grants.
const (
	HuntRollCoinCost   = 5
	HuntRollEnergyCost = 1

	DailyCoinGrant   = 100
	DailyEnergyGrant = 40
)

// Cooldowns between actions.
const (
	HuntCooldown   = 10 * time.Second
	BattleCooldown = 10 * time.Second
	DailyCooldown  = 24 * time.Hour
)

// PickRarity draws one rarity from the hunt drop table
func PickRarity(rng *rand.Rand) domain.Rarity {
	roll := rng.Float64() * 100
	cumulative := 0.0
	for _, entry := range domain.DropTable {
		cumulative += entry.Chance
		if roll <= cumulative {
			return entry.Rarity
		}
	}
	return domain.DropTable[len(domain.DropTable)-1].Rarity
}

// RollMutation draws the mutation attached to a freshly acquired animal.
// Chances are 1% rainbow, 2.5% emerald, 5% diamond, 10% golden.
func RollMutation(rng *rand.Rand) domain.Mutation {
	roll := rng.Float64() * 100
	switch {
	case roll < 1.0:
		return domain.MutationRainbow
	case roll < 3.5:
		return domain.MutationEmerald
	case roll < 8.5:
		return domain.MutationDiamond
	case roll < 18.5:
		return domain.MutationGolden
	default:
		return domain.MutationNone
	}
}

// HuntDrop is one rolled animal with its acquisition mutation
type HuntDrop struct {
	Animal   *domain.AnimalDefinition
	Mutation domain.Mutation
}

// RollHunt draws n animals from the catalog: rarity from the drop table,
// then a uniform pick within that rarity, then a mutation roll.
func RollHunt(rng *rand.Rand, cat *catalog.Catalog, n int) []HuntDrop {
	drops := make([]HuntDrop, 0, n)
	for i := 0; i < n; i++ {
		rarity := PickRarity(rng)
		pool := cat.AnimalsByRarity(rarity)
		drops = append(drops, HuntDrop{
			Animal:   pool[rng.Intn(len(pool))],
			Mutation: RollMutation(rng),
		})
	}
	return drops
}
