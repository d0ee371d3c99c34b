package engine

import (
	"math"

	"github.com/eren460540/ZyraZoo/internal/domain"
)

// Reward is the currency/energy delta produced by one battle
type Reward struct {
	Coins  int
	Energy int
}

const (
	baseCoinReward  = 10
	minCoinReward   = 5
	maxBonusFactor  = 1.6
	mutationBonus   = 0.35
	foodSlotBonus   = 1.05
	foodBonusWeight = 0.5
)

// Rewards converts a battle outcome into the coin/energy grant. The base
// coin figure scales with how strong the opponent was relative to the
// player; on a win it is further scaled by the team's average rarity weight
// and a capped mutation/food bonus factor. Losses grant nothing.
func Rewards(won bool, playerPower, enemyPower float64, player domain.Lineup) Reward {
	if !won {
		return Reward{}
	}

	ratio := 1.0
	if playerPower > 0 {
		ratio = enemyPower / playerPower
	}
	base := int(math.Round(baseCoinReward * ratio))
	if base < minCoinReward {
		base = minCoinReward
	}

	rarityFactor := 0.0
	bonusFactor := 0.0
	for _, slot := range player {
		rarityFactor += slot.Animal.Rarity.CoinWeight()

		foodFactor := 1.0
		if slot.Food != nil {
			foodFactor = foodSlotBonus
		}
		bonusFactor += 1.0 +
			(slot.Mutation.Multiplier()-1.0)*mutationBonus +
			(foodFactor-1.0)*foodBonusWeight
	}
	rarityFactor /= float64(domain.TeamSize)
	bonusFactor /= float64(domain.TeamSize)
	if bonusFactor > maxBonusFactor {
		bonusFactor = maxBonusFactor
	}

	coins := int(math.Round(float64(base) * rarityFactor * bonusFactor))
	if coins < minCoinReward {
		coins = minCoinReward
	}
	return Reward{Coins: coins, Energy: 1}
}
