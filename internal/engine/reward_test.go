package engine_test

import (
	"testing"

	"github.com/eren460540/ZyraZoo/internal/domain"
	"github.com/eren460540/ZyraZoo/internal/engine"
	"github.com/stretchr/testify/assert"
)

func TestRewards_LossGrantsNothing(t *testing.T) {
	cat := newCatalog(t)
	lineup := plainLineup(t, cat, "pig", "mouse", "bug")

	r := engine.Rewards(false, 100, 500, lineup)
	assert.Zero(t, r.Coins)
	assert.Zero(t, r.Energy)
}

func TestRewards_WinGrantsOneEnergy(t *testing.T) {
	cat := newCatalog(t)
	lineup := plainLineup(t, cat, "pig", "mouse", "bug")

	r := engine.Rewards(true, 100, 100, lineup)
	assert.Equal(t, 1, r.Energy)
}

func TestRewards_CommonTeamEvenMatch(t *testing.T) {
	cat := newCatalog(t)
	lineup := plainLineup(t, cat, "pig", "mouse", "bug")

	// base 10, all-common rarity weight 0.6, no mutation or food bonus
	r := engine.Rewards(true, 100, 100, lineup)
	assert.Equal(t, 6, r.Coins)
}

func TestRewards_FloorAtFiveCoins(t *testing.T) {
	cat := newCatalog(t)
	lineup := plainLineup(t, cat, "pig", "mouse", "bug")

	// Enemy at half the player's power: base drops to 5, the common
	// rarity weight would push it to 3, the floor holds it at 5.
	r := engine.Rewards(true, 100, 50, lineup)
	assert.Equal(t, 5, r.Coins)
}

func TestRewards_StrongerEnemyPaysMore(t *testing.T) {
	cat := newCatalog(t)
	lineup := plainLineup(t, cat, "pig", "mouse", "bug")

	even := engine.Rewards(true, 100, 100, lineup)
	hard := engine.Rewards(true, 100, 145, lineup)
	assert.Greater(t, hard.Coins, even.Coins)
}

func TestRewards_BonusFactorCapped(t *testing.T) {
	cat := newCatalog(t)

	lineup := plainLineup(t, cat, "trex", "dragon", "unicorn")
	for i := range lineup {
		lineup[i].Mutation = domain.MutationRainbow
	}
	// Hidden rarity weight 2.4; rainbow bonus per slot would be 2.4 but
	// is capped at 1.6: round(10 * 2.4 * 1.6)
	r := engine.Rewards(true, 100, 100, lineup)
	assert.Equal(t, 38, r.Coins)
}

func TestRewards_ZeroPlayerPowerUsesUnitRatio(t *testing.T) {
	cat := newCatalog(t)
	lineup := plainLineup(t, cat, "pig", "mouse", "bug")

	r := engine.Rewards(true, 0, 500, lineup)
	assert.Equal(t, 6, r.Coins)
}
