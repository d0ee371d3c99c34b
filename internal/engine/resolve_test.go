package engine_test

import (
	"testing"

	"github.com/eren460540/ZyraZoo/internal/domain"
	"github.com/eren460540/ZyraZoo/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// statLineup builds a team of three identical ad-hoc animals, which keeps
// the combat arithmetic in these tests easy to verify by hand.
func statLineup(hp, atk, def int) domain.Lineup {
	var lineup domain.Lineup
	for i := range lineup {
		lineup[i] = domain.SlotLoadout{
			Animal: &domain.AnimalDefinition{
				ID:   "stub",
				Role: domain.SlotRoles[i+1],
				HP:   hp, ATK: atk, DEF: def,
			},
			Mutation: domain.MutationNone,
		}
	}
	return lineup
}

func TestResolve_StrongerTeamWins(t *testing.T) {
	cat := newCatalog(t)

	player := plainLineup(t, cat, "trex", "dragon", "unicorn")
	enemy := plainLineup(t, cat, "pig", "mouse", "bug")

	out := engine.Resolve(player, enemy)
	assert.True(t, out.PlayerWon)
	assert.False(t, out.CapTie)
	for i := 0; i < domain.TeamSize; i++ {
		assert.Zero(t, out.EnemyHP[i], "enemy slot %d should be dead", i+1)
	}
}

func TestResolve_MinimumDamageIsOne(t *testing.T) {
	// Defense far above attack: every strike still lands for 1. Slots die
	// as the fight goes on, so each pass deals fewer hits over time; the
	// mirror matchup ends on the player's seventh pass because the player
	// always moves first.
	player := statLineup(5, 1, 100)
	enemy := statLineup(5, 1, 100)

	out := engine.Resolve(player, enemy)
	assert.True(t, out.PlayerWon)
	assert.Equal(t, 7, out.Rounds)
}

func TestResolve_RoundCapEqualHealthIsNotAWin(t *testing.T) {
	player := statLineup(10000, 1, 0)
	enemy := statLineup(10000, 1, 0)

	out := engine.Resolve(player, enemy)
	assert.Equal(t, engine.MaxRounds, out.Rounds)
	assert.True(t, out.CapTie)
	assert.False(t, out.PlayerWon)
}

func TestResolve_RoundCapHigherHealthWins(t *testing.T) {
	player := statLineup(10000, 2, 0)
	enemy := statLineup(10000, 1, 0)

	out := engine.Resolve(player, enemy)
	assert.Equal(t, engine.MaxRounds, out.Rounds)
	assert.True(t, out.CapTie)
	assert.True(t, out.PlayerWon)
}

func TestResolve_TargetsFirstLivingSlot(t *testing.T) {
	player := statLineup(50, 10, 0)
	enemy := statLineup(25, 1, 0)

	out := engine.Resolve(player, enemy)
	require.True(t, out.PlayerWon)
	// 30 damage per player pass kills one enemy slot per round, in order
	assert.Equal(t, 3, out.Rounds)
}

func TestResolve_Deterministic(t *testing.T) {
	cat := newCatalog(t)
	player := plainLineup(t, cat, "horse", "snake", "tropicalfish")
	enemy := plainLineup(t, cat, "pig", "mouse", "bug")

	first := engine.Resolve(player, enemy)
	second := engine.Resolve(player, enemy)
	assert.Equal(t, first, second)
}

func TestCombatStats_FoodCountsButMutationDoesNot(t *testing.T) {
	cat := newCatalog(t)

	slot := domain.SlotLoadout{
		Animal:   mustAnimal(t, cat, "mouse"),
		Mutation: domain.MutationNone,
	}
	hp, atk, def := engine.CombatStats(slot)
	assert.Equal(t, 7, hp)
	assert.Equal(t, 6, atk)
	assert.Equal(t, 1, def)

	slot.Food = mustFood(t, cat, "carrot") // +1 HP, +1 ATK
	hp, atk, def = engine.CombatStats(slot)
	assert.Equal(t, 8, hp)
	assert.Equal(t, 7, atk)
	assert.Equal(t, 1, def)

	slot.Mutation = domain.MutationRainbow
	hp2, atk2, def2 := engine.CombatStats(slot)
	assert.Equal(t, hp, hp2)
	assert.Equal(t, atk, atk2)
	assert.Equal(t, def, def2)
}
