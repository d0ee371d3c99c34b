package engine_test

import (
	"testing"

	"github.com/eren460540/ZyraZoo/internal/catalog"
	"github.com/eren460540/ZyraZoo/internal/domain"
	"github.com/eren460540/ZyraZoo/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New()
	require.NoError(t, err)
	return cat
}

func mustAnimal(t *testing.T, cat *catalog.Catalog, id string) *domain.AnimalDefinition {
	t.Helper()
	a, ok := cat.Animal(id)
	require.True(t, ok, "unknown animal %q", id)
	return a
}

func mustFood(t *testing.T, cat *catalog.Catalog, id string) *domain.FoodDefinition {
	t.Helper()
	f, ok := cat.Food(id)
	require.True(t, ok, "unknown food %q", id)
	return f
}

// plainLineup builds a valid tank/attack/support team with no foods or
// mutations.
func plainLineup(t *testing.T, cat *catalog.Catalog, tankID, attackID, supportID string) domain.Lineup {
	t.Helper()
	return domain.Lineup{
		{Animal: mustAnimal(t, cat, tankID), Mutation: domain.MutationNone},
		{Animal: mustAnimal(t, cat, attackID), Mutation: domain.MutationNone},
		{Animal: mustAnimal(t, cat, supportID), Mutation: domain.MutationNone},
	}
}

func TestAnimalPower_WeightsStats(t *testing.T) {
	cat := newCatalog(t)

	// mouse is 7 HP / 6 ATK / 1 DEF: 7*1.0 + 6*1.5 + 1*1.2
	assert.InDelta(t, 17.2, engine.AnimalPower(mustAnimal(t, cat, "mouse")), 1e-9)
	assert.Zero(t, engine.AnimalPower(nil))
}

func TestAnimalPower_ClampsNegativeStats(t *testing.T) {
	broken := &domain.AnimalDefinition{ID: "glitch", HP: -5, ATK: 4, DEF: -1}
	assert.InDelta(t, 6.0, engine.AnimalPower(broken), 1e-9)
}

func TestFoodPower(t *testing.T) {
	cat := newCatalog(t)

	// apple grants +2 HP only
	assert.InDelta(t, 2.0, engine.FoodPower(mustFood(t, cat, "apple")), 1e-9)
	assert.Zero(t, engine.FoodPower(nil))
}

func TestSlotPower_AppliesFoodThenMutation(t *testing.T) {
	cat := newCatalog(t)

	slot := domain.SlotLoadout{
		Animal:   mustAnimal(t, cat, "mouse"),
		Food:     mustFood(t, cat, "apple"),
		Mutation: domain.MutationGolden,
	}
	// (17.2 + 2.0) * 1.25
	assert.InDelta(t, 24.0, engine.SlotPower(slot), 1e-9)
}

func TestTeamPower_SumsSlots(t *testing.T) {
	cat := newCatalog(t)

	lineup := plainLineup(t, cat, "pig", "mouse", "bug")
	// pig 18.1 + mouse 17.2 + bug 15.1
	assert.InDelta(t, 50.4, engine.TeamPower(lineup), 1e-9)
}

func TestTeamPower_RainbowQuintuples(t *testing.T) {
	cat := newCatalog(t)

	lineup := plainLineup(t, cat, "pig", "mouse", "bug")
	base := engine.TeamPower(lineup)
	for i := range lineup {
		lineup[i].Mutation = domain.MutationRainbow
	}
	assert.InDelta(t, base*5.0, engine.TeamPower(lineup), 1e-9)
}
