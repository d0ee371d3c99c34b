package domain_test

import (
	"testing"

	"github.com/eren460540/ZyraZoo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLineup() domain.Lineup {
	return domain.Lineup{
		{Animal: &domain.AnimalDefinition{ID: "cow", Role: domain.RoleTank}, Mutation: domain.MutationNone},
		{Animal: &domain.AnimalDefinition{ID: "mouse", Role: domain.RoleAttack}, Mutation: domain.MutationGolden},
		{Animal: &domain.AnimalDefinition{ID: "bug", Role: domain.RoleSupport}, Mutation: domain.MutationNone},
	}
}

func TestLineup_Validate(t *testing.T) {
	assert.NoError(t, testLineup().Validate())

	missing := testLineup()
	missing[2].Animal = nil
	assert.ErrorIs(t, missing.Validate(), domain.ErrIncompleteTeam)

	swapped := testLineup()
	swapped[0].Animal = &domain.AnimalDefinition{ID: "mouse", Role: domain.RoleAttack}
	assert.ErrorIs(t, swapped.Validate(), domain.ErrRoleMismatch)

	badMutation := testLineup()
	badMutation[1].Mutation = domain.Mutation("chrome")
	assert.ErrorIs(t, badMutation.Validate(), domain.ErrInvalidMutation)
}

func TestLineup_Signature(t *testing.T) {
	assert.Equal(t, "cow:none|mouse:golden|bug:none", testLineup().Signature())

	// Identity covers animal and mutation, not food
	other := testLineup()
	other[0].Food = &domain.FoodDefinition{ID: "apple"}
	assert.Equal(t, testLineup().Signature(), other.Signature())

	mutated := testLineup()
	mutated[1].Mutation = domain.MutationRainbow
	assert.NotEqual(t, testLineup().Signature(), mutated.Signature())
}

func TestLineup_Counts(t *testing.T) {
	lineup := testLineup()
	lineup[0].Food = &domain.FoodDefinition{ID: "apple"}
	lineup[2].Mutation = domain.MutationRainbow

	assert.Equal(t, 1, lineup.FoodCount())
	assert.Equal(t, 2, lineup.MutatedCount())
	assert.Equal(t, 3, lineup.HighestStage())
}

func TestParseMutation(t *testing.T) {
	for input, want := range map[string]domain.Mutation{
		"golden":  domain.MutationGolden,
		"GOLD":    domain.MutationGolden,
		" dia ":   domain.MutationDiamond,
		"rb":      domain.MutationRainbow,
		"normal":  domain.MutationNone,
		"emerald": domain.MutationEmerald,
	} {
		got, err := domain.ParseMutation(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}

	_, err := domain.ParseMutation("chrome")
	assert.ErrorIs(t, err, domain.ErrInvalidMutation)
}

func TestMutationProgression(t *testing.T) {
	assert.Equal(t, domain.MutationGolden, domain.MutationNone.Next())
	assert.Equal(t, domain.MutationRainbow, domain.MutationEmerald.Next())
	assert.Equal(t, domain.MutationRainbow, domain.MutationRainbow.Next())
	assert.Equal(t, domain.MutationNone, domain.MutationGolden.Prev())
	assert.Equal(t, domain.MutationNone, domain.MutationNone.Prev())
	assert.True(t, domain.MutationRainbow.IsTerminal())
	assert.False(t, domain.MutationEmerald.IsTerminal())
}
