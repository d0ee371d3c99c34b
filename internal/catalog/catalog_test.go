package catalog_test

import (
	"testing"

	"github.com/eren460540/ZyraZoo/internal/catalog"
	"github.com/eren460540/ZyraZoo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_BuildsValidCatalog(t *testing.T) {
	cat, err := catalog.New()
	require.NoError(t, err)
	assert.NotEmpty(t, cat.Animals())
	assert.NotEmpty(t, cat.Foods())
}

func TestNew_RoleCoverageAcrossBands(t *testing.T) {
	cat, err := catalog.New()
	require.NoError(t, err)

	// The opponent synthesizer draws each role from a band around any
	// possible average rarity; an empty pool there would panic it.
	for center := domain.MinRarityIndex; center <= domain.MaxRarityIndex; center++ {
		band := catalog.RarityBand(center)
		for _, role := range domain.AllRoles {
			pool := cat.AnimalsByRoleAndRarity(band, role)
			assert.NotEmpty(t, pool, "role %s has no animals around rarity %d", role, center)
		}
	}
}

func TestResolveAnimal(t *testing.T) {
	cat, err := catalog.New()
	require.NoError(t, err)

	byID, ok := cat.ResolveAnimal("mouse")
	require.True(t, ok)
	assert.Equal(t, "mouse", byID.ID)

	byAlias, ok := cat.ResolveAnimal("t-rex")
	require.True(t, ok)
	assert.Equal(t, "trex", byAlias.ID)

	byEmoji, ok := cat.ResolveAnimal("🐉")
	require.True(t, ok)
	assert.Equal(t, "dragon", byEmoji.ID)

	caseFolded, ok := cat.ResolveAnimal("  MOUSE ")
	require.True(t, ok)
	assert.Equal(t, "mouse", caseFolded.ID)

	_, ok = cat.ResolveAnimal("gryphon")
	assert.False(t, ok)
}

func TestResolveFood(t *testing.T) {
	cat, err := catalog.New()
	require.NoError(t, err)

	byAlias, ok := cat.ResolveFood("gapple")
	require.True(t, ok)
	assert.Equal(t, "golden_apple", byAlias.ID)

	byEmoji, ok := cat.ResolveFood("🍎")
	require.True(t, ok)
	assert.Equal(t, "apple", byEmoji.ID)
}

func TestFoodsNearRarity(t *testing.T) {
	cat, err := catalog.New()
	require.NoError(t, err)

	for _, f := range cat.FoodsNearRarity(0) {
		assert.LessOrEqual(t, f.Rarity.Index(), 1)
	}
	for _, f := range cat.FoodsNearRarity(6) {
		assert.GreaterOrEqual(t, f.Rarity.Index(), 5)
	}
}

func TestSpawnChance_SplitsRarityChance(t *testing.T) {
	cat, err := catalog.New()
	require.NoError(t, err)

	total := 0.0
	for _, a := range cat.Animals() {
		chance := cat.SpawnChance(a)
		assert.Greater(t, chance, 0.0, "animal %s", a.ID)
		total += chance
	}
	assert.InDelta(t, 100.0, total, 1e-6)
}

func TestCatalog_UniqueEmojis(t *testing.T) {
	cat, err := catalog.New()
	require.NoError(t, err)

	seen := make(map[string]string)
	for _, a := range cat.Animals() {
		prev, dup := seen[a.Emoji]
		require.False(t, dup, "emoji %s shared by %s and %s", a.Emoji, prev, a.ID)
		seen[a.Emoji] = a.ID
	}
	for _, f := range cat.Foods() {
		prev, dup := seen[f.Emoji]
		require.False(t, dup, "emoji %s shared by %s and %s", f.Emoji, prev, f.ID)
		seen[f.Emoji] = f.ID
	}
}
