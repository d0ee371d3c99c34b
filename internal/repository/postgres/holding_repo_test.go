package postgres_test

import (
	"context"
	"testing"

	"github.com/eren460540/ZyraZoo/internal/domain"
	"github.com/eren460540/ZyraZoo/internal/repository/postgres"
	"github.com/eren460540/ZyraZoo/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimalHoldingRepository_Add(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	t.Run("creates the row on first add", func(t *testing.T) {
		testDB.Truncate(t)
		playerID := seedPlayer(t, testDB)

		holding, err := repos.AnimalHolding.Add(ctx, playerID, "pig", domain.MutationNone, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, holding.Count)
	})

	t.Run("accumulates deltas on the same row", func(t *testing.T) {
		testDB.Truncate(t)
		playerID := seedPlayer(t, testDB)

		_, err := repos.AnimalHolding.Add(ctx, playerID, "pig", domain.MutationNone, 2)
		require.NoError(t, err)
		holding, err := repos.AnimalHolding.Add(ctx, playerID, "pig", domain.MutationNone, 3)
		require.NoError(t, err)
		assert.Equal(t, 5, holding.Count)

		holding, err = repos.AnimalHolding.Add(ctx, playerID, "pig", domain.MutationNone, -4)
		require.NoError(t, err)
		assert.Equal(t, 1, holding.Count)
	})

	t.Run("rejects a delta that would go negative", func(t *testing.T) {
		testDB.Truncate(t)
		playerID := seedPlayer(t, testDB)

		_, err := repos.AnimalHolding.Add(ctx, playerID, "pig", domain.MutationNone, 2)
		require.NoError(t, err)

		_, err = repos.AnimalHolding.Add(ctx, playerID, "pig", domain.MutationNone, -3)
		assert.ErrorIs(t, err, postgres.ErrInsufficientHoldings)

		holding, err := repos.AnimalHolding.Get(ctx, playerID, "pig", domain.MutationNone)
		require.NoError(t, err)
		assert.Equal(t, 2, holding.Count)
	})

	t.Run("tracks mutation tiers separately", func(t *testing.T) {
		testDB.Truncate(t)
		playerID := seedPlayer(t, testDB)

		_, err := repos.AnimalHolding.Add(ctx, playerID, "pig", domain.MutationNone, 1)
		require.NoError(t, err)
		_, err = repos.AnimalHolding.Add(ctx, playerID, "pig", domain.MutationGolden, 1)
		require.NoError(t, err)

		holdings, err := repos.AnimalHolding.ListByPlayer(ctx, playerID)
		require.NoError(t, err)
		assert.Len(t, holdings, 2)
	})

	t.Run("list excludes zero-count rows", func(t *testing.T) {
		testDB.Truncate(t)
		playerID := seedPlayer(t, testDB)

		_, err := repos.AnimalHolding.Add(ctx, playerID, "pig", domain.MutationNone, 1)
		require.NoError(t, err)
		_, err = repos.AnimalHolding.Add(ctx, playerID, "pig", domain.MutationNone, -1)
		require.NoError(t, err)

		holdings, err := repos.AnimalHolding.ListByPlayer(ctx, playerID)
		require.NoError(t, err)
		assert.Empty(t, holdings)
	})
}

func TestAnimalHoldingRepository_Exchange(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	t.Run("moves copies between tiers", func(t *testing.T) {
		testDB.Truncate(t)
		playerID := seedPlayer(t, testDB)

		_, err := repos.AnimalHolding.Add(ctx, playerID, "pig", domain.MutationNone, 5)
		require.NoError(t, err)

		holding, err := repos.AnimalHolding.Exchange(ctx, playerID, "pig", domain.MutationNone, domain.MutationGolden, 4, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, holding.Count)

		base, err := repos.AnimalHolding.Get(ctx, playerID, "pig", domain.MutationNone)
		require.NoError(t, err)
		assert.Equal(t, 1, base.Count)
	})

	t.Run("insufficient copies debit nothing", func(t *testing.T) {
		testDB.Truncate(t)
		playerID := seedPlayer(t, testDB)

		_, err := repos.AnimalHolding.Add(ctx, playerID, "pig", domain.MutationNone, 3)
		require.NoError(t, err)

		_, err = repos.AnimalHolding.Exchange(ctx, playerID, "pig", domain.MutationNone, domain.MutationGolden, 4, 1)
		assert.ErrorIs(t, err, postgres.ErrInsufficientHoldings)

		base, err := repos.AnimalHolding.Get(ctx, playerID, "pig", domain.MutationNone)
		require.NoError(t, err)
		assert.Equal(t, 3, base.Count)
	})

	t.Run("failed credit rolls back the debit", func(t *testing.T) {
		testDB.Truncate(t)
		playerID := seedPlayer(t, testDB)

		_, err := repos.AnimalHolding.Add(ctx, playerID, "pig", domain.MutationNone, 5)
		require.NoError(t, err)

		// A negative credit against an empty tier fails after the debit
		// already ran inside the transaction; both moves must unwind.
		_, err = repos.AnimalHolding.Exchange(ctx, playerID, "pig", domain.MutationNone, domain.MutationGolden, 4, -1)
		assert.ErrorIs(t, err, postgres.ErrInsufficientHoldings)

		base, err := repos.AnimalHolding.Get(ctx, playerID, "pig", domain.MutationNone)
		require.NoError(t, err)
		assert.Equal(t, 5, base.Count)
	})
}

func TestTeamSlotRepository_Upsert(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	t.Run("replaces the slot at the same position", func(t *testing.T) {
		testDB.Truncate(t)
		playerID := seedPlayer(t, testDB)

		require.NoError(t, repos.TeamSlot.Upsert(ctx, &domain.TeamSlot{
			PlayerID: playerID,
			Position: 1,
			AnimalID: "pig",
			Mutation: domain.MutationNone,
		}))
		require.NoError(t, repos.TeamSlot.Upsert(ctx, &domain.TeamSlot{
			PlayerID: playerID,
			Position: 1,
			AnimalID: "cow",
			Mutation: domain.MutationGolden,
		}))

		slots, err := repos.TeamSlot.ListByPlayer(ctx, playerID)
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, "cow", slots[0].AnimalID)
		assert.Equal(t, domain.MutationGolden, slots[0].Mutation)
	})

	t.Run("clear removes only the given position", func(t *testing.T) {
		testDB.Truncate(t)
		playerID := seedPlayer(t, testDB)

		require.NoError(t, repos.TeamSlot.Upsert(ctx, &domain.TeamSlot{
			PlayerID: playerID, Position: 1, AnimalID: "pig", Mutation: domain.MutationNone,
		}))
		require.NoError(t, repos.TeamSlot.Upsert(ctx, &domain.TeamSlot{
			PlayerID: playerID, Position: 2, AnimalID: "mouse", Mutation: domain.MutationNone,
		}))

		require.NoError(t, repos.TeamSlot.Clear(ctx, playerID, 1))

		slots, err := repos.TeamSlot.ListByPlayer(ctx, playerID)
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, 2, slots[0].Position)
	})
}

func TestGlobalStatRepository(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	t.Run("counters accumulate per species", func(t *testing.T) {
		testDB.Truncate(t)

		require.NoError(t, repos.GlobalStat.RecordHatch(ctx, "pig", 2))
		require.NoError(t, repos.GlobalStat.AdjustOwned(ctx, "pig", 2))
		require.NoError(t, repos.GlobalStat.RecordSale(ctx, "pig", 1))
		require.NoError(t, repos.GlobalStat.AdjustOwned(ctx, "pig", -1))

		stat, err := repos.GlobalStat.Get(ctx, "pig")
		require.NoError(t, err)
		assert.Equal(t, 2, stat.Hatched)
		assert.Equal(t, 1, stat.Owned)
		assert.Equal(t, 1, stat.Sold)
	})

	t.Run("owned never goes below zero", func(t *testing.T) {
		testDB.Truncate(t)

		require.NoError(t, repos.GlobalStat.AdjustOwned(ctx, "pig", -5))

		stat, err := repos.GlobalStat.Get(ctx, "pig")
		require.NoError(t, err)
		assert.Equal(t, 0, stat.Owned)
	})
}

func seedPlayer(t *testing.T, testDB *testutil.TestDB) uuid.UUID {
	t.Helper()
	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	return testutil.ProfileFor(t, testDB.DB, user.ID).ID
}
