package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/eren460540/ZyraZoo/internal/domain"
	"github.com/eren460540/ZyraZoo/internal/engine"
	"github.com/eren460540/ZyraZoo/internal/repository/postgres"
	"github.com/eren460540/ZyraZoo/internal/service"
	"github.com/eren460540/ZyraZoo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBattleService(t *testing.T, testDB *testutil.TestDB) *service.BattleService {
	t.Helper()
	repos := postgres.NewRepositories(testDB.DB)
	cat := testutil.NewTestCatalog(t)
	return service.NewBattleService(cat, engine.New(cat), repos.Profile, repos.TeamSlot, repos.BattleRecord, nil)
}

func TestBattleService_Battle(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	battleService := newBattleService(t, testDB)
	ctx := context.Background()

	t.Run("resolves a battle and persists the aftermath", func(t *testing.T) {
		testDB.Truncate(t)
		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		profile := testutil.ProfileFor(t, testDB.DB, user.ID)
		testutil.SeedBattleTeam(t, testDB.DB, profile.ID)

		view, err := battleService.Battle(ctx, user.ID)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, view.Rounds, 1)
		assert.Greater(t, view.PlayerPower, 0.0)
		assert.Greater(t, view.EnemyPower, 0.0)
		assert.True(t, view.NextBattleAt.After(time.Now()))
		if view.Won {
			assert.GreaterOrEqual(t, view.CoinsAwarded, 5)
			assert.Equal(t, 1, view.EnergyAwarded)
			assert.Equal(t, 1, view.BattlesWon)
		} else {
			assert.Zero(t, view.CoinsAwarded)
			assert.Zero(t, view.EnergyAwarded)
			assert.Zero(t, view.BattlesWon)
		}

		profile = testutil.ProfileFor(t, testDB.DB, user.ID)
		assert.NotEmpty(t, profile.LastEnemySignature)
		assert.True(t, profile.BattleCooldownUntil.After(time.Now()))

		records, err := battleService.History(ctx, user.ID, 10, 0)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, view.Won, records[0].Won)
		assert.Equal(t, view.Rounds, records[0].Rounds)
		assert.NotEmpty(t, records[0].Slots)
	})

	t.Run("rejects an incomplete team", func(t *testing.T) {
		testDB.Truncate(t)
		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		profile := testutil.ProfileFor(t, testDB.DB, user.ID)
		testutil.GrantAnimals(t, testDB.DB, profile.ID, "pig", domain.MutationNone, 1)
		testutil.PlaceTeamSlot(t, testDB.DB, profile.ID, 1, "pig", domain.MutationNone)

		_, err := battleService.Battle(ctx, user.ID)
		assert.ErrorIs(t, err, domain.ErrIncompleteTeam)
	})

	t.Run("enforces the battle cooldown", func(t *testing.T) {
		testDB.Truncate(t)
		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		profile := testutil.ProfileFor(t, testDB.DB, user.ID)
		testutil.SeedBattleTeam(t, testDB.DB, profile.ID)

		_, err := battleService.Battle(ctx, user.ID)
		require.NoError(t, err)

		_, err = battleService.Battle(ctx, user.ID)
		assert.ErrorIs(t, err, service.ErrBattleOnCooldown)
	})

	t.Run("increments food win counters only on wins", func(t *testing.T) {
		testDB.Truncate(t)
		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		profile := testutil.ProfileFor(t, testDB.DB, user.ID)
		testutil.SeedBattleTeam(t, testDB.DB, profile.ID)
		testutil.GrantFood(t, testDB.DB, profile.ID, "apple", 1)

		repos := postgres.NewRepositories(testDB.DB)
		appleID := "apple"
		slot, err := repos.TeamSlot.Get(ctx, profile.ID, 1)
		require.NoError(t, err)
		slot.FoodID = &appleID
		require.NoError(t, repos.TeamSlot.Update(ctx, slot))

		view, err := battleService.Battle(ctx, user.ID)
		require.NoError(t, err)

		slot, err = repos.TeamSlot.Get(ctx, profile.ID, 1)
		require.NoError(t, err)
		if view.Won {
			assert.Equal(t, 1, slot.FoodWins)
		} else {
			assert.Zero(t, slot.FoodWins)
		}
	})
}

func TestBattleService_History(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	battleService := newBattleService(t, testDB)
	ctx := context.Background()

	t.Run("pages newest first", func(t *testing.T) {
		testDB.Truncate(t)
		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		profile := testutil.ProfileFor(t, testDB.DB, user.ID)
		testutil.SeedBattleTeam(t, testDB.DB, profile.ID)

		for i := 0; i < 3; i++ {
			profile = testutil.ProfileFor(t, testDB.DB, user.ID)
			profile.BattleCooldownUntil = time.Time{}
			testutil.UpdateProfile(t, testDB.DB, profile)

			_, err := battleService.Battle(ctx, user.ID)
			require.NoError(t, err)
		}

		records, err := battleService.History(ctx, user.ID, 2, 0)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.True(t, records[0].CreatedAt.After(records[1].CreatedAt) || records[0].CreatedAt.Equal(records[1].CreatedAt))

		rest, err := battleService.History(ctx, user.ID, 2, 2)
		require.NoError(t, err)
		assert.Len(t, rest, 1)
	})
}
