package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/eren460540/ZyraZoo/internal/domain"
	"github.com/eren460540/ZyraZoo/internal/economy"
	"github.com/eren460540/ZyraZoo/internal/repository/postgres"
	"github.com/eren460540/ZyraZoo/internal/service"
	"github.com/eren460540/ZyraZoo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_GetProfile(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	profileService := service.NewProfileService(repos.Profile, repos.AnimalHolding)
	ctx := context.Background()

	t.Run("sums mutation totals across species", func(t *testing.T) {
		testDB.Truncate(t)
		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		profile := testutil.ProfileFor(t, testDB.DB, user.ID)

		testutil.GrantAnimals(t, testDB.DB, profile.ID, "pig", domain.MutationNone, 3)
		testutil.GrantAnimals(t, testDB.DB, profile.ID, "mouse", domain.MutationNone, 2)
		testutil.GrantAnimals(t, testDB.DB, profile.ID, "mouse", domain.MutationGolden, 1)

		view, err := profileService.GetProfile(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, view.MutationTotals[domain.MutationNone])
		assert.Equal(t, 1, view.MutationTotals[domain.MutationGolden])
		assert.Equal(t, 1, view.Level)
		assert.Equal(t, 1, view.WinsForNext)
	})

	t.Run("reports level from battle wins", func(t *testing.T) {
		testDB.Truncate(t)
		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		profile := testutil.ProfileFor(t, testDB.DB, user.ID)
		profile.BattlesWon = 7
		testutil.UpdateProfile(t, testDB.DB, profile)

		view, err := profileService.GetProfile(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 4, view.Level)
		assert.Equal(t, 8, view.WinsForNext)
	})
}

func TestProfileService_ClaimDaily(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	profileService := service.NewProfileService(repos.Profile, repos.AnimalHolding)
	ctx := context.Background()

	t.Run("grants coins and energy", func(t *testing.T) {
		testDB.Truncate(t)
		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

		result, err := profileService.ClaimDaily(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, economy.DailyCoinGrant, result.Coins)
		assert.Equal(t, economy.DailyEnergyGrant, result.Energy)
		assert.True(t, result.NextClaim.After(time.Now()))

		profile := testutil.ProfileFor(t, testDB.DB, user.ID)
		assert.Equal(t, economy.DailyCoinGrant, profile.Coins)
		assert.Equal(t, economy.DailyEnergyGrant, profile.Energy)
	})

	t.Run("rejects a second claim within the cooldown", func(t *testing.T) {
		testDB.Truncate(t)
		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

		_, err := profileService.ClaimDaily(ctx, user.ID)
		require.NoError(t, err)

		_, err = profileService.ClaimDaily(ctx, user.ID)
		assert.ErrorIs(t, err, service.ErrDailyOnCooldown)
	})

	t.Run("allows a claim after the cooldown lapses", func(t *testing.T) {
		testDB.Truncate(t)
		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		profile := testutil.ProfileFor(t, testDB.DB, user.ID)
		profile.DailyCooldownUntil = time.Now().Add(-time.Minute)
		testutil.UpdateProfile(t, testDB.DB, profile)

		_, err := profileService.ClaimDaily(ctx, user.ID)
		require.NoError(t, err)
	})
}
