package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/eren460540/ZyraZoo/internal/domain"
	"github.com/eren460540/ZyraZoo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogEndpoints(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("animals are public", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/catalog/animals"))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Animals []json.RawMessage `json:"animals"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, len(ts.Catalog.Animals()), len(body.Animals))
	})

	t.Run("index covers the whole catalog", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/catalog/index"))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Entries []struct {
				SpawnChance float64 `json:"spawnChance"`
			} `json:"entries"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, len(ts.Catalog.Animals()), len(body.Entries))
	})
}

func TestGameplayFlow(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("hunt then team then battle", func(t *testing.T) {
		ts.DB.Truncate(t)
		user, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
		profile := testutil.ProfileFor(t, ts.DB.DB, user.ID)
		profile.Coins = 50
		profile.Energy = 10
		testutil.UpdateProfile(t, ts.DB.DB, profile)

		// Hunt grants one animal at level one
		req := testutil.CreateAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/menagerie/hunt"), nil, token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var hunt struct {
			Rolls int `json:"rolls"`
			Drops []struct {
				Animal struct {
					ID string `json:"id"`
				} `json:"animal"`
			} `json:"drops"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&hunt))
		assert.Equal(t, 1, hunt.Rolls)
		require.Len(t, hunt.Drops, 1)

		// Seed a full role-correct team; hunted drops may not cover all roles
		testutil.SeedBattleTeam(t, ts.DB.DB, profile.ID)

		req = testutil.CreateAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/battles/"), nil, token)
		resp2, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp2.Body.Close()
		require.Equal(t, http.StatusOK, resp2.StatusCode)

		var battle struct {
			Won        bool    `json:"won"`
			Rounds     int     `json:"rounds"`
			EnemyPower float64 `json:"enemyPower"`
		}
		require.NoError(t, json.NewDecoder(resp2.Body).Decode(&battle))
		assert.GreaterOrEqual(t, battle.Rounds, 1)
		assert.Greater(t, battle.EnemyPower, 0.0)

		// Cooldown blocks an immediate rematch
		req = testutil.CreateAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/battles/"), nil, token)
		resp3, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp3.Body.Close()
		assert.Equal(t, http.StatusTooManyRequests, resp3.StatusCode)
	})

	t.Run("battle without a team conflicts", func(t *testing.T) {
		ts.DB.Truncate(t)
		_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

		req := testutil.CreateAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/battles/"), nil, token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("team slot endpoints enforce roles", func(t *testing.T) {
		ts.DB.Truncate(t)
		user, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
		profile := testutil.ProfileFor(t, ts.DB.DB, user.ID)
		testutil.GrantAnimals(t, ts.DB.DB, profile.ID, "pig", domain.MutationNone, 1)

		req := testutil.CreateAuthenticatedRequest(t, http.MethodPut, ts.APIURL("/team/slots/2"),
			map[string]string{"animal": "pig", "mutation": "none"}, token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		req = testutil.CreateAuthenticatedRequest(t, http.MethodPut, ts.APIURL("/team/slots/1"),
			map[string]string{"animal": "pig", "mutation": "none"}, token)
		resp2, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp2.Body.Close()
		assert.Equal(t, http.StatusOK, resp2.StatusCode)
	})

	t.Run("daily claim pays once", func(t *testing.T) {
		ts.DB.Truncate(t)
		_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

		req := testutil.CreateAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/profile/daily"), nil, token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		req = testutil.CreateAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/profile/daily"), nil, token)
		resp2, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp2.Body.Close()
		assert.Equal(t, http.StatusTooManyRequests, resp2.StatusCode)
	})
}
