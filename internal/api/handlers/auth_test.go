package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/eren460540/ZyraZoo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthEndpoints(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("register returns tokens", func(t *testing.T) {
		ts.DB.Truncate(t)

		body, _ := json.Marshal(map[string]string{
			"displayName": "keeper",
			"password":    "securepassword1",
		})
		resp, err := http.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var authResp testutil.AuthResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&authResp))
		assert.Equal(t, "keeper", authResp.DisplayName)
		assert.NotEmpty(t, authResp.AccessToken)
		assert.NotEmpty(t, authResp.RefreshToken)
	})

	t.Run("register rejects short passwords", func(t *testing.T) {
		ts.DB.Truncate(t)

		body, _ := json.Marshal(map[string]string{
			"displayName": "keeper",
			"password":    "short",
		})
		resp, err := http.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("register rejects duplicate display names", func(t *testing.T) {
		ts.DB.Truncate(t)
		testutil.NewUserBuilder().WithDisplayName("keeper").BuildAndAuthenticate(t, ts)

		body, _ := json.Marshal(map[string]string{
			"displayName": "keeper",
			"password":    "securepassword1",
		})
		resp, err := http.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("login succeeds with registered credentials", func(t *testing.T) {
		ts.DB.Truncate(t)
		testutil.NewUserBuilder().WithDisplayName("keeper").WithPassword("securepassword1").BuildAndAuthenticate(t, ts)

		body, _ := json.Marshal(map[string]string{
			"displayName": "keeper",
			"password":    "securepassword1",
		})
		resp, err := http.Post(ts.APIURL("/auth/login"), "application/json", bytes.NewBuffer(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("login rejects wrong password", func(t *testing.T) {
		ts.DB.Truncate(t)
		testutil.NewUserBuilder().WithDisplayName("keeper").WithPassword("securepassword1").BuildAndAuthenticate(t, ts)

		body, _ := json.Marshal(map[string]string{
			"displayName": "keeper",
			"password":    "wrongpassword1",
		})
		resp, err := http.Post(ts.APIURL("/auth/login"), "application/json", bytes.NewBuffer(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("me returns the authenticated user", func(t *testing.T) {
		ts.DB.Truncate(t)
		user, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

		req := testutil.CreateAuthenticatedRequest(t, http.MethodGet, ts.APIURL("/auth/me"), nil, token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var me map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&me))
		assert.Equal(t, user.ID.String(), me["userId"])
		assert.Equal(t, user.DisplayName, me["displayName"])
	})

	t.Run("me rejects a missing token", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/auth/me"))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
