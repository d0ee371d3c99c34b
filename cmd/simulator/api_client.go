package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APIClient handles HTTP communication with the backend
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL + "/api/v1",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Response types matching backend

type AuthResponse struct {
	UserID       string `json:"userId"`
	DisplayName  string `json:"displayName"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type DailyResult struct {
	Coins  int `json:"coins"`
	Energy int `json:"energy"`
}

type HuntResult struct {
	Rolls       int `json:"rolls"`
	CoinsSpent  int `json:"coinsSpent"`
	EnergySpent int `json:"energySpent"`
	Drops       []struct {
		Animal struct {
			ID    string `json:"id"`
			Emoji string `json:"emoji"`
			Role  string `json:"role"`
		} `json:"animal"`
		Mutation string `json:"mutation"`
		New      bool   `json:"new"`
	} `json:"drops"`
}

type BattleResult struct {
	Won           bool    `json:"won"`
	Rounds        int     `json:"rounds"`
	PlayerPower   float64 `json:"playerPower"`
	EnemyPower    float64 `json:"enemyPower"`
	CoinsAwarded  int     `json:"coinsAwarded"`
	EnergyAwarded int     `json:"energyAwarded"`
	BattlesWon    int     `json:"battlesWon"`
	Level         int     `json:"level"`
}

type ZooEntry struct {
	Animal struct {
		ID    string `json:"id"`
		Emoji string `json:"emoji"`
		Role  string `json:"role"`
	} `json:"animal"`
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

// RegisterUser creates a new user account
func (c *APIClient) RegisterUser(baseName string) (*AuthResponse, error) {
	displayName := fmt.Sprintf("%s_%d", baseName, time.Now().UnixNano()%100000)

	body := map[string]string{
		"displayName": displayName,
		"password":    "testpassword123",
	}

	resp, err := c.post("/auth/register", body, "")
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("register failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var result AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}

// ClaimDaily claims the daily coin and energy grant
func (c *APIClient) ClaimDaily(token string) (*DailyResult, error) {
	resp, err := c.post("/profile/daily", nil, token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("daily failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var result DailyResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Hunt rolls for new animals
func (c *APIClient) Hunt(token string) (*HuntResult, error) {
	resp, err := c.post("/menagerie/hunt", nil, token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("hunt failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var result HuntResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Zoo lists the account's owned animals
func (c *APIClient) Zoo(token string) ([]ZooEntry, error) {
	resp, err := c.get("/menagerie/zoo", token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("zoo failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var result struct {
		Animals []ZooEntry `json:"animals"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return result.Animals, nil
}

// SetSlot places an animal into a team position
func (c *APIClient) SetSlot(token string, position int, animal, mutation string) error {
	body := map[string]string{
		"animal":   animal,
		"mutation": mutation,
	}
	resp, err := c.put(fmt.Sprintf("/team/slots/%d", position), body, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("set slot failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}
	return nil
}

// Battle runs one battle against a synthesized opponent
func (c *APIClient) Battle(token string) (*BattleResult, error) {
	resp, err := c.post("/battles/", nil, token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, errCooldown
	}
	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("battle failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var result BattleResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *APIClient) post(path string, body interface{}, token string) (*http.Response, error) {
	return c.do(http.MethodPost, path, body, token)
}

func (c *APIClient) put(path string, body interface{}, token string) (*http.Response, error) {
	return c.do(http.MethodPut, path, body, token)
}

func (c *APIClient) get(path string, token string) (*http.Response, error) {
	return c.do(http.MethodGet, path, nil, token)
}

func (c *APIClient) do(method, path string, body interface{}, token string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.httpClient.Do(req)
}
