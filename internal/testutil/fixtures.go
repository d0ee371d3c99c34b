package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/eren460540/ZyraZoo/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	displayName string
	password    string
	coins       int
	energy      int
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		displayName: fmt.Sprintf("testuser_%s", uuid.New().String()[:8]),
		password:    "testpassword123",
	}
}

// WithDisplayName sets the display name
func (b *UserBuilder) WithDisplayName(name string) *UserBuilder {
	b.displayName = name
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithCoins sets the starting coin balance
func (b *UserBuilder) WithCoins(coins int) *UserBuilder {
	b.coins = coins
	return b
}

// WithEnergy sets the starting energy balance
func (b *UserBuilder) WithEnergy(energy int) *UserBuilder {
	b.energy = energy
	return b
}

// Build creates the user and an empty player profile in the database and
// returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		DisplayName:  b.displayName,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	profile := &domain.PlayerProfile{
		ID:     uuid.New(),
		UserID: user.ID,
		Coins:  b.coins,
		Energy: b.energy,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create player profile: %v", err)
	}

	return user, b.password
}

// AuthResponse matches the API auth response
type AuthResponse struct {
	UserID       string `json:"userId"`
	DisplayName  string `json:"displayName"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// BuildAndAuthenticate creates a user via API and returns the user and access token
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	reqBody := map[string]string{
		"displayName": b.displayName,
		"password":    b.password,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var authResp AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	userID, _ := uuid.Parse(authResp.UserID)
	user := &domain.User{
		ID:          userID,
		DisplayName: authResp.DisplayName,
	}

	return user, authResp.AccessToken
}

// ProfileFor loads a user's player profile
func ProfileFor(t *testing.T, db *gorm.DB, userID uuid.UUID) *domain.PlayerProfile {
	t.Helper()

	var profile domain.PlayerProfile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		t.Fatalf("failed to load profile: %v", err)
	}
	return &profile
}

// UpdateProfile persists a modified profile
func UpdateProfile(t *testing.T, db *gorm.DB, profile *domain.PlayerProfile) {
	t.Helper()

	if err := db.Save(profile).Error; err != nil {
		t.Fatalf("failed to update profile: %v", err)
	}
}

// GrantAnimals seeds an animal holding for a player
func GrantAnimals(t *testing.T, db *gorm.DB, playerID uuid.UUID, animalID string, mutation domain.Mutation, count int) {
	t.Helper()

	holding := &domain.AnimalHolding{
		ID:       uuid.New(),
		PlayerID: playerID,
		AnimalID: animalID,
		Mutation: mutation,
		Count:    count,
	}
	if err := db.Create(holding).Error; err != nil {
		t.Fatalf("failed to grant animals: %v", err)
	}
}

// GrantFood seeds a food holding for a player
func GrantFood(t *testing.T, db *gorm.DB, playerID uuid.UUID, foodID string, count int) {
	t.Helper()

	holding := &domain.FoodHolding{
		ID:       uuid.New(),
		PlayerID: playerID,
		FoodID:   foodID,
		Count:    count,
	}
	if err := db.Create(holding).Error; err != nil {
		t.Fatalf("failed to grant food: %v", err)
	}
}

// PlaceTeamSlot seeds a team slot for a player
func PlaceTeamSlot(t *testing.T, db *gorm.DB, playerID uuid.UUID, position int, animalID string, mutation domain.Mutation) {
	t.Helper()

	slot := &domain.TeamSlot{
		ID:       uuid.New(),
		PlayerID: playerID,
		Position: position,
		AnimalID: animalID,
		Mutation: mutation,
	}
	if err := db.Create(slot).Error; err != nil {
		t.Fatalf("failed to place team slot: %v", err)
	}
}

// SeedBattleTeam grants and places a full role-correct team. The default
// team uses the common-rarity starters so it works against a fresh catalog.
func SeedBattleTeam(t *testing.T, db *gorm.DB, playerID uuid.UUID) {
	t.Helper()

	team := []struct {
		position int
		animalID string
	}{
		{1, "pig"},
		{2, "mouse"},
		{3, "bug"},
	}
	for _, member := range team {
		GrantAnimals(t, db, playerID, member.animalID, domain.MutationNone, 1)
		PlaceTeamSlot(t, db, playerID, member.position, member.animalID, domain.MutationNone)
	}
}

// CreateAuthenticatedRequest creates an HTTP request with auth token
func CreateAuthenticatedRequest(t *testing.T, method, url string, body interface{}, token string) *http.Request {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}
