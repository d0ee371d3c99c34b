package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PlayerProfile holds a player's persistent game state. The battle engine
// never touches these rows directly; services read a snapshot, invoke the
// engine, and persist the returned result.
type PlayerProfile struct {
	ID                  uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID              uuid.UUID `json:"userId" gorm:"type:uuid;uniqueIndex;not null"`
	Coins               int       `json:"coins" gorm:"not null;default:0"`
	Energy              int       `json:"energy" gorm:"not null;default:0"`
	BattlesWon          int       `json:"battlesWon" gorm:"not null;default:0"`
	TotalHunts          int       `json:"totalHunts" gorm:"not null;default:0"`
	LastEnemySignature  string    `json:"-"`
	HuntCooldownUntil   time.Time `json:"huntCooldownUntil"`
	BattleCooldownUntil time.Time `json:"battleCooldownUntil"`
	DailyCooldownUntil  time.Time `json:"dailyCooldownUntil"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// AnimalHolding counts owned units of one animal species at one mutation
// tier. One row per (player, animal, mutation); counts never go negative.
type AnimalHolding struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PlayerID uuid.UUID `json:"playerId" gorm:"type:uuid;not null;uniqueIndex:idx_player_animal_mutation,priority:1"`
	AnimalID string    `json:"animalId" gorm:"not null;uniqueIndex:idx_player_animal_mutation,priority:2"`
	Mutation Mutation  `json:"mutation" gorm:"not null;uniqueIndex:idx_player_animal_mutation,priority:3"`
	Count    int       `json:"count" gorm:"not null;default:0"`
}

// FoodHolding counts owned units of one food
type FoodHolding struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PlayerID uuid.UUID `json:"playerId" gorm:"type:uuid;not null;uniqueIndex:idx_player_food,priority:1"`
	FoodID   string    `json:"foodId" gorm:"not null;uniqueIndex:idx_player_food,priority:2"`
	Count    int       `json:"count" gorm:"not null;default:0"`
}

// TeamSlot binds an owned animal instance to one of the three fixed team
// positions. FoodID is the equipped food, if any; FoodWins counts battle
// wins since that food was equipped.
type TeamSlot struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PlayerID uuid.UUID `json:"playerId" gorm:"type:uuid;not null;uniqueIndex:idx_player_position,priority:1"`
	Position int       `json:"position" gorm:"not null;uniqueIndex:idx_player_position,priority:2"`
	AnimalID string    `json:"animalId" gorm:"not null"`
	Mutation Mutation  `json:"mutation" gorm:"not null"`
	FoodID   *string   `json:"foodId"`
	FoodWins int       `json:"foodWins" gorm:"not null;default:0"`
}

// GlobalAnimalStat tracks service-wide hatch/owned/sold counters per species
type GlobalAnimalStat struct {
	AnimalID string `json:"animalId" gorm:"primaryKey"`
	Hatched  int    `json:"hatched" gorm:"not null;default:0"`
	Owned    int    `json:"owned" gorm:"not null;default:0"`
	Sold     int    `json:"sold" gorm:"not null;default:0"`
}

// BattleRecord is the persisted telemetry of one resolved battle.
// Slots holds the per-slot final state for both sides as JSON.
type BattleRecord struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PlayerID       uuid.UUID      `json:"playerId" gorm:"type:uuid;not null;index"`
	Won            bool           `json:"won" gorm:"not null"`
	Rounds         int            `json:"rounds" gorm:"not null"`
	PlayerPower    float64        `json:"playerPower" gorm:"not null"`
	EnemyPower     float64        `json:"enemyPower" gorm:"not null"`
	CoinsAwarded   int            `json:"coinsAwarded" gorm:"not null"`
	EnergyAwarded  int            `json:"energyAwarded" gorm:"not null"`
	EnemySignature string         `json:"enemySignature"`
	Slots          datatypes.JSON `json:"slots" gorm:"type:jsonb"`
	CreatedAt      time.Time      `json:"createdAt"`
}
