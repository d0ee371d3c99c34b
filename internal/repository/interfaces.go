package repository

import (
	"context"

	"github.com/eren460540/ZyraZoo/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByDisplayName(ctx context.Context, displayName string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.UserSession) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.PlayerProfile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.PlayerProfile, error)
	Update(ctx context.Context, profile *domain.PlayerProfile) error
}

type AnimalHoldingRepository interface {
	Get(ctx context.Context, playerID uuid.UUID, animalID string, mutation domain.Mutation) (*domain.AnimalHolding, error)
	ListByPlayer(ctx context.Context, playerID uuid.UUID) ([]*domain.AnimalHolding, error)
	// Add upserts the holding row and moves its count by delta. A delta
	// that would drive the count negative is an error and changes nothing.
	Add(ctx context.Context, playerID uuid.UUID, animalID string, mutation domain.Mutation, delta int) (*domain.AnimalHolding, error)
	// Exchange debits cost copies of the consumed tier and credits quantity
	// copies of the produced tier atomically, returning the produced
	// holding. A failure on either side leaves both counts untouched.
	Exchange(ctx context.Context, playerID uuid.UUID, animalID string, consumed, produced domain.Mutation, cost, quantity int) (*domain.AnimalHolding, error)
}

type FoodHoldingRepository interface {
	Get(ctx context.Context, playerID uuid.UUID, foodID string) (*domain.FoodHolding, error)
	ListByPlayer(ctx context.Context, playerID uuid.UUID) ([]*domain.FoodHolding, error)
	Add(ctx context.Context, playerID uuid.UUID, foodID string, delta int) (*domain.FoodHolding, error)
}

type TeamSlotRepository interface {
	ListByPlayer(ctx context.Context, playerID uuid.UUID) ([]*domain.TeamSlot, error)
	Get(ctx context.Context, playerID uuid.UUID, position int) (*domain.TeamSlot, error)
	Upsert(ctx context.Context, slot *domain.TeamSlot) error
	Update(ctx context.Context, slot *domain.TeamSlot) error
	Clear(ctx context.Context, playerID uuid.UUID, position int) error
}

type GlobalStatRepository interface {
	Get(ctx context.Context, animalID string) (*domain.GlobalAnimalStat, error)
	GetAll(ctx context.Context) ([]*domain.GlobalAnimalStat, error)
	RecordHatch(ctx context.Context, animalID string, count int) error
	AdjustOwned(ctx context.Context, animalID string, delta int) error
	RecordSale(ctx context.Context, animalID string, count int) error
}

type BattleRecordRepository interface {
	Create(ctx context.Context, record *domain.BattleRecord) error
	ListByPlayer(ctx context.Context, playerID uuid.UUID, limit, offset int) ([]*domain.BattleRecord, error)
}

type Repositories struct {
	User          UserRepository
	Session       SessionRepository
	Profile       ProfileRepository
	AnimalHolding AnimalHoldingRepository
	FoodHolding   FoodHoldingRepository
	TeamSlot      TeamSlotRepository
	GlobalStat    GlobalStatRepository
	BattleRecord  BattleRecordRepository
}
