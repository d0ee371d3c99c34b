package postgres

import (
	"context"
	"errors"

	"github.com/eren460540/ZyraZoo/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrInsufficientHoldings is returned when a removal would drive an owned
// count negative. The transaction rolls back and nothing changes.
var ErrInsufficientHoldings = errors.New("not enough owned to remove")

type animalHoldingRepository struct {
	db *gorm.DB
}

func NewAnimalHoldingRepository(db *gorm.DB) *animalHoldingRepository {
	return &animalHoldingRepository{db: db}
}

func (r *animalHoldingRepository) Get(ctx context.Context, playerID uuid.UUID, animalID string, mutation domain.Mutation) (*domain.AnimalHolding, error) {
	var holding domain.AnimalHolding
	err := r.db.WithContext(ctx).
		First(&holding, "player_id = ? AND animal_id = ? AND mutation = ?", playerID, animalID, mutation).Error
	if err != nil {
		return nil, err
	}
	return &holding, nil
}

func (r *animalHoldingRepository) ListByPlayer(ctx context.Context, playerID uuid.UUID) ([]*domain.AnimalHolding, error) {
	var holdings []*domain.AnimalHolding
	err := r.db.WithContext(ctx).
		Where("player_id = ? AND count > 0", playerID).
		Order("animal_id, mutation").
		Find(&holdings).Error
	if err != nil {
		return nil, err
	}
	return holdings, nil
}

func (r *animalHoldingRepository) Add(ctx context.Context, playerID uuid.UUID, animalID string, mutation domain.Mutation, delta int) (*domain.AnimalHolding, error) {
	var result *domain.AnimalHolding
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		holding, err := moveAnimalCount(tx, playerID, animalID, mutation, delta)
		if err != nil {
			return err
		}
		result = holding
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Exchange debits copies of one mutation tier and credits another in a
// single transaction. Either both moves commit or neither does, so a failed
// credit never strands the consumed copies.
func (r *animalHoldingRepository) Exchange(ctx context.Context, playerID uuid.UUID, animalID string, consumed, produced domain.Mutation, cost, quantity int) (*domain.AnimalHolding, error) {
	var result *domain.AnimalHolding
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := moveAnimalCount(tx, playerID, animalID, consumed, -cost); err != nil {
			return err
		}
		holding, err := moveAnimalCount(tx, playerID, animalID, produced, quantity)
		if err != nil {
			return err
		}
		result = holding
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func moveAnimalCount(tx *gorm.DB, playerID uuid.UUID, animalID string, mutation domain.Mutation, delta int) (*domain.AnimalHolding, error) {
	var holding domain.AnimalHolding
	err := tx.First(&holding, "player_id = ? AND animal_id = ? AND mutation = ?", playerID, animalID, mutation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		holding = domain.AnimalHolding{
			ID:       uuid.New(),
			PlayerID: playerID,
			AnimalID: animalID,
			Mutation: mutation,
		}
		if err := tx.Create(&holding).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if holding.Count+delta < 0 {
		return nil, ErrInsufficientHoldings
	}
	holding.Count += delta
	if err := tx.Save(&holding).Error; err != nil {
		return nil, err
	}
	return &holding, nil
}

type foodHoldingRepository struct {
	db *gorm.DB
}

func NewFoodHoldingRepository(db *gorm.DB) *foodHoldingRepository {
	return &foodHoldingRepository{db: db}
}

func (r *foodHoldingRepository) Get(ctx context.Context, playerID uuid.UUID, foodID string) (*domain.FoodHolding, error) {
	var holding domain.FoodHolding
	err := r.db.WithContext(ctx).First(&holding, "player_id = ? AND food_id = ?", playerID, foodID).Error
	if err != nil {
		return nil, err
	}
	return &holding, nil
}

func (r *foodHoldingRepository) ListByPlayer(ctx context.Context, playerID uuid.UUID) ([]*domain.FoodHolding, error) {
	var holdings []*domain.FoodHolding
	err := r.db.WithContext(ctx).
		Where("player_id = ? AND count > 0", playerID).
		Order("food_id").
		Find(&holdings).Error
	if err != nil {
		return nil, err
	}
	return holdings, nil
}

func (r *foodHoldingRepository) Add(ctx context.Context, playerID uuid.UUID, foodID string, delta int) (*domain.FoodHolding, error) {
	var result *domain.FoodHolding
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var holding domain.FoodHolding
		err := tx.First(&holding, "player_id = ? AND food_id = ?", playerID, foodID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			holding = domain.FoodHolding{
				ID:       uuid.New(),
				PlayerID: playerID,
				FoodID:   foodID,
			}
			if err := tx.Create(&holding).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if holding.Count+delta < 0 {
			return ErrInsufficientHoldings
		}
		holding.Count += delta
		if err := tx.Save(&holding).Error; err != nil {
			return err
		}
		result = &holding
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
