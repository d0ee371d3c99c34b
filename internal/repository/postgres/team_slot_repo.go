package postgres

import (
	"context"
	"errors"

	"github.com/eren460540/ZyraZoo/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type teamSlotRepository struct {
	db *gorm.DB
}

func NewTeamSlotRepository(db *gorm.DB) *teamSlotRepository {
	return &teamSlotRepository{db: db}
}

func (r *teamSlotRepository) ListByPlayer(ctx context.Context, playerID uuid.UUID) ([]*domain.TeamSlot, error) {
	var slots []*domain.TeamSlot
	err := r.db.WithContext(ctx).
		Where("player_id = ?", playerID).
		Order("position").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *teamSlotRepository) Get(ctx context.Context, playerID uuid.UUID, position int) (*domain.TeamSlot, error) {
	var slot domain.TeamSlot
	err := r.db.WithContext(ctx).First(&slot, "player_id = ? AND position = ?", playerID, position).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *teamSlotRepository) Upsert(ctx context.Context, slot *domain.TeamSlot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.TeamSlot
		err := tx.First(&existing, "player_id = ? AND position = ?", slot.PlayerID, slot.Position).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if slot.ID == uuid.Nil {
				slot.ID = uuid.New()
			}
			return tx.Create(slot).Error
		}
		if err != nil {
			return err
		}
		slot.ID = existing.ID
		return tx.Save(slot).Error
	})
}

func (r *teamSlotRepository) Update(ctx context.Context, slot *domain.TeamSlot) error {
	return r.db.WithContext(ctx).Save(slot).Error
}

func (r *teamSlotRepository) Clear(ctx context.Context, playerID uuid.UUID, position int) error {
	return r.db.WithContext(ctx).
		Delete(&domain.TeamSlot{}, "player_id = ? AND position = ?", playerID, position).Error
}
