package postgres

import (
	"context"

	"github.com/eren460540/ZyraZoo/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type battleRecordRepository struct {
	db *gorm.DB
}

func NewBattleRecordRepository(db *gorm.DB) *battleRecordRepository {
	return &battleRecordRepository{db: db}
}

func (r *battleRecordRepository) Create(ctx context.Context, record *domain.BattleRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *battleRecordRepository) ListByPlayer(ctx context.Context, playerID uuid.UUID, limit, offset int) ([]*domain.BattleRecord, error) {
	var records []*domain.BattleRecord
	err := r.db.WithContext(ctx).
		Where("player_id = ?", playerID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
