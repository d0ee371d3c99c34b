package postgres

import (
	"context"
	"errors"

	"github.com/eren460540/ZyraZoo/internal/domain"
	"gorm.io/gorm"
)

type globalStatRepository struct {
	db *gorm.DB
}

func NewGlobalStatRepository(db *gorm.DB) *globalStatRepository {
	return &globalStatRepository{db: db}
}

func (r *globalStatRepository) Get(ctx context.Context, animalID string) (*domain.GlobalAnimalStat, error) {
	var stat domain.GlobalAnimalStat
	err := r.db.WithContext(ctx).First(&stat, "animal_id = ?", animalID).Error
	if err != nil {
		return nil, err
	}
	return &stat, nil
}

func (r *globalStatRepository) GetAll(ctx context.Context) ([]*domain.GlobalAnimalStat, error) {
	var stats []*domain.GlobalAnimalStat
	err := r.db.WithContext(ctx).Order("animal_id").Find(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *globalStatRepository) RecordHatch(ctx context.Context, animalID string, count int) error {
	return r.adjust(ctx, animalID, func(stat *domain.GlobalAnimalStat) {
		stat.Hatched += count
	})
}

func (r *globalStatRepository) AdjustOwned(ctx context.Context, animalID string, delta int) error {
	return r.adjust(ctx, animalID, func(stat *domain.GlobalAnimalStat) {
		stat.Owned += delta
		if stat.Owned < 0 {
			stat.Owned = 0
		}
	})
}

func (r *globalStatRepository) RecordSale(ctx context.Context, animalID string, count int) error {
	return r.adjust(ctx, animalID, func(stat *domain.GlobalAnimalStat) {
		stat.Sold += count
	})
}

func (r *globalStatRepository) adjust(ctx context.Context, animalID string, apply func(*domain.GlobalAnimalStat)) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stat domain.GlobalAnimalStat
		err := tx.First(&stat, "animal_id = ?", animalID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			stat = domain.GlobalAnimalStat{AnimalID: animalID}
			if err := tx.Create(&stat).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		apply(&stat)
		return tx.Save(&stat).Error
	})
}
