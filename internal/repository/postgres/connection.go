package postgres

import (
	"github.com/eren460540/ZyraZoo/internal/domain"
	"github.com/eren460540/ZyraZoo/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.User{},
		&domain.UserSession{},
		&domain.PlayerProfile{},
		&domain.AnimalHolding{},
		&domain.FoodHolding{},
		&domain.TeamSlot{},
		&domain.GlobalAnimalStat{},
		&domain.BattleRecord{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:          NewUserRepository(db),
		Session:       NewSessionRepository(db),
		Profile:       NewProfileRepository(db),
		AnimalHolding: NewAnimalHoldingRepository(db),
		FoodHolding:   NewFoodHoldingRepository(db),
		TeamSlot:      NewTeamSlotRepository(db),
		GlobalStat:    NewGlobalStatRepository(db),
		BattleRecord:  NewBattleRecordRepository(db),
	}
}
