package service

import (
	"context"
	"errors"
	"time"

	"github.com/eren460540/ZyraZoo/internal/domain"
	"github.com/eren460540/ZyraZoo/internal/economy"
	"github.com/eren460540/ZyraZoo/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound = errors.New("player profile not found")
	ErrDailyOnCooldown = errors.New("daily reward already claimed")
)

type ProfileService struct {
	profileRepo repository.ProfileRepository
	holdingRepo repository.AnimalHoldingRepository
}

func NewProfileService(profileRepo repository.ProfileRepository, holdingRepo repository.AnimalHoldingRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		holdingRepo: holdingRepo,
	}
}

// ProfileView is the player-facing profile summary
type ProfileView struct {
	Profile        *domain.PlayerProfile   `json:"profile"`
	Level          int                     `json:"level"`
	WinsForNext    int                     `json:"winsForNextLevel"`
	MutationTotals map[domain.Mutation]int `json:"mutationTotals"`
}

func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	profile, err := s.getProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	holdings, err := s.holdingRepo.ListByPlayer(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	totals := domain.NewMutationCounts()
	for _, h := range holdings {
		totals[h.Mutation] += h.Count
	}

	return &ProfileView{
		Profile:        profile,
		Level:          economy.LevelForWins(profile.BattlesWon),
		WinsForNext:    economy.WinsForNextLevel(profile.BattlesWon),
		MutationTotals: totals,
	}, nil
}

// DailyResult reports what one daily claim granted
type DailyResult struct {
	Coins     int       `json:"coins"`
	Energy    int       `json:"energy"`
	NextClaim time.Time `json:"nextClaim"`
}

func (s *ProfileService) ClaimDaily(ctx context.Context, userID uuid.UUID) (*DailyResult, error) {
	profile, err := s.getProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if profile.DailyCooldownUntil.After(now) {
		return nil, ErrDailyOnCooldown
	}

	profile.Coins += economy.DailyCoinGrant
	profile.Energy += economy.DailyEnergyGrant
	profile.DailyCooldownUntil = now.Add(economy.DailyCooldown)

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	return &DailyResult{
		Coins:     economy.DailyCoinGrant,
		Energy:    economy.DailyEnergyGrant,
		NextClaim: profile.DailyCooldownUntil,
	}, nil
}

func (s *ProfileService) getProfile(ctx context.Context, userID uuid.UUID) (*domain.PlayerProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}
