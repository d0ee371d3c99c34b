package service

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"time"

	"github.com/eren460540/ZyraZoo/internal/catalog"
	"github.com/eren460540/ZyraZoo/internal/domain"
	"github.com/eren460540/ZyraZoo/internal/economy"
	"github.com/eren460540/ZyraZoo/internal/engine"
	"github.com/eren460540/ZyraZoo/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrBattleOnCooldown = errors.New("battle is on cooldown")

// BattleBroadcaster pushes live battle results to connected clients.
// The websocket hub implements it; a nil broadcaster disables the feed.
type BattleBroadcaster interface {
	BroadcastBattleResult(userID uuid.UUID, payload interface{})
}

type BattleService struct {
	catalog     *catalog.Catalog
	engine      *engine.Engine
	profileRepo repository.ProfileRepository
	slotRepo    repository.TeamSlotRepository
	recordRepo  repository.BattleRecordRepository
	broadcaster BattleBroadcaster
	newRand     func() *rand.Rand
}

func NewBattleService(cat *catalog.Catalog, eng *engine.Engine, profileRepo repository.ProfileRepository, slotRepo repository.TeamSlotRepository, recordRepo repository.BattleRecordRepository, broadcaster BattleBroadcaster) *BattleService {
	return &BattleService{
		catalog:     cat,
		engine:      eng,
		profileRepo: profileRepo,
		slotRepo:    slotRepo,
		recordRepo:  recordRepo,
		broadcaster: broadcaster,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// BattleView is the full client-facing result of one battle
type BattleView struct {
	Won           bool                               `json:"won"`
	Rounds        int                                `json:"rounds"`
	PlayerPower   float64                            `json:"playerPower"`
	EnemyPower    float64                            `json:"enemyPower"`
	CoinsAwarded  int                                `json:"coinsAwarded"`
	EnergyAwarded int                                `json:"energyAwarded"`
	PlayerSlots   [domain.TeamSize]engine.SlotResult `json:"playerSlots"`
	EnemySlots    [domain.TeamSize]engine.SlotResult `json:"enemySlots"`
	BattlesWon    int                                `json:"battlesWon"`
	Level         int                                `json:"level"`
	NextBattleAt  time.Time                          `json:"nextBattleAt"`
}

// Battle loads the player's team, runs one engine battle against a
// synthesized opponent, and persists the aftermath: rewards, win count,
// cooldown, opponent signature, food win counters, and a battle record.
func (s *BattleService) Battle(ctx context.Context, userID uuid.UUID) (*BattleView, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if profile.BattleCooldownUntil.After(now) {
		return nil, ErrBattleOnCooldown
	}

	slots, err := s.slotRepo.ListByPlayer(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	lineup, err := s.buildLineup(slots)
	if err != nil {
		return nil, err
	}

	res, err := s.engine.Battle(s.newRand(), engine.Request{
		Player:             lineup,
		LastEnemySignature: profile.LastEnemySignature,
	})
	if err != nil {
		return nil, err
	}

	profile.BattleCooldownUntil = now.Add(economy.BattleCooldown)
	profile.LastEnemySignature = res.EnemySignature
	if res.PlayerWon {
		profile.BattlesWon++
		profile.Coins += res.Reward.Coins
		profile.Energy += res.Reward.Energy
		for _, slot := range slots {
			if slot.FoodID == nil {
				continue
			}
			slot.FoodWins++
			if err := s.slotRepo.Update(ctx, slot); err != nil {
				return nil, err
			}
		}
	}
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	if err := s.persistRecord(ctx, profile.ID, res); err != nil {
		return nil, err
	}

	view := &BattleView{
		Won:           res.PlayerWon,
		Rounds:        res.Rounds,
		PlayerPower:   res.PlayerPower,
		EnemyPower:    res.EnemyPower,
		CoinsAwarded:  res.Reward.Coins,
		EnergyAwarded: res.Reward.Energy,
		PlayerSlots:   res.PlayerSlots,
		EnemySlots:    res.EnemySlots,
		BattlesWon:    profile.BattlesWon,
		Level:         economy.LevelForWins(profile.BattlesWon),
		NextBattleAt:  profile.BattleCooldownUntil,
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastBattleResult(userID, view)
	}
	return view, nil
}

func (s *BattleService) History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.BattleRecord, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.recordRepo.ListByPlayer(ctx, profile.ID, limit, offset)
}

// buildLineup resolves stored team slots into a battle-ready lineup. All
// three positions must be filled with known catalog entries.
func (s *BattleService) buildLineup(slots []*domain.TeamSlot) (domain.Lineup, error) {
	var lineup domain.Lineup
	filled := 0
	for _, slot := range slots {
		if slot.Position < 1 || slot.Position > domain.TeamSize {
			continue
		}
		animal, ok := s.catalog.Animal(slot.AnimalID)
		if !ok {
			return lineup, ErrUnknownAnimal
		}
		loadout := domain.SlotLoadout{Animal: animal, Mutation: slot.Mutation}
		if slot.FoodID != nil {
			if food, ok := s.catalog.Food(*slot.FoodID); ok {
				loadout.Food = food
			}
		}
		lineup[slot.Position-1] = loadout
		filled++
	}
	if filled < domain.TeamSize {
		return lineup, domain.ErrIncompleteTeam
	}
	return lineup, lineup.Validate()
}

// recordSlots is the JSONB payload stored with each battle record
type recordSlots struct {
	Player [domain.TeamSize]engine.SlotResult `json:"player"`
	Enemy  [domain.TeamSize]engine.SlotResult `json:"enemy"`
}

func (s *BattleService) persistRecord(ctx context.Context, playerID uuid.UUID, res *engine.Result) error {
	payload, err := json.Marshal(recordSlots{Player: res.PlayerSlots, Enemy: res.EnemySlots})
	if err != nil {
		return err
	}
	record := &domain.BattleRecord{
		ID:             uuid.New(),
		PlayerID:       playerID,
		Won:            res.PlayerWon,
		Rounds:         res.Rounds,
		PlayerPower:    res.PlayerPower,
		EnemyPower:     res.EnemyPower,
		CoinsAwarded:   res.Reward.Coins,
		EnergyAwarded:  res.Reward.Energy,
		EnemySignature: res.EnemySignature,
		Slots:          payload,
		CreatedAt:      time.Now(),
	}
	return s.recordRepo.Create(ctx, record)
}

func (s *BattleService) profile(ctx context.Context, userID uuid.UUID) (*domain.PlayerProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}
