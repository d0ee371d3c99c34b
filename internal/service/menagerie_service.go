package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/eren460540/ZyraZoo/internal/catalog"
	"github.com/eren460540/ZyraZoo/internal/domain"
	"github.com/eren460540/ZyraZoo/internal/economy"
	"github.com/eren460540/ZyraZoo/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrHuntOnCooldown  = errors.New("hunt is on cooldown")
	ErrNotEnoughCoins  = errors.New("not enough coins")
	ErrNotEnoughEnergy = errors.New("not enough energy")
	ErrNotEnoughToFuse = errors.New("need four unreserved copies of the same mutation")
	ErrNotEnoughToSell = errors.New("not enough unreserved copies to sell")
	ErrFoodEquipped    = errors.New("cannot sell an equipped food")
	ErrInvalidAmount   = errors.New("amount must be positive")
)

// MenagerieService covers collection management: hunting new animals,
// fusing mutations, and selling animals or foods back for coins.
type MenagerieService struct {
	catalog     *catalog.Catalog
	profileRepo repository.ProfileRepository
	animalRepo  repository.AnimalHoldingRepository
	foodRepo    repository.FoodHoldingRepository
	slotRepo    repository.TeamSlotRepository
	statRepo    repository.GlobalStatRepository
	newRand     func() *rand.Rand
}

func NewMenagerieService(cat *catalog.Catalog, profileRepo repository.ProfileRepository, animalRepo repository.AnimalHoldingRepository, foodRepo repository.FoodHoldingRepository, slotRepo repository.TeamSlotRepository, statRepo repository.GlobalStatRepository) *MenagerieService {
	return &MenagerieService{
		catalog:     cat,
		profileRepo: profileRepo,
		animalRepo:  animalRepo,
		foodRepo:    foodRepo,
		slotRepo:    slotRepo,
		statRepo:    statRepo,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// DropView is one hunted animal in the result summary
type DropView struct {
	Animal   *domain.AnimalDefinition `json:"animal"`
	Mutation domain.Mutation          `json:"mutation"`
	New      bool                     `json:"new"`
}

type HuntResult struct {
	Rolls       int        `json:"rolls"`
	CoinsSpent  int        `json:"coinsSpent"`
	EnergySpent int        `json:"energySpent"`
	Drops       []DropView `json:"drops"`
}

// Hunt rolls level-many animals from the drop table, paying coins and
// energy per roll. The roll count shrinks to what coins can cover; an
// energy shortage fails the hunt outright.
func (s *MenagerieService) Hunt(ctx context.Context, userID uuid.UUID) (*HuntResult, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if profile.HuntCooldownUntil.After(now) {
		return nil, ErrHuntOnCooldown
	}

	level := economy.LevelForWins(profile.BattlesWon)
	rolls := economy.HuntRolls(level, profile.Coins)
	if rolls <= 0 {
		return nil, ErrNotEnoughCoins
	}
	if profile.Energy < rolls {
		return nil, ErrNotEnoughEnergy
	}

	profile.Coins -= rolls * economy.HuntRollCoinCost
	profile.Energy -= rolls * economy.HuntRollEnergyCost
	profile.TotalHunts++
	profile.HuntCooldownUntil = now.Add(economy.HuntCooldown)

	ownedBefore := make(map[string]bool)
	if holdings, err := s.animalRepo.ListByPlayer(ctx, profile.ID); err == nil {
		for _, h := range holdings {
			ownedBefore[h.AnimalID] = true
		}
	}

	drops := economy.RollHunt(s.newRand(), s.catalog, rolls)
	result := &HuntResult{
		Rolls:       rolls,
		CoinsSpent:  rolls * economy.HuntRollCoinCost,
		EnergySpent: rolls * economy.HuntRollEnergyCost,
		Drops:       make([]DropView, 0, len(drops)),
	}
	for _, drop := range drops {
		if _, err := s.animalRepo.Add(ctx, profile.ID, drop.Animal.ID, drop.Mutation, 1); err != nil {
			return nil, err
		}
		if err := s.statRepo.RecordHatch(ctx, drop.Animal.ID, 1); err != nil {
			return nil, err
		}
		if err := s.statRepo.AdjustOwned(ctx, drop.Animal.ID, 1); err != nil {
			return nil, err
		}
		result.Drops = append(result.Drops, DropView{
			Animal:   drop.Animal,
			Mutation: drop.Mutation,
			New:      !ownedBefore[drop.Animal.ID],
		})
		ownedBefore[drop.Animal.ID] = true
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return result, nil
}

type FuseResult struct {
	Animal    *domain.AnimalDefinition `json:"animal"`
	Consumed  domain.Mutation          `json:"consumed"`
	Result    domain.Mutation          `json:"result"`
	Quantity  int                      `json:"quantity"`
	Remaining int                      `json:"remaining"`
}

// Fuse consumes four unreserved copies of one mutation tier and rolls the
// upgrade table. Copies standing in team slots are protected from fusion.
func (s *MenagerieService) Fuse(ctx context.Context, userID uuid.UUID, animalQuery, mutationValue string) (*FuseResult, error) {
	animal, ok := s.catalog.ResolveAnimal(animalQuery)
	if !ok {
		return nil, ErrUnknownAnimal
	}
	mutation, err := domain.ParseMutation(mutationValue)
	if err != nil {
		return nil, err
	}
	if mutation.IsTerminal() {
		return nil, economy.ErrTerminalMutation
	}

	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	sellable, err := s.unreservedCount(ctx, profile.ID, animal.ID, mutation)
	if err != nil {
		return nil, err
	}
	if sellable < economy.FusionCost {
		return nil, ErrNotEnoughToFuse
	}

	outcome, err := economy.RollFusion(s.newRand(), mutation)
	if err != nil {
		return nil, err
	}
	// One transaction: consumed copies are never lost to a failed credit
	holding, err := s.animalRepo.Exchange(ctx, profile.ID, animal.ID, mutation, outcome.Mutation, economy.FusionCost, outcome.Quantity)
	if err != nil {
		return nil, err
	}
	if err := s.statRepo.AdjustOwned(ctx, animal.ID, outcome.Quantity-economy.FusionCost); err != nil {
		return nil, err
	}

	return &FuseResult{
		Animal:    animal,
		Consumed:  mutation,
		Result:    outcome.Mutation,
		Quantity:  outcome.Quantity,
		Remaining: holding.Count,
	}, nil
}

type SaleResult struct {
	Sold  int `json:"sold"`
	Coins int `json:"coins"`
}

// SellAnimals sells unreserved copies of one species. Mutation "any"
// drains tiers from weakest to strongest; amount <= 0 means sell all.
func (s *MenagerieService) SellAnimals(ctx context.Context, userID uuid.UUID, animalQuery, mutationValue string, amount int) (*SaleResult, error) {
	animal, ok := s.catalog.ResolveAnimal(animalQuery)
	if !ok {
		return nil, ErrUnknownAnimal
	}

	tiers := domain.AllMutations
	if !strings.EqualFold(strings.TrimSpace(mutationValue), "any") {
		mutation, err := domain.ParseMutation(mutationValue)
		if err != nil {
			return nil, err
		}
		tiers = []domain.Mutation{mutation}
	}

	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	available := make(map[domain.Mutation]int, len(tiers))
	total := 0
	for _, tier := range tiers {
		count, err := s.unreservedCount(ctx, profile.ID, animal.ID, tier)
		if err != nil {
			return nil, err
		}
		available[tier] = count
		total += count
	}

	sellAll := amount <= 0
	if sellAll {
		amount = total
	}
	if amount == 0 || amount > total {
		return nil, ErrNotEnoughToSell
	}

	result := &SaleResult{}
	coins := 0
	remaining := amount
	for _, tier := range tiers {
		if remaining == 0 {
			break
		}
		portion := available[tier]
		if portion > remaining {
			portion = remaining
		}
		if portion == 0 {
			continue
		}
		if _, err := s.animalRepo.Add(ctx, profile.ID, animal.ID, tier, -portion); err != nil {
			return nil, err
		}
		coins += economy.AnimalSaleValue(animal.Rarity, tier, portion)
		result.Sold += portion
		remaining -= portion
	}

	if err := s.statRepo.AdjustOwned(ctx, animal.ID, -result.Sold); err != nil {
		return nil, err
	}
	if err := s.statRepo.RecordSale(ctx, animal.ID, result.Sold); err != nil {
		return nil, err
	}

	profile.Coins += coins
	result.Coins = coins
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return result, nil
}

// SellFood sells owned foods at half cost. A food currently equipped on
// any team slot cannot be sold. amount <= 0 means sell all.
func (s *MenagerieService) SellFood(ctx context.Context, userID uuid.UUID, foodQuery string, amount int) (*SaleResult, error) {
	food, ok := s.catalog.ResolveFood(foodQuery)
	if !ok {
		return nil, ErrUnknownFood
	}

	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	slots, err := s.slotRepo.ListByPlayer(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	for _, slot := range slots {
		if slot.FoodID != nil && *slot.FoodID == food.ID {
			return nil, ErrFoodEquipped
		}
	}

	owned := 0
	if holding, err := s.foodRepo.Get(ctx, profile.ID, food.ID); err == nil {
		owned = holding.Count
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if amount <= 0 {
		amount = owned
	}
	if amount == 0 || amount > owned {
		return nil, ErrNotEnoughToSell
	}

	if _, err := s.foodRepo.Add(ctx, profile.ID, food.ID, -amount); err != nil {
		return nil, err
	}
	coins := economy.FoodSaleValue(food, amount)
	profile.Coins += coins
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return &SaleResult{Sold: amount, Coins: coins}, nil
}

// ZooEntry is one owned species with its per-mutation counts
type ZooEntry struct {
	Animal *domain.AnimalDefinition `json:"animal"`
	Counts map[domain.Mutation]int  `json:"counts"`
	Total  int                      `json:"total"`
}

func (s *MenagerieService) Zoo(ctx context.Context, userID uuid.UUID) ([]ZooEntry, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	holdings, err := s.animalRepo.ListByPlayer(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	byAnimal := make(map[string]*ZooEntry)
	for _, h := range holdings {
		entry, ok := byAnimal[h.AnimalID]
		if !ok {
			animal, found := s.catalog.Animal(h.AnimalID)
			if !found {
				continue
			}
			entry = &ZooEntry{Animal: animal, Counts: domain.NewMutationCounts()}
			byAnimal[h.AnimalID] = entry
		}
		entry.Counts[h.Mutation] += h.Count
		entry.Total += h.Count
	}

	// Catalog order keeps the listing stable across calls
	entries := make([]ZooEntry, 0, len(byAnimal))
	for _, animal := range s.catalog.Animals() {
		if entry, ok := byAnimal[animal.ID]; ok {
			entries = append(entries, *entry)
		}
	}
	return entries, nil
}

// Foods lists the player's food inventory in catalog order
func (s *MenagerieService) Foods(ctx context.Context, userID uuid.UUID) ([]*domain.FoodHolding, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.foodRepo.ListByPlayer(ctx, profile.ID)
}

// IndexEntry is one catalog species with its global counters
type IndexEntry struct {
	Animal      *domain.AnimalDefinition `json:"animal"`
	SpawnChance float64                  `json:"spawnChance"`
	Hatched     int                      `json:"hatched"`
	Owned       int                      `json:"owned"`
	Sold        int                      `json:"sold"`
}

func (s *MenagerieService) Index(ctx context.Context) ([]IndexEntry, error) {
	stats, err := s.statRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.GlobalAnimalStat, len(stats))
	for _, stat := range stats {
		byID[stat.AnimalID] = stat
	}

	entries := make([]IndexEntry, 0, len(s.catalog.Animals()))
	for _, animal := range s.catalog.Animals() {
		entry := IndexEntry{Animal: animal, SpawnChance: s.catalog.SpawnChance(animal)}
		if stat, ok := byID[animal.ID]; ok {
			entry.Hatched = stat.Hatched
			entry.Owned = stat.Owned
			entry.Sold = stat.Sold
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// unreservedCount returns owned copies minus those standing in team slots
func (s *MenagerieService) unreservedCount(ctx context.Context, playerID uuid.UUID, animalID string, mutation domain.Mutation) (int, error) {
	owned := 0
	if holding, err := s.animalRepo.Get(ctx, playerID, animalID, mutation); err == nil {
		owned = holding.Count
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	slots, err := s.slotRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return 0, err
	}
	reserved := 0
	for _, slot := range slots {
		if slot.AnimalID == animalID && slot.Mutation == mutation {
			reserved++
		}
	}
	if owned < reserved {
		return 0, nil
	}
	return owned - reserved, nil
}

func (s *MenagerieService) profile(ctx context.Context, userID uuid.UUID) (*domain.PlayerProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}
