package service

import (
	"context"
	"errors"

	"github.com/eren460540/ZyraZoo/internal/catalog"
	"github.com/eren460540/ZyraZoo/internal/domain"
	"github.com/eren460540/ZyraZoo/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidPosition = errors.New("team position must be 1, 2, or 3")
	ErrUnknownAnimal   = errors.New("unknown animal")
	ErrUnknownFood     = errors.New("unknown food")
	ErrWrongRole       = errors.New("animal role does not match the slot")
	ErrAnimalNotOwned  = errors.New("animal not owned at that mutation")
	ErrFoodNotOwned    = errors.New("food not owned")
	ErrSlotEmpty       = errors.New("team slot is empty")
)

type TeamService struct {
	catalog     *catalog.Catalog
	profileRepo repository.ProfileRepository
	slotRepo    repository.TeamSlotRepository
	animalRepo  repository.AnimalHoldingRepository
	foodRepo    repository.FoodHoldingRepository
}

func NewTeamService(cat *catalog.Catalog, profileRepo repository.ProfileRepository, slotRepo repository.TeamSlotRepository, animalRepo repository.AnimalHoldingRepository, foodRepo repository.FoodHoldingRepository) *TeamService {
	return &TeamService{
		catalog:     cat,
		profileRepo: profileRepo,
		slotRepo:    slotRepo,
		animalRepo:  animalRepo,
		foodRepo:    foodRepo,
	}
}

// SlotView is one team position resolved against the catalog
type SlotView struct {
	Position int                      `json:"position"`
	Role     domain.Role              `json:"role"`
	Animal   *domain.AnimalDefinition `json:"animal,omitempty"`
	Mutation domain.Mutation          `json:"mutation,omitempty"`
	Food     *domain.FoodDefinition   `json:"food,omitempty"`
	FoodWins int                      `json:"foodWins"`
}

func (s *TeamService) View(ctx context.Context, userID uuid.UUID) ([]SlotView, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	slots, err := s.slotRepo.ListByPlayer(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	views := make([]SlotView, domain.TeamSize)
	for i := range views {
		views[i] = SlotView{Position: i + 1, Role: domain.SlotRoles[i+1]}
	}
	for _, slot := range slots {
		if slot.Position < 1 || slot.Position > domain.TeamSize {
			continue
		}
		v := &views[slot.Position-1]
		if animal, ok := s.catalog.Animal(slot.AnimalID); ok {
			v.Animal = animal
		}
		v.Mutation = slot.Mutation
		v.FoodWins = slot.FoodWins
		if slot.FoodID != nil {
			if food, ok := s.catalog.Food(*slot.FoodID); ok {
				v.Food = food
			}
		}
	}
	return views, nil
}

// SetSlot places an owned animal into a team position. The slot's role is
// fixed by position; copies already reserved by other slots cannot be
// placed twice. An equipped food on the slot survives the swap.
func (s *TeamService) SetSlot(ctx context.Context, userID uuid.UUID, position int, animalQuery, mutationValue string) (*SlotView, error) {
	if position < 1 || position > domain.TeamSize {
		return nil, ErrInvalidPosition
	}
	animal, ok := s.catalog.ResolveAnimal(animalQuery)
	if !ok {
		return nil, ErrUnknownAnimal
	}
	mutation, err := domain.ParseMutation(mutationValue)
	if err != nil {
		return nil, err
	}
	if animal.Role != domain.SlotRoles[position] {
		return nil, ErrWrongRole
	}

	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	owned := 0
	if holding, err := s.animalRepo.Get(ctx, profile.ID, animal.ID, mutation); err == nil {
		owned = holding.Count
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	slots, err := s.slotRepo.ListByPlayer(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	reserved := 0
	var existing *domain.TeamSlot
	for _, slot := range slots {
		if slot.Position == position {
			existing = slot
			continue
		}
		if slot.AnimalID == animal.ID && slot.Mutation == mutation {
			reserved++
		}
	}
	if owned-reserved < 1 {
		return nil, ErrAnimalNotOwned
	}

	slot := &domain.TeamSlot{
		PlayerID: profile.ID,
		Position: position,
		AnimalID: animal.ID,
		Mutation: mutation,
	}
	if existing != nil {
		slot.ID = existing.ID
		slot.FoodID = existing.FoodID
		slot.FoodWins = existing.FoodWins
	}
	if err := s.slotRepo.Upsert(ctx, slot); err != nil {
		return nil, err
	}

	view := &SlotView{
		Position: position,
		Role:     domain.SlotRoles[position],
		Animal:   animal,
		Mutation: mutation,
		FoodWins: slot.FoodWins,
	}
	if slot.FoodID != nil {
		if food, ok := s.catalog.Food(*slot.FoodID); ok {
			view.Food = food
		}
	}
	return view, nil
}

func (s *TeamService) ClearSlot(ctx context.Context, userID uuid.UUID, position int) error {
	if position < 1 || position > domain.TeamSize {
		return ErrInvalidPosition
	}
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return err
	}
	return s.slotRepo.Clear(ctx, profile.ID, position)
}

// EquipFood attaches an owned food to a filled team slot, consuming one
// unit. A replaced food is destroyed; the win counter restarts.
func (s *TeamService) EquipFood(ctx context.Context, userID uuid.UUID, position int, foodQuery string) (*SlotView, error) {
	if position < 1 || position > domain.TeamSize {
		return nil, ErrInvalidPosition
	}
	food, ok := s.catalog.ResolveFood(foodQuery)
	if !ok {
		return nil, ErrUnknownFood
	}

	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	slot, err := s.slotRepo.Get(ctx, profile.ID, position)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotEmpty
		}
		return nil, err
	}

	holding, err := s.foodRepo.Get(ctx, profile.ID, food.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotOwned
		}
		return nil, err
	}
	if holding.Count < 1 {
		return nil, ErrFoodNotOwned
	}
	if _, err := s.foodRepo.Add(ctx, profile.ID, food.ID, -1); err != nil {
		return nil, err
	}

	foodID := food.ID
	slot.FoodID = &foodID
	slot.FoodWins = 0
	if err := s.slotRepo.Update(ctx, slot); err != nil {
		return nil, err
	}

	view := &SlotView{
		Position: position,
		Role:     domain.SlotRoles[position],
		Mutation: slot.Mutation,
		Food:     food,
	}
	if animal, ok := s.catalog.Animal(slot.AnimalID); ok {
		view.Animal = animal
	}
	return view, nil
}

func (s *TeamService) UnequipFood(ctx context.Context, userID uuid.UUID, position int) error {
	if position < 1 || position > domain.TeamSize {
		return ErrInvalidPosition
	}
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return err
	}
	slot, err := s.slotRepo.Get(ctx, profile.ID, position)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSlotEmpty
		}
		return err
	}
	slot.FoodID = nil
	slot.FoodWins = 0
	return s.slotRepo.Update(ctx, slot)
}

func (s *TeamService) profile(ctx context.Context, userID uuid.UUID) (*domain.PlayerProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}
