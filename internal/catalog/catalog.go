// Package catalog holds the static animal and food reference data. The
// catalog is built once at process start and shared read-only across all
// engine invocations; nothing here is mutated after load.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/eren460540/ZyraZoo/internal/domain"
)

var ErrRoleCoverage = errors.New("catalog does not cover every role within every rarity band")

type Catalog struct {
	animals         map[string]*domain.AnimalDefinition
	foods           map[string]*domain.FoodDefinition
	animalAliases   map[string]string
	foodAliases     map[string]string
	animalsByRarity map[domain.Rarity][]*domain.AnimalDefinition
	orderedAnimals  []*domain.AnimalDefinition
	orderedFoods    []*domain.FoodDefinition
}

// New builds the catalog from the compiled-in definitions and verifies the
// synthesizer's reachability invariant: for every role and every rarity band
// the opponent synthesizer can request (center index ±1, clamped), at least
// one animal exists.
func New() (*Catalog, error) {
	c := &Catalog{
		animals:         make(map[string]*domain.AnimalDefinition),
		foods:           make(map[string]*domain.FoodDefinition),
		animalAliases:   make(map[string]string),
		foodAliases:     make(map[string]string),
		animalsByRarity: make(map[domain.Rarity][]*domain.AnimalDefinition),
	}

	for i := range animalDefinitions {
		a := &animalDefinitions[i]
		if _, exists := c.animals[a.ID]; exists {
			return nil, fmt.Errorf("duplicate animal id %q", a.ID)
		}
		c.animals[a.ID] = a
		c.animalsByRarity[a.Rarity] = append(c.animalsByRarity[a.Rarity], a)
		c.orderedAnimals = append(c.orderedAnimals, a)
		for _, alias := range a.Aliases {
			c.animalAliases[alias] = a.ID
		}
		c.animalAliases[a.Emoji] = a.ID
	}

	for i := range foodDefinitions {
		f := &foodDefinitions[i]
		if _, exists := c.foods[f.ID]; exists {
			return nil, fmt.Errorf("duplicate food id %q", f.ID)
		}
		c.foods[f.ID] = f
		c.orderedFoods = append(c.orderedFoods, f)
		for _, alias := range f.Aliases {
			c.foodAliases[alias] = f.ID
		}
		c.foodAliases[f.Emoji] = f.ID
	}

	for _, list := range c.animalsByRarity {
		sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	}

	if err := c.checkRoleCoverage(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) checkRoleCoverage() error {
	for center := domain.MinRarityIndex; center <= domain.MaxRarityIndex; center++ {
		band := RarityBand(center)
		for _, role := range domain.AllRoles {
			if len(c.AnimalsByRoleAndRarity(band, role)) == 0 {
				return fmt.Errorf("%w: role %s around rarity index %d", ErrRoleCoverage, role, center)
			}
		}
	}
	return nil
}

// RarityBand returns the sorted allowed rarity indices centered on the given
// index: center ±1 clamped to the valid range.
func RarityBand(center int) []int {
	band := make([]int, 0, 3)
	for _, idx := range []int{center - 1, center, center + 1} {
		if idx >= domain.MinRarityIndex && idx <= domain.MaxRarityIndex {
			band = append(band, idx)
		}
	}
	return band
}

// Animal returns the animal definition for an exact id
func (c *Catalog) Animal(id string) (*domain.AnimalDefinition, bool) {
	a, ok := c.animals[id]
	return a, ok
}

// Food returns the food definition for an exact id
func (c *Catalog) Food(id string) (*domain.FoodDefinition, bool) {
	f, ok := c.foods[id]
	return f, ok
}

// ResolveAnimal looks up an animal by id, alias, or emoji
func (c *Catalog) ResolveAnimal(query string) (*domain.AnimalDefinition, bool) {
	key := strings.ToLower(strings.TrimSpace(query))
	if id, ok := c.animalAliases[key]; ok {
		return c.animals[id], true
	}
	if key == "" {
		return nil, false
	}
	// Emoji aliases are stored verbatim, not lowercased
	if id, ok := c.animalAliases[strings.TrimSpace(query)]; ok {
		return c.animals[id], true
	}
	a, ok := c.animals[key]
	return a, ok
}

// ResolveFood looks up a food by id, alias, or emoji
func (c *Catalog) ResolveFood(query string) (*domain.FoodDefinition, bool) {
	key := strings.ToLower(strings.TrimSpace(query))
	if id, ok := c.foodAliases[key]; ok {
		return c.foods[id], true
	}
	if id, ok := c.foodAliases[strings.TrimSpace(query)]; ok {
		return c.foods[id], true
	}
	f, ok := c.foods[key]
	return f, ok
}

// Animals returns all animal definitions in catalog order
func (c *Catalog) Animals() []*domain.AnimalDefinition {
	return c.orderedAnimals
}

// Foods returns all food definitions in catalog order
func (c *Catalog) Foods() []*domain.FoodDefinition {
	return c.orderedFoods
}

// AnimalsByRarity returns all animals of one rarity, sorted by id
func (c *Catalog) AnimalsByRarity(r domain.Rarity) []*domain.AnimalDefinition {
	return c.animalsByRarity[r]
}

// AnimalsByRoleAndRarity returns animals matching the role whose rarity
// index is in the allowed set. This is the synthesizer's candidate pool.
func (c *Catalog) AnimalsByRoleAndRarity(allowedIndices []int, role domain.Role) []*domain.AnimalDefinition {
	allowed := make(map[int]bool, len(allowedIndices))
	for _, idx := range allowedIndices {
		allowed[idx] = true
	}
	var pool []*domain.AnimalDefinition
	for _, a := range c.orderedAnimals {
		if a.Role == role && allowed[a.Rarity.Index()] {
			pool = append(pool, a)
		}
	}
	return pool
}

// FoodsNearRarity returns foods within ±1 rarity tier of the given index,
// falling back to the full food list when none qualify.
func (c *Catalog) FoodsNearRarity(rarityIndex int) []*domain.FoodDefinition {
	var pool []*domain.FoodDefinition
	for _, f := range c.orderedFoods {
		diff := f.Rarity.Index() - rarityIndex
		if diff >= -1 && diff <= 1 {
			pool = append(pool, f)
		}
	}
	if len(pool) == 0 {
		return c.orderedFoods
	}
	return pool
}

// SpawnChance returns the percentage chance of one hunt roll producing this
// animal: the rarity's drop chance split evenly across its animals.
func (c *Catalog) SpawnChance(a *domain.AnimalDefinition) float64 {
	count := len(c.animalsByRarity[a.Rarity])
	if count == 0 {
		return 0
	}
	for _, entry := range domain.DropTable {
		if entry.Rarity == a.Rarity {
			return entry.Chance / float64(count)
		}
	}
	return 0
}
