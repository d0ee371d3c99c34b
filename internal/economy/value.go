package economy

import (
	"math"

	"github.com/eren460540/ZyraZoo/internal/domain"
)

// foodResaleRate is the fraction of purchase cost recovered on sale
const foodResaleRate = 0.5

// AnimalSaleValue prices a batch of identical animals: rarity base value
// times the mutation multiplier, rounded once over the whole batch.
func AnimalSaleValue(rarity domain.Rarity, mutation domain.Mutation, quantity int) int {
	if quantity <= 0 {
		return 0
	}
	value := float64(quantity) * float64(rarity.SellValue()) * mutation.Multiplier()
	return int(math.Round(value))
}

// FoodSaleValue prices a batch of foods at half their purchase cost
func FoodSaleValue(food *domain.FoodDefinition, quantity int) int {
	if food == nil || quantity <= 0 {
		return 0
	}
	return int(float64(food.Cost) * float64(quantity) * foodResaleRate)
}
