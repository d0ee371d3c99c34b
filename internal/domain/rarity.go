package domain

// Rarity represents an animal or food rarity tier
type Rarity string

const (
	RarityCommon    Rarity = "COMMON"
	RarityUncommon  Rarity = "UNCOMMON"
	RarityRare      Rarity = "RARE"
	RarityEpic      Rarity = "EPIC"
	RarityLegendary Rarity = "LEGENDARY"
	RaritySpecial   Rarity = "SPECIAL"
	RarityHidden    Rarity = "HIDDEN"
)

// AllRarities contains all valid rarities in ascending order
var AllRarities = []Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityEpic,
	RarityLegendary,
	RaritySpecial,
	RarityHidden,
}

// rarityIndex maps each rarity to its position in the ascending order
var rarityIndex = map[Rarity]int{
	RarityCommon:    0,
	RarityUncommon:  1,
	RarityRare:      2,
	RarityEpic:      3,
	RarityLegendary: 4,
	RaritySpecial:   5,
	RarityHidden:    6,
}

// raritySellValue maps each rarity to the base coin value of one animal
var raritySellValue = map[Rarity]int{
	RarityCommon:    1,
	RarityUncommon:  3,
	RarityRare:      8,
	RarityEpic:      20,
	RarityLegendary: 60,
	RaritySpecial:   120,
	RarityHidden:    250,
}

// rarityCoinWeight maps each rarity to its battle-reward scaling weight
var rarityCoinWeight = map[Rarity]float64{
	RarityCommon:    0.6,
	RarityUncommon:  0.8,
	RarityRare:      1.0,
	RarityEpic:      1.25,
	RarityLegendary: 1.6,
	RaritySpecial:   1.9,
	RarityHidden:    2.4,
}

// DropTable lists hunt drop chances per rarity as cumulative percentages,
// evaluated in order. The percentages sum to 100.
var DropTable = []struct {
	Chance float64
	Rarity Rarity
}{
	{62.0, RarityCommon},
	{24.0, RarityUncommon},
	{9.0, RarityRare},
	{3.0, RarityEpic},
	{1.2, RarityLegendary},
	{0.5, RaritySpecial},
	{0.3, RarityHidden},
}

// MinRarityIndex and MaxRarityIndex bound the valid rarity index range.
const (
	MinRarityIndex = 0
	MaxRarityIndex = 6
)

// Index returns the rarity's position in ascending order, or -1 if invalid
func (r Rarity) Index() int {
	if idx, ok := rarityIndex[r]; ok {
		return idx
	}
	return -1
}

// SellValue returns the base coin value of one animal of this rarity
func (r Rarity) SellValue() int {
	return raritySellValue[r]
}

// CoinWeight returns the battle-reward scaling weight for this rarity
func (r Rarity) CoinWeight() float64 {
	if w, ok := rarityCoinWeight[r]; ok {
		return w
	}
	return 1.0
}

// IsValid checks if a rarity is valid
func (r Rarity) IsValid() bool {
	_, ok := rarityIndex[r]
	return ok
}

// String returns the string representation of the rarity
func (r Rarity) String() string {
	return string(r)
}

// RarityByIndex returns the rarity at the given ascending-order position
func RarityByIndex(idx int) (Rarity, bool) {
	if idx < MinRarityIndex || idx > MaxRarityIndex {
		return "", false
	}
	return AllRarities[idx], true
}
