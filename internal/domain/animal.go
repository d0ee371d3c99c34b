package domain

// AnimalDefinition is a static catalog entry for one animal species.
// Definitions are loaded once at process start and never mutated.
type AnimalDefinition struct {
	ID      string
	Emoji   string
	Rarity  Rarity
	Role    Role
	HP      int
	ATK     int
	DEF     int
	Aliases []string
}

// FoodDefinition is a static catalog entry for one food item. Foods grant
// flat stat bonuses only; there are no ability side effects.
type FoodDefinition struct {
	ID       string
	Emoji    string
	Rarity   Rarity
	Cost     int
	HPBonus  int
	ATKBonus int
	DEFBonus int
	Aliases  []string
}
