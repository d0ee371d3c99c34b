package catalog

import "github.com/eren460540/ZyraZoo/internal/domain"

var foodDefinitions = []domain.FoodDefinition{
	// COMMON
	{ID: "apple", Emoji: "🍎", Rarity: domain.RarityCommon, Cost: 10, HPBonus: 2, ATKBonus: 0, DEFBonus: 0, Aliases: []string{"apple"}},
	{ID: "carrot", Emoji: "🥕", Rarity: domain.RarityCommon, Cost: 10, HPBonus: 1, ATKBonus: 1, DEFBonus: 0, Aliases: []string{"carrot"}},
	{ID: "berry", Emoji: "🫐", Rarity: domain.RarityCommon, Cost: 12, HPBonus: 0, ATKBonus: 1, DEFBonus: 1, Aliases: []string{"berry"}},
	{ID: "bread", Emoji: "🍞", Rarity: domain.RarityCommon, Cost: 15, HPBonus: 2, ATKBonus: 0, DEFBonus: 1, Aliases: []string{"bread"}},
	{ID: "corn", Emoji: "🌽", Rarity: domain.RarityCommon, Cost: 15, HPBonus: 1, ATKBonus: 2, DEFBonus: 0, Aliases: []string{"corn"}},

	// UNCOMMON
	{ID: "honey", Emoji: "🍯", Rarity: domain.RarityUncommon, Cost: 30, HPBonus: 3, ATKBonus: 1, DEFBonus: 1, Aliases: []string{"honey"}},
	{ID: "seaweed", Emoji: "🪸", Rarity: domain.RarityUncommon, Cost: 35, HPBonus: 2, ATKBonus: 2, DEFBonus: 1, Aliases: []string{"seaweed", "kelp"}},
	{ID: "mushroom", Emoji: "🍄", Rarity: domain.RarityUncommon, Cost: 35, HPBonus: 1, ATKBonus: 2, DEFBonus: 2, Aliases: []string{"mushroom", "shroom"}},
	{ID: "coconut", Emoji: "🥥", Rarity: domain.RarityUncommon, Cost: 40, HPBonus: 4, ATKBonus: 0, DEFBonus: 2, Aliases: []string{"coconut"}},

	// RARE
	{ID: "sushi", Emoji: "🍣", Rarity: domain.RarityRare, Cost: 80, HPBonus: 3, ATKBonus: 4, DEFBonus: 2, Aliases: []string{"sushi"}},
	{ID: "cheese", Emoji: "🧀", Rarity: domain.RarityRare, Cost: 75, HPBonus: 5, ATKBonus: 2, DEFBonus: 1, Aliases: []string{"cheese"}},
	{ID: "pepper", Emoji: "🌶️", Rarity: domain.RarityRare, Cost: 85, HPBonus: 0, ATKBonus: 6, DEFBonus: 1, Aliases: []string{"pepper", "chili"}},
	{ID: "egg", Emoji: "🥚", Rarity: domain.RarityRare, Cost: 80, HPBonus: 4, ATKBonus: 2, DEFBonus: 2, Aliases: []string{"egg"}},

	// EPIC
	{ID: "steak", Emoji: "🥩", Rarity: domain.RarityEpic, Cost: 200, HPBonus: 6, ATKBonus: 6, DEFBonus: 2, Aliases: []string{"steak"}},
	{ID: "ramen", Emoji: "🍜", Rarity: domain.RarityEpic, Cost: 210, HPBonus: 4, ATKBonus: 5, DEFBonus: 4, Aliases: []string{"ramen", "noodles"}},
	{ID: "salmon", Emoji: "🍥", Rarity: domain.RarityEpic, Cost: 220, HPBonus: 5, ATKBonus: 5, DEFBonus: 3, Aliases: []string{"salmon"}},
	{ID: "truffle", Emoji: "🫕", Rarity: domain.RarityEpic, Cost: 230, HPBonus: 3, ATKBonus: 6, DEFBonus: 5, Aliases: []string{"truffle"}},

	// LEGENDARY
	{ID: "golden_apple", Emoji: "🍏", Rarity: domain.RarityLegendary, Cost: 500, HPBonus: 10, ATKBonus: 6, DEFBonus: 6, Aliases: []string{"gapple", "goldapple"}},
	{ID: "phoenix_pepper", Emoji: "🪽", Rarity: domain.RarityLegendary, Cost: 520, HPBonus: 4, ATKBonus: 12, DEFBonus: 4, Aliases: []string{"phoenixpepper", "firepepper"}},
	{ID: "royal_honey", Emoji: "🏺", Rarity: domain.RarityLegendary, Cost: 510, HPBonus: 8, ATKBonus: 5, DEFBonus: 8, Aliases: []string{"royalhoney"}},

	// SPECIAL
	{ID: "stardust", Emoji: "✨", Rarity: domain.RaritySpecial, Cost: 900, HPBonus: 12, ATKBonus: 10, DEFBonus: 10, Aliases: []string{"stardust"}},
	{ID: "moon_berry", Emoji: "🌙", Rarity: domain.RaritySpecial, Cost: 880, HPBonus: 14, ATKBonus: 8, DEFBonus: 8, Aliases: []string{"moonberry"}},
	{ID: "ancient_seed", Emoji: "🪴", Rarity: domain.RaritySpecial, Cost: 950, HPBonus: 18, ATKBonus: 6, DEFBonus: 12, Aliases: []string{"ancientseed", "seed"}},

	// HIDDEN
	{ID: "dragons_feast", Emoji: "🍖", Rarity: domain.RarityHidden, Cost: 1500, HPBonus: 16, ATKBonus: 16, DEFBonus: 12, Aliases: []string{"dragonfeast", "dfeast"}},
	{ID: "unicorn_cake", Emoji: "🍰", Rarity: domain.RarityHidden, Cost: 1550, HPBonus: 14, ATKBonus: 12, DEFBonus: 14, Aliases: []string{"unicorncake", "ucake"}},
	{ID: "abyssal_ink", Emoji: "🪶", Rarity: domain.RarityHidden, Cost: 1600, HPBonus: 12, ATKBonus: 18, DEFBonus: 10, Aliases: []string{"ink", "abyssalink"}},
}
