package catalog

import "github.com/eren460540/ZyraZoo/internal/domain"

var animalDefinitions = []domain.AnimalDefinition{
	// COMMON
	{ID: "mouse", Emoji: "🐁", Rarity: domain.RarityCommon, Role: domain.RoleAttack, HP: 7, ATK: 6, DEF: 1, Aliases: []string{"mouse", "m"}},
	{ID: "chicken", Emoji: "🐔", Rarity: domain.RarityCommon, Role: domain.RoleAttack, HP: 7, ATK: 5, DEF: 1, Aliases: []string{"chicken", "chick"}},
	{ID: "fish", Emoji: "🐟", Rarity: domain.RarityCommon, Role: domain.RoleAttack, HP: 7, ATK: 5, DEF: 1, Aliases: []string{"fish"}},
	{ID: "pig", Emoji: "🐖", Rarity: domain.RarityCommon, Role: domain.RoleTank, HP: 10, ATK: 3, DEF: 3, Aliases: []string{"pig"}},
	{ID: "cow", Emoji: "🐄", Rarity: domain.RarityCommon, Role: domain.RoleTank, HP: 11, ATK: 3, DEF: 3, Aliases: []string{"cow"}},
	{ID: "ram", Emoji: "🐏", Rarity: domain.RarityCommon, Role: domain.RoleTank, HP: 9, ATK: 4, DEF: 3, Aliases: []string{"ram"}},
	{ID: "sheep", Emoji: "🐑", Rarity: domain.RarityCommon, Role: domain.RoleTank, HP: 9, ATK: 3, DEF: 4, Aliases: []string{"sheep"}},
	{ID: "goat", Emoji: "🐐", Rarity: domain.RarityCommon, Role: domain.RoleTank, HP: 8, ATK: 4, DEF: 3, Aliases: []string{"goat"}},
	{ID: "bug", Emoji: "🐛", Rarity: domain.RarityCommon, Role: domain.RoleSupport, HP: 7, ATK: 3, DEF: 3, Aliases: []string{"bug"}},
	{ID: "ant", Emoji: "🐜", Rarity: domain.RarityCommon, Role: domain.RoleSupport, HP: 6, ATK: 3, DEF: 3, Aliases: []string{"ant"}},
	{ID: "bird", Emoji: "🐦", Rarity: domain.RarityCommon, Role: domain.RoleSupport, HP: 7, ATK: 3, DEF: 3, Aliases: []string{"bird"}},

	// UNCOMMON
	{ID: "dog", Emoji: "🐕", Rarity: domain.RarityUncommon, Role: domain.RoleAttack, HP: 8, ATK: 7, DEF: 2, Aliases: []string{"dog"}},
	{ID: "cat", Emoji: "🐈", Rarity: domain.RarityUncommon, Role: domain.RoleAttack, HP: 8, ATK: 7, DEF: 2, Aliases: []string{"cat"}},
	{ID: "snake", Emoji: "🐍", Rarity: domain.RarityUncommon, Role: domain.RoleAttack, HP: 8, ATK: 8, DEF: 2, Aliases: []string{"snake"}},
	{ID: "horse", Emoji: "🐎", Rarity: domain.RarityUncommon, Role: domain.RoleTank, HP: 13, ATK: 4, DEF: 4, Aliases: []string{"horse"}},
	{ID: "boar", Emoji: "🐗", Rarity: domain.RarityUncommon, Role: domain.RoleTank, HP: 12, ATK: 5, DEF: 4, Aliases: []string{"boar"}},
	{ID: "deer", Emoji: "🦌", Rarity: domain.RarityUncommon, Role: domain.RoleTank, HP: 12, ATK: 4, DEF: 5, Aliases: []string{"deer"}},
	{ID: "turtle", Emoji: "🐢", Rarity: domain.RarityUncommon, Role: domain.RoleTank, HP: 14, ATK: 2, DEF: 5, Aliases: []string{"turtle"}},
	{ID: "tropicalfish", Emoji: "🐠", Rarity: domain.RarityUncommon, Role: domain.RoleSupport, HP: 8, ATK: 4, DEF: 4, Aliases: []string{"tropicalfish", "tfish"}},

	// RARE
	{ID: "wolf", Emoji: "🐺", Rarity: domain.RarityRare, Role: domain.RoleAttack, HP: 9, ATK: 9, DEF: 3, Aliases: []string{"wolf"}},
	{ID: "fox", Emoji: "🦊", Rarity: domain.RarityRare, Role: domain.RoleAttack, HP: 9, ATK: 9, DEF: 3, Aliases: []string{"fox"}},
	{ID: "dolphin", Emoji: "🐬", Rarity: domain.RarityRare, Role: domain.RoleAttack, HP: 10, ATK: 8, DEF: 3, Aliases: []string{"dolphin"}},
	{ID: "crocodile", Emoji: "🐊", Rarity: domain.RarityRare, Role: domain.RoleTank, HP: 15, ATK: 5, DEF: 6, Aliases: []string{"crocodile", "croc"}},
	{ID: "raccoon", Emoji: "🦝", Rarity: domain.RarityRare, Role: domain.RoleSupport, HP: 9, ATK: 4, DEF: 5, Aliases: []string{"raccoon"}},
	{ID: "owl", Emoji: "🦉", Rarity: domain.RarityRare, Role: domain.RoleSupport, HP: 9, ATK: 3, DEF: 6, Aliases: []string{"owl"}},
	{ID: "parrot", Emoji: "🦜", Rarity: domain.RarityRare, Role: domain.RoleSupport, HP: 8, ATK: 4, DEF: 5, Aliases: []string{"parrot"}},

	// EPIC
	{ID: "elephant", Emoji: "🐘", Rarity: domain.RarityEpic, Role: domain.RoleTank, HP: 18, ATK: 4, DEF: 8, Aliases: []string{"elephant", "ele"}},
	{ID: "hippo", Emoji: "🦛", Rarity: domain.RarityEpic, Role: domain.RoleTank, HP: 19, ATK: 4, DEF: 8, Aliases: []string{"hippo"}},
	{ID: "llama", Emoji: "🦙", Rarity: domain.RarityEpic, Role: domain.RoleTank, HP: 16, ATK: 5, DEF: 7, Aliases: []string{"llama"}},
	{ID: "giraffe", Emoji: "🦒", Rarity: domain.RarityEpic, Role: domain.RoleTank, HP: 17, ATK: 5, DEF: 7, Aliases: []string{"giraffe"}},
	{ID: "swan_epic", Emoji: "🦢", Rarity: domain.RarityEpic, Role: domain.RoleSupport, HP: 11, ATK: 4, DEF: 7, Aliases: []string{"swan"}},
	{ID: "flamingo", Emoji: "🦩", Rarity: domain.RarityEpic, Role: domain.RoleSupport, HP: 10, ATK: 5, DEF: 6, Aliases: []string{"flamingo"}},

	// LEGENDARY
	{ID: "shark", Emoji: "🦈", Rarity: domain.RarityLegendary, Role: domain.RoleAttack, HP: 14, ATK: 11, DEF: 4, Aliases: []string{"shark"}},
	{ID: "mammoth", Emoji: "🦣", Rarity: domain.RarityLegendary, Role: domain.RoleTank, HP: 22, ATK: 5, DEF: 9, Aliases: []string{"mammoth"}},
	{ID: "seal", Emoji: "🦭", Rarity: domain.RarityLegendary, Role: domain.RoleTank, HP: 20, ATK: 6, DEF: 8, Aliases: []string{"seal"}},
	{ID: "whale", Emoji: "🐳", Rarity: domain.RarityLegendary, Role: domain.RoleTank, HP: 24, ATK: 4, DEF: 10, Aliases: []string{"whale"}},

	// SPECIAL
	{ID: "octopus", Emoji: "🐙", Rarity: domain.RaritySpecial, Role: domain.RoleSupport, HP: 12, ATK: 5, DEF: 7, Aliases: []string{"octopus"}},
	{ID: "butterfly", Emoji: "🦋", Rarity: domain.RaritySpecial, Role: domain.RoleSupport, HP: 10, ATK: 4, DEF: 6, Aliases: []string{"butterfly"}},

	// HIDDEN
	{ID: "dragon", Emoji: "🐉", Rarity: domain.RarityHidden, Role: domain.RoleAttack, HP: 16, ATK: 13, DEF: 5, Aliases: []string{"dragon"}},
	{ID: "trex", Emoji: "🦖", Rarity: domain.RarityHidden, Role: domain.RoleTank, HP: 25, ATK: 7, DEF: 10, Aliases: []string{"trex", "t-rex"}},
	{ID: "unicorn", Emoji: "🦄", Rarity: domain.RarityHidden, Role: domain.RoleSupport, HP: 14, ATK: 6, DEF: 8, Aliases: []string{"unicorn"}},
}
