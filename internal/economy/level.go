package economy

// LevelForWins converts a battle-win total into a player level. Every level
// doubles the wins needed for the next: level 2 at 1 win, level 3 at 2,
// level 4 at 4, and so on. The level also sets how many hunt rolls one
// hunt command performs.
func LevelForWins(battlesWon int) int {
	wins := battlesWon
	if wins < 0 {
		wins = 0
	}
	level := 1
	threshold := 1
	for wins >= threshold {
		level++
		threshold *= 2
	}
	return level
}

// WinsForNextLevel returns the total wins needed to reach the next level
// from the given win count.
func WinsForNextLevel(battlesWon int) int {
	level := LevelForWins(battlesWon)
	// The next level arrives at 2^(level-1) cumulative wins
	threshold := 1
	for i := 1; i < level; i++ {
		threshold *= 2
	}
	return threshold
}

// HuntRolls returns how many rolls one hunt performs given the player's
// level and resources. The roll count is the level, reduced to what the
// coin balance can pay for; energy is not reduced the same way, a shortage
// there fails the whole hunt instead.
func HuntRolls(level, coins int) int {
	rolls := level
	if affordable := coins / HuntRollCoinCost; affordable < rolls {
		rolls = affordable
	}
	if rolls < 0 {
		return 0
	}
	return rolls
}
