package engine

import "github.com/eren460540/ZyraZoo/internal/domain"

// MaxRounds caps combat length. Reaching the cap with both sides alive
// falls through to the health-sum tie-break.
const MaxRounds = 100

// slotState is the ephemeral per-slot combat state, derived fresh for each
// resolution and discarded with it. Mutation tiers do not alter combat
// stats; they only enter the power figures used for matchmaking.
type slotState struct {
	hp    int
	maxHP int
	atk   int
	def   int
}

// Outcome is the final state of one resolved combat
type Outcome struct {
	PlayerWon   bool
	Rounds      int
	CapTie      bool // round cap reached with both sides alive
	PlayerHP    [domain.TeamSize]int
	EnemyHP     [domain.TeamSize]int
	PlayerMaxHP [domain.TeamSize]int
	EnemyMaxHP  [domain.TeamSize]int
}

// Resolve runs the deterministic round simulation between two lineups.
// Both lineups must already be validated; Resolve itself draws no
// randomness and always terminates within MaxRounds rounds.
func Resolve(player, enemy domain.Lineup) Outcome {
	playerState := deriveStates(player)
	enemyState := deriveStates(enemy)

	rounds := 0
	for firstAlive(&playerState) >= 0 && firstAlive(&enemyState) >= 0 && rounds < MaxRounds {
		rounds++
		attackPass(&playerState, &enemyState)
		if firstAlive(&enemyState) < 0 {
			break
		}
		attackPass(&enemyState, &playerState)
	}

	playerAlive := firstAlive(&playerState) >= 0
	enemyAlive := firstAlive(&enemyState) >= 0

	out := Outcome{Rounds: rounds}
	if playerAlive && enemyAlive {
		// Round cap: greater summed remaining health wins. An exact tie is
		// not a player win; equal-health behavior is otherwise undefined.
		out.CapTie = true
		out.PlayerWon = totalHP(&playerState) > totalHP(&enemyState)
	} else {
		out.PlayerWon = playerAlive && !enemyAlive
	}

	for i := 0; i < domain.TeamSize; i++ {
		out.PlayerHP[i] = playerState[i].hp
		out.EnemyHP[i] = enemyState[i].hp
		out.PlayerMaxHP[i] = playerState[i].maxHP
		out.EnemyMaxHP[i] = enemyState[i].maxHP
	}
	return out
}

// CombatStats returns the item-adjusted health, attack, and defense used in
// round resolution, each clamped to non-negative.
func CombatStats(slot domain.SlotLoadout) (hp, atk, def int) {
	if slot.Animal == nil {
		return 0, 0, 0
	}
	hp = clampNonNegative(slot.Animal.HP)
	atk = clampNonNegative(slot.Animal.ATK)
	def = clampNonNegative(slot.Animal.DEF)
	if slot.Food != nil {
		hp = clampNonNegative(hp + slot.Food.HPBonus)
		atk = clampNonNegative(atk + slot.Food.ATKBonus)
		def = clampNonNegative(def + slot.Food.DEFBonus)
	}
	return hp, atk, def
}

func deriveStates(lineup domain.Lineup) [domain.TeamSize]slotState {
	var states [domain.TeamSize]slotState
	for i, slot := range lineup {
		hp, atk, def := CombatStats(slot)
		states[i] = slotState{hp: hp, maxHP: hp, atk: atk, def: def}
	}
	return states
}

// attackPass runs one side's full attacking turn. Slots act in fixed order;
// each living attacker strikes the defender's first living slot for
// max(1, atk - sum of all living defenders' def).
func attackPass(attackers, defenders *[domain.TeamSize]slotState) {
	for i := 0; i < domain.TeamSize; i++ {
		if attackers[i].hp <= 0 {
			continue
		}
		target := firstAlive(defenders)
		if target < 0 {
			return
		}
		dmg := attackers[i].atk - livingDefense(defenders)
		if dmg < 1 {
			dmg = 1
		}
		defenders[target].hp -= dmg
		if defenders[target].hp < 0 {
			defenders[target].hp = 0
		}
	}
}

func firstAlive(states *[domain.TeamSize]slotState) int {
	for i := 0; i < domain.TeamSize; i++ {
		if states[i].hp > 0 {
			return i
		}
	}
	return -1
}

func livingDefense(states *[domain.TeamSize]slotState) int {
	total := 0
	for i := 0; i < domain.TeamSize; i++ {
		if states[i].hp > 0 {
			total += states[i].def
		}
	}
	return total
}

func totalHP(states *[domain.TeamSize]slotState) int {
	total := 0
	for i := 0; i < domain.TeamSize; i++ {
		if states[i].hp > 0 {
			total += states[i].hp
		}
	}
	return total
}
