// Package engine implements the stateless battle core: team power,
// difficulty windows, opponent synthesis, deterministic round resolution,
// and reward calculation. Nothing here touches storage; callers feed in a
// validated lineup and persist the result themselves.
package engine

import (
	"math/rand"

	"github.com/eren460540/ZyraZoo/internal/catalog"
	"github.com/eren460540/ZyraZoo/internal/domain"
)

type Engine struct {
	catalog *catalog.Catalog
}

func New(cat *catalog.Catalog) *Engine {
	return &Engine{catalog: cat}
}

// Request carries everything a single battle needs from the caller
type Request struct {
	Player domain.Lineup
	// LastEnemySignature is the previous opponent's signature, empty for a
	// first battle. The synthesizer avoids repeating it when it can.
	LastEnemySignature string
}

// SlotResult is the post-battle state of one slot, for persistence and
// client rendering.
type SlotResult struct {
	AnimalID string          `json:"animal_id"`
	Emoji    string          `json:"emoji"`
	Mutation domain.Mutation `json:"mutation"`
	FoodID   string          `json:"food_id,omitempty"`
	HP       int             `json:"hp"`
	MaxHP    int             `json:"max_hp"`
}

// Result is the full outcome of one resolved battle
type Result struct {
	PlayerWon      bool
	Rounds         int
	CapTie         bool
	PlayerPower    float64
	EnemyPower     float64
	Window         Window
	Enemy          domain.Lineup
	EnemySignature string
	PlayerSlots    [domain.TeamSize]SlotResult
	EnemySlots     [domain.TeamSize]SlotResult
	Reward         Reward
}

// Battle runs the full pipeline for one fight: validate, compute power and
// window, synthesize an opponent, resolve combat, and price the reward.
// The rng is the only source of randomness, so a seeded source replays the
// identical battle.
func (e *Engine) Battle(rng *rand.Rand, req Request) (*Result, error) {
	if err := req.Player.Validate(); err != nil {
		return nil, err
	}

	playerPower := TeamPower(req.Player)
	window := DifficultyWindow(playerPower, req.Player)

	enemy, err := SynthesizeOpponent(rng, e.catalog, req.Player, window, req.LastEnemySignature)
	if err != nil {
		return nil, err
	}
	enemyPower := TeamPower(enemy)

	outcome := Resolve(req.Player, enemy)

	res := &Result{
		PlayerWon:      outcome.PlayerWon,
		Rounds:         outcome.Rounds,
		CapTie:         outcome.CapTie,
		PlayerPower:    playerPower,
		EnemyPower:     enemyPower,
		Window:         window,
		Enemy:          enemy,
		EnemySignature: enemy.Signature(),
		Reward:         Rewards(outcome.PlayerWon, playerPower, enemyPower, req.Player),
	}
	for i := 0; i < domain.TeamSize; i++ {
		res.PlayerSlots[i] = slotResult(req.Player[i], outcome.PlayerHP[i], outcome.PlayerMaxHP[i])
		res.EnemySlots[i] = slotResult(enemy[i], outcome.EnemyHP[i], outcome.EnemyMaxHP[i])
	}
	return res, nil
}

func slotResult(slot domain.SlotLoadout, hp, maxHP int) SlotResult {
	r := SlotResult{
		Mutation: slot.Mutation,
		HP:       hp,
		MaxHP:    maxHP,
	}
	if slot.Animal != nil {
		r.AnimalID = slot.Animal.ID
		r.Emoji = slot.Animal.Emoji
	}
	if slot.Food != nil {
		r.FoodID = slot.Food.ID
	}
	return r
}
