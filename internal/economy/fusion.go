package economy

import (
	"errors"
	"math/rand"

	"github.com/eren460540/ZyraZoo/internal/domain"
)

// FusionCost is the number of same-tier copies one fusion consumes
const FusionCost = 4

var (
	ErrTerminalMutation = errors.New("rainbow animals cannot be fused further")
	ErrInvalidFusion    = errors.New("invalid fusion input")
)

// FusionOutcome is the product of one fusion: a mutation tier and how many
// copies of it come out. Only the emerald jackpot yields more than one.
type FusionOutcome struct {
	Mutation domain.Mutation
	Quantity int
}

// FusionResult maps a percentage roll in [0, 100) onto the outcome table
// for the given input tier. Exposed deterministically so the odds are
// directly testable; RollFusion is the randomized entry point.
func FusionResult(input domain.Mutation, roll float64) (FusionOutcome, error) {
	switch input {
	case domain.MutationNone:
		switch {
		case roll < 50:
			return FusionOutcome{domain.MutationGolden, 1}, nil
		case roll < 75:
			return FusionOutcome{domain.MutationDiamond, 1}, nil
		case roll < 95:
			return FusionOutcome{domain.MutationEmerald, 1}, nil
		default:
			return FusionOutcome{domain.MutationRainbow, 1}, nil
		}
	case domain.MutationGolden:
		switch {
		case roll < 50:
			return FusionOutcome{domain.MutationDiamond, 1}, nil
		case roll < 90:
			return FusionOutcome{domain.MutationEmerald, 1}, nil
		default:
			return FusionOutcome{domain.MutationRainbow, 1}, nil
		}
	case domain.MutationDiamond:
		if roll < 75 {
			return FusionOutcome{domain.MutationEmerald, 1}, nil
		}
		return FusionOutcome{domain.MutationRainbow, 1}, nil
	case domain.MutationEmerald:
		if roll < 50 {
			return FusionOutcome{domain.MutationEmerald, 3}, nil
		}
		return FusionOutcome{domain.MutationRainbow, 1}, nil
	case domain.MutationRainbow:
		return FusionOutcome{}, ErrTerminalMutation
	default:
		return FusionOutcome{}, ErrInvalidFusion
	}
}

// RollFusion draws the outcome of fusing four copies of the input tier
func RollFusion(rng *rand.Rand, input domain.Mutation) (FusionOutcome, error) {
	return FusionResult(input, rng.Float64()*100)
}
