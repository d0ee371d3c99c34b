package domain

import "strings"

// Mutation represents the mutation tier attached to an owned animal instance
type Mutation string

const (
	MutationNone    Mutation = "none"
	MutationGolden  Mutation = "golden"
	MutationDiamond Mutation = "diamond"
	MutationEmerald Mutation = "emerald"
	MutationRainbow Mutation = "rainbow"
)

// AllMutations contains all mutation tiers in ascending order.
// Rainbow is the terminal tier and cannot be fused further.
var AllMutations = []Mutation{
	MutationNone,
	MutationGolden,
	MutationDiamond,
	MutationEmerald,
	MutationRainbow,
}

// mutationMultiplier maps each tier to the power multiplier applied to
// combat power and sale value. Strictly increasing with tier order.
var mutationMultiplier = map[Mutation]float64{
	MutationNone:    1.0,
	MutationGolden:  1.25,
	MutationDiamond: 1.5,
	MutationEmerald: 2.0,
	MutationRainbow: 5.0,
}

// mutationStage maps each tier to the difficulty-window widening stage.
// Golden is strong enough to match none; higher tiers widen the window.
var mutationStage = map[Mutation]int{
	MutationNone:    0,
	MutationGolden:  0,
	MutationDiamond: 1,
	MutationEmerald: 2,
	MutationRainbow: 3,
}

var mutationAliases = map[string]Mutation{
	"none": MutationNone, "normal": MutationNone, "base": MutationNone, "n": MutationNone,
	"golden": MutationGolden, "gold": MutationGolden, "g": MutationGolden,
	"diamond": MutationDiamond, "dia": MutationDiamond, "d": MutationDiamond,
	"emerald": MutationEmerald, "emer": MutationEmerald, "em": MutationEmerald, "e": MutationEmerald,
	"rainbow": MutationRainbow, "rb": MutationRainbow, "rain": MutationRainbow, "r": MutationRainbow,
}

// Multiplier returns the power multiplier for this tier
func (m Mutation) Multiplier() float64 {
	if mult, ok := mutationMultiplier[m]; ok {
		return mult
	}
	return 1.0
}

// Stage returns the difficulty-window widening stage for this tier
func (m Mutation) Stage() int {
	return mutationStage[m]
}

// Order returns the tier's position in ascending order, or -1 if invalid
func (m Mutation) Order() int {
	for i, mut := range AllMutations {
		if mut == m {
			return i
		}
	}
	return -1
}

// Next returns the next-higher tier, or the same tier if already terminal
func (m Mutation) Next() Mutation {
	idx := m.Order()
	if idx < 0 || idx >= len(AllMutations)-1 {
		return m
	}
	return AllMutations[idx+1]
}

// Prev returns the next-lower tier, or the same tier if already at the bottom
func (m Mutation) Prev() Mutation {
	idx := m.Order()
	if idx <= 0 {
		return m
	}
	return AllMutations[idx-1]
}

// IsTerminal reports whether this tier cannot be fused further
func (m Mutation) IsTerminal() bool {
	return m == MutationRainbow
}

// IsValid checks if a mutation tier is valid
func (m Mutation) IsValid() bool {
	_, ok := mutationMultiplier[m]
	return ok
}

// String returns the string representation of the mutation tier
func (m Mutation) String() string {
	return string(m)
}

// ParseMutation normalizes user input (canonical names and aliases) to a
// mutation tier. Validation happens here at the boundary; engine-internal
// APIs only ever receive already-validated tiers.
func ParseMutation(value string) (Mutation, error) {
	key := strings.ToLower(strings.TrimSpace(value))
	if m, ok := mutationAliases[key]; ok {
		return m, nil
	}
	return "", ErrInvalidMutation
}

// NewMutationCounts returns a zeroed per-tier count map
func NewMutationCounts() map[Mutation]int {
	counts := make(map[Mutation]int, len(AllMutations))
	for _, m := range AllMutations {
		counts[m] = 0
	}
	return counts
}
