package engine

import "errors"

// ErrSearchExhausted means the synthesizer could not place an opponent
// inside the difficulty window after the draw and repair budgets ran out.
// Callers should surface this as a retryable failure, never fight anyway.
var ErrSearchExhausted = errors.New("opponent search exhausted without an in-window lineup")
