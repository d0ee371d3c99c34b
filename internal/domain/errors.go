package domain

import "errors"

// Validation errors
var (
	ErrInvalidMutation = errors.New("invalid mutation tier")
	ErrInvalidRarity   = errors.New("invalid rarity")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidSlot     = errors.New("slot must be 1, 2, or 3")
)

// Team errors
var (
	ErrIncompleteTeam = errors.New("team is incomplete")
	ErrRoleMismatch   = errors.New("animal role does not match slot role")
)
