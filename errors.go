// Copyright © 2024 Galvanized Logic Inc.

package collider2d

import "errors"

// Sentinel errors for the contract violations the engine can report,
// checkable with errors.Is.
var (
	ErrUnknownHitbox   = errors.New("collider2d: unknown hitbox id")
	ErrDuplicateHitbox = errors.New("collider2d: hitbox id already present")
	ErrTimeRegression  = errors.New("collider2d: time must not move backwards")
	ErrInvalidConfig   = errors.New("collider2d: invalid engine configuration")
	ErrEmptyMask       = errors.New("collider2d: card mask admits no direction")
)
