package pool

import "errors"

// Error taxonomy, matching spec's enumerated (not thrown) error model:
// the engine surfaces the first failing check as a plain error value and
// does no retries, logging, or partial persistence of its own.
var (
	// Input errors.
	ErrZeroAmount                 = errors.New("pool: zero amount")
	ErrInsufficientReceivedAmount = errors.New("pool: insufficient received amount")

	// State errors.
	ErrZeroChanges       = errors.New("pool: operation produced zero changes")
	ErrReservesExhausted = errors.New("pool: reserves exhausted")
	ErrNotEnoughAmount   = errors.New("pool: user holds less lp than requested")

	// Invariant errors.
	ErrPoolOverflow         = errors.New("pool: token balance overflow")
	ErrBalanceRatioExceeded = errors.New("pool: balance ratio below floor")

	// Lifecycle errors.
	ErrPoolNotFound           = errors.New("pool: not found")
	ErrPoolAlreadyInitialized = errors.New("pool: already initialized")
)
