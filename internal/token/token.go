// Package token declares the external token interface the pool engine is
// built against: transfer, mint and burn, all in the token's own
// external decimal precision. This interface is the contract boundary;
// actual token transfer/mint/burn primitives are an external
// collaborator out of this module's scope (the spec treats them as
// opaque), so this package also ships a small in-memory ledger
// implementation for tests and the demo CLI.
package token

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Address mirrors the 20-byte account identifier convention this module
// was grounded on (XRPL-style AccountIDs).
type Address [20]byte

func (a Address) String() string {
	return fmt.Sprintf("%x", a[:])
}

// Interface is the external token collaborator the pool state machine
// calls into. All amounts are in the token's own external precision;
// the pool converts to/from system precision at the boundary (see
// internal/precision).
type Interface interface {
	Transfer(ctx context.Context, from, to Address, amount int64) error
	Mint(ctx context.Context, to Address, amount int64) error
	Burn(ctx context.Context, from Address, amount int64) error
}

// ErrInsufficientBalance is returned by the in-memory ledger when a
// transfer or burn would take an account negative.
var ErrInsufficientBalance = errors.New("token: insufficient balance")

// MemoryLedger is a minimal, non-production Interface implementation
// backed by an in-memory balance map. It exists so the pool state
// machine's tests (and the demo CLI) have something concrete to drive
// without depending on a real token issuer.
type MemoryLedger struct {
	mu       sync.Mutex
	balances map[Address]int64
}

// NewMemoryLedger returns an empty ledger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{balances: make(map[Address]int64)}
}

// Fund credits amount to addr without debiting anyone; used to seed test
// fixtures and CLI demo accounts.
func (l *MemoryLedger) Fund(addr Address, amount int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[addr] += amount
}

// Balance returns addr's current balance.
func (l *MemoryLedger) Balance(addr Address) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[addr]
}

func (l *MemoryLedger) Transfer(_ context.Context, from, to Address, amount int64) error {
	if amount == 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.balances[from] < amount {
		return ErrInsufficientBalance
	}
	l.balances[from] -= amount
	l.balances[to] += amount
	return nil
}

func (l *MemoryLedger) Mint(_ context.Context, to Address, amount int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[to] += amount
	return nil
}

func (l *MemoryLedger) Burn(_ context.Context, from Address, amount int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.balances[from] < amount {
		return ErrInsufficientBalance
	}
	l.balances[from] -= amount
	return nil
}
