// Package claimable implements the deferred-credit side ledger (C6): a
// map from recipient to cumulative amount credited but not yet
// transferred. Only the swap path writes to it; draining it into an
// actual token transfer is out of scope here, the same way it is left
// to a thin wrapper layer around the pool engine.
package claimable

// Balances is an in-memory recipient -> accumulated-amount map. A real
// deployment keys this through the storage.Store interface instead; this
// type is the pure, storage-agnostic core the pool state machine mutates,
// the same split the Store-backed Pool/UserDeposit records follow.
type Balances struct {
	amounts map[string]uint64
}

// NewBalances returns an empty claimable-balance map.
func NewBalances() *Balances {
	return &Balances{amounts: make(map[string]uint64)}
}

// Update applies f to the current balance of recipient atomically (single
// map mutation, no interleaving is possible under the single-threaded
// transactional execution model this engine runs under) and persists the
// result.
func (b *Balances) Update(recipient string, f func(current uint64) uint64) {
	b.amounts[recipient] = f(b.amounts[recipient])
}

// Increment credits amount to recipient's claimable balance; the swap
// path's only mutator.
func (b *Balances) Increment(recipient string, amount uint64) {
	b.Update(recipient, func(cur uint64) uint64 { return cur + amount })
}

// Balance returns recipient's current accumulated, undrained amount.
func (b *Balances) Balance(recipient string) uint64 {
	return b.amounts[recipient]
}
