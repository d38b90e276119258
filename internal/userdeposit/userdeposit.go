// Package userdeposit models the per-user LP holding record (C7): a
// user's share of the pool's total LP amount plus the reward-debt
// snapshot the reward-per-share accumulator pattern needs. It carries no
// invariants of its own beyond the pool-wide sum equality checked at the
// pool layer.
package userdeposit

// UserDeposit is a single user's persistent LP holding.
type UserDeposit struct {
	// LPAmount is this user's share of Pool.TotalLPAmount, system precision.
	LPAmount uint64
	// RewardDebt is the reward-per-share snapshot at the user's last
	// interaction; pending reward is the current snapshot minus this.
	RewardDebt uint64
}

// GetOrDefault returns the zero-valued record a never-deposited user has.
// Real lookup against the backing store happens in the pooltx adapter,
// which knows how to key a Store by user address.
func GetOrDefault() UserDeposit {
	return UserDeposit{}
}
