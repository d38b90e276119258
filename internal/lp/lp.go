// Package lp implements the per-share reward accumulator pattern (C4):
// deposit_lp, withdraw_lp, add_rewards and claim_rewards. Keeping this
// separate from the pool state machine means a user's pending reward is
// always O(1) to compute, regardless of how many swaps fed the
// accumulator since the user's last interaction.
package lp

import (
	"errors"

	"github.com/LeJamon/ammpool/internal/bigmath"
	"github.com/LeJamon/ammpool/internal/userdeposit"
)

// RewardShift is P from the spec: the fixed-point scale of
// AccRewardPerShareP, in bits.
const RewardShift = 48

// BP is the basis-point denominator (1 bp = 1/10000).
const BP = 10000

// ErrNotEnoughAmount is returned by WithdrawLP when a user tries to
// withdraw more LP than they hold.
var ErrNotEnoughAmount = errors.New("lp: not enough amount")

func snapshot(lpAmount, accRewardPerShareP uint64) uint64 {
	return bigmath.MulShr(lpAmount, accRewardPerShareP, RewardShift)
}

func pendingReward(lpAmount, accRewardPerShareP, rewardDebt uint64) uint64 {
	return snapshot(lpAmount, accRewardPerShareP) - rewardDebt
}

// DepositLP credits lpDelta to user's holding and bumps totalLPAmount by
// the same amount, returning any reward pending from before this
// deposit. The caller is responsible for persisting both user and the
// pool's TotalLPAmount afterward.
func DepositLP(user *userdeposit.UserDeposit, totalLPAmount *uint64, accRewardPerShareP uint64, lpDelta uint64) (pending uint64) {
	if user.LPAmount > 0 {
		pending = pendingReward(user.LPAmount, accRewardPerShareP, user.RewardDebt)
	}
	*totalLPAmount += lpDelta
	user.LPAmount += lpDelta
	user.RewardDebt = snapshot(user.LPAmount, accRewardPerShareP)
	return pending
}

// WithdrawLP debits lpDelta from user's holding and totalLPAmount,
// returning any pending reward computed from the holding before the
// debit. Fails if the user does not hold enough LP.
func WithdrawLP(user *userdeposit.UserDeposit, totalLPAmount *uint64, accRewardPerShareP uint64, lpDelta uint64) (pending uint64, err error) {
	if user.LPAmount < lpDelta {
		return 0, ErrNotEnoughAmount
	}
	pending = pendingReward(user.LPAmount, accRewardPerShareP, user.RewardDebt)
	*totalLPAmount -= lpDelta
	user.LPAmount -= lpDelta
	user.RewardDebt = snapshot(user.LPAmount, accRewardPerShareP)
	return pending, nil
}

// ClaimRewards returns the user's current pending reward, refreshing
// their reward-debt snapshot only when there is something to claim (a
// zero claim leaves the snapshot untouched, matching the no-op case of
// add_rewards below).
func ClaimRewards(user *userdeposit.UserDeposit, accRewardPerShareP uint64) uint64 {
	if user.LPAmount == 0 {
		return 0
	}
	snap := snapshot(user.LPAmount, accRewardPerShareP)
	pending := snap - user.RewardDebt
	if pending > 0 {
		user.RewardDebt = snap
	}
	return pending
}

// AddRewards splits rewardAmount between LPs (via the accumulator) and
// the admin reserve. When totalLPAmount is zero there are no LP shares
// to receive a per-share credit, so the whole amount is credited to the
// admin reserve rather than silently discarded (spec.md §9's decided
// Open Question: a safer default than dropping the fee).
func AddRewards(totalLPAmount uint64, accRewardPerShareP *uint64, adminFeeAmount *uint64, adminFeeShareBP uint16, rewardAmount uint64) {
	if rewardAmount == 0 {
		return
	}
	if totalLPAmount == 0 {
		*adminFeeAmount += rewardAmount
		return
	}
	adminCut := bigmath.MulDiv(rewardAmount, uint64(adminFeeShareBP), BP)
	lpCut := rewardAmount - adminCut
	*accRewardPerShareP += bigmath.LshDiv(lpCut, RewardShift, totalLPAmount)
	*adminFeeAmount += adminCut
}
