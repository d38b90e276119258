// Package pool implements the pool state machine (C5): deposit,
// withdraw and swap transitions, fee splitting between LPs and the
// admin reserve, balance-ratio validation and reserve bookkeeping. It is
// the only component that talks to the external token interface and
// ties together the curve solver (C3), LP accounting (C4), the
// claimable-balance side map (C6) and the user deposit record (C7).
package pool

import (
	"context"

	"github.com/LeJamon/ammpool/internal/bigmath"
	"github.com/LeJamon/ammpool/internal/claimable"
	"github.com/LeJamon/ammpool/internal/curve"
	"github.com/LeJamon/ammpool/internal/lp"
	"github.com/LeJamon/ammpool/internal/precision"
	"github.com/LeJamon/ammpool/internal/token"
	"github.com/LeJamon/ammpool/internal/userdeposit"
)

// Numeric constants from spec §6.
const (
	RewardShift     = lp.RewardShift
	SystemPrecision = precision.SystemPrecision
	BP              = lp.BP
	// MaxTokenBalance is the pool-overflow ceiling: token_a_balance +
	// token_b_balance must stay strictly below this.
	MaxTokenBalance = uint64(1) << 40
)

// Pool is the singleton pool record (spec §3). All fields are
// non-negative; the zero value is an uninitialized (never-deposited-into)
// pool.
type Pool struct {
	A uint64 // amplification coefficient
	D uint64 // current invariant value, system precision

	Balances Amounts // virtual token balances, system precision

	Reserves      uint64 // cumulative deposits minus withdrawals, system precision
	TotalLPAmount uint64 // sum of all user LP holdings, system precision

	AccRewardPerShareP uint64 // fixed-point accumulator, scaled by 2^RewardShift
	AdminFeeAmount     uint64 // rewards diverted to the admin account

	FeeShareBP        uint16 // LP-share fee, basis points of swap output
	AdminFeeShareBP   uint16 // admin's cut of collected fees, basis points
	BalanceRatioMinBP uint16 // floor for min(a,b)/max(a,b), basis points

	DecimalsByToken Decimals // external decimal precision per token
	DecimalsLP      uint32   // external decimal precision of the LP token
}

// Decimals holds the external decimal precision for each pooled token.
type Decimals struct {
	A uint32
	B uint32
}

// Get returns the external decimal precision for the given token tag.
func (d Decimals) Get(t Token) uint32 {
	if t == TokenA {
		return d.A
	}
	return d.B
}

// Tokens bundles the external token collaborators a single operation
// needs: the two pooled tokens and the LP token, plus the pool's own
// custodial address (where swapped-in/deposited assets live).
type Tokens struct {
	TokenA   token.Interface
	TokenB   token.Interface
	LP       token.Interface
	PoolAddr token.Address
}

// Get returns the token interface for the given tag.
func (t Tokens) Get(tag Token) token.Interface {
	if tag == TokenA {
		return t.TokenA
	}
	return t.TokenB
}

// Sum returns token_a_balance + token_b_balance.
func (p *Pool) Sum() uint64 {
	return p.Balances.A + p.Balances.B
}

func (p *Pool) updateD() {
	p.D = curve.D(p.A, p.Balances.A, p.Balances.B)
}

func (p *Pool) validateBalanceRatio() error {
	a, b := p.Balances.A, p.Balances.B
	if a == 0 && b == 0 {
		return nil
	}
	min, max := a, b
	if min > max {
		min, max = max, min
	}
	if max == 0 {
		return nil
	}
	if min*BP/max < uint64(p.BalanceRatioMinBP) {
		return ErrBalanceRatioExceeded
	}
	return nil
}

// DepositResult is the outcome of a successful Deposit.
type DepositResult struct {
	ClaimedReward uint64
	LPMinted      uint64
}

// Deposit applies amountSP (system precision) of combined liquidity from
// sender, splitting it across both tokens either equally (first deposit
// into an empty pool) or proportionally to the current balances
// (subsequent deposits, preserving the pool's current ratio).
func (p *Pool) Deposit(ctx context.Context, tk Tokens, sender token.Address, user *userdeposit.UserDeposit, amountSP uint64) (DepositResult, error) {
	if amountSP == 0 {
		return DepositResult{}, ErrZeroAmount
	}

	oldD := p.D
	oldSum := p.Sum()

	var aAdd, bAdd uint64
	if oldD == 0 || oldSum == 0 {
		aAdd = amountSP / 2
		bAdd = amountSP / 2
	} else {
		aAdd = bigmath.MulDiv(amountSP, p.Balances.A, oldSum)
		bAdd = bigmath.MulDiv(amountSP, p.Balances.B, oldSum)
	}

	newBalances := Amounts{A: p.Balances.A + aAdd, B: p.Balances.B + bAdd}
	newSum := newBalances.A + newBalances.B
	if newSum >= MaxTokenBalance {
		return DepositResult{}, ErrPoolOverflow
	}

	p.Balances = newBalances
	p.Reserves += amountSP
	p.updateD()

	if err := p.validateBalanceRatio(); err != nil {
		return DepositResult{}, err
	}

	lpMinted := p.D - oldD

	if err := tk.TokenA.Transfer(ctx, sender, tk.PoolAddr, int64(precision.FromSystem(aAdd, p.DecimalsByToken.A))); err != nil {
		return DepositResult{}, err
	}
	if err := tk.TokenB.Transfer(ctx, sender, tk.PoolAddr, int64(precision.FromSystem(bAdd, p.DecimalsByToken.B))); err != nil {
		return DepositResult{}, err
	}
	if err := tk.LP.Mint(ctx, sender, int64(precision.FromSystem(lpMinted, p.DecimalsLP))); err != nil {
		return DepositResult{}, err
	}

	claimedReward := lp.DepositLP(user, &p.TotalLPAmount, p.AccRewardPerShareP, lpMinted)
	return DepositResult{ClaimedReward: claimedReward, LPMinted: lpMinted}, nil
}

// Withdraw burns amountLP (system precision) of sender's LP holding,
// removing a proportional share of both token balances plus any reward
// pending on that holding (paid equally in both tokens).
func (p *Pool) Withdraw(ctx context.Context, tk Tokens, sender token.Address, user *userdeposit.UserDeposit, amountLP uint64) error {
	pending, err := lp.WithdrawLP(user, &p.TotalLPAmount, p.AccRewardPerShareP, amountLP)
	if err != nil {
		return ErrNotEnoughAmount
	}

	oldSum := p.Sum()
	if oldSum == 0 {
		return ErrZeroChanges
	}
	aOut := bigmath.MulDiv(amountLP, p.Balances.A, oldSum)
	bOut := bigmath.MulDiv(amountLP, p.Balances.B, oldSum)

	newBalances := Amounts{A: p.Balances.A - aOut, B: p.Balances.B - bOut}
	if newBalances.A+newBalances.B >= oldSum {
		return ErrZeroChanges
	}
	if amountLP > p.Reserves {
		return ErrReservesExhausted
	}

	p.Balances = newBalances
	p.Reserves -= amountLP

	oldD := p.D
	p.updateD()
	if p.D >= oldD {
		return ErrZeroChanges
	}

	aAmount := precision.FromSystem(aOut, p.DecimalsByToken.A) + pending
	bAmount := precision.FromSystem(bOut, p.DecimalsByToken.B) + pending

	if err := tk.TokenA.Transfer(ctx, tk.PoolAddr, sender, int64(aAmount)); err != nil {
		return err
	}
	if err := tk.TokenB.Transfer(ctx, tk.PoolAddr, sender, int64(bAmount)); err != nil {
		return err
	}
	if err := tk.LP.Burn(ctx, sender, int64(precision.FromSystem(amountLP, p.DecimalsLP))); err != nil {
		return err
	}
	return nil
}

// SwapResult is the outcome of a successful Swap.
type SwapResult struct {
	Result uint64
	Fee    uint64
}

// Swap converts amountIn (system precision, of the "from" side of
// direction) into the other token, applying the LP/admin fee split and
// either crediting a claimable balance or transferring immediately to
// recipient.
func (p *Pool) Swap(ctx context.Context, tk Tokens, sender, recipient token.Address, claims *claimable.Balances, amountIn, receiveMin uint64, zeroFee, claimableOut bool, direction Direction) (SwapResult, error) {
	if amountIn == 0 {
		return SwapResult{}, nil
	}

	fromTok, toTok := direction.Tokens()

	if err := tk.Get(fromTok).Transfer(ctx, sender, tk.PoolAddr, int64(precision.FromSystem(amountIn, p.DecimalsByToken.Get(fromTok)))); err != nil {
		return SwapResult{}, err
	}

	newFrom := p.Balances.Get(fromTok) + amountIn
	newTo := curve.Y(p.A, p.D, newFrom)

	var resultSP uint64
	if p.Balances.Get(toTok) > newTo {
		resultSP = p.Balances.Get(toTok) - newTo
	}

	if resultSP > p.Reserves {
		return SwapResult{}, ErrReservesExhausted
	}
	p.Reserves = p.Reserves + amountIn - resultSP

	result := precision.FromSystem(resultSP, p.DecimalsByToken.Get(toTok))

	var fee uint64
	if !zeroFee {
		fee = bigmath.MulDiv(result, uint64(p.FeeShareBP), BP)
	}
	result -= fee

	p.Balances.Set(toTok, newTo)
	p.Balances.Set(fromTok, newFrom)

	lp.AddRewards(p.TotalLPAmount, &p.AccRewardPerShareP, &p.AdminFeeAmount, p.AdminFeeShareBP, fee)

	if err := p.validateBalanceRatio(); err != nil {
		return SwapResult{}, err
	}

	if result < receiveMin {
		return SwapResult{}, ErrInsufficientReceivedAmount
	}

	if claimableOut {
		claims.Increment(recipient.String(), result)
	} else if err := tk.Get(toTok).Transfer(ctx, tk.PoolAddr, recipient, int64(result)); err != nil {
		return SwapResult{}, err
	}

	return SwapResult{Result: result, Fee: fee}, nil
}

// ClaimRewards returns user's currently pending reward, refreshing their
// reward-debt snapshot if there is anything to claim.
func (p *Pool) ClaimRewards(user *userdeposit.UserDeposit) uint64 {
	return lp.ClaimRewards(user, p.AccRewardPerShareP)
}
