package pooltx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LeJamon/ammpool/internal/pool"
	"github.com/LeJamon/ammpool/internal/storage"
	"github.com/LeJamon/ammpool/internal/token"
)

func addr(b byte) token.Address {
	var a token.Address
	a[19] = b
	return a
}

func newTestAdapter(t *testing.T) (*Adapter, token.Address) {
	t.Helper()
	tokA := token.NewMemoryLedger()
	tokB := token.NewMemoryLedger()
	lpTok := token.NewMemoryLedger()
	sender := addr(0x01)
	tokA.Fund(sender, 1_000_000_000_000)
	tokB.Fund(sender, 1_000_000_000_000)

	tokens := pool.Tokens{TokenA: tokA, TokenB: tokB, LP: lpTok, PoolAddr: addr(0xAA)}
	store := storage.NewMemStore()
	a := New(store, tokens, nil)

	p := &pool.Pool{
		A:                 20,
		FeeShareBP:        1,
		AdminFeeShareBP:   2000,
		BalanceRatioMinBP: 1,
		DecimalsByToken:   pool.Decimals{A: 7, B: 7},
		DecimalsLP:        7,
	}
	require.NoError(t, a.InitPool(context.Background(), p))
	return a, sender
}

func TestAdapterInitPoolRejectsDoubleInit(t *testing.T) {
	a, _ := newTestAdapter(t)
	p := &pool.Pool{A: 20}
	err := a.InitPool(context.Background(), p)
	require.ErrorIs(t, err, pool.ErrPoolAlreadyInitialized)
}

func TestAdapterDepositWithdrawRoundTrip(t *testing.T) {
	ctx := context.Background()
	a, sender := newTestAdapter(t)

	res, err := a.Deposit(ctx, sender, 200_000)
	require.NoError(t, err)
	require.Greater(t, res.LPMinted, uint64(0))

	err = a.Withdraw(ctx, sender, res.LPMinted)
	require.NoError(t, err)
}

func TestAdapterSwapAndClaim(t *testing.T) {
	ctx := context.Background()
	a, sender := newTestAdapter(t)

	_, err := a.Deposit(ctx, sender, 200_000)
	require.NoError(t, err)

	recipient := addr(0x02)
	res, err := a.Swap(ctx, sender, recipient, 50_000, 0, false, false, pool.A2B)
	require.NoError(t, err)
	require.Greater(t, res.Result, uint64(0))

	pending, err := a.ClaimRewards(ctx, sender)
	require.NoError(t, err)
	require.Greater(t, pending, uint64(0))
}

func TestAdapterSwapClaimableBalance(t *testing.T) {
	ctx := context.Background()
	a, sender := newTestAdapter(t)
	_, err := a.Deposit(ctx, sender, 200_000)
	require.NoError(t, err)

	recipient := addr(0x02)
	res, err := a.Swap(ctx, sender, recipient, 1_000, 0, false, true, pool.A2B)
	require.NoError(t, err)
	require.Equal(t, res.Result, a.ClaimableBalance(recipient))
}
