package claimable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBalanceOfUnknownRecipientIsZero(t *testing.T) {
	b := NewBalances()
	require.Zero(t, b.Balance("nobody"))
}

func TestIncrementAccumulates(t *testing.T) {
	b := NewBalances()
	b.Increment("alice", 100)
	b.Increment("alice", 50)
	b.Increment("bob", 7)

	require.Equal(t, uint64(150), b.Balance("alice"))
	require.Equal(t, uint64(7), b.Balance("bob"))
}

func TestUpdateAppliesClosureToCurrent(t *testing.T) {
	b := NewBalances()
	b.Increment("alice", 10)
	b.Update("alice", func(cur uint64) uint64 { return cur * 3 })
	require.Equal(t, uint64(30), b.Balance("alice"))
}

func TestAmountCodecRoundTrip(t *testing.T) {
	require.Equal(t, uint64(98765), DecodeAmount(EncodeAmount(98765)))
	require.Zero(t, DecodeAmount([]byte{1, 2, 3}))
}
