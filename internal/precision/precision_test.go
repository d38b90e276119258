package precision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTripLowPrecision(t *testing.T) {
	// decimals <= SystemPrecision: exact round trip.
	for _, d := range []uint32{0, 1, 2, 3} {
		amount := uint64(12345)
		require.Equal(t, amount, FromSystem(ToSystem(amount, d), d))
	}
}

func TestRoundTripHighPrecisionDropsDust(t *testing.T) {
	// decimals > SystemPrecision: round trip loses amount mod 10^(d-3).
	amount := uint64(123456789)
	d := uint32(7)
	got := FromSystem(ToSystem(amount, d), d)
	want := amount - (amount % pow10(d-SystemPrecision))
	require.Equal(t, want, got)
}

func TestIdentityAtSystemPrecision(t *testing.T) {
	require.Equal(t, uint64(42), ToSystem(42, SystemPrecision))
	require.Equal(t, uint64(42), FromSystem(42, SystemPrecision))
}

func TestScaleUpForLowDecimals(t *testing.T) {
	// decimals=0 -> scale up by 10^3 going to system precision.
	require.Equal(t, uint64(7000), ToSystem(7, 0))
	require.Equal(t, uint64(7), FromSystem(7000, 0))
}

func TestScaleDownForHighDecimals(t *testing.T) {
	// decimals=7 (e.g. XRP drops-style precision) -> floor-divide by 10^4.
	require.Equal(t, uint64(12), ToSystem(123456, 7))
}
