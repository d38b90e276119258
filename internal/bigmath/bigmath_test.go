package bigmath

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestSqrtContract(t *testing.T) {
	cases := []uint64{0, 1, 2, 3, 4, 1000, 1000000, 1 << 40, 1<<63 - 1}
	for _, c := range cases {
		r := Sqrt(FromUint64(c))
		rPlus1 := new(U256).Add(r, uint256.NewInt(1))
		require.True(t, new(U256).Mul(r, r).Cmp(FromUint64(c)) <= 0, "r^2 <= x for x=%d", c)
		require.True(t, new(U256).Mul(rPlus1, rPlus1).Cmp(FromUint64(c)) > 0, "(r+1)^2 > x for x=%d", c)
	}
}

func TestSqrtLargeU256(t *testing.T) {
	x := new(U256).Lsh(uint256.NewInt(1), 200)
	r := Sqrt(x)
	rPlus1 := new(U256).Add(r, uint256.NewInt(1))
	require.True(t, new(U256).Mul(r, r).Cmp(x) <= 0)
	require.True(t, new(U256).Mul(rPlus1, rPlus1).Cmp(x) > 0)
}

func TestCbrtContract(t *testing.T) {
	cases := []uint64{0, 1, 2, 7, 8, 9, 1000, 1000000, 1 << 40}
	for _, c := range cases {
		r := Cbrt(FromUint64(c))
		rPlus1 := new(U256).Add(r, uint256.NewInt(1))
		cube := new(U256).Mul(new(U256).Mul(r, r), r)
		cubePlus1 := new(U256).Mul(new(U256).Mul(rPlus1, rPlus1), rPlus1)
		require.True(t, cube.Cmp(FromUint64(c)) <= 0, "r^3 <= x for x=%d", c)
		require.True(t, cubePlus1.Cmp(FromUint64(c)) > 0, "(r+1)^3 > x for x=%d", c)
	}
}

func TestMulShr(t *testing.T) {
	// lpAmount near its 2^40 ceiling times a 2^48-scaled accumulator
	// would overflow uint64 before the downshift; MulShr must not.
	lpAmount := uint64(1) << 40
	acc := uint64(1) << 48
	got := MulShr(lpAmount, acc, 48)
	require.Equal(t, lpAmount, got)
}

func TestMulDivWideIntermediate(t *testing.T) {
	// A proportional deposit split at the balance ceiling: both factors
	// near 2^40, product far beyond 64 bits.
	a := uint64(1) << 40
	b := uint64(1)<<40 - 1
	sum := uint64(1) << 40
	require.Equal(t, b, MulDiv(a, b, sum))

	// Fee fraction of a large output amount.
	require.Equal(t, uint64(123456789), MulDiv(1234567890000, 1, 10000))
}

func TestLshDiv(t *testing.T) {
	got := LshDiv(3, 48, 2)
	want := new(U256).Lsh(uint256.NewInt(3), 48)
	want.Div(want, uint256.NewInt(2))
	require.Equal(t, want.Uint64(), got)
}

func TestSignedArithmetic(t *testing.T) {
	a := SignedFromUint64Diff(5, 10) // -5
	require.True(t, a.Neg)
	require.Equal(t, uint64(5), a.Mag.Uint64())

	b := SignedFromUint64Diff(10, 5) // +5
	require.False(t, b.Neg)

	sum := a.Add(b)
	require.True(t, sum.Mag.IsZero())
	require.False(t, sum.Neg)

	diff := b.Sub(a) // 5 - (-5) = 10
	require.False(t, diff.Neg)
	require.Equal(t, uint64(10), diff.Mag.Uint64())

	sq := a.Square()
	require.Equal(t, uint64(25), sq.Uint64())
}
