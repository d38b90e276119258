// Package curve implements the stable-swap bonding curve (C3): the
// invariant function D(x,y) and its inverse y(x) given D, both solved in
// closed form over 256-bit intermediates via bigmath. C1's Sqrt and Cbrt
// are used only from here; nothing else in the pool engine needs raw
// sqrt/cbrt (lp and pool use only bigmath's MulDiv/MulShr/LshDiv).
package curve

import (
	"github.com/LeJamon/ammpool/internal/bigmath"
	"github.com/holiman/uint256"
)

type u256 = bigmath.U256

func u64(v uint64) *u256 { return bigmath.FromUint64(v) }

// D computes the stable-swap invariant for balances x and y under
// amplification coefficient a. D(0,0) = 0, and D is monotone
// nondecreasing in each argument.
//
//	p1 = A·x·y·(x+y)
//	p2 = x·y·(4A-1)/3
//	p3 = sqrt(p1^2 + p2^3)
//	D  = 2·(cbrt(p1+p3) ± cbrt(|p1-p3|))
//
// with the second cube root added when p1 > p3 and subtracted otherwise.
func D(a, x, y uint64) uint64 {
	if x == 0 && y == 0 {
		return 0
	}

	aU, xU, yU := u64(a), u64(x), u64(y)
	xy := new(u256).Mul(xU, yU)
	sum := new(u256).Add(xU, yU)

	p1 := new(u256).Mul(aU, sum)
	p1.Mul(p1, xy)

	four := new(u256).Mul(aU, uint256.NewInt(4))
	four.Sub(four, uint256.NewInt(1)) // 4A - 1
	p2 := new(u256).Mul(xy, four)
	p2.Div(p2, uint256.NewInt(3))

	p1Sq := new(u256).Mul(p1, p1)
	p2Cubed := new(u256).Mul(new(u256).Mul(p2, p2), p2)
	underSqrt := new(u256).Add(p1Sq, p2Cubed)
	p3 := bigmath.Sqrt(underSqrt)

	cbrtSum := bigmath.Cbrt(new(u256).Add(p1, p3))

	var d *u256
	if p3.Cmp(p1) > 0 {
		d = new(u256).Sub(cbrtSum, bigmath.Cbrt(new(u256).Sub(p3, p1)))
	} else {
		d = new(u256).Add(cbrtSum, bigmath.Cbrt(new(u256).Sub(p1, p3)))
	}
	d.Lsh(d, 1)
	return d.Uint64()
}

// Y solves the quadratic in y for the balance of the other asset given
// the new balance x of one asset and the (unchanged) invariant d:
//
//	part1 = 4A(D - x) - D             // signed
//	part2 = x · (4A·D^3 + x · part1^2)
//	y     = (sqrt(part2) + x·part1) / (8A·x)
//
// x must be strictly positive; the pool state machine only calls Y after
// adding a strictly positive amount_in to a balance.
func Y(a, d, x uint64) uint64 {
	aU, xU, dU := u64(a), u64(x), u64(d)

	four := new(u256).Mul(aU, uint256.NewInt(4)) // 4A

	diff := bigmath.SignedFromUint64Diff(d, x) // D - x, signed
	term := diff.MulUnsigned(four)             // 4A(D - x), signed
	part1 := term.Sub(bigmath.NewSigned(dU, false))

	ddd := new(u256).Mul(new(u256).Mul(dU, dU), dU) // D^3
	fourDDD := new(u256).Mul(four, ddd)              // 4A·D^3

	part1Sq := part1.Square()
	inner := new(u256).Mul(xU, part1Sq)
	inner.Add(inner, fourDDD)
	part2 := new(u256).Mul(xU, inner)

	sqrtPart2 := bigmath.Sqrt(part2)

	xPart1 := part1.MulUnsigned(xU)
	numerator := bigmath.NewSigned(sqrtPart2, false).Add(xPart1)

	denom := new(u256).Mul(new(u256).Mul(aU, uint256.NewInt(8)), xU) // 8A·x
	y := new(u256).Div(numerator.Mag, denom)
	return y.Uint64()
}
