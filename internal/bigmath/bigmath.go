// Package bigmath provides the deterministic 256-bit integer helpers the
// pool's bonding-curve solver is built on: integer square root, integer
// cube root, and a small signed wrapper for the sign-carrying transients
// the curve's y(x) solve needs despite every stored quantity being
// unsigned. Everything here is pure and allocates fresh values; nothing
// touches floating point.
package bigmath

import (
	"math/bits"

	"github.com/holiman/uint256"
)

// U256 is the 256-bit unsigned integer all curve intermediates are
// widened to, matching the "256-bit intermediate arithmetic" the solver
// is specified against.
type U256 = uint256.Int

// FromUint64 widens a system-precision amount into a U256.
func FromUint64(v uint64) *U256 {
	return uint256.NewInt(v)
}

// Sqrt returns the integer floor square root of x: the largest r such
// that r*r <= x. It is a Newton iteration seeded from a bit-length
// derived guess, matching the contract r^2 <= x < (r+1)^2.
func Sqrt(x *U256) *U256 {
	if x.IsZero() {
		return new(U256)
	}
	// Seed high: 2^ceil(bitLen/2) is always >= the true root.
	guess := new(U256).Lsh(uint256.NewInt(1), uint((x.BitLen()+1)/2))
	for {
		// next = (guess + x/guess) / 2
		next := new(U256).Div(x, guess)
		next.Add(next, guess)
		next.Rsh(next, 1)
		if next.Cmp(guess) >= 0 {
			return guess
		}
		guess = next
	}
}

// Cbrt returns the integer floor cube root of x: the largest r such that
// r*r*r <= x. Contract: r^3 <= x < (r+1)^3. The result always fits in
// 128 bits for the magnitudes the curve solver feeds it (D and its
// cubes), but the wider U256 is returned so callers can compose it
// without an intermediate narrowing.
func Cbrt(x *U256) *U256 {
	if x.IsZero() {
		return new(U256)
	}
	guess := new(U256).Lsh(uint256.NewInt(1), uint((x.BitLen()+2)/3))
	two := uint256.NewInt(2)
	three := uint256.NewInt(3)
	for {
		sq := new(U256).Mul(guess, guess)
		term := new(U256).Div(x, sq)
		next := new(U256).Mul(guess, two)
		next.Add(next, term)
		next.Div(next, three)
		if next.Cmp(guess) >= 0 {
			return guess
		}
		guess = next
	}
}

// MulShr computes (a * b) >> shift without the intermediate overflowing
// a machine word, then narrows back to uint64. Used by the LP reward
// accumulator, whose product of LP units and the fixed-point
// accumulator can exceed 64 bits before the down-shift.
func MulShr(a, b uint64, shift uint) uint64 {
	t := new(U256).Mul(FromUint64(a), FromUint64(b))
	t.Rsh(t, shift)
	return t.Uint64()
}

// MulDiv computes a * b / div with a 128-bit intermediate product, so
// two balance-scale operands (each up to 2^40 and beyond) never
// overflow before the division narrows the result. div must be
// non-zero and the quotient must fit in 64 bits; both hold at every
// call site because the divisor is always at least as large as one of
// the factors (a balance sum, a total LP amount, or the basis-point
// denominator against a fee fraction of the other factor).
func MulDiv(a, b, div uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	q, _ := bits.Div64(hi, lo, div)
	return q
}

// LshDiv computes (a << shift) / div, widening through U256 so the left
// shift cannot overflow a uint64 before the division narrows it back.
func LshDiv(a uint64, shift uint, div uint64) uint64 {
	t := new(U256).Lsh(FromUint64(a), shift)
	t.Div(t, FromUint64(div))
	return t.Uint64()
}

// Signed is a minimal sign-magnitude wrapper over U256, enough to carry
// the sign of the curve solver's "4A(D-x) - D" transient without a full
// signed bignum type. The magnitude is always non-negative; Neg is
// forced false whenever the magnitude is zero so -0 never compares
// unequal to +0.
type Signed struct {
	Neg bool
	Mag *U256
}

// NewSigned builds a Signed from a magnitude and sign, normalizing -0.
func NewSigned(mag *U256, neg bool) Signed {
	if mag.IsZero() {
		neg = false
	}
	return Signed{Neg: neg, Mag: mag}
}

// SignedFromUint64Diff returns big-a-minus-b as a Signed, for the common
// case of subtracting two non-negative system-precision quantities that
// may go negative.
func SignedFromUint64Diff(a, b uint64) Signed {
	if a >= b {
		return NewSigned(FromUint64(a-b), false)
	}
	return NewSigned(FromUint64(b-a), true)
}

// MulUnsigned multiplies a Signed by a non-negative U256, keeping the
// Signed's sign.
func (s Signed) MulUnsigned(u *U256) Signed {
	return NewSigned(new(U256).Mul(s.Mag, u), s.Neg)
}

// Square returns the (always non-negative) square of a Signed's value.
func (s Signed) Square() *U256 {
	return new(U256).Mul(s.Mag, s.Mag)
}

// Add returns s + o.
func (s Signed) Add(o Signed) Signed {
	if s.Neg == o.Neg {
		return NewSigned(new(U256).Add(s.Mag, o.Mag), s.Neg)
	}
	if s.Mag.Cmp(o.Mag) >= 0 {
		return NewSigned(new(U256).Sub(s.Mag, o.Mag), s.Neg)
	}
	return NewSigned(new(U256).Sub(o.Mag, s.Mag), o.Neg)
}

// Sub returns s - o.
func (s Signed) Sub(o Signed) Signed {
	return s.Add(NewSigned(o.Mag, !o.Neg))
}
