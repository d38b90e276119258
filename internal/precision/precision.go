// Package precision converts external token amounts (in whatever decimal
// precision a token's issuer declares) to and from the pool's internal
// system precision. The conversion is intentionally lossy one way: any
// fractional amount below the system precision is floor-discarded at the
// boundary, the way dust below 10^-3 is discarded when bridging XRP
// drops, IOU precision, or any other external decimal scale.
package precision

// SystemPrecision is the number of decimals the pool engine does all of
// its internal accounting in, regardless of what precision the two
// pooled tokens expose externally.
const SystemPrecision = 3

// ToSystem converts an external-precision amount to system precision.
// When decimals > SystemPrecision the conversion floor-divides (discarding
// dust); when decimals < SystemPrecision it scales up exactly.
func ToSystem(amount uint64, decimals uint32) uint64 {
	switch {
	case decimals > SystemPrecision:
		return amount / pow10(decimals-SystemPrecision)
	case decimals < SystemPrecision:
		return amount * pow10(SystemPrecision-decimals)
	default:
		return amount
	}
}

// FromSystem converts a system-precision amount back to external
// precision. It is the exact inverse of ToSystem only when decimals <=
// SystemPrecision; for decimals > SystemPrecision the round trip loses
// the digits ToSystem already discarded.
func FromSystem(amount uint64, decimals uint32) uint64 {
	switch {
	case decimals > SystemPrecision:
		return amount * pow10(decimals-SystemPrecision)
	case decimals < SystemPrecision:
		return amount / pow10(SystemPrecision-decimals)
	default:
		return amount
	}
}

func pow10(n uint32) uint64 {
	r := uint64(1)
	for i := uint32(0); i < n; i++ {
		r *= 10
	}
	return r
}
