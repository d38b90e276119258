package claimable

import "encoding/binary"

// EncodeAmount serializes a single recipient's accumulated balance; the
// record format is one record per recipient rather than one blob, so a
// single credit never requires rewriting every other recipient's entry.
// Nothing in this module currently writes these records to a Store.
func EncodeAmount(amount uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, amount)
	return buf
}

// DecodeAmount parses a record produced by EncodeAmount.
func DecodeAmount(buf []byte) uint64 {
	if len(buf) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(buf)
}
