package pool

import (
	"encoding/binary"
	"fmt"
)

// poolRecordLen is the fixed wire size of an encoded Pool: eight uint64
// fields, three uint16 fields and three uint32 fields, each big-endian.
const poolRecordLen = 8*8 + 3*2 + 3*4

// Encode serializes p to its fixed-width storage representation.
func (p *Pool) Encode() []byte {
	buf := make([]byte, poolRecordLen)
	off := 0
	putU64 := func(v uint64) {
		binary.BigEndian.PutUint64(buf[off:], v)
		off += 8
	}
	putU16 := func(v uint16) {
		binary.BigEndian.PutUint16(buf[off:], v)
		off += 2
	}
	putU32 := func(v uint32) {
		binary.BigEndian.PutUint32(buf[off:], v)
		off += 4
	}

	putU64(p.A)
	putU64(p.D)
	putU64(p.Balances.A)
	putU64(p.Balances.B)
	putU64(p.Reserves)
	putU64(p.TotalLPAmount)
	putU64(p.AccRewardPerShareP)
	putU64(p.AdminFeeAmount)
	putU16(p.FeeShareBP)
	putU16(p.AdminFeeShareBP)
	putU16(p.BalanceRatioMinBP)
	putU32(p.DecimalsByToken.A)
	putU32(p.DecimalsByToken.B)
	putU32(p.DecimalsLP)

	return buf[:off]
}

// DecodePool parses a Pool record previously produced by Encode.
func DecodePool(buf []byte) (*Pool, error) {
	if len(buf) != poolRecordLen {
		return nil, fmt.Errorf("pool: invalid record length %d, want %d", len(buf), poolRecordLen)
	}
	off := 0
	getU64 := func() uint64 {
		v := binary.BigEndian.Uint64(buf[off:])
		off += 8
		return v
	}
	getU16 := func() uint16 {
		v := binary.BigEndian.Uint16(buf[off:])
		off += 2
		return v
	}
	getU32 := func() uint32 {
		v := binary.BigEndian.Uint32(buf[off:])
		off += 4
		return v
	}

	p := &Pool{}
	p.A = getU64()
	p.D = getU64()
	p.Balances.A = getU64()
	p.Balances.B = getU64()
	p.Reserves = getU64()
	p.TotalLPAmount = getU64()
	p.AccRewardPerShareP = getU64()
	p.AdminFeeAmount = getU64()
	p.FeeShareBP = getU16()
	p.AdminFeeShareBP = getU16()
	p.BalanceRatioMinBP = getU16()
	p.DecimalsByToken.A = getU32()
	p.DecimalsByToken.B = getU32()
	p.DecimalsLP = getU32()
	return p, nil
}
