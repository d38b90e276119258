package userdeposit

import (
	"encoding/binary"
	"fmt"
)

const recordLen = 16

// Encode serializes d to its fixed-width storage representation.
func (d UserDeposit) Encode() []byte {
	buf := make([]byte, recordLen)
	binary.BigEndian.PutUint64(buf[0:8], d.LPAmount)
	binary.BigEndian.PutUint64(buf[8:16], d.RewardDebt)
	return buf
}

// Decode parses a UserDeposit record previously produced by Encode.
func Decode(buf []byte) (UserDeposit, error) {
	if len(buf) != recordLen {
		return UserDeposit{}, fmt.Errorf("userdeposit: invalid record length %d, want %d", len(buf), recordLen)
	}
	return UserDeposit{
		LPAmount:   binary.BigEndian.Uint64(buf[0:8]),
		RewardDebt: binary.BigEndian.Uint64(buf[8:16]),
	}, nil
}
