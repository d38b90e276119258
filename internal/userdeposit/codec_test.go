package userdeposit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	d := UserDeposit{LPAmount: 12_345, RewardDebt: 678}
	got, err := Decode(d.Encode())
	require.NoError(t, err)
	require.Equal(t, d, got)
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	_, err := Decode([]byte{1, 2, 3})
	require.Error(t, err)
}
