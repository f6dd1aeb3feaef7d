package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEncodeAddress(t *testing.T) {
	addrs := []string{
		"rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
		"rrrrrrrrrrrrrrrrrrrrrhoLvTp",
		"rrrrrrrrrrrrrrrrrrrrBZbvji",
		"rrrrrrrrrrrrrrrrrNAMEtxvNvQ",
		"rrrrrrrrrrrrrrrrrrrn5RM1rHd",
	}
	for _, addr := range addrs {
		val, err := Decode(addr)
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, addr, Encode(val))
	}
}

func TestDecodeKnownAddress(t *testing.T) {
	// ACCOUNT_ZERO is the address of the all-zero account ID.
	val, err := Decode("rrrrrrrrrrrrrrrrrrrrrhoLvTp")
	require.NoError(t, err)
	require.Equal(t, [AccountIDSize]byte{}, val)

	// ACCOUNT_ONE differs in the last byte only.
	val, err = Decode("rrrrrrrrrrrrrrrrrrrrBZbvji")
	require.NoError(t, err)
	var one [AccountIDSize]byte
	one[AccountIDSize-1] = 1
	require.Equal(t, one, val)
}

func TestDecodeBadBase58(t *testing.T) {
	// '0', 'O', 'I' and 'l' are not in the ripple alphabet.
	_, err := Decode("r0000000000000000000000000")
	require.Error(t, err)
}

func TestDecodeBadChecksum(t *testing.T) {
	_, err := Decode("rrrrrrrrrrrrrrrrrrrrrhoLvTq")
	require.ErrorIs(t, err, ErrChecksum)
}

func TestDecodeBadLength(t *testing.T) {
	_, err := Decode("rrr")
	require.Error(t, err)
}

func TestIsValid(t *testing.T) {
	require.True(t, IsValid("rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"))
	require.False(t, IsValid(""))
	require.False(t, IsValid("not an address"))
	// A valid base58 string with the seed prefix isn't an account.
	require.False(t, IsValid("sn259rEFXrQrWyx3Q7XneWcwV6dfL"))
}
