package smartcontract

import (
	"encoding/binary"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// Valid classic addresses used throughout the tests: the well-known special
// accounts with account IDs of all zeros and all zeros plus one.
const (
	accZero = "rrrrrrrrrrrrrrrrrrrrrhoLvTp"
	accOne  = "rrrrrrrrrrrrrrrrrrrrBZbvji"
)

func TestEncodeValueIntegers(t *testing.T) {
	cases := []struct {
		typ ParamType
		in  uint64
		out string
	}{
		{UInt8Type, 0, "00"},
		{UInt8Type, 255, "FF"},
		{UInt16Type, 0x1234, "1234"},
		{UInt32Type, 7, "00000007"},
		{UInt64Type, 1 << 40, "0000010000000000"},
		{UInt128Type, 1, "00000000000000000000000000000001"},
	}
	for _, c := range cases {
		res, err := EncodeValue(c.typ, NewIntValue(c.in))
		require.NoError(t, err)
		require.Equal(t, c.out, res)
	}
}

func TestEncodeValueIntegerRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 255, 256, 65535, 1<<32 - 1, 1<<63 + 42} {
		res, err := EncodeValue(UInt64Type, NewIntValue(v))
		require.NoError(t, err)
		b, err := hex.DecodeString(res.(string))
		require.NoError(t, err)
		require.Equal(t, v, binary.BigEndian.Uint64(b))
	}
}

func TestEncodeValueIntegerOutOfRange(t *testing.T) {
	// 256 exceeds the one-byte range of UInt8.
	_, err := EncodeValue(UInt8Type, NewIntValue(256))
	require.ErrorIs(t, err, ErrValueOutOfRange)

	_, err = EncodeValue(UInt16Type, NewIntValue(1<<16))
	require.ErrorIs(t, err, ErrValueOutOfRange)

	// Boundary values still fit.
	res, err := EncodeValue(UInt8Type, NewIntValue(255))
	require.NoError(t, err)
	require.Equal(t, "FF", res)

	// Negative and non-numeric input never even makes an IntValue.
	_, err = IntValueFromString("-1")
	require.ErrorIs(t, err, ErrValueOutOfRange)
	_, err = IntValueFromString("forty two")
	require.ErrorIs(t, err, ErrValueOutOfRange)

	big, err := IntValueFromString("115792089237316195423570985008687907853269984665640564039457584007913129639935") // 2^256-1
	require.NoError(t, err)
	_, err = EncodeValue(UInt192Type, big)
	require.ErrorIs(t, err, ErrValueOutOfRange)
	res, err = EncodeValue(UInt256Type, big)
	require.NoError(t, err)
	require.Equal(t, "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF", res)
}

func TestEncodeValueVL(t *testing.T) {
	b, err := BlobValueFromHex("cafe0102")
	require.NoError(t, err)
	res, err := EncodeValue(VLType, b)
	require.NoError(t, err)
	require.Equal(t, "CAFE0102", res)

	_, err = BlobValueFromHex("cafe010")
	require.ErrorIs(t, err, ErrInvalidHex)
	_, err = BlobValueFromHex("zz")
	require.ErrorIs(t, err, ErrInvalidHex)
}

func TestEncodeValueAccount(t *testing.T) {
	res, err := EncodeValue(AccountType, AddressValue(accZero))
	require.NoError(t, err)
	require.Equal(t, accZero, res)

	_, err = EncodeValue(AccountType, AddressValue("not an address"))
	require.ErrorIs(t, err, ErrInvalidAddress)
	// A tampered checksum is rejected.
	_, err = EncodeValue(AccountType, AddressValue("rrrrrrrrrrrrrrrrrrrrrhoLvTq"))
	require.ErrorIs(t, err, ErrInvalidAddress)
}

func TestEncodeValueAmount(t *testing.T) {
	// Drops pass through as the decimal string.
	res, err := EncodeValue(AmountType, DropsAmount("2000000000"))
	require.NoError(t, err)
	require.Equal(t, "2000000000", res)

	for _, bad := range []string{"", "12.5", "-1", "drops", "100000000000000001"} {
		_, err := EncodeValue(AmountType, DropsAmount(bad))
		require.ErrorIs(t, err, ErrInvalidAmount, "%q must be rejected", bad)
	}

	// Issued amounts keep their structure.
	res, err = EncodeValue(AmountType, IssuedAmountValue("USD", accOne, "1.5"))
	require.NoError(t, err)
	require.Equal(t, IssuedAmount{Currency: "USD", Issuer: accOne, Value: "1.5"}, res)

	_, err = EncodeValue(AmountType, IssuedAmountValue("USD", accOne, "-1.5"))
	require.ErrorIs(t, err, ErrInvalidAmount)
	_, err = EncodeValue(AmountType, IssuedAmountValue("USDT", accOne, "1.5"))
	require.ErrorIs(t, err, ErrInvalidCurrency)
	_, err = EncodeValue(AmountType, IssuedAmountValue("USD", "nobody", "1.5"))
	require.ErrorIs(t, err, ErrInvalidAddress)
}

func TestEncodeValueNumber(t *testing.T) {
	for _, good := range []string{"0", "-1", "3.14", "1e10", "-2.5E-3", ".5", "12345678901234567890123456789012345678901234567890"} {
		res, err := EncodeValue(NumberType, NumberValue(good))
		require.NoError(t, err, "%q must be accepted", good)
		require.Equal(t, good, res)
	}
	for _, bad := range []string{"", "one", "1.2.3", "1e", "0x10", "1/3"} {
		_, err := EncodeValue(NumberType, NumberValue(bad))
		require.ErrorIs(t, err, ErrInvalidNumber, "%q must be rejected", bad)
	}
}

func TestEncodeValueCurrency(t *testing.T) {
	for _, good := range []string{"USD", "xrp", "B2C", "0158415500000000C1F76FF6ECB0BAC600000000"} {
		res, err := EncodeValue(CurrencyType, CurrencyValue(good))
		require.NoError(t, err, "%q must be accepted", good)
		require.Equal(t, good, res)
	}
	for _, bad := range []string{"", "US", "USDT", "U$D", "0158415500000000C1F76FF6ECB0BAC60000000"} {
		_, err := EncodeValue(CurrencyType, CurrencyValue(bad))
		require.ErrorIs(t, err, ErrInvalidCurrency, "%q must be rejected", bad)
	}
}

func TestEncodeValueIssue(t *testing.T) {
	res, err := EncodeValue(IssueType, IssueValue{Currency: "USD", Issuer: accOne})
	require.NoError(t, err)
	require.Equal(t, map[string]interface{}{"currency": "USD", "issuer": accOne}, res)

	// The native asset has no issuer.
	res, err = EncodeValue(IssueType, IssueValue{Currency: "XRP"})
	require.NoError(t, err)
	require.Equal(t, map[string]interface{}{"currency": "XRP"}, res)

	_, err = EncodeValue(IssueType, IssueValue{Currency: "XRPX"})
	require.ErrorIs(t, err, ErrInvalidCurrency)
	_, err = EncodeValue(IssueType, IssueValue{Currency: "USD", Issuer: "nobody"})
	require.ErrorIs(t, err, ErrInvalidAddress)
}

func TestEncodeValueShapeMismatch(t *testing.T) {
	cases := []struct {
		typ ParamType
		val Value
	}{
		{UInt32Type, NumberValue("42")},
		{VLType, NewIntValue(42)},
		{AccountType, CurrencyValue("USD")},
		{AmountType, NumberValue("1")},
		{NumberType, NewIntValue(1)},
		{CurrencyType, IssueValue{Currency: "USD"}},
		{IssueType, CurrencyValue("USD")},
	}
	for _, c := range cases {
		_, err := EncodeValue(c.typ, c.val)
		require.ErrorIs(t, err, ErrTypeMismatch, "%s/%T must be rejected", c.typ, c.val)
	}
	_, err := EncodeValue(UInt8Type, nil)
	require.ErrorIs(t, err, ErrTypeMismatch)
	_, err = EncodeValue(ParamType(0x42), NewIntValue(1))
	require.ErrorIs(t, err, ErrUnknownType)
}
