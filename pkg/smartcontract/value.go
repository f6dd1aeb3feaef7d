package smartcontract

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
	"github.com/xrpl-wasm/xrpl-go/pkg/encoding/address"
)

// MaxDrops is the total amount of drops that can ever exist, the upper bound
// for native amounts.
const MaxDrops = 100_000_000_000 * 1_000_000

// Value is the typed payload of a call or instance parameter. It's a closed
// set of shapes, the paired ParamType selects which shape is acceptable at
// encoding time. Values are immutable once constructed.
type Value interface {
	isValue()
}

// IntValue is an unsigned integer payload for the UInt8..UInt256 types.
type IntValue struct {
	n *uint256.Int
}

// BlobValue is a raw byte payload for VL parameters.
type BlobValue []byte

// AddressValue is a classic ledger address payload for Account parameters.
type AddressValue string

// IssuedAmount is an issued-currency amount.
type IssuedAmount struct {
	Currency string `json:"currency"`
	Issuer   string `json:"issuer"`
	Value    string `json:"value"`
}

// AmountValue is an Amount payload: either native drops (as a decimal
// string) or an issued-currency amount.
type AmountValue struct {
	drops  string
	issued *IssuedAmount
}

// NumberValue is an arbitrary-precision decimal payload for Number
// parameters.
type NumberValue string

// CurrencyValue is a currency code payload, either a 3-letter code or 40 hex
// digits.
type CurrencyValue string

// IssueValue is an Issue payload, a currency with an optional issuer.
type IssueValue struct {
	Currency string
	Issuer   string
}

func (IntValue) isValue()      {}
func (BlobValue) isValue()     {}
func (AddressValue) isValue()  {}
func (AmountValue) isValue()   {}
func (NumberValue) isValue()   {}
func (CurrencyValue) isValue() {}
func (IssueValue) isValue()    {}

// NewIntValue returns an IntValue for the given integer.
func NewIntValue(n uint64) IntValue {
	return IntValue{n: uint256.NewInt(n)}
}

// IntValueFromString parses a non-negative decimal string into an IntValue.
func IntValueFromString(s string) (IntValue, error) {
	n, err := uint256.FromDecimal(s)
	if err != nil {
		return IntValue{}, fmt.Errorf("%w: %q: %v", ErrValueOutOfRange, s, err)
	}
	return IntValue{n: n}, nil
}

// BlobValueFromHex parses a hex string into a BlobValue.
func BlobValueFromHex(s string) (BlobValue, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return BlobValue(b), nil
}

// DropsAmount returns an AmountValue carrying native drops. The string must
// be a plain decimal, it's validated at encoding time.
func DropsAmount(drops string) AmountValue {
	return AmountValue{drops: drops}
}

// IssuedAmountValue returns an AmountValue carrying an issued-currency
// amount.
func IssuedAmountValue(currency, issuer, value string) AmountValue {
	return AmountValue{issued: &IssuedAmount{Currency: currency, Issuer: issuer, Value: value}}
}

// EncodeValue validates v against the declared parameter type and returns
// its wire representation: fixed-width big-endian uppercase hex for integer
// types, uppercase hex for VL, the address string for Account, the
// XRPL-style amount (decimal drops string or currency/issuer/value object)
// for Amount, the decimal string for Number, the code for Currency and a
// currency/issuer object for Issue. It's a pure function, inputs are never
// mutated.
func EncodeValue(typ ParamType, v Value) (interface{}, error) {
	if !validParamTypes[typ] {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, typ)
	}
	if v == nil {
		return nil, fmt.Errorf("%w: %s parameter has no value", ErrTypeMismatch, typ)
	}
	if w, ok := typ.FixedWidth(); ok {
		i, ok := v.(IntValue)
		if !ok {
			return nil, fmt.Errorf("%w: %s value for %s parameter", ErrTypeMismatch, valueShape(v), typ)
		}
		return encodeInt(typ, w, i)
	}
	switch typ {
	case VLType:
		b, ok := v.(BlobValue)
		if !ok {
			return nil, fmt.Errorf("%w: %s value for VL parameter", ErrTypeMismatch, valueShape(v))
		}
		return strings.ToUpper(hex.EncodeToString(b)), nil
	case AccountType:
		a, ok := v.(AddressValue)
		if !ok {
			return nil, fmt.Errorf("%w: %s value for Account parameter", ErrTypeMismatch, valueShape(v))
		}
		if !address.IsValid(string(a)) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, string(a))
		}
		return string(a), nil
	case AmountType:
		a, ok := v.(AmountValue)
		if !ok {
			return nil, fmt.Errorf("%w: %s value for Amount parameter", ErrTypeMismatch, valueShape(v))
		}
		return encodeAmount(a)
	case NumberType:
		n, ok := v.(NumberValue)
		if !ok {
			return nil, fmt.Errorf("%w: %s value for Number parameter", ErrTypeMismatch, valueShape(v))
		}
		if !isDecimal(string(n)) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, string(n))
		}
		return string(n), nil
	case CurrencyType:
		c, ok := v.(CurrencyValue)
		if !ok {
			return nil, fmt.Errorf("%w: %s value for Currency parameter", ErrTypeMismatch, valueShape(v))
		}
		if err := validateCurrency(string(c)); err != nil {
			return nil, err
		}
		return string(c), nil
	case IssueType:
		i, ok := v.(IssueValue)
		if !ok {
			return nil, fmt.Errorf("%w: %s value for Issue parameter", ErrTypeMismatch, valueShape(v))
		}
		return encodeIssue(i)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, typ)
	}
}

// encodeInt renders i as width big-endian bytes in uppercase hex, checking
// that the value fits.
func encodeInt(typ ParamType, width int, i IntValue) (interface{}, error) {
	if i.n == nil {
		return nil, fmt.Errorf("%w: empty integer for %s parameter", ErrTypeMismatch, typ)
	}
	if (i.n.BitLen()+7)/8 > width {
		return nil, fmt.Errorf("%w: %s doesn't fit into %s", ErrValueOutOfRange, i.n.Dec(), typ)
	}
	full := i.n.Bytes32()
	return strings.ToUpper(hex.EncodeToString(full[32-width:])), nil
}

func encodeAmount(a AmountValue) (interface{}, error) {
	if a.issued != nil {
		if err := validateCurrency(a.issued.Currency); err != nil {
			return nil, err
		}
		if !address.IsValid(a.issued.Issuer) {
			return nil, fmt.Errorf("%w: issuer %q", ErrInvalidAddress, a.issued.Issuer)
		}
		if !isDecimal(a.issued.Value) || strings.HasPrefix(a.issued.Value, "-") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, a.issued.Value)
		}
		return *a.issued, nil
	}
	n, err := uint256.FromDecimal(a.drops)
	if err != nil {
		return nil, fmt.Errorf("%w: drops %q", ErrInvalidAmount, a.drops)
	}
	if !n.IsUint64() || n.Uint64() > MaxDrops {
		return nil, fmt.Errorf("%w: drops %q exceed the total supply", ErrInvalidAmount, a.drops)
	}
	return a.drops, nil
}

func encodeIssue(i IssueValue) (interface{}, error) {
	if err := validateCurrency(i.Currency); err != nil {
		return nil, err
	}
	if i.Issuer != "" && !address.IsValid(i.Issuer) {
		return nil, fmt.Errorf("%w: issuer %q", ErrInvalidAddress, i.Issuer)
	}
	res := map[string]interface{}{"currency": i.Currency}
	if i.Issuer != "" {
		res["issuer"] = i.Issuer
	}
	return res, nil
}

// validateCurrency accepts a 3-character alphanumeric code or a 40-digit hex
// code.
func validateCurrency(c string) error {
	switch len(c) {
	case 3:
		for _, r := range c {
			if !(r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
				return fmt.Errorf("%w: %q", ErrInvalidCurrency, c)
			}
		}
		return nil
	case 40:
		if _, err := hex.DecodeString(c); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidCurrency, c, err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidCurrency, c)
	}
}

// isDecimal reports whether s is a decimal number, optionally signed, with
// an optional fractional part and exponent. Precision is unrestricted.
func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	mant, exp, hasExp := strings.Cut(s, "e")
	if !hasExp {
		mant, exp, hasExp = strings.Cut(s, "E")
	}
	intPart, frac, hasFrac := strings.Cut(mant, ".")
	if !allDigits(intPart) || intPart == "" && (!hasFrac || frac == "") {
		return false
	}
	if hasFrac && !allDigits(frac) || hasFrac && intPart == "" && frac == "" {
		return false
	}
	if hasExp {
		if exp != "" && (exp[0] == '+' || exp[0] == '-') {
			exp = exp[1:]
		}
		if exp == "" || !allDigits(exp) {
			return false
		}
	}
	return true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// valueShape names the shape of a value for error messages.
func valueShape(v Value) string {
	switch v.(type) {
	case IntValue:
		return "integer"
	case BlobValue:
		return "blob"
	case AddressValue:
		return "address"
	case AmountValue:
		return "amount"
	case NumberValue:
		return "number"
	case CurrencyValue:
		return "currency"
	case IssueValue:
		return "issue"
	default:
		return fmt.Sprintf("%T", v)
	}
}
