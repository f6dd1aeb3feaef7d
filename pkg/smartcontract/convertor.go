package smartcontract

import (
	"fmt"
	"strings"
)

// NewValueFromString is a user-friendly string to Value converter for the
// given parameter type, it's intended to be used in user-facing interfaces:
//
//	UInt8..UInt256  decimal integer
//	VL              hex string
//	Account         classic address
//	Amount          drops as decimal or "value/CUR/issuer"
//	Number          decimal string
//	Currency        3-letter or 40-hex code
//	Issue           "CUR" or "CUR/issuer"
//
// Full validation still happens at encoding time.
func NewValueFromString(typ ParamType, s string) (Value, error) {
	if _, ok := typ.FixedWidth(); ok {
		return IntValueFromString(s)
	}
	switch typ {
	case VLType:
		return BlobValueFromHex(s)
	case AccountType:
		return AddressValue(s), nil
	case AmountType:
		if !strings.Contains(s, "/") {
			return DropsAmount(s), nil
		}
		parts := strings.SplitN(s, "/", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: %q, expected value/CUR/issuer", ErrInvalidAmount, s)
		}
		return IssuedAmountValue(parts[1], parts[2], parts[0]), nil
	case NumberType:
		return NumberValue(s), nil
	case CurrencyType:
		return CurrencyValue(s), nil
	case IssueType:
		cur, issuer, _ := strings.Cut(s, "/")
		return IssueValue{Currency: cur, Issuer: issuer}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, typ)
	}
}

// NewParameterFromString returns a new Parameter initialized from the given
// "type:value" string, e.g. "uint32:42" or "account:rHb9...". It's intended
// to be used in user-facing interfaces (the CLI in particular).
func NewParameterFromString(in string) (*Parameter, error) {
	typStr, valStr, found := strings.Cut(in, ":")
	if !found {
		return nil, fmt.Errorf("bad parameter format %q, expected type:value", in)
	}
	typ, err := ParseParamType(typStr)
	if err != nil {
		return nil, err
	}
	val, err := NewValueFromString(typ, valStr)
	if err != nil {
		return nil, err
	}
	return &Parameter{Type: typ, Value: val}, nil
}
