package smartcontract

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParamType represents the type of a smart contract parameter.
type ParamType int

// A list of supported smart contract parameter types.
const (
	UnknownType  ParamType = -1
	UInt8Type    ParamType = 0x01
	UInt16Type   ParamType = 0x02
	UInt32Type   ParamType = 0x03
	UInt64Type   ParamType = 0x04
	UInt128Type  ParamType = 0x05
	UInt160Type  ParamType = 0x06
	UInt192Type  ParamType = 0x07
	UInt256Type  ParamType = 0x08
	VLType       ParamType = 0x10
	AccountType  ParamType = 0x11
	AmountType   ParamType = 0x12
	NumberType   ParamType = 0x13
	CurrencyType ParamType = 0x14
	IssueType    ParamType = 0x15
)

// fixedWidths maps fixed-width integer types to their wire byte width.
var fixedWidths = map[ParamType]int{
	UInt8Type:   1,
	UInt16Type:  2,
	UInt32Type:  4,
	UInt64Type:  8,
	UInt128Type: 16,
	UInt160Type: 20,
	UInt192Type: 24,
	UInt256Type: 32,
}

// validParamTypes contains a map of known ParamTypes.
var validParamTypes = map[ParamType]bool{
	UInt8Type:    true,
	UInt16Type:   true,
	UInt32Type:   true,
	UInt64Type:   true,
	UInt128Type:  true,
	UInt160Type:  true,
	UInt192Type:  true,
	UInt256Type:  true,
	VLType:       true,
	AccountType:  true,
	AmountType:   true,
	NumberType:   true,
	CurrencyType: true,
	IssueType:    true,
}

// String implements the stringer interface.
func (pt ParamType) String() string {
	switch pt {
	case UInt8Type:
		return "UInt8"
	case UInt16Type:
		return "UInt16"
	case UInt32Type:
		return "UInt32"
	case UInt64Type:
		return "UInt64"
	case UInt128Type:
		return "UInt128"
	case UInt160Type:
		return "UInt160"
	case UInt192Type:
		return "UInt192"
	case UInt256Type:
		return "UInt256"
	case VLType:
		return "VL"
	case AccountType:
		return "Account"
	case AmountType:
		return "Amount"
	case NumberType:
		return "Number"
	case CurrencyType:
		return "Currency"
	case IssueType:
		return "Issue"
	default:
		return ""
	}
}

// FixedWidth returns the wire byte width for fixed-width integer types and
// true, or zero and false for variable-length types.
func (pt ParamType) FixedWidth() (int, bool) {
	w, ok := fixedWidths[pt]
	return w, ok
}

// MarshalJSON implements the json.Marshaler interface.
func (pt ParamType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + pt.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (pt *ParamType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	p, err := ParseParamType(s)
	if err != nil {
		return err
	}

	*pt = p
	return nil
}

// MarshalYAML implements the YAML Marshaler interface.
func (pt ParamType) MarshalYAML() (interface{}, error) {
	return pt.String(), nil
}

// UnmarshalYAML implements the YAML Unmarshaler interface.
func (pt *ParamType) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string

	err := unmarshal(&name)
	if err != nil {
		return err
	}
	*pt, err = ParseParamType(name)
	return err
}

// ParseParamType is a user-friendly string to ParamType converter, it's
// case-insensitive and makes the following conversions:
//
//	uint8..uint256 -> the corresponding fixed-width type
//	vl, blob -> VLType
//	account, address -> AccountType
//	amount -> AmountType
//	number -> NumberType
//	currency -> CurrencyType
//	issue -> IssueType
//
// anything else generates an error.
func ParseParamType(typ string) (ParamType, error) {
	switch strings.ToLower(typ) {
	case "uint8":
		return UInt8Type, nil
	case "uint16":
		return UInt16Type, nil
	case "uint32":
		return UInt32Type, nil
	case "uint64":
		return UInt64Type, nil
	case "uint128":
		return UInt128Type, nil
	case "uint160":
		return UInt160Type, nil
	case "uint192":
		return UInt192Type, nil
	case "uint256":
		return UInt256Type, nil
	case "vl", "blob":
		return VLType, nil
	case "account", "address":
		return AccountType, nil
	case "amount":
		return AmountType, nil
	case "number":
		return NumberType, nil
	case "currency":
		return CurrencyType, nil
	case "issue":
		return IssueType, nil
	default:
		return UnknownType, fmt.Errorf("%w: %s", ErrUnknownType, typ)
	}
}

// ConvertToParamType converts the provided value to the parameter type if
// it's a valid type.
func ConvertToParamType(val int) (ParamType, error) {
	if validParamTypes[ParamType(val)] {
		return ParamType(val), nil
	}
	return UnknownType, fmt.Errorf("%w: %d", ErrUnknownType, val)
}
