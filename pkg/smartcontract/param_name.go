package smartcontract

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// ParamName is an optional human-readable identifier of a parameter slot or
// a function. It's stored either as raw text or as an already hex-encoded
// string and is always serialized as hex on the wire. The two states are kept
// distinct so that pre-encoded names are never hex-encoded twice.
type ParamName struct {
	value string
	isHex bool
}

// NewName returns a ParamName holding raw display text.
func NewName(text string) ParamName {
	return ParamName{value: text}
}

// NewHexName returns a ParamName holding an already hex-encoded string. The
// content is validated on encoding, not here.
func NewHexName(hexed string) ParamName {
	return ParamName{value: hexed, isHex: true}
}

// String implements the stringer interface, it returns the display form of
// the name (raw text decoded from hex when possible).
func (n ParamName) String() string {
	if !n.isHex {
		return n.value
	}
	b, err := hex.DecodeString(n.value)
	if err != nil {
		return n.value
	}
	return string(b)
}

// IsEmpty returns true when no name is stored at all.
func (n ParamName) IsEmpty() bool {
	return n.value == ""
}

// Encode returns the wire (hex) form of the name. Already hex-encoded names
// are returned unchanged after a well-formedness check, raw text is
// hex-encoded.
func (n ParamName) Encode() (string, error) {
	if n.isHex {
		if _, err := hex.DecodeString(n.value); err != nil {
			return "", fmt.Errorf("%w: name %q: %v", ErrInvalidHex, n.value, err)
		}
		return n.value, nil
	}
	return strings.ToUpper(hex.EncodeToString([]byte(n.value))), nil
}

// MarshalJSON implements the json.Marshaler interface.
func (n ParamName) MarshalJSON() ([]byte, error) {
	s, err := n.Encode()
	if err != nil {
		return nil, err
	}
	return json.Marshal(s)
}

// UnmarshalJSON implements the json.Unmarshaler interface. Wire names are
// always hex, so the result is in the hex-encoded state.
func (n *ParamName) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*n = NewHexName(s)
	return nil
}
