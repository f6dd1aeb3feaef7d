package smartcontract

import "fmt"

// ParamFlag represents parameter flags, it's a bitmask.
type ParamFlag uint32

// Recognized parameter flags.
const (
	// NoFlags means no flags are set.
	NoFlags ParamFlag = 0
	// SendAmount marks the parameter's value as also constituting the
	// amount transferred by the enclosing transaction. It's only valid on
	// Amount-typed parameters and at most one parameter of a list may
	// carry it.
	SendAmount ParamFlag = 0x10000
)

// Has returns true iff all bits set in pf2 are also set in pf.
func (pf ParamFlag) Has(pf2 ParamFlag) bool {
	return pf&pf2 == pf2
}

// Validate checks the flags against the parameter type they're paired with.
func (pf ParamFlag) Validate(typ ParamType) error {
	if unknown := pf &^ SendAmount; unknown != 0 {
		return fmt.Errorf("%w: unrecognized flag bits %#x", ErrFlagTypeMismatch, uint32(unknown))
	}
	if pf.Has(SendAmount) && typ != AmountType {
		return fmt.Errorf("%w: SendAmount on %s parameter", ErrFlagTypeMismatch, typ)
	}
	return nil
}
