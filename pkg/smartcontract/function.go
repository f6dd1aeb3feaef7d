package smartcontract

import (
	"fmt"
	"strings"
)

// Ledger-enforced structural limits, checked here to fail fast.
const (
	// MaxFunctions is the maximum number of functions one contract can
	// declare.
	MaxFunctions = 12
	// MaxFunctionParameters is the maximum number of parameters one
	// function can declare.
	MaxFunctionParameters = 32
)

// Function is a named, ordered list of parameter declarations, one entry of
// the contract's function table. It's immutable once added to a deployment.
type Function struct {
	Name       ParamName
	Parameters []FunctionParameter
}

// functionFields is the wire form of a function table entry.
type functionFields struct {
	FunctionName string                      `json:"FunctionName"`
	Parameters   []FunctionParameterEnvelope `json:"Parameters,omitempty"`
}

// FunctionEnvelope wraps a serialized function into the named object the
// transaction schema expects.
type FunctionEnvelope struct {
	Function functionFields `json:"Function"`
}

// Serialize validates the function and returns its wire envelope. The
// declaration order of parameters is preserved, it's the on-chain
// call-signature order.
func (f Function) Serialize() (FunctionEnvelope, error) {
	var res FunctionEnvelope

	if f.Name.IsEmpty() {
		return res, fmt.Errorf("%w: empty function name", ErrInvalidHex)
	}
	name, err := f.Name.Encode()
	if err != nil {
		return res, fmt.Errorf("function name: %w", err)
	}
	if len(f.Parameters) > MaxFunctionParameters {
		return res, fmt.Errorf("%w: %d > %d", ErrTooManyParameters, len(f.Parameters), MaxFunctionParameters)
	}
	params := make([]FunctionParameterEnvelope, 0, len(f.Parameters))
	sendAmountSeen := false
	for i, p := range f.Parameters {
		if p.Flags.Has(SendAmount) {
			if sendAmountSeen {
				return res, fmt.Errorf("parameter #%d: %w: multiple SendAmount parameters", i, ErrFlagTypeMismatch)
			}
			sendAmountSeen = true
		}
		env, err := p.Serialize()
		if err != nil {
			return res, fmt.Errorf("parameter #%d/%q: %w", i, p.Name.String(), err)
		}
		params = append(params, env)
	}
	res.Function = functionFields{
		FunctionName: name,
		Parameters:   params,
	}
	return res, nil
}

// BuildFunctionTable serializes the given functions into the contract's
// function table preserving their order. It checks the table-wide limits:
// no more than MaxFunctions entries and no two functions sharing an encoded
// name.
func BuildFunctionTable(fns []Function) ([]FunctionEnvelope, error) {
	if len(fns) > MaxFunctions {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyFunctions, len(fns), MaxFunctions)
	}
	var (
		res  = make([]FunctionEnvelope, 0, len(fns))
		seen = make(map[string]bool, len(fns))
	)
	for i, f := range fns {
		env, err := f.Serialize()
		if err != nil {
			return nil, fmt.Errorf("function #%d/%q: %w", i, f.Name.String(), err)
		}
		// Hex digit case is preserved on the wire but carries no meaning,
		// so pre-encoded lowercase names collide with their uppercase form.
		folded := strings.ToUpper(env.Function.FunctionName)
		if seen[folded] {
			return nil, fmt.Errorf("function #%d/%q: %w", i, f.Name.String(), ErrDuplicateFunctionName)
		}
		seen[folded] = true
		res = append(res, env)
	}
	return res, nil
}
