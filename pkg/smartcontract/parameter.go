package smartcontract

import "fmt"

// Parameter represents one call-time argument of a contract function, a
// typed value with optional flags and name.
type Parameter struct {
	// Type of the parameter.
	Type ParamType
	// The actual value of the parameter.
	Value Value
	// Flags of the parameter.
	Flags ParamFlag
	// Name is an optional human-readable slot identifier.
	Name ParamName
}

// FunctionParameter represents one positional slot of a function signature.
// It has no value, values are supplied at call time.
type FunctionParameter struct {
	// Type of the parameter.
	Type ParamType
	// Flags of the parameter.
	Flags ParamFlag
	// Name is an optional human-readable slot identifier.
	Name ParamName
}

// parameterFields is the wire form of a call parameter.
type parameterFields struct {
	ParameterType  ParamType   `json:"ParameterType"`
	ParameterFlags ParamFlag   `json:"ParameterFlags,omitempty"`
	ParameterName  string      `json:"ParameterName,omitempty"`
	ParameterValue interface{} `json:"ParameterValue"`
}

// functionParameterFields is the wire form of a function signature slot.
type functionParameterFields struct {
	ParameterType  ParamType `json:"ParameterType"`
	ParameterFlags ParamFlag `json:"ParameterFlags,omitempty"`
	ParameterName  string    `json:"ParameterName,omitempty"`
}

// ParameterEnvelope wraps a serialized call parameter into the named object
// the transaction schema expects.
type ParameterEnvelope struct {
	Parameter parameterFields `json:"Parameter"`
}

// FunctionParameterEnvelope wraps a serialized signature slot into the named
// object the transaction schema expects.
type FunctionParameterEnvelope struct {
	FunctionParameter functionParameterFields `json:"FunctionParameter"`
}

// Serialize type-checks the parameter and returns its wire envelope. Checks
// run in type, flag, value, name order and stop at the first failure.
func (p Parameter) Serialize() (ParameterEnvelope, error) {
	var res ParameterEnvelope

	if !validParamTypes[p.Type] {
		return res, fmt.Errorf("%w: %d", ErrUnknownType, p.Type)
	}
	if err := p.Flags.Validate(p.Type); err != nil {
		return res, err
	}
	val, err := EncodeValue(p.Type, p.Value)
	if err != nil {
		return res, err
	}
	res.Parameter = parameterFields{
		ParameterType:  p.Type,
		ParameterFlags: p.Flags,
		ParameterValue: val,
	}
	if !p.Name.IsEmpty() {
		res.Parameter.ParameterName, err = p.Name.Encode()
		if err != nil {
			return ParameterEnvelope{}, err
		}
	}
	return res, nil
}

// Serialize type-checks the declaration and returns its wire envelope. It's
// the same as Parameter.Serialize except that there is no value to encode.
func (p FunctionParameter) Serialize() (FunctionParameterEnvelope, error) {
	var res FunctionParameterEnvelope

	if !validParamTypes[p.Type] {
		return res, fmt.Errorf("%w: %d", ErrUnknownType, p.Type)
	}
	if err := p.Flags.Validate(p.Type); err != nil {
		return res, err
	}
	res.FunctionParameter = functionParameterFields{
		ParameterType:  p.Type,
		ParameterFlags: p.Flags,
	}
	if !p.Name.IsEmpty() {
		var err error
		res.FunctionParameter.ParameterName, err = p.Name.Encode()
		if err != nil {
			return FunctionParameterEnvelope{}, err
		}
	}
	return res, nil
}

// SerializeParameters serializes a list of call parameters preserving their
// order. The order is the positional contract for argument matching on the
// ledger. At most one parameter of the list may carry SendAmount.
func SerializeParameters(params []Parameter) ([]ParameterEnvelope, error) {
	res := make([]ParameterEnvelope, 0, len(params))
	sendAmountSeen := false
	for i, p := range params {
		if p.Flags.Has(SendAmount) {
			if sendAmountSeen {
				return nil, fmt.Errorf("parameter #%d: %w: multiple SendAmount parameters", i, ErrFlagTypeMismatch)
			}
			sendAmountSeen = true
		}
		env, err := p.Serialize()
		if err != nil {
			return nil, fmt.Errorf("parameter #%d: %w", i, err)
		}
		res = append(res, env)
	}
	return res, nil
}
