package smartcontract

import "fmt"

// InstanceParameter declares one immutable per-deployment configuration
// slot of a contract instance.
type InstanceParameter struct {
	Flags ParamFlag
	Type  ParamType
	Name  ParamName
}

// InstanceParameterValue assigns the value for one declared instance
// parameter. Declarations and values are matched positionally and must agree
// on type and flags.
type InstanceParameterValue struct {
	Flags ParamFlag
	Type  ParamType
	Value Value
}

// instanceParameterFields is the wire form of an instance parameter
// declaration.
type instanceParameterFields struct {
	ParameterFlags ParamFlag `json:"ParameterFlags,omitempty"`
	ParameterType  ParamType `json:"ParameterType"`
	ParameterName  string    `json:"ParameterName,omitempty"`
}

// instanceParameterValueFields is the wire form of an instance parameter
// value.
type instanceParameterValueFields struct {
	ParameterFlags ParamFlag   `json:"ParameterFlags,omitempty"`
	ParameterType  ParamType   `json:"ParameterType"`
	ParameterValue interface{} `json:"ParameterValue"`
}

// InstanceParameterEnvelope wraps a serialized instance parameter
// declaration into the named object the transaction schema expects.
type InstanceParameterEnvelope struct {
	InstanceParameter instanceParameterFields `json:"InstanceParameter"`
}

// InstanceParameterValueEnvelope wraps a serialized instance parameter value
// into the named object the transaction schema expects.
type InstanceParameterValueEnvelope struct {
	InstanceParameterValue instanceParameterValueFields `json:"InstanceParameterValue"`
}

// Serialize type-checks the declaration and returns its wire envelope.
func (p InstanceParameter) Serialize() (InstanceParameterEnvelope, error) {
	var res InstanceParameterEnvelope

	if !validParamTypes[p.Type] {
		return res, fmt.Errorf("%w: %d", ErrUnknownType, p.Type)
	}
	if err := p.Flags.Validate(p.Type); err != nil {
		return res, err
	}
	res.InstanceParameter = instanceParameterFields{
		ParameterFlags: p.Flags,
		ParameterType:  p.Type,
	}
	if !p.Name.IsEmpty() {
		var err error
		res.InstanceParameter.ParameterName, err = p.Name.Encode()
		if err != nil {
			return InstanceParameterEnvelope{}, err
		}
	}
	return res, nil
}

// Serialize type-checks the value and returns its wire envelope.
func (p InstanceParameterValue) Serialize() (InstanceParameterValueEnvelope, error) {
	var res InstanceParameterValueEnvelope

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
	res.InstanceParameterValue = instanceParameterValueFields{
		ParameterFlags: p.Flags,
		ParameterType:  p.Type,
		ParameterValue: val,
	}
	return res, nil
}

// PairInstanceParams matches instance parameter declarations with their
// values and serializes both lists for the creation transaction. Every
// declaration must have exactly one value at the same position with the
// same type and flags, and at most one pair of the list may carry
// SendAmount.
func PairInstanceParams(params []InstanceParameter, values []InstanceParameterValue) ([]InstanceParameterEnvelope, []InstanceParameterValueEnvelope, error) {
	if len(params) != len(values) {
		return nil, nil, fmt.Errorf("%w: %d declarations, %d values", ErrArityMismatch, len(params), len(values))
	}
	var (
		declared       = make([]InstanceParameterEnvelope, 0, len(params))
		assigned       = make([]InstanceParameterValueEnvelope, 0, len(values))
		sendAmountSeen = false
	)
	for i := range params {
		if params[i].Type != values[i].Type {
			return nil, nil, fmt.Errorf("instance parameter #%d/%q: %w: declared %s, value %s",
				i, params[i].Name.String(), ErrTypeMismatch, params[i].Type, values[i].Type)
		}
		if params[i].Flags != values[i].Flags {
			return nil, nil, fmt.Errorf("instance parameter #%d/%q: %w: flags %#x != %#x",
				i, params[i].Name.String(), ErrTypeMismatch, uint32(params[i].Flags), uint32(values[i].Flags))
		}
		if params[i].Flags.Has(SendAmount) {
			if sendAmountSeen {
				return nil, nil, fmt.Errorf("instance parameter #%d: %w: multiple SendAmount parameters", i, ErrFlagTypeMismatch)
			}
			sendAmountSeen = true
		}
		d, err := params[i].Serialize()
		if err != nil {
			return nil, nil, fmt.Errorf("instance parameter #%d/%q: %w", i, params[i].Name.String(), err)
		}
		v, err := values[i].Serialize()
		if err != nil {
			return nil, nil, fmt.Errorf("instance parameter #%d/%q: %w", i, params[i].Name.String(), err)
		}
		declared = append(declared, d)
		assigned = append(assigned, v)
	}
	return declared, assigned, nil
}
