package transaction

import (
	"fmt"

	"github.com/xrpl-wasm/xrpl-go/pkg/encoding/address"
	"github.com/xrpl-wasm/xrpl-go/pkg/smartcontract"
)

// ContractCall is a contract invocation transaction body.
type ContractCall struct {
	TransactionType      string                            `json:"TransactionType"`
	Account              string                            `json:"Account,omitempty"`
	ContractAccount      string                            `json:"ContractAccount"`
	FunctionName         string                            `json:"FunctionName"`
	Parameters           []smartcontract.ParameterEnvelope `json:"Parameters,omitempty"`
	ComputationAllowance uint32                            `json:"ComputationAllowance"`
}

// NewContractCall assembles an invocation transaction body. Parameters are
// serialized in the caller-supplied order which must match the target
// function's declared order, this layer doesn't look up the live signature.
// The function name travels hex-encoded.
func NewContractCall(contractAccount string, functionName smartcontract.ParamName,
	params []smartcontract.Parameter, computationAllowance uint32) (*ContractCall, error) {
	if !address.IsValid(contractAccount) {
		return nil, fmt.Errorf("contract account: %w: %q", smartcontract.ErrInvalidAddress, contractAccount)
	}
	if functionName.IsEmpty() {
		return nil, fmt.Errorf("function name: %w: empty name", smartcontract.ErrInvalidHex)
	}
	name, err := functionName.Encode()
	if err != nil {
		return nil, fmt.Errorf("function name: %w", err)
	}
	serialized, err := smartcontract.SerializeParameters(params)
	if err != nil {
		return nil, err
	}
	return &ContractCall{
		TransactionType:      ContractCallType,
		ContractAccount:      contractAccount,
		FunctionName:         name,
		Parameters:           serialized,
		ComputationAllowance: computationAllowance,
	}, nil
}

// WithAccount returns a copy of the body with the caller account set. The
// account is supplied by the signing context at submission time.
func (t *ContractCall) WithAccount(account string) (*ContractCall, error) {
	if !address.IsValid(account) {
		return nil, fmt.Errorf("%w: %q", smartcontract.ErrInvalidAddress, account)
	}
	cp := *t
	cp.Account = account
	return &cp, nil
}
