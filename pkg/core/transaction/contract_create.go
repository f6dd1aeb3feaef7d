package transaction

import (
	"errors"
	"fmt"

	"github.com/xrpl-wasm/xrpl-go/pkg/encoding/address"
	"github.com/xrpl-wasm/xrpl-go/pkg/smartcontract"
)

// CodeRef identifies the contract code carried by a ContractCreate: either
// the compiled module itself (hex) or the hash of an already stored one.
// Exactly one of the two must be set.
type CodeRef struct {
	Code string
	Hash string
}

// ContractCreate is a contract deployment transaction body.
type ContractCreate struct {
	TransactionType         string                                         `json:"TransactionType"`
	Account                 string                                         `json:"Account,omitempty"`
	Flags                   uint32                                         `json:"Flags,omitempty"`
	ContractCode            string                                         `json:"ContractCode,omitempty"`
	ContractCodeHash        string                                         `json:"ContractCodeHash,omitempty"`
	Functions               []smartcontract.FunctionEnvelope               `json:"Functions"`
	InstanceParameters      []smartcontract.InstanceParameterEnvelope      `json:"InstanceParameters,omitempty"`
	InstanceParameterValues []smartcontract.InstanceParameterValueEnvelope `json:"InstanceParameterValues,omitempty"`
}

// NewContractCreate assembles a deployment transaction body from the code
// reference, creation flags, function definitions and instance parameter
// declaration/value pairs. It fails fast with the first violated invariant
// and returns no partial body on failure.
func NewContractCreate(code CodeRef, flags uint32, fns []smartcontract.Function,
	params []smartcontract.InstanceParameter, values []smartcontract.InstanceParameterValue) (*ContractCreate, error) {
	if (code.Code == "") == (code.Hash == "") {
		return nil, errors.New("exactly one of contract code and code hash must be given")
	}
	table, err := smartcontract.BuildFunctionTable(fns)
	if err != nil {
		return nil, fmt.Errorf("function table: %w", err)
	}
	declared, assigned, err := smartcontract.PairInstanceParams(params, values)
	if err != nil {
		return nil, fmt.Errorf("instance parameters: %w", err)
	}
	return &ContractCreate{
		TransactionType:         ContractCreateType,
		Flags:                   flags,
		ContractCode:            code.Code,
		ContractCodeHash:        code.Hash,
		Functions:               table,
		InstanceParameters:      declared,
		InstanceParameterValues: assigned,
	}, nil
}

// WithAccount returns a copy of the body with the deployer account set. The
// account is supplied by the signing context at submission time.
func (t *ContractCreate) WithAccount(account string) (*ContractCreate, error) {
	if !address.IsValid(account) {
		return nil, fmt.Errorf("%w: %q", smartcontract.ErrInvalidAddress, account)
	}
	cp := *t
	cp.Account = account
	return &cp, nil
}
