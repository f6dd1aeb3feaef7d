package transaction

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xrpl-wasm/xrpl-go/pkg/smartcontract"
)

func TestNewContractCreate(t *testing.T) {
	fns := []smartcontract.Function{{
		Name: smartcontract.NewName("vote"),
		Parameters: []smartcontract.FunctionParameter{{
			Type: smartcontract.UInt32Type,
			Name: smartcontract.NewName("candidate"),
		}},
	}}
	params := []smartcontract.InstanceParameter{{
		Type: smartcontract.UInt32Type,
		Name: smartcontract.NewName("limit"),
	}}
	values := []smartcontract.InstanceParameterValue{{
		Type:  smartcontract.UInt32Type,
		Value: smartcontract.NewIntValue(10),
	}}

	tx, err := NewContractCreate(CodeRef{Code: "0061736D01000000"}, Immutable, fns, params, values)
	require.NoError(t, err)

	data, err := json.Marshal(tx)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"TransactionType": "ContractCreate",
		"Flags": 65536,
		"ContractCode": "0061736D01000000",
		"Functions": [
			{"Function": {
				"FunctionName": "766F7465",
				"Parameters": [
					{"FunctionParameter": {"ParameterType": "UInt32", "ParameterName": "63616E646964617465"}}
				]
			}}
		],
		"InstanceParameters": [
			{"InstanceParameter": {"ParameterType": "UInt32", "ParameterName": "6C696D6974"}}
		],
		"InstanceParameterValues": [
			{"InstanceParameterValue": {"ParameterType": "UInt32", "ParameterValue": "0000000A"}}
		]
	}`, string(data))
}

func TestNewContractCreateByHash(t *testing.T) {
	hash := "4A5B0321DA98D1BAB18587334B3BCDF0EB26730BDB4FB5BAAE849B4D2BBBCE39"
	tx, err := NewContractCreate(CodeRef{Hash: hash}, 0, nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, hash, tx.ContractCodeHash)
	require.Empty(t, tx.ContractCode)

	data, err := json.Marshal(tx)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"TransactionType": "ContractCreate",
		"ContractCodeHash": "`+hash+`",
		"Functions": []
	}`, string(data))
}

func TestNewContractCreateCodeRef(t *testing.T) {
	_, err := NewContractCreate(CodeRef{}, 0, nil, nil, nil)
	require.Error(t, err)

	_, err = NewContractCreate(CodeRef{Code: "00", Hash: "AA"}, 0, nil, nil, nil)
	require.Error(t, err)
}

func TestNewContractCreateBadFunctions(t *testing.T) {
	fns := []smartcontract.Function{
		{Name: smartcontract.NewName("transfer")},
		{Name: smartcontract.NewHexName("7472616E73666572")},
	}
	_, err := NewContractCreate(CodeRef{Code: "00"}, 0, fns, nil, nil)
	require.ErrorIs(t, err, smartcontract.ErrDuplicateFunctionName)
}

func TestNewContractCreateBadInstanceParams(t *testing.T) {
	params := []smartcontract.InstanceParameter{{
		Type: smartcontract.UInt32Type,
		Name: smartcontract.NewName("limit"),
	}}
	_, err := NewContractCreate(CodeRef{Code: "00"}, 0, nil, params, nil)
	require.ErrorIs(t, err, smartcontract.ErrArityMismatch)

	values := []smartcontract.InstanceParameterValue{{
		Type:  smartcontract.UInt64Type,
		Value: smartcontract.NewIntValue(10),
	}}
	_, err = NewContractCreate(CodeRef{Code: "00"}, 0, nil, params, values)
	require.ErrorIs(t, err, smartcontract.ErrTypeMismatch)
}

func TestContractCreateWithAccount(t *testing.T) {
	tx, err := NewContractCreate(CodeRef{Code: "00"}, 0, nil, nil, nil)
	require.NoError(t, err)

	signed, err := tx.WithAccount("rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh")
	require.NoError(t, err)
	require.Equal(t, "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", signed.Account)
	require.Empty(t, tx.Account)

	_, err = tx.WithAccount("not an address")
	require.ErrorIs(t, err, smartcontract.ErrInvalidAddress)
}
