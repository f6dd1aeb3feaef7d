package rpcclient

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/xrpl-wasm/xrpl-go/pkg/core/transaction"
)

// SigningContext is the abstract wallet collaborator: it owns the signing
// account and turns an assembled transaction body into a signed blob ready
// for submission. Key management is out of this SDK's scope.
type SigningContext interface {
	// Account returns the classic address of the signing account.
	Account() string
	// Sign signs the JSON transaction body and returns the signed
	// transaction blob in hex.
	Sign(txJSON []byte) (string, error)
}

// SubmitResult is the node's provisional response to a submitted
// transaction.
type SubmitResult struct {
	EngineResult        string          `json:"engine_result"`
	EngineResultCode    int             `json:"engine_result_code"`
	EngineResultMessage string          `json:"engine_result_message,omitempty"`
	Accepted            bool            `json:"accepted"`
	TxBlob              string          `json:"tx_blob,omitempty"`
	TxJSON              json.RawMessage `json:"tx_json,omitempty"`
}

// submitParams is the parameter object of the submit command.
type submitParams struct {
	TxBlob string `json:"tx_blob"`
}

// ledgerEntryParams is the parameter object of the ledger_entry command,
// only the contract lookup is used here.
type ledgerEntryParams struct {
	Contract    string `json:"contract"`
	LedgerIndex string `json:"ledger_index"`
}

// ledgerEntryResponse is the part of the ledger_entry result this client
// cares about.
type ledgerEntryResponse struct {
	Index string          `json:"index"`
	Node  json.RawMessage `json:"node"`
}

// SubmitContractCreate signs and submits a deployment transaction body. The
// deployer account is taken from the signing context.
func (c *Client) SubmitContractCreate(tx *transaction.ContractCreate, sctx SigningContext) (*SubmitResult, error) {
	t, err := tx.WithAccount(sctx.Account())
	if err != nil {
		return nil, err
	}
	return c.submit(t, sctx)
}

// SubmitContractCall signs and submits an invocation transaction body. The
// caller account is taken from the signing context.
func (c *Client) SubmitContractCall(tx *transaction.ContractCall, sctx SigningContext) (*SubmitResult, error) {
	t, err := tx.WithAccount(sctx.Account())
	if err != nil {
		return nil, err
	}
	return c.submit(t, sctx)
}

func (c *Client) submit(tx interface{}, sctx SigningContext) (*SubmitResult, error) {
	raw, err := json.Marshal(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction: %w", err)
	}
	blob, err := sctx.Sign(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}
	resp := new(SubmitResult)
	if err := c.performRequest("submit", submitParams{TxBlob: blob}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ContractExists checks whether a contract entry exists at the given
// account in the last validated ledger. It can be used to avoid redundant
// deployments.
func (c *Client) ContractExists(account string) (bool, error) {
	var resp ledgerEntryResponse
	err := c.performRequest("ledger_entry", ledgerEntryParams{
		Contract:    account,
		LedgerIndex: "validated",
	}, &resp)
	if err != nil {
		var rpcErr *Error
		if errors.As(err, &rpcErr) && rpcErr.Code == "entryNotFound" {
			return false, nil
		}
		return false, err
	}
	return resp.Index != "", nil
}
