/*
Package rpcclient implements the ledger-facing collaborator of the SDK: it
submits assembled ContractCreate/ContractCall bodies and performs read-only
queries over the node's JSON-RPC interface. Transaction assembly itself lives
in pkg/core/transaction and pkg/smartcontract, this package never inspects
ledger state beyond what its queries return.

Signing is external: callers pass a SigningContext that owns the keys and
produces the signed blob, the client only wires it into the submission flow.

Client is safe to use from multiple goroutines simultaneously.
*/
package rpcclient
