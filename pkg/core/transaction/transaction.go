// Package transaction contains the outbound transaction bodies this SDK can
// assemble: ContractCreate for deploying a WASM contract and ContractCall
// for invoking one. Field names and envelope nesting are the
// wire-compatibility surface with the ledger node and must be preserved
// exactly.
package transaction

// Transaction type names as the ledger's transaction schema expects them.
const (
	ContractCreateType = "ContractCreate"
	ContractCallType   = "ContractCall"
)

// Contract creation transaction flags.
const (
	// Immutable pins the contract code for the instance's lifetime. The
	// assembler only encodes the flag, enforcement is the ledger's job.
	Immutable uint32 = 0x00010000
)
