/*
Package smartcontract contains types used to build typed parameters for XRPL
WASM smart contracts. ContractCreate and ContractCall transactions carry
function tables, instance parameters and call arguments as JSONized parameter
envelopes, so this package provides types and methods to construct and
validate them before submission. All encoding here is a pure transform from
typed input to the wire structure, it never talks to the ledger.
*/
package smartcontract
