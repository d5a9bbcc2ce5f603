// Package wasm is the generic CosmWasm transport shared by every Fuzion
// contract client.
//
// Queries are sent as ABCI queries on /cosmwasm.wasm.v1.Query/SmartContractState
// over CometBFT RPC. Executes, uploads and instantiates are assembled as
// SIGN_MODE_DIRECT transactions, signed by a Signer (see package wallet),
// broadcast with broadcast_tx_sync and then polled with exponential backoff
// until they are included in a block.
//
// Fees default to "auto": the transaction is simulated and the gas used is
// multiplied by 1.4, then priced at the client's gas price (0.025ukuji unless
// configured otherwise).
//
// Contract binds one address to a Caller and a Signer; the otc, utilities
// and reactor packages build on it.
package wasm
