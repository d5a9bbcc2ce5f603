// Package governance submits CosmWasm governance proposals: instantiating a
// contract as the gov module, and changing who may instantiate stored code.
// Proposals are gov v1 MsgSubmitProposal messages whose inner wasm messages
// are sent with the gov module account as authority.
package governance
