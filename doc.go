// The Fuzion SDK for Go is a client for the Fuzion CosmWasm contracts on the
// Kujira chain: the OTC escrow market, the utilities registry that holds
// chain configs and asset lists, and the reactor swap contract.
//
// # Packages
//
//   - fuzion: the client facade. Loads a chain config and hands out
//     contract clients that share one signer and transport.
//   - otc: escrow creation, deposits, approvals, config changes and
//     escrow queries with token-enriched balances.
//   - utilities: chain, asset, IBC and chain-config queries.
//   - reactor: deposit, unbond, withdraw and claim executes.
//   - governance: gov v1 proposals for wasm instantiation and
//     instantiate permissions.
//   - token: trusted asset lists and wallet balance enrichment.
//   - settlement: balance and escrow checks for completed trades.
//   - wasm: CometBFT smart queries and signed contract transactions.
//   - wallet: BIP-39 mnemonic and secp256k1 signing.
//
// # Installation
//
//	go get github.com/atlo-labs/fuzion-sdk-go@latest
package fuzion_sdk_go
