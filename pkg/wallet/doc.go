// Package wallet implements the offline signer used to authorise Fuzion
// transactions: BIP-39 mnemonics, BIP-44 secp256k1 key derivation, bech32
// addresses, and SIGN_MODE_DIRECT signatures.
package wallet
