// Package fuzion is the entry point of the SDK. A Client holds a signer and
// a chain config and builds the contract clients on first use:
//
//	client, err := fuzion.FromMnemonic(mnemonic, fuzion.Options{})
//	if err != nil { ... }
//	if err := client.FetchConfig(ctx, shared.NetworkMainnet, ""); err != nil { ... }
//	otcClient, err := client.OTC()
//
// The chain config says where the contracts live. FetchConfig reads it from
// the utilities contract; LoadConfig and LoadConfigFile take it from the
// caller. A config can only be loaded once per Client.
package fuzion
