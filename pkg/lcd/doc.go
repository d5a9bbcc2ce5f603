// Package lcd is a small REST client for the "LCD" (grpc-gateway) endpoint
// of a Cosmos node. The Fuzion SDK uses it to read bank balances and account
// info; contract calls go through CometBFT RPC in package wasm instead.
//
// Responses compressed with brotli or gzip are decoded transparently.
package lcd
