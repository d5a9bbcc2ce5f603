// Package commands implements the fuzion CLI: read-only inspection of the
// Fuzion chain configs, trusted assets, wallet balances and OTC escrows.
package commands
