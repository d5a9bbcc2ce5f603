// Package otc wraps the Fuzion OTC escrow contract.
//
// A creator opens an escrow by depositing the tokens on offer together with
// an asking price. A recipient fills it with ExecuteReceiverDeposit; when an
// arbiter is set the escrow then waits for ExecuteApprove, otherwise it
// completes on deposit. Config updates are two-step: one admin proposes with
// ExecuteConfigUpdate and a second admin confirms with
// ExecuteConfirmPendingConfig.
//
// QueryMarketEscrow returns the escrow enriched with token symbols and symbol
// amounts, using the trusted asset list of the utilities contract. The list
// queries return the raw contract data; use EnrichEscrows when the enriched
// form is wanted.
package otc
