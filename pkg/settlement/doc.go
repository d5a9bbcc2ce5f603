// Package settlement checks that a completed OTC escrow moved the expected
// funds: escrow fields, depositor and receiver balances, and the share each
// fee collector received.
package settlement
