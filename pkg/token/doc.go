// Package token turns the utilities contract's asset lists into flat token
// properties and uses them to enrich raw {amount, denom} balances with
// symbols, logos and symbol amounts.
package token
