// Package langchaingo provides Fuzion tools for the tmc/langchaingo AI agent
// framework.
//
// # Available Tools
//
//   - EscrowLookupTool: Looks up an OTC escrow by id and returns it as JSON
//     with enriched token balances.
//   - PairsCountTool: Lists the denom pairs that have open escrows.
//
// # Usage
//
//	client, _ := fuzion.FromEnv(ctx)
//	otcClient, _ := client.OTC()
//	agent := agents.NewOneShotAgent(llm, []tools.Tool{
//		langchaingo.NewEscrowLookupTool(otcClient),
//		langchaingo.NewPairsCountTool(otcClient),
//	})
//
// Langchaingo: https://github.com/tmc/langchaingo
package langchaingo
