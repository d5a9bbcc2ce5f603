// Package shared holds the pieces every other package in the Fuzion SDK
// leans on: network names, default endpoints and contract addresses,
// environment loading (with .env support), URL joining, chain logos and the
// process-wide zerolog logger.
//
// Logging is off until EnableLogging(true) is called:
//
//	shared.EnableLogging(true)
//	shared.Logger().Debug().Msg("hello")
package shared
