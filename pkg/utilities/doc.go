// Package utilities wraps the Fuzion utilities contract, which serves a
// curated copy of the Cosmos chain registry (chains, assets, IBC paths) and
// the Fuzion chain configs that say where every other Fuzion contract lives.
//
// List queries return paging.Result values; pass Pagination.NextKey back as
// startAfter to fetch the next page.
//
// Chain configs can also be kept in a local YAML or JSON file and read with
// LoadChainConfigFile.
package utilities
