package utilities

import (
	"encoding/json"
	"strings"
)

type listParams struct {
	StartAfter json.RawMessage `json:"start_after,omitempty"`
	Limit      uint32          `json:"limit,omitempty"`
}

type chainParams struct {
	ChainName string `json:"chain_name"`
}

type assetParams struct {
	Symbol    string `json:"symbol"`
	ChainName string `json:"chain_name"`
}

type baseListParams struct {
	Base       string          `json:"base"`
	StartAfter json.RawMessage `json:"start_after,omitempty"`
	Limit      uint32          `json:"limit,omitempty"`
}

type displayListParams struct {
	Display    string          `json:"display"`
	StartAfter json.RawMessage `json:"start_after,omitempty"`
	Limit      uint32          `json:"limit,omitempty"`
}

type symbolListParams struct {
	Symbol     string          `json:"symbol"`
	StartAfter json.RawMessage `json:"start_after,omitempty"`
	Limit      uint32          `json:"limit,omitempty"`
}

type hashListParams struct {
	Hash       string          `json:"hash"`
	StartAfter json.RawMessage `json:"start_after,omitempty"`
	Limit      uint32          `json:"limit,omitempty"`
}

type pathAndBaseListParams struct {
	Path       string          `json:"path"`
	BaseDenom  string          `json:"base_denom"`
	StartAfter json.RawMessage `json:"start_after,omitempty"`
	Limit      uint32          `json:"limit,omitempty"`
}

type ibcPathParams struct {
	Chain1 string `json:"chain_1"`
	Chain2 string `json:"chain_2"`
}

type chainConfigParams struct {
	ChainName   string `json:"chain_name"`
	NetworkType string `json:"network_type"`
}

func AdminQuery() map[string]any {
	return map[string]any{"admin": struct{}{}}
}

func ChainQuery(chainName string) map[string]any {
	return map[string]any{"chain": chainParams{ChainName: chainName}}
}

func ChainListQuery(startAfter json.RawMessage, limit uint32) map[string]any {
	return map[string]any{"list_chains": listParams{StartAfter: startAfter, Limit: limit}}
}

// AssetQuery builds the asset query. The symbol is upper-cased.
func AssetQuery(symbol string, chainName string) map[string]any {
	return map[string]any{"asset": assetParams{Symbol: strings.ToUpper(symbol), ChainName: chainName}}
}

func AssetListQuery(startAfter json.RawMessage, limit uint32) map[string]any {
	return map[string]any{"list_assets": listParams{StartAfter: startAfter, Limit: limit}}
}

func CuratedAssetListQuery(startAfter json.RawMessage, limit uint32) map[string]any {
	return map[string]any{"list_asset_by_curated_denom": listParams{StartAfter: startAfter, Limit: limit}}
}

func AssetListByBaseQuery(base string, startAfter json.RawMessage, limit uint32) map[string]any {
	return map[string]any{"list_asset_by_base": baseListParams{Base: base, StartAfter: startAfter, Limit: limit}}
}

func AssetListByDisplayQuery(display string, startAfter json.RawMessage, limit uint32) map[string]any {
	return map[string]any{"list_asset_by_display": displayListParams{Display: display, StartAfter: startAfter, Limit: limit}}
}

// AssetListBySymbolQuery builds the symbol list query. The symbol is
// upper-cased.
func AssetListBySymbolQuery(symbol string, startAfter json.RawMessage, limit uint32) map[string]any {
	return map[string]any{"list_asset_by_symbol": symbolListParams{
		Symbol:     strings.ToUpper(symbol),
		StartAfter: startAfter,
		Limit:      limit,
	}}
}

func AssetListByIBCHashQuery(hash string, startAfter json.RawMessage, limit uint32) map[string]any {
	return map[string]any{"list_asset_by_ibc_hash": hashListParams{Hash: hash, StartAfter: startAfter, Limit: limit}}
}

func AssetListByIBCPathAndBaseDenomQuery(path string, baseDenom string, startAfter json.RawMessage, limit uint32) map[string]any {
	return map[string]any{"list_asset_by_ibc_path_and_base_denom": pathAndBaseListParams{
		Path:       path,
		BaseDenom:  baseDenom,
		StartAfter: startAfter,
		Limit:      limit,
	}}
}

func AssetListByTotalSupplyQuery(startAfter json.RawMessage, limit uint32) map[string]any {
	return map[string]any{"list_asset_by_total_supply": listParams{StartAfter: startAfter, Limit: limit}}
}

func IBCPathQuery(chain1 string, chain2 string) map[string]any {
	return map[string]any{"ibc_path": ibcPathParams{Chain1: chain1, Chain2: chain2}}
}

func IBCPathListQuery(startAfter json.RawMessage, limit uint32) map[string]any {
	return map[string]any{"list_ibc_paths": listParams{StartAfter: startAfter, Limit: limit}}
}

func IBCPathDenomsQuery(startAfter json.RawMessage, limit uint32) map[string]any {
	return map[string]any{"list_ibc_path_denoms": listParams{StartAfter: startAfter, Limit: limit}}
}

func FuzionChainConfigQuery(chainName string, networkType string) map[string]any {
	return map[string]any{"fuzion_chain_config": chainConfigParams{ChainName: chainName, NetworkType: networkType}}
}

func FuzionChainConfigListQuery(startAfter json.RawMessage, limit uint32) map[string]any {
	return map[string]any{"list_fuzion_chain_config": listParams{StartAfter: startAfter, Limit: limit}}
}
