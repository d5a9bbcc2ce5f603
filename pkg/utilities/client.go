package utilities

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/atlo-labs/fuzion-sdk-go/pkg/paging"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/shared"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/wasm"
)

// Client queries the Fuzion utilities contract.
type Client struct {
	*wasm.Contract
}

// NewClient creates a new Client. signer may be nil; the utilities contract
// is query-only from the SDK's side.
func NewClient(address string, caller wasm.Caller, signer wasm.Signer) (*Client, error) {
	contract, err := wasm.NewContract(address, shared.ContractUtilities, caller, signer)
	if err != nil {
		return nil, err
	}
	return &Client{Contract: contract}, nil
}

// QueryAdmin returns the contract admin address.
func (c *Client) QueryAdmin(ctx context.Context) (string, error) {
	var result struct {
		Admin string `json:"admin"`
	}
	if err := c.Query(ctx, AdminQuery(), &result); err != nil {
		return "", err
	}
	return result.Admin, nil
}

func (c *Client) QueryChain(ctx context.Context, chainName string) (Chain, error) {
	var result Chain
	err := c.Query(ctx, ChainQuery(chainName), &result)
	return result, err
}

func (c *Client) QueryChainList(ctx context.Context, startAfter json.RawMessage, limit uint32) (paging.Result[[]ChainOverview], error) {
	var result paging.Result[[]ChainOverview]
	err := c.Query(ctx, ChainListQuery(startAfter, limit), &result)
	return result, err
}

func (c *Client) QueryAsset(ctx context.Context, symbol string, chainName string) (AssetList, error) {
	var result AssetList
	err := c.Query(ctx, AssetQuery(symbol, chainName), &result)
	return result, err
}

func (c *Client) QueryAssetList(ctx context.Context, startAfter json.RawMessage, limit uint32) (paging.Result[[]KeyedChainAsset], error) {
	var result paging.Result[[]KeyedChainAsset]
	err := c.Query(ctx, AssetListQuery(startAfter, limit), &result)
	return result, err
}

// QueryCuratedAssetList lists the curated ("trusted") assets.
func (c *Client) QueryCuratedAssetList(ctx context.Context, startAfter json.RawMessage, limit uint32) (paging.Result[[]TokenDistribution], error) {
	var result paging.Result[[]TokenDistribution]
	err := c.Query(ctx, CuratedAssetListQuery(startAfter, limit), &result)
	return result, err
}

func (c *Client) QueryAssetListByBase(ctx context.Context, base string, startAfter json.RawMessage, limit uint32) (paging.Result[[]KeyedChainAsset], error) {
	var result paging.Result[[]KeyedChainAsset]
	err := c.Query(ctx, AssetListByBaseQuery(base, startAfter, limit), &result)
	return result, err
}

func (c *Client) QueryAssetListByDisplay(ctx context.Context, display string, startAfter json.RawMessage, limit uint32) (paging.Result[[]KeyedChainAsset], error) {
	var result paging.Result[[]KeyedChainAsset]
	err := c.Query(ctx, AssetListByDisplayQuery(display, startAfter, limit), &result)
	return result, err
}

func (c *Client) QueryAssetListBySymbol(ctx context.Context, symbol string, startAfter json.RawMessage, limit uint32) (paging.Result[[]KeyedChainAsset], error) {
	var result paging.Result[[]KeyedChainAsset]
	err := c.Query(ctx, AssetListBySymbolQuery(symbol, startAfter, limit), &result)
	return result, err
}

func (c *Client) QueryAssetListByIBCHash(ctx context.Context, hash string, startAfter json.RawMessage, limit uint32) (paging.Result[[]KeyedChainAsset], error) {
	var result paging.Result[[]KeyedChainAsset]
	err := c.Query(ctx, AssetListByIBCHashQuery(hash, startAfter, limit), &result)
	return result, err
}

func (c *Client) QueryAssetListByIBCPathAndBaseDenom(
	ctx context.Context,
	path string,
	baseDenom string,
	startAfter json.RawMessage,
	limit uint32,
) (paging.Result[[]KeyedChainAsset], error) {
	var result paging.Result[[]KeyedChainAsset]
	err := c.Query(ctx, AssetListByIBCPathAndBaseDenomQuery(path, baseDenom, startAfter, limit), &result)
	return result, err
}

// QueryAssetListByTotalSupply lists every denom with the chains it exists on.
func (c *Client) QueryAssetListByTotalSupply(ctx context.Context, startAfter json.RawMessage, limit uint32) (paging.Result[[]TokenDistribution], error) {
	var result paging.Result[[]TokenDistribution]
	err := c.Query(ctx, AssetListByTotalSupplyQuery(startAfter, limit), &result)
	return result, err
}

func (c *Client) QueryIBCPath(ctx context.Context, chain1 string, chain2 string) (IBCInfo, error) {
	var result IBCInfo
	err := c.Query(ctx, IBCPathQuery(chain1, chain2), &result)
	return result, err
}

func (c *Client) QueryIBCPathList(ctx context.Context, startAfter json.RawMessage, limit uint32) (paging.Result[[]IBCInfo], error) {
	var result paging.Result[[]IBCInfo]
	err := c.Query(ctx, IBCPathListQuery(startAfter, limit), &result)
	return result, err
}

func (c *Client) QueryIBCPathDenomsList(ctx context.Context, startAfter json.RawMessage, limit uint32) (paging.Result[[]IBCDenom], error) {
	var result paging.Result[[]IBCDenom]
	err := c.Query(ctx, IBCPathDenomsQuery(startAfter, limit), &result)
	return result, err
}

func (c *Client) QueryFuzionChainConfig(ctx context.Context, chainName string, networkType string) (ChainConfigResponse, error) {
	var result ChainConfigResponse
	err := c.Query(ctx, FuzionChainConfigQuery(chainName, networkType), &result)
	return result, err
}

func (c *Client) QueryFuzionChainConfigList(ctx context.Context, startAfter json.RawMessage, limit uint32) (paging.Result[[]ChainConfigResponse], error) {
	var result paging.Result[[]ChainConfigResponse]
	err := c.Query(ctx, FuzionChainConfigListQuery(startAfter, limit), &result)
	return result, err
}

// AllFuzionChainConfigs walks every page of list_fuzion_chain_config.
func (c *Client) AllFuzionChainConfigs(ctx context.Context) ([]ChainConfigResponse, error) {
	first, err := c.QueryFuzionChainConfigList(ctx, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list chain configs: %w", err)
	}
	configs, _, err := paging.Collect(ctx, first, func(ctx context.Context, startAfter json.RawMessage) (paging.Result[[]ChainConfigResponse], error) {
		return c.QueryFuzionChainConfigList(ctx, startAfter, 0)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list chain configs: %w", err)
	}
	return configs, nil
}
