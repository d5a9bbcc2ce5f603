package token

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/atlo-labs/fuzion-sdk-go/pkg/lcd"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/paging"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/shared"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/utilities"
)

const trustedAssetsFirstPageLimit = 50

// Source is the part of the utilities contract the token helpers read.
// *utilities.Client satisfies it.
type Source interface {
	QueryCuratedAssetList(ctx context.Context, startAfter json.RawMessage, limit uint32) (paging.Result[[]utilities.TokenDistribution], error)
	QueryAssetListByTotalSupply(ctx context.Context, startAfter json.RawMessage, limit uint32) (paging.Result[[]utilities.TokenDistribution], error)
}

// BalanceSource lists the bank balances of an address. *lcd.Client
// satisfies it.
type BalanceSource interface {
	GetBalances(ctx context.Context, address string) ([]lcd.Coin, error)
}

// AssetCache keeps the trusted asset list between calls. Load returns an
// empty slice when nothing is cached.
type AssetCache interface {
	Load(ctx context.Context) ([]Properties, error)
	Store(ctx context.Context, assets []Properties) error
}

// TokenDistributions walks list_asset_by_total_supply to the end and
// flattens the result. It always queries the chain.
func TokenDistributions(ctx context.Context, source Source) ([]Properties, error) {
	if source == nil {
		return nil, fmt.Errorf("utilities source is required")
	}

	first, err := source.QueryAssetListByTotalSupply(ctx, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to query asset list by total supply: %w", err)
	}
	distributions, pages, err := paging.Collect(ctx, first, func(ctx context.Context, startAfter json.RawMessage) (paging.Result[[]utilities.TokenDistribution], error) {
		return source.QueryAssetListByTotalSupply(ctx, startAfter, 0)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to page asset list by total supply: %w", err)
	}

	logger := shared.Logger()
	logger.Debug().
		Int("items", len(distributions)).
		Int("pages", pages).
		Msg("paged list_asset_by_total_supply")
	return Flatten(distributions), nil
}

// TrustedAssets returns the curated asset list, flattened and sorted by
// symbol. A non-empty list in cache is returned without querying; a fresh
// list is written back to cache. cache may be nil.
func TrustedAssets(ctx context.Context, source Source, cache AssetCache) ([]Properties, error) {
	logger := shared.Logger()
	if cache != nil {
		cached, err := cache.Load(ctx)
		switch {
		case err != nil:
			logger.Warn().Err(err).Msg("failed to read trusted asset cache")
		case len(cached) > 0:
			logger.Debug().Int("items", len(cached)).Msg("returning cached trusted assets")
			return cached, nil
		}
	}
	if source == nil {
		return nil, fmt.Errorf("utilities source is required")
	}

	logger.Debug().Msg("trusted asset cache is empty, fetching from the chain")
	first, err := source.QueryCuratedAssetList(ctx, nil, trustedAssetsFirstPageLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to query curated asset list: %w", err)
	}
	distributions, pages, err := paging.Collect(ctx, first, func(ctx context.Context, startAfter json.RawMessage) (paging.Result[[]utilities.TokenDistribution], error) {
		return source.QueryCuratedAssetList(ctx, startAfter, 0)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to page curated asset list: %w", err)
	}
	logger.Debug().
		Int("items", len(distributions)).
		Int("pages", pages).
		Msg("paged list_asset_by_curated_denom")

	assets := Flatten(distributions)
	SortBySymbol(assets)

	if cache != nil {
		if err := cache.Store(ctx, assets); err != nil {
			logger.Warn().Err(err).Msg("failed to write trusted asset cache")
		}
	}
	return assets, nil
}

// WalletBalances fetches the bank balances of address and enriches them
// against the trusted assets. Balances of unknown tokens are dropped; the
// rest are sorted by symbol.
func WalletBalances(ctx context.Context, balances BalanceSource, source Source, cache AssetCache, address string) ([]Balance, error) {
	if balances == nil {
		return nil, fmt.Errorf("balance source is required")
	}

	coins, err := balances.GetBalances(ctx, address)
	if err != nil {
		return nil, err
	}
	logger := shared.Logger()
	logger.Debug().Str("address", address).Int("balances", len(coins)).Msg("balances retrieved")

	assets, err := TrustedAssets(ctx, source, cache)
	if err != nil {
		return nil, err
	}

	enriched := make([]Balance, 0, len(coins))
	for _, coin := range coins {
		amount, err := ParseAmount(coin.Amount)
		if err != nil {
			return nil, fmt.Errorf("invalid balance for %s: %w", coin.Denom, err)
		}
		balance, err := EnrichWalletBalance(amount, coin.Denom, assets)
		if err != nil {
			return nil, err
		}
		if balance.Exponent == nil {
			logger.Debug().Str("denom", coin.Denom).Msg("no trusted asset for denom, dropping balance")
			continue
		}
		enriched = append(enriched, balance)
	}

	sortBalancesBySymbol(enriched)
	return enriched, nil
}
