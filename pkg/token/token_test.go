package token

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	sdkmath "cosmossdk.io/math"

	"github.com/atlo-labs/fuzion-sdk-go/pkg/lcd"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/paging"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/shared"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/utilities"
)

type fakeSource struct {
	curated      []paging.Result[[]utilities.TokenDistribution]
	totalSupply  []paging.Result[[]utilities.TokenDistribution]
	curatedCalls []string
	err          error
}

func (f *fakeSource) QueryCuratedAssetList(_ context.Context, startAfter json.RawMessage, limit uint32) (paging.Result[[]utilities.TokenDistribution], error) {
	f.curatedCalls = append(f.curatedCalls, fmt.Sprintf("%s/%d", startAfter, limit))
	if f.err != nil {
		return paging.Result[[]utilities.TokenDistribution]{}, f.err
	}
	return f.curated[len(f.curatedCalls)-1], nil
}

func (f *fakeSource) QueryAssetListByTotalSupply(_ context.Context, startAfter json.RawMessage, _ uint32) (paging.Result[[]utilities.TokenDistribution], error) {
	if len(startAfter) == 0 {
		return f.totalSupply[0], nil
	}
	return f.totalSupply[1], nil
}

type fakeBalances struct {
	coins []lcd.Coin
}

func (f fakeBalances) GetBalances(context.Context, string) ([]lcd.Coin, error) {
	return f.coins, nil
}

type sliceCache struct {
	assets []Properties
	stores int
}

func (c *sliceCache) Load(context.Context) ([]Properties, error) {
	return c.assets, nil
}

func (c *sliceCache) Store(_ context.Context, assets []Properties) error {
	c.stores++
	c.assets = assets
	return nil
}

func distribution(denom string, chain string, symbol string, display string, exponent int) utilities.TokenDistribution {
	return utilities.TokenDistribution{
		Denom: denom,
		ChainAndAsset: []utilities.ChainAsset{{
			ChainName: chain,
			Asset: utilities.Asset{
				Base:     denom,
				Display:  display,
				Name:     symbol + " token",
				Symbol:   symbol,
				LogoURIs: shared.LogoURIs{PNG: symbol + ".png"},
				DenomUnits: []utilities.DenomUnit{
					{Denom: denom, Exponent: 0},
					{Denom: display, Exponent: exponent},
				},
			},
		}},
	}
}

func page(next string, items ...utilities.TokenDistribution) paging.Result[[]utilities.TokenDistribution] {
	result := paging.Result[[]utilities.TokenDistribution]{Data: items}
	if next != "" {
		result.Pagination.NextKey = paging.Key(next)
	}
	return result
}

func TestSymbolAmount(t *testing.T) {
	amount, err := SymbolAmount(sdkmath.NewInt(1500000), 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !amount.Equal(sdkmath.LegacyMustNewDecFromStr("1.5")) {
		t.Fatalf("expected 1.5, got %s", amount)
	}

	large, _ := sdkmath.NewIntFromString("123456789000000000000000000")
	amount, err = SymbolAmount(large, 18)
	if err != nil || !amount.Equal(sdkmath.LegacyMustNewDecFromStr("123456789")) {
		t.Fatalf("unexpected amount %s (%v)", amount, err)
	}

	for _, exponent := range []int{0, -6} {
		_, err := SymbolAmount(sdkmath.NewInt(1), exponent)
		var invalid *InvalidParameterError
		if !errors.As(err, &invalid) {
			t.Fatalf("expected InvalidParameterError for exponent %d, got %v", exponent, err)
		}
	}
}

func TestParseAmount(t *testing.T) {
	if value, err := ParseAmount(" 42 "); err != nil || !value.Equal(sdkmath.NewInt(42)) {
		t.Fatalf("unexpected value %s (%v)", value, err)
	}
	if _, err := ParseAmount("12abc"); err == nil {
		t.Fatal("expected error for invalid amount")
	}
}

func TestFlatten(t *testing.T) {
	flattened := Flatten([]utilities.TokenDistribution{
		distribution("ukuji", "kujira", "KUJI", "kuji", 6),
		{Denom: "ibc/ABC"},
		{
			Denom: "factory/x/uusk",
			ChainAndAsset: []utilities.ChainAsset{
				{ChainName: "kujira", Asset: utilities.Asset{Symbol: "USK", Display: "usk", DenomUnits: []utilities.DenomUnit{{Denom: "USK", Exponent: 6}}}},
				{ChainName: "osmosis", Asset: utilities.Asset{Symbol: "USK", Display: "usk"}},
			},
		},
	})

	if len(flattened) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(flattened))
	}
	if flattened[0].Symbol != "KUJI" || flattened[0].Exponent == nil || *flattened[0].Exponent != 6 || flattened[0].SymbolPNG != "KUJI.png" {
		t.Fatalf("unexpected first entry %+v", flattened[0])
	}
	if flattened[1].ChainName != UnavailableChain || flattened[1].TransactDenom != "ibc/ABC" || flattened[1].Exponent != nil {
		t.Fatalf("unexpected placeholder entry %+v", flattened[1])
	}
	if flattened[2].Exponent == nil || *flattened[2].Exponent != 6 {
		t.Fatalf("expected case-insensitive exponent match, got %+v", flattened[2])
	}
	if flattened[3].ChainName != "osmosis" || flattened[3].Exponent != nil {
		t.Fatalf("expected missing exponent to stay unset, got %+v", flattened[3])
	}
}

func TestTrustedAssetsPagesSortsAndCaches(t *testing.T) {
	source := &fakeSource{curated: []paging.Result[[]utilities.TokenDistribution]{
		page("ukuji", distribution("ukuji", "kujira", "kuji", "kuji", 6)),
		page("", distribution("uatom", "cosmoshub", "ATOM", "atom", 6), distribution("uusk", "kujira", "USK", "usk", 6)),
	}}
	cache := &sliceCache{}

	assets, err := TrustedAssets(context.Background(), source, cache)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(assets) != 3 || assets[0].Symbol != "ATOM" || assets[1].Symbol != "kuji" || assets[2].Symbol != "USK" {
		t.Fatalf("unexpected order %+v", assets)
	}
	if source.curatedCalls[0] != "/50" || source.curatedCalls[1] != `"ukuji"/0` {
		t.Fatalf("unexpected calls %v", source.curatedCalls)
	}
	if cache.stores != 1 {
		t.Fatalf("expected one cache store, got %d", cache.stores)
	}

	again, err := TrustedAssets(context.Background(), source, cache)
	if err != nil || len(again) != 3 {
		t.Fatalf("unexpected cached result %+v (%v)", again, err)
	}
	if len(source.curatedCalls) != 2 {
		t.Fatalf("expected cached call to skip the chain, got %d calls", len(source.curatedCalls))
	}
}

func TestTrustedAssetsPropagatesErrors(t *testing.T) {
	sentinel := errors.New("rpc down")
	if _, err := TrustedAssets(context.Background(), &fakeSource{err: sentinel}, nil); !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel, got %v", err)
	}
}

func TestTokenDistributionsWalksPages(t *testing.T) {
	source := &fakeSource{totalSupply: []paging.Result[[]utilities.TokenDistribution]{
		page("ukuji", distribution("ukuji", "kujira", "KUJI", "kuji", 6)),
		page("", utilities.TokenDistribution{Denom: "ibc/XYZ"}),
	}}
	tokens, err := TokenDistributions(context.Background(), source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 2 || tokens[1].ChainName != UnavailableChain {
		t.Fatalf("unexpected tokens %+v", tokens)
	}
}

func TestEnrichTradeBalance(t *testing.T) {
	tokens := Flatten([]utilities.TokenDistribution{distribution("ukuji", "kujira", "KUJI", "kuji", 6)})

	hit := EnrichTradeBalance(sdkmath.NewInt(2500000), "UKUJI", tokens)
	if hit.TransactDenom != "UKUJI" || hit.Symbol != "KUJI" || hit.SymbolAmount == nil {
		t.Fatalf("unexpected hit %+v", hit)
	}
	if !hit.SymbolAmount.Equal(sdkmath.LegacyMustNewDecFromStr("2.5")) {
		t.Fatalf("expected 2.5, got %s", hit.SymbolAmount)
	}

	miss := EnrichTradeBalance(sdkmath.NewInt(7), "uother", tokens)
	if miss.BaseDenom != "uother" || miss.TransactDenom != "" || miss.SymbolAmount != nil || miss.Exponent != nil {
		t.Fatalf("unexpected miss %+v", miss)
	}
}

func TestWalletBalancesDropsUnknownTokens(t *testing.T) {
	cache := &sliceCache{assets: Flatten([]utilities.TokenDistribution{
		distribution("uusk", "kujira", "USK", "usk", 6),
		distribution("ukuji", "kujira", "KUJI", "kuji", 6),
		{Denom: "ibc/NOEXP"},
	})}
	balances := fakeBalances{coins: []lcd.Coin{
		{Denom: "uusk", Amount: "1000000"},
		{Denom: "ibc/NOEXP", Amount: "5"},
		{Denom: "ukuji", Amount: "3000000"},
		{Denom: "unknown", Amount: "9"},
	}}

	result, err := WalletBalances(context.Background(), balances, nil, cache, "kujira1wallet")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 balances, got %d", len(result))
	}
	if result[0].Symbol != "KUJI" || result[1].Symbol != "USK" {
		t.Fatalf("unexpected order %+v", result)
	}
	if result[0].TransactDenom != "ukuji" || !result[0].SymbolAmount.Equal(sdkmath.LegacyNewDec(3)) {
		t.Fatalf("unexpected balance %+v", result[0])
	}
}

func TestWalletBalancesRejectsBadAmount(t *testing.T) {
	cache := &sliceCache{assets: Flatten([]utilities.TokenDistribution{distribution("ukuji", "kujira", "KUJI", "kuji", 6)})}
	balances := fakeBalances{coins: []lcd.Coin{{Denom: "ukuji", Amount: "1.5"}}}
	if _, err := WalletBalances(context.Background(), balances, nil, cache, "kujira1wallet"); err == nil {
		t.Fatal("expected error for invalid amount")
	}
}
