package token

import (
	"fmt"
	"slices"
	"strings"

	sdkmath "cosmossdk.io/math"

	"github.com/atlo-labs/fuzion-sdk-go/pkg/utilities"
)

// SymbolAmount converts a base amount (eg. ukuji) into a symbol amount
// (eg. KUJI) by dividing by 10^exponent.
func SymbolAmount(base sdkmath.Int, exponent int) (sdkmath.LegacyDec, error) {
	if exponent <= 0 {
		return sdkmath.LegacyDec{}, invalidParameter("the supplied exponent value of %d is invalid", exponent)
	}
	if base.IsNil() {
		return sdkmath.LegacyDec{}, invalidParameter("base amount is required")
	}
	divisor := sdkmath.LegacyNewDec(10).Power(uint64(exponent))
	return sdkmath.LegacyNewDecFromInt(base).Quo(divisor), nil
}

// ParseAmount parses a chain amount string such as "1500000".
func ParseAmount(amount string) (sdkmath.Int, error) {
	value, ok := sdkmath.NewIntFromString(strings.TrimSpace(amount))
	if !ok {
		return sdkmath.Int{}, invalidParameter("invalid token amount %q", amount)
	}
	return value, nil
}

// Flatten expands each distribution into one Properties per chain asset.
// A distribution without chain assets yields a single entry on the
// UnavailableChain that only carries the transact denom.
func Flatten(distributions []utilities.TokenDistribution) []Properties {
	flattened := make([]Properties, 0, len(distributions))
	for _, distribution := range distributions {
		if len(distribution.ChainAndAsset) == 0 {
			flattened = append(flattened, Properties{
				TransactDenom: distribution.Denom,
				ChainName:     UnavailableChain,
			})
			continue
		}

		for _, chainAsset := range distribution.ChainAndAsset {
			asset := chainAsset.Asset
			properties := Properties{
				TransactDenom: distribution.Denom,
				ChainName:     chainAsset.ChainName,
				BaseDenom:     asset.Base,
				Display:       asset.Display,
				Name:          asset.Name,
				Symbol:        asset.Symbol,
				SymbolPNG:     asset.LogoURIs.PNG,
				SymbolSVG:     asset.LogoURIs.SVG,
			}
			if exponent, ok := asset.Exponent(); ok {
				properties.Exponent = &exponent
			}
			flattened = append(flattened, properties)
		}
	}
	return flattened
}

// SortBySymbol orders tokens by upper-cased symbol, keeping the relative
// order of equal symbols.
func SortBySymbol(tokens []Properties) {
	slices.SortStableFunc(tokens, func(left Properties, right Properties) int {
		return strings.Compare(strings.ToUpper(left.Symbol), strings.ToUpper(right.Symbol))
	})
}

// Find returns the first token whose transact denom matches denom
// case-insensitively.
func Find(tokens []Properties, denom string) (Properties, bool) {
	for _, candidate := range tokens {
		if strings.EqualFold(candidate.TransactDenom, denom) {
			return candidate, true
		}
	}
	return Properties{}, false
}

// EnrichWalletBalance joins a bank balance against tokens. Tokens without a
// positive exponent are treated as unknown: the result then only carries
// the base amount and the balance denom as base denom.
func EnrichWalletBalance(amount sdkmath.Int, denom string, tokens []Properties) (Balance, error) {
	properties, found := Find(tokens, denom)
	if !found || properties.Exponent == nil || *properties.Exponent <= 0 {
		return Balance{BaseAmount: amount, BaseDenom: denom}, nil
	}

	balance := fromProperties(amount, properties)
	symbolAmount, err := SymbolAmount(amount, *properties.Exponent)
	if err != nil {
		return Balance{}, fmt.Errorf("failed to convert %s: %w", denom, err)
	}
	balance.SymbolAmount = &symbolAmount
	return balance, nil
}

// EnrichTradeBalance joins an escrow balance against tokens. A hit keeps the
// input denom as transact denom; a miss only carries the base amount and the
// denom as base denom. SymbolAmount stays nil when the matched token has no
// positive exponent.
func EnrichTradeBalance(amount sdkmath.Int, denom string, tokens []Properties) Balance {
	properties, found := Find(tokens, denom)
	if !found {
		return Balance{BaseAmount: amount, BaseDenom: denom}
	}

	balance := fromProperties(amount, properties)
	balance.TransactDenom = denom
	if properties.Exponent != nil {
		if symbolAmount, err := SymbolAmount(amount, *properties.Exponent); err == nil {
			balance.SymbolAmount = &symbolAmount
		}
	}
	return balance
}

func fromProperties(amount sdkmath.Int, properties Properties) Balance {
	balance := Balance{
		TransactDenom: properties.TransactDenom,
		BaseAmount:    amount,
		BaseDenom:     properties.BaseDenom,
		Display:       properties.Display,
		Name:          properties.Name,
		Symbol:        properties.Symbol,
		SymbolPNG:     properties.SymbolPNG,
		SymbolSVG:     properties.SymbolSVG,
	}
	if properties.Exponent != nil {
		exponent := *properties.Exponent
		balance.Exponent = &exponent
	}
	return balance
}

func sortBalancesBySymbol(balances []Balance) {
	slices.SortStableFunc(balances, func(left Balance, right Balance) int {
		return strings.Compare(strings.ToUpper(left.Symbol), strings.ToUpper(right.Symbol))
	})
}
