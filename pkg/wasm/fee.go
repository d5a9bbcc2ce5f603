package wasm

import (
	"fmt"
	"strconv"
	"strings"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const DefaultGasAdjustment = 1.4

// Fee selects how a transaction fee is computed. The zero value is "auto":
// simulate and multiply gas used by the client's gas adjustment.
type Fee struct {
	Auto       bool
	Multiplier float64
	GasLimit   uint64
	Amount     sdk.Coins
}

func AutoFee() *Fee {
	return &Fee{Auto: true}
}

type StdFee struct {
	Amount   sdk.Coins
	GasLimit uint64
}

// ParseGasPrice parses a price such as "0.025ukuji".
func ParseGasPrice(gasPrice string) (sdk.DecCoin, error) {
	price, err := sdk.ParseDecCoin(strings.TrimSpace(gasPrice))
	if err != nil {
		return sdk.DecCoin{}, fmt.Errorf("invalid gas price %q: %w", gasPrice, err)
	}
	if price.Amount.IsNegative() {
		return sdk.DecCoin{}, fmt.Errorf("invalid gas price %q: must not be negative", gasPrice)
	}
	return price, nil
}

// CalculateFee returns ceil(gasLimit * price) in the price's denom.
func CalculateFee(gasLimit uint64, price sdk.DecCoin) StdFee {
	amount := price.Amount.Mul(sdkmath.LegacyNewDecFromInt(sdkmath.NewIntFromUint64(gasLimit))).Ceil().TruncateInt()
	return StdFee{
		Amount:   sdk.NewCoins(sdk.NewCoin(price.Denom, amount)),
		GasLimit: gasLimit,
	}
}

// ExecutionFee computes the fee for gasLimit at gasPrice per unit of denom.
func ExecutionFee(gasLimit uint64, gasPrice float64, denom string) (StdFee, error) {
	price, err := ParseGasPrice(strconv.FormatFloat(gasPrice, 'f', -1, 64) + denom)
	if err != nil {
		return StdFee{}, err
	}
	return CalculateFee(gasLimit, price), nil
}

func adjustGas(gasUsed uint64, multiplier float64) (uint64, error) {
	factor, err := sdkmath.LegacyNewDecFromStr(strconv.FormatFloat(multiplier, 'f', -1, 64))
	if err != nil {
		return 0, fmt.Errorf("invalid gas multiplier %v: %w", multiplier, err)
	}
	if !factor.IsPositive() {
		return 0, fmt.Errorf("gas multiplier must be positive")
	}
	adjusted := sdkmath.LegacyNewDecFromInt(sdkmath.NewIntFromUint64(gasUsed)).Mul(factor).RoundInt()
	return adjusted.Uint64(), nil
}
