package token

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
)

// UnavailableChain is the chain name given to a distribution that carries
// no chain assets.
const UnavailableChain = "Unavailable"

// Properties describes a token as the utilities contract knows it, once per
// chain it exists on.
type Properties struct {
	TransactDenom string `json:"transactDenom"`
	ChainName     string `json:"chainName"`
	BaseDenom     string `json:"baseDenom,omitempty"`
	Display       string `json:"display,omitempty"`
	Exponent      *int   `json:"exponent,omitempty"`
	Name          string `json:"name,omitempty"`
	Symbol        string `json:"symbol,omitempty"`
	SymbolPNG     string `json:"symbolPng,omitempty"`
	SymbolSVG     string `json:"symbolSvg,omitempty"`
}

// Balance is an amount of a token joined against its properties.
// SymbolAmount is BaseAmount scaled down by Exponent and is nil when the
// exponent is unknown.
type Balance struct {
	TransactDenom string             `json:"transactDenom,omitempty"`
	BaseAmount    sdkmath.Int        `json:"baseAmount"`
	BaseDenom     string             `json:"baseDenom"`
	Display       string             `json:"display,omitempty"`
	Exponent      *int               `json:"exponent,omitempty"`
	Name          string             `json:"name,omitempty"`
	Symbol        string             `json:"symbol,omitempty"`
	SymbolAmount  *sdkmath.LegacyDec `json:"symbolAmount,omitempty"`
	SymbolPNG     string             `json:"symbolPng,omitempty"`
	SymbolSVG     string             `json:"symbolSvg,omitempty"`
}

// InvalidParameterError reports an argument the conversion helpers cannot use.
type InvalidParameterError struct {
	Message string
}

func (e *InvalidParameterError) Error() string {
	return e.Message
}

func invalidParameter(format string, args ...any) error {
	return &InvalidParameterError{Message: fmt.Sprintf(format, args...)}
}
