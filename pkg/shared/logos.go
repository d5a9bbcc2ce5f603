package shared

import "strings"

type LogoURIs struct {
	PNG string `json:"png,omitempty" yaml:"png,omitempty"`
	SVG string `json:"svg,omitempty" yaml:"svg,omitempty"`
}

const kujiraChainLogo = "https://raw.githubusercontent.com/cosmos/chain-registry/master/kujira/images/kujira-chain-logo.png"

// ChainLogos returns the logo URIs known for a chain. Unknown chains get
// empty URIs.
func ChainLogos(chainName string) LogoURIs {
	if strings.EqualFold(strings.TrimSpace(chainName), "kujira") {
		return LogoURIs{PNG: kujiraChainLogo}
	}
	return LogoURIs{}
}
