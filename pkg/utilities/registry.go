package utilities

import "github.com/atlo-labs/fuzion-sdk-go/pkg/shared"

// The chain-registry subset the utilities contract serves.

type DenomUnit struct {
	Denom    string   `json:"denom" yaml:"denom"`
	Exponent int      `json:"exponent" yaml:"exponent"`
	Aliases  []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

type Trace struct {
	Type         string         `json:"type" yaml:"type"`
	Counterparty map[string]any `json:"counterparty,omitempty" yaml:"counterparty,omitempty"`
	Chain        map[string]any `json:"chain,omitempty" yaml:"chain,omitempty"`
	Provider     string         `json:"provider,omitempty" yaml:"provider,omitempty"`
}

type Asset struct {
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	DenomUnits  []DenomUnit     `json:"denom_units" yaml:"denom_units"`
	Base        string          `json:"base" yaml:"base"`
	Name        string          `json:"name" yaml:"name"`
	Display     string          `json:"display" yaml:"display"`
	Symbol      string          `json:"symbol" yaml:"symbol"`
	LogoURIs    shared.LogoURIs `json:"logo_URIs" yaml:"logo_URIs"`
	CoingeckoID string          `json:"coingecko_id,omitempty" yaml:"coingecko_id,omitempty"`
	TypeAsset   string          `json:"type_asset,omitempty" yaml:"type_asset,omitempty"`
	Address     string          `json:"address,omitempty" yaml:"address,omitempty"`
	Traces      []Trace         `json:"traces,omitempty" yaml:"traces,omitempty"`
	Keywords    []string        `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// Exponent returns the exponent of the denom unit matching the asset's
// display denom.
func (asset Asset) Exponent() (int, bool) {
	for _, unit := range asset.DenomUnits {
		if equalFold(unit.Denom, asset.Display) {
			return unit.Exponent, true
		}
	}
	return 0, false
}

type AssetList struct {
	ChainName string  `json:"chain_name" yaml:"chain_name"`
	Assets    []Asset `json:"assets" yaml:"assets"`
}

type FeeToken struct {
	Denom            string  `json:"denom" yaml:"denom"`
	FixedMinGasPrice float64 `json:"fixed_min_gas_price,omitempty" yaml:"fixed_min_gas_price,omitempty"`
	LowGasPrice      float64 `json:"low_gas_price,omitempty" yaml:"low_gas_price,omitempty"`
	AverageGasPrice  float64 `json:"average_gas_price,omitempty" yaml:"average_gas_price,omitempty"`
	HighGasPrice     float64 `json:"high_gas_price,omitempty" yaml:"high_gas_price,omitempty"`
}

type Fees struct {
	FeeTokens []FeeToken `json:"fee_tokens" yaml:"fee_tokens"`
}

type StakingToken struct {
	Denom string `json:"denom" yaml:"denom"`
}

type Staking struct {
	StakingTokens []StakingToken `json:"staking_tokens" yaml:"staking_tokens"`
}

type Endpoint struct {
	Address  string `json:"address" yaml:"address"`
	Provider string `json:"provider,omitempty" yaml:"provider,omitempty"`
}

type APIs struct {
	RPC  []Endpoint `json:"rpc,omitempty" yaml:"rpc,omitempty"`
	REST []Endpoint `json:"rest,omitempty" yaml:"rest,omitempty"`
	GRPC []Endpoint `json:"grpc,omitempty" yaml:"grpc,omitempty"`
}

type Explorer struct {
	Kind        string `json:"kind,omitempty" yaml:"kind,omitempty"`
	URL         string `json:"url,omitempty" yaml:"url,omitempty"`
	TxPage      string `json:"tx_page,omitempty" yaml:"tx_page,omitempty"`
	AccountPage string `json:"account_page,omitempty" yaml:"account_page,omitempty"`
}

type Chain struct {
	ChainName    string          `json:"chain_name" yaml:"chain_name"`
	Status       string          `json:"status,omitempty" yaml:"status,omitempty"`
	NetworkType  string          `json:"network_type,omitempty" yaml:"network_type,omitempty"`
	PrettyName   string          `json:"pretty_name,omitempty" yaml:"pretty_name,omitempty"`
	ChainID      string          `json:"chain_id" yaml:"chain_id"`
	Bech32Prefix string          `json:"bech32_prefix,omitempty" yaml:"bech32_prefix,omitempty"`
	DaemonName   string          `json:"daemon_name,omitempty" yaml:"daemon_name,omitempty"`
	NodeHome     string          `json:"node_home,omitempty" yaml:"node_home,omitempty"`
	Slip44       int             `json:"slip44,omitempty" yaml:"slip44,omitempty"`
	KeyAlgos     []string        `json:"key_algos,omitempty" yaml:"key_algos,omitempty"`
	Fees         *Fees           `json:"fees,omitempty" yaml:"fees,omitempty"`
	Staking      *Staking        `json:"staking,omitempty" yaml:"staking,omitempty"`
	APIs         *APIs           `json:"apis,omitempty" yaml:"apis,omitempty"`
	LogoURIs     shared.LogoURIs `json:"logo_URIs,omitempty" yaml:"logo_URIs,omitempty"`
	Explorers    []Explorer      `json:"explorers,omitempty" yaml:"explorers,omitempty"`
}

type IBCChain struct {
	ChainName    string `json:"chain_name" yaml:"chain_name"`
	ClientID     string `json:"client_id" yaml:"client_id"`
	ConnectionID string `json:"connection_id" yaml:"connection_id"`
}

type ChannelEnd struct {
	ChannelID string `json:"channel_id" yaml:"channel_id"`
	PortID    string `json:"port_id" yaml:"port_id"`
}

type ChannelTags struct {
	Status    string `json:"status,omitempty" yaml:"status,omitempty"`
	Preferred bool   `json:"preferred,omitempty" yaml:"preferred,omitempty"`
	DEX       string `json:"dex,omitempty" yaml:"dex,omitempty"`
}

type Channel struct {
	Chain1   ChannelEnd   `json:"chain_1" yaml:"chain_1"`
	Chain2   ChannelEnd   `json:"chain_2" yaml:"chain_2"`
	Ordering string       `json:"ordering" yaml:"ordering"`
	Version  string       `json:"version" yaml:"version"`
	Tags     *ChannelTags `json:"tags,omitempty" yaml:"tags,omitempty"`
}

type IBCInfo struct {
	Chain1   IBCChain  `json:"chain_1" yaml:"chain_1"`
	Chain2   IBCChain  `json:"chain_2" yaml:"chain_2"`
	Channels []Channel `json:"channels" yaml:"channels"`
}
