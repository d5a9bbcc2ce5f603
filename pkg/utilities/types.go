package utilities

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/atlo-labs/fuzion-sdk-go/pkg/shared"
)

type IBCDenom struct {
	Hash      string `json:"hash"`
	Path      string `json:"path"`
	BaseDenom string `json:"base_denom"`
}

type ContractConfig struct {
	ContractName    string `json:"contract_name" yaml:"contract_name"`
	ContractAddress string `json:"contract_address" yaml:"contract_address"`
}

// ChainConfig describes where the Fuzion contracts live on one network.
type ChainConfig struct {
	ChainName        string           `json:"chain_name" yaml:"chain_name"`
	ChainDisplayName string           `json:"chain_display_name" yaml:"chain_display_name"`
	ChainID          string           `json:"chain_id" yaml:"chain_id"`
	ChainLCDURL      string           `json:"chain_lcd_url" yaml:"chain_lcd_url"`
	ChainRPCURL      string           `json:"chain_rpc_url" yaml:"chain_rpc_url"`
	ConnectType      string           `json:"connect_type" yaml:"connect_type"`
	NetworkType      string           `json:"network_type" yaml:"network_type"`
	ChainContracts   []ContractConfig `json:"chain_contracts" yaml:"chain_contracts"`
}

type ChainConfigResponse struct {
	ChainConfig ChainConfig `json:"chain_config" yaml:"chain_config"`
	ChainInfo   *Chain      `json:"chain_info,omitempty" yaml:"chain_info,omitempty"`
}

type ChainOverview struct {
	ChainInfo Chain     `json:"chain_info"`
	AssetList AssetList `json:"asset_list"`
}

type ChainAsset struct {
	ChainName string `json:"chain_name"`
	Asset     Asset  `json:"asset"`
}

type TokenDistribution struct {
	Denom         string       `json:"denom"`
	ChainAndAsset []ChainAsset `json:"chain_and_asset"`
}

// KeyedChainAsset is one [key, chain_asset] pair from the asset list
// queries. Key is the [symbol, chain_name] index entry.
type KeyedChainAsset struct {
	Key        []string
	ChainAsset ChainAsset
}

func (k *KeyedChainAsset) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("asset list entry must be a [key, asset] pair: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("asset list entry must have 2 elements, got %d", len(pair))
	}
	if err := json.Unmarshal(pair[0], &k.Key); err != nil {
		var single string
		if singleErr := json.Unmarshal(pair[0], &single); singleErr != nil {
			return fmt.Errorf("invalid asset list key: %w", err)
		}
		k.Key = []string{single}
	}
	if err := json.Unmarshal(pair[1], &k.ChainAsset); err != nil {
		return fmt.Errorf("invalid asset list value: %w", err)
	}
	return nil
}

func (k KeyedChainAsset) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{k.Key, k.ChainAsset})
}

// ContractAddress returns the address registered under name.
func (config ChainConfig) ContractAddress(name shared.ContractName) (string, error) {
	for _, contract := range config.ChainContracts {
		if equalFold(contract.ContractName, string(name)) {
			return contract.ContractAddress, nil
		}
	}
	return "", fmt.Errorf("no contract with the name %s was found in the loaded chain config", name)
}

// FindChainConfigByNetwork picks the config whose network_type matches.
func FindChainConfigByNetwork(configs []ChainConfigResponse, network string) (ChainConfig, error) {
	for _, candidate := range configs {
		if shared.SameNetwork(candidate.ChainConfig.NetworkType, network) {
			return candidate.ChainConfig, nil
		}
	}
	return ChainConfig{}, fmt.Errorf("no chain config found for network %q", network)
}

func equalFold(left string, right string) bool {
	return strings.EqualFold(strings.TrimSpace(left), strings.TrimSpace(right))
}
