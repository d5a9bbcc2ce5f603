package fuzion

import (
	"context"
	"strings"

	"github.com/atlo-labs/fuzion-sdk-go/pkg/shared"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/utilities"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/wasm"
)

// ConfigClient reads the Fuzion chain configs from a utilities contract
// without needing a signer.
type ConfigClient struct {
	caller wasm.Caller
}

// NewConfigClient connects to rpcEndpoint, or the default Kujira endpoint
// when it is empty.
func NewConfigClient(rpcEndpoint string, options Options) (*ConfigClient, error) {
	transport, err := wasm.NewClient(wasm.Config{
		RPCEndpoint: rpcEndpoint,
		RPCClient:   options.RPCClient,
		GasPrice:    options.GasPrice,
	})
	if err != nil {
		return nil, err
	}
	return &ConfigClient{caller: transport}, nil
}

// NewConfigClientWithCaller reads configs through an existing transport.
func NewConfigClientWithCaller(caller wasm.Caller) *ConfigClient {
	return &ConfigClient{caller: caller}
}

// ChainConfigs lists every chain config held by the utilities contract at
// utilsAddress, or at the default utilities contract when it is empty.
func (c *ConfigClient) ChainConfigs(ctx context.Context, utilsAddress string) ([]utilities.ChainConfigResponse, error) {
	address := strings.TrimSpace(utilsAddress)
	if address == "" {
		address = shared.DefaultUtilsContractAddress
	}
	utils, err := utilities.NewClient(address, c.caller, nil)
	if err != nil {
		return nil, err
	}
	return utils.AllFuzionChainConfigs(ctx)
}

// ChainConfig returns the config whose network_type matches network.
func (c *ConfigClient) ChainConfig(ctx context.Context, utilsAddress string, network string) (utilities.ChainConfig, error) {
	configs, err := c.ChainConfigs(ctx, utilsAddress)
	if err != nil {
		return utilities.ChainConfig{}, err
	}
	return utilities.FindChainConfigByNetwork(configs, networkOrDefault(network))
}

func networkOrDefault(network string) string {
	if strings.TrimSpace(network) == "" {
		return shared.NetworkMainnet
	}
	return network
}
