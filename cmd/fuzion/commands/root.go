package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atlo-labs/fuzion-sdk-go/pkg/assetcache"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/fuzion"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/otc"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/shared"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/utilities"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/wasm"
)

// Environment carries the transports the commands talk through. Zero
// values mean the real CometBFT and HTTP clients.
type Environment struct {
	RPCClient  wasm.RPCClient
	HTTPClient *http.Client
}

type session struct {
	env Environment

	network    string
	rpc        string
	configFile string
	utils      string
	verbose    bool
}

func Execute() error {
	return NewRootCommand(Environment{}).Execute()
}

// NewRootCommand builds the fuzion command tree.
func NewRootCommand(env Environment) *cobra.Command {
	s := &session{env: env}
	root := &cobra.Command{
		Use:          "fuzion",
		Short:        "Inspect the Fuzion contracts on Kujira",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.prepare(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&s.network, "network", shared.NetworkMainnet, "network to use: mainnet, testnet or devnet")
	flags.StringVar(&s.rpc, "rpc", shared.DefaultRPCEndpoint, "RPC endpoint used to read the chain configs")
	flags.StringVar(&s.configFile, "config-file", "", "YAML or JSON chain config file to use instead of the utilities contract")
	flags.StringVar(&s.utils, "utils", shared.DefaultUtilsContractAddress, "utilities contract holding the chain configs")
	flags.BoolVarP(&s.verbose, "verbose", "v", false, "log contract calls to stderr")

	root.AddCommand(
		configCmd(s),
		chainCmd(s),
		assetsCmd(s),
		balancesCmd(s),
		escrowCmd(s),
		pairsCmd(s),
	)
	return root
}

// prepare applies FUZION_* environment defaults to flags left unset.
func (s *session) prepare(cmd *cobra.Command) error {
	env, err := shared.ConfigFromEnv()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if !flags.Changed("network") {
		s.network = env.Network
	}
	if !flags.Changed("rpc") {
		s.rpc = env.RPCEndpoint
	}
	if !flags.Changed("utils") {
		s.utils = env.UtilsContract
	}
	network, err := shared.NormalizeNetwork(s.network)
	if err != nil {
		return err
	}
	s.network = network

	if s.verbose {
		shared.SetLogOutput(cmd.ErrOrStderr())
		shared.EnableLogging(true)
	}
	return nil
}

func (s *session) chainConfigs(ctx context.Context) ([]utilities.ChainConfig, error) {
	if strings.TrimSpace(s.configFile) != "" {
		return utilities.LoadChainConfigFile(s.configFile)
	}
	client, err := fuzion.NewConfigClient(s.rpc, fuzion.Options{RPCClient: s.env.RPCClient})
	if err != nil {
		return nil, err
	}
	responses, err := client.ChainConfigs(ctx, s.utils)
	if err != nil {
		return nil, err
	}
	configs := make([]utilities.ChainConfig, 0, len(responses))
	for _, response := range responses {
		configs = append(configs, response.ChainConfig)
	}
	return configs, nil
}

func (s *session) chainConfig(ctx context.Context) (utilities.ChainConfig, error) {
	configs, err := s.chainConfigs(ctx)
	if err != nil {
		return utilities.ChainConfig{}, err
	}
	for _, config := range configs {
		if shared.SameNetwork(config.NetworkType, s.network) {
			return config, nil
		}
	}
	return utilities.ChainConfig{}, fmt.Errorf("no chain config found for network %q", s.network)
}

func (s *session) transport(config utilities.ChainConfig) (*wasm.Client, error) {
	return wasm.NewClient(wasm.Config{
		RPCEndpoint: config.ChainRPCURL,
		RPCClient:   s.env.RPCClient,
		ChainID:     config.ChainID,
	})
}

func (s *session) utilities(ctx context.Context) (*utilities.Client, utilities.ChainConfig, error) {
	config, err := s.chainConfig(ctx)
	if err != nil {
		return nil, utilities.ChainConfig{}, err
	}
	address, err := config.ContractAddress(shared.ContractUtilities)
	if err != nil {
		return nil, utilities.ChainConfig{}, err
	}
	transport, err := s.transport(config)
	if err != nil {
		return nil, utilities.ChainConfig{}, err
	}
	client, err := utilities.NewClient(address, transport, nil)
	if err != nil {
		return nil, utilities.ChainConfig{}, err
	}
	return client, config, nil
}

func (s *session) otc(ctx context.Context) (*otc.Client, error) {
	utils, config, err := s.utilities(ctx)
	if err != nil {
		return nil, err
	}
	address, err := config.ContractAddress(shared.ContractOTC)
	if err != nil {
		return nil, err
	}
	transport, err := s.transport(config)
	if err != nil {
		return nil, err
	}
	return otc.NewClient(address, transport, nil, otc.Options{Assets: utils, Cache: assetcache.NewMemory()})
}

func printJSON(cmd *cobra.Command, value any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

