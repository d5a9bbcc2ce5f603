package fuzion

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/atlo-labs/fuzion-sdk-go/pkg/assetcache"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/governance"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/lcd"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/otc"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/reactor"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/shared"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/token"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/utilities"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/wallet"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/wasm"
)

var (
	ErrNoConfig      = errors.New("no chain configuration has been loaded; load one with LoadConfig or FetchConfig first")
	ErrConfigLoaded  = errors.New("the config for this client has already been set; create a new client to use a different configuration")
	errSignerMissing = errors.New("signer is required")
)

type Options struct {
	// GasPrice such as "0.025ukuji". Defaults to shared.DefaultGasPrice.
	GasPrice string

	// Prefix is the bech32 prefix used when deriving wallet addresses.
	Prefix string

	// UtilsContract overrides the utilities contract FetchConfig reads.
	UtilsContract    string
	BroadcastTimeout time.Duration

	// RPCClient replaces the CometBFT HTTP client built from the config.
	RPCClient  wasm.RPCClient
	HTTPClient *http.Client
	AssetCache token.AssetCache
}

// Client is the SDK facade over the Fuzion contracts.
type Client struct {
	signer  wasm.Signer
	options Options
	cache   token.AssetCache

	mutex     sync.Mutex
	config    *utilities.ChainConfig
	transport *wasm.Client
	otc       *otc.Client
	utilities *utilities.Client
	reactor   *reactor.Client
}

// FromMnemonic derives a wallet from mnemonic and wraps it in a Client.
func FromMnemonic(mnemonic string, options Options) (*Client, error) {
	signer, err := wallet.FromMnemonic(mnemonic, wallet.Options{Prefix: options.Prefix})
	if err != nil {
		return nil, err
	}
	return newClient(signer, options)
}

// FromWallet wraps an existing wallet in a Client.
func FromWallet(w *wallet.Wallet, options Options) (*Client, error) {
	if w == nil {
		return nil, errSignerMissing
	}
	return newClient(w, options)
}

// FromSigner wraps signer in a Client with config already loaded.
func FromSigner(signer wasm.Signer, config utilities.ChainConfig, options Options) (*Client, error) {
	client, err := newClient(signer, options)
	if err != nil {
		return nil, err
	}
	if err := client.LoadConfig(config); err != nil {
		return nil, err
	}
	return client, nil
}

// FromEnv builds a Client from the FUZION_* environment and fetches the
// chain config for the configured network.
func FromEnv(ctx context.Context) (*Client, error) {
	env, err := shared.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	if err := env.RequireMnemonic(); err != nil {
		return nil, err
	}
	client, err := FromMnemonic(env.Mnemonic, Options{
		GasPrice:      env.GasPrice,
		Prefix:        env.Bech32Prefix,
		UtilsContract: env.UtilsContract,
	})
	if err != nil {
		return nil, err
	}
	if err := client.FetchConfig(ctx, env.Network, env.RPCEndpoint); err != nil {
		return nil, err
	}
	return client, nil
}

func newClient(signer wasm.Signer, options Options) (*Client, error) {
	if signer == nil {
		return nil, errSignerMissing
	}
	if strings.TrimSpace(options.GasPrice) == "" {
		options.GasPrice = shared.DefaultGasPrice
	}
	if _, err := wasm.ParseGasPrice(options.GasPrice); err != nil {
		return nil, err
	}
	cache := options.AssetCache
	if cache == nil {
		cache = assetcache.NewMemory()
	}

	logger := shared.Logger()
	logger.Debug().Str("gas_price", options.GasPrice).Msg("initialising fuzion client")
	return &Client{signer: signer, options: options, cache: cache}, nil
}

func (c *Client) Signer() wasm.Signer {
	return c.signer
}

// ChainConfig returns the loaded config, if any.
func (c *Client) ChainConfig() (utilities.ChainConfig, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.config == nil {
		return utilities.ChainConfig{}, false
	}
	return *c.config, true
}

// LoadConfig sets the chain config used for every contract interaction.
func (c *Client) LoadConfig(config utilities.ChainConfig) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.loadConfigLocked(config)
}

// FetchConfig reads the chain configs from the utilities contract over
// rpcEndpoint and loads the one for network. Empty arguments fall back to
// mainnet and the default RPC endpoint.
func (c *Client) FetchConfig(ctx context.Context, network string, rpcEndpoint string) error {
	if _, loaded := c.ChainConfig(); loaded {
		return ErrConfigLoaded
	}

	configClient, err := NewConfigClient(rpcEndpoint, c.options)
	if err != nil {
		return err
	}
	config, err := configClient.ChainConfig(ctx, c.options.UtilsContract, network)
	if err != nil {
		return err
	}
	return c.LoadConfig(config)
}

// LoadConfigFile loads the config for network from a YAML or JSON file.
func (c *Client) LoadConfigFile(path string, network string) error {
	configs, err := utilities.LoadChainConfigFile(path)
	if err != nil {
		return err
	}
	wanted := networkOrDefault(network)
	for _, config := range configs {
		if shared.SameNetwork(config.NetworkType, wanted) {
			return c.LoadConfig(config)
		}
	}
	return fmt.Errorf("no chain config for network %q in %s", wanted, path)
}

func (c *Client) loadConfigLocked(config utilities.ChainConfig) error {
	if c.config != nil {
		return ErrConfigLoaded
	}
	if strings.TrimSpace(config.ChainRPCURL) == "" && c.options.RPCClient == nil {
		return fmt.Errorf("chain config %s has no chain_rpc_url", config.ChainName)
	}

	transport, err := wasm.NewClient(wasm.Config{
		RPCEndpoint:      config.ChainRPCURL,
		RPCClient:        c.options.RPCClient,
		GasPrice:         c.options.GasPrice,
		ChainID:          config.ChainID,
		BroadcastTimeout: c.options.BroadcastTimeout,
	})
	if err != nil {
		return err
	}

	logger := shared.Logger()
	logger.Debug().
		Str("chain", config.ChainName).
		Str("network", config.NetworkType).
		Str("rpc", config.ChainRPCURL).
		Msg("chain config loaded")

	loaded := config
	c.config = &loaded
	c.transport = transport
	return nil
}

// Transport returns the wasm client bound to the loaded config.
func (c *Client) Transport() (*wasm.Client, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.transport == nil {
		return nil, ErrNoConfig
	}
	return c.transport, nil
}

// OTC returns the OTC contract client, creating it from the config's
// OTC_FUNGIBLE_TOKEN entry on first use.
func (c *Client) OTC() (*otc.Client, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.otc != nil {
		return c.otc, nil
	}
	address, err := c.contractAddressLocked(shared.ContractOTC)
	if err != nil {
		return nil, err
	}
	return c.initOTCLocked(address)
}

// Utilities returns the utilities contract client, creating it from the
// config's UTILITIES entry on first use.
func (c *Client) Utilities() (*utilities.Client, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.utilitiesLocked()
}

// Reactor returns the reactor contract client, creating it from the
// config's REACTOR_SWAP entry on first use.
func (c *Client) Reactor() (*reactor.Client, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.reactor != nil {
		return c.reactor, nil
	}
	address, err := c.contractAddressLocked(shared.ContractReactor)
	if err != nil {
		return nil, err
	}
	return c.initReactorLocked(address)
}

// InitOTC points the OTC client at address, replacing any earlier one.
func (c *Client) InitOTC(address string) (*otc.Client, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.initOTCLocked(address)
}

// InitUtilities points the utilities client at address, replacing any
// earlier one.
func (c *Client) InitUtilities(address string) (*utilities.Client, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.initUtilitiesLocked(address)
}

// InitReactor points the reactor client at address, replacing any earlier
// one.
func (c *Client) InitReactor(address string) (*reactor.Client, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.initReactorLocked(address)
}

// Governance returns a proposer that signs with this client's signer.
func (c *Client) Governance() (*governance.Proposer, error) {
	transport, err := c.Transport()
	if err != nil {
		return nil, err
	}
	return governance.NewProposer(transport, c.signer)
}

// WalletBalances returns the trusted token balances of address, read
// through the config's LCD endpoint.
func (c *Client) WalletBalances(ctx context.Context, address string) ([]token.Balance, error) {
	c.mutex.Lock()
	utils, err := c.utilitiesLocked()
	var lcdURL string
	if c.config != nil {
		lcdURL = c.config.ChainLCDURL
	}
	c.mutex.Unlock()
	if err != nil {
		return nil, err
	}

	rest, err := lcd.NewClient(lcd.Config{BaseURL: lcdURL, HTTPClient: c.options.HTTPClient})
	if err != nil {
		return nil, fmt.Errorf("invalid chain_lcd_url: %w", err)
	}
	return token.WalletBalances(ctx, rest, utils, c.cache, address)
}

// EnableLogging switches the SDK's internal logging on or off.
func (c *Client) EnableLogging(enabled bool) {
	shared.EnableLogging(enabled)
}

func (c *Client) contractAddressLocked(name shared.ContractName) (string, error) {
	if c.config == nil {
		return "", ErrNoConfig
	}
	return c.config.ContractAddress(name)
}

func (c *Client) utilitiesLocked() (*utilities.Client, error) {
	if c.utilities != nil {
		return c.utilities, nil
	}
	address, err := c.contractAddressLocked(shared.ContractUtilities)
	if err != nil {
		return nil, err
	}
	return c.initUtilitiesLocked(address)
}

func (c *Client) initOTCLocked(address string) (*otc.Client, error) {
	if c.transport == nil {
		return nil, ErrNoConfig
	}
	utils, err := c.utilitiesLocked()
	if err != nil {
		return nil, err
	}

	logger := shared.Logger()
	logger.Debug().Str("address", address).Msg("initialising otc contract")
	client, err := otc.NewClient(address, c.transport, c.signer, otc.Options{Assets: utils, Cache: c.cache})
	if err != nil {
		return nil, err
	}
	c.otc = client
	return client, nil
}

func (c *Client) initUtilitiesLocked(address string) (*utilities.Client, error) {
	if c.transport == nil {
		return nil, ErrNoConfig
	}

	logger := shared.Logger()
	logger.Debug().Str("address", address).Msg("initialising utilities contract")
	client, err := utilities.NewClient(address, c.transport, c.signer)
	if err != nil {
		return nil, err
	}
	c.utilities = client
	return client, nil
}

func (c *Client) initReactorLocked(address string) (*reactor.Client, error) {
	if c.transport == nil {
		return nil, ErrNoConfig
	}

	logger := shared.Logger()
	logger.Debug().Str("address", address).Msg("initialising reactor contract")
	client, err := reactor.NewClient(address, c.transport, c.signer)
	if err != nil {
		return nil, err
	}
	c.reactor = client
	return client, nil
}
