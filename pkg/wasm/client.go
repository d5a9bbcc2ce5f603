package wasm

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	rpchttp "github.com/cometbft/cometbft/rpc/client/http"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/atlo-labs/fuzion-sdk-go/pkg/shared"
)

type Config struct {
	RPCEndpoint      string
	RPCClient        RPCClient
	GasPrice         string
	GasAdjustment    float64
	ChainID          string
	BroadcastTimeout time.Duration
	PollInterval     time.Duration
}

// Client performs smart queries and signed contract transactions against a
// CometBFT RPC node.
type Client struct {
	endpoint         string
	rpc              RPCClient
	gasPrice         sdk.DecCoin
	gasAdjustment    float64
	broadcastTimeout time.Duration
	pollInterval     time.Duration

	chainIDMutex sync.Mutex
	chainID      string
}

type ExecuteOptions struct {
	Memo         string
	Funds        sdk.Coins
	AccountIndex int
	Fee          *Fee
}

// NewClient creates a new Client.
func NewClient(config Config) (*Client, error) {
	endpoint := strings.TrimRight(strings.TrimSpace(config.RPCEndpoint), "/")
	if endpoint == "" {
		endpoint = shared.DefaultRPCEndpoint
	}

	rpc := config.RPCClient
	if rpc == nil {
		parsedEndpoint, err := url.Parse(endpoint)
		if err != nil {
			return nil, fmt.Errorf("invalid RPC endpoint: %w", err)
		}
		switch parsedEndpoint.Scheme {
		case "http", "https", "tcp":
		default:
			return nil, fmt.Errorf("invalid RPC endpoint: scheme must be http, https or tcp")
		}
		if strings.TrimSpace(parsedEndpoint.Host) == "" {
			return nil, fmt.Errorf("invalid RPC endpoint: host is required")
		}

		httpClient, err := rpchttp.New(endpoint, "/websocket")
		if err != nil {
			return nil, fmt.Errorf("failed to create RPC client: %w", err)
		}
		rpc = httpClient
	}

	gasPriceText := strings.TrimSpace(config.GasPrice)
	if gasPriceText == "" {
		gasPriceText = shared.DefaultGasPrice
	}
	gasPrice, err := ParseGasPrice(gasPriceText)
	if err != nil {
		return nil, err
	}

	gasAdjustment := config.GasAdjustment
	if gasAdjustment <= 0 {
		gasAdjustment = DefaultGasAdjustment
	}
	broadcastTimeout := config.BroadcastTimeout
	if broadcastTimeout <= 0 {
		broadcastTimeout = 60 * time.Second
	}
	pollInterval := config.PollInterval
	if pollInterval <= 0 {
		pollInterval = time.Second
	}

	return &Client{
		endpoint:         endpoint,
		rpc:              rpc,
		gasPrice:         gasPrice,
		gasAdjustment:    gasAdjustment,
		broadcastTimeout: broadcastTimeout,
		pollInterval:     pollInterval,
		chainID:          strings.TrimSpace(config.ChainID),
	}, nil
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

func (c *Client) GasPrice() sdk.DecCoin {
	return c.gasPrice
}

// QuerySmart sends msg as a JSON smart query to contract and decodes the
// response into out.
func (c *Client) QuerySmart(ctx context.Context, contract string, msg any, out any) error {
	if strings.TrimSpace(contract) == "" {
		return fmt.Errorf("contract address is required")
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode query message: %w", err)
	}

	logger := shared.Logger()
	logger.Debug().
		Str("contract", contract).
		Str("endpoint", c.endpoint).
		RawJSON("query", payload).
		Msg("sending query")
	started := time.Now()

	request := wasmtypes.QuerySmartContractStateRequest{Address: contract, QueryData: payload}
	requestBytes, err := request.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode query request: %w", err)
	}

	value, err := c.abciQuery(ctx, smartQueryPath, requestBytes)
	if err != nil {
		return err
	}

	var response wasmtypes.QuerySmartContractStateResponse
	if err := response.Unmarshal(value); err != nil {
		return fmt.Errorf("failed to decode query response: %w", err)
	}

	logger.Debug().
		Dur("elapsed", time.Since(started)).
		RawJSON("response", response.Data).
		Msg("query response")

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(response.Data, out); err != nil {
		return fmt.Errorf("failed to decode contract response: %w", err)
	}
	return nil
}

func (c *Client) abciQuery(ctx context.Context, path string, data []byte) ([]byte, error) {
	result, err := c.rpc.ABCIQuery(ctx, path, data)
	if err != nil {
		return nil, fmt.Errorf("abci query %s failed: %w", path, err)
	}
	if result.Response.Code != 0 {
		return nil, &queryError{code: result.Response.Code, log: result.Response.Log}
	}
	return result.Response.Value, nil
}

// Execute signs and broadcasts a MsgExecuteContract.
func (c *Client) Execute(
	ctx context.Context,
	signer Signer,
	contract string,
	msg any,
	options ExecuteOptions,
) (*ExecuteResult, error) {
	if strings.TrimSpace(contract) == "" {
		return nil, fmt.Errorf("contract address is required")
	}
	sender, err := senderAddress(signer, options.AccountIndex)
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode execute message: %w", err)
	}

	logger := shared.Logger()
	logger.Debug().
		Str("contract", contract).
		Str("endpoint", c.endpoint).
		RawJSON("execute", payload).
		Msg("sending execute")
	started := time.Now()

	message := &wasmtypes.MsgExecuteContract{
		Sender:   sender,
		Contract: contract,
		Msg:      payload,
		Funds:    options.Funds.Sort(),
	}
	result, err := c.SignAndBroadcast(ctx, signer, []sdk.Msg{message}, options)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Dur("elapsed", time.Since(started)).
		Str("tx_hash", result.TxHash).
		Int64("gas_used", result.GasUsed).
		Msg("execute response")
	return result, nil
}

// Upload stores wasm code on chain and returns its code id.
func (c *Client) Upload(
	ctx context.Context,
	signer Signer,
	wasmCode []byte,
	options ExecuteOptions,
) (*UploadResult, error) {
	if len(wasmCode) == 0 {
		return nil, fmt.Errorf("wasm code is required")
	}
	sender, err := senderAddress(signer, options.AccountIndex)
	if err != nil {
		return nil, err
	}
	compressed, err := gzipWasm(wasmCode)
	if err != nil {
		return nil, err
	}

	message := &wasmtypes.MsgStoreCode{Sender: sender, WASMByteCode: compressed}
	result, err := c.SignAndBroadcast(ctx, signer, []sdk.Msg{message}, options)
	if err != nil {
		return nil, err
	}

	rawCodeID, ok := result.Events.First(wasmtypes.EventTypeStoreCode, wasmtypes.AttributeKeyCodeID)
	if !ok {
		return nil, fmt.Errorf("store_code event missing from transaction %s", result.TxHash)
	}
	codeID, err := strconv.ParseUint(rawCodeID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid code id %q: %w", rawCodeID, err)
	}

	return &UploadResult{ExecuteResult: *result, CodeID: codeID}, nil
}

// Instantiate creates a contract from codeID and returns its address.
func (c *Client) Instantiate(
	ctx context.Context,
	signer Signer,
	codeID uint64,
	msg any,
	label string,
	admin string,
	options ExecuteOptions,
) (*InstantiateResult, error) {
	if strings.TrimSpace(label) == "" {
		return nil, fmt.Errorf("label is required")
	}
	sender, err := senderAddress(signer, options.AccountIndex)
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode instantiate message: %w", err)
	}

	message := &wasmtypes.MsgInstantiateContract{
		Sender: sender,
		Admin:  strings.TrimSpace(admin),
		CodeID: codeID,
		Label:  label,
		Msg:    payload,
		Funds:  options.Funds.Sort(),
	}
	result, err := c.SignAndBroadcast(ctx, signer, []sdk.Msg{message}, options)
	if err != nil {
		return nil, err
	}

	address, ok := result.Events.First(wasmtypes.EventTypeInstantiate, wasmtypes.AttributeKeyContractAddr)
	if !ok {
		return nil, fmt.Errorf("instantiate event missing from transaction %s", result.TxHash)
	}

	return &InstantiateResult{ExecuteResult: *result, ContractAddress: address}, nil
}

func senderAddress(signer Signer, index int) (string, error) {
	if signer == nil {
		return "", fmt.Errorf("signer is required")
	}
	account, err := signer.Account(index)
	if err != nil {
		return "", err
	}
	return account.Address, nil
}

func gzipWasm(code []byte) ([]byte, error) {
	if bytes.HasPrefix(code, []byte{0x1f, 0x8b}) {
		return code, nil
	}
	var buffer bytes.Buffer
	writer := gzip.NewWriter(&buffer)
	if _, err := writer.Write(code); err != nil {
		return nil, fmt.Errorf("failed to compress wasm code: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to compress wasm code: %w", err)
	}
	return buffer.Bytes(), nil
}
