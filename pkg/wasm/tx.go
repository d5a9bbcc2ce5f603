package wasm

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/cenkalti/backoff/v4"
	cmttypes "github.com/cometbft/cometbft/types"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	"github.com/cosmos/cosmos-sdk/types/tx/signing"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/atlo-labs/fuzion-sdk-go/pkg/shared"
)

type accountState struct {
	number   uint64
	sequence uint64
}

// SignAndBroadcast signs msgs with the signer's account at
// options.AccountIndex, broadcasts them and waits for inclusion.
func (c *Client) SignAndBroadcast(
	ctx context.Context,
	signer Signer,
	msgs []sdk.Msg,
	options ExecuteOptions,
) (*ExecuteResult, error) {
	if signer == nil {
		return nil, fmt.Errorf("signer is required")
	}
	if len(msgs) == 0 {
		return nil, fmt.Errorf("at least one message is required")
	}
	account, err := signer.Account(options.AccountIndex)
	if err != nil {
		return nil, err
	}

	chainID, err := c.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	state, err := c.accountState(ctx, account.Address)
	if err != nil {
		return nil, err
	}

	anyMsgs := make([]*codectypes.Any, 0, len(msgs))
	for _, msg := range msgs {
		packed, err := codectypes.NewAnyWithValue(msg)
		if err != nil {
			return nil, fmt.Errorf("failed to pack message: %w", err)
		}
		anyMsgs = append(anyMsgs, packed)
	}
	pubKey, err := codectypes.NewAnyWithValue(&secp256k1.PubKey{Key: account.PubKey})
	if err != nil {
		return nil, fmt.Errorf("failed to pack public key: %w", err)
	}

	body := txtypes.TxBody{Messages: anyMsgs, Memo: options.Memo}
	bodyBytes, err := body.Marshal()
	if err != nil {
		return nil, fmt.Errorf("failed to encode tx body: %w", err)
	}

	fee, err := c.resolveFee(ctx, options.Fee, bodyBytes, pubKey, state.sequence)
	if err != nil {
		return nil, err
	}

	authInfoBytes, err := authInfo(pubKey, state.sequence, fee).Marshal()
	if err != nil {
		return nil, fmt.Errorf("failed to encode auth info: %w", err)
	}

	signDoc := txtypes.SignDoc{
		BodyBytes:     bodyBytes,
		AuthInfoBytes: authInfoBytes,
		ChainId:       chainID,
		AccountNumber: state.number,
	}
	signBytes, err := signDoc.Marshal()
	if err != nil {
		return nil, fmt.Errorf("failed to encode sign doc: %w", err)
	}
	signature, err := signer.Sign(options.AccountIndex, signBytes)
	if err != nil {
		return nil, err
	}

	raw := txtypes.TxRaw{BodyBytes: bodyBytes, AuthInfoBytes: authInfoBytes, Signatures: [][]byte{signature}}
	txBytes, err := raw.Marshal()
	if err != nil {
		return nil, fmt.Errorf("failed to encode tx: %w", err)
	}

	return c.broadcast(ctx, txBytes)
}

// ChainID returns the configured chain id or asks the node for it once.
func (c *Client) ChainID(ctx context.Context) (string, error) {
	c.chainIDMutex.Lock()
	defer c.chainIDMutex.Unlock()

	if c.chainID != "" {
		return c.chainID, nil
	}
	status, err := c.rpc.Status(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch node status: %w", err)
	}
	if strings.TrimSpace(status.NodeInfo.Network) == "" {
		return "", fmt.Errorf("node status did not include a chain id")
	}
	c.chainID = status.NodeInfo.Network
	return c.chainID, nil
}

func (c *Client) accountState(ctx context.Context, address string) (accountState, error) {
	request := authtypes.QueryAccountInfoRequest{Address: address}
	requestBytes, err := request.Marshal()
	if err != nil {
		return accountState{}, fmt.Errorf("failed to encode account request: %w", err)
	}

	value, err := c.abciQuery(ctx, accountInfoPath, requestBytes)
	if err != nil {
		return accountState{}, fmt.Errorf("account %s not found on chain: %w", address, err)
	}

	var response authtypes.QueryAccountInfoResponse
	if err := response.Unmarshal(value); err != nil {
		return accountState{}, fmt.Errorf("failed to decode account response: %w", err)
	}
	if response.Info == nil {
		return accountState{}, fmt.Errorf("account %s not found on chain", address)
	}
	return accountState{number: response.Info.AccountNumber, sequence: response.Info.Sequence}, nil
}

func (c *Client) resolveFee(
	ctx context.Context,
	fee *Fee,
	bodyBytes []byte,
	pubKey *codectypes.Any,
	sequence uint64,
) (StdFee, error) {
	multiplier := c.gasAdjustment
	if fee != nil {
		switch {
		case !fee.Amount.Empty() && fee.GasLimit > 0:
			return StdFee{Amount: fee.Amount.Sort(), GasLimit: fee.GasLimit}, nil
		case fee.GasLimit > 0:
			return CalculateFee(fee.GasLimit, c.gasPrice), nil
		case fee.Multiplier > 0:
			multiplier = fee.Multiplier
		}
	}

	gasUsed, err := c.simulate(ctx, bodyBytes, pubKey, sequence)
	if err != nil {
		return StdFee{}, err
	}
	gasLimit, err := adjustGas(gasUsed, multiplier)
	if err != nil {
		return StdFee{}, err
	}
	return CalculateFee(gasLimit, c.gasPrice), nil
}

func (c *Client) simulate(ctx context.Context, bodyBytes []byte, pubKey *codectypes.Any, sequence uint64) (uint64, error) {
	authInfoBytes, err := authInfo(pubKey, sequence, StdFee{}).Marshal()
	if err != nil {
		return 0, fmt.Errorf("failed to encode auth info: %w", err)
	}
	raw := txtypes.TxRaw{BodyBytes: bodyBytes, AuthInfoBytes: authInfoBytes, Signatures: [][]byte{{}}}
	txBytes, err := raw.Marshal()
	if err != nil {
		return 0, fmt.Errorf("failed to encode simulation tx: %w", err)
	}

	request := txtypes.SimulateRequest{TxBytes: txBytes}
	requestBytes, err := request.Marshal()
	if err != nil {
		return 0, fmt.Errorf("failed to encode simulate request: %w", err)
	}
	value, err := c.abciQuery(ctx, simulatePath, requestBytes)
	if err != nil {
		return 0, fmt.Errorf("simulation failed: %w", err)
	}

	var response txtypes.SimulateResponse
	if err := response.Unmarshal(value); err != nil {
		return 0, fmt.Errorf("failed to decode simulate response: %w", err)
	}
	if response.GasInfo == nil {
		return 0, fmt.Errorf("simulation returned no gas info")
	}
	return response.GasInfo.GasUsed, nil
}

func authInfo(pubKey *codectypes.Any, sequence uint64, fee StdFee) *txtypes.AuthInfo {
	return &txtypes.AuthInfo{
		SignerInfos: []*txtypes.SignerInfo{{
			PublicKey: pubKey,
			ModeInfo: &txtypes.ModeInfo{
				Sum: &txtypes.ModeInfo_Single_{
					Single: &txtypes.ModeInfo_Single{Mode: signing.SignMode_SIGN_MODE_DIRECT},
				},
			},
			Sequence: sequence,
		}},
		Fee: &txtypes.Fee{Amount: fee.Amount, GasLimit: fee.GasLimit},
	}
}

func (c *Client) broadcast(ctx context.Context, txBytes []byte) (*ExecuteResult, error) {
	checked, err := c.rpc.BroadcastTxSync(ctx, cmttypes.Tx(txBytes))
	if err != nil {
		return nil, fmt.Errorf("broadcast failed: %w", err)
	}
	hash := cmttypes.Tx(txBytes).Hash()
	txHash := strings.ToUpper(hex.EncodeToString(hash))
	if checked.Code != 0 {
		return nil, &TxError{TxHash: txHash, Codespace: checked.Codespace, Code: checked.Code, Log: checked.Log}
	}

	shared.Logger().Debug().Str("tx_hash", txHash).Msg("transaction broadcast, waiting for inclusion")
	return c.waitForTx(ctx, hash, txHash)
}

func (c *Client) waitForTx(ctx context.Context, hash []byte, txHash string) (*ExecuteResult, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.pollInterval
	policy.MaxInterval = 5 * c.pollInterval
	policy.MaxElapsedTime = c.broadcastTimeout

	var result *ExecuteResult
	operation := func() error {
		included, err := c.rpc.Tx(ctx, hash, false)
		if err != nil {
			return err
		}
		if included.TxResult.Code != 0 {
			return backoff.Permanent(&TxError{
				TxHash:    txHash,
				Codespace: included.TxResult.Codespace,
				Code:      included.TxResult.Code,
				Log:       included.TxResult.Log,
			})
		}
		result = &ExecuteResult{
			TxHash:    txHash,
			Height:    included.Height,
			GasWanted: included.TxResult.GasWanted,
			GasUsed:   included.TxResult.GasUsed,
			Events:    convertEvents(included.TxResult.Events),
			Logs:      included.TxResult.Log,
		}
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		var txErr *TxError
		if errors.As(err, &txErr) {
			return nil, txErr
		}
		return nil, fmt.Errorf(
			"transaction %s was submitted but was not yet found on the chain after %s: %w",
			txHash,
			c.broadcastTimeout,
			err,
		)
	}
	return result, nil
}
