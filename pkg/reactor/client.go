package reactor

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/atlo-labs/fuzion-sdk-go/pkg/shared"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/wasm"
)

// Client executes messages on the reactor contract.
type Client struct {
	*wasm.Contract
}

func NewClient(address string, caller wasm.Caller, signer wasm.Signer) (*Client, error) {
	contract, err := wasm.NewContract(address, shared.ContractReactor, caller, signer)
	if err != nil {
		return nil, err
	}
	return &Client{Contract: contract}, nil
}

func (c *Client) ExecuteUpdateAdmin(ctx context.Context, admin string, options wasm.ExecuteOptions) (*wasm.ExecuteResult, error) {
	if admin == "" {
		return nil, fmt.Errorf("admin address is required")
	}
	return c.Execute(ctx, UpdateAdminMsg(admin), options)
}

// ExecuteFundsDeposit deposits funds into the reactor.
func (c *Client) ExecuteFundsDeposit(ctx context.Context, funds sdk.Coins, options wasm.ExecuteOptions) (*wasm.ExecuteResult, error) {
	options.Funds = funds
	return c.Execute(ctx, FundsDepositMsg(), options)
}

func (c *Client) ExecuteFundsUnbond(ctx context.Context, tokens sdkmath.Uint, options wasm.ExecuteOptions) (*wasm.ExecuteResult, error) {
	if tokens == (sdkmath.Uint{}) || tokens.IsZero() {
		return nil, fmt.Errorf("unbond amount must be positive")
	}
	return c.Execute(ctx, FundsUnbondMsg(tokens), options)
}

func (c *Client) ExecuteFundsWithdraw(ctx context.Context, options wasm.ExecuteOptions) (*wasm.ExecuteResult, error) {
	return c.Execute(ctx, FundsWithdrawMsg(), options)
}

func (c *Client) ExecuteFundsClaim(ctx context.Context, options wasm.ExecuteOptions) (*wasm.ExecuteResult, error) {
	return c.Execute(ctx, FundsClaimMsg(), options)
}

func (c *Client) ExecuteTokensDeposit(ctx context.Context, funds sdk.Coins, options wasm.ExecuteOptions) (*wasm.ExecuteResult, error) {
	options.Funds = funds
	return c.Execute(ctx, TokensDepositMsg(), options)
}

func (c *Client) ExecuteTokensClaim(ctx context.Context, options wasm.ExecuteOptions) (*wasm.ExecuteResult, error) {
	return c.Execute(ctx, TokensClaimMsg(), options)
}
