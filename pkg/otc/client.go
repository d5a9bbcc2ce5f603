package otc

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/atlo-labs/fuzion-sdk-go/pkg/paging"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/shared"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/token"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/wasm"
)

const DefaultListLimit uint32 = 20

// ListOptions pages the escrow list queries. A zero Limit means
// DefaultListLimit. Expired escrows are left out unless IncludeExpired is
// set; the creator and recipient lists ignore it.
type ListOptions struct {
	StartAfter     json.RawMessage
	Limit          uint32
	SortAsc        *bool
	IncludeExpired bool
}

func (options ListOptions) limit() uint32 {
	if options.Limit == 0 {
		return DefaultListLimit
	}
	return options.Limit
}

type Options struct {
	// Assets is where the trusted asset list comes from, normally the
	// utilities contract client.
	Assets token.Source
	Cache  token.AssetCache
}

// Client executes and queries the OTC contract.
type Client struct {
	*wasm.Contract

	assets token.Source
	cache  token.AssetCache

	trustedMutex sync.Mutex
	trusted      []token.Properties
}

func NewClient(address string, caller wasm.Caller, signer wasm.Signer, options Options) (*Client, error) {
	contract, err := wasm.NewContract(address, shared.ContractOTC, caller, signer)
	if err != nil {
		return nil, err
	}
	return &Client{
		Contract: contract,
		assets:   options.Assets,
		cache:    options.Cache,
	}, nil
}

// ExecuteCreate opens an escrow offering funds at details.AskingPrice.
func (c *Client) ExecuteCreate(ctx context.Context, details EscrowDetailsLite, funds sdk.Coins, options wasm.ExecuteOptions) (*wasm.ExecuteResult, error) {
	options.Funds = funds
	return c.Execute(ctx, CreateMsg(details), options)
}

// ExecuteRefund refunds an open escrow. With an arbiter set only the arbiter
// may refund; otherwise the creator can.
func (c *Client) ExecuteRefund(ctx context.Context, id uint64, options wasm.ExecuteOptions) (*wasm.ExecuteResult, error) {
	return c.Execute(ctx, RefundMsg(id), options)
}

func (c *Client) ExecuteSetReceiver(ctx context.Context, id uint64, receiver string, options wasm.ExecuteOptions) (*wasm.ExecuteResult, error) {
	return c.Execute(ctx, SetRecipientMsg(id, receiver), options)
}

// ExecuteReceiverDeposit fills an escrow with funds.
func (c *Client) ExecuteReceiverDeposit(ctx context.Context, id uint64, funds sdk.Coins, options wasm.ExecuteOptions) (*wasm.ExecuteResult, error) {
	options.Funds = funds
	return c.Execute(ctx, ReceiverDepositMsg(id), options)
}

func (c *Client) ExecuteApprove(ctx context.Context, id uint64, options wasm.ExecuteOptions) (*wasm.ExecuteResult, error) {
	return c.Execute(ctx, ApproveMsg(id), options)
}

// ExecuteConfigUpdate proposes config. It only takes effect once confirmed.
func (c *Client) ExecuteConfigUpdate(ctx context.Context, config Config, options wasm.ExecuteOptions) (*wasm.ExecuteResult, error) {
	return c.Execute(ctx, UpdateConfigMsg(config), options)
}

func (c *Client) ExecuteConfirmPendingConfig(ctx context.Context, options wasm.ExecuteOptions) (*wasm.ExecuteResult, error) {
	return c.Execute(ctx, ConfirmConfigMsg(), options)
}

func (c *Client) QueryConfig(ctx context.Context) (Config, error) {
	var config Config
	err := c.Query(ctx, ConfigQuery(), &config)
	return config, err
}

func (c *Client) QueryPendingConfig(ctx context.Context) (ConfigAndPending, error) {
	var result ConfigAndPending
	err := c.Query(ctx, PendingConfigQuery(), &result)
	return result, err
}

// QueryMarketEscrow returns the escrow with id, enriched against the trusted
// assets. Failures come back as *wasm.ContractQueryError.
func (c *Client) QueryMarketEscrow(ctx context.Context, id uint64) (RichEscrowDetails, error) {
	message := fmt.Sprintf("No Escrow found for the provided id: %d.", id)

	var escrow EscrowDetails
	if err := c.Query(ctx, EscrowQuery(id), &escrow); err != nil {
		return RichEscrowDetails{}, c.QueryError(err, message)
	}
	rich, err := c.enrichEscrow(ctx, escrow)
	if err != nil {
		return RichEscrowDetails{}, c.QueryError(err, message)
	}
	return rich, nil
}

// QueryMarketEscrowList lists escrows that have no recipient, so anyone can
// fill them.
func (c *Client) QueryMarketEscrowList(ctx context.Context, options ListOptions) (paging.Result[[]EscrowDetails], error) {
	msg := MarketEscrowActiveListQuery(options.StartAfter, options.limit(), options.SortAsc)
	if options.IncludeExpired {
		msg = MarketEscrowListQuery(options.StartAfter, options.limit(), options.SortAsc)
	}
	return c.queryEscrowPage(ctx, msg)
}

// QueryPairsList lists escrows swapping pair[0] for pair[1].
func (c *Client) QueryPairsList(ctx context.Context, pair [2]string, options ListOptions) (paging.Result[[]EscrowDetails], error) {
	msg := ActivePairsListQuery(pair[:], options.StartAfter, options.limit(), options.SortAsc)
	if options.IncludeExpired {
		msg = PairsListQuery(pair[:], options.StartAfter, options.limit(), options.SortAsc)
	}
	return c.queryEscrowPage(ctx, msg)
}

func (c *Client) QueryCreatorEscrowList(ctx context.Context, creator string, options ListOptions) (paging.Result[[]EscrowDetails], error) {
	return c.queryEscrowPage(ctx, CreatorEscrowListQuery(creator, options.StartAfter, options.limit(), options.SortAsc))
}

func (c *Client) QueryRecipientEscrowList(ctx context.Context, recipient string, options ListOptions) (paging.Result[[]EscrowDetails], error) {
	return c.queryEscrowPage(ctx, RecipientEscrowListQuery(recipient, options.StartAfter, options.limit(), options.SortAsc))
}

// QueryPairsCount returns the pairs that have escrows, with a count per
// pair. Only active escrows are counted unless includeExpired is set.
func (c *Client) QueryPairsCount(ctx context.Context, includeExpired bool) ([]PairCount, error) {
	msg := ActivePairsCountQuery()
	if includeExpired {
		msg = PairsCountQuery()
	}
	var result pairsCountResponse
	if err := c.Query(ctx, msg, &result); err != nil {
		return nil, err
	}
	return result.Pairs, nil
}

// TrustedAssets returns the assets used for enrichment. A non-empty list is
// fetched once per client; an empty one is fetched again on the next call.
func (c *Client) TrustedAssets(ctx context.Context) ([]token.Properties, error) {
	c.trustedMutex.Lock()
	defer c.trustedMutex.Unlock()

	if len(c.trusted) > 0 {
		return c.trusted, nil
	}
	if c.assets == nil && c.cache == nil {
		return nil, fmt.Errorf("no trusted asset source configured for the otc client")
	}
	assets, err := token.TrustedAssets(ctx, c.assets, c.cache)
	if err != nil {
		return nil, err
	}
	if len(assets) > 0 {
		c.trusted = assets
	}
	return assets, nil
}

// RichTokenBalance enriches a single balance against the trusted assets.
func (c *Client) RichTokenBalance(ctx context.Context, coin sdk.Coin) (RichTokenBalance, error) {
	assets, err := c.TrustedAssets(ctx)
	if err != nil {
		return RichTokenBalance{}, err
	}
	return token.EnrichTradeBalance(coin.Amount, coin.Denom, assets), nil
}

// EnrichEscrows enriches a page of escrows, keeping their order.
func (c *Client) EnrichEscrows(ctx context.Context, escrows []EscrowDetails) ([]RichEscrowDetails, error) {
	enriched := make([]RichEscrowDetails, 0, len(escrows))
	for _, escrow := range escrows {
		rich, err := c.enrichEscrow(ctx, escrow)
		if err != nil {
			return nil, err
		}
		enriched = append(enriched, rich)
	}
	return enriched, nil
}

func (c *Client) queryEscrowPage(ctx context.Context, msg map[string]any) (paging.Result[[]EscrowDetails], error) {
	var result paging.Result[[]EscrowDetails]
	err := c.Query(ctx, msg, &result)
	return result, err
}

func (c *Client) enrichEscrow(ctx context.Context, escrow EscrowDetails) (RichEscrowDetails, error) {
	assets, err := c.TrustedAssets(ctx)
	if err != nil {
		return RichEscrowDetails{}, err
	}

	return RichEscrowDetails{
		ID:               escrow.ID,
		Creator:          escrow.Creator,
		CreatedAt:        escrow.CreatedAt,
		Arbiter:          escrow.Arbiter,
		Recipient:        escrow.Recipient,
		Title:            escrow.Title,
		Description:      escrow.Description,
		EndHeight:        escrow.EndHeight,
		EndTime:          escrow.EndTime,
		CreatorBalance:   enrichCoins(escrow.CreatorBalance, assets),
		AskingPrice:      token.EnrichTradeBalance(escrow.AskingPrice.Amount, escrow.AskingPrice.Denom, assets),
		RecipientBalance: enrichCoins(escrow.RecipientBalance, assets),
		Status:           escrow.Status,
	}, nil
}

func enrichCoins(coins sdk.Coins, assets []token.Properties) []RichTokenBalance {
	enriched := make([]RichTokenBalance, 0, len(coins))
	for _, coin := range coins {
		enriched = append(enriched, token.EnrichTradeBalance(coin.Amount, coin.Denom, assets))
	}
	return enriched
}
