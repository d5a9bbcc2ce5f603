package langchaingo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tmc/langchaingo/callbacks"
	"github.com/tmc/langchaingo/tools"

	"github.com/atlo-labs/fuzion-sdk-go/pkg/otc"
)

var errNoClient = errors.New("no otc client configured")

// EscrowQuerier is the part of *otc.Client the tools use.
type EscrowQuerier interface {
	QueryMarketEscrow(ctx context.Context, id uint64) (otc.RichEscrowDetails, error)
	QueryPairsCount(ctx context.Context, includeExpired bool) ([]otc.PairCount, error)
}

// EscrowLookupTool is a langchaingo Tool that returns a Fuzion OTC escrow.
type EscrowLookupTool struct {
	client    EscrowQuerier
	Callbacks callbacks.Handler
}

var _ tools.Tool = &EscrowLookupTool{}

func NewEscrowLookupTool(client EscrowQuerier) *EscrowLookupTool {
	return &EscrowLookupTool{client: client}
}

func (t *EscrowLookupTool) Name() string {
	return "Fuzion_OTC_Escrow_Lookup"
}

func (t *EscrowLookupTool) Description() string {
	return `Looks up a Fuzion OTC escrow on Kujira by its numeric id and returns it as JSON, including the creator, recipient, status, deposited balances and asking price with token symbols.
Input must be the escrow id, for example: 42`
}

// Call looks up the escrow whose id is input. Lookup failures are reported
// to the model as text rather than as an error.
func (t *EscrowLookupTool) Call(ctx context.Context, input string) (string, error) {
	t.start(ctx, input)
	if missingClient(t.client) {
		return t.fail(ctx, errNoClient)
	}

	id, err := strconv.ParseUint(strings.TrimSpace(input), 10, 64)
	if err != nil {
		return t.fail(ctx, fmt.Errorf("escrow id must be a whole number, got %q", input))
	}
	escrow, err := t.client.QueryMarketEscrow(ctx, id)
	if err != nil {
		return t.fail(ctx, err)
	}
	return t.finish(ctx, escrow)
}

func (t *EscrowLookupTool) start(ctx context.Context, input string) {
	if t.Callbacks != nil {
		t.Callbacks.HandleToolStart(ctx, input)
	}
}

func (t *EscrowLookupTool) fail(ctx context.Context, err error) (string, error) {
	if t.Callbacks != nil {
		t.Callbacks.HandleToolError(ctx, err)
	}
	return fmt.Sprintf("Failed to look up escrow: %v", err), nil
}

func (t *EscrowLookupTool) finish(ctx context.Context, value any) (string, error) {
	output, err := encode(value)
	if err != nil {
		return "", err
	}
	if t.Callbacks != nil {
		t.Callbacks.HandleToolEnd(ctx, output)
	}
	return output, nil
}

// PairsCountTool is a langchaingo Tool listing the pairs that have escrows.
type PairsCountTool struct {
	client    EscrowQuerier
	Callbacks callbacks.Handler
}

var _ tools.Tool = &PairsCountTool{}

func NewPairsCountTool(client EscrowQuerier) *PairsCountTool {
	return &PairsCountTool{client: client}
}

func (t *PairsCountTool) Name() string {
	return "Fuzion_OTC_Pairs_Count"
}

func (t *PairsCountTool) Description() string {
	return `Lists the token pairs that have Fuzion OTC escrows on Kujira with the number of escrows per pair, as JSON.
Input "all" includes expired escrows; any other input counts only active ones.`
}

func (t *PairsCountTool) Call(ctx context.Context, input string) (string, error) {
	if t.Callbacks != nil {
		t.Callbacks.HandleToolStart(ctx, input)
	}
	var pairs []otc.PairCount
	err := errNoClient
	if !missingClient(t.client) {
		includeExpired := strings.EqualFold(strings.TrimSpace(input), "all")
		pairs, err = t.client.QueryPairsCount(ctx, includeExpired)
	}
	if err != nil {
		if t.Callbacks != nil {
			t.Callbacks.HandleToolError(ctx, err)
		}
		return fmt.Sprintf("Failed to count pairs: %v", err), nil
	}

	output, err := encode(pairs)
	if err != nil {
		return "", err
	}
	if t.Callbacks != nil {
		t.Callbacks.HandleToolEnd(ctx, output)
	}
	return output, nil
}

// missingClient also catches a nil *otc.Client stored in the interface.
func missingClient(client EscrowQuerier) bool {
	if client == nil {
		return true
	}
	typed, ok := client.(*otc.Client)
	return ok && typed == nil
}

func encode(value any) (string, error) {
	jsonData, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result to JSON: %w", err)
	}
	return string(jsonData), nil
}
