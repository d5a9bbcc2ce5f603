package settlement

import (
	"context"
	"errors"
	"strings"
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/atlo-labs/fuzion-sdk-go/pkg/otc"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/token"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/wasm"
)

func balance(denom string, amount int64) token.Balance {
	return token.Balance{BaseDenom: denom, BaseAmount: sdkmath.NewInt(amount)}
}

func testConfig() otc.Config {
	return otc.Config{
		Fees: otc.Fees{Creator: 1, Receiver: 2},
		FeeCollectors: []otc.FeeCollector{
			{Address: "kujira1collectora", Percentage: 60},
			{Address: "kujira1collectorb", Percentage: 40},
		},
	}
}

func testTerms() Terms {
	return Terms{
		CreatorAmount:  sdkmath.NewInt(1_000_000),
		CreatorDenom:   "uusk",
		ReceiverAmount: sdkmath.NewInt(2_000_000),
		ReceiverDenom:  "udemo",
	}
}

func TestEscrowIDFromResult(t *testing.T) {
	result := &wasm.ExecuteResult{Events: wasm.Events{
		{Type: "message", Attributes: []wasm.Attribute{{Key: "action", Value: "/cosmwasm.wasm.v1.MsgExecuteContract"}}},
		{Type: "wasm", Attributes: []wasm.Attribute{
			{Key: "_contract_address", Value: "kujira1otc"},
			{Key: "action", Value: "create"},
			{Key: "id", Value: "42"},
		}},
	}}
	if id := EscrowIDFromResult(result); id != 42 {
		t.Fatalf("expected 42, got %d", id)
	}

	missing := []*wasm.ExecuteResult{
		nil,
		{},
		{Events: wasm.Events{{Type: "wasm", Attributes: []wasm.Attribute{{Key: "action", Value: "approve"}, {Key: "id", Value: "1"}}}}},
		{Events: wasm.Events{{Type: "wasm", Attributes: []wasm.Attribute{{Key: "action", Value: "create"}, {Key: "id", Value: "x"}}}}},
	}
	for index, candidate := range missing {
		if id := EscrowIDFromResult(candidate); id != -1 {
			t.Fatalf("case %d: expected -1, got %d", index, id)
		}
	}
}

func TestAssertEscrowDetails(t *testing.T) {
	expected := otc.EscrowDetailsLite{
		Arbiter:     "kujira1arbiter",
		Title:       "usk for demo",
		Description: "test trade",
		AskingPrice: sdk.NewInt64Coin("udemo", 2_000_000),
	}
	escrow := otc.RichEscrowDetails{
		Creator:     "kujira1creator",
		Recipient:   "kujira1recipient",
		Arbiter:     "kujira1arbiter",
		Title:       "usk for demo",
		Description: "test trade",
		AskingPrice: balance("udemo", 2_000_000),
		Status:      otc.StatusCompleted,
	}

	if err := AssertEscrowDetails(escrow, expected, "kujira1creator", "kujira1recipient", otc.StatusCompleted, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := AssertEscrowDetails(escrow, expected, "kujira1creator", "kujira1other", otc.StatusCompleted, true); err != nil {
		t.Fatalf("expected recipient to be ignored, got %v", err)
	}

	escrow.Title = "changed"
	escrow.AskingPrice = balance("ukuji", 5)
	err := AssertEscrowDetails(escrow, expected, "kujira1creator", "kujira1other", otc.StatusActive, false)
	var mismatch *MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected MismatchError, got %v", err)
	}
	if len(mismatch.Problems) != 5 {
		t.Fatalf("expected 5 problems, got %v", mismatch.Problems)
	}
	for _, field := range []string{"title", "recipient", "asking price", "asking denom", "status"} {
		if !strings.Contains(err.Error(), field+":") {
			t.Fatalf("expected %s in %q", field, err.Error())
		}
	}
}

func TestAssertUserBalances(t *testing.T) {
	terms := testTerms()
	config := testConfig()
	creatorBefore := []token.Balance{balance("uusk", 5_000_000), balance("udemo", 10)}
	receiverBefore := []token.Balance{balance("udemo", 3_000_000)}

	creatorAfter := []token.Balance{balance("uusk", 4_000_000), balance("udemo", 10+1_980_000)}
	receiverAfter := []token.Balance{balance("udemo", 1_000_000), balance("uusk", 980_000)}

	if err := AssertUserBalances(creatorBefore, receiverBefore, creatorAfter, receiverAfter, terms, config); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	receiverAfter[1] = balance("uusk", 1_000_000)
	err := AssertUserBalances(creatorBefore, receiverBefore, creatorAfter, receiverAfter, terms, config)
	var mismatch *MismatchError
	if !errors.As(err, &mismatch) || len(mismatch.Problems) != 1 {
		t.Fatalf("expected one problem, got %v", err)
	}
	if !strings.Contains(mismatch.Problems[0], "expected 980000 but found 1000000") {
		t.Fatalf("unexpected problem %q", mismatch.Problems[0])
	}
}

func TestAssertDepositingBalanceMissingDenom(t *testing.T) {
	err := AssertDepositingBalance([]token.Balance{balance("uusk", 100)}, nil, "uusk", sdkmath.NewInt(100), "creator")
	if err != nil {
		t.Fatalf("expected a fully spent balance to pass, got %v", err)
	}
	if err := AssertDepositingBalance(nil, nil, "uusk", sdkmath.NewInt(1), "creator"); err == nil {
		t.Fatal("expected error")
	}
}

func TestAfterFeeAndCollectorShare(t *testing.T) {
	if got := AfterFee(sdkmath.NewInt(1_000_000), 2); !got.Equal(sdkmath.NewInt(980_000)) {
		t.Fatalf("unexpected after fee %s", got)
	}
	if got := AfterFee(sdkmath.NewInt(999), 1); !got.Equal(sdkmath.NewInt(989)) {
		t.Fatalf("expected truncation, got %s", got)
	}
	if got := AfterFee(sdkmath.NewInt(10), 100); !got.IsZero() {
		t.Fatalf("expected zero, got %s", got)
	}
	if got := AfterFee(sdkmath.Int{}, 1); !got.IsZero() {
		t.Fatalf("expected zero for nil amount, got %s", got)
	}
	if got := CollectorShare(sdkmath.NewInt(1_000_000), 2, 60); !got.Equal(sdkmath.NewInt(12_000)) {
		t.Fatalf("unexpected share %s", got)
	}
}

func TestAssertCommissions(t *testing.T) {
	terms := testTerms()
	config := testConfig()
	before := map[string][]token.Balance{
		"kujira1collectora": {balance("uusk", 100)},
		"kujira1collectorb": {},
	}
	// creator pays 1% of 2,000,000 udemo, receiver pays 2% of 1,000,000 uusk
	after := map[string][]token.Balance{
		"kujira1collectora": {balance("uusk", 100+12_000), balance("udemo", 12_000)},
		"kujira1collectorb": {balance("uusk", 8_000), balance("udemo", 8_000)},
	}
	fetch := func(_ context.Context, address string) ([]token.Balance, error) {
		return after[address], nil
	}

	snapshots, err := TakeSnapshots(context.Background(), func(_ context.Context, address string) ([]token.Balance, error) {
		return before[address], nil
	}, "kujira1creator", "kujira1receiver", config.FeeCollectors)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snapshots.FeeCollectors) != 2 || snapshots.Creator.Wallet != "kujira1creator" || snapshots.Receiver.Wallet != "kujira1receiver" {
		t.Fatalf("unexpected snapshots %+v", snapshots)
	}

	if err := AssertCommissions(context.Background(), fetch, terms, config, snapshots.FeeCollectors); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after["kujira1collectorb"] = []token.Balance{balance("uusk", 8_000)}
	err = AssertCommissions(context.Background(), fetch, terms, config, snapshots.FeeCollectors)
	if err == nil || !strings.Contains(err.Error(), "expected 8000udemo but found 0udemo") {
		t.Fatalf("unexpected error %v", err)
	}

	unknown := []Snapshot{{Wallet: "kujira1stranger"}}
	if err := AssertCommissions(context.Background(), fetch, terms, config, unknown); err == nil {
		t.Fatal("expected error for unknown collector")
	}
}

func TestFetchErrorsPropagate(t *testing.T) {
	failing := func(context.Context, string) ([]token.Balance, error) {
		return nil, errors.New("lcd unavailable")
	}
	if _, err := TakeSnapshots(context.Background(), failing, "a", "b", nil); err == nil || !strings.Contains(err.Error(), "lcd unavailable") {
		t.Fatalf("unexpected error %v", err)
	}
	if _, err := TakeSnapshots(context.Background(), nil, "a", "b", nil); err == nil {
		t.Fatal("expected error for nil fetcher")
	}
	collectors := []Snapshot{{Wallet: "kujira1collectora"}}
	if err := AssertCommissions(context.Background(), failing, testTerms(), testConfig(), collectors); err == nil {
		t.Fatal("expected fetch error")
	}
}
