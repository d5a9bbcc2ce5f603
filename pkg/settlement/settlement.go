package settlement

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	sdkmath "cosmossdk.io/math"

	"github.com/atlo-labs/fuzion-sdk-go/pkg/otc"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/shared"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/token"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/wasm"
)

// Terms are the two sides of an escrow: what the creator deposits and what
// the receiver pays for it.
type Terms struct {
	CreatorAmount  sdkmath.Int
	CreatorDenom   string
	ReceiverAmount sdkmath.Int
	ReceiverDenom  string
}

type Snapshot struct {
	Wallet   string
	Balances []token.Balance
}

type Snapshots struct {
	Creator       Snapshot
	Receiver      Snapshot
	FeeCollectors []Snapshot
}

// BalanceFetcher returns the token balances held by address.
// fuzion.Client.WalletBalances satisfies it.
type BalanceFetcher func(ctx context.Context, address string) ([]token.Balance, error)

// EscrowIDFromResult returns the id attribute of the event carrying
// action=create, or -1 when the transaction created no escrow.
func EscrowIDFromResult(result *wasm.ExecuteResult) int64 {
	if result == nil {
		return -1
	}
	for _, event := range result.Events {
		action, ok := event.Attribute("action")
		if !ok || action != "create" {
			continue
		}
		rawID, ok := event.Attribute("id")
		if !ok {
			return -1
		}
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			return -1
		}
		return id
	}
	return -1
}

// AssertEscrowDetails compares a queried escrow with the details it was
// created from.
func AssertEscrowDetails(
	escrow otc.RichEscrowDetails,
	expected otc.EscrowDetailsLite,
	creator string,
	recipient string,
	status string,
	ignoreRecipient bool,
) error {
	problems := make([]string, 0)
	compare := func(field string, want string, got string) {
		if want != got {
			problems = append(problems, fmt.Sprintf("%s: expected %q but found %q", field, want, got))
		}
	}

	compare("title", expected.Title, escrow.Title)
	compare("description", expected.Description, escrow.Description)
	compare("arbiter", expected.Arbiter, escrow.Arbiter)
	compare("creator", creator, escrow.Creator)
	if !ignoreRecipient {
		compare("recipient", recipient, escrow.Recipient)
	}
	if !orZero(expected.AskingPrice.Amount).Equal(orZero(escrow.AskingPrice.BaseAmount)) {
		problems = append(problems, fmt.Sprintf("asking price: expected %s but found %s",
			orZero(expected.AskingPrice.Amount), orZero(escrow.AskingPrice.BaseAmount)))
	}
	compare("asking denom", expected.AskingPrice.Denom, escrow.AskingPrice.BaseDenom)
	compare("status", status, escrow.Status)

	return newMismatch("escrow compared, the following fields were incorrect", problems)
}

// AssertUserBalances checks both sides of a settled escrow: each wallet lost
// what it deposited and gained the other side's deposit less its fee.
func AssertUserBalances(
	creatorSnapshot []token.Balance,
	receiverSnapshot []token.Balance,
	creatorCurrent []token.Balance,
	receiverCurrent []token.Balance,
	terms Terms,
	config otc.Config,
) error {
	checks := []error{
		AssertDepositingBalance(creatorSnapshot, creatorCurrent, terms.CreatorDenom, terms.CreatorAmount, "creator"),
		AssertDepositingBalance(receiverSnapshot, receiverCurrent, terms.ReceiverDenom, terms.ReceiverAmount, "receiver"),
		AssertReceivingBalance(creatorSnapshot, creatorCurrent, terms.ReceiverDenom, terms.ReceiverAmount, config.Fees.Creator, "creator"),
		AssertReceivingBalance(receiverSnapshot, receiverCurrent, terms.CreatorDenom, terms.CreatorAmount, config.Fees.Receiver, "receiver"),
	}
	return newMismatch("balances compared, the following balances were incorrect", collectProblems(checks))
}

// AssertDepositingBalance checks that the denom balance dropped by amount.
func AssertDepositingBalance(snapshot []token.Balance, current []token.Balance, denom string, amount sdkmath.Int, side string) error {
	expected := baseAmount(snapshot, denom).Sub(orZero(amount))
	found := baseAmount(current, denom)
	if expected.Equal(found) {
		return nil
	}
	return newMismatch("deposit balance", []string{fmt.Sprintf(
		"the %s balance of %s they deposited is incorrect: expected %s but found %s", side, denom, expected, found)})
}

// AssertReceivingBalance checks that the denom balance grew by amount less
// a fee percentage.
func AssertReceivingBalance(snapshot []token.Balance, current []token.Balance, denom string, amount sdkmath.Int, feePercent uint64, side string) error {
	expected := baseAmount(snapshot, denom).Add(AfterFee(amount, feePercent))
	found := baseAmount(current, denom)
	if expected.Equal(found) {
		return nil
	}
	return newMismatch("receive balance", []string{fmt.Sprintf(
		"the %s balance of %s they received is incorrect: expected %s but found %s", side, denom, expected, found)})
}

// AssertCommissions fetches every fee collector's balances and checks each
// gained its percentage of the fee taken from both sides.
func AssertCommissions(ctx context.Context, fetch BalanceFetcher, terms Terms, config otc.Config, collectors []Snapshot) error {
	if fetch == nil {
		return errors.New("balance fetcher is required")
	}
	logger := shared.Logger()
	problems := make([]string, 0)

	for _, collector := range collectors {
		percentage, ok := collectorPercentage(config, collector.Wallet)
		if !ok {
			problems = append(problems, fmt.Sprintf("%s is not a fee collector in the config", collector.Wallet))
			continue
		}
		current, err := fetch(ctx, collector.Wallet)
		if err != nil {
			return fmt.Errorf("failed to fetch balances of %s: %w", collector.Wallet, err)
		}

		sides := []struct {
			denom  string
			amount sdkmath.Int
			fee    uint64
		}{
			{denom: terms.ReceiverDenom, amount: terms.ReceiverAmount, fee: config.Fees.Creator},
			{denom: terms.CreatorDenom, amount: terms.CreatorAmount, fee: config.Fees.Receiver},
		}
		for _, side := range sides {
			share := CollectorShare(side.amount, side.fee, percentage)
			snapshot := baseAmount(collector.Balances, side.denom)
			found := baseAmount(current, side.denom)
			expected := snapshot.Add(share)

			logger.Debug().
				Str("collector", collector.Wallet).
				Str("denom", side.denom).
				Str("commission", share.String()).
				Str("snapshot", snapshot.String()).
				Str("current", found.String()).
				Msg("checking commission")

			if !expected.Equal(found) {
				problems = append(problems, fmt.Sprintf(
					"collector %s has the wrong balance: expected %s%s but found %s%s",
					collector.Wallet, expected, side.denom, found, side.denom))
			}
		}
	}
	return newMismatch("fee collector balances compared, the following balances were incorrect", problems)
}

// TakeSnapshots records the balances of both parties and every fee
// collector before a trade.
func TakeSnapshots(ctx context.Context, fetch BalanceFetcher, creator string, receiver string, collectors []otc.FeeCollector) (Snapshots, error) {
	if fetch == nil {
		return Snapshots{}, errors.New("balance fetcher is required")
	}
	take := func(address string) (Snapshot, error) {
		balances, err := fetch(ctx, address)
		if err != nil {
			return Snapshot{}, fmt.Errorf("failed to fetch balances of %s: %w", address, err)
		}
		return Snapshot{Wallet: address, Balances: balances}, nil
	}

	var snapshots Snapshots
	var err error
	if snapshots.Creator, err = take(creator); err != nil {
		return Snapshots{}, err
	}
	if snapshots.Receiver, err = take(receiver); err != nil {
		return Snapshots{}, err
	}
	snapshots.FeeCollectors = make([]Snapshot, 0, len(collectors))
	for _, collector := range collectors {
		snapshot, err := take(collector.Address)
		if err != nil {
			return Snapshots{}, err
		}
		snapshots.FeeCollectors = append(snapshots.FeeCollectors, snapshot)
	}
	return snapshots, nil
}

// AfterFee is amount less feePercent percent, truncated.
func AfterFee(amount sdkmath.Int, feePercent uint64) sdkmath.Int {
	if feePercent >= 100 {
		return sdkmath.ZeroInt()
	}
	return orZero(amount).MulRaw(int64(100 - feePercent)).QuoRaw(100)
}

// CollectorShare is the part of the feePercent fee on amount that goes to a
// collector entitled to collectorPercent of it.
func CollectorShare(amount sdkmath.Int, feePercent uint64, collectorPercent uint64) sdkmath.Int {
	fee := orZero(amount).Sub(AfterFee(amount, feePercent))
	return fee.Mul(sdkmath.NewIntFromUint64(collectorPercent)).QuoRaw(100)
}

func collectorPercentage(config otc.Config, address string) (uint64, bool) {
	for _, collector := range config.FeeCollectors {
		if collector.Address == address {
			return collector.Percentage, true
		}
	}
	return 0, false
}

// baseAmount is the balance of denom, zero when the wallet holds none.
func baseAmount(balances []token.Balance, denom string) sdkmath.Int {
	for _, balance := range balances {
		if balance.BaseDenom == denom {
			return orZero(balance.BaseAmount)
		}
	}
	return sdkmath.ZeroInt()
}

func orZero(value sdkmath.Int) sdkmath.Int {
	if value.IsNil() {
		return sdkmath.ZeroInt()
	}
	return value
}

func collectProblems(checks []error) []string {
	problems := make([]string, 0)
	for _, check := range checks {
		if check == nil {
			continue
		}
		var mismatch *MismatchError
		if errors.As(check, &mismatch) {
			problems = append(problems, mismatch.Problems...)
			continue
		}
		problems = append(problems, check.Error())
	}
	return problems
}
