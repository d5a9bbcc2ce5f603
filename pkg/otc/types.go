package otc

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/atlo-labs/fuzion-sdk-go/pkg/token"
)

// Escrow statuses reported by the contract.
const (
	StatusActive    = "Active"
	StatusCompleted = "Completed"
)

type Admins struct {
	ConfigAdmin  string `json:"config_admin"`
	ConfirmAdmin string `json:"confirm_admin"`
}

// Fees are percentages taken from each side of a completed escrow.
type Fees struct {
	Creator  uint64 `json:"creator"`
	Receiver uint64 `json:"receiver"`
}

type FeeCollector struct {
	Address    string `json:"address"`
	Percentage uint64 `json:"percentage"`
}

type Config struct {
	Admins        Admins         `json:"admins"`
	Fees          Fees           `json:"fees"`
	FeeCollectors []FeeCollector `json:"fee_collectors"`
}

type ConfigAndPending struct {
	Config        Config  `json:"config"`
	PendingConfig *Config `json:"pending_config"`
}

// EscrowDetailsLite holds the fields needed to create an escrow. EndTime is
// an epoch time; the contract caps it at two days from creation.
type EscrowDetailsLite struct {
	Arbiter     string   `json:"arbiter,omitempty"`
	Recipient   string   `json:"recipient,omitempty"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	EndTime     *uint64  `json:"end_time"`
	AskingPrice sdk.Coin `json:"asking_price"`
}

// EscrowDetails is an escrow as stored by the contract.
type EscrowDetails struct {
	ID               uint64    `json:"id"`
	Creator          string    `json:"creator"`
	CreatedAt        uint64    `json:"created_at"`
	Arbiter          string    `json:"arbiter"`
	Recipient        string    `json:"recipient"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	EndHeight        uint64    `json:"end_height"`
	EndTime          uint64    `json:"end_time"`
	CreatorBalance   sdk.Coins `json:"creator_balance"`
	AskingPrice      sdk.Coin  `json:"asking_price"`
	RecipientBalance sdk.Coins `json:"recipient_balance"`
	Status           string    `json:"status"`
}

type RichTokenBalance = token.Balance

// RichEscrowDetails is EscrowDetails with every balance enriched.
type RichEscrowDetails struct {
	ID               uint64             `json:"id"`
	Creator          string             `json:"creator"`
	CreatedAt        uint64             `json:"createdAt"`
	Arbiter          string             `json:"arbiter"`
	Recipient        string             `json:"recipient"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	EndHeight        uint64             `json:"endHeight"`
	EndTime          uint64             `json:"endTime"`
	CreatorBalance   []RichTokenBalance `json:"creatorBalance"`
	AskingPrice      RichTokenBalance   `json:"askingPrice"`
	RecipientBalance []RichTokenBalance `json:"recipientBalance"`
	Status           string             `json:"status"`
}

// PairCount is the number of escrows swapping Denom1 for Denom2.
type PairCount struct {
	Denom1 string `json:"denom1"`
	Denom2 string `json:"denom2"`
	Count  uint64 `json:"count"`
}

type pairsCountResponse struct {
	Pairs []PairCount `json:"pairs"`
}
