package otc

import "encoding/json"

type idParams struct {
	ID uint64 `json:"id"`
}

type setRecipientParams struct {
	ID        uint64 `json:"id"`
	Recipient string `json:"recipient"`
}

type listParams struct {
	StartAfter json.RawMessage `json:"start_after,omitempty"`
	Limit      uint32          `json:"limit,omitempty"`
	SortAsc    *bool           `json:"sort_asc,omitempty"`
}

type pairListParams struct {
	Pair       []string        `json:"pair,omitempty"`
	StartAfter json.RawMessage `json:"start_after,omitempty"`
	Limit      uint32          `json:"limit,omitempty"`
	SortAsc    *bool           `json:"sort_asc,omitempty"`
}

type creatorListParams struct {
	Creator    string          `json:"creator"`
	StartAfter json.RawMessage `json:"start_after,omitempty"`
	Limit      uint32          `json:"limit,omitempty"`
	SortAsc    *bool           `json:"sort_asc,omitempty"`
}

type recipientListParams struct {
	Recipient  string          `json:"recipient"`
	StartAfter json.RawMessage `json:"start_after,omitempty"`
	Limit      uint32          `json:"limit,omitempty"`
	SortAsc    *bool           `json:"sort_asc,omitempty"`
}

type empty struct{}

func CreateMsg(details EscrowDetailsLite) map[string]any {
	return map[string]any{"create": details}
}

func RefundMsg(id uint64) map[string]any {
	return map[string]any{"refund": idParams{ID: id}}
}

func SetRecipientMsg(id uint64, recipient string) map[string]any {
	return map[string]any{"set_recipient": setRecipientParams{ID: id, Recipient: recipient}}
}

func ReceiverDepositMsg(id uint64) map[string]any {
	return map[string]any{"receiver_deposit": idParams{ID: id}}
}

func ApproveMsg(id uint64) map[string]any {
	return map[string]any{"approve": idParams{ID: id}}
}

func UpdateConfigMsg(config Config) map[string]any {
	return map[string]any{"update_config": config}
}

func ConfirmConfigMsg() map[string]any {
	return map[string]any{"confirm_config": empty{}}
}

func ConfigQuery() map[string]any {
	return map[string]any{"config": empty{}}
}

func PendingConfigQuery() map[string]any {
	return map[string]any{"pending_config": empty{}}
}

func EscrowQuery(id uint64) map[string]any {
	return map[string]any{"escrow": idParams{ID: id}}
}

// MarketEscrowListQuery lists every escrow without a recipient, expired ones
// included.
func MarketEscrowListQuery(startAfter json.RawMessage, limit uint32, sortAsc *bool) map[string]any {
	return map[string]any{"market_escrow_list": listParams{StartAfter: startAfter, Limit: limit, SortAsc: sortAsc}}
}

// MarketEscrowActiveListQuery lists the escrows without a recipient that
// have not expired.
func MarketEscrowActiveListQuery(startAfter json.RawMessage, limit uint32, sortAsc *bool) map[string]any {
	return map[string]any{"market_escrow_active_list": listParams{StartAfter: startAfter, Limit: limit, SortAsc: sortAsc}}
}

// PairsListQuery lists escrows swapping pair[0] for pair[1].
func PairsListQuery(pair []string, startAfter json.RawMessage, limit uint32, sortAsc *bool) map[string]any {
	return map[string]any{"pairs_list": pairListParams{Pair: pair, StartAfter: startAfter, Limit: limit, SortAsc: sortAsc}}
}

func ActivePairsListQuery(pair []string, startAfter json.RawMessage, limit uint32, sortAsc *bool) map[string]any {
	return map[string]any{"market_escrow_active_pairs_list": pairListParams{Pair: pair, StartAfter: startAfter, Limit: limit, SortAsc: sortAsc}}
}

func PairsCountQuery() map[string]any {
	return map[string]any{"pairs_count": empty{}}
}

func ActivePairsCountQuery() map[string]any {
	return map[string]any{"market_escrow_active_pairs_count": empty{}}
}

func CreatorEscrowListQuery(creator string, startAfter json.RawMessage, limit uint32, sortAsc *bool) map[string]any {
	return map[string]any{"creator_escrow_list": creatorListParams{Creator: creator, StartAfter: startAfter, Limit: limit, SortAsc: sortAsc}}
}

func RecipientEscrowListQuery(recipient string, startAfter json.RawMessage, limit uint32, sortAsc *bool) map[string]any {
	return map[string]any{"recipient_escrow_list": recipientListParams{Recipient: recipient, StartAfter: startAfter, Limit: limit, SortAsc: sortAsc}}
}
