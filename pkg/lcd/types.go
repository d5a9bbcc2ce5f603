package lcd

type Coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

type PageResponse struct {
	NextKey *string `json:"next_key"`
	Total   string  `json:"total"`
}

type balancesResponse struct {
	Balances   []Coin       `json:"balances"`
	Pagination PageResponse `json:"pagination"`
}

type PublicKey struct {
	Type string `json:"@type"`
	Key  string `json:"key"`
}

type AccountInfo struct {
	Address       string     `json:"address"`
	PubKey        *PublicKey `json:"pub_key,omitempty"`
	AccountNumber string     `json:"account_number"`
	Sequence      string     `json:"sequence"`
}

type accountInfoResponse struct {
	Info AccountInfo `json:"info"`
}

// errorBody is the grpc-gateway error envelope.
type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error"`
}
