package wasm

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/atlo-labs/fuzion-sdk-go/pkg/shared"
)

const (
	ErrorCodeUnavailable  = "Error code unavailable."
	ErrorCodeUnrecognised = "Error code unrecognised."
	OTCError18            = "Got error code 18, in OTC contract."
	OTCError19            = "Got error code 19, in OTC contract."
)

// ContractQueryError wraps a failed contract query with a friendlier
// message derived from the contract's error code.
type ContractQueryError struct {
	Message              string
	FriendlyErrorMessage string
	Code                 int
	Inner                error
}

func (e *ContractQueryError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Inner)
	}
	return e.Message
}

func (e *ContractQueryError) Unwrap() error {
	return e.Inner
}

func (e *ContractQueryError) HasFriendlyErrorMessage() bool {
	return strings.TrimSpace(e.FriendlyErrorMessage) != ""
}

// NewContractQueryError maps inner against contract's known error codes.
func NewContractQueryError(inner error, message string, contract shared.ContractName) *ContractQueryError {
	code := ErrorCode(inner)
	if code == -1 {
		return &ContractQueryError{
			Message:              message,
			FriendlyErrorMessage: ErrorCodeUnavailable,
			Code:                 code,
			Inner:                inner,
		}
	}
	return &ContractQueryError{
		Message:              message,
		FriendlyErrorMessage: friendlyMessage(contract, code),
		Code:                 code,
		Inner:                inner,
	}
}

var nonDigits = regexp.MustCompile(`\D`)

// ErrorCode extracts N from an error message starting with
// "query failed with (N): ...". It returns -1 when there is none.
func ErrorCode(err error) int {
	if err == nil {
		return -1
	}
	message := err.Error()
	if !strings.HasPrefix(strings.ToLower(message), "query failed with (") {
		return -1
	}

	colon := strings.Index(message, ":")
	if colon < 0 {
		return -1
	}
	code, convErr := strconv.Atoi(nonDigits.ReplaceAllString(message[:colon], ""))
	if convErr != nil {
		return -1
	}
	return code
}

func friendlyMessage(contract shared.ContractName, code int) string {
	if strings.EqualFold(string(contract), string(shared.ContractOTC)) {
		switch code {
		case 18:
			return OTCError18
		case 19:
			return OTCError19
		}
	}
	return ErrorCodeUnrecognised
}

// TxError reports a transaction rejected at check-tx or deliver-tx.
type TxError struct {
	TxHash    string
	Codespace string
	Code      uint32
	Log       string
}

func (e *TxError) Error() string {
	if e.TxHash != "" {
		return fmt.Sprintf("transaction %s failed with code %d (%s): %s", e.TxHash, e.Code, e.Codespace, e.Log)
	}
	return fmt.Sprintf("transaction failed with code %d (%s): %s", e.Code, e.Codespace, e.Log)
}

// queryError mirrors the message shape nodes use for failed ABCI queries.
type queryError struct {
	code uint32
	log  string
}

func (e *queryError) Error() string {
	return fmt.Sprintf("query failed with (%d): %s", e.code, e.log)
}
