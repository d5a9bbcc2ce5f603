package lcd

import "fmt"

// ChainAPIError is returned when the node answers with an error payload or a
// non-2xx status.
type ChainAPIError struct {
	Message    string
	StatusCode int
	Code       int
	Inner      error
}

func (e *ChainAPIError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Inner)
	}
	if e.Code != 0 {
		return fmt.Sprintf("%s (status %d, code %d)", e.Message, e.StatusCode, e.Code)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

func (e *ChainAPIError) Unwrap() error {
	return e.Inner
}
