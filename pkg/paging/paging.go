package paging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// Pagination is the cursor block returned by the Fuzion contracts. NextKey is
// opaque: an escrow id, a chain name, or a [symbol, chain_name] pair.
type Pagination struct {
	NextKey json.RawMessage `json:"next_key,omitempty"`
	Total   uint64          `json:"total"`
}

// Result is a single page of contract data.
type Result[T any] struct {
	Data       T          `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// HasNext reports whether another page can be requested.
func (pagination Pagination) HasNext() bool {
	return !emptyKey(pagination.NextKey)
}

// DecodeNextKey decodes the cursor into target.
func (pagination Pagination) DecodeNextKey(target any) error {
	if emptyKey(pagination.NextKey) {
		return fmt.Errorf("pagination has no next key")
	}
	if err := json.Unmarshal(pagination.NextKey, target); err != nil {
		return fmt.Errorf("failed to decode next key: %w", err)
	}
	return nil
}

func emptyKey(key json.RawMessage) bool {
	trimmed := bytes.TrimSpace(key)
	switch string(trimmed) {
	case "", "null", `""`, "[]":
		return true
	}
	return false
}

// FetchFunc loads the page that follows startAfter.
type FetchFunc[T any] func(ctx context.Context, startAfter json.RawMessage) (Result[[]T], error)

// Collect concatenates first with every page that follows it and returns the
// items and the number of pages visited.
func Collect[T any](ctx context.Context, first Result[[]T], fetch FetchFunc[T]) ([]T, int, error) {
	items := make([]T, 0, len(first.Data))
	items = append(items, first.Data...)
	pages := 1

	next := first.Pagination.NextKey
	for !emptyKey(next) {
		if err := ctx.Err(); err != nil {
			return items, pages, err
		}

		page, err := fetch(ctx, next)
		if err != nil {
			return items, pages, err
		}
		pages++
		items = append(items, page.Data...)

		if bytes.Equal(bytes.TrimSpace(page.Pagination.NextKey), bytes.TrimSpace(next)) {
			break
		}
		next = page.Pagination.NextKey
	}

	return items, pages, nil
}

// Key encodes a value as a start_after cursor. A nil value yields an empty
// cursor, which list queries omit.
func Key(value any) json.RawMessage {
	if value == nil {
		return nil
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return nil
	}
	if emptyKey(encoded) {
		return nil
	}
	return encoded
}
