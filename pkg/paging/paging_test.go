package paging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestHasNext(t *testing.T) {
	cases := map[string]bool{
		``:                 false,
		`null`:             false,
		`""`:               false,
		`[]`:               false,
		`12`:               true,
		`"kujira"`:         true,
		`["USK","kujira"]`: true,
	}
	for raw, expected := range cases {
		pagination := Pagination{NextKey: json.RawMessage(raw)}
		if pagination.HasNext() != expected {
			t.Fatalf("HasNext for %q = %v, expected %v", raw, !expected, expected)
		}
	}
}

func TestResultDecodesEnvelope(t *testing.T) {
	var result Result[[]string]
	payload := `{"data":["a","b"],"pagination":{"next_key":["USK","kujira"],"total":10}}`
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Data) != 2 || result.Pagination.Total != 10 {
		t.Fatalf("unexpected result: %+v", result)
	}

	var key []string
	if err := result.Pagination.DecodeNextKey(&key); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(key) != 2 || key[0] != "USK" {
		t.Fatalf("unexpected key: %v", key)
	}
}

func TestDecodeNextKeyEmpty(t *testing.T) {
	var key int
	if err := (Pagination{}).DecodeNextKey(&key); err == nil {
		t.Fatal("expected error for empty key")
	}
}

func TestCollectWalksPages(t *testing.T) {
	first := Result[[]int]{Data: []int{1, 2}, Pagination: Pagination{NextKey: json.RawMessage(`2`)}}
	calls := 0
	fetch := func(_ context.Context, startAfter json.RawMessage) (Result[[]int], error) {
		calls++
		switch string(startAfter) {
		case "2":
			return Result[[]int]{Data: nil, Pagination: Pagination{NextKey: json.RawMessage(`4`)}}, nil
		case "4":
			return Result[[]int]{Data: []int{5}, Pagination: Pagination{NextKey: json.RawMessage(`null`)}}, nil
		}
		t.Fatalf("unexpected start_after %s", startAfter)
		return Result[[]int]{}, nil
	}

	items, pages, err := Collect(context.Background(), first, fetch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 || items[2] != 5 {
		t.Fatalf("unexpected items: %v", items)
	}
	if pages != 3 || calls != 2 {
		t.Fatalf("expected 3 pages and 2 calls, got %d and %d", pages, calls)
	}
}

func TestCollectStopsOnRepeatedKey(t *testing.T) {
	first := Result[[]int]{Data: []int{1}, Pagination: Pagination{NextKey: json.RawMessage(`1`)}}
	fetch := func(_ context.Context, _ json.RawMessage) (Result[[]int], error) {
		return Result[[]int]{Data: []int{2}, Pagination: Pagination{NextKey: json.RawMessage(`1`)}}, nil
	}

	items, pages, err := Collect(context.Background(), first, fetch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 || pages != 2 {
		t.Fatalf("unexpected result: %v pages=%d", items, pages)
	}
}

func TestCollectPropagatesError(t *testing.T) {
	first := Result[[]int]{Pagination: Pagination{NextKey: json.RawMessage(`"x"`)}}
	sentinel := errors.New("boom")
	_, _, err := Collect(context.Background(), first, func(context.Context, json.RawMessage) (Result[[]int], error) {
		return Result[[]int]{}, sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}
}

func TestCollectHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	first := Result[[]int]{Data: []int{1}, Pagination: Pagination{NextKey: json.RawMessage(`1`)}}
	items, _, err := Collect(ctx, first, func(context.Context, json.RawMessage) (Result[[]int], error) {
		t.Fatal("fetch should not be called")
		return Result[[]int]{}, nil
	})
	if !errors.Is(err, context.Canceled) || len(items) != 1 {
		t.Fatalf("expected cancellation with first page kept, got %v %v", items, err)
	}
}

func TestKey(t *testing.T) {
	if Key(nil) != nil || Key("") != nil || Key([]string{}) != nil {
		t.Fatal("expected empty cursors to be nil")
	}
	if string(Key(12)) != "12" {
		t.Fatalf("unexpected key %s", Key(12))
	}
	if string(Key([]string{"USK", "kujira"})) != `["USK","kujira"]` {
		t.Fatalf("unexpected key %s", Key([]string{"USK", "kujira"}))
	}
	if Key(func() {}) != nil {
		t.Fatal("expected unencodable value to yield nil")
	}
}
