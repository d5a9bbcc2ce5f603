package wasm

import (
	abci "github.com/cometbft/cometbft/abci/types"
)

type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type Event struct {
	Type       string      `json:"type"`
	Attributes []Attribute `json:"attributes"`
}

type Events []Event

// Find returns the values of every key attribute on events of eventType.
func (events Events) Find(eventType string, key string) []string {
	values := make([]string, 0)
	for _, event := range events {
		if event.Type != eventType {
			continue
		}
		for _, attribute := range event.Attributes {
			if attribute.Key == key {
				values = append(values, attribute.Value)
			}
		}
	}
	return values
}

// First returns the first value Find would return.
func (events Events) First(eventType string, key string) (string, bool) {
	values := events.Find(eventType, key)
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// Attribute returns the value of key on event.
func (event Event) Attribute(key string) (string, bool) {
	for _, attribute := range event.Attributes {
		if attribute.Key == key {
			return attribute.Value, true
		}
	}
	return "", false
}

type ExecuteResult struct {
	TxHash    string `json:"transactionHash"`
	Height    int64  `json:"height"`
	GasWanted int64  `json:"gasWanted"`
	GasUsed   int64  `json:"gasUsed"`
	Events    Events `json:"events"`
	Logs      string `json:"logs,omitempty"`
}

type UploadResult struct {
	ExecuteResult
	CodeID uint64 `json:"codeId"`
}

type InstantiateResult struct {
	ExecuteResult
	ContractAddress string `json:"contractAddress"`
}

func convertEvents(source []abci.Event) Events {
	events := make(Events, 0, len(source))
	for _, event := range source {
		converted := Event{Type: event.Type, Attributes: make([]Attribute, 0, len(event.Attributes))}
		for _, attribute := range event.Attributes {
			converted.Attributes = append(converted.Attributes, Attribute{
				Key:   attribute.Key,
				Value: attribute.Value,
			})
		}
		events = append(events, converted)
	}
	return events
}
