package shared

import (
	"fmt"
	"strings"
)

const (
	NetworkMainnet = "mainnet"
	NetworkTestnet = "testnet"
	NetworkDevnet  = "devnet"
)

// NormalizeNetwork lower-cases and validates a network name. An empty name
// selects mainnet.
func NormalizeNetwork(network string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(network))
	if normalized == "" {
		return NetworkMainnet, nil
	}

	switch normalized {
	case NetworkMainnet, NetworkTestnet, NetworkDevnet:
		return normalized, nil
	default:
		return "", fmt.Errorf("unsupported network %q", network)
	}
}

// SameNetwork reports whether a chain config network_type refers to network.
func SameNetwork(networkType string, network string) bool {
	return strings.EqualFold(strings.TrimSpace(networkType), strings.TrimSpace(network))
}
