package shared

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// EnvConfig holds the client settings that can be supplied through the
// environment or a .env file.
type EnvConfig struct {
	Mnemonic      string
	Network       string
	RPCEndpoint   string
	GasPrice      string
	Bech32Prefix  string
	UtilsContract string
}

const envPrefix = "FUZION_"

var dotenvLoadOnce sync.Once

// ConfigFromEnv reads FUZION_* variables, applying network-scoped overrides
// such as TESTNET_FUZION_MNEMONIC, and fills defaults for anything unset.
func ConfigFromEnv() (EnvConfig, error) {
	loadDotEnvIfPresent()

	network, err := NormalizeNetwork(lookupFuzionEnv("", "NETWORK", "NETWORK"))
	if err != nil {
		return EnvConfig{}, err
	}

	config := EnvConfig{
		Network:       network,
		Mnemonic:      lookupFuzionEnv(network, "MNEMONIC", "MNEMONIC"),
		RPCEndpoint:   lookupFuzionEnv(network, "RPC_ENDPOINT"),
		GasPrice:      lookupFuzionEnv("", "GAS_PRICE"),
		Bech32Prefix:  lookupFuzionEnv("", "BECH32_PREFIX"),
		UtilsContract: lookupFuzionEnv(network, "UTILS_CONTRACT"),
	}

	if config.RPCEndpoint == "" {
		config.RPCEndpoint = DefaultRPCEndpoint
	}
	if config.GasPrice == "" {
		config.GasPrice = DefaultGasPrice
	}
	if config.Bech32Prefix == "" {
		config.Bech32Prefix = DefaultBech32Prefix
	}
	if config.UtilsContract == "" {
		config.UtilsContract = DefaultUtilsContractAddress
	}

	return config, nil
}

// RequireMnemonic returns an error when no mnemonic was configured.
func (config EnvConfig) RequireMnemonic() error {
	if strings.TrimSpace(config.Mnemonic) == "" {
		return fmt.Errorf("FUZION_MNEMONIC is required")
	}
	return nil
}

// lookupFuzionEnv resolves <NETWORK>_FUZION_<name>, then FUZION_<name>, then
// any unprefixed aliases. An empty network skips the scoped key.
func lookupFuzionEnv(network string, name string, aliases ...string) string {
	keys := make([]string, 0, 2+len(aliases))
	if network != "" {
		keys = append(keys, strings.ToUpper(network)+"_"+envPrefix+name)
	}
	keys = append(keys, envPrefix+name)
	keys = append(keys, aliases...)

	for _, key := range keys {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return ""
}

// isFuzionEnvKey reports whether key is one the SDK reads. The .env loader
// skips every other key.
func isFuzionEnvKey(key string) bool {
	switch key {
	case "NETWORK", "MNEMONIC":
		return true
	}
	if strings.HasPrefix(key, envPrefix) {
		return len(key) > len(envPrefix)
	}
	scope, rest, found := strings.Cut(key, "_")
	if !found || !strings.HasPrefix(rest, envPrefix) || len(rest) == len(envPrefix) {
		return false
	}
	_, err := NormalizeNetwork(scope)
	return err == nil && scope == strings.ToUpper(scope)
}

func loadDotEnvIfPresent() {
	dotenvLoadOnce.Do(func() {
		starts := make([]string, 0, 2)
		if cwd, err := os.Getwd(); err == nil {
			starts = append(starts, cwd)
		}
		if _, currentFile, _, ok := runtime.Caller(0); ok {
			starts = append(starts, filepath.Dir(currentFile))
		}
		if path := findDotEnv(starts); path != "" {
			loadDotEnvFile(path)
		}
	})
}

// findDotEnv walks up from each start directory and returns the first .env
// found, or "".
func findDotEnv(starts []string) string {
	for _, start := range starts {
		for current := start; ; {
			candidate := filepath.Join(current, ".env")
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
			parent := filepath.Dir(current)
			if parent == current {
				break
			}
			current = parent
		}
	}
	return ""
}

// loadDotEnvFile exports the FUZION keys in path that are not already set and
// reports whether any were applied.
func loadDotEnvFile(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	loadedAny := false
	for key, value := range parseDotEnv(file) {
		if _, alreadySet := os.LookupEnv(key); alreadySet {
			continue
		}
		if os.Setenv(key, value) == nil {
			loadedAny = true
		}
	}
	return loadedAny
}

func parseDotEnv(reader io.Reader) map[string]string {
	values := make(map[string]string)
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		key, value, found := strings.Cut(strings.TrimPrefix(line, "export "), "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if !isFuzionEnvKey(key) {
			continue
		}
		values[key] = unquote(strings.TrimSpace(value))
	}
	return values
}

func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	first, last := value[0], value[len(value)-1]
	if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
		return value[1 : len(value)-1]
	}
	return value
}
