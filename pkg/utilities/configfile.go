package utilities

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type chainConfigFile struct {
	ChainConfigs []ChainConfig `yaml:"chain_configs"`
}

// LoadChainConfigFile reads chain configs from a YAML or JSON file. The file
// may hold a single config, a list of configs, a list of
// {chain_config, chain_info} responses, or a {chain_configs: [...]} document.
func LoadChainConfigFile(path string) ([]ChainConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chain config file: %w", err)
	}
	configs, err := ParseChainConfigs(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse chain config file %s: %w", path, err)
	}
	return configs, nil
}

// ParseChainConfigs decodes the formats accepted by LoadChainConfigFile.
func ParseChainConfigs(content []byte) ([]ChainConfig, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, fmt.Errorf("chain config document is empty")
	}

	var document yaml.Node
	if err := yaml.Unmarshal(content, &document); err != nil {
		return nil, err
	}
	if document.Kind != yaml.DocumentNode || len(document.Content) == 0 {
		return nil, fmt.Errorf("chain config document is empty")
	}
	root := document.Content[0]

	switch root.Kind {
	case yaml.SequenceNode:
		return decodeConfigSequence(root)
	case yaml.MappingNode:
		if hasKey(root, "chain_configs") {
			var file chainConfigFile
			if err := root.Decode(&file); err != nil {
				return nil, err
			}
			return validateConfigs(file.ChainConfigs)
		}
		if hasKey(root, "chain_config") {
			var response ChainConfigResponse
			if err := root.Decode(&response); err != nil {
				return nil, err
			}
			return validateConfigs([]ChainConfig{response.ChainConfig})
		}
		var single ChainConfig
		if err := root.Decode(&single); err != nil {
			return nil, err
		}
		return validateConfigs([]ChainConfig{single})
	default:
		return nil, fmt.Errorf("unsupported chain config document")
	}
}

// MarshalChainConfigs renders configs as a {chain_configs: [...]} YAML
// document that ParseChainConfigs accepts.
func MarshalChainConfigs(configs []ChainConfig) ([]byte, error) {
	return yaml.Marshal(chainConfigFile{ChainConfigs: configs})
}

func decodeConfigSequence(root *yaml.Node) ([]ChainConfig, error) {
	configs := make([]ChainConfig, 0, len(root.Content))
	for _, item := range root.Content {
		if item.Kind == yaml.MappingNode && hasKey(item, "chain_config") {
			var response ChainConfigResponse
			if err := item.Decode(&response); err != nil {
				return nil, err
			}
			configs = append(configs, response.ChainConfig)
			continue
		}
		var config ChainConfig
		if err := item.Decode(&config); err != nil {
			return nil, err
		}
		configs = append(configs, config)
	}
	return validateConfigs(configs)
}

func validateConfigs(configs []ChainConfig) ([]ChainConfig, error) {
	if len(configs) == 0 {
		return nil, fmt.Errorf("no chain configs found")
	}
	for index, config := range configs {
		if config.ChainRPCURL == "" {
			return nil, fmt.Errorf("chain config %d (%s) has no chain_rpc_url", index, config.ChainName)
		}
		if config.NetworkType == "" {
			return nil, fmt.Errorf("chain config %d (%s) has no network_type", index, config.ChainName)
		}
	}
	return configs, nil
}

func hasKey(node *yaml.Node, key string) bool {
	for index := 0; index+1 < len(node.Content); index += 2 {
		if node.Content[index].Value == key {
			return true
		}
	}
	return false
}
