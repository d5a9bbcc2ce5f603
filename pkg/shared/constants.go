package shared

const (
	DefaultRPCEndpoint          = "https://rpc-kujira.mintthemoon.xyz"
	DefaultGasPrice             = "0.025ukuji"
	DefaultUtilsContractAddress = "kujira13rj43lsucnel7z8hakvskr7dkfj27hd9aa06pcw4nh7t66fgt7qsc4qm6v"
	DefaultBech32Prefix         = "kujira"
	DefaultChainName            = "kujira"
)

// ContractName identifies a contract entry in a chain config.
type ContractName string

const (
	ContractOTC       ContractName = "OTC_FUNGIBLE_TOKEN"
	ContractUtilities ContractName = "UTILITIES"
	ContractReactor   ContractName = "REACTOR_SWAP"
)

func (name ContractName) String() string {
	return string(name)
}
