package evm

// NativeCurrency describes the native unit of an EVM chain.
type NativeCurrency struct {
	Symbol   string
	Decimals int32
}

// ChainInfo is the static description of a supported EVM chain.
//
// Fields:
// - ChainID: the numeric chain id as a decimal string.
// - Name: the human readable chain name.
// - RpcUrl: the URL for the chain's RPC endpoint.
// - NativeCurrency: the chain's native currency.
type ChainInfo struct {
	ChainID        string
	Name           string
	RpcUrl         string
	NativeCurrency NativeCurrency
}

// chainInfos lists the EVM chains reachable by the bridge. The set mirrors
// the chains the route service produces EVM transactions for.
var chainInfos = []ChainInfo{
	{ChainID: "1", Name: "Ethereum", RpcUrl: "https://ethereum-rpc.publicnode.com", NativeCurrency: NativeCurrency{Symbol: "ETH", Decimals: 18}},
	{ChainID: "10", Name: "Optimism", RpcUrl: "https://optimism-rpc.publicnode.com", NativeCurrency: NativeCurrency{Symbol: "ETH", Decimals: 18}},
	{ChainID: "56", Name: "BNB Smart Chain", RpcUrl: "https://bsc-rpc.publicnode.com", NativeCurrency: NativeCurrency{Symbol: "BNB", Decimals: 18}},
	{ChainID: "137", Name: "Polygon", RpcUrl: "https://polygon-bor-rpc.publicnode.com", NativeCurrency: NativeCurrency{Symbol: "POL", Decimals: 18}},
	{ChainID: "250", Name: "Fantom", RpcUrl: "https://fantom-rpc.publicnode.com", NativeCurrency: NativeCurrency{Symbol: "FTM", Decimals: 18}},
	{ChainID: "314", Name: "Filecoin", RpcUrl: "https://api.node.glif.io/rpc/v1", NativeCurrency: NativeCurrency{Symbol: "FIL", Decimals: 18}},
	{ChainID: "1284", Name: "Moonbeam", RpcUrl: "https://moonbeam-rpc.publicnode.com", NativeCurrency: NativeCurrency{Symbol: "GLMR", Decimals: 18}},
	{ChainID: "8453", Name: "Base", RpcUrl: "https://base-rpc.publicnode.com", NativeCurrency: NativeCurrency{Symbol: "ETH", Decimals: 18}},
	{ChainID: "42161", Name: "Arbitrum One", RpcUrl: "https://arbitrum-one-rpc.publicnode.com", NativeCurrency: NativeCurrency{Symbol: "ETH", Decimals: 18}},
	{ChainID: "42220", Name: "Celo", RpcUrl: "https://celo-rpc.publicnode.com", NativeCurrency: NativeCurrency{Symbol: "CELO", Decimals: 18}},
	{ChainID: "43114", Name: "Avalanche", RpcUrl: "https://avalanche-c-chain-rpc.publicnode.com", NativeCurrency: NativeCurrency{Symbol: "AVAX", Decimals: 18}},
	{ChainID: "59144", Name: "Linea", RpcUrl: "https://linea-rpc.publicnode.com", NativeCurrency: NativeCurrency{Symbol: "ETH", Decimals: 18}},
}

// FindChainInfo returns the static chain description for the given chain id.
//
// Parameters:
// - chainID: the numeric chain id as a decimal string.
//
// Returns:
// - *ChainInfo: the chain description, or nil if the chain is unknown.
func FindChainInfo(chainID string) *ChainInfo {
	for i := range chainInfos {
		if chainInfos[i].ChainID == chainID {
			return &chainInfos[i]
		}
	}
	return nil
}

// FinalityTimeSeconds returns the conservative block finality time of an EVM
// chain in seconds, used as a proxy for confirmation latency. Unlisted chains
// default to the Ethereum finality time.
func FinalityTimeSeconds(chainID string) int64 {
	switch chainID {
	case "1":
		return 960
	case "43114":
		return 3
	case "137":
		return 300
	case "56":
		return 46
	case "250":
		return 3
	case "10":
		return 1800
	case "59144":
		return 4860
	case "314":
		return 3120
	case "1284":
		return 25
	case "42220":
		return 12
	case "42161":
		return 1140
	case "8453":
		return 1440
	default:
		return 960
	}
}
