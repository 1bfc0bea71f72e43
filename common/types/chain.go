package types

// NativeEVMTokenAddress is the conventional sentinel address used to denote
// the native currency of an EVM chain in place of an ERC-20 contract address.
const NativeEVMTokenAddress = "0xEeeeeEeeeEeEeeEeEeEeeEEEeeeeEeeeeeeeEEeE"

// Chain identifies one end of a bridge transfer.
//
// Fields:
// - ChainID: the chain identifier. Numeric string for EVM chains (e.g. "1"),
//   bech32-style identifier for Cosmos chains (e.g. "osmosis-1").
// - ChainName: the human readable chain name.
// - ChainType: the execution model of the chain.
type Chain struct {
	ChainID   string
	ChainName string
	ChainType ChainType
}

// CosmosChainConfig describes a Cosmos chain known to the caller, including
// the RPC endpoints used for live block time estimation. Chains without RPC
// endpoints fall back to a fixed block time estimate.
type CosmosChainConfig struct {
	ChainID      string
	ChainName    string
	Bech32Prefix string
	RPCEndpoints []string
}

// FirstRPC returns the first configured RPC endpoint or an empty string.
func (c CosmosChainConfig) FirstRPC() string {
	if len(c.RPCEndpoints) == 0 {
		return ""
	}
	return c.RPCEndpoints[0]
}
