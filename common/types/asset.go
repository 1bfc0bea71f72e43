package types

// Asset identifies a token on a specific chain.
//
// Fields:
// - Address: the ERC-20 contract address on EVM chains or the denom on Cosmos
//   chains. The native EVM currency is represented by NativeEVMTokenAddress.
// - Denom: the display symbol of the asset.
// - Decimals: the number of decimal places of the asset.
type Asset struct {
	Address  string
	Denom    string
	Decimals int32
}

// Coin is an Asset together with an amount, used for fees and quote legs.
// A "0" amount is a valid value meaning no fee, not an error.
type Coin struct {
	Amount   string
	Denom    string
	Decimals int32
	Address  string
}

// ChainAsset pairs an asset with the chain it lives on. Returned by the
// supported-assets lookup as transfer variants of a given asset.
type ChainAsset struct {
	ChainID   string
	ChainType ChainType
	Address   string
	Denom     string
	Decimals  int32
}

// Counterparty describes an equivalent representation of an asset list entry
// on another chain.
//
// Fields:
// - ChainID: the chain the counterparty representation lives on.
// - ChainType: the execution model of that chain.
// - Address: the ERC-20 contract address (EVM counterparties).
// - SourceDenom: the denom on the counterparty chain (Cosmos counterparties).
// - Symbol: the display symbol.
// - Decimals: the number of decimal places.
type Counterparty struct {
	ChainID     string
	ChainType   ChainType
	Address     string
	SourceDenom string
	Symbol      string
	Decimals    int32
}

// Denom returns the identifier used to match the counterparty against an
// upstream asset catalog: the contract address when present, else the denom.
func (c Counterparty) Denom() string {
	if c.Address != "" {
		return c.Address
	}
	return c.SourceDenom
}

// AssetListAsset is one entry of a caller supplied asset list, carrying the
// cross-chain variant metadata the supported-assets lookup walks.
type AssetListAsset struct {
	CoinMinimalDenom string
	VariantGroupKey  string
	Counterparties   []Counterparty
}

// AssetList is a caller supplied catalog of known assets and their
// counterparty representations.
type AssetList struct {
	ChainID string
	Assets  []AssetListAsset
}
