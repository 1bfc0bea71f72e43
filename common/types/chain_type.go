package types

// ChainType represents supported blockchain execution models
type ChainType string

const (
	// COSMOS represents Cosmos SDK based chains (e.g. Osmosis, Cosmos Hub, Noble, etc.)
	COSMOS ChainType = "cosmos"
	// EVM represents Ethereum Virtual Machine based chains (e.g. Ethereum, Linea, Base, etc.)
	EVM ChainType = "evm"
	// UNKNOWN represents unknown or unsupported chain type in the system.
	UNKNOWN ChainType = "unknown"
)

// String converts ChainType to string representation
func (t ChainType) String() string {
	return string(t)
}

// ParseChainType converts string to ChainType representation.
func ParseChainType(s string) ChainType {
	switch s {
	case COSMOS.String():
		return COSMOS
	case EVM.String():
		return EVM
	default:
		return UNKNOWN
	}
}
