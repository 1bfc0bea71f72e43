package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseChainType(t *testing.T) {
	require.Equal(t, COSMOS, ParseChainType("cosmos"))
	require.Equal(t, EVM, ParseChainType("evm"))
	require.Equal(t, UNKNOWN, ParseChainType("svm"))
	require.Equal(t, UNKNOWN, ParseChainType(""))
}

func TestCounterpartyDenom(t *testing.T) {
	withContract := Counterparty{Address: "0xabc", SourceDenom: "uusdc"}
	require.Equal(t, "0xabc", withContract.Denom())

	withoutContract := Counterparty{SourceDenom: "uusdc"}
	require.Equal(t, "uusdc", withoutContract.Denom())
}
