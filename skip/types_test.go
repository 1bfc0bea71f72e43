package skip

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOperationRoundTripPreservesUnknownVariants(t *testing.T) {
	// A swap operation this library does not model must survive the
	// route -> msgs round trip byte for byte.
	document := `{"swap":{"swap_in":{"swap_venue":{"name":"osmosis-poolmanager"},"swap_operations":[{"pool":"1","denom_in":"uosmo","denom_out":"uion"}]}}}`

	var operation Operation
	require.NoError(t, json.Unmarshal([]byte(document), &operation))
	require.Nil(t, operation.AxelarTransfer)

	encoded, err := json.Marshal(operation)
	require.NoError(t, err)
	require.JSONEq(t, document, string(encoded))
}

func TestOperationDecodesAxelarTransfer(t *testing.T) {
	document := `{"axelar_transfer":{"fee_amount":"3000000","fee_asset":{"denom":"uusdc","chain_id":"1","is_evm":true,"symbol":"USDC","decimals":6}}}`

	var operation Operation
	require.NoError(t, json.Unmarshal([]byte(document), &operation))
	require.NotNil(t, operation.AxelarTransfer)
	require.Equal(t, "3000000", operation.AxelarTransfer.FeeAmount)
	require.Equal(t, "uusdc", operation.AxelarTransfer.FeeAsset.Denom)
	require.True(t, operation.AxelarTransfer.FeeAsset.IsEVM)

	// The decoded variant still round-trips through the retained document.
	encoded, err := json.Marshal(operation)
	require.NoError(t, err)
	require.JSONEq(t, document, string(encoded))
}

func TestOperationMarshalWithoutRawDocument(t *testing.T) {
	operation := Operation{AxelarTransfer: &AxelarTransferOperation{
		FeeAmount: "1",
		FeeAsset:  AssetRecord{Denom: "uusdc"},
	}}

	encoded, err := json.Marshal(operation)
	require.NoError(t, err)
	require.Contains(t, string(encoded), `"fee_amount":"1"`)
}

func TestDisplaySymbol(t *testing.T) {
	tests := []struct {
		name     string
		record   AssetRecord
		expected string
	}{
		{
			name:     "recommended symbol wins",
			record:   AssetRecord{Denom: "ibc/1234", Symbol: "USDC", RecommendedSymbol: "USDC.axl"},
			expected: "USDC.axl",
		},
		{
			name:     "symbol",
			record:   AssetRecord{Denom: "ibc/1234", Symbol: "USDC"},
			expected: "USDC",
		},
		{
			name:     "name",
			record:   AssetRecord{Denom: "ibc/1234", Name: "USD Coin"},
			expected: "USD Coin",
		},
		{
			name:     "denom fallback",
			record:   AssetRecord{Denom: "ibc/1234"},
			expected: "ibc/1234",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.record.DisplaySymbol())
		})
	}
}
