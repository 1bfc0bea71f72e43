package evm

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestFindChainInfo(t *testing.T) {
	info := FindChainInfo("1")
	require.NotNil(t, info)
	require.Equal(t, "Ethereum", info.Name)
	require.Equal(t, "ETH", info.NativeCurrency.Symbol)
	require.Equal(t, int32(18), info.NativeCurrency.Decimals)

	info = FindChainInfo("43114")
	require.NotNil(t, info)
	require.Equal(t, "AVAX", info.NativeCurrency.Symbol)

	require.Nil(t, FindChainInfo("999999"))
	require.Nil(t, FindChainInfo(""))
}

func TestFinalityTimeSeconds(t *testing.T) {
	tests := []struct {
		chainID  string
		expected int64
	}{
		{"1", 960},
		{"43114", 3},
		{"137", 300},
		{"56", 46},
		{"10", 1800},
		{"59144", 4860},
		{"42161", 1140},
		{"8453", 1440},
		// Unknown chains default to the Ethereum finality time.
		{"999999", 960},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, FinalityTimeSeconds(tt.chainID), "chain %s", tt.chainID)
	}
}

func TestPackApprove(t *testing.T) {
	spender := common.HexToAddress("0x1111111111111111111111111111111111111111")

	data, err := PackApprove(spender, big.NewInt(1000))
	require.NoError(t, err)
	require.Len(t, data, 4+32+32)

	// approve(address,uint256) selector.
	require.Equal(t, []byte{0x09, 0x5e, 0xa7, 0xb3}, data[:4])
	require.Equal(t, spender.Bytes(), data[4+12:4+32])
	require.Equal(t, big.NewInt(1000), new(big.Int).SetBytes(data[4+32:]))
}

func TestPackAndUnpackAllowance(t *testing.T) {
	owner := common.HexToAddress("0x1111111111111111111111111111111111111111")
	spender := common.HexToAddress("0x2222222222222222222222222222222222222222")

	data, err := PackAllowance(owner, spender)
	require.NoError(t, err)
	require.Len(t, data, 4+32+32)

	// allowance(address,address) selector.
	require.Equal(t, []byte{0xdd, 0x62, 0xed, 0x3e}, data[:4])

	allowance, err := UnpackAllowance(common.LeftPadBytes(big.NewInt(42).Bytes(), 32))
	require.NoError(t, err)
	require.Equal(t, big.NewInt(42), allowance)

	_, err = UnpackAllowance([]byte{0x01})
	require.Error(t, err)
}

func TestAllowanceStorageSlot(t *testing.T) {
	owner := common.HexToAddress("0x1111111111111111111111111111111111111111")
	spender := common.HexToAddress("0x2222222222222222222222222222222222222222")

	slot := AllowanceStorageSlot(owner, spender, DefaultAllowanceSlotIndex)
	require.NotEqual(t, common.Hash{}, slot)

	// Derivation is deterministic and sensitive to every input.
	require.Equal(t, slot, AllowanceStorageSlot(owner, spender, DefaultAllowanceSlotIndex))
	require.NotEqual(t, slot, AllowanceStorageSlot(spender, owner, DefaultAllowanceSlotIndex))
	require.NotEqual(t, slot, AllowanceStorageSlot(owner, spender, DefaultAllowanceSlotIndex+1))
}

func TestAllowanceOverride(t *testing.T) {
	token := common.HexToAddress("0x3333333333333333333333333333333333333333")
	owner := common.HexToAddress("0x1111111111111111111111111111111111111111")
	spender := common.HexToAddress("0x2222222222222222222222222222222222222222")

	override := AllowanceOverride(token, owner, spender)
	require.Len(t, override, 1)

	account, ok := override[token]
	require.True(t, ok)
	require.Len(t, account.StateDiff, 1)

	slot := AllowanceStorageSlot(owner, spender, DefaultAllowanceSlotIndex)
	require.Equal(t, MaxUint256Hash, account.StateDiff[slot])
}
