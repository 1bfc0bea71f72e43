package evm

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// DefaultAllowanceSlotIndex is the storage slot index of the allowance
// mapping assumed for supported ERC-20 implementations. The index differs
// from contract to contract but is usually 10; a production deployment should
// validate the slot per token instead of assuming uniformity.
const DefaultAllowanceSlotIndex = 10

// MaxUint256Hash is the maximum uint256 value as a 32-byte storage word.
var MaxUint256Hash = common.HexToHash("0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

// AllowanceStorageSlot derives the storage slot holding
// allowance[owner][spender] of an ERC-20 contract whose allowance mapping
// lives at slotIndex. Solidity stores nested mappings by double hashing:
// keccak256(spender . keccak256(owner . slotIndex)) with every operand left
// padded to 32 bytes.
//
// Parameters:
// - owner: the token owner address.
// - spender: the approved spender address.
// - slotIndex: the slot index of the allowance mapping.
//
// Returns:
// - common.Hash: the derived storage slot.
func AllowanceStorageSlot(owner, spender common.Address, slotIndex uint64) common.Hash {
	ownerWord := common.LeftPadBytes(owner.Bytes(), 32)
	spenderWord := common.LeftPadBytes(spender.Bytes(), 32)
	slotWord := common.LeftPadBytes(new(big.Int).SetUint64(slotIndex).Bytes(), 32)

	inner := crypto.Keccak256(ownerWord, slotWord)
	outer := crypto.Keccak256(spenderWord, inner)

	return common.BytesToHash(outer)
}

// StateOverride maps contract addresses to synthetic storage values applied
// during gas estimation only.
type StateOverride map[common.Address]OverrideAccount

// OverrideAccount holds the storage slots overridden for one contract.
type OverrideAccount struct {
	StateDiff map[common.Hash]common.Hash `json:"stateDiff"`
}

// AllowanceOverride builds a state override that sets
// allowance[owner][spender] of the given token to the maximum uint256, so a
// transfer can be simulated as if the approval had already been executed.
func AllowanceOverride(token, owner, spender common.Address) StateOverride {
	slot := AllowanceStorageSlot(owner, spender, DefaultAllowanceSlotIndex)
	return StateOverride{
		token: {
			StateDiff: map[common.Hash]common.Hash{
				slot: MaxUint256Hash,
			},
		},
	}
}
