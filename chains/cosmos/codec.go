// Package cosmos defines the contracts of the Cosmos side collaborators
// (message codec, transaction simulation, IBC timeout resolution) and the
// status-RPC block time client. Signing and broadcasting stay outside this
// library.
package cosmos

import "context"

// Coin is a denom/amount pair in a chain's base units.
type Coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// TimeoutHeight is an IBC client height used as a transfer timeout.
type TimeoutHeight struct {
	RevisionNumber uint64
	RevisionHeight uint64
}

// ExecuteContractMsg describes a CosmWasm contract execution.
//
// Fields:
// - Sender: the bech32 address executing the contract.
// - Contract: the bech32 address of the contract.
// - Msg: the JSON payload passed to the contract, as opaque bytes.
// - Funds: the coins sent along with the execution.
type ExecuteContractMsg struct {
	Sender   string
	Contract string
	Msg      []byte
	Funds    []Coin
}

// IBCTransferMsg describes a direct IBC token transfer.
type IBCTransferMsg struct {
	SourcePort       string
	SourceChannel    string
	Token            Coin
	Sender           string
	Receiver         string
	TimeoutHeight    TimeoutHeight
	TimeoutTimestamp uint64
	Memo             string
}

// EncodedMsg is a typed message encoded for signing: a protobuf type URL plus
// the encoded message value.
type EncodedMsg struct {
	TypeURL string
	Value   []byte
}

// MsgEncoder encodes typed Cosmos messages into their wire representation.
// Implementations wrap the caller's proto codec registry.
type MsgEncoder interface {
	// EncodeExecuteContract encodes a CosmWasm contract execution message.
	EncodeExecuteContract(msg ExecuteContractMsg) (EncodedMsg, error)

	// EncodeIBCTransfer encodes an IBC transfer message.
	EncodeIBCTransfer(msg IBCTransferMsg) (EncodedMsg, error)
}

// TimeoutHeightResolver resolves the block height to use as an IBC transfer
// timeout on the destination chain of a transfer.
type TimeoutHeightResolver interface {
	// TimeoutHeight returns a timeout height for a transfer to the given
	// destination address.
	TimeoutHeight(ctx context.Context, destinationAddress string) (TimeoutHeight, error)
}

// SimulationResult is the outcome of simulating a transaction.
type SimulationResult struct {
	// FeeCoins are the fee coins required to execute the transaction.
	FeeCoins []Coin
}

// TxSimulator simulates an encoded message against a chain to discover its
// execution fee.
type TxSimulator interface {
	// Simulate runs the given message as the given signer on the given chain.
	Simulate(ctx context.Context, chainID, signerAddress string, msg EncodedMsg) (*SimulationResult, error)
}
