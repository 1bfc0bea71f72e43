package types

// TransactionRequest is the unit handed to a signer. It is a closed sum over
// the two supported execution models; consumers switch exhaustively on the
// concrete type. Immutable once built.
type TransactionRequest interface {
	// TransactionType returns the execution model of the request.
	TransactionType() ChainType
}

// EvmTransactionRequest is an unsigned EVM call.
//
// Fields:
// - To: the target contract or recipient address.
// - Data: the hex-prefixed call data.
// - Value: the native value to send, as a hex quantity (e.g. "0x0").
// - Approval: an optional ERC-20 approval that must be executed before the
//   primary call; nil when the current allowance already covers the transfer.
type EvmTransactionRequest struct {
	To       string
	Data     string
	Value    string
	Approval *ApprovalTransactionRequest
}

// TransactionType implements TransactionRequest.
func (EvmTransactionRequest) TransactionType() ChainType { return EVM }

// ApprovalTransactionRequest is a pending ERC-20 approve call.
type ApprovalTransactionRequest struct {
	To   string
	Data string
}

// CosmosTransactionRequest is an unsigned Cosmos SDK message.
//
// Fields:
// - MsgTypeURL: the protobuf type URL of the message.
// - Msg: the encoded message value.
type CosmosTransactionRequest struct {
	MsgTypeURL string
	Msg        []byte
}

// TransactionType implements TransactionRequest.
func (CosmosTransactionRequest) TransactionType() ChainType { return COSMOS }
