package types

// QuoteParams are the inputs of a quote request.
//
// Fields:
// - FromAmount: the input amount in the source asset's base units.
// - FromAsset: the asset being sent.
// - FromChain: the source chain.
// - ToAsset: the asset to be received.
// - ToChain: the destination chain.
// - FromAddress: the sender address on the source chain.
// - ToAddress: the recipient address on the destination chain.
// - Slippage: the accepted slippage in percent.
type QuoteParams struct {
	FromAmount  string
	FromAsset   Asset
	FromChain   Chain
	ToAsset     Asset
	ToChain     Chain
	FromAddress string
	ToAddress   string
	Slippage    float64
}

// QuoteCoin is a Coin leg of a quote, annotated with the chain it settles on.
type QuoteCoin struct {
	Coin
	ChainID string
}

// ExpectedOutput is the destination leg of a quote. PriceImpact is a
// placeholder kept at "0"; the upstream route service does not report it.
type ExpectedOutput struct {
	Coin
	PriceImpact string
}

// Quote is the verified, executable result of a quote request.
//
// Fields:
// - Input: the source asset and amount.
// - ExpectedOutput: the destination asset and amount.
// - FromChain: the source chain.
// - ToChain: the destination chain.
// - TransferFee: the bridge transfer fee; amount "0" means no fee.
// - EstimatedTime: the estimated end-to-end transfer time in seconds.
// - TransactionRequest: the unsigned transaction to execute the transfer.
// - EstimatedGasFee: the estimated execution cost; nil when the cost could
//   not be estimated.
type Quote struct {
	Input              Coin
	ExpectedOutput     ExpectedOutput
	FromChain          Chain
	ToChain            Chain
	TransferFee        QuoteCoin
	EstimatedTime      int64
	TransactionRequest TransactionRequest
	EstimatedGasFee    *Coin
}
