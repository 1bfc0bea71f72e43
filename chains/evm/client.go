// Package evm implements the read-only EVM execution client used for quote
// construction: allowance queries, approve call-data encoding, and gas
// estimation with optional storage state overrides.
package evm

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
)

// CallParams describes an EVM call to estimate or execute read-only.
type CallParams struct {
	From  common.Address
	To    common.Address
	Value *big.Int
	Data  []byte
}

// ExecutionClient provides the read-only EVM operations quote construction
// depends on.
type ExecutionClient interface {
	// Allowance queries allowance(owner, spender) on an ERC-20 contract.
	Allowance(ctx context.Context, token, owner, spender common.Address) (*big.Int, error)

	// EstimateGas estimates the gas required for a call.
	EstimateGas(ctx context.Context, call CallParams) (uint64, error)

	// EstimateGasWithOverride estimates the gas required for a call with
	// synthetic storage values applied during simulation.
	EstimateGasWithOverride(ctx context.Context, call CallParams, override StateOverride) (uint64, error)

	// SuggestGasPrice retrieves the current network gas price.
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
}

// client is the ethclient backed ExecutionClient implementation.
type client struct {
	eth *ethclient.Client
}

// Dial connects an ExecutionClient to the given RPC endpoint.
//
// Parameters:
// - rpcURL: the URL for the chain's RPC endpoint.
//
// Returns:
// - ExecutionClient: a new execution client instance.
// - error: an error if the connection fails.
func Dial(rpcURL string) (ExecutionClient, error) {
	eth, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create client")
	}
	return &client{eth: eth}, nil
}

// Allowance queries allowance(owner, spender) on an ERC-20 contract.
func (c *client) Allowance(ctx context.Context, token, owner, spender common.Address) (*big.Int, error) {
	data, err := PackAllowance(owner, spender)
	if err != nil {
		return nil, err
	}

	output, err := c.eth.CallContract(ctx, ethereum.CallMsg{To: &token, Data: data}, nil)
	if err != nil {
		return nil, errors.Wrap(err, "allowance call failed")
	}

	return UnpackAllowance(output)
}

// EstimateGas estimates the gas required for a call.
func (c *client) EstimateGas(ctx context.Context, call CallParams) (uint64, error) {
	return c.eth.EstimateGas(ctx, ethereum.CallMsg{
		From:  call.From,
		To:    &call.To,
		Value: call.Value,
		Data:  call.Data,
	})
}

// EstimateGasWithOverride estimates gas through a raw eth_estimateGas call so
// the state override parameter can be supplied; ethclient does not expose it.
func (c *client) EstimateGasWithOverride(ctx context.Context, call CallParams, override StateOverride) (uint64, error) {
	arg := map[string]interface{}{
		"from": call.From,
		"to":   call.To,
		"data": hexutil.Bytes(call.Data),
	}
	if call.Value != nil {
		arg["value"] = (*hexutil.Big)(call.Value)
	}

	var gas hexutil.Uint64
	err := c.eth.Client().CallContext(ctx, &gas, "eth_estimateGas", arg, "latest", override)
	if err != nil {
		return 0, errors.Wrap(err, "failed to estimate gas with state override")
	}

	return uint64(gas), nil
}

// SuggestGasPrice retrieves the current network gas price.
func (c *client) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return c.eth.SuggestGasPrice(ctx)
}
