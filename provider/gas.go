package provider

import (
	"context"
	"math/big"

	"github.com/ClipFinance/bridge-lib/chains/cosmos"
	"github.com/ClipFinance/bridge-lib/chains/evm"
	commonerrors "github.com/ClipFinance/bridge-lib/common/errors"
	"github.com/ClipFinance/bridge-lib/common/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// estimateGasFee estimates the cost of executing the built transaction using
// chain-appropriate simulation. A nil result with nil error means the cost
// could not be estimated; the quote still stands, with the fee unknown.
func (p *Provider) estimateGasFee(ctx context.Context, params types.QuoteParams, txRequest types.TransactionRequest) (*types.Coin, error) {
	switch tx := txRequest.(type) {
	case types.EvmTransactionRequest:
		return p.estimateEvmGasFee(ctx, params, tx)
	case types.CosmosTransactionRequest:
		return p.estimateCosmosGasFee(ctx, params, tx)
	default:
		return nil, nil
	}
}

func (p *Provider) estimateEvmGasFee(ctx context.Context, params types.QuoteParams, tx types.EvmTransactionRequest) (*types.Coin, error) {
	info := evm.FindChainInfo(params.FromChain.ChainID)
	if info == nil {
		return nil, errors.Wrapf(commonerrors.ErrChainNotFound, "could not find EVM chain %s", params.FromChain.ChainID)
	}

	client, err := p.config.EvmClients.ClientForChain(params.FromChain.ChainID)
	if err != nil {
		return nil, err
	}

	estimatedGas := p.estimateEvmGasWithStateOverride(ctx, client, params, tx)
	if estimatedGas == 0 {
		return nil, nil
	}

	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get gas price")
	}
	if gasPrice == nil || gasPrice.Sign() == 0 {
		return nil, commonerrors.ErrGasPriceUnavailable
	}

	gasCost := new(big.Int).Mul(new(big.Int).SetUint64(estimatedGas), gasPrice)

	return &types.Coin{
		Amount:   gasCost.String(),
		Denom:    info.NativeCurrency.Symbol,
		Decimals: info.NativeCurrency.Decimals,
		Address:  types.NativeEVMTokenAddress,
	}, nil
}

// estimateEvmGasWithStateOverride estimates gas for the primary call. When a
// pending approval exists, the token's allowance storage slot is overridden
// to the maximum during simulation, so estimation succeeds without the
// approval having executed. Estimation failures (including simulated
// reverts) yield zero, meaning "cannot estimate".
func (p *Provider) estimateEvmGasWithStateOverride(
	ctx context.Context,
	client evm.ExecutionClient,
	params types.QuoteParams,
	tx types.EvmTransactionRequest,
) uint64 {
	call, err := evmCallParams(params.FromAddress, tx)
	if err != nil {
		p.logger.WithError(err).Warn("Failed to decode transaction for gas estimation")
		return 0
	}

	var estimatedGas uint64
	if tx.Approval == nil {
		estimatedGas, err = client.EstimateGas(ctx, call)
	} else {
		override := evm.AllowanceOverride(
			common.HexToAddress(tx.Approval.To),
			common.HexToAddress(params.FromAddress),
			common.HexToAddress(tx.To),
		)
		estimatedGas, err = client.EstimateGasWithOverride(ctx, call, override)
	}
	if err != nil {
		p.logger.WithField("chain", params.FromChain.ChainID).WithError(err).Warn("Failed to estimate gas")
		return 0
	}

	return estimatedGas
}

func evmCallParams(fromAddress string, tx types.EvmTransactionRequest) (evm.CallParams, error) {
	data, err := hexutil.Decode(tx.Data)
	if err != nil {
		return evm.CallParams{}, errors.Wrap(err, "invalid call data")
	}

	var value *big.Int
	if tx.Value != "" {
		value, err = hexutil.DecodeBig(tx.Value)
		if err != nil {
			return evm.CallParams{}, errors.Wrap(err, "invalid call value")
		}
	}

	return evm.CallParams{
		From:  common.HexToAddress(fromAddress),
		To:    common.HexToAddress(tx.To),
		Value: value,
		Data:  data,
	}, nil
}

func (p *Provider) estimateCosmosGasFee(ctx context.Context, params types.QuoteParams, tx types.CosmosTransactionRequest) (*types.Coin, error) {
	if p.config.TxSimulator == nil {
		return nil, errors.Wrap(commonerrors.ErrInvalidConfig, "tx simulator not provided")
	}

	simulation, err := p.config.TxSimulator.Simulate(ctx, params.FromChain.ChainID, params.FromAddress, cosmos.EncodedMsg{
		TypeURL: tx.MsgTypeURL,
		Value:   tx.Msg,
	})
	if err != nil {
		return nil, commonerrors.ClassifySimulationError(ProviderName, err)
	}
	if len(simulation.FeeCoins) == 0 {
		return nil, errors.New("simulation returned no fee coins")
	}

	gasFee := simulation.FeeCoins[0]

	// Resolve display symbol and decimals from the asset catalog, falling
	// back to the raw denom.
	denom := gasFee.Denom
	decimals := int32(0)
	address := gasFee.Denom

	catalog, err := p.getAssets(ctx, "")
	if err != nil {
		return nil, err
	}
	if chainAssets, ok := catalog[params.FromChain.ChainID]; ok {
		for _, record := range chainAssets.Assets {
			if record.Denom != gasFee.Denom {
				continue
			}
			if record.Symbol != "" {
				denom = record.Symbol
			}
			if record.Decimals != nil {
				decimals = *record.Decimals
			}
			address = record.Denom
			break
		}
	}

	return &types.Coin{
		Amount:   gasFee.Amount,
		Denom:    denom,
		Decimals: decimals,
		Address:  address,
	}, nil
}
