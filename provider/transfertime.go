package provider

import (
	"context"

	"github.com/ClipFinance/bridge-lib/chains/cosmos"
	"github.com/ClipFinance/bridge-lib/chains/evm"
	commonerrors "github.com/ClipFinance/bridge-lib/common/errors"
	"github.com/ClipFinance/bridge-lib/common/types"
	"golang.org/x/sync/errgroup"
)

// EstimateTotalTransferTime sums the estimated transfer time of each hop pair
// of a route.
//
// Parameters:
// - ctx: the context for managing the request.
// - chainIDs: ordered hop chain ids, at least two.
//
// Returns:
// - int64: the total estimated transfer time in seconds.
// - error: an error if fewer than two hops are given or a block time lookup
//   fails.
func (p *Provider) EstimateTotalTransferTime(ctx context.Context, chainIDs []string) (int64, error) {
	if len(chainIDs) < 2 {
		return 0, commonerrors.ErrNotEnoughHops
	}

	var totalTransferTime int64
	for i := 0; i < len(chainIDs)-1; i++ {
		transferTime, err := p.EstimateTransferTime(ctx, chainIDs[i], chainIDs[i+1])
		if err != nil {
			return 0, err
		}
		totalTransferTime += transferTime
	}

	return totalTransferTime, nil
}

// EstimateTransferTime estimates the transfer time between two adjacent hop
// chains in seconds, from the average block times of the two sides. A
// Cosmos-to-Cosmos pair is an IBC transfer whose initiating, lockup and
// timeout-ack transactions execute sequentially; a pair with an EVM side is
// bounded by the slower side's finality instead.
func (p *Provider) EstimateTransferTime(ctx context.Context, fromChainID, toChainID string) (int64, error) {
	fromCosmosChain := p.findCosmosChain(fromChainID)
	toCosmosChain := p.findCosmosChain(toChainID)

	var fromBlockTimeMs, toBlockTimeMs int64

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		fromBlockTimeMs, err = p.blockTimeMs(groupCtx, fromChainID, fromCosmosChain)
		return err
	})
	group.Go(func() error {
		var err error
		toBlockTimeMs, err = p.blockTimeMs(groupCtx, toChainID, toCosmosChain)
		return err
	})
	if err := group.Wait(); err != nil {
		return 0, err
	}

	if fromCosmosChain != nil && toCosmosChain != nil {
		// initiating tx + lockup tx + timeout ack tx
		return (fromBlockTimeMs + toBlockTimeMs + fromBlockTimeMs) / 1000, nil
	}

	return max(fromBlockTimeMs, toBlockTimeMs) / 1000, nil
}

// blockTimeMs resolves one side of a hop pair: live average block time for a
// Cosmos chain with a status endpoint, a fixed fallback for one without, and
// the static finality table for EVM chains.
func (p *Provider) blockTimeMs(ctx context.Context, chainID string, cosmosChain *types.CosmosChainConfig) (int64, error) {
	if cosmosChain == nil {
		return evm.FinalityTimeSeconds(chainID) * 1000, nil
	}

	rpcURL := cosmosChain.FirstRPC()
	if rpcURL == "" || p.config.StatusClient == nil {
		return cosmos.FallbackBlockTimeMs, nil
	}

	return p.config.StatusClient.AverageBlockTimeMs(ctx, rpcURL)
}

func (p *Provider) findCosmosChain(chainID string) *types.CosmosChainConfig {
	for i := range p.config.ChainList {
		if p.config.ChainList[i].ChainID == chainID {
			return &p.config.ChainList[i]
		}
	}
	return nil
}
