package provider

import (
	"context"
	"strings"

	"github.com/ClipFinance/bridge-lib/cache"
	commonerrors "github.com/ClipFinance/bridge-lib/common/errors"
	"github.com/ClipFinance/bridge-lib/common/types"
	"github.com/ClipFinance/bridge-lib/skip"
	"github.com/pkg/errors"
)

// getAssets fetches the upstream asset catalog, memoized per chain id with a
// long TTL since catalogs change infrequently. An empty chainID fetches all
// catalogs.
func (p *Provider) getAssets(ctx context.Context, chainID string) (map[string]skip.ChainAssets, error) {
	key := ProviderName + "_assets_" + chainID

	return cache.GetOrComputeTyped(ctx, p.config.Cache, key, catalogTTL, func(ctx context.Context) (map[string]skip.ChainAssets, error) {
		return p.config.RouteClient.Assets(ctx, chainID)
	})
}

// getChains fetches the upstream chain catalog, memoized with a long TTL.
func (p *Provider) getChains(ctx context.Context) ([]skip.ChainRecord, error) {
	key := ProviderName + "_chains"

	return cache.GetOrComputeTyped(ctx, p.config.Cache, key, catalogTTL, func(ctx context.Context) ([]skip.ChainRecord, error) {
		return p.config.RouteClient.Chains(ctx)
	})
}

// getAsset resolves a caller supplied asset against the upstream catalog of
// its chain. Returns nil when the asset is not listed there.
//
// Address casing differs between registries, so matching is done
// case-insensitively.
func (p *Provider) getAsset(ctx context.Context, chain types.Chain, asset types.Asset) (*skip.AssetRecord, error) {
	catalog, err := p.getAssets(ctx, chain.ChainID)
	if err != nil {
		return nil, err
	}

	chainAssets, ok := catalog[chain.ChainID]
	if !ok {
		return nil, nil
	}

	for i := range chainAssets.Assets {
		record := &chainAssets.Assets[i]

		if chain.ChainType == types.EVM {
			if asset.Address == types.NativeEVMTokenAddress && record.TokenContract == "" {
				return record, nil
			}
			if strings.EqualFold(asset.Address, record.TokenContract) && record.TokenContract != "" {
				return record, nil
			}
		}

		if chain.ChainType == types.COSMOS {
			if strings.EqualFold(asset.Address, record.Denom) {
				return record, nil
			}
		}
	}

	return nil, nil
}

// GetSupportedAssets returns the asset variants on other chains that can be
// used to reach the given chain and asset: asset list counterparties (of the
// asset and of its variant group) that the upstream catalog also knows, plus
// catalog assets sharing the same origin denom and chain.
//
// This lookup is best-effort supplementary information: any internal failure
// is logged and swallowed into an empty result.
func (p *Provider) GetSupportedAssets(ctx context.Context, chain types.Chain, asset types.Asset) []types.ChainAsset {
	variants, err := p.findSupportedAssets(ctx, chain, asset)
	if err != nil {
		p.logger.WithField("provider", ProviderName).WithError(err).Warn("Failed to get supported assets")
		return []types.ChainAsset{}
	}
	return variants
}

func (p *Provider) findSupportedAssets(ctx context.Context, chain types.Chain, asset types.Asset) ([]types.ChainAsset, error) {
	chainAsset, err := p.getAsset(ctx, chain, asset)
	if err != nil {
		return nil, err
	}
	if chainAsset == nil {
		return nil, errors.Wrapf(commonerrors.ErrAssetNotFound, "asset %s on chain %s", asset.Address, chain.ChainID)
	}

	catalog, err := p.getAssets(ctx, "")
	if err != nil {
		return nil, err
	}

	foundVariants := newChainAssetSet()

	for _, counterparty := range p.collectCounterparties(asset) {
		denom := counterparty.Denom()
		if !catalogHasAsset(catalog, counterparty.ChainID, denom) {
			continue
		}

		switch counterparty.ChainType {
		case types.COSMOS, types.EVM:
			foundVariants.add(counterparty.ChainID, denom, types.ChainAsset{
				ChainID:   counterparty.ChainID,
				ChainType: counterparty.ChainType,
				Address:   denom,
				Denom:     counterparty.Symbol,
				Decimals:  counterparty.Decimals,
			})
		}
	}

	// Catalog assets sharing the transfer origin reach the same asset over
	// IBC even when the caller's asset lists do not know about them.
	for _, chainAssets := range catalog {
		for _, record := range chainAssets.Assets {
			if !strings.EqualFold(record.OriginDenom, chainAsset.OriginDenom) ||
				record.OriginChainID != chainAsset.OriginChainID ||
				strings.EqualFold(record.Denom, chainAsset.Denom) {
				continue
			}

			chainType := types.COSMOS
			if record.IsEVM {
				chainType = types.EVM
			} else if record.IsSVM {
				// No SVM chains in the bridge chain model.
				continue
			}

			decimals := asset.Decimals
			if record.Decimals != nil {
				decimals = *record.Decimals
			}

			foundVariants.add(record.ChainID, record.Denom, types.ChainAsset{
				ChainID:   record.ChainID,
				ChainType: chainType,
				Address:   record.Denom,
				Denom:     record.DisplaySymbol(),
				Decimals:  decimals,
			})
		}
	}

	return foundVariants.assets, nil
}

// collectCounterparties gathers the counterparty records of the asset list
// entry matching the given asset, together with the counterparties of every
// entry sharing its variant group.
func (p *Provider) collectCounterparties(asset types.Asset) []types.Counterparty {
	var match *types.AssetListAsset
	for i := range p.config.AssetLists {
		for j := range p.config.AssetLists[i].Assets {
			entry := &p.config.AssetLists[i].Assets[j]
			if strings.EqualFold(entry.CoinMinimalDenom, asset.Address) {
				match = entry
				break
			}
		}
		if match != nil {
			break
		}
	}
	if match == nil {
		return nil
	}

	counterparties := append([]types.Counterparty{}, match.Counterparties...)

	if match.VariantGroupKey != "" {
		for _, list := range p.config.AssetLists {
			for _, entry := range list.Assets {
				if entry.VariantGroupKey == match.VariantGroupKey {
					counterparties = append(counterparties, entry.Counterparties...)
				}
			}
		}
	}

	return counterparties
}

func catalogHasAsset(catalog map[string]skip.ChainAssets, chainID, denom string) bool {
	chainAssets, ok := catalog[chainID]
	if !ok {
		return false
	}
	for _, record := range chainAssets.Assets {
		if strings.EqualFold(record.Denom, denom) {
			return true
		}
	}
	return false
}

// chainAssetSet deduplicates variants by (chain, denom) while preserving
// insertion order.
type chainAssetSet struct {
	seen   map[string]struct{}
	assets []types.ChainAsset
}

func newChainAssetSet() *chainAssetSet {
	return &chainAssetSet{seen: make(map[string]struct{})}
}

func (s *chainAssetSet) add(chainID, denom string, asset types.ChainAsset) {
	key := chainID + "_" + strings.ToLower(denom)
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	s.assets = append(s.assets, asset)
}
