package provider

import (
	"context"

	commonerrors "github.com/ClipFinance/bridge-lib/common/errors"
	"github.com/ClipFinance/bridge-lib/common/types"
	"github.com/ClipFinance/bridge-lib/skip"
	"github.com/btcsuite/btcutil/bech32"
	"github.com/pkg/errors"
)

// getAddressList derives, for each hop chain of a route, the address that
// custodies funds mid-transit. EVM endpoint addresses pass through unchanged;
// Cosmos endpoint addresses are re-encoded with the hop's bech32 prefix; an
// intermediate Cosmos hop derives its address from whichever endpoint is a
// Cosmos address, and is skipped when neither is, so the list can be shorter
// than the hop count.
//
// Parameters:
// - ctx: the context for managing the request.
// - chainIDs: ordered hop chain ids of the route.
// - fromAddress: the sender address on the source chain.
// - toAddress: the recipient address on the destination chain.
// - fromChain: the source chain.
// - toChain: the destination chain.
//
// Returns:
// - []string: the derived addresses in hop order.
// - error: an error if a hop chain is missing from the upstream catalog or an
//   address fails to re-encode.
func (p *Provider) getAddressList(
	ctx context.Context,
	chainIDs []string,
	fromAddress string,
	toAddress string,
	fromChain types.Chain,
	toChain types.Chain,
) ([]string, error) {
	if len(chainIDs) == 0 {
		return nil, errors.Wrap(commonerrors.ErrInvalidChainID, "route has no hop chains")
	}

	allChains, err := p.getChains(ctx)
	if err != nil {
		return nil, err
	}

	if findChainRecord(allChains, chainIDs[0]) == nil {
		return nil, errors.Wrapf(commonerrors.ErrChainNotFound, "failed to find chain %s", chainIDs[0])
	}
	if findChainRecord(allChains, chainIDs[len(chainIDs)-1]) == nil {
		return nil, errors.Wrapf(commonerrors.ErrChainNotFound, "failed to find chain %s", chainIDs[len(chainIDs)-1])
	}

	addressList := make([]string, 0, len(chainIDs))

	for _, chainID := range chainIDs {
		chain := findChainRecord(allChains, chainID)
		if chain == nil {
			return nil, errors.Wrapf(commonerrors.ErrChainNotFound, "failed to find chain %s", chainID)
		}

		if chain.ChainType == types.EVM.String() &&
			chain.ChainID == fromChain.ChainID &&
			fromChain.ChainType == types.EVM {
			addressList = append(addressList, fromAddress)
		}

		if chain.ChainType == types.EVM.String() &&
			chain.ChainID == toChain.ChainID &&
			toChain.ChainType == types.EVM {
			addressList = append(addressList, toAddress)
		}

		if chain.ChainType == types.COSMOS.String() &&
			chain.ChainID == fromChain.ChainID &&
			fromChain.ChainType == types.COSMOS {
			converted, err := convertBech32Prefix(fromAddress, chain.Bech32Prefix)
			if err != nil {
				return nil, err
			}
			addressList = append(addressList, converted)
			continue
		}

		if chain.ChainType == types.COSMOS.String() &&
			chain.ChainID == toChain.ChainID &&
			toChain.ChainType == types.COSMOS {
			converted, err := convertBech32Prefix(toAddress, chain.Bech32Prefix)
			if err != nil {
				return nil, err
			}
			addressList = append(addressList, converted)
			continue
		}

		// An intermediate Cosmos hop of a multi-hop IBC route. Either
		// endpoint address may be a bech32 address whose key bytes derive
		// the middle hop address.
		if chain.ChainType == types.COSMOS.String() {
			var bech32Address string
			if fromChain.ChainType == types.COSMOS {
				bech32Address = fromAddress
			} else if toChain.ChainType == types.COSMOS {
				bech32Address = toAddress
			}
			if bech32Address == "" {
				continue
			}

			converted, err := convertBech32Prefix(bech32Address, chain.Bech32Prefix)
			if err != nil {
				return nil, err
			}
			addressList = append(addressList, converted)
		}
	}

	return addressList, nil
}

func findChainRecord(chains []skip.ChainRecord, chainID string) *skip.ChainRecord {
	for i := range chains {
		if chains[i].ChainID == chainID {
			return &chains[i]
		}
	}
	return nil
}

// convertBech32Prefix re-encodes a bech32 address under a new human readable
// prefix, preserving the underlying key bytes.
func convertBech32Prefix(address, targetPrefix string) (string, error) {
	_, data, err := bech32.Decode(address)
	if err != nil {
		return "", errors.Wrapf(err, "failed to decode address %s", address)
	}

	converted, err := bech32.Encode(targetPrefix, data)
	if err != nil {
		return "", errors.Wrapf(err, "failed to encode address with prefix %s", targetPrefix)
	}

	return converted, nil
}
