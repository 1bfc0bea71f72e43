// Package provider implements the bridge quoting and transaction
// construction pipeline on top of the Skip route-finding service: asset
// resolution, route and message fetching, chain-native transaction building,
// and transfer time / execution cost estimation.
package provider

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"github.com/ClipFinance/bridge-lib/cache"
	"github.com/ClipFinance/bridge-lib/chains/cosmos"
	"github.com/ClipFinance/bridge-lib/chains/evm"
	commonerrors "github.com/ClipFinance/bridge-lib/common/errors"
	"github.com/ClipFinance/bridge-lib/common/types"
	"github.com/ClipFinance/bridge-lib/skip"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ProviderName identifies this bridge provider in errors and cache keys.
const ProviderName = "Skip"

const (
	quoteTTL   = 20 * time.Second
	catalogTTL = 30 * time.Minute
)

// RouteClient is the consumed contract of the upstream route-finding service.
// Implemented by skip.Client.
type RouteClient interface {
	Route(ctx context.Context, req skip.RouteRequest) (*skip.Route, error)
	Msgs(ctx context.Context, req skip.MsgsRequest) (*skip.MsgsResponse, error)
	Assets(ctx context.Context, chainID string) (map[string]skip.ChainAssets, error)
	Chains(ctx context.Context) ([]skip.ChainRecord, error)
}

// Config holds the collaborators and caller-supplied catalogs of a Provider.
//
// Fields:
// - Env: the upstream deployment; quote caching and external URLs are
//   disabled on Testnet.
// - Logger: the logger for logging events.
// - Cache: the memoization layer for quotes and catalog fetches.
// - AssetLists: the caller's asset catalogs with counterparty metadata.
// - ChainList: the caller's Cosmos chain descriptors with RPC endpoints.
// - RouteClient: the route-finding service client.
// - EvmClients: the per-chain EVM execution client resolver.
// - MsgEncoder: the Cosmos message codec.
// - TxSimulator: the Cosmos transaction simulation collaborator.
// - TimeoutHeights: the IBC timeout height resolver.
// - StatusClient: the Cosmos status-RPC block time client.
type Config struct {
	Env            types.Environment
	Logger         *logrus.Logger
	Cache          *cache.Cache
	AssetLists     []types.AssetList
	ChainList      []types.CosmosChainConfig
	RouteClient    RouteClient
	EvmClients     evm.ClientProvider
	MsgEncoder     cosmos.MsgEncoder
	TxSimulator    cosmos.TxSimulator
	TimeoutHeights cosmos.TimeoutHeightResolver
	StatusClient   cosmos.StatusClient
}

// Provider produces verified, executable bridge quotes.
type Provider struct {
	config Config
	logger *logrus.Logger
}

// NewProvider creates a new Provider from the given configuration.
//
// Parameters:
// - config: the provider configuration.
//
// Returns:
// - *Provider: a new Provider instance.
// - error: an error if a required collaborator is missing.
func NewProvider(config Config) (*Provider, error) {
	if config.Logger == nil {
		config.Logger = logrus.New()
	}
	if config.Cache == nil {
		return nil, errors.Wrap(commonerrors.ErrInvalidConfig, "cache not provided")
	}
	if config.RouteClient == nil {
		return nil, errors.Wrap(commonerrors.ErrInvalidConfig, "route client not provided")
	}
	if config.EvmClients == nil {
		return nil, errors.Wrap(commonerrors.ErrClientNotProvided, "evm client provider")
	}
	if config.MsgEncoder == nil {
		return nil, errors.Wrap(commonerrors.ErrEncoderNotProvided, "cosmos message encoder")
	}

	return &Provider{
		config: config,
		logger: config.Logger,
	}, nil
}

// GetQuote resolves, prices and builds a transfer in a single pipeline. The
// result is memoized by the full serialized input with a short TTL; identical
// concurrent requests share one upstream call sequence.
//
// Parameters:
// - ctx: the context for managing the request.
// - params: the quote request inputs.
//
// Returns:
// - *types.Quote: the assembled quote.
// - error: a classified quote error, or the underlying failure unchanged.
func (p *Provider) GetQuote(ctx context.Context, params types.QuoteParams) (*types.Quote, error) {
	key, err := quoteCacheKey(params)
	if err != nil {
		return nil, err
	}

	ttl := quoteTTL
	if p.config.Env == types.Testnet {
		ttl = 0
	}

	return cache.GetOrComputeTyped(ctx, p.config.Cache, key, ttl, func(ctx context.Context) (*types.Quote, error) {
		return p.fetchQuote(ctx, params)
	})
}

// GetTransactionData returns only the transaction request of a quote.
func (p *Provider) GetTransactionData(ctx context.Context, params types.QuoteParams) (types.TransactionRequest, error) {
	quote, err := p.GetQuote(ctx, params)
	if err != nil {
		return nil, err
	}
	return quote.TransactionRequest, nil
}

func (p *Provider) fetchQuote(ctx context.Context, params types.QuoteParams) (*types.Quote, error) {
	sourceAsset, err := p.getAsset(ctx, params.FromChain, params.FromAsset)
	if err != nil {
		return nil, err
	}
	if sourceAsset == nil {
		return nil, commonerrors.NewQuoteError(ProviderName, commonerrors.UnsupportedQuoteError,
			"Unsupported asset "+params.FromAsset.Denom+" on "+params.FromChain.ChainName)
	}

	destinationAsset, err := p.getAsset(ctx, params.ToChain, params.ToAsset)
	if err != nil {
		return nil, err
	}
	if destinationAsset == nil {
		return nil, commonerrors.NewQuoteError(ProviderName, commonerrors.UnsupportedQuoteError,
			"Unsupported asset "+params.ToAsset.Denom+" on "+params.ToChain.ChainName)
	}

	route, err := p.config.RouteClient.Route(ctx, skip.RouteRequest{
		SourceAssetDenom:   sourceAsset.Denom,
		SourceAssetChainID: params.FromChain.ChainID,
		DestAssetDenom:     destinationAsset.Denom,
		DestAssetChainID:   params.ToChain.ChainID,
		AmountIn:           params.FromAmount,
	})
	if err != nil {
		return nil, commonerrors.ClassifyRouteError(ProviderName, err)
	}

	addressList, err := p.getAddressList(ctx, route.ChainIDs, params.FromAddress, params.ToAddress, params.FromChain, params.ToChain)
	if err != nil {
		return nil, err
	}

	transferFee := p.extractTransferFee(route, params)

	msgsResp, err := p.config.RouteClient.Msgs(ctx, skip.MsgsRequest{
		AddressList:        addressList,
		SourceAssetDenom:   route.SourceAssetDenom,
		SourceAssetChainID: route.SourceAssetChainID,
		DestAssetDenom:     route.DestAssetDenom,
		DestAssetChainID:   route.DestAssetChainID,
		AmountIn:           route.AmountIn,
		AmountOut:          route.AmountOut,
		Operations:         route.Operations,
	})
	if err != nil {
		return nil, err
	}

	transactionRequest, err := p.createTransaction(ctx, params.FromChain.ChainID, params.FromAddress, msgsResp.Msgs)
	if err != nil {
		return nil, err
	}

	// Transfer time and gas cost have no data dependency on each other.
	var estimatedTime int64
	var estimatedGasFee *types.Coin

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		estimatedTime, err = p.EstimateTotalTransferTime(groupCtx, route.ChainIDs)
		return err
	})
	group.Go(func() error {
		var err error
		estimatedGasFee, err = p.estimateGasFee(groupCtx, params, transactionRequest)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &types.Quote{
		Input: types.Coin{
			Amount:   params.FromAmount,
			Denom:    params.FromAsset.Denom,
			Decimals: params.FromAsset.Decimals,
			Address:  params.FromAsset.Address,
		},
		ExpectedOutput: types.ExpectedOutput{
			Coin: types.Coin{
				Amount:   route.AmountOut,
				Denom:    params.ToAsset.Denom,
				Decimals: params.ToAsset.Decimals,
				Address:  params.ToAsset.Address,
			},
			PriceImpact: "0",
		},
		FromChain:          params.FromChain,
		ToChain:            params.ToChain,
		TransferFee:        transferFee,
		EstimatedTime:      estimatedTime,
		TransactionRequest: transactionRequest,
		EstimatedGasFee:    estimatedGasFee,
	}, nil
}

// extractTransferFee scans the route operations for bridge fees. The last
// fee-bearing operation wins; routes without one are free, denominated in the
// source asset.
func (p *Provider) extractTransferFee(route *skip.Route, params types.QuoteParams) types.QuoteCoin {
	transferFee := types.QuoteCoin{
		Coin: types.Coin{
			Amount:   "0",
			Denom:    params.FromAsset.Denom,
			Decimals: params.FromAsset.Decimals,
			Address:  params.FromAsset.Address,
		},
		ChainID: params.FromChain.ChainID,
	}

	for _, operation := range route.Operations {
		if operation.AxelarTransfer == nil {
			continue
		}

		feeAsset := operation.AxelarTransfer.FeeAsset

		denom := feeAsset.Denom
		if feeAsset.Symbol != "" {
			denom = feeAsset.Symbol
		}

		address := feeAsset.TokenContract
		if feeAsset.IsEVM && feeAsset.TokenContract == "" {
			address = types.NativeEVMTokenAddress
		}

		decimals := int32(6)
		if feeAsset.Decimals != nil {
			decimals = *feeAsset.Decimals
		}

		transferFee = types.QuoteCoin{
			Coin: types.Coin{
				Amount:   operation.AxelarTransfer.FeeAmount,
				Denom:    denom,
				Decimals: decimals,
				Address:  address,
			},
			ChainID: feeAsset.ChainID,
		}
	}

	return transferFee
}

// ExternalURLParams are the inputs of GetExternalUrl.
type ExternalURLParams struct {
	FromChain types.Chain
	ToChain   types.Chain
	FromAsset types.Asset
	ToAsset   types.Asset
}

// ExternalURL is a redirect to the bridge operator's own frontend,
// prefilled for the requested transfer.
type ExternalURL struct {
	ProviderName string
	URL          *url.URL
}

// GetExternalUrl formats a redirect URL for the requested transfer. Returns
// nil in the testnet environment.
func (p *Provider) GetExternalUrl(params ExternalURLParams) (*ExternalURL, error) {
	if p.config.Env == types.Testnet {
		return nil, nil
	}

	redirect, err := url.Parse("https://go.skip.build/")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse external url")
	}

	query := redirect.Query()
	query.Set("src_chain", params.FromChain.ChainID)
	query.Set("src_asset", strings.ToLower(params.FromAsset.Address))
	query.Set("dest_chain", params.ToChain.ChainID)
	query.Set("dest_asset", strings.ToLower(params.ToAsset.Address))
	redirect.RawQuery = query.Encode()

	return &ExternalURL{ProviderName: "Skip:Go", URL: redirect}, nil
}

// quoteCacheKey derives the memoization key from the full deterministic
// serialization of the request inputs.
func quoteCacheKey(params types.QuoteParams) (string, error) {
	key, err := json.Marshal(struct {
		ID          string
		FromAmount  string
		FromAsset   types.Asset
		FromChain   types.Chain
		FromAddress string
		ToAddress   string
		ToAsset     types.Asset
		ToChain     types.Chain
		Slippage    float64
	}{
		ID:          ProviderName,
		FromAmount:  params.FromAmount,
		FromAsset:   params.FromAsset,
		FromChain:   params.FromChain,
		FromAddress: params.FromAddress,
		ToAddress:   params.ToAddress,
		ToAsset:     params.ToAsset,
		ToChain:     params.ToChain,
		Slippage:    params.Slippage,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to serialize quote params")
	}

	return string(key), nil
}
