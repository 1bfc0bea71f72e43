package provider

import (
	"github.com/ClipFinance/bridge-lib/cache"
	"github.com/ClipFinance/bridge-lib/chains/cosmos"
	"github.com/ClipFinance/bridge-lib/chains/evm"
	"github.com/ClipFinance/bridge-lib/common/types"
	"github.com/sirupsen/logrus"
)

// Builder is a builder pattern implementation for provider configuration.
// It allows setting the collaborators of the quoting pipeline such as the
// route client, execution clients, codec and simulation layers.
type Builder struct {
	config Config
}

// NewBuilder creates a new provider builder for the given environment.
//
// Parameters:
// - env: the upstream deployment to talk to.
//
// Returns:
// - *Builder: a new Builder instance.
func NewBuilder(env types.Environment) *Builder {
	return &Builder{config: Config{Env: env}}
}

// WithLogger sets the logger.
func (b *Builder) WithLogger(logger *logrus.Logger) *Builder {
	b.config.Logger = logger
	return b
}

// WithCache sets the memoization layer.
func (b *Builder) WithCache(c *cache.Cache) *Builder {
	b.config.Cache = c
	return b
}

// WithAssetLists sets the caller's asset catalogs.
func (b *Builder) WithAssetLists(lists []types.AssetList) *Builder {
	b.config.AssetLists = lists
	return b
}

// WithChainList sets the caller's Cosmos chain descriptors.
func (b *Builder) WithChainList(chains []types.CosmosChainConfig) *Builder {
	b.config.ChainList = chains
	return b
}

// WithRouteClient sets the route-finding service client.
func (b *Builder) WithRouteClient(client RouteClient) *Builder {
	b.config.RouteClient = client
	return b
}

// WithEvmClients sets the per-chain EVM execution client resolver.
func (b *Builder) WithEvmClients(clients evm.ClientProvider) *Builder {
	b.config.EvmClients = clients
	return b
}

// WithMsgEncoder sets the Cosmos message codec.
func (b *Builder) WithMsgEncoder(encoder cosmos.MsgEncoder) *Builder {
	b.config.MsgEncoder = encoder
	return b
}

// WithTxSimulator sets the Cosmos transaction simulation collaborator.
func (b *Builder) WithTxSimulator(simulator cosmos.TxSimulator) *Builder {
	b.config.TxSimulator = simulator
	return b
}

// WithTimeoutHeightResolver sets the IBC timeout height resolver.
func (b *Builder) WithTimeoutHeightResolver(resolver cosmos.TimeoutHeightResolver) *Builder {
	b.config.TimeoutHeights = resolver
	return b
}

// WithStatusClient sets the Cosmos status-RPC block time client.
func (b *Builder) WithStatusClient(client cosmos.StatusClient) *Builder {
	b.config.StatusClient = client
	return b
}

// Build creates a new provider with the configured collaborators.
//
// Returns:
// - *Provider: a new Provider instance.
// - error: an error if a required collaborator is missing.
func (b *Builder) Build() (*Provider, error) {
	return NewProvider(b.config)
}
