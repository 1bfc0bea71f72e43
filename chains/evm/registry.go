package evm

import (
	"sync"

	commonerrors "github.com/ClipFinance/bridge-lib/common/errors"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ClientProvider resolves the execution client of an EVM chain.
type ClientProvider interface {
	// ClientForChain returns the execution client for the given chain id.
	ClientForChain(chainID string) (ExecutionClient, error)
}

// clientRegistry lazily dials and caches one execution client per chain,
// using the static chain info table for endpoint discovery.
type clientRegistry struct {
	logger       *logrus.Logger
	clients      map[string]ExecutionClient
	clientsMutex sync.RWMutex
	dial         func(rpcURL string) (ExecutionClient, error)
}

// NewClientRegistry creates a client registry backed by the static chain info
// table.
//
// Parameters:
// - logger: the logger for logging events.
//
// Returns:
// - ClientProvider: a new client registry instance.
func NewClientRegistry(logger *logrus.Logger) ClientProvider {
	return &clientRegistry{
		logger:  logger,
		clients: make(map[string]ExecutionClient),
		dial:    Dial,
	}
}

func (r *clientRegistry) ClientForChain(chainID string) (ExecutionClient, error) {
	r.clientsMutex.RLock()
	client, ok := r.clients[chainID]
	r.clientsMutex.RUnlock()
	if ok {
		return client, nil
	}

	info := FindChainInfo(chainID)
	if info == nil {
		return nil, errors.Wrapf(commonerrors.ErrChainNotFound, "could not find EVM chain %s", chainID)
	}

	r.clientsMutex.Lock()
	defer r.clientsMutex.Unlock()

	// Another caller may have dialed while the write lock was contended.
	if client, ok := r.clients[chainID]; ok {
		return client, nil
	}

	client, err := r.dial(info.RpcUrl)
	if err != nil {
		r.logger.WithField("chain", info.Name).WithError(err).Error("Failed to dial execution client")
		return nil, err
	}

	r.clients[chainID] = client
	return client, nil
}
