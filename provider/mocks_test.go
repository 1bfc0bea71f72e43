package provider

import (
	"context"
	"math/big"
	"sync/atomic"
	"time"

	"github.com/ClipFinance/bridge-lib/cache"
	"github.com/ClipFinance/bridge-lib/chains/cosmos"
	"github.com/ClipFinance/bridge-lib/chains/evm"
	"github.com/ClipFinance/bridge-lib/common/types"
	"github.com/ClipFinance/bridge-lib/skip"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"
)

type mockRouteClient struct {
	route      *skip.Route
	routeErr   error
	routeDelay time.Duration
	routeCalls int32

	msgs    []skip.Msg
	msgsErr error

	assets    map[string]skip.ChainAssets
	assetsErr error

	chains    []skip.ChainRecord
	chainsErr error
}

func (m *mockRouteClient) Route(ctx context.Context, req skip.RouteRequest) (*skip.Route, error) {
	atomic.AddInt32(&m.routeCalls, 1)
	if m.routeDelay > 0 {
		time.Sleep(m.routeDelay)
	}
	if m.routeErr != nil {
		return nil, m.routeErr
	}
	return m.route, nil
}

func (m *mockRouteClient) Msgs(ctx context.Context, req skip.MsgsRequest) (*skip.MsgsResponse, error) {
	if m.msgsErr != nil {
		return nil, m.msgsErr
	}
	return &skip.MsgsResponse{Msgs: m.msgs}, nil
}

func (m *mockRouteClient) Assets(ctx context.Context, chainID string) (map[string]skip.ChainAssets, error) {
	if m.assetsErr != nil {
		return nil, m.assetsErr
	}
	return m.assets, nil
}

func (m *mockRouteClient) Chains(ctx context.Context) ([]skip.ChainRecord, error) {
	if m.chainsErr != nil {
		return nil, m.chainsErr
	}
	return m.chains, nil
}

type mockEvmClient struct {
	allowance    *big.Int
	allowanceErr error

	estimatedGas   uint64
	estimateErr    error
	overrideCalled bool
	lastOverride   evm.StateOverride

	gasPrice    *big.Int
	gasPriceErr error
}

func (m *mockEvmClient) Allowance(ctx context.Context, token, owner, spender common.Address) (*big.Int, error) {
	if m.allowanceErr != nil {
		return nil, m.allowanceErr
	}
	return m.allowance, nil
}

func (m *mockEvmClient) EstimateGas(ctx context.Context, call evm.CallParams) (uint64, error) {
	if m.estimateErr != nil {
		return 0, m.estimateErr
	}
	return m.estimatedGas, nil
}

func (m *mockEvmClient) EstimateGasWithOverride(ctx context.Context, call evm.CallParams, override evm.StateOverride) (uint64, error) {
	m.overrideCalled = true
	m.lastOverride = override
	if m.estimateErr != nil {
		return 0, m.estimateErr
	}
	return m.estimatedGas, nil
}

func (m *mockEvmClient) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	if m.gasPriceErr != nil {
		return nil, m.gasPriceErr
	}
	return m.gasPrice, nil
}

type mockClientProvider struct {
	client evm.ExecutionClient
	err    error
}

func (m *mockClientProvider) ClientForChain(chainID string) (evm.ExecutionClient, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.client, nil
}

type mockMsgEncoder struct {
	lastExecuteContract *cosmos.ExecuteContractMsg
	lastIBCTransfer     *cosmos.IBCTransferMsg
	err                 error
}

func (m *mockMsgEncoder) EncodeExecuteContract(msg cosmos.ExecuteContractMsg) (cosmos.EncodedMsg, error) {
	if m.err != nil {
		return cosmos.EncodedMsg{}, m.err
	}
	m.lastExecuteContract = &msg
	return cosmos.EncodedMsg{
		TypeURL: "/cosmwasm.wasm.v1.MsgExecuteContract",
		Value:   []byte("encoded-execute-contract"),
	}, nil
}

func (m *mockMsgEncoder) EncodeIBCTransfer(msg cosmos.IBCTransferMsg) (cosmos.EncodedMsg, error) {
	if m.err != nil {
		return cosmos.EncodedMsg{}, m.err
	}
	m.lastIBCTransfer = &msg
	return cosmos.EncodedMsg{
		TypeURL: "/ibc.applications.transfer.v1.MsgTransfer",
		Value:   []byte("encoded-ibc-transfer"),
	}, nil
}

type mockTimeoutResolver struct {
	height      cosmos.TimeoutHeight
	err         error
	lastAddress string
}

func (m *mockTimeoutResolver) TimeoutHeight(ctx context.Context, destinationAddress string) (cosmos.TimeoutHeight, error) {
	m.lastAddress = destinationAddress
	if m.err != nil {
		return cosmos.TimeoutHeight{}, m.err
	}
	return m.height, nil
}

type mockTxSimulator struct {
	result *cosmos.SimulationResult
	err    error
}

func (m *mockTxSimulator) Simulate(ctx context.Context, chainID, signerAddress string, msg cosmos.EncodedMsg) (*cosmos.SimulationResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

type mockStatusClient struct {
	blockTimes map[string]int64
	err        error
}

func (m *mockStatusClient) AverageBlockTimeMs(ctx context.Context, rpcURL string) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.blockTimes[rpcURL], nil
}

func newTestConfig(routeClient RouteClient) Config {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	return Config{
		Env:            types.Mainnet,
		Logger:         logger,
		Cache:          cache.New(time.Minute),
		RouteClient:    routeClient,
		EvmClients:     &mockClientProvider{client: &mockEvmClient{}},
		MsgEncoder:     &mockMsgEncoder{},
		TxSimulator:    &mockTxSimulator{},
		TimeoutHeights: &mockTimeoutResolver{},
		StatusClient:   &mockStatusClient{},
	}
}
