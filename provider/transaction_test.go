package provider

import (
	"context"
	"math/big"
	"testing"

	"github.com/ClipFinance/bridge-lib/chains/cosmos"
	commonerrors "github.com/ClipFinance/bridge-lib/common/errors"
	"github.com/ClipFinance/bridge-lib/common/types"
	"github.com/ClipFinance/bridge-lib/skip"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestCreateEvmTransactionApprovalRequired(t *testing.T) {
	evmClient := &mockEvmClient{allowance: big.NewInt(10)}

	config := newTestConfig(&mockRouteClient{})
	config.EvmClients = &mockClientProvider{client: evmClient}

	p, err := NewProvider(config)
	require.NoError(t, err)

	msgs := []skip.Msg{
		{EvmTx: &skip.EvmTx{
			ChainID: "1",
			To:      "0x1111111111111111111111111111111111111111",
			Data:    "abcdef",
			Value:   "1000",
			RequiredERC20Approvals: []skip.ERC20Approval{
				{
					TokenContract: "0x2222222222222222222222222222222222222222",
					Spender:       "0x1111111111111111111111111111111111111111",
					Amount:        "50",
				},
			},
		}},
	}

	txRequest, err := p.createTransaction(context.Background(), "1",
		"0x3333333333333333333333333333333333333333", msgs)
	require.NoError(t, err)

	evmRequest, ok := txRequest.(types.EvmTransactionRequest)
	require.True(t, ok)
	require.Equal(t, "0x1111111111111111111111111111111111111111", evmRequest.To)
	require.Equal(t, "0xabcdef", evmRequest.Data)
	require.Equal(t, "0x3e8", evmRequest.Value)

	require.NotNil(t, evmRequest.Approval)
	require.Equal(t, "0x2222222222222222222222222222222222222222", evmRequest.Approval.To)
	// approve(address,uint256) selector
	require.Equal(t, "0x095ea7b3", evmRequest.Approval.Data[:10])
}

func TestCreateEvmTransactionSufficientAllowance(t *testing.T) {
	evmClient := &mockEvmClient{allowance: big.NewInt(100)}

	config := newTestConfig(&mockRouteClient{})
	config.EvmClients = &mockClientProvider{client: evmClient}

	p, err := NewProvider(config)
	require.NoError(t, err)

	msgs := []skip.Msg{
		{EvmTx: &skip.EvmTx{
			To:    "0x1111111111111111111111111111111111111111",
			Value: "0",
			RequiredERC20Approvals: []skip.ERC20Approval{
				{
					TokenContract: "0x2222222222222222222222222222222222222222",
					Spender:       "0x1111111111111111111111111111111111111111",
					Amount:        "50",
				},
			},
		}},
	}

	txRequest, err := p.createTransaction(context.Background(), "1",
		"0x3333333333333333333333333333333333333333", msgs)
	require.NoError(t, err)

	evmRequest, ok := txRequest.(types.EvmTransactionRequest)
	require.True(t, ok)
	require.Nil(t, evmRequest.Approval)
}

func TestCreateCosmosTransactionContractExecute(t *testing.T) {
	encoder := &mockMsgEncoder{}

	config := newTestConfig(&mockRouteClient{})
	config.MsgEncoder = encoder

	p, err := NewProvider(config)
	require.NoError(t, err)

	osmoAddress := testBech32Address(t, "osmo")
	body := `{"sender":"` + osmoAddress + `",` +
		`"contract":"` + osmoAddress + `",` +
		`"msg":{"swap_and_action":{}},` +
		`"funds":[{"denom":"uosmo","amount":"1000000"}]}`

	msgs := []skip.Msg{
		{MultiChainMsg: &skip.MultiChainMsg{ChainID: "osmosis-1", Msg: body}},
	}

	txRequest, err := p.createTransaction(context.Background(), "osmosis-1", osmoAddress, msgs)
	require.NoError(t, err)

	cosmosRequest, ok := txRequest.(types.CosmosTransactionRequest)
	require.True(t, ok)
	require.Equal(t, "/cosmwasm.wasm.v1.MsgExecuteContract", cosmosRequest.MsgTypeURL)

	require.NotNil(t, encoder.lastExecuteContract)
	require.Equal(t, osmoAddress, encoder.lastExecuteContract.Contract)
	require.JSONEq(t, `{"swap_and_action":{}}`, string(encoder.lastExecuteContract.Msg))
	require.Equal(t, []cosmos.Coin{{Denom: "uosmo", Amount: "1000000"}}, encoder.lastExecuteContract.Funds)
}

func TestCreateCosmosTransactionIBCTransfer(t *testing.T) {
	encoder := &mockMsgEncoder{}
	timeouts := &mockTimeoutResolver{height: cosmos.TimeoutHeight{RevisionNumber: 4, RevisionHeight: 12345}}

	config := newTestConfig(&mockRouteClient{})
	config.MsgEncoder = encoder
	config.TimeoutHeights = timeouts

	p, err := NewProvider(config)
	require.NoError(t, err)

	osmoAddress := testBech32Address(t, "osmo")
	hubAddress := testBech32Address(t, "cosmos")
	body := `{"source_port":"transfer","source_channel":"channel-141",` +
		`"token":{"denom":"uosmo","amount":"500"},` +
		`"sender":"` + osmoAddress + `","receiver":"` + hubAddress + `","memo":"m"}`

	msgs := []skip.Msg{
		{MultiChainMsg: &skip.MultiChainMsg{ChainID: "osmosis-1", Msg: body}},
	}

	txRequest, err := p.createTransaction(context.Background(), "osmosis-1", osmoAddress, msgs)
	require.NoError(t, err)

	cosmosRequest, ok := txRequest.(types.CosmosTransactionRequest)
	require.True(t, ok)
	require.Equal(t, "/ibc.applications.transfer.v1.MsgTransfer", cosmosRequest.MsgTypeURL)

	// The timeout height is resolved on the receiving chain.
	require.Equal(t, hubAddress, timeouts.lastAddress)

	require.NotNil(t, encoder.lastIBCTransfer)
	require.Equal(t, "channel-141", encoder.lastIBCTransfer.SourceChannel)
	require.Equal(t, cosmos.Coin{Denom: "uosmo", Amount: "500"}, encoder.lastIBCTransfer.Token)
	require.Equal(t, cosmos.TimeoutHeight{RevisionNumber: 4, RevisionHeight: 12345}, encoder.lastIBCTransfer.TimeoutHeight)
	require.Equal(t, uint64(0), encoder.lastIBCTransfer.TimeoutTimestamp)
	require.Equal(t, "m", encoder.lastIBCTransfer.Memo)
}

func TestCreateTransactionSkipsUnrecognizedVariants(t *testing.T) {
	config := newTestConfig(&mockRouteClient{})

	p, err := NewProvider(config)
	require.NoError(t, err)

	// The first message carries no recognized variant; the second does.
	msgs := []skip.Msg{
		{},
		{EvmTx: &skip.EvmTx{To: "0x1111111111111111111111111111111111111111", Value: "0"}},
	}

	txRequest, err := p.createTransaction(context.Background(), "1",
		"0x3333333333333333333333333333333333333333", msgs)
	require.NoError(t, err)
	require.IsType(t, types.EvmTransactionRequest{}, txRequest)
}

func TestCreateTransactionNoRecognizedVariant(t *testing.T) {
	p, err := NewProvider(newTestConfig(&mockRouteClient{}))
	require.NoError(t, err)

	_, err = p.createTransaction(context.Background(), "1", "", []skip.Msg{{}})
	require.Error(t, err)
	require.True(t, errors.Is(err, commonerrors.ErrNoTransactionFound))

	_, err = p.createTransaction(context.Background(), "1", "", nil)
	require.True(t, errors.Is(err, commonerrors.ErrNoTransactionFound))
}
