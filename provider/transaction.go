package provider

import (
	"context"
	"encoding/json"
	"math/big"

	"github.com/ClipFinance/bridge-lib/chains/cosmos"
	"github.com/ClipFinance/bridge-lib/chains/evm"
	commonerrors "github.com/ClipFinance/bridge-lib/common/errors"
	"github.com/ClipFinance/bridge-lib/common/types"
	"github.com/ClipFinance/bridge-lib/skip"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// createTransaction builds the unsigned transaction request from the first
// message of the sequence whose variant this library recognizes. A sequence
// with no recognized variant is an internal error.
func (p *Provider) createTransaction(ctx context.Context, chainID, sender string, msgs []skip.Msg) (types.TransactionRequest, error) {
	for _, msg := range msgs {
		switch {
		case msg.EvmTx != nil:
			return p.createEvmTransaction(ctx, chainID, sender, msg.EvmTx)
		case msg.MultiChainMsg != nil:
			return p.createCosmosTransaction(ctx, msg.MultiChainMsg)
		}
	}

	return nil, commonerrors.ErrNoTransactionFound
}

// cosmwasmMsgBody is the shape of a contract-execute message produced by the
// route service.
type cosmwasmMsgBody struct {
	Sender   string          `json:"sender"`
	Contract string          `json:"contract"`
	Msg      json.RawMessage `json:"msg"`
	Funds    []cosmos.Coin   `json:"funds"`
}

// ibcMsgBody is the shape of a direct IBC transfer message produced by the
// route service.
type ibcMsgBody struct {
	SourcePort    string      `json:"source_port"`
	SourceChannel string      `json:"source_channel"`
	Token         cosmos.Coin `json:"token"`
	Sender        string      `json:"sender"`
	Receiver      string      `json:"receiver"`
	Memo          string      `json:"memo"`
}

// createCosmosTransaction converts an abstract multi-chain message into an
// unsigned Cosmos transaction request. A body carrying a contract field is a
// CosmWasm execution; anything else is a direct IBC transfer whose timeout
// height comes from the destination-chain height estimator.
func (p *Provider) createCosmosTransaction(ctx context.Context, message *skip.MultiChainMsg) (types.TransactionRequest, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(message.Msg), &probe); err != nil {
		return nil, errors.Wrap(err, "failed to parse cosmos message body")
	}

	if _, ok := probe["contract"]; ok {
		var body cosmwasmMsgBody
		if err := json.Unmarshal([]byte(message.Msg), &body); err != nil {
			return nil, errors.Wrap(err, "failed to parse contract execute body")
		}

		encoded, err := p.config.MsgEncoder.EncodeExecuteContract(cosmos.ExecuteContractMsg{
			Sender:   body.Sender,
			Contract: body.Contract,
			Msg:      []byte(body.Msg),
			Funds:    body.Funds,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode contract execute message")
		}

		return types.CosmosTransactionRequest{
			MsgTypeURL: encoded.TypeURL,
			Msg:        encoded.Value,
		}, nil
	}

	var body ibcMsgBody
	if err := json.Unmarshal([]byte(message.Msg), &body); err != nil {
		return nil, errors.Wrap(err, "failed to parse ibc transfer body")
	}

	if p.config.TimeoutHeights == nil {
		return nil, errors.Wrap(commonerrors.ErrInvalidConfig, "timeout height resolver not provided")
	}

	timeoutHeight, err := p.config.TimeoutHeights.TimeoutHeight(ctx, body.Receiver)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve timeout height")
	}

	encoded, err := p.config.MsgEncoder.EncodeIBCTransfer(cosmos.IBCTransferMsg{
		SourcePort:       body.SourcePort,
		SourceChannel:    body.SourceChannel,
		Token:            body.Token,
		Sender:           body.Sender,
		Receiver:         body.Receiver,
		TimeoutHeight:    timeoutHeight,
		TimeoutTimestamp: 0,
		Memo:             body.Memo,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode ibc transfer message")
	}

	return types.CosmosTransactionRequest{
		MsgTypeURL: encoded.TypeURL,
		Msg:        encoded.Value,
	}, nil
}

// createEvmTransaction converts an abstract EVM message into an unsigned EVM
// transaction request, computing at most one pending approval for the first
// required ERC-20 allowance.
func (p *Provider) createEvmTransaction(ctx context.Context, chainID, sender string, message *skip.EvmTx) (types.TransactionRequest, error) {
	var approval *types.ApprovalTransactionRequest
	if len(message.RequiredERC20Approvals) > 0 {
		required := message.RequiredERC20Approvals[0]

		var err error
		approval, err = p.getApprovalTransactionRequest(ctx, chainID, required.TokenContract, sender, required.Spender, required.Amount)
		if err != nil {
			return nil, err
		}
	}

	value, ok := new(big.Int).SetString(message.Value, 10)
	if !ok {
		return nil, errors.Errorf("invalid transaction value %q", message.Value)
	}

	return types.EvmTransactionRequest{
		To:       message.To,
		Data:     "0x" + message.Data,
		Value:    hexutil.EncodeBig(value),
		Approval: approval,
	}, nil
}

// getApprovalTransactionRequest checks the current allowance(owner, spender)
// on the token contract and, when it falls short of amount, returns the
// pending approve(spender, amount) call. A sufficient allowance yields nil.
func (p *Provider) getApprovalTransactionRequest(
	ctx context.Context,
	chainID string,
	tokenAddress string,
	owner string,
	spender string,
	amount string,
) (*types.ApprovalTransactionRequest, error) {
	client, err := p.config.EvmClients.ClientForChain(chainID)
	if err != nil {
		return nil, err
	}

	requiredAmount, ok := new(big.Int).SetString(amount, 10)
	if !ok {
		return nil, errors.Errorf("invalid approval amount %q", amount)
	}

	allowance, err := client.Allowance(ctx,
		common.HexToAddress(tokenAddress),
		common.HexToAddress(owner),
		common.HexToAddress(spender),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query allowance")
	}

	if allowance.Cmp(requiredAmount) >= 0 {
		return nil, nil
	}

	data, err := evm.PackApprove(common.HexToAddress(spender), requiredAmount)
	if err != nil {
		return nil, err
	}

	return &types.ApprovalTransactionRequest{
		To:   tokenAddress,
		Data: hexutil.Encode(data),
	}, nil
}
