package evm

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

const erc20ABIJSON = `[
	{"constant":true,"inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],"name":"allowance","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"constant":false,"inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],"name":"approve","outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable","type":"function"}
]`

var erc20ABI = func() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(erc20ABIJSON))
	if err != nil {
		panic(err)
	}
	return parsed
}()

// PackAllowance encodes an ERC-20 allowance(owner, spender) call.
func PackAllowance(owner, spender common.Address) ([]byte, error) {
	data, err := erc20ABI.Pack("allowance", owner, spender)
	if err != nil {
		return nil, errors.Wrap(err, "failed to pack allowance call")
	}
	return data, nil
}

// UnpackAllowance decodes the result of an ERC-20 allowance call.
func UnpackAllowance(output []byte) (*big.Int, error) {
	values, err := erc20ABI.Unpack("allowance", output)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unpack allowance result")
	}
	if len(values) != 1 {
		return nil, errors.New("unexpected allowance result arity")
	}

	allowance, ok := values[0].(*big.Int)
	if !ok {
		return nil, errors.New("unexpected allowance result type")
	}
	return allowance, nil
}

// PackApprove encodes an ERC-20 approve(spender, amount) call.
func PackApprove(spender common.Address, amount *big.Int) ([]byte, error) {
	data, err := erc20ABI.Pack("approve", spender, amount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to pack approve call")
	}
	return data, nil
}
