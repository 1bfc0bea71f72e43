package errors

import "github.com/pkg/errors"

var (
	ErrChainNotFound       = errors.New("chain not found")
	ErrAssetNotFound       = errors.New("asset not found")
	ErrInvalidChainID      = errors.New("invalid chain id")
	ErrInvalidConfig       = errors.New("invalid provider configuration")
	ErrNoTransactionFound  = errors.New("failed to create transaction")
	ErrNotEnoughHops       = errors.New("at least two chain ids are required to estimate transfer time")
	ErrClientNotProvided   = errors.New("execution client not provided")
	ErrEncoderNotProvided  = errors.New("message encoder not provided")
	ErrGasPriceUnavailable = errors.New("failed to get gas price")
)
