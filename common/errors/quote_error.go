package errors

import (
	"fmt"
	"strings"
)

// QuoteErrorKind classifies quote failures into the stable taxonomy exposed
// to callers.
type QuoteErrorKind string

const (
	// UnsupportedQuoteError indicates an asset cannot be resolved against a
	// given chain.
	UnsupportedQuoteError QuoteErrorKind = "UnsupportedQuoteError"
	// InsufficientAmountError indicates the input amount is too small to
	// cover required fees or costs.
	InsufficientAmountError QuoteErrorKind = "InsufficientAmountError"
	// NoQuotesError indicates no viable route exists for the request.
	NoQuotesError QuoteErrorKind = "NoQuotesError"
)

// QuoteError is a classified quote failure.
//
// Fields:
// - Provider: the bridge provider that produced the error.
// - Kind: the taxonomy kind of the error.
// - Message: the underlying error message.
type QuoteError struct {
	Provider string
	Kind     QuoteErrorKind
	Message  string
}

// Error implements the error interface.
func (e *QuoteError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Provider, e.Kind, e.Message)
}

// NewQuoteError creates a new classified quote error.
func NewQuoteError(provider string, kind QuoteErrorKind, message string) *QuoteError {
	return &QuoteError{Provider: provider, Kind: kind, Message: message}
}

// routeErrorRules maps known upstream error message fragments onto the local
// taxonomy. The upstream service offers no structured error codes, so this is
// a best-effort ordered table over raw message content; it must be revisited
// whenever upstream wording changes. Unmatched messages propagate unchanged.
var routeErrorRules = []struct {
	substring string
	kind      QuoteErrorKind
}{
	// Could be Axelar or CCTP.
	{"Input amount is too low to cover", InsufficientAmountError},
	{"cannot transfer across cctp after route demands swap", NoQuotesError},
	{"no single-tx routes found, to enable multi-tx routes set allow_multi_tx to true", NoQuotesError},
}

// ClassifyRouteError maps an upstream route-finding failure onto the quote
// error taxonomy. Errors with no known fragment are returned as-is.
func ClassifyRouteError(provider string, err error) error {
	if err == nil {
		return nil
	}

	msg := err.Error()
	for _, rule := range routeErrorRules {
		if strings.Contains(msg, rule.substring) {
			return NewQuoteError(provider, rule.kind, msg)
		}
	}

	return err
}

// ClassifySimulationError maps a Cosmos transaction simulation failure onto
// the quote error taxonomy. Only insufficient fee-token balance is
// recognized; other failures are returned as-is.
func ClassifySimulationError(provider string, err error) error {
	if err == nil {
		return nil
	}

	if strings.Contains(err.Error(), "No fee tokens found with sufficient balance on account") {
		return NewQuoteError(provider, InsufficientAmountError, err.Error())
	}

	return err
}
