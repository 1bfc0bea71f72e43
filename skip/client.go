// Package skip implements the HTTP client of the Skip route-finding service.
// Upstream failures are surfaced as plain errors carrying the service's
// message text; classification into the quote error taxonomy happens at the
// call sites.
package skip

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/ClipFinance/bridge-lib/common/types"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	mainnetBaseURL = "https://api.skip.build"
	testnetBaseURL = "https://testnet.api.skip.build"
)

// Client is the HTTP client of the Skip API.
type Client struct {
	baseURL    string
	httpClient *retryablehttp.Client
	logger     *logrus.Logger
}

// NewClient creates a new Skip API client for the given environment.
//
// Parameters:
// - env: the upstream deployment to talk to.
// - logger: the logger for logging events.
//
// Returns:
// - *Client: a new Client instance.
func NewClient(env types.Environment, logger *logrus.Logger) *Client {
	baseURL := mainnetBaseURL
	if env == types.Testnet {
		baseURL = testnetBaseURL
	}

	httpClient := retryablehttp.NewClient()
	httpClient.Logger = nil

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Route requests a transfer route for the given assets, chains and amount.
func (c *Client) Route(ctx context.Context, req RouteRequest) (*Route, error) {
	var route Route
	if err := c.post(ctx, "/v2/fungible/route", req, &route); err != nil {
		return nil, err
	}
	return &route, nil
}

// Msgs requests the executable message sequence for a resolved route.
func (c *Client) Msgs(ctx context.Context, req MsgsRequest) (*MsgsResponse, error) {
	var resp MsgsResponse
	if err := c.post(ctx, "/v2/fungible/msgs", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Assets fetches the asset catalog, keyed by chain id. An empty chainID
// fetches the catalogs of all supported chains.
func (c *Client) Assets(ctx context.Context, chainID string) (map[string]ChainAssets, error) {
	path := "/v2/fungible/assets"
	if chainID != "" {
		path += "?chain_id=" + url.QueryEscape(chainID)
	}

	var resp assetsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.ChainToAssetsMap, nil
}

// Chains fetches the catalog of chains known to the route service.
func (c *Client) Chains(ctx context.Context) ([]ChainRecord, error) {
	var resp chainsResponse
	if err := c.get(ctx, "/v2/info/chains", &resp); err != nil {
		return nil, err
	}
	return resp.Chains, nil
}

func (c *Client) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "failed to marshal request body")
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	return c.do(req, out)
}

func (c *Client) do(req *retryablehttp.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// The service reports domain failures as a JSON message; the text is
		// preserved verbatim because callers classify it by content.
		var errResp errorResponse
		if err := json.Unmarshal(data, &errResp); err == nil && errResp.Message != "" {
			return errors.New(errResp.Message)
		}
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(data))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "failed to decode response body")
	}

	return nil
}
