package cosmos

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
)

// FallbackBlockTimeMs is the block time assumed for a Cosmos chain with no
// reachable status endpoint.
const FallbackBlockTimeMs = 7500

// StatusClient computes the average block time of a Cosmos chain from its
// status-query RPC endpoint.
type StatusClient interface {
	// AverageBlockTimeMs returns the average time between recent blocks in
	// milliseconds.
	AverageBlockTimeMs(ctx context.Context, rpcURL string) (int64, error)
}

// statusClient queries the Tendermint RPC /blockchain endpoint and averages
// the spacing of the returned recent block headers.
type statusClient struct {
	httpClient *retryablehttp.Client
}

// NewStatusClient creates a StatusClient backed by the Tendermint RPC
// blockchain-info endpoint.
func NewStatusClient() StatusClient {
	httpClient := retryablehttp.NewClient()
	httpClient.Logger = nil
	httpClient.RetryMax = 2

	return &statusClient{httpClient: httpClient}
}

type blockchainInfoResponse struct {
	Result struct {
		BlockMetas []struct {
			Header struct {
				Height string    `json:"height"`
				Time   time.Time `json:"time"`
			} `json:"header"`
		} `json:"block_metas"`
	} `json:"result"`
}

func (c *statusClient) AverageBlockTimeMs(ctx context.Context, rpcURL string) (int64, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, rpcURL+"/blockchain", nil)
	if err != nil {
		return 0, errors.Wrap(err, "failed to create request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, errors.Wrap(err, "status query failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("status query returned %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read status response")
	}

	var info blockchainInfoResponse
	if err := json.Unmarshal(data, &info); err != nil {
		return 0, errors.Wrap(err, "failed to decode status response")
	}

	times := make([]time.Time, 0, len(info.Result.BlockMetas))
	for _, meta := range info.Result.BlockMetas {
		times = append(times, meta.Header.Time)
	}
	if len(times) < 2 {
		return 0, errors.New("not enough block headers to compute block time")
	}

	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

	total := times[len(times)-1].Sub(times[0])
	average := total.Milliseconds() / int64(len(times)-1)
	if average <= 0 {
		return 0, errors.New("non-positive average block time")
	}

	return average, nil
}
