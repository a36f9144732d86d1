// Package substrate reads subtensor blocks. The head height comes from the
// node JSON-RPC endpoint and decoded blocks from a substrate-api-sidecar
// instance, which understands the runtime metadata of every spec version.
package substrate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gabapcia/taowatch/internal/blockscan"
	"github.com/gabapcia/taowatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/taowatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/taowatch/internal/pkg/types"

	"github.com/hashicorp/go-retryablehttp"
)

// ErrUnexpectedStatus is returned when the sidecar answers with a non 2xx status.
var ErrUnexpectedStatus = errors.New("unexpected sidecar status")

// errRejected tags 4xx answers other than 429, which the sidecar gives for
// heights it will never serve.
var errRejected = errors.New("request rejected")

// client reads chain data for the polling loop and the inspect command.
type client struct {
	rpc        jsonrpc.Client
	httpClient *retryablehttp.Client
	sidecarURL string
}

// headerResponse is the subset of chain_getHeader used here.
type headerResponse struct {
	Number types.HexNumber `json:"number"`
}

// LatestHeight returns the height of the best block known to the node.
func (c *client) LatestHeight(ctx context.Context) (uint64, error) {
	data, err := c.rpc.Fetch(ctx, "chain_getHeader")
	if err != nil {
		return 0, fmt.Errorf("%w: chain_getHeader: %w", blockscan.ErrSourceUnavailable, err)
	}

	var header headerResponse
	if err := json.Unmarshal(data, &header); err != nil {
		return 0, fmt.Errorf("%w: decode header: %w", blockscan.ErrSourceUnavailable, err)
	}

	return uint64(header.Number), nil
}

// FetchSnapshot returns the decoded block at height. Errors that repeating
// the request cannot fix, a rejected height or an undecodable block, are
// marked with retry.Permanent.
func (c *client) FetchSnapshot(ctx context.Context, height uint64) (blockscan.Snapshot, error) {
	block, err := c.getBlock(ctx, height)
	if err != nil {
		err = fmt.Errorf("%w: block %d: %w", blockscan.ErrSourceUnavailable, height, err)
		if errors.Is(err, errRejected) {
			return blockscan.Snapshot{}, retry.Permanent(err)
		}
		return blockscan.Snapshot{}, err
	}

	snap, err := block.toSnapshot()
	if err != nil {
		return blockscan.Snapshot{}, retry.Permanent(fmt.Errorf("%w: block %d: %w", blockscan.ErrSourceUnavailable, height, err))
	}

	return snap, nil
}

func (c *client) getBlock(ctx context.Context, height uint64) (blockResponse, error) {
	endpoint, err := url.JoinPath(c.sidecarURL, "blocks", strconv.FormatUint(height, 10))
	if err != nil {
		return blockResponse{}, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return blockResponse{}, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return blockResponse{}, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		err := fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, res.StatusCode, body)
		if res.StatusCode >= 400 && res.StatusCode < 500 && res.StatusCode != http.StatusTooManyRequests {
			err = errors.Join(err, errRejected)
		}
		return blockResponse{}, err
	}

	var block blockResponse
	dec := json.NewDecoder(res.Body)
	dec.UseNumber()
	if err := dec.Decode(&block); err != nil {
		return blockResponse{}, err
	}

	return block, nil
}

// NewClient returns a chain accessor using rpc for node queries and
// httpClient for sidecar requests against sidecarURL.
func NewClient(rpc jsonrpc.Client, httpClient *retryablehttp.Client, sidecarURL string) *client {
	return &client{
		rpc:        rpc,
		httpClient: httpClient,
		sidecarURL: sidecarURL,
	}
}
