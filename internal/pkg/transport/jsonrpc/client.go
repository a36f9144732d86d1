// Package jsonrpc provides a generic JSON-RPC 2.0 client implementation over HTTP.
// It is suitable for interacting with any JSON-RPC-compatible service, such as
// substrate nodes, and leaves retries to the underlying HTTP client.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
)

var (
	// ErrProviderReturnedError indicates that the remote JSON-RPC server returned an error response.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrUnexpectedStatus indicates a non 2xx HTTP answer, such as a rate limit.
	ErrUnexpectedStatus = errors.New("unexpected provider status")

	// ErrIDMismatch indicates a response that does not answer the request sent.
	ErrIDMismatch = errors.New("response id does not match request id")
)

// maxErrorBodySize bounds how much of a failed response body is kept in errors.
const maxErrorBodySize = 512

// rpcError is the error object of a JSON-RPC 2.0 response.
type rpcError struct {
	Code    int             `json:"code"`    // Error code defined by the JSON-RPC spec or custom server logic
	Message string          `json:"message"` // Human-readable error message
	Data    json.RawMessage `json:"data"`    // Optional server specific details
}

// response represents a standard JSON-RPC 2.0 response.
type response struct {
	JsonRPC string          `json:"jsonrpc"` // JSON-RPC protocol version (usually "2.0")
	ID      json.RawMessage `json:"id"`      // Echo of the request id
	Error   *rpcError       `json:"error"`
	Result  json.RawMessage `json:"result"` // Raw result payload returned by the server
}

// Err returns an error if the response includes a JSON-RPC error object.
// It wraps ErrProviderReturnedError with the provided error code and message.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	if len(r.Error.Data) > 0 && string(r.Error.Data) != "null" {
		return fmt.Errorf("%w: [%d] - %s: %s", ErrProviderReturnedError, r.Error.Code, r.Error.Message, r.Error.Data)
	}
	return fmt.Errorf("%w: [%d] - %s", ErrProviderReturnedError, r.Error.Code, r.Error.Message)
}

// answers reports whether the response carries the given request id.
func (r response) answers(id string) bool {
	var got string
	if err := json.Unmarshal(r.ID, &got); err != nil {
		return false
	}
	return got == id
}

// Client defines the interface for a generic JSON-RPC client.
// It can be used to abstract the underlying implementation and facilitate mocking or testing.
type Client interface {
	// Fetch sends a JSON-RPC request with the given method name and parameters.
	// It returns the raw JSON result or an error if the request or response fails.
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

// client is the default implementation of the Client interface.
// It sends JSON-RPC requests to the configured provider endpoint using the provided HTTP client.
type client struct {
	providerEndpoint string       // The URL of the remote JSON-RPC server
	httpClient       *http.Client // The HTTP client used to perform requests
	headers          http.Header  // Extra headers sent with every request
}

// Compile-time assertion that client implements the Client interface.
var _ Client = (*client)(nil)

// Fetch sends a JSON-RPC request to the remote server with the given method and parameters.
// The `id` field in the request is generated as a UUID string and must be
// echoed back by the server. Calls without parameters send an empty array,
// as substrate nodes reject a null params member.
func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	id := uuid.NewString()
	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	for key, values := range c.headers {
		req.Header[key] = values
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBodySize))
		return nil, fmt.Errorf("%w: %s: %s", ErrUnexpectedStatus, res.Status, bytes.TrimSpace(snippet))
	}

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, err
	}

	if err := data.Err(); err != nil {
		return nil, err
	}

	if !data.answers(id) {
		return nil, fmt.Errorf("%w: %s", ErrIDMismatch, data.ID)
	}

	return data.Result, nil
}

// Option customizes the client.
type Option func(*client)

// WithHeader adds a header to every request, e.g. an API key required by a
// hosted node provider.
func WithHeader(key, value string) Option {
	return func(c *client) {
		if c.headers == nil {
			c.headers = make(http.Header)
		}
		c.headers.Add(key, value)
	}
}

// NewClient constructs and returns a Client that will send JSON-RPC requests
// to the specified provider endpoint using the given HTTP client.
func NewClient(httpClient *http.Client, providerEndpoint string, opts ...Option) *client {
	c := &client{
		providerEndpoint: providerEndpoint,
		httpClient:       httpClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
