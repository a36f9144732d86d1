// Package taostats reads the validator and subnet owner registry from the
// taostats HTTP API.
package taostats

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gabapcia/taowatch/internal/enrichment"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the public taostats API.
const DefaultBaseURL = "https://api.taostats.io"

// ErrUnexpectedStatus is returned when the API answers with a non 2xx status.
var ErrUnexpectedStatus = errors.New("unexpected registry status")

const (
	validatorsPath   = "/api/v1/validator"
	subnetOwnersPath = "/api/v1/subnet/owner"

	maxErrorBodySize = 512
)

type account struct {
	SS58 string `json:"ss58"`
	Hex  string `json:"hex"`
}

// address prefers the SS58 form and falls back to the hex public key.
func (a account) address() string {
	if a.SS58 != "" {
		return a.SS58
	}
	return a.Hex
}

type validatorsResponse struct {
	Validators []struct {
		ColdKey account         `json:"cold_key"`
		HotKey  account         `json:"hot_key"`
		Amount  decimal.Decimal `json:"amount"`
		Name    string          `json:"name"`
	} `json:"validators"`
}

type subnetOwnersResponse struct {
	SubnetOwners []struct {
		Owner    string `json:"owner"`
		SubnetID uint16 `json:"subnet_id"`
	} `json:"subnet_owners"`
}

type client struct {
	httpClient *retryablehttp.Client
	baseURL    string
	apiKey     string
}

var _ enrichment.Registry = (*client)(nil)

// Validators returns one page of validators, ordered by stake descending.
// Pages start at 1; an empty slice marks the end of the listing.
func (c *client) Validators(ctx context.Context, page int) ([]enrichment.Validator, error) {
	query := url.Values{
		"order": {"amount:desc"},
		"page":  {strconv.Itoa(page)},
	}

	var res validatorsResponse
	if err := c.get(ctx, validatorsPath, query, &res); err != nil {
		return nil, fmt.Errorf("validators page %d: %w", page, err)
	}

	validators := make([]enrichment.Validator, 0, len(res.Validators))
	for _, v := range res.Validators {
		validators = append(validators, enrichment.Validator{
			Coldkey: v.ColdKey.address(),
			Hotkey:  v.HotKey.address(),
			Name:    v.Name,
			Stake:   v.Amount,
		})
	}

	return validators, nil
}

// SubnetOwners returns the latest owner of every subnet. Owners are returned
// as the API encodes them, hex public keys included.
func (c *client) SubnetOwners(ctx context.Context) ([]enrichment.SubnetOwner, error) {
	query := url.Values{"latest": {"true"}}

	var res subnetOwnersResponse
	if err := c.get(ctx, subnetOwnersPath, query, &res); err != nil {
		return nil, fmt.Errorf("subnet owners: %w", err)
	}

	owners := make([]enrichment.SubnetOwner, 0, len(res.SubnetOwners))
	for _, o := range res.SubnetOwners {
		owners = append(owners, enrichment.SubnetOwner{Coldkey: o.Owner, Netuid: o.SubnetID})
	}

	return owners, nil
}

func (c *client) get(ctx context.Context, path string, query url.Values, dst any) error {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return err
	}
	endpoint += "?" + query.Encode()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBodySize))
		return fmt.Errorf("%w: %s: %s", ErrUnexpectedStatus, res.Status, bytes.TrimSpace(snippet))
	}

	return json.NewDecoder(res.Body).Decode(dst)
}

// NewClient returns a registry client for baseURL authenticated with apiKey.
func NewClient(httpClient *retryablehttp.Client, baseURL, apiKey string) *client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}
