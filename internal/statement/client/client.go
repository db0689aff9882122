// Package client fetches statements from the remote API and shields the
// rest of the application from its failure modes: anything short of
// cancellation degrades to the bundled fallback payload.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/espressobank/extrato/internal/statement"
	"github.com/espressobank/extrato/internal/statement/normalize"
)

//go:generate mockgen -source=client.go -destination=fetcher_mock.go -package=client

// Fetcher produces a statement payload for a set of filters. Fetch only
// returns an error for cancellation; every other failure is absorbed into
// a well-formed payload.
type Fetcher interface {
	Fetch(ctx context.Context, filters statement.Filters) (statement.Payload, error)
}

// Client is the statement fetch orchestrator.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	fallback   statement.Payload
}

// New creates a client for the statement API at baseURL. token, when
// non-empty, is sent as a bearer credential.
func New(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		fallback:   statement.Fallback(),
	}
}

// Fetch requests one statement page and normalizes the response. Non-2xx
// statuses, transport failures and undecodable bodies all return the
// fallback payload verbatim; cancellation propagates as an error so a
// superseded request never clobbers newer state with fallback data.
func (c *Client) Fetch(ctx context.Context, filters statement.Filters) (statement.Payload, error) {
	filters = filters.WithDefaults()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.statementsURL(filters), nil)
	if err != nil {
		return statement.Payload{}, fmt.Errorf("creating request: %w", err)
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return statement.Payload{}, ctx.Err()
		}

		slog.Warn("statement request failed, using fallback payload", "error", err)

		return c.fallback, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("statement API responded with non-OK status, using fallback payload", "status", resp.StatusCode)
		return c.fallback, nil
	}

	var raw any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		if ctx.Err() != nil {
			return statement.Payload{}, ctx.Err()
		}

		slog.Warn("failed to decode statement response, using fallback payload", "error", err)

		return c.fallback, nil
	}

	return normalize.Payload(raw, c.fallback, filters), nil
}

func (c *Client) statementsURL(filters statement.Filters) string {
	params := url.Values{}
	params.Set("start_date", filters.StartDate)
	params.Set("end_date", filters.EndDate)

	if filters.ProductType != "" {
		params.Set("product_type", string(filters.ProductType))
	}

	params.Set("page", strconv.Itoa(filters.Page))
	params.Set("limit", strconv.Itoa(filters.Limit))

	return c.baseURL + "/statements?" + params.Encode()
}
