// Package opentargets provides a client for the Open Targets association
// REST API, filtering target-disease associations by a single attribute.
package opentargets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultAPIEndpoint is the Open Targets platform association filter endpoint.
	DefaultAPIEndpoint = "https://platform-api.opentargets.io/v3/platform/public/association/filter"

	// DefaultTimeout bounds a single HTTP request, not the whole query.
	DefaultTimeout = 30 * time.Second

	// DefaultPageSize is how many records are requested per page.
	DefaultPageSize = 200
)

// Client queries the Open Targets association REST API.
type Client struct {
	Endpoint   string
	PageSize   int
	HTTPClient *http.Client
}

// NewClient creates a client for the default public endpoint.
func NewClient() *Client {
	return &Client{
		Endpoint: DefaultAPIEndpoint,
		PageSize: DefaultPageSize,
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// WithEndpoint returns a new client configured to use the specified endpoint.
// This is useful for testing with mock servers.
func (c *Client) WithEndpoint(endpoint string) *Client {
	return &Client{
		Endpoint:   endpoint,
		PageSize:   c.PageSize,
		HTTPClient: c.HTTPClient,
	}
}

// WithHTTPClient returns a new client configured to use the specified HTTP
// client. This is useful for customizing timeouts and transport settings.
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	return &Client{
		Endpoint:   c.Endpoint,
		PageSize:   c.PageSize,
		HTTPClient: httpClient,
	}
}

// WithPageSize returns a new client requesting n records per page.
func (c *Client) WithPageSize(n int) *Client {
	return &Client{
		Endpoint:   c.Endpoint,
		PageSize:   n,
		HTTPClient: c.HTTPClient,
	}
}

// FilterAssociations fetches every association whose kind attribute equals
// value, walking the paginated endpoint until the full result set has been
// read. Records are returned in API order. An empty result is not an error.
func (c *Client) FilterAssociations(ctx context.Context, kind Kind, value string) ([]Association, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unsupported filter kind %q", kind)
	}

	var all []Association
	from := 0
	for {
		page, total, err := c.fetchPage(ctx, kind, value, from)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s associations: %w", kind, err)
		}
		all = append(all, page...)
		from += len(page)
		if len(page) == 0 || from >= total {
			break
		}
	}
	return all, nil
}

func (c *Client) fetchPage(ctx context.Context, kind Kind, value string, from int) ([]Association, int, error) {
	size := c.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}

	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid endpoint: %w", err)
	}
	q := u.Query()
	q.Set(string(kind), value)
	q.Set("size", strconv.Itoa(size))
	q.Set("from", strconv.Itoa(from))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, 0, fmt.Errorf("API error: %s (status %d)", strings.TrimSpace(string(body)), resp.StatusCode)
	}

	var page filterResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, 0, fmt.Errorf("failed to parse response: %w", err)
	}
	return page.Data, page.Total, nil
}
