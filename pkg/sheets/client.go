package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// The range is deliberately generous so new rows are picked up without a
// config change; empty cells come back absent, not blank.
const storeRange = "A2:A2000"

// Client reads the store column from a spreadsheet range.
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a new Sheets client with the given configuration
func NewClient(config Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	httpClient := &http.Client{
		Timeout: 15 * time.Second,
	}

	return &Client{
		config:     config,
		httpClient: httpClient,
	}, nil
}

// FetchStoreColumn returns the raw first-column cell values of the
// configured range, in sheet order. Normalization is the caller's job.
func (c *Client) FetchStoreColumn(ctx context.Context) ([]string, error) {
	rangeRef := fmt.Sprintf("%s!%s", c.config.SheetName, storeRange)
	endpoint := fmt.Sprintf("%s/%s/values/%s?key=%s",
		c.config.BaseURL,
		url.PathEscape(c.config.SheetID),
		url.PathEscape(rangeRef),
		url.QueryEscape(c.config.APIKey),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr APIError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("%w: status %d: %s", ErrAPIError, resp.StatusCode, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrAPIError, resp.StatusCode)
	}

	var valueRange ValueRange
	if err := json.Unmarshal(body, &valueRange); err != nil {
		return nil, fmt.Errorf("failed to unmarshal values response: %w", err)
	}

	values := make([]string, 0, len(valueRange.Values))
	for _, row := range valueRange.Values {
		if len(row) > 0 {
			values = append(values, row[0])
		}
	}

	return values, nil
}
