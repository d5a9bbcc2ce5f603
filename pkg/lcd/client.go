package lcd

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/andybalholm/brotli"

	"github.com/atlo-labs/fuzion-sdk-go/pkg/shared"
)

type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Headers    map[string]string
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	headers    map[string]string
}

// NewClient creates a REST client for a Cosmos node's LCD endpoint.
func NewClient(config Config) (*Client, error) {
	baseURL := strings.TrimSpace(config.BaseURL)
	if baseURL == "" {
		return nil, fmt.Errorf("LCD base URL is required")
	}
	parsedBaseURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid LCD base URL: %w", err)
	}
	if parsedBaseURL.Scheme != "http" && parsedBaseURL.Scheme != "https" {
		return nil, fmt.Errorf("invalid LCD base URL: scheme must be http or https")
	}
	if strings.TrimSpace(parsedBaseURL.Host) == "" {
		return nil, fmt.Errorf("invalid LCD base URL: host is required")
	}
	baseURL = strings.TrimRight(parsedBaseURL.String(), "/")

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	headers := map[string]string{}
	for key, value := range config.Headers {
		headers[key] = value
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		headers:    headers,
	}, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetBalances returns every bank balance held by address, following
// pagination.next_key until the node stops returning one. A key seen twice
// is an error.
func (c *Client) GetBalances(ctx context.Context, address string) ([]Coin, error) {
	normalizedAddress := strings.TrimSpace(address)
	if normalizedAddress == "" {
		return nil, fmt.Errorf("address is required")
	}

	endpoint := fmt.Sprintf("/cosmos/bank/v1beta1/balances/%s", url.PathEscape(normalizedAddress))
	result := make([]Coin, 0)
	seen := map[string]struct{}{}
	next := endpoint

	for next != "" {
		var page balancesResponse
		if err := c.getJSON(ctx, next, &page); err != nil {
			return nil, err
		}
		result = append(result, page.Balances...)

		next = ""
		if page.Pagination.NextKey != nil && *page.Pagination.NextKey != "" {
			key := *page.Pagination.NextKey
			if _, repeated := seen[key]; repeated {
				return nil, fmt.Errorf("balances of %s: node returned next_key %q more than once", normalizedAddress, key)
			}
			seen[key] = struct{}{}
			values := url.Values{}
			values.Set("pagination.key", key)
			next = endpoint + "?" + values.Encode()
		}
	}

	return result, nil
}

// GetAccountInfo returns the auth module's view of an account.
func (c *Client) GetAccountInfo(ctx context.Context, address string) (AccountInfo, error) {
	var response accountInfoResponse
	normalizedAddress := strings.TrimSpace(address)
	if normalizedAddress == "" {
		return response.Info, fmt.Errorf("address is required")
	}

	path := fmt.Sprintf("/cosmos/auth/v1beta1/account_info/%s", url.PathEscape(normalizedAddress))
	if err := c.getJSON(ctx, path, &response); err != nil {
		return response.Info, err
	}

	return response.Info, nil
}

func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	requestURL := shared.JoinURL(c.baseURL, path)
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	request.Header.Set("Accept", "application/json")
	request.Header.Set("Accept-Encoding", "br, gzip")
	for key, value := range c.headers {
		request.Header.Set(key, value)
	}

	started := time.Now()
	response, err := c.httpClient.Do(request)
	if err != nil {
		return &ChainAPIError{Message: "LCD request failed", Inner: err}
	}
	defer response.Body.Close()

	body, err := readBody(response)
	if err != nil {
		return &ChainAPIError{Message: "failed to read LCD response", StatusCode: response.StatusCode, Inner: err}
	}

	shared.Logger().Debug().
		Str("url", requestURL).
		Int("status", response.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("lcd request")

	var failure errorBody
	_ = json.Unmarshal(body, &failure)

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		message := strings.TrimSpace(failure.Message)
		if message == "" {
			message = strings.TrimSpace(string(body))
		}
		return &ChainAPIError{
			Message:    fmt.Sprintf("LCD request failed with status %d: %s", response.StatusCode, message),
			StatusCode: response.StatusCode,
			Code:       failure.Code,
		}
	}
	if failure.Code != 0 || strings.TrimSpace(failure.Error) != "" {
		message := strings.TrimSpace(failure.Message)
		if message == "" {
			message = strings.TrimSpace(failure.Error)
		}
		return &ChainAPIError{
			Message:    fmt.Sprintf("LCD request returned an error: %s", message),
			StatusCode: response.StatusCode,
			Code:       failure.Code,
		}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to decode LCD response: %w", err)
	}

	return nil
}

func readBody(response *http.Response) ([]byte, error) {
	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(strings.TrimSpace(response.Header.Get("Content-Encoding"))) {
	case "br":
		return io.ReadAll(brotli.NewReader(bytes.NewReader(raw)))
	case "gzip":
		reader, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, err
		}
		defer reader.Close()
		return io.ReadAll(reader)
	default:
		return raw, nil
	}
}
