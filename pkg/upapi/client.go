// Package upapi is a thin client for the Up Banking REST API. It translates
// operation calls into authenticated HTTP requests against the JSON:API
// endpoints and maps failures to a small set of domain errors.
package upapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultBaseURL is the production Up API endpoint.
const DefaultBaseURL = "https://api.up.com.au/api/v1"

// TokenSource supplies the bearer token for each request. The config store
// implements this; tests supply a literal.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource holding a fixed token string.
type StaticToken string

func (s StaticToken) Token() string { return string(s) }

// Client issues authenticated requests against the Up API.
type Client struct {
	baseURL string
	tokens  TokenSource
	http    *http.Client
	log     *logrus.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the logger used for request/response debug logging.
func WithLogger(l *logrus.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient builds a Client around the given token source.
func NewClient(tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		tokens:  tokens,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope is the JSON:API response wrapper. Data is kept raw because list
// and single-resource endpoints shape it differently.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// apiErrorBody is the JSON:API error document, decoded best-effort.
type apiErrorBody struct {
	Errors []struct {
		Detail string `json:"detail"`
	} `json:"errors"`
	Message string `json:"message"`
}

// do performs one authenticated call and returns the raw response body for
// 2xx responses. Every other outcome becomes a domain error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	token := c.tokens.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.WithFields(logrus.Fields{"method": method, "path": path}).Debug("issuing API request")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ConnectivityError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.log.WithFields(logrus.Fields{"status": resp.StatusCode, "path": path}).Debug("received API response")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, nil
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return nil, ErrAuthenticationFailed
	case http.StatusForbidden:
		return nil, ErrForbidden
	case http.StatusNotFound:
		return nil, ErrNotFound
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	}
	return nil, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
}

// errorMessage extracts a human-readable message from an error body:
// errors[0].detail, else message, else the raw body.
func errorMessage(raw []byte) string {
	var body apiErrorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		if len(body.Errors) > 0 && body.Errors[0].Detail != "" {
			return body.Errors[0].Detail
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return strings.TrimSpace(string(raw))
}

// getList performs a GET and unwraps the data array, returning an empty slice
// when the key is absent.
func (c *Client) getList(ctx context.Context, path string, query url.Values) ([]Resource, error) {
	raw, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(env.Data) == 0 {
		return []Resource{}, nil
	}
	var list []Resource
	if err := json.Unmarshal(env.Data, &list); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if list == nil {
		list = []Resource{}
	}
	return list, nil
}

// getOne performs a GET and unwraps the data object. A missing data key
// yields a nil resource.
func (c *Client) getOne(ctx context.Context, path string) (*Resource, error) {
	raw, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne(raw)
}

func decodeOne(raw []byte) (*Resource, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, nil
	}
	var res Resource
	if err := json.Unmarshal(env.Data, &res); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &res, nil
}

// pageQuery builds the page[size] query parameter, nil when size is zero.
func pageQuery(size int) url.Values {
	if size <= 0 {
		return nil
	}
	q := url.Values{}
	q.Set("page[size]", fmt.Sprintf("%d", size))
	return q
}
