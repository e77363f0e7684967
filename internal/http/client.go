// Package http provides the authenticated transport shared by every
// AgenticLetters API operation, including the classification of transport
// and server failures into the letters error taxonomy.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/agentic-letters/letters-cli/internal/constants"
	"github.com/agentic-letters/letters-cli/pkg/letters"
)

// Client issues bearer-authenticated requests against a fixed base endpoint.
// Every call is a single attempt: failures are classified and surfaced
// immediately, never retried.
type Client struct {
	baseURL     string
	token       string
	userAgent   string
	timeout     time.Duration
	retryClient *retryablehttp.Client
}

// Option configures the client.
type Option func(*Client)

// WithUserAgent overrides the client identifier sent on every request.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// NewClient creates a new transport for the given base URL and bearer token.
func NewClient(baseURL, token string, opts ...Option) *Client {
	client := &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		token:     token,
		userAgent: constants.UserAgent,
		timeout:   constants.RequestTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = client.timeout
	// Exactly one attempt per invocation: pass every response (including
	// non-2xx) and every transport error straight back to the caller.
	retryClient.CheckRetry = func(_ context.Context, _ *nethttp.Response, err error) (bool, error) {
		return false, err
	}
	client.retryClient = retryClient

	return client
}

// Request describes a single API call.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   interface{}
}

// Response carries the outcome of a successful call.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// Do executes the request and classifies every failure mode: request
// assembly problems are local, unreachable hosts and timeouts are network,
// and non-2xx statuses are server errors.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var rawBody interface{}

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, letters.LocalError("Cannot encode request body", err.Error())
		}

		rawBody = data
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, letters.LocalError("Cannot build request", err.Error())
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.token)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	resp, err := c.retryClient.Do(httpReq)
	if err != nil {
		return nil, c.classifyTransportError(err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, letters.NetworkError("Could not read API response", err.Error())
	}

	if resp.StatusCode < nethttp.StatusOK || resp.StatusCode >= nethttp.StatusMultipleChoices {
		return nil, letters.ParseServerError(resp.StatusCode, respBody)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       respBody,
	}, nil
}

// Get performs an authenticated GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: nethttp.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post performs an authenticated POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: nethttp.MethodPost,
		Path:   path,
		Body:   body,
	})
}

// classifyTransportError maps transport failures into the network origin.
// Timeout expiry and unreachable hosts are reported distinctly, but neither
// carries an HTTP status.
func (c *Client) classifyTransportError(err error) *letters.Error {
	timeoutMessage := fmt.Sprintf("Request timed out after %g seconds", c.timeout.Seconds())

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() || errors.Is(err, context.DeadlineExceeded) {
			return letters.NetworkError(timeoutMessage, "")
		}

		return letters.NetworkError("Could not reach the API", urlErr.Err.Error())
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return letters.NetworkError(timeoutMessage, "")
	}

	return letters.NetworkError("Could not reach the API", err.Error())
}
