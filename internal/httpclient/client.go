// Package httpclient implements the shared request-dispatch layer under the
// three PDOK clients.
package httpclient

import (
	"context"
	"errors"
	"io"
	"net"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/tweedegolf/pdok-apis/pkg/pdok"
)

// maxErrorBodyLen bounds how much of an upstream error body ends up in the
// error detail.
const maxErrorBodyLen = 512

// Client dispatches HTTP requests against one upstream endpoint and maps
// failures onto the pdok error taxonomy.
type Client struct {
	baseURL   string
	http      *retryablehttp.Client
	userAgent string
	headers   nethttp.Header
	logger    pdok.Logger
	debug     bool
}

// Option configures a Client.
type Option func(*Client)

// WithUserAgent sets the User-Agent header sent on every request.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHeader adds a default header sent on every request, such as
// Accept-Crs or X-Api-Key.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers.Set(key, value)
	}
}

// WithConnectTimeout bounds the TCP/TLS handshake phase.
func WithConnectTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.HTTPClient.Transport = &nethttp.Transport{
			DialContext: (&net.Dialer{
				Timeout: timeout,
			}).DialContext,
			TLSHandshakeTimeout:   timeout,
			ResponseHeaderTimeout: 0,
		}
	}
}

// WithRequestTimeout bounds the full request/response round trip.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig enables automatic retries on transient failures. The
// clients never enable this themselves; it is explicit caller policy.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.http.RetryMax = retryMax
		c.http.RetryWaitMin = waitMin
		c.http.RetryWaitMax = waitMax
	}
}

// WithLogger sets the logger used for debug logging.
func WithLogger(logger pdok.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// NewClient creates a client for the given base URL. Retries are off unless
// WithRetryConfig is applied.
func NewClient(baseURL string, opts ...Option) *Client {
	inner := retryablehttp.NewClient()
	inner.RetryMax = 0
	inner.Logger = nil
	// The default handler discards the response once attempts run out,
	// which would turn a 5xx/429 into a bare transport error. Hand the
	// final response back so classifyStatus sees the status and body.
	inner.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    inner,
		headers: make(nethttp.Header),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Request represents an HTTP request to dispatch.
type Request struct {
	Method string
	// Path is resolved against the base URL, unless it is an absolute URL
	// (the BAG API hands out absolute hrefs in _links).
	Path    string
	Query   url.Values
	Headers nethttp.Header
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// Get dispatches a GET request for path with optional query parameters.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: nethttp.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Do dispatches a request and returns the response, or a *pdok.Error
// classifying the failure.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := req.Path
	if !strings.HasPrefix(fullURL, "http://") && !strings.HasPrefix(fullURL, "https://") {
		fullURL = c.baseURL + req.Path
	}

	if len(req.Query) > 0 {
		fullURL = fullURL + "?" + req.Query.Encode()
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, nil)
	if err != nil {
		return nil, &pdok.Error{Kind: pdok.ErrorKindNetwork, Detail: "building request", Err: err}
	}

	httpReq.Header.Set("Accept", "application/json")

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	for key, values := range c.headers {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	for key, values := range req.Headers {
		for _, value := range values {
			httpReq.Header.Set(key, value)
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("API request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, classifyTransportError(err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, classifyTransportError(err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("API response", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
			"status": httpResp.StatusCode,
		})
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if err := classifyStatus(resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// classifyTransportError maps a transport failure onto the error taxonomy.
// Deadline and dial timeouts become timeout errors, everything else
// (including caller cancellation) is a network error wrapping the cause.
func classifyTransportError(err error) *pdok.Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &pdok.Error{Kind: pdok.ErrorKindTimeout, Err: err}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return &pdok.Error{Kind: pdok.ErrorKindTimeout, Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &pdok.Error{Kind: pdok.ErrorKindTimeout, Err: err}
	}

	return &pdok.Error{Kind: pdok.ErrorKindNetwork, Err: err}
}

// classifyStatus maps a non-2xx status onto the error taxonomy.
func classifyStatus(resp *Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	detail := string(resp.Body)
	if len(detail) > maxErrorBodyLen {
		detail = detail[:maxErrorBodyLen]
	}

	switch resp.StatusCode {
	case nethttp.StatusUnauthorized, nethttp.StatusForbidden:
		return &pdok.Error{Kind: pdok.ErrorKindUnauthorized, StatusCode: resp.StatusCode, Detail: detail}
	case nethttp.StatusNotFound:
		return &pdok.Error{Kind: pdok.ErrorKindNotFound, StatusCode: resp.StatusCode, Detail: detail}
	default:
		return &pdok.Error{Kind: pdok.ErrorKindUpstream, StatusCode: resp.StatusCode, Detail: detail}
	}
}
