package pdokclient

import (
	"net/url"
	"strings"
	"time"

	"github.com/tweedegolf/pdok-apis/internal/client"
	"github.com/tweedegolf/pdok-apis/internal/httpclient"
	"github.com/tweedegolf/pdok-apis/pkg/pdok"
)

// Retry backoff bounds applied when RetryConfig enables retries without
// explicit waits.
const (
	defaultRetryWaitMin = 1 * time.Second
	defaultRetryWaitMax = 30 * time.Second
)

// NewLookupClient creates a locatieserver client with default settings.
//
// Deprecated: kept for compatibility with existing call sites. Use
// NewLookupClientBuilder, which exposes the optional settings.
func NewLookupClient(userAgent string) (pdok.LookupClient, error) {
	return NewLookupClientBuilder(userAgent).Build()
}

// NewBagClient creates a BAG client with the given API key, user agent and
// request timeout.
//
// Deprecated: kept for compatibility with existing call sites. Use
// NewBagClientBuilder, which exposes the optional settings.
func NewBagClient(apiKey, userAgent string, requestTimeout time.Duration) (pdok.BagClient, error) {
	return NewBagClientBuilder(apiKey, userAgent).RequestTimeout(requestTimeout).Build()
}

// NewBrkClient creates a BRK client with default settings.
//
// Deprecated: kept for compatibility with existing call sites. Use
// NewBrkClientBuilder, which exposes the optional settings.
func NewBrkClient(userAgent string) (pdok.BrkClient, error) {
	return NewBrkClientBuilder(userAgent).Build()
}

// LookupClientBuilder builds a locatieserver client.
type LookupClientBuilder struct {
	config pdok.Config
}

// NewLookupClientBuilder starts a builder with the required user agent.
func NewLookupClientBuilder(userAgent string) *LookupClientBuilder {
	return &LookupClientBuilder{config: pdok.Config{
		UserAgent:         userAgent,
		AcceptCRS:         pdok.Gps,
		ConnectionTimeout: pdok.DefaultLookupConnectionTimeout,
		RequestTimeout:    pdok.DefaultLookupRequestTimeout,
		BaseURL:           client.DefaultLookupBaseURL,
	}}
}

// AcceptCRS selects the CRS recorded in the configuration. The
// locatieserver returns no geometries, so this only surfaces in Config().
func (b *LookupClientBuilder) AcceptCRS(crs pdok.CoordinateSpace) *LookupClientBuilder {
	b.config.AcceptCRS = crs

	return b
}

// ConnectionTimeout bounds the TCP/TLS handshake phase.
func (b *LookupClientBuilder) ConnectionTimeout(timeout time.Duration) *LookupClientBuilder {
	b.config.ConnectionTimeout = timeout

	return b
}

// RequestTimeout bounds the full request/response round trip.
func (b *LookupClientBuilder) RequestTimeout(timeout time.Duration) *LookupClientBuilder {
	b.config.RequestTimeout = timeout

	return b
}

// BaseURL overrides the upstream endpoint. Intended for tests.
func (b *LookupClientBuilder) BaseURL(baseURL string) *LookupClientBuilder {
	b.config.BaseURL = baseURL

	return b
}

// Logger sets the structured logger used when Debug is enabled.
func (b *LookupClientBuilder) Logger(logger pdok.Logger) *LookupClientBuilder {
	b.config.Logger = logger

	return b
}

// Debug enables request/response logging.
func (b *LookupClientBuilder) Debug(debug bool) *LookupClientBuilder {
	b.config.Debug = debug

	return b
}

// RetryConfig enables automatic retries on transient failures. Off by
// default; enabling it is an explicit caller decision.
func (b *LookupClientBuilder) RetryConfig(retryMax int, waitMin, waitMax time.Duration) *LookupClientBuilder {
	b.config.RetryMax = retryMax
	b.config.RetryWaitMin = waitMin
	b.config.RetryWaitMax = waitMax

	return b
}

// Build validates the configuration and produces an immutable client. It
// performs no network activity.
func (b *LookupClientBuilder) Build() (pdok.LookupClient, error) {
	config, err := normalize(b.config)
	if err != nil {
		return nil, err
	}

	return client.NewLookupClient(newTransport(config, nil), config), nil
}

// BagClientBuilder builds a BAG client.
type BagClientBuilder struct {
	config pdok.Config
}

// NewBagClientBuilder starts a builder with the required API key and user
// agent. The BAG defaults to Rijksdriehoek coordinates.
func NewBagClientBuilder(apiKey, userAgent string) *BagClientBuilder {
	return &BagClientBuilder{config: pdok.Config{
		UserAgent:         userAgent,
		APIKey:            apiKey,
		AcceptCRS:         pdok.Rijksdriehoek,
		ConnectionTimeout: pdok.DefaultConnectionTimeout,
		RequestTimeout:    pdok.DefaultRequestTimeout,
		BaseURL:           client.DefaultBagBaseURL,
	}}
}

// AcceptCRS selects the CRS the upstream returns geometries in.
func (b *BagClientBuilder) AcceptCRS(crs pdok.CoordinateSpace) *BagClientBuilder {
	b.config.AcceptCRS = crs

	return b
}

// ConnectionTimeout bounds the TCP/TLS handshake phase.
func (b *BagClientBuilder) ConnectionTimeout(timeout time.Duration) *BagClientBuilder {
	b.config.ConnectionTimeout = timeout

	return b
}

// RequestTimeout bounds the full request/response round trip.
func (b *BagClientBuilder) RequestTimeout(timeout time.Duration) *BagClientBuilder {
	b.config.RequestTimeout = timeout

	return b
}

// BaseURL overrides the upstream endpoint. Intended for tests.
func (b *BagClientBuilder) BaseURL(baseURL string) *BagClientBuilder {
	b.config.BaseURL = baseURL

	return b
}

// Logger sets the structured logger used when Debug is enabled.
func (b *BagClientBuilder) Logger(logger pdok.Logger) *BagClientBuilder {
	b.config.Logger = logger

	return b
}

// Debug enables request/response logging.
func (b *BagClientBuilder) Debug(debug bool) *BagClientBuilder {
	b.config.Debug = debug

	return b
}

// RetryConfig enables automatic retries on transient failures.
func (b *BagClientBuilder) RetryConfig(retryMax int, waitMin, waitMax time.Duration) *BagClientBuilder {
	b.config.RetryMax = retryMax
	b.config.RetryWaitMin = waitMin
	b.config.RetryWaitMax = waitMax

	return b
}

// Build validates the configuration and produces an immutable client. It
// performs no network activity.
func (b *BagClientBuilder) Build() (pdok.BagClient, error) {
	if b.config.APIKey == "" {
		return nil, &pdok.Error{Kind: pdok.ErrorKindConfiguration, Detail: "api_key", Err: pdok.ErrAPIKeyRequired}
	}

	config, err := normalize(b.config)
	if err != nil {
		return nil, err
	}

	headers := map[string]string{
		"X-Api-Key":  config.APIKey,
		"Accept-Crs": config.AcceptCRS.CRS(),
	}

	return client.NewBagClient(newTransport(config, headers), config), nil
}

// BrkClientBuilder builds a BRK client.
type BrkClientBuilder struct {
	config pdok.Config
}

// NewBrkClientBuilder starts a builder with the required user agent. The
// BRK defaults to GPS (WGS84) coordinates.
func NewBrkClientBuilder(userAgent string) *BrkClientBuilder {
	return &BrkClientBuilder{config: pdok.Config{
		UserAgent:         userAgent,
		AcceptCRS:         pdok.Gps,
		ConnectionTimeout: pdok.DefaultConnectionTimeout,
		RequestTimeout:    pdok.DefaultRequestTimeout,
		BaseURL:           client.DefaultBrkBaseURL,
	}}
}

// AcceptCRS selects the CRS the upstream returns geometries in.
func (b *BrkClientBuilder) AcceptCRS(crs pdok.CoordinateSpace) *BrkClientBuilder {
	b.config.AcceptCRS = crs

	return b
}

// ConnectionTimeout bounds the TCP/TLS handshake phase.
func (b *BrkClientBuilder) ConnectionTimeout(timeout time.Duration) *BrkClientBuilder {
	b.config.ConnectionTimeout = timeout

	return b
}

// RequestTimeout bounds the full request/response round trip.
func (b *BrkClientBuilder) RequestTimeout(timeout time.Duration) *BrkClientBuilder {
	b.config.RequestTimeout = timeout

	return b
}

// BaseURL overrides the upstream endpoint. Intended for tests.
func (b *BrkClientBuilder) BaseURL(baseURL string) *BrkClientBuilder {
	b.config.BaseURL = baseURL

	return b
}

// Logger sets the structured logger used when Debug is enabled.
func (b *BrkClientBuilder) Logger(logger pdok.Logger) *BrkClientBuilder {
	b.config.Logger = logger

	return b
}

// Debug enables request/response logging.
func (b *BrkClientBuilder) Debug(debug bool) *BrkClientBuilder {
	b.config.Debug = debug

	return b
}

// RetryConfig enables automatic retries on transient failures.
func (b *BrkClientBuilder) RetryConfig(retryMax int, waitMin, waitMax time.Duration) *BrkClientBuilder {
	b.config.RetryMax = retryMax
	b.config.RetryWaitMin = waitMin
	b.config.RetryWaitMax = waitMax

	return b
}

// Build validates the configuration and produces an immutable client. It
// performs no network activity.
func (b *BrkClientBuilder) Build() (pdok.BrkClient, error) {
	config, err := normalize(b.config)
	if err != nil {
		return nil, err
	}

	headers := map[string]string{
		"Accept-Crs": config.AcceptCRS.CRS(),
	}

	return client.NewBrkClient(newTransport(config, headers), config), nil
}

// normalize validates the shared required fields and canonicalizes the
// base URL.
func normalize(config pdok.Config) (pdok.Config, error) {
	if config.UserAgent == "" {
		return config, &pdok.Error{Kind: pdok.ErrorKindConfiguration, Detail: "user_agent", Err: pdok.ErrUserAgentRequired}
	}

	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	if _, err := url.Parse(baseURL); err != nil {
		return config, &pdok.Error{Kind: pdok.ErrorKindConfiguration, Detail: "base_url", Err: pdok.ErrBaseURLInvalid}
	}

	config.BaseURL = baseURL

	return config, nil
}

// newTransport wires a validated configuration into the dispatch layer.
func newTransport(config pdok.Config, headers map[string]string) *httpclient.Client {
	opts := []httpclient.Option{
		httpclient.WithUserAgent(config.UserAgent),
		httpclient.WithConnectTimeout(config.ConnectionTimeout),
		httpclient.WithRequestTimeout(config.RequestTimeout),
	}

	for key, value := range headers {
		opts = append(opts, httpclient.WithHeader(key, value))
	}

	if config.Logger != nil {
		opts = append(opts, httpclient.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, httpclient.WithDebug(true))
	}

	if config.RetryMax > 0 {
		waitMin := config.RetryWaitMin
		if waitMin == 0 {
			waitMin = defaultRetryWaitMin
		}

		waitMax := config.RetryWaitMax
		if waitMax == 0 {
			waitMax = defaultRetryWaitMax
		}

		opts = append(opts, httpclient.WithRetryConfig(config.RetryMax, waitMin, waitMax))
	}

	return httpclient.NewClient(config.BaseURL, opts...)
}
