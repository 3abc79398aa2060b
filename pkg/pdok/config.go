package pdok

import "time"

// Default timeouts per client. The locatieserver is given wider bounds than
// the registries; see the builder docs in pkg/pdokclient.
const (
	// DefaultConnectionTimeout bounds the TCP/TLS handshake for the BAG and
	// BRK clients.
	DefaultConnectionTimeout = 5 * time.Second

	// DefaultRequestTimeout bounds the full round trip for the BAG and BRK
	// clients.
	DefaultRequestTimeout = 20 * time.Second

	// DefaultLookupConnectionTimeout bounds the handshake for the
	// locatieserver client.
	DefaultLookupConnectionTimeout = 10 * time.Second

	// DefaultLookupRequestTimeout bounds the full round trip for the
	// locatieserver client.
	DefaultLookupRequestTimeout = 30 * time.Second
)

// Config is the immutable per-client configuration record. It is owned
// exclusively by the client instance once Build() has run; clients expose a
// copy through their Config() accessor.
type Config struct {
	// UserAgent identifies the consumer to the upstream. Required; the
	// upstreams may reject unidentified clients.
	UserAgent string

	// APIKey is sent as X-Api-Key. Required for the BAG client only.
	APIKey string

	// AcceptCRS selects the CRS the upstream returns geometries in.
	AcceptCRS CoordinateSpace

	// ConnectionTimeout bounds the TCP/TLS handshake phase.
	ConnectionTimeout time.Duration

	// RequestTimeout bounds the full request/response round trip.
	RequestTimeout time.Duration

	// BaseURL overrides the upstream endpoint. Intended for tests.
	BaseURL string

	// Logger receives structured request/response logs when Debug is set.
	Logger Logger

	// Debug enables request/response logging through Logger.
	Debug bool

	// RetryMax is the number of automatic retries on transient failures.
	// Zero by default: the clients never retry on their own, retry policy
	// is layered by the caller.
	RetryMax int

	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration

	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration
}
