//go:build integration
// +build integration

package integration

import (
	"os"
	"testing"
)

const testUserAgent = "pdok-apis integration-test/1.0"

// Well-known records used as live probes. These exist in the public
// registries and are stable.
const (
	knownBagObjectID      = "0268010000084126"
	knownMunicipalityCode = "HTT02"
	knownSectionLetter    = "M"
	knownLotNumber        = "5038"
	knownPostalCode       = "6511KV"
	knownHouseNumber      = "12"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	BagAPIKey string
	Verbose   bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		BagAPIKey: os.Getenv("BAG_API_KEY"),
		Verbose:   os.Getenv("PDOK_VERBOSE") == "true",
	}
}

// SkipIfMissingAPIKey skips tests that need the BAG API key
func (c *TestConfig) SkipIfMissingAPIKey(t *testing.T) {
	t.Helper()

	if c.BagAPIKey == "" {
		t.Skip("Skipping BAG integration test: BAG_API_KEY not set")
	}
}
