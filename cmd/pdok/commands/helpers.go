package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/tweedegolf/pdok-apis/pkg/pdok"
	"github.com/tweedegolf/pdok-apis/pkg/pdokclient"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	defaultUserAgent = "pdok-cli"
)

// Common static errors used throughout the commands package.
var (
	ErrAPIKeyRequired = errors.New("BAG API key is required (use --api-key or set BAG_API_KEY)")
)

// effectiveUserAgent returns the configured User-Agent or the CLI default.
func effectiveUserAgent() string {
	if userAgent := viper.GetString("user-agent"); userAgent != "" {
		return userAgent
	}

	return defaultUserAgent
}

// effectiveCRS parses the configured coordinate reference system. An empty
// setting keeps each client's own default.
func effectiveCRS() (pdok.CoordinateSpace, bool, error) {
	raw := viper.GetString("crs")
	if raw == "" {
		return 0, false, nil
	}

	crs, err := pdok.ParseCoordinateSpace(raw)
	if err != nil {
		return 0, false, fmt.Errorf("invalid --crs value: %w", err)
	}

	return crs, true, nil
}

// verboseLogger returns a debug logger when --verbose is set, nil otherwise.
func verboseLogger() pdok.Logger {
	if !viper.GetBool("verbose") {
		return nil
	}

	return pdok.NewHCLogAdapter(hclog.New(&hclog.LoggerOptions{
		Name:   "pdok",
		Level:  hclog.Debug,
		Output: os.Stderr,
	}))
}

// createLookupClient builds a locatieserver client from the global flags.
func createLookupClient() (pdok.LookupClient, error) {
	builder := pdokclient.NewLookupClientBuilder(effectiveUserAgent())

	if logger := verboseLogger(); logger != nil {
		builder = builder.Logger(logger).Debug(true)
	}

	client, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create lookup client: %w", err)
	}

	return client, nil
}

// createBagClient builds a BAG client from the global flags. The API key is
// required.
func createBagClient() (pdok.BagClient, error) {
	apiKey := viper.GetString("api-key")
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	builder := pdokclient.NewBagClientBuilder(apiKey, effectiveUserAgent())

	crs, set, err := effectiveCRS()
	if err != nil {
		return nil, err
	}

	if set {
		builder = builder.AcceptCRS(crs)
	}

	if logger := verboseLogger(); logger != nil {
		builder = builder.Logger(logger).Debug(true)
	}

	client, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create BAG client: %w", err)
	}

	return client, nil
}

// createBrkClient builds a BRK client from the global flags.
func createBrkClient() (pdok.BrkClient, error) {
	builder := pdokclient.NewBrkClientBuilder(effectiveUserAgent())

	crs, set, err := effectiveCRS()
	if err != nil {
		return nil, err
	}

	if set {
		builder = builder.AcceptCRS(crs)
	}

	if logger := verboseLogger(); logger != nil {
		builder = builder.Logger(logger).Debug(true)
	}

	client, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create BRK client: %w", err)
	}

	return client, nil
}

// renderJSON writes data to stdout as indented JSON.
func renderJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoding to JSON: %w", err)
	}

	return nil
}

// renderYAML writes data to stdout as YAML.
func renderYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoding to YAML: %w", err)
	}

	return nil
}

// formatFloat renders a float without trailing zeros, or N/A for zero.
func formatFloat(value float64) string {
	if value == 0 {
		return NotAvailable
	}

	return strconv.FormatFloat(value, 'f', -1, 64)
}

// formatInt renders an integer, or N/A for zero.
func formatInt(value int64) string {
	if value == 0 {
		return NotAvailable
	}

	return strconv.FormatInt(value, 10)
}

// formatString renders a string, or N/A when empty.
func formatString(value string) string {
	if value == "" {
		return NotAvailable
	}

	return value
}
