package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tweedegolf/pdok-apis/pkg/pdok"
)

func TestNewSuggestCommand(t *testing.T) {
	cmd := NewSuggestCommand()
	assert.Equal(t, "suggest POSTAL_CODE HOUSE_NUMBER", cmd.Use)
	assert.Equal(t, "Suggest addresses for a postal code and house number", cmd.Short)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Args)
}

func TestNewLookupCommand(t *testing.T) {
	cmd := NewLookupCommand()
	assert.Equal(t, "lookup LOCATION_ID", cmd.Use)
	assert.Equal(t, "Resolve a location id to full address documents", cmd.Short)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Args)
}

func TestNewPandCommand(t *testing.T) {
	cmd := NewPandCommand()
	assert.Equal(t, "pand BAG_OBJECT_ID", cmd.Use)
	assert.Equal(t, "Fetch building records for a BAG addressable object", cmd.Short)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Args)
}

func TestNewLotCommand(t *testing.T) {
	cmd := NewLotCommand()
	assert.Equal(t, "lot MUNICIPALITY_CODE SECTION_LETTER LOT_NUMBER", cmd.Use)
	assert.Equal(t, "Fetch a cadastral lot from the BRK registry", cmd.Short)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Args)

	// Check with-addresses flag
	withAddressesFlag := cmd.Flags().Lookup("with-addresses")
	assert.NotNil(t, withAddressesFlag)
}

// Structured output carries the linked addresses when they were requested.
func TestLotDocument(t *testing.T) {
	lot := &pdok.Lot{ID: "12345", Section: "M", LotNumber: 5038}
	suggestions := []pdok.AddressSuggestion{
		{ID: "adr-1", DisplayName: "Castellastraat 26, Nijmegen"},
	}

	assert.Equal(t, lot, lotDocument(lot, nil, false))

	encoded, err := json.Marshal(lotDocument(lot, suggestions, true))
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"lot"`)
	assert.Contains(t, string(encoded), `"addresses"`)
	assert.Contains(t, string(encoded), "adr-1")
}

func TestNewStatusCommand(t *testing.T) {
	cmd := NewStatusCommand()
	assert.Equal(t, "status", cmd.Use)
	assert.Equal(t, "Check the reachability of the upstream services", cmd.Short)
	assert.NotNil(t, cmd.RunE)
}

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.2.3", "abc123", "2026-01-01")
	assert.Equal(t, "version", cmd.Use)
	assert.Equal(t, "Display version information", cmd.Short)
	assert.NotNil(t, cmd.RunE)
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, NotAvailable, formatInt(0))
	assert.Equal(t, "1968", formatInt(1968))
	assert.Equal(t, NotAvailable, formatFloat(0))
	assert.Equal(t, "2545.5", formatFloat(2545.5))
	assert.Equal(t, NotAvailable, formatString(""))
	assert.Equal(t, "1968", formatString("1968"))
}

func TestEffectiveUserAgent(t *testing.T) {
	assert.Equal(t, defaultUserAgent, effectiveUserAgent())
}
