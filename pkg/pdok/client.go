package pdok

import "context"

// LookupClient resolves addresses through the PDOK locatieserver.
type LookupClient interface {
	// SuggestConcrete performs a geocoding lookup by postal code and house
	// number. Upstream ranking order is preserved; zero matches yield an
	// empty slice, not an error.
	SuggestConcrete(ctx context.Context, postalCode, houseNumber string) ([]AddressSuggestion, error)

	// Lookup resolves a location id (as returned by SuggestConcrete) to the
	// full address documents.
	Lookup(ctx context.Context, id string) ([]Address, error)

	// SuggestAddressesForLot returns address suggestions linked to a
	// cadastral lot.
	SuggestAddressesForLot(ctx context.Context, municipalityCode, sectionLetter, lotNumber string) ([]AddressSuggestion, error)

	// Status probes the upstream by resolving a known address id.
	Status(ctx context.Context) error

	// Config returns the configuration the client was built with.
	Config() Config
}

// BagClient fetches building records from the BAG registry.
type BagClient interface {
	// GetPanden returns the building records for a BAG addressable object
	// id. One id may legitimately resolve to more than one record.
	GetPanden(ctx context.Context, objectID string) ([]Pand, error)

	// Status probes the upstream by fetching a known object.
	Status(ctx context.Context) error

	// Config returns the configuration the client was built with.
	Config() Config
}

// BrkClient fetches cadastral lot records from the BRK registry.
type BrkClient interface {
	// GetLot returns the single lot identified by municipality code,
	// section letter and lot number. A lot code is unique.
	GetLot(ctx context.Context, municipalityCode, sectionLetter, lotNumber string) (*Lot, error)

	// Status probes the upstream by fetching a known lot.
	Status(ctx context.Context) error

	// Config returns the configuration the client was built with.
	Config() Config
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}
