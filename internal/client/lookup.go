// Package client implements the PDOK upstream clients behind the pkg/pdok
// interfaces.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/tweedegolf/pdok-apis/internal/httpclient"
	"github.com/tweedegolf/pdok-apis/pkg/pdok"
)

// DefaultLookupBaseURL is the locatieserver endpoint.
const DefaultLookupBaseURL = "https://api.pdok.nl/bzk/locatieserver/search/v3_1"

// statusAddressID is a stable address id used by the Status probe.
const statusAddressID = "adr-5826c02550308f6da19e4feb5eb97ec8"

// Dutch postal codes: four digits not starting with 0, two letters, an
// optional space in between.
var postalCodePattern = regexp.MustCompile(`^[1-9][0-9]{3} ?[A-Za-z]{2}$`)

// solrResponse is the envelope the locatieserver wraps all results in.
type solrResponse[T any] struct {
	Response struct {
		Docs []T `json:"docs"`
	} `json:"response"`
}

// LookupClient implements pdok.LookupClient.
type LookupClient struct {
	httpClient *httpclient.Client
	config     pdok.Config
}

// NewLookupClient creates a locatieserver client on the given transport.
func NewLookupClient(httpClient *httpclient.Client, config pdok.Config) *LookupClient {
	return &LookupClient{
		httpClient: httpClient,
		config:     config,
	}
}

// SuggestConcrete implements pdok.LookupClient.SuggestConcrete.
func (c *LookupClient) SuggestConcrete(ctx context.Context, postalCode, houseNumber string) ([]pdok.AddressSuggestion, error) {
	err := validation.Validate(postalCode, validation.Required, validation.Match(postalCodePattern))
	if err != nil {
		return nil, &pdok.Error{Kind: pdok.ErrorKindInvalidInput, Detail: "postal code", Err: err}
	}

	err = validation.Validate(houseNumber, validation.Required)
	if err != nil {
		return nil, &pdok.Error{Kind: pdok.ErrorKindInvalidInput, Detail: "house number", Err: err}
	}

	query := url.Values{
		"q": []string{fmt.Sprintf("postcode:%s %s", postalCode, houseNumber)},
	}

	resp, err := c.httpClient.Get(ctx, "/suggest", query)
	if err != nil {
		return nil, fmt.Errorf("suggesting address: %w", err)
	}

	return decodeSolrDocs[pdok.AddressSuggestion](resp.Body)
}

// Lookup implements pdok.LookupClient.Lookup.
func (c *LookupClient) Lookup(ctx context.Context, id string) ([]pdok.Address, error) {
	err := validation.Validate(id, validation.Required)
	if err != nil {
		return nil, &pdok.Error{Kind: pdok.ErrorKindInvalidInput, Detail: "location id", Err: err}
	}

	resp, err := c.httpClient.Get(ctx, "/lookup", url.Values{"id": []string{id}})
	if err != nil {
		return nil, fmt.Errorf("looking up location: %w", err)
	}

	return decodeSolrDocs[pdok.Address](resp.Body)
}

// SuggestAddressesForLot implements pdok.LookupClient.SuggestAddressesForLot.
func (c *LookupClient) SuggestAddressesForLot(ctx context.Context, municipalityCode, sectionLetter, lotNumber string) ([]pdok.AddressSuggestion, error) {
	err := validateLotCode(municipalityCode, sectionLetter, lotNumber)
	if err != nil {
		return nil, err
	}

	// Example: /free?q=gekoppeld_perceel:HTT02-M-5038&fq=type:adres
	query := url.Values{
		"q":  []string{fmt.Sprintf("gekoppeld_perceel:%s-%s-%s", municipalityCode, sectionLetter, lotNumber)},
		"fq": []string{"type:adres"},
	}

	resp, err := c.httpClient.Get(ctx, "/free", query)
	if err != nil {
		return nil, fmt.Errorf("suggesting addresses for lot: %w", err)
	}

	return decodeSolrDocs[pdok.AddressSuggestion](resp.Body)
}

// Status implements pdok.LookupClient.Status.
func (c *LookupClient) Status(ctx context.Context) error {
	docs, err := c.Lookup(ctx, statusAddressID)
	if err != nil {
		return fmt.Errorf("locatieserver status: %w", err)
	}

	if len(docs) == 0 {
		return &pdok.Error{Kind: pdok.ErrorKindNotFound, Detail: "status probe address not found"}
	}

	return nil
}

// Config implements pdok.LookupClient.Config.
func (c *LookupClient) Config() pdok.Config {
	return c.config
}

// decodeSolrDocs unwraps the locatieserver envelope. Zero matches decode to
// an empty, non-nil slice.
func decodeSolrDocs[T any](body []byte) ([]T, error) {
	var envelope solrResponse[T]

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, &pdok.Error{Kind: pdok.ErrorKindMalformed, Detail: "decoding locatieserver response", Err: err}
	}

	if envelope.Response.Docs == nil {
		return []T{}, nil
	}

	return envelope.Response.Docs, nil
}
