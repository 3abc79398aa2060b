package client

import (
	"context"
	"fmt"
	"net/url"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/paulmach/orb/geojson"

	"github.com/tweedegolf/pdok-apis/internal/httpclient"
	"github.com/tweedegolf/pdok-apis/pkg/pdok"
)

// DefaultBrkBaseURL is the kadastrale kaart WFS endpoint.
const DefaultBrkBaseURL = "https://service.pdok.nl/kadaster/kadastralekaart/wfs/v5_0"

// Lot codes: AKR municipality code (three letters, two digits), a single
// section letter, and a numeric lot number.
var (
	municipalityCodePattern = regexp.MustCompile(`^[A-Za-z]{3}[0-9]{2}$`)
	sectionLetterPattern    = regexp.MustCompile(`^[A-Za-z]$`)
	lotNumberPattern        = regexp.MustCompile(`^[0-9]+$`)
)

// lotFilter selects a lot by its three identifier components. The values
// are validated to be alphanumeric before interpolation.
const lotFilter = `
<Filter>
  <And>
    <And>
      <PropertyIsEqualTo>
        <PropertyName>sectie</PropertyName>
        <Literal>%s</Literal>
      </PropertyIsEqualTo>
      <PropertyIsEqualTo>
        <PropertyName>perceelnummer</PropertyName>
        <Literal>%s</Literal>
      </PropertyIsEqualTo>
    </And>
    <PropertyIsEqualTo>
      <PropertyName>AKRKadastraleGemeenteCodeWaarde</PropertyName>
      <Literal>%s</Literal>
    </PropertyIsEqualTo>
  </And>
</Filter>`

// BrkClient implements pdok.BrkClient.
type BrkClient struct {
	httpClient *httpclient.Client
	config     pdok.Config
}

// NewBrkClient creates a BRK client on the given transport. The Accept-Crs
// header is a default header on the transport.
func NewBrkClient(httpClient *httpclient.Client, config pdok.Config) *BrkClient {
	return &BrkClient{
		httpClient: httpClient,
		config:     config,
	}
}

// GetLot implements pdok.BrkClient.GetLot.
func (c *BrkClient) GetLot(ctx context.Context, municipalityCode, sectionLetter, lotNumber string) (*pdok.Lot, error) {
	err := validateLotCode(municipalityCode, sectionLetter, lotNumber)
	if err != nil {
		return nil, err
	}

	query := url.Values{
		"request":      []string{"GetFeature"},
		"service":      []string{"WFS"},
		"version":      []string{"2.0.0"},
		"typenames":    []string{"kadastralekaartv5:perceel"},
		"outputFormat": []string{"application/json"},
		"filter":       []string{fmt.Sprintf(lotFilter, sectionLetter, lotNumber, municipalityCode)},
	}

	resp, err := c.httpClient.Get(ctx, "", query)
	if err != nil {
		return nil, fmt.Errorf("getting lot %s-%s-%s: %w", municipalityCode, sectionLetter, lotNumber, err)
	}

	collection, err := geojson.UnmarshalFeatureCollection(resp.Body)
	if err != nil {
		return nil, &pdok.Error{Kind: pdok.ErrorKindMalformed, Detail: "decoding lot feature collection", Err: err}
	}

	if len(collection.Features) == 0 {
		return nil, &pdok.Error{
			Kind:   pdok.ErrorKindNotFound,
			Detail: fmt.Sprintf("no lot matches %s-%s-%s", municipalityCode, sectionLetter, lotNumber),
		}
	}

	// A lot code is unique; the collection carries at most one feature.
	return lotFromFeature(collection.Features[0])
}

// lotFromFeature projects a WFS perceel feature onto a Lot.
func lotFromFeature(feature *geojson.Feature) (*pdok.Lot, error) {
	id, ok := feature.Properties["identificatieLokaalID"].(string)
	if !ok {
		return nil, &pdok.Error{Kind: pdok.ErrorKindMalformed, Detail: "lot feature misses identificatieLokaalID"}
	}

	section, ok := feature.Properties["sectie"].(string)
	if !ok {
		return nil, &pdok.Error{Kind: pdok.ErrorKindMalformed, Detail: "lot feature misses sectie"}
	}

	number, ok := feature.Properties["perceelnummer"].(float64)
	if !ok {
		return nil, &pdok.Error{Kind: pdok.ErrorKindMalformed, Detail: "lot feature misses perceelnummer"}
	}

	area, _ := feature.Properties["kadastraleGrootteWaarde"].(float64)
	municipalityName, _ := feature.Properties["kadastraleGemeenteWaarde"].(string)
	municipalityCode, _ := feature.Properties["AKRKadastraleGemeenteCodeWaarde"].(string)

	return &pdok.Lot{
		ID:               id,
		MunicipalityName: municipalityName,
		MunicipalityCode: municipalityCode,
		Section:          section,
		LotNumber:        int64(number),
		Area:             area,
		Geometry:         geojson.NewGeometry(feature.Geometry),
	}, nil
}

// Status implements pdok.BrkClient.Status.
func (c *BrkClient) Status(ctx context.Context) error {
	_, err := c.GetLot(ctx, "HTT02", "M", "5038")
	if err != nil {
		return fmt.Errorf("brk status: %w", err)
	}

	return nil
}

// Config implements pdok.BrkClient.Config.
func (c *BrkClient) Config() pdok.Config {
	return c.config
}

// validateLotCode checks the three lot identifier components. Shared with
// the locatieserver lot suggestions.
func validateLotCode(municipalityCode, sectionLetter, lotNumber string) error {
	err := validation.Validate(municipalityCode, validation.Required, validation.Match(municipalityCodePattern))
	if err != nil {
		return &pdok.Error{Kind: pdok.ErrorKindInvalidInput, Detail: "municipality code", Err: err}
	}

	err = validation.Validate(sectionLetter, validation.Required, validation.Match(sectionLetterPattern))
	if err != nil {
		return &pdok.Error{Kind: pdok.ErrorKindInvalidInput, Detail: "section letter", Err: err}
	}

	err = validation.Validate(lotNumber, validation.Required, validation.Match(lotNumberPattern))
	if err != nil {
		return &pdok.Error{Kind: pdok.ErrorKindInvalidInput, Detail: "lot number", Err: err}
	}

	return nil
}
