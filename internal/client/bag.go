package client

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"github.com/tweedegolf/pdok-apis/internal/httpclient"
	"github.com/tweedegolf/pdok-apis/pkg/pdok"
)

// DefaultBagBaseURL is the BAG individuele bevragingen v2 endpoint.
const DefaultBagBaseURL = "https://api.bag.kadaster.nl/lvbag/individuelebevragingen/v2"

// statusObjectID is a stable addressable object used by the Status probe.
const statusObjectID = "0268010000084126"

// BAG object ids are fixed-format 16-digit numeric strings.
var bagObjectIDPattern = regexp.MustCompile(`^[0-9]{16}$`)

// verblijfsobjectResponse is the addressable-object document. The pand
// records it belongs to are reachable through _links.
type verblijfsobjectResponse struct {
	Verblijfsobject struct {
		Status    string   `json:"status"`
		FloorArea int64    `json:"oppervlakte"`
		Purposes  []string `json:"gebruiksdoelen"`
	} `json:"verblijfsobject"`
	Links struct {
		PartOf []struct {
			Href string `json:"href"`
		} `json:"maaktDeelUitVan"`
	} `json:"_links"`
}

// pandResponse is a single building document.
type pandResponse struct {
	Pand struct {
		ID        string            `json:"identificatie"`
		Geometry  *geojson.Geometry `json:"geometrie"`
		BuildYear string            `json:"oorspronkelijkBouwjaar"`
		Status    string            `json:"status"`
	} `json:"pand"`
}

// BagClient implements pdok.BagClient.
type BagClient struct {
	httpClient *httpclient.Client
	config     pdok.Config
}

// NewBagClient creates a BAG client on the given transport. The API key and
// Accept-Crs header are default headers on the transport.
func NewBagClient(httpClient *httpclient.Client, config pdok.Config) *BagClient {
	return &BagClient{
		httpClient: httpClient,
		config:     config,
	}
}

// GetPanden implements pdok.BagClient.GetPanden. It resolves the
// addressable object, then fetches every building it is part of.
func (c *BagClient) GetPanden(ctx context.Context, objectID string) ([]pdok.Pand, error) {
	err := validation.Validate(objectID, validation.Required, validation.Match(bagObjectIDPattern))
	if err != nil {
		return nil, &pdok.Error{Kind: pdok.ErrorKindInvalidInput, Detail: "object id", Err: err}
	}

	resp, err := c.httpClient.Get(ctx, "/verblijfsobjecten/"+objectID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting verblijfsobject %s: %w", objectID, err)
	}

	var object verblijfsobjectResponse

	err = json.Unmarshal(resp.Body, &object)
	if err != nil {
		return nil, &pdok.Error{Kind: pdok.ErrorKindMalformed, Detail: "decoding verblijfsobject response", Err: err}
	}

	panden := make([]pdok.Pand, 0, len(object.Links.PartOf))

	for _, link := range object.Links.PartOf {
		pand, err := c.getPand(ctx, link.Href)
		if err != nil {
			return nil, err
		}

		pand.FloorArea = object.Verblijfsobject.FloorArea
		pand.ObjectStatus = object.Verblijfsobject.Status
		pand.Purposes = object.Verblijfsobject.Purposes

		panden = append(panden, *pand)
	}

	return panden, nil
}

// getPand follows a maaktDeelUitVan link. The BAG hands out absolute hrefs.
func (c *BagClient) getPand(ctx context.Context, href string) (*pdok.Pand, error) {
	resp, err := c.httpClient.Get(ctx, href, nil)
	if err != nil {
		return nil, fmt.Errorf("getting pand: %w", err)
	}

	var building pandResponse

	err = json.Unmarshal(resp.Body, &building)
	if err != nil {
		return nil, &pdok.Error{Kind: pdok.ErrorKindMalformed, Detail: "decoding pand response", Err: err}
	}

	return &pdok.Pand{
		ID:         building.Pand.ID,
		BuildYear:  building.Pand.BuildYear,
		Status:     building.Pand.Status,
		GroundArea: groundArea(building.Pand.Geometry),
		Geometry:   building.Pand.Geometry,
	}, nil
}

// groundArea computes the footprint area of the pand polygon. Meaningful in
// projected (Rijksdriehoek) coordinates, where the unit is m².
func groundArea(geometry *geojson.Geometry) float64 {
	if geometry == nil {
		return 0
	}

	return math.Round(math.Abs(planar.Area(geometry.Geometry())))
}

// Status implements pdok.BagClient.Status.
func (c *BagClient) Status(ctx context.Context) error {
	panden, err := c.GetPanden(ctx, statusObjectID)
	if err != nil {
		return fmt.Errorf("bag status: %w", err)
	}

	if len(panden) == 0 {
		return &pdok.Error{Kind: pdok.ErrorKindNotFound, Detail: "status probe object has no panden"}
	}

	return nil
}

// Config implements pdok.BagClient.Config.
func (c *BagClient) Config() pdok.Config {
	return c.config
}
