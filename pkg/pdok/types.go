package pdok

import (
	"github.com/paulmach/orb/geojson"
)

// CoordinateSpace selects the coordinate reference system (CRS) that the
// upstream is asked to return geometries in.
type CoordinateSpace int

const (
	// Gps is WGS84 (epsg:4326), longitude/latitude degrees.
	Gps CoordinateSpace = iota
	// Rijksdriehoek is the Dutch national grid (epsg:28992), meters.
	Rijksdriehoek
)

// CRS returns the Accept-Crs header value for the coordinate space.
func (c CoordinateSpace) CRS() string {
	if c == Rijksdriehoek {
		// see https://epsg.io/28992
		return "epsg:28992"
	}

	return "epsg:4326"
}

// String implements fmt.Stringer.
func (c CoordinateSpace) String() string {
	if c == Rijksdriehoek {
		return "rijksdriehoek"
	}

	return "gps"
}

// ParseCoordinateSpace parses a coordinate space name as used on the CLI
// ("gps" or "rijksdriehoek", case-sensitive).
func ParseCoordinateSpace(s string) (CoordinateSpace, error) {
	switch s {
	case "gps":
		return Gps, nil
	case "rijksdriehoek":
		return Rijksdriehoek, nil
	default:
		return Gps, &Error{Kind: ErrorKindInvalidInput, Detail: "unknown coordinate space: " + s, Err: ErrUnknownCoordinateSpace}
	}
}

// AddressSuggestion is one element of the suggestion set returned by the
// locatieserver. Upstream ranking order is preserved; the first suggestion
// is usually the relevant one.
type AddressSuggestion struct {
	ID          string  `json:"id"           yaml:"id"`
	Type        string  `json:"type"         yaml:"type"`
	DisplayName string  `json:"weergavenaam" yaml:"weergavenaam"`
	Score       float64 `json:"score"        yaml:"score"`
}

// Address is a fully resolved location from the locatieserver lookup
// endpoint. It carries references to the lot, building and address.
type Address struct {
	ID                  string   `json:"id"                     yaml:"id"`
	LinkedLots          []string `json:"gekoppeld_perceel"      yaml:"gekoppeld_perceel"`
	NumberDesignationID string   `json:"nummeraanduiding_id"    yaml:"nummeraanduiding_id"`
	AddressableObjectID string   `json:"adresseerbaarobject_id" yaml:"adresseerbaarobject_id"`
	PostalCode          string   `json:"postcode"               yaml:"postcode"`
	HouseNumber         string   `json:"huis_nlt"               yaml:"huis_nlt"`
	Street              string   `json:"straatnaam"             yaml:"straatnaam"`
	City                string   `json:"woonplaatsnaam"         yaml:"woonplaatsnaam"`
}

// Pand is a building record from the BAG registry. GroundArea is computed
// from the pand polygon in the configured CRS; FloorArea comes from the
// verblijfsobject the building was resolved through.
type Pand struct {
	ID           string            `json:"identificatie"     yaml:"identificatie"`
	BuildYear    string            `json:"bouwjaar"          yaml:"bouwjaar"`
	Status       string            `json:"pandstatus"        yaml:"pandstatus"`
	ObjectStatus string            `json:"objectstatus"      yaml:"objectstatus"`
	FloorArea    int64             `json:"vloeroppervlak"    yaml:"vloeroppervlak"`
	GroundArea   float64           `json:"pandvlak"          yaml:"pandvlak"`
	Purposes     []string          `json:"gebruiksdoelen"    yaml:"gebruiksdoelen"`
	Geometry     *geojson.Geometry `json:"geometry"          yaml:"-"`
}

// Lot is a cadastral parcel from the BRK registry, identified by
// municipality code, section letter and lot number.
type Lot struct {
	ID               string            `json:"id"                     yaml:"id"`
	MunicipalityName string            `json:"kadastraleGemeentenaam" yaml:"kadastraleGemeentenaam"`
	MunicipalityCode string            `json:"kadastraleGemeentecode" yaml:"kadastraleGemeentecode"`
	Section          string            `json:"sectie"                 yaml:"sectie"`
	LotNumber        int64             `json:"perceelnummer"          yaml:"perceelnummer"`
	Area             float64           `json:"kadastraleGrootte"      yaml:"kadastraleGrootte"`
	Geometry         *geojson.Geometry `json:"geometry"               yaml:"-"`
}
