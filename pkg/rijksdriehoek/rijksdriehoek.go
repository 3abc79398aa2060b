// Package rijksdriehoek converts between WGS84 coordinates and the Dutch
// national grid (Rijksdriehoekscoördinaten, epsg:28992).
//
// The conversion uses the polynomial approximation by Schreutelkamp and
// Strang van Hees, accurate to well under a meter within the Netherlands.
package rijksdriehoek

// Base point of the grid: the Onze Lieve Vrouwetoren in Amersfoort.
const (
	baseX   = 155000.0
	baseY   = 463000.0
	baseLat = 52.15517440
	baseLon = 5.38720621
)

type term struct {
	p, q  int
	coeff float64
}

// RD to latitude, in seconds of arc per (dX/1e5)^p (dY/1e5)^q.
var latTerms = []term{
	{0, 1, 3235.65389},
	{2, 0, -32.58297},
	{0, 2, -0.24750},
	{2, 1, -0.84978},
	{0, 3, -0.06550},
	{2, 2, -0.01709},
	{1, 0, -0.00738},
	{4, 0, 0.00530},
	{2, 3, -0.00039},
	{4, 1, 0.00033},
	{1, 1, -0.00012},
}

// RD to longitude, in seconds of arc.
var lonTerms = []term{
	{1, 0, 5260.52916},
	{1, 1, 105.94684},
	{1, 2, 2.45656},
	{3, 0, -0.81885},
	{1, 3, 0.05594},
	{3, 1, -0.05607},
	{0, 1, 0.01199},
	{3, 2, -0.00256},
	{1, 4, 0.00128},
	{0, 2, 0.00022},
	{2, 0, -0.00022},
	{5, 0, 0.00026},
}

// WGS84 to easting, in meters per (0.36 dφ)^p (0.36 dλ)^q.
var xTerms = []term{
	{0, 1, 190094.945},
	{1, 1, -11832.228},
	{2, 1, -114.221},
	{0, 3, -32.391},
	{1, 0, -0.705},
	{3, 1, -2.340},
	{1, 3, -0.608},
	{0, 2, -0.008},
	{2, 3, 0.148},
}

// WGS84 to northing, in meters.
var yTerms = []term{
	{1, 0, 309056.544},
	{0, 2, 3638.893},
	{2, 0, 73.077},
	{1, 2, -157.984},
	{3, 0, 59.788},
	{0, 1, 0.433},
	{2, 2, -6.439},
	{1, 1, -0.032},
	{0, 4, 0.092},
	{1, 4, -0.054},
}

func evaluate(terms []term, dA, dB float64) float64 {
	var sum float64

	for _, t := range terms {
		sum += t.coeff * pow(dA, t.p) * pow(dB, t.q)
	}

	return sum
}

// pow is integer exponentiation; the polynomial degrees are all small.
func pow(base float64, exp int) float64 {
	result := 1.0
	for i := 0; i < exp; i++ {
		result *= base
	}

	return result
}

// ToWgs84 converts Rijksdriehoek easting/northing in meters to a WGS84
// latitude and longitude in degrees.
func ToWgs84(x, y float64) (lat, lon float64) {
	dX := (x - baseX) * 1e-5
	dY := (y - baseY) * 1e-5

	lat = baseLat + evaluate(latTerms, dX, dY)/3600
	lon = baseLon + evaluate(lonTerms, dX, dY)/3600

	return lat, lon
}

// FromWgs84 converts a WGS84 latitude and longitude in degrees to
// Rijksdriehoek easting/northing in meters.
func FromWgs84(lat, lon float64) (x, y float64) {
	dLat := 0.36 * (lat - baseLat)
	dLon := 0.36 * (lon - baseLon)

	x = baseX + evaluate(xTerms, dLat, dLon)
	y = baseY + evaluate(yTerms, dLat, dLon)

	return x, y
}
