// Package geom provides bounding-box helpers for working with the
// geometries returned by the PDOK clients, such as sizing a map viewport
// around a set of lots or buildings.
package geom

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/tweedegolf/pdok-apis/pkg/rijksdriehoek"
)

// BoundWgs84ToRijksdriehoek reprojects a WGS84 bound into the Dutch grid.
// Bound points store longitude in X and latitude in Y.
func BoundWgs84ToRijksdriehoek(bound orb.Bound) orb.Bound {
	minX, minY := rijksdriehoek.FromWgs84(bound.Min.Y(), bound.Min.X())
	maxX, maxY := rijksdriehoek.FromWgs84(bound.Max.Y(), bound.Max.X())

	return orb.Bound{
		Min: orb.Point{minX, minY},
		Max: orb.Point{maxX, maxY},
	}
}

// PointRijksdriehoekToWgs84 converts a grid coordinate to a WGS84 point
// with longitude in X and latitude in Y.
func PointRijksdriehoekToWgs84(x, y float64) orb.Point {
	lat, lon := rijksdriehoek.ToWgs84(x, y)

	return orb.Point{lon, lat}
}

// MergeBounds returns the smallest bound covering both inputs.
func MergeBounds(a, b orb.Bound) orb.Bound {
	return a.Union(b)
}

// MergeAll folds a slice of bounds into one covering bound. The second
// return value is false when the slice is empty.
func MergeAll(bounds []orb.Bound) (orb.Bound, bool) {
	if len(bounds) == 0 {
		return orb.Bound{}, false
	}

	merged := bounds[0]
	for _, bound := range bounds[1:] {
		merged = merged.Union(bound)
	}

	return merged, true
}

// GeometryBound returns the bounding box of a GeoJSON geometry, typically
// the Geometry field of a Pand or Lot.
func GeometryBound(geometry *geojson.Geometry) (orb.Bound, bool) {
	if geometry == nil {
		return orb.Bound{}, false
	}

	return geometry.Geometry().Bound(), true
}

// BoundToLineString returns the outline of a bound as a closed line string.
func BoundToLineString(bound orb.Bound) orb.LineString {
	return orb.LineString(bound.ToRing())
}

// StretchToSquare grows the shorter axis of a bound until both axes are
// equal, keeping the center in place.
func StretchToSquare(bound orb.Bound) orb.Bound {
	width := bound.Max.X() - bound.Min.X()
	height := bound.Max.Y() - bound.Min.Y()
	center := bound.Center()

	if height < width {
		half := width / 2

		return orb.Bound{
			Min: orb.Point{bound.Min.X(), center.Y() - half},
			Max: orb.Point{bound.Max.X(), center.Y() + half},
		}
	}

	half := height / 2

	return orb.Bound{
		Min: orb.Point{center.X() - half, bound.Min.Y()},
		Max: orb.Point{center.X() + half, bound.Max.Y()},
	}
}

// AddMargin pads a bound on all sides. A negative margin shrinks it.
func AddMargin(bound orb.Bound, margin float64) orb.Bound {
	return orb.Bound{
		Min: orb.Point{bound.Min.X() - margin, bound.Min.Y() - margin},
		Max: orb.Point{bound.Max.X() + margin, bound.Max.Y() + margin},
	}
}

// ExpandToSize squares a bound and pads it until both sides measure size.
// Only meaningful for Rijksdriehoek coordinates, where units are meters.
func ExpandToSize(bound orb.Bound, size float64) orb.Bound {
	square := StretchToSquare(bound)
	width := square.Max.Y() - square.Min.Y()

	return AddMargin(square, (size-width)/2)
}

// MultiPointFeature wraps a set of points in a GeoJSON feature.
func MultiPointFeature(points []orb.Point) *geojson.Feature {
	return geojson.NewFeature(orb.MultiPoint(points))
}

// MultiPolygonFeature wraps a set of polygons in a GeoJSON feature.
func MultiPolygonFeature(polygons []orb.Polygon) *geojson.Feature {
	return geojson.NewFeature(orb.MultiPolygon(polygons))
}
