package geoutil

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/vptree"
)

const (
	earthRadiusKm = 6371.0088
	kmPerMile     = 1.609344
)

// Unit names a supported distance unit
type Unit string

const (
	Kilometres Unit = "kilometres"
	Miles      Unit = "miles"
)

// ParseUnit reads a distance unit name, ignoring case. The short forms
// "km" and "mi" are accepted.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kilometres", "km":
		return Kilometres, nil
	case "miles", "mi":
		return Miles, nil
	default:
		return "", fmt.Errorf("unknown distance unit %q (want %q or %q)", s, Kilometres, Miles)
	}
}

// Point is a geographic coordinate with an identifier
type Point struct {
	ID  string
	Lat float64
	Lon float64
}

// Match pairs an origin with its nearest candidate and the great-circle
// distance between them in the requested unit.
type Match struct {
	OriginID  string  `json:"origin_id"`
	NearestID string  `json:"nearest_id"`
	Distance  float64 `json:"distance"`
}

// vpPoint adapts a Point to the vantage point tree's element interface
// using the haversine distance, which satisfies the metric axioms the
// tree relies on.
type vpPoint struct {
	lat float64
	lon float64
	id  string
}

// Distance implements vptree.Comparable.
func (p vpPoint) Distance(c vptree.Comparable) float64 {
	q := c.(vpPoint)
	return haversineKm(p.lat, p.lon, q.lat, q.lon)
}

// NearestNeighbors finds, for every origin, the candidate with the smallest
// great-circle distance. Results preserve origin order. Candidates are
// indexed once in a vantage point tree, so large candidate sets stay cheap
// to query.
func NearestNeighbors(origins, candidates []Point, unit Unit) ([]Match, error) {
	factor, err := unitFactor(unit)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no candidate points to search")
	}
	if err := validatePoints(origins); err != nil {
		return nil, fmt.Errorf("origin %w", err)
	}
	if err := validatePoints(candidates); err != nil {
		return nil, fmt.Errorf("candidate %w", err)
	}

	items := make([]vptree.Comparable, len(candidates))
	for i, p := range candidates {
		items[i] = vpPoint{lat: p.Lat, lon: p.Lon, id: p.ID}
	}
	tree, err := vptree.New(items, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("build vantage point tree: %w", err)
	}

	matches := make([]Match, len(origins))
	for i, origin := range origins {
		nearest, distKm := tree.Nearest(vpPoint{lat: origin.Lat, lon: origin.Lon, id: origin.ID})
		matches[i] = Match{
			OriginID:  origin.ID,
			NearestID: nearest.(vpPoint).id,
			Distance:  distKm * factor,
		}
	}

	return matches, nil
}

// Distance returns the great-circle distance between two points in the
// requested unit.
func Distance(a, b Point, unit Unit) (float64, error) {
	factor, err := unitFactor(unit)
	if err != nil {
		return 0, err
	}
	if err := validatePoints([]Point{a, b}); err != nil {
		return 0, err
	}
	return haversineKm(a.Lat, a.Lon, b.Lat, b.Lon) * factor, nil
}

func unitFactor(unit Unit) (float64, error) {
	switch unit {
	case Kilometres:
		return 1, nil
	case Miles:
		return 1 / kmPerMile, nil
	}
	return 0, fmt.Errorf("unknown distance unit %q (want %q or %q)", unit, Kilometres, Miles)
}

func validatePoints(points []Point) error {
	for _, p := range points {
		if math.IsNaN(p.Lat) || p.Lat < -90 || p.Lat > 90 {
			return fmt.Errorf("point %q has latitude %v outside [-90, 90]", p.ID, p.Lat)
		}
		if math.IsNaN(p.Lon) || p.Lon < -180 || p.Lon > 180 {
			return fmt.Errorf("point %q has longitude %v outside [-180, 180]", p.ID, p.Lon)
		}
	}
	return nil
}

// haversineKm computes the great-circle distance between two coordinates
// in kilometres on a spherical Earth.
func haversineKm(aLat, aLon, bLat, bLon float64) float64 {
	const toRad = math.Pi / 180

	dLat := (bLat - aLat) * toRad
	dLon := (bLon - aLon) * toRad
	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat + math.Cos(aLat*toRad)*math.Cos(bLat*toRad)*sinLon*sinLon
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}
