// Package geo converts textual WGS84 coordinates into spatial points.
package geo

import (
	"math"
	"strconv"
	"strings"

	domainerrors "market/internal/domain/errors"

	"github.com/paulmach/orb"
)

// SRID is the spatial reference of every stored point (WGS84).
const SRID = 4326

const (
	minLongitude = -180.0
	maxLongitude = 180.0
	minLatitude  = -90.0
	maxLatitude  = 90.0
)

// ParsePoint builds a point from a longitude/latitude string pair.
// orb points are ordered (x, y), i.e. (longitude, latitude).
func ParsePoint(longitude, latitude string) (orb.Point, error) {
	lon, err := parseAxis("longitude", longitude, minLongitude, maxLongitude)
	if err != nil {
		return orb.Point{}, err
	}

	lat, err := parseAxis("latitude", latitude, minLatitude, maxLatitude)
	if err != nil {
		return orb.Point{}, err
	}

	return orb.Point{lon, lat}, nil
}

func parseAxis(name, raw string, lowerBound, upperBound float64) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, domainerrors.ErrInvalidCoordinates.WithDetailsf("%s is empty", name)
	}

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, domainerrors.ErrInvalidCoordinates.WithDetailsf("%s %q is not a number", name, raw)
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, domainerrors.ErrInvalidCoordinates.WithDetailsf("%s %q is not finite", name, raw)
	}

	if v < lowerBound || v > upperBound {
		return 0, domainerrors.ErrInvalidCoordinates.WithDetailsf("%s %s is outside [%g, %g]", name, trimmed, lowerBound, upperBound)
	}

	return v, nil
}
