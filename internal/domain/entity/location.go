package entity

import (
	"market/internal/domain/geo"

	"github.com/paulmach/orb"
)

// Location is where the vehicle can be seen. Longitude and Latitude are the
// canonical values; Point is always derived from them.
type Location struct {
	ID           uint64
	LocationName string
	PostalCode   string
	Longitude    string
	Latitude     string
	Point        orb.Point
}

// NewLocation builds a location and derives its point.
func NewLocation(name, postalCode, longitude, latitude string) (*Location, error) {
	loc := &Location{
		LocationName: name,
		PostalCode:   postalCode,
		Longitude:    longitude,
		Latitude:     latitude,
	}
	if err := loc.RecomputePoint(); err != nil {
		return nil, err
	}

	return loc, nil
}

// SetCoordinates overwrites whichever axis is given and re-derives the point
// from the record's own strings. On error the location is left untouched.
func (l *Location) SetCoordinates(longitude, latitude *string) error {
	if longitude == nil && latitude == nil {
		return nil
	}

	lon, lat := l.Longitude, l.Latitude
	if longitude != nil {
		lon = *longitude
	}
	if latitude != nil {
		lat = *latitude
	}

	point, err := geo.ParsePoint(lon, lat)
	if err != nil {
		return err
	}

	l.Longitude, l.Latitude, l.Point = lon, lat, point

	return nil
}

// RecomputePoint re-derives Point from Longitude and Latitude.
func (l *Location) RecomputePoint() error {
	point, err := geo.ParsePoint(l.Longitude, l.Latitude)
	if err != nil {
		return err
	}
	l.Point = point

	return nil
}
