package model

import (
	"database/sql/driver"
	"encoding/hex"

	"market/internal/domain/geo"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// GeoPoint maps an orb.Point onto a PostGIS geometry(Point,4326) column.
// Values are exchanged as hex-encoded EWKB, which PostGIS accepts on input
// and returns on output.
type GeoPoint struct {
	orb.Point
}

// Value implements driver.Valuer.
func (p GeoPoint) Value() (driver.Value, error) {
	data, err := ewkb.Marshal(p.Point, geo.SRID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode point")
	}

	return hex.EncodeToString(data), nil
}

// Scan implements sql.Scanner.
func (p *GeoPoint) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		p.Point = orb.Point{}

		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.Errorf("unsupported point source %T", src)
	}

	if decoded, err := hex.DecodeString(string(raw)); err == nil {
		raw = decoded
	}

	geom, srid, err := ewkb.Unmarshal(raw)
	if err != nil {
		return errors.Wrap(err, "failed to decode point")
	}
	if srid != 0 && srid != geo.SRID {
		return errors.Errorf("unexpected SRID %d", srid)
	}

	point, ok := geom.(orb.Point)
	if !ok {
		return errors.Errorf("unexpected geometry %s", geom.GeoJSONType())
	}
	p.Point = point

	return nil
}

// GormDataType implements schema.GormDataTypeInterface.
func (GeoPoint) GormDataType() string {
	return "geometry"
}

// GormDBDataType picks the column type per dialect.
func (GeoPoint) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "geometry(Point,4326)"
	}

	return "blob"
}
