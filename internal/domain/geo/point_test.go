package geo

import (
	"testing"

	domainerrors "market/internal/domain/errors"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		name    string
		lon     string
		lat     string
		want    orb.Point
		wantErr bool
	}{
		{name: "athens", lon: "23.7275", lat: "37.9838", want: orb.Point{23.7275, 37.9838}},
		{name: "surrounding spaces", lon: " 22.9444 ", lat: "\t40.6401", want: orb.Point{22.9444, 40.6401}},
		{name: "bounds inclusive", lon: "-180", lat: "90", want: orb.Point{-180, 90}},
		{name: "empty longitude", lon: "", lat: "37.9", wantErr: true},
		{name: "malformed latitude", lon: "23.7", lat: "37,98", wantErr: true},
		{name: "longitude out of range", lon: "180.5", lat: "10", wantErr: true},
		{name: "latitude out of range", lon: "10", lat: "-91", wantErr: true},
		{name: "not a number", lon: "NaN", lat: "10", wantErr: true},
		{name: "infinite", lon: "10", lat: "+Inf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePoint(tt.lon, tt.lat)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
				assert.Equal(t, domainerrors.KindInvalidArgument, domainerrors.KindOf(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Lon(), got.X())
			assert.Equal(t, tt.want.Lat(), got.Y())
		})
	}
}
