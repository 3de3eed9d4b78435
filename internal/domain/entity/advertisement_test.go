package entity

import (
	"testing"

	domainerrors "market/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAdName(t *testing.T) {
	assert.Equal(t, "Toyota Yaris, 2020", BuildAdName("Toyota", "Yaris", 2020))
}

func TestAdvertisement_RefreshAdName(t *testing.T) {
	ad := &Advertisement{
		AdName: "stale",
		VehicleDetails: &VehicleDetails{
			Make:            "Honda",
			Model:           "Civic",
			ManufactureYear: 2018,
		},
	}

	ad.RefreshAdName()

	assert.Equal(t, "Honda Civic, 2018", ad.AdName)
}

func TestAdvertisement_IsOwnedBy(t *testing.T) {
	owner := uuid.New()
	ad := &Advertisement{OwnerID: owner}

	assert.True(t, ad.IsOwnedBy(owner))
	assert.False(t, ad.IsOwnedBy(uuid.New()))
	assert.False(t, ad.IsOwnedBy(uuid.Nil))
}

func TestAdvertisement_AppendAttachments_DeduplicatesByFilename(t *testing.T) {
	ad := &Advertisement{Attachments: []*Attachment{{Filename: "a.jpg"}}}

	ad.AppendAttachments(&Attachment{Filename: "b.png"}, &Attachment{Filename: "a.jpg"}, nil, &Attachment{Filename: "b.png"})

	assert.Equal(t, []string{"a.jpg", "b.png"}, ad.AttachmentFilenames())
}

func TestAdvertisement_ReplaceAttachments(t *testing.T) {
	ad := &Advertisement{Attachments: []*Attachment{{Filename: "old-1.jpg"}, {Filename: "old-2.jpg"}}}

	detached := ad.ReplaceAttachments(&Attachment{Filename: "new-1.png"}, &Attachment{Filename: "new-2.png"})

	assert.Equal(t, []string{"old-1.jpg", "old-2.jpg"}, detached)
	assert.Equal(t, []string{"new-1.png", "new-2.png"}, ad.AttachmentFilenames())
}

func TestLocation_SetCoordinates_LatitudeOnly(t *testing.T) {
	loc, err := NewLocation("Athens", "10431", "23.7275", "37.9838")
	require.NoError(t, err)
	assert.Equal(t, orb.Point{23.7275, 37.9838}, loc.Point)

	lat := "38.0"
	require.NoError(t, loc.SetCoordinates(nil, &lat))

	assert.Equal(t, "23.7275", loc.Longitude)
	assert.Equal(t, "38.0", loc.Latitude)
	assert.Equal(t, orb.Point{23.7275, 38.0}, loc.Point)
}

func TestLocation_SetCoordinates_InvalidLeavesRecordUntouched(t *testing.T) {
	loc, err := NewLocation("Athens", "10431", "23.7275", "37.9838")
	require.NoError(t, err)

	lon := "east"
	err = loc.SetCoordinates(&lon, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
	assert.Equal(t, "23.7275", loc.Longitude)
	assert.Equal(t, orb.Point{23.7275, 37.9838}, loc.Point)
}

func TestParseVehicleState(t *testing.T) {
	tests := []struct {
		label   string
		want    VehicleState
		wantErr bool
	}{
		{label: "new", want: VehicleStateNew},
		{label: "USED", want: VehicleStateUsed},
		{label: " only PARTS ", want: VehicleStateOnlyParts},
		{label: "wrecked", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ParseVehicleState(tt.label)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrincipal_HasRole(t *testing.T) {
	p := NewPrincipal(uuid.New(), []string{"admin", "unknown"})

	assert.True(t, p.IsAuthenticated())
	assert.True(t, p.HasRole(RoleAdmin))
	assert.False(t, p.HasRole(RoleUser))
	assert.Len(t, p.Roles, 1)
}
