package impl

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/service"
	"market/internal/infra/persistence/model"
	"market/internal/testutil"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvertisementService_CreateAndFetch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := newPrincipal()

	created, err := f.ads.CreateAdvertisement(ctx, owner, newCreateInput(toyotaYaris()), []*service.Upload{newPNG("front.png")})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.UUID)
	assert.Equal(t, "Toyota Yaris, 2020", created.AdName)
	assert.Equal(t, owner.UserID, created.OwnerID)
	assert.InDelta(t, 15000.0, created.Price, 0.001)

	require.NotNil(t, created.VehicleDetails)
	assert.Equal(t, "Car", created.VehicleDetails.VehicleType)
	assert.Equal(t, "Toyota", created.VehicleDetails.Make)
	assert.Equal(t, "Yaris", created.VehicleDetails.Model)
	assert.Equal(t, "Used", created.VehicleDetails.State)
	require.NotNil(t, created.VehicleDetails.EngineSpec)
	assert.Equal(t, "Petrol", created.VehicleDetails.EngineSpec.FuelType)

	require.Len(t, created.Attachments, 1)
	assert.Equal(t, "/uploads/"+created.Attachments[0].Filename, created.Attachments[0].URL)
	assert.Equal(t, []string{created.Attachments[0].Filename}, f.storedFiles(t))

	fetched, err := f.ads.GetAdvertisementByUUID(ctx, created.UUID)
	require.NoError(t, err)
	assert.Equal(t, created.AdName, fetched.AdName)
	assert.InDelta(t, 15000.0, fetched.Price, 0.001)
	assert.Equal(t, "Toyota", fetched.VehicleDetails.Make)
	assert.Equal(t, "Yaris", fetched.VehicleDetails.Model)
	assert.Equal(t, 2020, fetched.VehicleDetails.ManufactureYear)
	assert.Equal(t, "Athens", fetched.Location.LocationName)
	assert.Equal(t, "23.7275", fetched.Location.Longitude)
	assert.Equal(t, "37.9838", fetched.Location.Latitude)
	assert.Equal(t, "nikos@example.gr", fetched.ContactInfo.Email)
	require.Len(t, fetched.Attachments, 1)

	byID, err := f.ads.GetAdvertisementByID(ctx, fetched.ID)
	require.NoError(t, err)
	assert.Equal(t, created.UUID, byID.UUID)
}

func TestAdvertisementService_CreateRejects(t *testing.T) {
	tests := []struct {
		name      string
		principal entity.Principal
		mutate    func(*usecase.CreateAdvertisementInput)
		files     []*service.Upload
		wantErr   error
	}{
		{
			name:      "anonymous caller",
			principal: entity.Principal{},
			wantErr:   domainerrors.ErrUnauthenticated,
		},
		{
			name:    "non-positive price",
			mutate:  func(in *usecase.CreateAdvertisementInput) { in.Price = -1 },
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "description too long",
			mutate:  func(in *usecase.CreateAdvertisementInput) { in.VehicleDetails.Description = string(bytes.Repeat([]byte("a"), 601)) },
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "unknown vehicle state",
			mutate:  func(in *usecase.CreateAdvertisementInput) { in.VehicleDetails.State = "Wrecked" },
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "latitude out of range",
			mutate:  func(in *usecase.CreateAdvertisementInput) { in.Location.Latitude = "91" },
			wantErr: domainerrors.ErrInvalidCoordinates,
		},
		{
			name:    "unknown model",
			mutate:  func(in *usecase.CreateAdvertisementInput) { in.VehicleDetails.ModelID = 999 },
			wantErr: domainerrors.ErrReferenceNotFound,
		},
		{
			name:    "unknown fuel type",
			mutate:  func(in *usecase.CreateAdvertisementInput) { in.EngineSpec.FuelTypeID = 999 },
			wantErr: domainerrors.ErrReferenceNotFound,
		},
		{
			name:    "model of another make",
			mutate:  func(in *usecase.CreateAdvertisementInput) { in.VehicleDetails.ModelID = testutil.ModelCivic },
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "file with a disallowed extension",
			files:   []*service.Upload{newPNG("front.png"), newPNG("script.sh")},
			wantErr: domainerrors.ErrInvalidAttachment,
		},
		{
			name:    "more files than one request admits",
			files:   []*service.Upload{newPNG("a.png"), newPNG("b.png"), newPNG("c.png"), newPNG("d.png")},
			wantErr: domainerrors.ErrInvalidAttachment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			principal := tt.principal
			if tt.wantErr != domainerrors.ErrUnauthenticated {
				principal = newPrincipal()
			}

			input := newCreateInput(toyotaYaris())
			if tt.mutate != nil {
				tt.mutate(input)
			}
			files := tt.files
			if files == nil {
				files = []*service.Upload{newPNG("front.png")}
			}

			_, err := f.ads.CreateAdvertisement(context.Background(), principal, input, files)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var count int64
			require.NoError(t, f.db.Model(&model.AdvertisementModel{}).Count(&count).Error)
			assert.Zero(t, count)
			assert.Empty(t, f.storedFiles(t), "no file may outlive a failed create")
		})
	}
}

func TestAdvertisementService_RenamedMakeKeepsSnapshot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.ads.CreateAdvertisement(ctx, newPrincipal(), newCreateInput(toyotaYaris()), nil)
	require.NoError(t, err)

	require.NoError(t, f.refs.RenameMake(ctx, newPrincipal(entity.RoleAdmin), testutil.MakeToyota, "ToyotaX"))

	fetched, err := f.ads.GetAdvertisementByUUID(ctx, created.UUID)
	require.NoError(t, err)
	assert.Equal(t, "Toyota", fetched.VehicleDetails.Make)
	assert.Equal(t, "Toyota Yaris, 2020", fetched.AdName)

	later, err := f.ads.CreateAdvertisement(ctx, newPrincipal(), newCreateInput(toyotaYaris()), nil)
	require.NoError(t, err)
	assert.Equal(t, "ToyotaX Yaris, 2020", later.AdName)
}

func TestAdvertisementService_UpdateReplacesAttachments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := newPrincipal()

	created, err := f.ads.CreateAdvertisement(ctx, owner, newCreateInput(toyotaYaris()), []*service.Upload{newPNG("old.png")})
	require.NoError(t, err)
	oldFile := created.Attachments[0].Filename

	updated, err := f.ads.UpdateAdvertisement(ctx, owner, created.UUID, &usecase.UpdateAdvertisementInput{},
		[]*service.Upload{newPNG("new-1.png"), newPNG("new-2.png")}, true)
	require.NoError(t, err)

	require.Len(t, updated.Attachments, 2)
	newFiles := []string{updated.Attachments[0].Filename, updated.Attachments[1].Filename}
	assert.NotContains(t, newFiles, oldFile)
	assert.ElementsMatch(t, newFiles, f.storedFiles(t), "the replaced file is removed from storage")

	fetched, err := f.ads.GetAdvertisementByUUID(ctx, created.UUID)
	require.NoError(t, err)
	assert.Len(t, fetched.Attachments, 2)
}

func TestAdvertisementService_UpdateAppendsAttachments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := newPrincipal()

	created, err := f.ads.CreateAdvertisement(ctx, owner, newCreateInput(toyotaYaris()),
		[]*service.Upload{newPNG("a.png"), newPNG("b.png")})
	require.NoError(t, err)

	updated, err := f.ads.UpdateAdvertisement(ctx, owner, created.UUID, nil, []*service.Upload{newPNG("c.png")}, false)
	require.NoError(t, err)

	assert.Len(t, updated.Attachments, len(created.Attachments)+1)
	assert.Len(t, f.storedFiles(t), 3)

	fetched, err := f.ads.GetAdvertisementByUUID(ctx, created.UUID)
	require.NoError(t, err)
	assert.Len(t, fetched.Attachments, 3)
}

func TestAdvertisementService_NonOwnerCannotMutate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := newPrincipal()
	intruder := newPrincipal()

	created, err := f.ads.CreateAdvertisement(ctx, owner, newCreateInput(toyotaYaris()), []*service.Upload{newPNG("a.png")})
	require.NoError(t, err)

	_, err = f.ads.UpdateAdvertisement(ctx, intruder, created.UUID,
		&usecase.UpdateAdvertisementInput{Price: ptr(1.0)}, []*service.Upload{newPNG("b.png")}, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAdvertisementOwnershipViolation)
	assert.Equal(t, domainerrors.KindUnauthorized, domainerrors.KindOf(err))

	err = f.ads.DeleteAdvertisement(ctx, intruder, created.UUID)
	assert.ErrorIs(t, err, domainerrors.ErrAdvertisementOwnershipViolation)

	err = f.ads.AdminDeleteAdvertisement(ctx, intruder, created.UUID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	fetched, err := f.ads.GetAdvertisementByUUID(ctx, created.UUID)
	require.NoError(t, err)
	assert.InDelta(t, 15000.0, fetched.Price, 0.001)
	require.Len(t, fetched.Attachments, 1)
	assert.Equal(t, created.Attachments[0].Filename, fetched.Attachments[0].Filename)
	assert.Equal(t, []string{created.Attachments[0].Filename}, f.storedFiles(t))
}

func TestAdvertisementService_UpdateLatitudeOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := newPrincipal()

	created, err := f.ads.CreateAdvertisement(ctx, owner, newCreateInput(toyotaYaris()), nil)
	require.NoError(t, err)

	_, err = f.ads.UpdateAdvertisement(ctx, owner, created.UUID, &usecase.UpdateAdvertisementInput{
		Location: &usecase.UpdateLocationInput{Latitude: ptr("40.6401")},
	}, nil, false)
	require.NoError(t, err)

	var loc model.LocationModel
	require.NoError(t, f.db.Where("advertisement_id = ?", created.ID).First(&loc).Error)
	assert.Equal(t, "23.7275", loc.Longitude)
	assert.Equal(t, "40.6401", loc.Latitude)
	assert.InDelta(t, 23.7275, loc.Point.Lon(), 1e-9)
	assert.InDelta(t, 40.6401, loc.Point.Lat(), 1e-9)

	t.Run("invalid coordinate leaves the record untouched", func(t *testing.T) {
		_, err := f.ads.UpdateAdvertisement(ctx, owner, created.UUID, &usecase.UpdateAdvertisementInput{
			Location: &usecase.UpdateLocationInput{Longitude: ptr("181")},
		}, nil, false)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)

		fetched, err := f.ads.GetAdvertisementByUUID(ctx, created.UUID)
		require.NoError(t, err)
		assert.Equal(t, "23.7275", fetched.Location.Longitude)
	})
}

func TestAdvertisementService_UpdateRecomputesAdName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := newPrincipal()

	created, err := f.ads.CreateAdvertisement(ctx, owner, newCreateInput(toyotaYaris()), nil)
	require.NoError(t, err)

	t.Run("other fields keep the name", func(t *testing.T) {
		updated, err := f.ads.UpdateAdvertisement(ctx, owner, created.UUID, &usecase.UpdateAdvertisementInput{
			Price:          ptr(14000.0),
			VehicleDetails: &usecase.UpdateVehicleDetailsInput{Color: ptr("Blue")},
		}, nil, false)
		require.NoError(t, err)
		assert.Equal(t, "Toyota Yaris, 2020", updated.AdName)
		assert.Equal(t, "Blue", updated.VehicleDetails.Color)
		assert.InDelta(t, 14000.0, updated.Price, 0.001)
	})

	t.Run("model and year change the name", func(t *testing.T) {
		updated, err := f.ads.UpdateAdvertisement(ctx, owner, created.UUID, &usecase.UpdateAdvertisementInput{
			VehicleDetails: &usecase.UpdateVehicleDetailsInput{ModelID: ptr(testutil.ModelCorolla), ManufactureYear: ptr(2021)},
		}, nil, false)
		require.NoError(t, err)
		assert.Equal(t, "Toyota Corolla, 2021", updated.AdName)
		assert.Equal(t, testutil.ModelCorolla, updated.VehicleDetails.ModelID)
	})

	t.Run("inconsistent model is rejected", func(t *testing.T) {
		_, err := f.ads.UpdateAdvertisement(ctx, owner, created.UUID, &usecase.UpdateAdvertisementInput{
			VehicleDetails: &usecase.UpdateVehicleDetailsInput{ModelID: ptr(testutil.ModelCivic)},
		}, nil, false)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("missing advertisement", func(t *testing.T) {
		_, err := f.ads.UpdateAdvertisement(ctx, owner, uuid.New(), nil, nil, false)
		assert.ErrorIs(t, err, domainerrors.ErrAdvertisementNotFound)
	})
}

func TestAdvertisementService_Delete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := newPrincipal()

	created, err := f.ads.CreateAdvertisement(ctx, owner, newCreateInput(toyotaYaris()),
		[]*service.Upload{newPNG("a.png"), newPNG("b.png")})
	require.NoError(t, err)

	require.NoError(t, f.ads.DeleteAdvertisement(ctx, owner, created.UUID))

	_, err = f.ads.GetAdvertisementByUUID(ctx, created.UUID)
	assert.ErrorIs(t, err, domainerrors.ErrAdvertisementNotFound)
	assert.Empty(t, f.storedFiles(t))

	for _, m := range []any{&model.LocationModel{}, &model.VehicleDetailsModel{}, &model.EngineSpecModel{}, &model.ContactInfoModel{}, &model.AttachmentModel{}} {
		var count int64
		require.NoError(t, f.db.Model(m).Count(&count).Error)
		assert.Zero(t, count, "%T", m)
	}

	err = f.ads.DeleteAdvertisement(ctx, owner, created.UUID)
	assert.ErrorIs(t, err, domainerrors.ErrAdvertisementNotFound)
}

func TestAdvertisementService_AdminDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.ads.CreateAdvertisement(ctx, newPrincipal(), newCreateInput(toyotaYaris()), []*service.Upload{newPNG("a.png")})
	require.NoError(t, err)

	require.NoError(t, f.ads.AdminDeleteAdvertisement(ctx, newPrincipal(entity.RoleAdmin), created.UUID))

	_, err = f.ads.GetAdvertisementByUUID(ctx, created.UUID)
	assert.ErrorIs(t, err, domainerrors.ErrAdvertisementNotFound)
	assert.Empty(t, f.storedFiles(t))
}

func TestAdvertisementService_Search(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := newPrincipal()

	thessaloniki := toyotaYaris()
	thessaloniki.locationName = "Thessaloniki"
	thessaloniki.price = 9000

	civic := toyotaYaris()
	civic.makeID, civic.modelID = testutil.MakeHonda, testutil.ModelCivic
	civic.price = 12000

	var athensToyota *usecase.AdvertisementView
	for i, spec := range []adSpec{toyotaYaris(), thessaloniki, civic} {
		view, err := f.ads.CreateAdvertisement(ctx, owner, newCreateInput(spec), nil)
		require.NoError(t, err)
		if i == 0 {
			athensToyota = view
		}
	}

	t.Run("filters combine with AND", func(t *testing.T) {
		page, err := f.ads.SearchAdvertisements(ctx, &usecase.SearchAdvertisementsInput{Make: "toyota", LocationName: "ATHENS"})
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		assert.Equal(t, athensToyota.UUID, page.Data[0].UUID)
		assert.Equal(t, int64(1), page.TotalElements)
	})

	t.Run("absent filters do not narrow", func(t *testing.T) {
		page, err := f.ads.SearchAdvertisements(ctx, &usecase.SearchAdvertisementsInput{Make: "  "})
		require.NoError(t, err)
		assert.Len(t, page.Data, 3)
		assert.Equal(t, 20, page.PageSize)
	})

	t.Run("id filters", func(t *testing.T) {
		page, err := f.ads.SearchAdvertisements(ctx, &usecase.SearchAdvertisementsInput{MakeID: ptr(testutil.MakeHonda)})
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		assert.Equal(t, "Civic", page.Data[0].VehicleDetails.Model)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		page, err := f.ads.SearchAdvertisements(ctx, &usecase.SearchAdvertisementsInput{Page: ptr(999)})
		require.NoError(t, err)
		assert.Empty(t, page.Data)
		assert.Equal(t, int64(3), page.TotalElements)
		assert.Equal(t, 999, page.CurrentPage)
	})

	t.Run("paging and sorting", func(t *testing.T) {
		page, err := f.ads.SearchAdvertisements(ctx, &usecase.SearchAdvertisementsInput{
			Size: ptr(2), SortBy: "price", Direction: "desc",
		})
		require.NoError(t, err)
		require.Len(t, page.Data, 2)
		assert.Equal(t, 2, page.TotalPages)
		assert.Equal(t, 2, page.NumberOfElements)
		assert.InDelta(t, 15000.0, page.Data[0].Price, 0.001)
		assert.InDelta(t, 12000.0, page.Data[1].Price, 0.001)
	})

	t.Run("size is capped", func(t *testing.T) {
		page, err := f.ads.SearchAdvertisements(ctx, &usecase.SearchAdvertisementsInput{Size: ptr(1000)})
		require.NoError(t, err)
		assert.Equal(t, 100, page.PageSize)
	})

	rejected := map[string]*usecase.SearchAdvertisementsInput{
		"negative page":     {Page: ptr(-1)},
		"zero size":         {Size: ptr(0)},
		"unknown sort":      {SortBy: "color"},
		"unknown direction": {Direction: "sideways"},
	}
	for name, input := range rejected {
		t.Run(name, func(t *testing.T) {
			_, err := f.ads.SearchAdvertisements(ctx, input)
			require.Error(t, err)
			assert.Equal(t, domainerrors.KindInvalidArgument, domainerrors.KindOf(err))
		})
	}
}

func TestAdvertisementService_GetAdvertisementsByOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := newPrincipal()

	for range 2 {
		_, err := f.ads.CreateAdvertisement(ctx, owner, newCreateInput(toyotaYaris()), nil)
		require.NoError(t, err)
	}
	_, err := f.ads.CreateAdvertisement(ctx, newPrincipal(), newCreateInput(toyotaYaris()), nil)
	require.NoError(t, err)

	views, err := f.ads.GetAdvertisementsByOwner(ctx, owner.UserID)
	require.NoError(t, err)
	assert.Len(t, views, 2)
	for _, v := range views {
		assert.Equal(t, owner.UserID, v.OwnerID)
	}
}

func TestAdvertisementService_GenerateShareQRCode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.ads.CreateAdvertisement(ctx, newPrincipal(), newCreateInput(toyotaYaris()), nil)
	require.NoError(t, err)

	code, err := f.ads.GenerateShareQRCode(ctx, created.UUID)
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(code))
	assert.NoError(t, err)

	_, err = f.ads.GenerateShareQRCode(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrAdvertisementNotFound)
}
