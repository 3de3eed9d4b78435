package impl

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"testing"

	"market/config"
	"market/internal/domain/entity"
	"market/internal/domain/service"
	"market/internal/infra/cache"
	"market/internal/infra/metrics"
	"market/internal/infra/persistence/postgres"
	"market/internal/infra/pubsub"
	"market/internal/infra/qrcode"
	infrastorage "market/internal/infra/storage"
	"market/internal/testutil"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/fileblob"
	"gorm.io/gorm"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), bytes.Repeat([]byte{0}, 32)...)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(storageRoot string) *config.Config {
	cfg := &config.Config{}
	cfg.Storage.Root = storageRoot
	cfg.Storage.MaxUploadSize = 1 << 20
	cfg.Storage.MaxFilesPerRequest = 3
	cfg.Storage.PublicPrefix = "/uploads/"
	cfg.Search.DefaultPageSize = 20
	cfg.Search.MaxPageSize = 100
	cfg.QRCode = &config.QRCodeConfig{Size: 128, BaseURL: "http://localhost:8080/api/v1/advertisements"}

	return cfg
}

// fixture wires the services onto SQLite and a temporary storage directory.
type fixture struct {
	db      *gorm.DB
	root    string
	storage service.AttachmentStorage
	ads     usecase.AdvertisementUsecase
	refs    usecase.ReferenceUsecase
}

func newFixture(t *testing.T) *fixture {
	return newFixtureWith(t, pubsub.NewNoopPublisher(newDiscardLogger()), cache.NewNoopViewCache())
}

func newFixtureWith(t *testing.T, publisher service.EventPublisher, viewCache service.ViewCache) *fixture {
	t.Helper()

	db := testutil.NewDB(t)
	testutil.SeedReferenceData(t, db)

	root := t.TempDir()
	bucket, err := fileblob.OpenBucket(root, &fileblob.Options{Metadata: fileblob.MetadataDontWrite})
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	cfg := newTestConfig(root)
	logger := newDiscardLogger()
	store := infrastorage.NewAttachmentStorage(bucket, cfg, logger)
	txManager := postgres.NewTransactionManager(db)

	ads := NewAdvertisementService(AdvertisementServiceParams{
		TxManager: txManager,
		AdRepo:    postgres.NewAdvertisementRepository(db),
		Storage:   store,
		Publisher: publisher,
		Cache:     viewCache,
		Metrics:   metrics.NewNoopMetrics(),
		QRCode:    qrcode.NewQRCodeService(cfg),
		Config:    cfg,
		Logger:    logger,
	})

	refs := NewReferenceService(ReferenceServiceParams{
		TxManager: txManager,
		RefRepo:   postgres.NewReferenceRepository(db),
		Logger:    logger,
	})

	return &fixture{db: db, root: root, storage: store, ads: ads, refs: refs}
}

// storedFiles lists the filenames currently in the storage root.
func (f *fixture) storedFiles(t *testing.T) []string {
	t.Helper()

	entries, err := os.ReadDir(f.root)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	return names
}

func newPNG(name string) *service.Upload {
	return &service.Upload{
		OriginalName: name,
		ContentType:  "image/png",
		Size:         int64(len(pngBytes)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(pngBytes)), nil
		},
	}
}

func newPrincipal(roles ...entity.Role) entity.Principal {
	return entity.Principal{UserID: uuid.New(), Roles: append(entity.Roles{entity.RoleUser}, roles...)}
}

type adSpec struct {
	makeID, modelID uint64
	year            int
	price           float64
	locationName    string
	longitude       string
	latitude        string
}

func toyotaYaris() adSpec {
	return adSpec{
		makeID:       testutil.MakeToyota,
		modelID:      testutil.ModelYaris,
		year:         2020,
		price:        15000,
		locationName: "Athens",
		longitude:    "23.7275",
		latitude:     "37.9838",
	}
}

func newCreateInput(spec adSpec) *usecase.CreateAdvertisementInput {
	return &usecase.CreateAdvertisementInput{
		Price: spec.price,
		VehicleDetails: usecase.VehicleDetailsInput{
			VehicleTypeID:   testutil.VehicleTypeCar,
			MakeID:          spec.makeID,
			ModelID:         spec.modelID,
			State:           "used",
			ManufactureYear: spec.year,
			Mileage:         42000,
			Color:           "Red",
			Description:     "One owner, full service history",
		},
		EngineSpec: usecase.EngineSpecInput{
			Displacement: 1490,
			FuelTypeID:   testutil.FuelTypePetrol,
			GearboxType:  "Manual",
			HorsePower:   125,
		},
		ContactInfo: usecase.ContactInfoInput{
			SellerName:       "Nikos",
			Email:            "nikos@example.gr",
			TelephoneNumber1: "+302100000000",
		},
		Location: usecase.LocationInput{
			LocationName: spec.locationName,
			PostalCode:   "10431",
			Longitude:    spec.longitude,
			Latitude:     spec.latitude,
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
