package postgres

import (
	"context"
	"time"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/errors"
	"market/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// advertisementRepository implements repository.AdvertisementRepository.
type advertisementRepository struct {
	db *gorm.DB
}

// NewAdvertisementRepository is the constructor for advertisementRepository.
func NewAdvertisementRepository(db *gorm.DB) repository.AdvertisementRepository {
	return &advertisementRepository{db: db}
}

// Create inserts the root and, through GORM associations, every dependent row.
func (repo *advertisementRepository) Create(ctx context.Context, ad *entity.Advertisement) error {
	adM := fromAdvertisementDomain(ad)

	if err := repo.db.WithContext(ctx).Create(adM).Error; err != nil {
		return translateWriteError(err, domainerrors.ErrAdvertisementConflict, "failed to create advertisement "+ad.UUID.String())
	}

	copyGeneratedValues(ad, adM)

	return nil
}

// Update writes every dependent explicitly; associations are never saved implicitly.
func (repo *advertisementRepository) Update(ctx context.Context, ad *entity.Advertisement) error {
	adM := fromAdvertisementDomain(ad)
	adM.UpdatedAt = time.Now()
	details := "failed to update advertisement " + ad.UUID.String()
	db := repo.db.WithContext(ctx)

	result := db.Model(&model.AdvertisementModel{ID: adM.ID}).
		Omit(clause.Associations).
		Updates(map[string]any{
			"ad_name":    adM.AdName,
			"price":      adM.Price,
			"updated_at": adM.UpdatedAt,
		})
	if result.Error != nil {
		return translateWriteError(result.Error, domainerrors.ErrAdvertisementConflict, details)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAdvertisementNotFound.WithDetailsf("advertisement %s", ad.UUID)
	}

	var dependents []any
	if adM.Location != nil {
		dependents = append(dependents, adM.Location)
	}
	if adM.ContactInfo != nil {
		dependents = append(dependents, adM.ContactInfo)
	}
	if adM.VehicleDetails != nil {
		dependents = append(dependents, adM.VehicleDetails)
		if adM.VehicleDetails.EngineSpec != nil {
			dependents = append(dependents, adM.VehicleDetails.EngineSpec)
		}
	}
	for _, dependent := range dependents {
		// details are saved first and may have just received their id
		if engine, ok := dependent.(*model.EngineSpecModel); ok {
			engine.VehicleDetailsID = adM.VehicleDetails.ID
		}
		if err := db.Omit(clause.Associations).Save(dependent).Error; err != nil {
			return translateWriteError(err, domainerrors.ErrAdvertisementConflict, details)
		}
	}

	if err := repo.syncAttachments(db, adM); err != nil {
		return translateWriteError(err, domainerrors.ErrAdvertisementConflict, details)
	}

	copyGeneratedValues(ad, adM)

	return nil
}

// syncAttachments removes rows that left the set and inserts the new ones.
func (repo *advertisementRepository) syncAttachments(db *gorm.DB, adM *model.AdvertisementModel) error {
	kept := make([]string, 0, len(adM.Attachments))
	for _, a := range adM.Attachments {
		kept = append(kept, a.Filename)
	}

	stale := db.Where("advertisement_id = ?", adM.ID)
	if len(kept) > 0 {
		stale = stale.Where("filename NOT IN ?", kept)
	}
	if err := stale.Delete(&model.AttachmentModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove detached attachments")
	}

	for _, a := range adM.Attachments {
		if a.ID != 0 {
			continue
		}
		a.AdvertisementID = adM.ID
		if err := db.Create(a).Error; err != nil {
			return errors.Wrapf(err, "failed to attach %s", a.Filename)
		}
	}

	return nil
}

// Delete removes dependents leaf-first, then the root.
func (repo *advertisementRepository) Delete(ctx context.Context, id uint64) error {
	db := repo.db.WithContext(ctx)
	details := "failed to delete advertisement"

	detailsOfAd := db.Model(&model.VehicleDetailsModel{}).Select("id").Where("advertisement_id = ?", id)
	dependents := []struct {
		query string
		arg   any
		model any
	}{
		{"advertisement_id = ?", id, &model.AttachmentModel{}},
		{"advertisement_id = ?", id, &model.ContactInfoModel{}},
		{"vehicle_details_id IN (?)", detailsOfAd, &model.EngineSpecModel{}},
		{"advertisement_id = ?", id, &model.VehicleDetailsModel{}},
		{"advertisement_id = ?", id, &model.LocationModel{}},
	}
	for _, dependent := range dependents {
		if err := db.Where(dependent.query, dependent.arg).Delete(dependent.model).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, details)
		}
	}

	result := db.Delete(&model.AdvertisementModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, details)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAdvertisementNotFound.WithDetailsf("advertisement id %d", id)
	}

	return nil
}

// FindByID retrieves an aggregate by its surrogate id.
func (repo *advertisementRepository) FindByID(ctx context.Context, id uint64) (*entity.Advertisement, error) {
	var adM model.AdvertisementModel
	if err := repo.withAggregate(repo.db.WithContext(ctx)).First(&adM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrAdvertisementNotFound.WithDetailsf("advertisement id %d", id)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find advertisement by id")
	}

	return toAdvertisementDomain(&adM), nil
}

// FindByUUID retrieves an aggregate by its public identifier.
func (repo *advertisementRepository) FindByUUID(ctx context.Context, adUUID uuid.UUID) (*entity.Advertisement, error) {
	var adM model.AdvertisementModel
	err := repo.withAggregate(repo.db.WithContext(ctx)).
		Where("advertisements.uuid = ?", adUUID).
		First(&adM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrAdvertisementNotFound.WithDetailsf("advertisement %s", adUUID)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find advertisement by uuid")
	}

	return toAdvertisementDomain(&adM), nil
}

// FindByOwner lists an owner's advertisements, newest first, from the primary.
func (repo *advertisementRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Advertisement, error) {
	var adMs []*model.AdvertisementModel
	err := repo.withAggregate(repo.db.WithContext(ctx).Clauses(dbresolver.Write)).
		Where("advertisements.owner_id = ?", ownerID).
		Order("advertisements.created_at DESC").
		Order("advertisements.id DESC").
		Find(&adMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find advertisements by owner")
	}

	return toAdvertisementDomainList(adMs), nil
}

// ReferencedFilenames reads from the primary so a file attached by a write
// that just committed is never reported as free.
func (repo *advertisementRepository) ReferencedFilenames(ctx context.Context, filenames []string) ([]string, error) {
	if len(filenames) == 0 {
		return nil, nil
	}

	var referenced []string
	err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).
		Model(&model.AttachmentModel{}).
		Where("filename IN ?", filenames).
		Pluck("filename", &referenced).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to look up attachment references")
	}

	return referenced, nil
}

// Search counts every match, then loads the requested page. A page past the
// end yields no items.
func (repo *advertisementRepository) Search(ctx context.Context, criteria repository.SearchCriteria) (*repository.SearchResult, error) {
	if criteria.Page < 0 || criteria.Size < 1 {
		return nil, domainerrors.ErrInvalidSearchCriteria.WithDetailsf("page %d size %d", criteria.Page, criteria.Size)
	}

	order, err := sortOrder(criteria.SortBy, criteria.SortDesc)
	if err != nil {
		return nil, err
	}

	filter := matching(criteria)
	db := repo.db.WithContext(ctx)

	var total int64
	if err := filter(searchScope(db)).Count(&total).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count advertisements")
	}

	result := &repository.SearchResult{Total: total, Items: []*entity.Advertisement{}}
	offset := int64(criteria.Page) * int64(criteria.Size)
	if offset >= total {
		return result, nil
	}

	var adMs []*model.AdvertisementModel
	err = filter(searchScope(repo.withAggregate(db))).
		Select("advertisements.*").
		Order(order).
		Offset(int(offset)).
		Limit(criteria.Size).
		Find(&adMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to search advertisements")
	}

	result.Items = toAdvertisementDomainList(adMs)

	return result, nil
}

// searchScope joins the one-to-one tables the predicates filter on.
func searchScope(db *gorm.DB) *gorm.DB {
	return db.Model(&model.AdvertisementModel{}).
		Joins("JOIN vehicle_details ON vehicle_details.advertisement_id = advertisements.id").
		Joins("JOIN locations ON locations.advertisement_id = advertisements.id")
}

// withAggregate preloads every dependent of the root.
func (repo *advertisementRepository) withAggregate(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Location").
		Preload("VehicleDetails.EngineSpec").
		Preload("ContactInfo").
		Preload("Attachments", func(db *gorm.DB) *gorm.DB {
			return db.Order("attachments.id")
		})
}

func toAdvertisementDomainList(adMs []*model.AdvertisementModel) []*entity.Advertisement {
	ads := make([]*entity.Advertisement, 0, len(adMs))
	for _, adM := range adMs {
		ads = append(ads, toAdvertisementDomain(adM))
	}

	return ads
}
