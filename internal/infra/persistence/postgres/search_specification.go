package postgres

import (
	"strings"

	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Columns the search predicates read. The query joins vehicle_details and
// locations one-to-one onto advertisements.
const (
	colVehicleType   = "vehicle_details.vehicle_type"
	colMake          = "vehicle_details.make"
	colModel         = "vehicle_details.model"
	colVehicleTypeID = "vehicle_details.vehicle_type_id"
	colMakeID        = "vehicle_details.make_id"
	colModelID       = "vehicle_details.model_id"
	colLocationName  = "locations.location_name"
	colPostalCode    = "locations.postal_code"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// predicate narrows a query. Predicates for absent filters return the query unchanged.
type predicate func(db *gorm.DB) *gorm.DB

func identity(db *gorm.DB) *gorm.DB {
	return db
}

// allOf combines predicates with AND.
func allOf(predicates ...predicate) predicate {
	return func(db *gorm.DB) *gorm.DB {
		for _, p := range predicates {
			db = p(db)
		}

		return db
	}
}

// containsIgnoreCase matches rows whose column contains value, ignoring case.
// LIKE wildcards in value are matched literally.
func containsIgnoreCase(column, value string) predicate {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return identity
	}

	pattern := "%" + likeEscaper.Replace(strings.ToLower(trimmed)) + "%"

	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER("+column+`) LIKE ? ESCAPE '\'`, pattern)
	}
}

func equalsID(column string, id *uint64) predicate {
	if id == nil {
		return identity
	}
	value := *id

	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", value)
	}
}

func isOfVehicleType(label string) predicate { return containsIgnoreCase(colVehicleType, label) }
func isOfMake(label string) predicate        { return containsIgnoreCase(colMake, label) }
func isOfModel(label string) predicate       { return containsIgnoreCase(colModel, label) }
func isInLocation(name string) predicate     { return containsIgnoreCase(colLocationName, name) }
func hasPostalCode(code string) predicate    { return containsIgnoreCase(colPostalCode, code) }

func hasVehicleTypeID(id *uint64) predicate { return equalsID(colVehicleTypeID, id) }
func hasMakeID(id *uint64) predicate        { return equalsID(colMakeID, id) }
func hasModelID(id *uint64) predicate       { return equalsID(colModelID, id) }

// matching builds the conjunction of every filter set on criteria.
func matching(criteria repository.SearchCriteria) predicate {
	return allOf(
		isOfVehicleType(criteria.VehicleType),
		isOfMake(criteria.Make),
		isOfModel(criteria.Model),
		isInLocation(criteria.LocationName),
		hasPostalCode(criteria.PostalCode),
		hasVehicleTypeID(criteria.VehicleTypeID),
		hasMakeID(criteria.MakeID),
		hasModelID(criteria.ModelID),
	)
}

var sortColumns = map[string]clause.Column{
	repository.SortByCreatedAt:       {Table: "advertisements", Name: "created_at"},
	repository.SortByUpdatedAt:       {Table: "advertisements", Name: "updated_at"},
	repository.SortByPrice:           {Table: "advertisements", Name: "price"},
	repository.SortByAdName:          {Table: "advertisements", Name: "ad_name"},
	repository.SortByManufactureYear: {Table: "vehicle_details", Name: "manufacture_year"},
	repository.SortByMileage:         {Table: "vehicle_details", Name: "mileage"},
}

// sortOrder resolves a sort field, defaulting to the creation timestamp. The
// surrogate id breaks ties so pages are stable.
func sortOrder(sortBy string, desc bool) (clause.OrderBy, error) {
	if sortBy == "" {
		sortBy = repository.SortByCreatedAt
	}

	column, ok := sortColumns[sortBy]
	if !ok {
		return clause.OrderBy{}, domainerrors.ErrInvalidSearchCriteria.WithDetailsf("unsupported sort field %q", sortBy)
	}

	return clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: column, Desc: desc},
		{Column: clause.Column{Table: "advertisements", Name: "id"}, Desc: desc},
	}}, nil
}
