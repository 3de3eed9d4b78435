package usecase

import (
	"time"

	"market/internal/domain/entity"

	"github.com/google/uuid"
)

// AdvertisementView is the read model returned to clients. It carries the
// coordinates as strings and never the raw point.
type AdvertisementView struct {
	ID             uint64              `json:"id"`
	UUID           uuid.UUID           `json:"uuid"`
	AdName         string              `json:"adName"`
	OwnerID        uuid.UUID           `json:"ownerId"`
	Price          float64             `json:"price"`
	VehicleDetails *VehicleDetailsView `json:"vehicleDetails,omitempty"`
	ContactInfo    *ContactInfoView    `json:"contactInfo,omitempty"`
	Location       *LocationView       `json:"location,omitempty"`
	Attachments    []*AttachmentView   `json:"attachments"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

type VehicleDetailsView struct {
	VehicleTypeID   uint64          `json:"vehicleTypeId"`
	VehicleType     string          `json:"vehicleType"`
	MakeID          uint64          `json:"makeId"`
	Make            string          `json:"make"`
	ModelID         uint64          `json:"modelId"`
	Model           string          `json:"model"`
	State           string          `json:"state"`
	ManufactureYear int             `json:"manufactureYear"`
	Mileage         int             `json:"mileage"`
	Color           string          `json:"color"`
	Description     string          `json:"description"`
	EngineSpec      *EngineSpecView `json:"engineSpec,omitempty"`
}

type EngineSpecView struct {
	Displacement int    `json:"displacement"`
	FuelTypeID   uint64 `json:"fuelTypeId"`
	FuelType     string `json:"fuelType"`
	GearboxType  string `json:"gearboxType"`
	HorsePower   int    `json:"horsePower"`
}

type ContactInfoView struct {
	SellerName       string `json:"sellerName"`
	Email            string `json:"email"`
	TelephoneNumber1 string `json:"telephoneNumber1"`
	TelephoneNumber2 string `json:"telephoneNumber2,omitempty"`
}

type LocationView struct {
	LocationName string `json:"locationName"`
	PostalCode   string `json:"postalCode"`
	Longitude    string `json:"longitude"`
	Latitude     string `json:"latitude"`
}

type AttachmentView struct {
	Filename    string `json:"filename"`
	URL         string `json:"url"`
	Extension   string `json:"extension"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// Paginated is one page of a search result.
type Paginated[T any] struct {
	Data             []*T  `json:"data"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	NumberOfElements int   `json:"numberOfElements"`
	CurrentPage      int   `json:"currentPage"`
	PageSize         int   `json:"pageSize"`
}

// NewPaginated computes the page counters for data.
func NewPaginated[T any](data []*T, total int64, page, size int) *Paginated[T] {
	if data == nil {
		data = []*T{}
	}

	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	return &Paginated[T]{
		Data:             data,
		TotalElements:    total,
		TotalPages:       totalPages,
		NumberOfElements: len(data),
		CurrentPage:      page,
		PageSize:         size,
	}
}

// NewAdvertisementView maps the aggregate onto its read model.
func NewAdvertisementView(ad *entity.Advertisement) *AdvertisementView {
	view := &AdvertisementView{
		ID:          ad.ID,
		UUID:        ad.UUID,
		AdName:      ad.AdName,
		OwnerID:     ad.OwnerID,
		Price:       ad.Price,
		Attachments: make([]*AttachmentView, 0, len(ad.Attachments)),
		CreatedAt:   ad.CreatedAt,
		UpdatedAt:   ad.UpdatedAt,
	}

	if d := ad.VehicleDetails; d != nil {
		view.VehicleDetails = &VehicleDetailsView{
			VehicleTypeID:   d.VehicleTypeID,
			VehicleType:     d.VehicleType,
			MakeID:          d.MakeID,
			Make:            d.Make,
			ModelID:         d.ModelID,
			Model:           d.Model,
			State:           d.State.String(),
			ManufactureYear: d.ManufactureYear,
			Mileage:         d.Mileage,
			Color:           d.Color,
			Description:     d.Description,
		}
		if e := d.EngineSpec; e != nil {
			view.VehicleDetails.EngineSpec = &EngineSpecView{
				Displacement: e.Displacement,
				FuelTypeID:   e.FuelTypeID,
				FuelType:     e.FuelType,
				GearboxType:  e.GearboxType,
				HorsePower:   e.HorsePower,
			}
		}
	}

	if c := ad.ContactInfo; c != nil {
		view.ContactInfo = &ContactInfoView{
			SellerName:       c.SellerName,
			Email:            c.Email,
			TelephoneNumber1: c.TelephoneNumber1,
			TelephoneNumber2: c.TelephoneNumber2,
		}
	}

	if l := ad.Location; l != nil {
		view.Location = &LocationView{
			LocationName: l.LocationName,
			PostalCode:   l.PostalCode,
			Longitude:    l.Longitude,
			Latitude:     l.Latitude,
		}
	}

	for _, a := range ad.Attachments {
		view.Attachments = append(view.Attachments, &AttachmentView{
			Filename:    a.Filename,
			URL:         a.URL,
			Extension:   a.Extension,
			ContentType: a.ContentType,
			Size:        a.Size,
		})
	}

	return view
}
