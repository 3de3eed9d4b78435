package postgres

import (
	"market/internal/domain/entity"
	"market/internal/infra/persistence/model"
)

func toAdvertisementDomain(m *model.AdvertisementModel) *entity.Advertisement {
	ad := &entity.Advertisement{
		ID:          m.ID,
		UUID:        m.UUID,
		AdName:      m.AdName,
		Price:       m.Price,
		OwnerID:     m.OwnerID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		Attachments: make([]*entity.Attachment, 0, len(m.Attachments)),
	}

	if m.Location != nil {
		ad.Location = &entity.Location{
			ID:           m.Location.ID,
			LocationName: m.Location.LocationName,
			PostalCode:   m.Location.PostalCode,
			Longitude:    m.Location.Longitude,
			Latitude:     m.Location.Latitude,
			Point:        m.Location.Point.Point,
		}
	}

	if d := m.VehicleDetails; d != nil {
		ad.VehicleDetails = &entity.VehicleDetails{
			ID:              d.ID,
			VehicleTypeID:   d.VehicleTypeID,
			VehicleType:     d.VehicleType,
			MakeID:          d.MakeID,
			Make:            d.Make,
			ModelID:         d.ModelID,
			Model:           d.Model,
			State:           entity.VehicleState(d.State),
			ManufactureYear: d.ManufactureYear,
			Mileage:         d.Mileage,
			Color:           d.Color,
			Description:     d.Description,
		}
		if e := d.EngineSpec; e != nil {
			ad.VehicleDetails.EngineSpec = &entity.EngineSpec{
				ID:           e.ID,
				Displacement: e.Displacement,
				FuelTypeID:   e.FuelTypeID,
				FuelType:     e.FuelType,
				GearboxType:  e.GearboxType,
				HorsePower:   e.HorsePower,
			}
		}
	}

	if c := m.ContactInfo; c != nil {
		ad.ContactInfo = &entity.ContactInfo{
			ID:               c.ID,
			SellerName:       c.SellerName,
			Email:            c.Email,
			TelephoneNumber1: c.TelephoneNumber1,
			TelephoneNumber2: c.TelephoneNumber2,
		}
	}

	for _, a := range m.Attachments {
		ad.Attachments = append(ad.Attachments, toAttachmentDomain(a))
	}

	return ad
}

func toAttachmentDomain(m *model.AttachmentModel) *entity.Attachment {
	return &entity.Attachment{
		ID:          m.ID,
		Filename:    m.Filename,
		Extension:   m.Extension,
		ContentType: m.ContentType,
		Size:        m.Size,
		URL:         m.URL,
		CreatedAt:   m.CreatedAt,
	}
}

func fromAdvertisementDomain(ad *entity.Advertisement) *model.AdvertisementModel {
	m := &model.AdvertisementModel{
		ID:        ad.ID,
		UUID:      ad.UUID,
		AdName:    ad.AdName,
		Price:     ad.Price,
		OwnerID:   ad.OwnerID,
		CreatedAt: ad.CreatedAt,
		UpdatedAt: ad.UpdatedAt,
	}

	if l := ad.Location; l != nil {
		m.Location = &model.LocationModel{
			ID:              l.ID,
			AdvertisementID: ad.ID,
			LocationName:    l.LocationName,
			PostalCode:      l.PostalCode,
			Longitude:       l.Longitude,
			Latitude:        l.Latitude,
			Point:           model.GeoPoint{Point: l.Point},
		}
	}

	if d := ad.VehicleDetails; d != nil {
		m.VehicleDetails = &model.VehicleDetailsModel{
			ID:              d.ID,
			AdvertisementID: ad.ID,
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
			m.VehicleDetails.EngineSpec = &model.EngineSpecModel{
				ID:               e.ID,
				VehicleDetailsID: d.ID,
				Displacement:     e.Displacement,
				FuelTypeID:       e.FuelTypeID,
				FuelType:         e.FuelType,
				GearboxType:      e.GearboxType,
				HorsePower:       e.HorsePower,
			}
		}
	}

	if c := ad.ContactInfo; c != nil {
		m.ContactInfo = &model.ContactInfoModel{
			ID:               c.ID,
			AdvertisementID:  ad.ID,
			SellerName:       c.SellerName,
			Email:            c.Email,
			TelephoneNumber1: c.TelephoneNumber1,
			TelephoneNumber2: c.TelephoneNumber2,
		}
	}

	for _, a := range ad.Attachments {
		m.Attachments = append(m.Attachments, &model.AttachmentModel{
			ID:              a.ID,
			AdvertisementID: ad.ID,
			Filename:        a.Filename,
			Extension:       a.Extension,
			ContentType:     a.ContentType,
			Size:            a.Size,
			URL:             a.URL,
			CreatedAt:       a.CreatedAt,
		})
	}

	return m
}

// copyGeneratedValues writes ids and timestamps assigned by the database back
// onto the aggregate. Attachment order is preserved by the mapping.
func copyGeneratedValues(ad *entity.Advertisement, m *model.AdvertisementModel) {
	ad.ID = m.ID
	ad.CreatedAt = m.CreatedAt
	ad.UpdatedAt = m.UpdatedAt

	if ad.Location != nil && m.Location != nil {
		ad.Location.ID = m.Location.ID
	}
	if ad.VehicleDetails != nil && m.VehicleDetails != nil {
		ad.VehicleDetails.ID = m.VehicleDetails.ID
		if ad.VehicleDetails.EngineSpec != nil && m.VehicleDetails.EngineSpec != nil {
			ad.VehicleDetails.EngineSpec.ID = m.VehicleDetails.EngineSpec.ID
		}
	}
	if ad.ContactInfo != nil && m.ContactInfo != nil {
		ad.ContactInfo.ID = m.ContactInfo.ID
	}
	for i, a := range m.Attachments {
		if i < len(ad.Attachments) {
			ad.Attachments[i].ID = a.ID
			ad.Attachments[i].CreatedAt = a.CreatedAt
		}
	}
}
