// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Advertisement is the aggregate root. Location, VehicleDetails, ContactInfo and
// Attachments live and die with it.
type Advertisement struct {
	ID             uint64
	UUID           uuid.UUID
	AdName         string
	Price          float64
	OwnerID        uuid.UUID // weak reference, the user is not part of the aggregate
	Location       *Location
	VehicleDetails *VehicleDetails
	ContactInfo    *ContactInfo
	Attachments    []*Attachment
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ContactInfo holds how buyers reach the seller.
type ContactInfo struct {
	ID               uint64
	SellerName       string
	Email            string
	TelephoneNumber1 string
	TelephoneNumber2 string
}

// BuildAdName renders the display name "{make} {model}, {year}".
func BuildAdName(makeName, modelName string, year int) string {
	return fmt.Sprintf("%s %s, %d", makeName, modelName, year)
}

// RefreshAdName recomputes AdName from the vehicle snapshot.
func (a *Advertisement) RefreshAdName() {
	if a.VehicleDetails == nil {
		return
	}

	a.AdName = BuildAdName(a.VehicleDetails.Make, a.VehicleDetails.Model, a.VehicleDetails.ManufactureYear)
}

// IsOwnedBy reports whether userID is the advertisement's owner.
func (a *Advertisement) IsOwnedBy(userID uuid.UUID) bool {
	return userID != uuid.Nil && a.OwnerID == userID
}

// AttachmentFilenames lists the stored filenames currently attached.
func (a *Advertisement) AttachmentFilenames() []string {
	names := make([]string, 0, len(a.Attachments))
	for _, att := range a.Attachments {
		names = append(names, att.Filename)
	}

	return names
}

// AppendAttachments adds attachments to the set. Entries whose filename is
// already attached are skipped.
func (a *Advertisement) AppendAttachments(attachments ...*Attachment) {
	seen := make(map[string]struct{}, len(a.Attachments)+len(attachments))
	for _, att := range a.Attachments {
		seen[att.Filename] = struct{}{}
	}

	for _, att := range attachments {
		if att == nil {
			continue
		}
		if _, ok := seen[att.Filename]; ok {
			continue
		}
		seen[att.Filename] = struct{}{}
		a.Attachments = append(a.Attachments, att)
	}
}

// ReplaceAttachments detaches every current attachment, attaches the given set
// and returns the filenames that were detached.
func (a *Advertisement) ReplaceAttachments(attachments ...*Attachment) []string {
	detached := a.AttachmentFilenames()
	a.Attachments = nil
	a.AppendAttachments(attachments...)

	return detached
}
