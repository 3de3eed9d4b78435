package entity

import "time"

// Attachment is a stored photo of an advertisement. Filename is generated by
// the store and unique across all advertisements.
type Attachment struct {
	ID          uint64
	Filename    string
	Extension   string
	ContentType string
	Size        int64
	URL         string
	CreatedAt   time.Time
}
