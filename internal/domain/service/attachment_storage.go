package service

import (
	"context"
	"io"

	"market/internal/domain/entity"
)

// Upload is one client-supplied file. Open may be called more than once; each
// call returns a fresh reader positioned at the start of the content.
type Upload struct {
	OriginalName string
	ContentType  string // as declared by the client, may be empty
	Size         int64
	Open         func() (io.ReadCloser, error)
}

// AttachmentStorage keeps attachment files in one flat namespace.
type AttachmentStorage interface {
	// Validate checks name, size and content of an upload without writing anything.
	Validate(ctx context.Context, upload *Upload) error

	// Store writes the upload under a generated unique filename.
	Store(ctx context.Context, upload *Upload) (*entity.Attachment, error)

	// Delete removes a stored file. A missing file is not an error.
	Delete(ctx context.Context, filename string) error

	// Open streams a stored file and reports its content type.
	Open(ctx context.Context, filename string) (io.ReadCloser, string, error)
}
