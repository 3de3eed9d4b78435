package storage

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"market/config"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/service"
	"market/internal/errors"
	"market/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

var allowedContentTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
}

// attachmentStorage implements service.AttachmentStorage on a blob bucket.
type attachmentStorage struct {
	bucket        *blob.Bucket
	maxUploadSize int64
	publicPrefix  string
	logger        *slog.Logger
}

// NewAttachmentStorage creates an attachment store on bucket.
func NewAttachmentStorage(bucket *blob.Bucket, cfg *config.Config, logger *slog.Logger) service.AttachmentStorage {
	return &attachmentStorage{
		bucket:        bucket,
		maxUploadSize: cfg.Storage.MaxUploadSize,
		publicPrefix:  cfg.Storage.PublicPrefix,
		logger:        logger,
	}
}

// Validate rejects uploads with a disallowed extension, size or content.
func (s *attachmentStorage) Validate(_ context.Context, upload *service.Upload) error {
	_, _, err := s.inspect(upload)

	return err
}

// Store writes the upload under a generated name. The client-supplied name only
// contributes its extension.
func (s *attachmentStorage) Store(ctx context.Context, upload *service.Upload) (*entity.Attachment, error) {
	ext, contentType, err := s.inspect(upload)
	if err != nil {
		return nil, err
	}

	filename := uuid.New().String() + ext

	size, err := s.write(ctx, filename, contentType, upload)
	if err != nil {
		return nil, err
	}

	return &entity.Attachment{
		Filename:    filename,
		Extension:   strings.TrimPrefix(ext, "."),
		ContentType: contentType,
		Size:        size,
		URL:         s.publicPrefix + filename,
	}, nil
}

// inspect returns the normalized extension and the sniffed content type.
func (s *attachmentStorage) inspect(upload *service.Upload) (ext, contentType string, err error) {
	if upload == nil || upload.Open == nil {
		return "", "", domainerrors.ErrInvalidAttachment.WithDetails("missing file")
	}

	ext, err = extensionOf(upload.OriginalName)
	if err != nil {
		return "", "", err
	}

	if upload.Size <= 0 {
		return "", "", domainerrors.ErrInvalidAttachment.WithDetailsf("%s is empty", upload.OriginalName)
	}
	if upload.Size > s.maxUploadSize {
		return "", "", domainerrors.ErrInvalidAttachment.WithDetailsf("%s is %s, the limit is %s",
			upload.OriginalName, util.FormatBytes(upload.Size), util.FormatBytes(s.maxUploadSize))
	}

	if declared := baseMediaType(upload.ContentType); declared != "" && !slices.Contains(allowedContentTypes, declared) {
		return "", "", domainerrors.ErrInvalidAttachment.WithDetailsf("%s declares unsupported content type %s", upload.OriginalName, declared)
	}

	contentType, err = s.sniff(upload)
	if err != nil {
		return "", "", err
	}

	return ext, contentType, nil
}

func (s *attachmentStorage) write(ctx context.Context, filename, contentType string, upload *service.Upload) (int64, error) {
	src, err := upload.Open()
	if err != nil {
		return 0, errors.Wrapf(err, "failed to open upload %s", upload.OriginalName)
	}
	defer src.Close()

	// Cancelling the writer context discards the partial object.
	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(writeCtx, filename, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return 0, errors.Wrapf(err, "failed to create %s", filename)
	}

	written, err := io.Copy(w, io.LimitReader(src, s.maxUploadSize+1))
	if err == nil && written > s.maxUploadSize {
		err = domainerrors.ErrInvalidAttachment.WithDetailsf("%s exceeds %s", upload.OriginalName, util.FormatBytes(s.maxUploadSize))
	}
	if err != nil {
		cancel()
		_ = w.Close()

		return 0, errors.Wrapf(err, "failed to write %s", filename)
	}

	if err := w.Close(); err != nil {
		return 0, errors.Wrapf(err, "failed to commit %s", filename)
	}

	return written, nil
}

// Delete removes a stored file. A file that is already gone is only logged.
func (s *attachmentStorage) Delete(ctx context.Context, filename string) error {
	if err := checkFilename(filename); err != nil {
		return err
	}

	if err := s.bucket.Delete(ctx, filename); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			s.logger.Warn("Attachment already removed", slog.String("filename", filename))

			return nil
		}

		return errors.Wrapf(err, "failed to delete %s", filename)
	}

	return nil
}

// Open streams a stored file.
func (s *attachmentStorage) Open(ctx context.Context, filename string) (io.ReadCloser, string, error) {
	if err := checkFilename(filename); err != nil {
		return nil, "", err
	}

	r, err := s.bucket.NewReader(ctx, filename, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", domainerrors.ErrAttachmentNotFound.WithDetailsf("attachment %s", filename)
		}

		return nil, "", errors.Wrapf(err, "failed to open %s", filename)
	}

	return r, r.ContentType(), nil
}

// sniff detects the content type from the leading bytes of the upload.
func (s *attachmentStorage) sniff(upload *service.Upload) (string, error) {
	src, err := upload.Open()
	if err != nil {
		return "", errors.Wrapf(err, "failed to open upload %s", upload.OriginalName)
	}
	defer src.Close()

	detected, err := mimetype.DetectReader(src)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read upload %s", upload.OriginalName)
	}

	for _, allowed := range allowedContentTypes {
		if detected.Is(allowed) {
			return allowed, nil
		}
	}

	return "", domainerrors.ErrInvalidAttachment.WithDetailsf("%s has unsupported content %s", upload.OriginalName, detected.String())
}

func extensionOf(name string) (string, error) {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(name)))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", domainerrors.ErrInvalidAttachment.WithDetailsf("%q has an unsupported extension", name)
	}

	return ext, nil
}

func baseMediaType(contentType string) string {
	mediaType, _, _ := strings.Cut(contentType, ";")

	return strings.ToLower(strings.TrimSpace(mediaType))
}

// checkFilename accepts only the flat names Store generates.
func checkFilename(filename string) error {
	if filename == "" || filename == "." || filename == ".." || strings.ContainsAny(filename, `/\`) {
		return domainerrors.ErrInvalidAttachment.WithDetailsf("invalid filename %q", filename)
	}

	return nil
}
