package storage

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"market/config"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngBytes  = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), bytes.Repeat([]byte{0}, 32)...)
	jpegBytes = append([]byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}, bytes.Repeat([]byte{0}, 32)...)
	gifBytes  = append([]byte("GIF89a"), bytes.Repeat([]byte{0}, 32)...)
)

func newUpload(name, contentType string, data []byte) *service.Upload {
	return &service.Upload{
		OriginalName: name,
		ContentType:  contentType,
		Size:         int64(len(data)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

func newTestStorage(t *testing.T, maxUploadSize int64) (service.AttachmentStorage, string) {
	t.Helper()

	root := t.TempDir()
	cfg := &config.Config{}
	cfg.Storage.Root = root
	cfg.Storage.MaxUploadSize = maxUploadSize
	cfg.Storage.PublicPrefix = "/uploads/"

	bucket, err := openBucket(context.Background(), cfg.Storage)
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAttachmentStorage(bucket, cfg, logger), root
}

func TestAttachmentStorage_Store(t *testing.T) {
	tests := []struct {
		name        string
		upload      *service.Upload
		wantExt     string
		wantContent string
	}{
		{"png", newUpload("car.png", "image/png", pngBytes), "png", "image/png"},
		{"jpeg with upper case extension", newUpload("CAR.JPG", "", jpegBytes), "jpg", "image/jpeg"},
		{"gif with content type parameters", newUpload("car.gif", "image/gif; charset=binary", gifBytes), "gif", "image/gif"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, root := newTestStorage(t, 1024)

			attachment, err := store.Store(context.Background(), tt.upload)
			require.NoError(t, err)

			assert.Equal(t, tt.wantExt, attachment.Extension)
			assert.Equal(t, tt.wantContent, attachment.ContentType)
			assert.Equal(t, tt.upload.Size, attachment.Size)
			assert.True(t, strings.HasSuffix(attachment.Filename, "."+tt.wantExt))
			assert.NotContains(t, attachment.Filename, strings.TrimSuffix(tt.upload.OriginalName, filepath.Ext(tt.upload.OriginalName)))
			assert.Equal(t, "/uploads/"+attachment.Filename, attachment.URL)

			stored, err := os.ReadFile(filepath.Join(root, attachment.Filename))
			require.NoError(t, err)
			assert.Equal(t, tt.upload.Size, int64(len(stored)))
		})
	}
}

func TestAttachmentStorage_StoreGeneratesDistinctNames(t *testing.T) {
	store, _ := newTestStorage(t, 1024)
	ctx := context.Background()

	first, err := store.Store(ctx, newUpload("car.png", "image/png", pngBytes))
	require.NoError(t, err)
	second, err := store.Store(ctx, newUpload("car.png", "image/png", pngBytes))
	require.NoError(t, err)

	assert.NotEqual(t, first.Filename, second.Filename)
}

func TestAttachmentStorage_ValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		upload *service.Upload
	}{
		{"missing upload", nil},
		{"disallowed extension", newUpload("car.exe", "", pngBytes)},
		{"no extension", newUpload("car", "", pngBytes)},
		{"empty file", newUpload("car.png", "image/png", nil)},
		{"over the size limit", newUpload("car.png", "image/png", append(pngBytes, make([]byte, 2048)...))},
		{"declared non-image content type", newUpload("car.png", "text/plain", pngBytes)},
		{"content does not look like an image", newUpload("car.png", "image/png", []byte("definitely not an image"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, root := newTestStorage(t, 1024)

			err := store.Validate(context.Background(), tt.upload)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidAttachment)
			assert.Equal(t, domainerrors.KindInvalidArgument, domainerrors.KindOf(err))

			_, err = store.Store(context.Background(), tt.upload)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidAttachment)

			entries, err := os.ReadDir(root)
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func TestAttachmentStorage_Delete(t *testing.T) {
	store, root := newTestStorage(t, 1024)
	ctx := context.Background()

	attachment, err := store.Store(ctx, newUpload("car.png", "image/png", pngBytes))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, attachment.Filename))
	_, err = os.Stat(filepath.Join(root, attachment.Filename))
	assert.True(t, os.IsNotExist(err))

	t.Run("missing file is not an error", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, attachment.Filename))
	})

	t.Run("path-like names are rejected", func(t *testing.T) {
		for _, name := range []string{"", "..", "../config.yaml", `sub\file.png`} {
			assert.ErrorIs(t, store.Delete(ctx, name), domainerrors.ErrInvalidAttachment, name)
		}
	})
}

func TestAttachmentStorage_Open(t *testing.T) {
	store, _ := newTestStorage(t, 1024)
	ctx := context.Background()

	attachment, err := store.Store(ctx, newUpload("car.gif", "image/gif", gifBytes))
	require.NoError(t, err)

	r, _, err := store.Open(ctx, attachment.Filename)
	require.NoError(t, err)
	defer r.Close()

	content, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, gifBytes, content)

	_, _, err = store.Open(ctx, "missing.png")
	assert.ErrorIs(t, err, domainerrors.ErrAttachmentNotFound)
}

func TestOpenBucket_CreatesStorageRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "uploads")

	bucket, err := openBucket(context.Background(), config.StorageConfig{Root: root})
	require.NoError(t, err)
	defer bucket.Close()

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
