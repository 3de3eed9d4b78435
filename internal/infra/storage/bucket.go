// Package storage keeps advertisement attachments in a blob bucket.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"market/config"
	"market/internal/domain/lifecycle"
	"market/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"

	// Registered for storage.bucketUrl
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewBucket opens the configured bucket. Without a bucket URL the attachments
// live in a flat local directory that is created on first use.
func NewBucket(params Params) (*blob.Bucket, error) {
	cfg := params.Config.Storage

	bucket, err := openBucket(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			accessible, err := bucket.IsAccessible(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to check attachment bucket")
			}
			if !accessible {
				return errors.Errorf("attachment bucket %s is not accessible", describeBucket(cfg))
			}

			params.Logger.Info("Attachment bucket ready", slog.String("bucket", describeBucket(cfg)))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return bucket, nil
}

func openBucket(ctx context.Context, cfg config.StorageConfig) (*blob.Bucket, error) {
	if url := strings.TrimSpace(cfg.BucketURL); url != "" {
		bucket, err := blob.OpenBucket(ctx, url)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open bucket %s", url)
		}

		return bucket, nil
	}

	bucket, err := fileblob.OpenBucket(cfg.Root, &fileblob.Options{
		CreateDir: true,
		Metadata:  fileblob.MetadataDontWrite,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open storage root %s", cfg.Root)
	}

	return bucket, nil
}

func describeBucket(cfg config.StorageConfig) string {
	if cfg.BucketURL != "" {
		return cfg.BucketURL
	}

	return "file://" + cfg.Root
}
