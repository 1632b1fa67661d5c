// Package blobstore persists client state as JSON objects in a gocloud.dev blob bucket.
package blobstore

import (
	"context"
	"log/slog"

	"storefront/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
)

const defaultBucketURL = "mem://"

// BucketParams holds dependencies for the bucket, injected by Fx
type BucketParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBucket opens the configured bucket and closes it on shutdown.
func NewBucket(params BucketParams) (*blob.Bucket, error) {
	bucketURL := params.Config.Storage.BucketURL
	if bucketURL == "" {
		params.Logger.Warn("Storage bucket not configured, location will not survive restarts",
			slog.String("bucket_url", defaultBucketURL),
		)
		bucketURL = defaultBucketURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Logger.Info("Location storage bucket opened", slog.String("bucket_url", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing location storage bucket")

			return errors.WithStack(bucket.Close())
		},
	})

	return bucket, nil
}
