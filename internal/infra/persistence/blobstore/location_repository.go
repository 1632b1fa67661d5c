package blobstore

import (
	"context"
	"encoding/json"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

const contentTypeJSON = "application/json"

// locationRepository implements the domain.LocationRepository interface.
type locationRepository struct {
	bucket *blob.Bucket
	key    string
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(bucket *blob.Bucket, cfg *config.Config) repository.LocationRepository {
	return &locationRepository{
		bucket: bucket,
		key:    cfg.Storage.Key,
	}
}

// LoadLocation reads and parses the persisted record.
func (repo *locationRepository) LoadLocation(ctx context.Context) (*entity.Location, error) {
	data, err := repo.bucket.ReadAll(ctx, repo.key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrapf(err, "failed to read %s", repo.key)
	}

	var location entity.Location
	if err := json.Unmarshal(data, &location); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", repo.key)
	}

	return &location, nil
}

// SaveLocation overwrites the persisted record.
func (repo *locationRepository) SaveLocation(ctx context.Context, location entity.Location) error {
	data, err := json.Marshal(location)
	if err != nil {
		return errors.Wrap(err, "failed to serialize location")
	}

	if err := repo.bucket.WriteAll(ctx, repo.key, data, &blob.WriterOptions{ContentType: contentTypeJSON}); err != nil {
		return errors.Wrapf(err, "failed to write %s", repo.key)
	}

	return nil
}

// DeleteLocation removes the persisted record.
func (repo *locationRepository) DeleteLocation(ctx context.Context) error {
	if err := repo.bucket.Delete(ctx, repo.key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete %s", repo.key)
	}

	return nil
}
