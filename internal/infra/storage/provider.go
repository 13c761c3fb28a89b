// Package storage provides the ObjectStorage implementations for todo images.
package storage

import (
	"context"
	"log/slog"

	"todo/config"
	"todo/internal/domain/constants"
	"todo/internal/domain/service"
	"todo/internal/errors"
	"todo/internal/infra/backend"
	"todo/internal/util"

	"go.uber.org/fx"
)

// StorageParams holds dependencies for ObjectStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Client *backend.Client
	Tokens service.TokenSource
	Logger *slog.Logger
}

// NewObjectStorage creates an ObjectStorage based on configuration
func NewObjectStorage(params StorageParams) (service.ObjectStorage, error) {
	cfg := params.Config.Storage
	logger := params.Logger
	if cfg != nil && cfg.MaxUploadBytes > 0 {
		logger = logger.With(slog.String("max_upload", util.FormatBytes(cfg.MaxUploadBytes)))
	}

	if cfg == nil || cfg.Driver == "" || cfg.Driver == constants.StorageDriverBackend {
		bucket := constants.DefaultImagesBucket
		if cfg != nil && cfg.Bucket != "" {
			bucket = cfg.Bucket
		}
		logger.Info("Using backend storage for images", slog.String("bucket", bucket))

		return NewBackendStorage(params.Client, params.Tokens, bucket, logger), nil
	}

	if cfg.Driver != constants.StorageDriverBlob {
		return nil, errors.Errorf("unknown storage driver: %s", cfg.Driver)
	}
	if cfg.BlobURL == "" {
		return nil, errors.New("blob URL is required for blob driver")
	}
	if cfg.PublicBaseURL == "" {
		return nil, errors.New("public base URL is required for blob driver")
	}

	logger.Info("Using blob storage for images",
		slog.String("blob_url", cfg.BlobURL),
		slog.String("public_base_url", cfg.PublicBaseURL),
	)

	storage, err := OpenBlobStorage(context.Background(), cfg.BlobURL, cfg.PublicBaseURL, logger)
	if err != nil {
		return nil, err
	}

	// Register lifecycle hook to close the bucket on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing image bucket")

			return storage.Close()
		},
	})

	return storage, nil
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewObjectStorage),
)
