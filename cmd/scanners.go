package cmd

import (
	"context"
	"fmt"

	"photo-manager/core/config"
	"photo-manager/core/database"
	"photo-manager/core/reconcile"
	"photo-manager/core/server"
	"photo-manager/core/storage"
	"photo-manager/core/utils"
	"photo-manager/feature/gphotos"
	"photo-manager/feature/history"
	"photo-manager/feature/local"
	"photo-manager/feature/s3"

	"go.uber.org/zap"
)

// buildLocalScanner wires the filesystem scanner from configuration.
func buildLocalScanner(cfg *config.Config, logg *zap.Logger) (*local.Scanner, error) {
	root, err := utils.ExpandHome(cfg.Local.Root)
	if err != nil {
		return nil, err
	}
	return local.NewScanner(root, logg), nil
}

// buildRemoteScanner wires the requested remote side: the Google Photos API
// behind the cached OAuth token, or the S3 bucket mirror.
func buildRemoteScanner(ctx context.Context, remote string, cfg *config.Config, logg *zap.Logger) (reconcile.Scanner, error) {
	switch remote {
	case server.RemoteGoogle:
		authn, err := gphotos.NewAuthenticator(cfg.Google, logg)
		if err != nil {
			return nil, err
		}
		httpClient, err := authn.HTTPClient(ctx)
		if err != nil {
			return nil, err
		}
		return gphotos.NewScanner(gphotos.NewClient(httpClient, cfg.Google, logg)), nil
	case server.RemoteS3:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, err
		}
		return s3.NewScanner(client, cfg.Storage.Bucket, cfg.Storage.Prefix, logg), nil
	default:
		return nil, fmt.Errorf("unknown remote %q, use %q or %q", remote, server.RemoteGoogle, server.RemoteS3)
	}
}

// connectHistory opens the run store for one-shot commands. History is
// best-effort there: any failure downgrades to a warning and the comparison
// proceeds without persistence.
func connectHistory(cfg *config.Config, logg *zap.Logger) *history.Store {
	if !cfg.History.Enabled {
		return nil
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logg.Warn("Run history unavailable", zap.Error(err))
		return nil
	}

	store := history.NewStore(db, logg)
	if err := store.Migrate(); err != nil {
		logg.Warn("Run history unavailable", zap.Error(err))
		return nil
	}
	return store
}
