package minio

import (
	"context"
	"fmt"
	"sync"

	"report-srv/config"
	"report-srv/pkg/minio"
)

var (
	instance minio.MinIO
	mu       sync.Mutex
)

// Connect creates the shared snapshot storage client and makes sure the snapshot bucket exists.
func Connect(ctx context.Context, cfg *config.MinIOConfig) (minio.MinIO, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	client, err := minio.NewMinIO(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}
	if err := client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to MinIO: %w", err)
	}
	if err := client.EnsureBucket(ctx, cfg.Bucket); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ensure bucket %s: %w", cfg.Bucket, err)
	}

	instance = client
	return instance, nil
}

// Disconnect closes the shared client.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	err := instance.Close()
	instance = nil
	return err
}
