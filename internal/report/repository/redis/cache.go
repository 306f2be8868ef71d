package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"report-srv/internal/model"
	"report-srv/internal/report/repository"
	pkgRedis "report-srv/pkg/redis"
)

// GetArtifact - Load a cached artifact. A miss is not an error.
func (r *implRepository) GetArtifact(ctx context.Context, hash string) (*model.Artifact, error) {
	data, err := r.client.Get(ctx, artifactKey(hash))
	if errors.Is(err, pkgRedis.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		r.l.Warnf(ctx, "report.repository.redis.GetArtifact: Failed to get artifact: %v", err)
		return nil, err
	}

	var artifact model.Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		r.l.Warnf(ctx, "report.repository.redis.GetArtifact: Failed to decode artifact: %v", err)
		return nil, err
	}

	return &artifact, nil
}

// SaveArtifact - Cache an artifact for ttl.
func (r *implRepository) SaveArtifact(ctx context.Context, hash string, artifact model.Artifact, ttl time.Duration) error {
	data, err := json.Marshal(artifact)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, artifactKey(hash), data, ttl); err != nil {
		r.l.Warnf(ctx, "report.repository.redis.SaveArtifact: Failed to set artifact: %v", err)
		return err
	}

	return nil
}

// GetLastParameters - Load the parameters a user last ran a report with.
func (r *implRepository) GetLastParameters(ctx context.Context, userID, reportID string) (map[string]any, error) {
	data, err := r.client.Get(ctx, lastParamsKey(userID, reportID))
	if errors.Is(err, pkgRedis.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		r.l.Warnf(ctx, "report.repository.redis.GetLastParameters: Failed to get parameters: %v", err)
		return nil, err
	}

	params := map[string]any{}
	if err := json.Unmarshal(data, &params); err != nil {
		return nil, err
	}

	return params, nil
}

// SaveLastParameters - Record the parameters a user last ran a report with.
func (r *implRepository) SaveLastParameters(ctx context.Context, opts repository.SaveLastParametersOptions) error {
	data, err := json.Marshal(opts.Parameters)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, lastParamsKey(opts.UserID, opts.ReportID), data, opts.TTL)
}

func artifactKey(hash string) string {
	return artifactKeyPrefix + hash
}

func lastParamsKey(userID, reportID string) string {
	return lastParamsKeyPrefix + userID + ":" + reportID
}
