package repository

import "errors"

var (
	ErrArchiveNotFound     = errors.New("repository: archive entry not found")
	ErrArchiveCreateFailed = errors.New("repository: failed to create archive entry")
	ErrDuplicateKey        = errors.New("repository: archive key already exists")
	ErrDatasetNotFound     = errors.New("repository: dataset not found")
	ErrComputeFailed       = errors.New("repository: failed to compute dataset")
)
