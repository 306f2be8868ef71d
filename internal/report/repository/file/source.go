// Package file computes datasets from JSON files, one file per report.
package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"report-srv/internal/model"
	"report-srv/internal/report/repository"
)

type implRepository struct {
	dir string
}

// New returns a source reading <dir>/<report id>.json. A file holds either an array of rows
// or an object with a "rows" array.
func New(dir string) repository.SourceRepository {
	return &implRepository{dir: dir}
}

func (r *implRepository) Compute(ctx context.Context, opts repository.ComputeOptions) (model.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(r.dir, opts.Definition.ID+".json")
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", repository.ErrDatasetNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrComputeFailed, err)
	}

	rows, err := decodeRows(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", repository.ErrComputeFailed, path, err)
	}

	return repository.BuildDataset(opts.Definition, opts.Parameters, rows), nil
}

func decodeRows(data []byte) ([]map[string]any, error) {
	trimmed := bytes.TrimSpace(data)

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var rows []map[string]any
		if err := newDecoder(trimmed).Decode(&rows); err != nil {
			return nil, err
		}
		return rows, nil
	}

	var doc struct {
		Rows []map[string]any `json:"rows"`
	}
	if err := newDecoder(trimmed).Decode(&doc); err != nil {
		return nil, err
	}
	return doc.Rows, nil
}

func newDecoder(data []byte) *json.Decoder {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec
}
