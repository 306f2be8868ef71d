package postgre

import (
	"context"
	"fmt"

	"report-srv/internal/model"
	"report-srv/internal/report/repository"
)

// Compute - Run the definition's query and shape the result into a dataset.
func (r *implRepository) Compute(ctx context.Context, opts repository.ComputeOptions) (model.Dataset, error) {
	def := opts.Definition

	args := make([]any, 0, len(def.QueryParams))
	for _, name := range def.QueryParams {
		args = append(args, opts.Parameters[name])
	}

	rows, err := r.db.QueryContext(ctx, def.Query, args...)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.Compute: Failed to query %s: %v", def.ID, err)
		return nil, fmt.Errorf("%w: %v", repository.ErrComputeFailed, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.Compute: Failed to read columns of %s: %v", def.ID, err)
		return nil, fmt.Errorf("%w: %v", repository.ErrComputeFailed, err)
	}

	records := make([]map[string]any, 0)
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			r.l.Errorf(ctx, "report.repository.postgre.Compute: Failed to scan row of %s: %v", def.ID, err)
			return nil, fmt.Errorf("%w: %v", repository.ErrComputeFailed, err)
		}

		record := make(map[string]any, len(cols))
		for i, col := range cols {
			record[col] = normalizeValue(values[i])
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.Compute: Failed to iterate rows of %s: %v", def.ID, err)
		return nil, fmt.Errorf("%w: %v", repository.ErrComputeFailed, err)
	}

	return repository.BuildDataset(def, opts.Parameters, records), nil
}

// normalizeValue turns driver values into values the renderers understand.
func normalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
