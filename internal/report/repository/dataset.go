package repository

import (
	"encoding/json"
	"strconv"

	"report-srv/internal/catalog"
	"report-srv/internal/model"
)

// BuildDataset shapes computed rows into the dataset a definition promises: rows, total, and
// every declared key taken from the parameters. Keys with no parameter are set to nil so the
// JSON rendering always carries them.
func BuildDataset(def catalog.Definition, params map[string]any, rows []map[string]any) model.Dataset {
	if rows == nil {
		rows = []map[string]any{}
	}

	ds := model.Dataset{
		model.DatasetRowsKey:  rows,
		model.DatasetTotalKey: total(def.TotalColumn, rows),
	}

	for _, key := range def.Keys {
		if _, ok := ds[key]; ok {
			continue
		}
		ds[key] = params[key]
	}

	return ds
}

func total(column string, rows []map[string]any) any {
	if column == "" {
		return len(rows)
	}

	var sum float64
	for _, row := range rows {
		if f, ok := toFloat(row[column]); ok {
			sum += f
		}
	}
	return sum
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
