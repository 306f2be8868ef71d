package usecase

import (
	"fmt"
	"strings"

	"report-srv/internal/catalog"
	"report-srv/internal/renderer"
	"report-srv/internal/report"
	"report-srv/pkg/util"
)

const (
	paramRenderer = "renderer"
	paramLang     = "lang"
	paramDateFrom = "dateFrom"
	paramDateTo   = "dateTo"
)

// parseRenderer resolves the renderer key. nil means the caller named none.
func parseRenderer(key *string) (string, error) {
	if key == nil {
		return renderer.DefaultKey, nil
	}
	if !renderer.IsValidKey(*key) {
		return "", fmt.Errorf("%w: %q", report.ErrInvalidRenderer, *key)
	}
	return *key, nil
}

// sanitizeParameters cleans raw request parameters against a definition. It returns a new
// map, the lang lifted from the parameters, and leaves raw untouched.
func sanitizeParameters(def catalog.Definition, raw map[string]any) (map[string]any, string, error) {
	params := make(map[string]any, len(raw))
	lang := ""

	for name, value := range raw {
		if strings.HasPrefix(name, "$") || isEmpty(value) {
			continue
		}

		switch name {
		case paramRenderer:
			continue
		case paramLang:
			lang = fmt.Sprint(value)
			continue
		}

		if def.IsDateParam(name) || catalog.IsDateName(name) {
			date, err := normalizeDate(value)
			if err != nil {
				return nil, "", fmt.Errorf("%w: %s: %v", report.ErrInvalidParameter, name, err)
			}
			value = date
		}

		params[name] = value
	}

	if from, ok := params[paramDateFrom].(string); ok {
		if to, ok := params[paramDateTo].(string); ok && from > to {
			return nil, "", fmt.Errorf("%w: %s > %s", report.ErrBadDateInterval, from, to)
		}
	}

	for _, name := range def.RequiredParams {
		if _, ok := params[name]; !ok {
			return nil, "", fmt.Errorf("%w: %s", report.ErrMissingParameter, name)
		}
	}

	return params, lang, nil
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	}
	return false
}

// normalizeDate re-emits a date as YYYY-MM-DD.
func normalizeDate(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected a date string, got %T", v)
	}
	t, err := util.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return "", err
	}
	return util.DateToStr(t), nil
}
