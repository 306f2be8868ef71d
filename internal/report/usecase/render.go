package usecase

import (
	"context"
	"fmt"

	"report-srv/internal/catalog"
	"report-srv/internal/model"
	"report-srv/internal/renderer"
	"report-srv/internal/report"
	"report-srv/internal/report/repository"
	"report-srv/pkg/locale"
)

type renderRequest struct {
	def      catalog.Definition
	key      string
	params   map[string]any
	lang     string
	useCache bool
}

// ListDefinitions - List the report catalog
func (uc *implUseCase) ListDefinitions(ctx context.Context, sc model.Scope) ([]report.DefinitionOutput, error) {
	defs := uc.catalog.List()

	out := make([]report.DefinitionOutput, 0, len(defs))
	for _, def := range defs {
		out = append(out, toDefinitionOutput(def))
	}
	return out, nil
}

// Render - Render a report with the requested renderer
func (uc *implUseCase) Render(ctx context.Context, sc model.Scope, input report.RenderInput) (report.RenderOutput, error) {
	key, err := parseRenderer(input.Renderer)
	if err != nil {
		return report.RenderOutput{}, err
	}

	def, ok := uc.catalog.Get(input.ReportID)
	if !ok {
		return report.RenderOutput{}, report.ErrReportNotFound
	}

	params, lang, err := sanitizeParameters(def, input.Parameters)
	if err != nil {
		return report.RenderOutput{}, err
	}

	return uc.render(ctx, renderRequest{
		def:      def,
		key:      key,
		params:   params,
		lang:     pickLang(lang, input.Lang),
		useCache: true,
	})
}

// LastParameters - Get the parameters the caller last previewed or saved a report with
func (uc *implUseCase) LastParameters(ctx context.Context, sc model.Scope, input report.LastParametersInput) (report.LastParametersOutput, error) {
	if _, ok := uc.catalog.Get(input.ReportID); !ok {
		return report.LastParametersOutput{}, report.ErrReportNotFound
	}

	out := report.LastParametersOutput{ReportID: input.ReportID, Parameters: map[string]any{}}
	if uc.cache == nil {
		return out, nil
	}

	params, err := uc.cache.GetLastParameters(ctx, sc.UserID, input.ReportID)
	if err != nil {
		uc.l.Warnf(ctx, "report.usecase.LastParameters: Failed to load parameters: %v", err)
		return out, nil
	}
	if params != nil {
		out.Parameters = params
	}
	return out, nil
}

// render serves a rendering from the cache when allowed, otherwise produces it once for all
// concurrent identical requests. The shared work is bounded by the renderer timeout, not by
// the context of whichever caller started it.
func (uc *implUseCase) render(ctx context.Context, req renderRequest) (report.RenderOutput, error) {
	cacheable := req.useCache && uc.cache != nil && uc.config.CacheTTL > 0
	hash := requestHash(req.def.ID, req.key, req.lang, req.params)

	if cacheable {
		artifact, err := uc.cache.GetArtifact(ctx, hash)
		if err != nil {
			uc.l.Warnf(ctx, "report.usecase.render: Failed to read cache: %v", err)
		}
		if artifact != nil {
			return toRenderOutput(*artifact, true), nil
		}
	}

	v, err, _ := uc.group.Do(hash, func() (any, error) {
		// The flight is shared with other callers; one of them going away must not cancel it.
		sharedCtx := context.WithoutCancel(ctx)

		artifact, err := uc.produce(sharedCtx, req)
		if err != nil {
			return nil, err
		}

		if cacheable {
			if err := uc.cache.SaveArtifact(sharedCtx, hash, artifact, uc.config.CacheTTL); err != nil {
				uc.l.Warnf(sharedCtx, "report.usecase.render: Failed to write cache: %v", err)
			}
		}
		return artifact, nil
	})
	if err != nil {
		return report.RenderOutput{}, err
	}

	return toRenderOutput(v.(model.Artifact), false), nil
}

// produce computes the dataset and renders it.
func (uc *implUseCase) produce(ctx context.Context, req renderRequest) (model.Artifact, error) {
	data, err := uc.source.Compute(ctx, repository.ComputeOptions{
		Definition: req.def,
		Parameters: req.params,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.produce: Failed to compute %s: %v", req.def.ID, err)
		return model.Artifact{}, fmt.Errorf("%w: %v", report.ErrComputeFailed, err)
	}

	artifact, err := uc.renderer.Render(ctx, req.key, renderer.Input{
		ReportID:    req.def.ID,
		Title:       req.def.Title,
		Columns:     req.def.Columns,
		Parameters:  req.params,
		Data:        data,
		Lang:        req.lang,
		GeneratedAt: uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.produce: Failed to render %s as %s: %v", req.def.ID, req.key, err)
		return model.Artifact{}, mapRenderError(err)
	}

	return artifact, nil
}

// pickLang prefers a lang given as a report parameter over the request locale.
func pickLang(param, requested string) string {
	if param != "" {
		return locale.ParseLang(param)
	}
	if requested != "" {
		return requested
	}
	return locale.DefaultLang
}
