package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"report-srv/internal/catalog"
	"report-srv/internal/model"
	"report-srv/internal/renderer"
	"report-srv/internal/report"
	"report-srv/internal/report/repository"
)

var errInvalidTransition = errors.New("invalid dispatch transition")

// transitions lists the states reachable from each state.
var transitions = map[report.DispatchState][]report.DispatchState{
	report.StateConfiguring:   {report.StatePreviewing, report.StateSaving},
	report.StatePreviewing:    {report.StatePreviewReady, report.StatePreviewFailed},
	report.StatePreviewReady:  {report.StateConfiguring, report.StateSaving},
	report.StatePreviewFailed: {report.StateConfiguring},
	report.StateSaving:        {report.StateSaved, report.StateSaveFailed},
	report.StateSaveFailed:    {report.StateConfiguring},
}

// dispatch tracks one preview or save flow.
type dispatch struct {
	state report.DispatchState
}

func newDispatch() *dispatch {
	return &dispatch{state: report.StateConfiguring}
}

func (d *dispatch) to(next report.DispatchState) error {
	for _, s := range transitions[d.state] {
		if s == next {
			d.state = next
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", errInvalidTransition, d.state, next)
}

// settle moves an in-flight flow to its terminal state.
func (d *dispatch) settle(err error) report.DispatchState {
	var next report.DispatchState
	switch d.state {
	case report.StatePreviewing:
		next = report.StatePreviewReady
		if err != nil {
			next = report.StatePreviewFailed
		}
	case report.StateSaving:
		next = report.StateSaved
		if err != nil {
			next = report.StateSaveFailed
		}
	default:
		return d.state
	}
	d.state = next
	return next
}

// Preview - Render a report as inline HTML. The artifact cache is bypassed.
func (uc *implUseCase) Preview(ctx context.Context, sc model.Scope, input report.PreviewInput) (report.PreviewOutput, error) {
	d := newDispatch()
	if err := d.to(report.StatePreviewing); err != nil {
		return report.PreviewOutput{State: d.state}, err
	}

	params, out, err := uc.preview(ctx, input)
	state := d.settle(err)
	if err != nil {
		uc.l.Warnf(ctx, "report.usecase.Preview: Failed to preview %s: %v", input.ReportID, err)
		return report.PreviewOutput{State: state}, err
	}

	uc.rememberParameters(ctx, sc, input.ReportID, params)

	return report.PreviewOutput{
		State:       state,
		ContentType: out.ContentType,
		HTML:        out.Payload,
	}, nil
}

// preview runs the Previewing step: sanitize, compute, render html.
func (uc *implUseCase) preview(ctx context.Context, input report.PreviewInput) (map[string]any, report.RenderOutput, error) {
	def, ok := uc.catalog.Get(input.ReportID)
	if !ok {
		return nil, report.RenderOutput{}, report.ErrReportNotFound
	}

	params, lang, err := sanitizeParameters(def, input.Parameters)
	if err != nil {
		return nil, report.RenderOutput{}, err
	}

	out, err := uc.render(ctx, renderRequest{
		def:    def,
		key:    renderer.KeyHTML,
		params: params,
		lang:   pickLang(lang, input.Lang),
	})
	if err != nil {
		return nil, report.RenderOutput{}, err
	}
	return params, out, nil
}

// SaveAs - Store the sanitized parameters of a report as a new archive entry
func (uc *implUseCase) SaveAs(ctx context.Context, sc model.Scope, input report.SaveInput) (report.SaveOutput, error) {
	d := newDispatch()
	if err := d.to(report.StateSaving); err != nil {
		return report.SaveOutput{State: d.state}, err
	}

	entry, params, err := uc.save(ctx, sc, input)
	state := d.settle(err)
	if err != nil {
		return report.SaveOutput{State: state}, err
	}

	uc.publishArchived(ctx, entry)
	uc.rememberParameters(ctx, sc, entry.ReportID, params)

	return report.SaveOutput{
		State:      state,
		ReportKey:  entry.ReportID,
		ArchiveKey: entry.Key,
	}, nil
}

// save runs the Saving step: sanitize, then append to the archive.
func (uc *implUseCase) save(ctx context.Context, sc model.Scope, input report.SaveInput) (*model.ArchiveEntry, map[string]any, error) {
	key, err := parseRenderer(input.Renderer)
	if err != nil {
		return nil, nil, err
	}

	def, ok := uc.catalog.Get(input.ReportID)
	if !ok {
		return nil, nil, report.ErrReportNotFound
	}

	params, _, err := sanitizeParameters(def, input.Parameters)
	if err != nil {
		return nil, nil, err
	}

	entry, err := uc.createArchive(ctx, sc, def, input, key, params)
	if err != nil {
		return nil, nil, err
	}
	return entry, params, nil
}

func (uc *implUseCase) createArchive(ctx context.Context, sc model.Scope, def catalog.Definition, input report.SaveInput, key string, params map[string]any) (*model.ArchiveEntry, error) {
	data, err := json.Marshal(params)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.SaveAs: Failed to marshal parameters: %v", err)
		return nil, fmt.Errorf("%w: %v", report.ErrSaveFailed, err)
	}

	url := input.URL
	if url == "" {
		url = def.URL
	}
	label := input.Label
	if label == "" {
		label = def.Title
	}

	entry, err := uc.archive.CreateArchive(ctx, repository.CreateArchiveOptions{
		Key:        uc.newKey(),
		ReportID:   def.ID,
		Label:      label,
		URL:        url,
		Renderer:   key,
		Parameters: data,
		CreatedBy:  sc.UserID,
		CreatedAt:  uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.SaveAs: Failed to create archive entry: %v", err)
		return nil, fmt.Errorf("%w: %v", report.ErrSaveFailed, err)
	}

	return entry, nil
}

func (uc *implUseCase) publishArchived(ctx context.Context, entry *model.ArchiveEntry) {
	if uc.publisher == nil {
		return
	}
	err := uc.publisher.PublishArchived(ctx, report.ArchivedEvent{
		Key:       entry.Key,
		ReportID:  entry.ReportID,
		CreatedAt: entry.CreatedAt,
	})
	if err != nil {
		uc.l.Warnf(ctx, "report.usecase.SaveAs: Failed to publish archived event for %s: %v", entry.Key, err)
	}
}

// rememberParameters records the caller's last used parameters. Failures are ignored.
func (uc *implUseCase) rememberParameters(ctx context.Context, sc model.Scope, reportID string, params map[string]any) {
	if uc.cache == nil || sc.UserID == "" || sc.UserID == model.AnonymousUserID {
		return
	}
	err := uc.cache.SaveLastParameters(ctx, repository.SaveLastParametersOptions{
		UserID:     sc.UserID,
		ReportID:   reportID,
		Parameters: params,
		TTL:        uc.config.LastParamsTTL,
	})
	if err != nil {
		uc.l.Debugf(ctx, "report.usecase.rememberParameters: Failed to save parameters: %v", err)
	}
}
