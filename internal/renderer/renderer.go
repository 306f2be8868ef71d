package renderer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"report-srv/internal/catalog"
	"report-srv/internal/model"
	"report-srv/pkg/log"
)

// Renderer keys.
const (
	KeyJSON = "json"
	KeyHTML = "html"
	KeyPDF  = "pdf"

	// DefaultKey is used when a request names no renderer.
	DefaultKey = KeyPDF
)

// Content types sent for each renderer.
const (
	ContentTypeJSON = "application/json; charset=utf-8"
	ContentTypeHTML = "text/html; charset=utf-8"
	ContentTypePDF  = "application/pdf"
)

// PDF engines.
const (
	EngineBuiltin = "builtin"
	EngineChrome  = "chrome"
)

const defaultTimeout = 10 * time.Second

var contentTypes = map[string]string{
	KeyJSON: ContentTypeJSON,
	KeyHTML: ContentTypeHTML,
	KeyPDF:  ContentTypePDF,
}

// IsValidKey reports whether key names a renderer.
func IsValidKey(key string) bool {
	_, ok := contentTypes[key]
	return ok
}

// Keys lists the renderer keys.
func Keys() []string {
	return []string{KeyJSON, KeyHTML, KeyPDF}
}

// Input is everything a renderer needs to produce an artifact.
type Input struct {
	ReportID    string
	Title       string
	Columns     []catalog.Column
	Parameters  map[string]any
	Data        model.Dataset
	Lang        string
	GeneratedAt time.Time
}

//go:generate mockery --name Renderer
type Renderer interface {
	// Render produces the artifact for key. It returns ErrRenderTimeout when the render
	// outlives the configured timeout; the render goroutine is left to finish on its own.
	Render(ctx context.Context, key string, in Input) (model.Artifact, error)
	Close() error
}

// Config configures the renderer adapter.
type Config struct {
	Timeout          time.Duration
	PDFEngine        string
	ChromeBin        string
	ChromeControlURL string
}

type renderFunc func(ctx context.Context, in Input) ([]byte, error)

type implRenderer struct {
	l         log.Logger
	timeout   time.Duration
	pdf       pdfEngine
	renderers map[string]renderFunc
}

// New builds the renderer adapter.
func New(l log.Logger, cfg Config) (Renderer, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	var engine pdfEngine
	switch cfg.PDFEngine {
	case "", EngineBuiltin:
		engine = newBuiltinEngine()
	case EngineChrome:
		engine = newChromeEngine(l, cfg.ChromeBin, cfg.ChromeControlURL)
	default:
		return nil, fmt.Errorf("renderer: unknown pdf engine %q", cfg.PDFEngine)
	}

	r := &implRenderer{
		l:       l,
		timeout: cfg.Timeout,
		pdf:     engine,
	}
	r.renderers = map[string]renderFunc{
		KeyJSON: renderJSON,
		KeyHTML: renderHTML,
		KeyPDF:  r.renderPDF,
	}
	return r, nil
}

type renderResult struct {
	payload []byte
	err     error
}

func (r *implRenderer) Render(ctx context.Context, key string, in Input) (model.Artifact, error) {
	render, ok := r.renderers[key]
	if !ok {
		return model.Artifact{}, ErrInvalidRenderer
	}
	if in.GeneratedAt.IsZero() {
		in.GeneratedAt = time.Now()
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	done := make(chan renderResult, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- renderResult{err: fmt.Errorf("panic: %v", p)}
			}
		}()
		payload, err := render(ctx, in)
		done <- renderResult{payload: payload, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			r.l.Errorf(ctx, "renderer.Render: %s render of %s failed: %v", key, in.ReportID, res.err)
			return model.Artifact{}, fmt.Errorf("%w: %v", ErrRenderFailed, res.err)
		}
		return model.Artifact{
			ContentType: contentTypes[key],
			FileName:    fileName(in, key),
			Payload:     res.payload,
		}, nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			r.l.Warnf(ctx, "renderer.Render: %s render of %s exceeded %s", key, in.ReportID, r.timeout)
			return model.Artifact{}, ErrRenderTimeout
		}
		return model.Artifact{}, ctx.Err()
	}
}

func (r *implRenderer) Close() error {
	return r.pdf.close()
}

func (r *implRenderer) renderPDF(ctx context.Context, in Input) ([]byte, error) {
	return r.pdf.print(ctx, buildView(in))
}
