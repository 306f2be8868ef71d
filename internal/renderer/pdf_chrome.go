package renderer

import (
	"context"
	"fmt"
	"io"
	"sync"

	"report-srv/pkg/log"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// chromeEngine prints the HTML rendering through headless Chrome.
// One browser is shared; every print opens its own page.
type chromeEngine struct {
	l          log.Logger
	bin        string
	controlURL string

	mu       sync.Mutex
	browser  *rod.Browser
	launched *launcher.Launcher
}

func newChromeEngine(l log.Logger, bin, controlURL string) *chromeEngine {
	return &chromeEngine{l: l, bin: bin, controlURL: controlURL}
}

func (e *chromeEngine) connect(ctx context.Context) (*rod.Browser, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.browser != nil {
		return e.browser, nil
	}

	u := e.controlURL
	if u == "" {
		l := launcher.New().Headless(true).Leakless(false)
		if e.bin != "" {
			l = l.Bin(e.bin)
		}
		launched, err := l.Launch()
		if err != nil {
			return nil, fmt.Errorf("launch chrome: %w", err)
		}
		e.launched = l
		u = launched
	}

	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("connect chrome: %w", err)
	}
	e.l.Infof(ctx, "renderer.chrome: connected to %s", u)
	e.browser = b
	return b, nil
}

func (e *chromeEngine) print(ctx context.Context, v view) ([]byte, error) {
	html, err := executeTemplate(v)
	if err != nil {
		return nil, err
	}

	b, err := e.connect(ctx)
	if err != nil {
		return nil, err
	}

	page, err := b.Context(ctx).Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	defer func() { _ = page.Close() }()

	if err := page.SetDocumentContent(string(html)); err != nil {
		return nil, fmt.Errorf("set content: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait load: %w", err)
	}

	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground:     true,
		DisplayHeaderFooter: false,
		PreferCSSPageSize:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("print pdf: %w", err)
	}
	return io.ReadAll(stream)
}

func (e *chromeEngine) close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	var err error
	if e.browser != nil {
		err = e.browser.Close()
		e.browser = nil
	}
	if e.launched != nil {
		e.launched.Kill()
		e.launched = nil
	}
	return err
}
