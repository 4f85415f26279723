// Package sample renders sample PDFs with headless Chrome: documents with
// a real text layer and "scanned" documents whose pages are only images.
// They make a reproducible input set for the comparison.
package sample

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ErrClosed is returned when a closed [Renderer] is used.
var ErrClosed = errors.New("sample: renderer is closed")

// Renderer owns one headless browser reused across renders. It is safe for
// concurrent use. Call [Renderer.Close] to stop the browser.
type Renderer struct {
	cfg           rendererConfig
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc

	mu     sync.Mutex
	closed bool
}

// NewRenderer starts the browser and returns a Renderer.
func NewRenderer(opts ...Option) (*Renderer, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.chromePath == "" && cfg.autoDownload {
		path, err := downloadBrowser()
		if err != nil {
			return nil, err
		}
		cfg.chromePath = path
	}

	allocOpts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("headless", cfg.headless),
	)
	if cfg.chromePath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(cfg.chromePath))
	}
	if cfg.noSandbox {
		allocOpts = append(allocOpts, chromedp.Flag("no-sandbox", true))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Start eagerly so a missing browser fails here and not on first render.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("sample: starting browser: %w", err)
	}

	return &Renderer{
		cfg:           cfg,
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
	}, nil
}

// Close stops the browser. It is idempotent.
func (r *Renderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true
	r.browserCancel()
	r.allocCancel()
	return nil
}

// RenderHTML prints an HTML document to PDF.
func (r *Renderer) RenderHTML(ctx context.Context, html string) ([]byte, error) {
	if err := r.checkClosed(); err != nil {
		return nil, err
	}
	return r.print(ctx, html, 0.4)
}

// RenderText prints one letter page per element of pages. The result has
// a text layer.
func (r *Renderer) RenderText(ctx context.Context, pages []string) ([]byte, error) {
	if err := r.checkClosed(); err != nil {
		return nil, err
	}
	doc, err := textHTML(pages)
	if err != nil {
		return nil, fmt.Errorf("sample: building document: %w", err)
	}
	return r.print(ctx, doc, 0)
}

// RenderScanned lays out pages like [Renderer.RenderText], photographs
// each page and prints the photographs. The result has no text layer, so
// only OCR can read it.
func (r *Renderer) RenderScanned(ctx context.Context, pages []string) ([]byte, error) {
	if err := r.checkClosed(); err != nil {
		return nil, err
	}

	shots := make([][]byte, 0, len(pages))
	for i, p := range pages {
		doc, err := textHTML([]string{p})
		if err != nil {
			return nil, fmt.Errorf("sample: building page %d: %w", i+1, err)
		}
		png, err := r.screenshot(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("sample: page %d: %w", i+1, err)
		}
		shots = append(shots, png)
	}

	doc, err := scannedHTML(shots)
	if err != nil {
		return nil, fmt.Errorf("sample: building document: %w", err)
	}
	return r.print(ctx, doc, 0)
}

// withTab runs actions against html in a fresh tab. html is served from a
// temporary file because data URLs are size-limited.
func (r *Renderer) withTab(ctx context.Context, html string, actions ...chromedp.Action) error {
	f, err := os.CreateTemp("", "pdfsample-*.html")
	if err != nil {
		return fmt.Errorf("sample: creating temp file: %w", err)
	}
	name := f.Name()
	defer os.Remove(name)

	if _, err := f.WriteString(html); err != nil {
		f.Close()
		return fmt.Errorf("sample: writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("sample: closing temp file: %w", err)
	}
	abs, err := filepath.Abs(name)
	if err != nil {
		return fmt.Errorf("sample: resolving path: %w", err)
	}

	if r.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.timeout)
		defer cancel()
	}

	tabCtx, tabCancel := chromedp.NewContext(r.browserCtx)
	defer tabCancel()

	// Tie the tab to the caller's context as well as the browser.
	stop := context.AfterFunc(ctx, tabCancel)
	defer stop()

	all := append([]chromedp.Action{
		chromedp.Navigate("file://" + abs),
		chromedp.WaitReady("body", chromedp.ByQuery),
	}, actions...)
	if err := chromedp.Run(tabCtx, all...); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}

func (r *Renderer) print(ctx context.Context, html string, marginIn float64) ([]byte, error) {
	var buf []byte
	err := r.withTab(ctx, html, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		buf, _, err = page.PrintToPDF().
			WithPaperWidth(paperWidthIn).
			WithPaperHeight(paperHeightIn).
			WithMarginTop(marginIn).
			WithMarginRight(marginIn).
			WithMarginBottom(marginIn).
			WithMarginLeft(marginIn).
			WithPrintBackground(true).
			WithPreferCSSPageSize(true).
			Do(ctx)
		return err
	}))
	if err != nil {
		return nil, fmt.Errorf("sample: printing failed: %w", err)
	}
	return buf, nil
}

func (r *Renderer) screenshot(ctx context.Context, html string) ([]byte, error) {
	var buf []byte
	err := r.withTab(ctx, html,
		chromedp.EmulateViewport(viewportW, viewportH),
		chromedp.FullScreenshot(&buf, 100),
	)
	if err != nil {
		return nil, fmt.Errorf("screenshot failed: %w", err)
	}
	return buf, nil
}

func (r *Renderer) checkClosed() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	return nil
}
