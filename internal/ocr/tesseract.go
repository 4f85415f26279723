//go:build tesseract

package ocr

import (
	"context"
	"sync"

	"github.com/otiai10/gosseract/v2"
	"github.com/rotisserie/eris"
)

// Tesseract recognizes text with libtesseract through gosseract.
type Tesseract struct {
	mu     sync.Mutex
	client *gosseract.Client
}

// NewTesseract creates a Tesseract engine configured with cfg.
func NewTesseract(cfg TesseractConfig) (Engine, error) {
	cfg = cfg.withDefaults()

	client := gosseract.NewClient()
	if cfg.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(cfg.TessdataPrefix); err != nil {
			client.Close()
			return nil, eris.Wrap(err, "setting tessdata prefix")
		}
	}
	if err := client.SetLanguage(cfg.Languages...); err != nil {
		client.Close()
		return nil, eris.Wrap(err, "setting languages")
	}
	if err := client.SetPageSegMode(gosseract.PageSegMode(cfg.PageSegMode)); err != nil {
		client.Close()
		return nil, eris.Wrap(err, "setting page segmentation mode")
	}
	return &Tesseract{client: client}, nil
}

// Recognize implements Engine.
func (t *Tesseract) Recognize(_ context.Context, png []byte) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.client.SetImageFromBytes(png); err != nil {
		return "", eris.Wrap(err, "loading image")
	}
	text, err := t.client.Text()
	if err != nil {
		return "", eris.Wrap(err, "tesseract")
	}
	return text, nil
}

// Close implements Engine.
func (t *Tesseract) Close() error {
	return t.client.Close()
}
