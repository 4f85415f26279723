//go:build tesseract

package ocr

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/porticus-lab/pdf-compare/internal/pdftest"
)

func TestTesseract_EndToEnd(t *testing.T) {
	engine, err := NewTesseract(TesseractConfig{Languages: []string{"eng"}})
	require.NoError(t, err)
	t.Cleanup(func() { engine.Close() })

	path := pdftest.WriteFile(t, t.TempDir(), "text.pdf", pdftest.TextPage("HELLO OCR WORLD"))

	res := NewExtractor(NewMuPDFRasterizer(), engine, 200, nil).Extract(context.Background(), path)
	require.True(t, res.Succeeded, res.Error)
	assert.Contains(t, res.Text, "HELLO")
}
