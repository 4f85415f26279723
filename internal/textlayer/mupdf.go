// Package textlayer reads the text embedded in PDF pages.
//
// Two independent readers are provided so that their output can be
// compared: [MuPDF], backed by the MuPDF C library, and [GoPDF], a pure Go
// reader that also detects simple tables. Neither can see text that only
// exists as pixels in a scanned page; such pages come back empty.
package textlayer

import (
	"context"
	"fmt"

	"github.com/gen2brain/go-fitz"
	"go.uber.org/zap"

	pdfcompare "github.com/porticus-lab/pdf-compare"
)

// MuPDF extracts the text layer with MuPDF.
type MuPDF struct {
	logger *zap.Logger
}

// NewMuPDF creates a MuPDF extractor. A nil logger disables logging.
func NewMuPDF(logger *zap.Logger) *MuPDF {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MuPDF{logger: logger}
}

// Method implements pdfcompare.Extractor.
func (m *MuPDF) Method() pdfcompare.Method {
	return pdfcompare.MethodMuPDF
}

// Extract implements pdfcompare.Extractor.
func (m *MuPDF) Extract(_ context.Context, path string) *pdfcompare.ExtractionResult {
	res := pdfcompare.NewResult(pdfcompare.MethodMuPDF)

	doc, err := fitz.New(path)
	if err != nil {
		return res.Fail(err)
	}
	defer doc.Close()

	n := doc.NumPage()
	for i := 0; i < n; i++ {
		text, err := doc.Text(i)
		if err != nil {
			return res.Fail(fmt.Errorf("page %d: %w", i+1, err))
		}
		res.AddPage(text)
	}

	m.logger.Debug("text layer read", zap.String("path", path), zap.Int("pages", n))
	return res.Complete()
}
