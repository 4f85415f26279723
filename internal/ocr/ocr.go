// Package ocr recovers text from PDF pages that only exist as images.
//
// Pages are first rasterized, then each image is passed to an OCR engine.
// Both steps depend on software outside this module, so both are injected:
// a [Rasterizer] (MuPDF or poppler's pdftoppm) and an [Engine] (Tesseract).
// When either is missing the extractor reports which one, instead of
// failing in a way the user cannot act on.
package ocr

import (
	"context"
	"errors"
	"fmt"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	pdfcompare "github.com/porticus-lab/pdf-compare"
)

// Errors reported on failed OCR results. Use errors.Is on
// ExtractionResult.Err to tell them apart.
var (
	ErrEngineNotInstalled     = errors.New("OCR engine not installed (install Tesseract and build with -tags tesseract)")
	ErrRasterizerNotInstalled = errors.New("rasterizer not installed (install poppler's pdftoppm or use the mupdf rasterizer)")
	ErrRasterize              = errors.New("PDF to image conversion failed")
	ErrRecognize              = errors.New("text recognition failed")
)

// Note is attached to every OCR result.
const Note = "OCR needs Tesseract OCR and a PDF rasterizer (MuPDF or poppler) installed."

// Default settings: Korean, English and Russian models, with the page
// treated as a single uniform block of text.
var DefaultLanguages = []string{"kor", "eng", "rus"}

const (
	DefaultPageSegMode = 6
	DefaultDPI         = 300
)

// Rasterizer renders every page of a PDF file to a PNG image.
type Rasterizer interface {
	Name() string
	Rasterize(ctx context.Context, path string, dpi int) ([][]byte, error)
}

// Engine recognizes the text in a PNG image.
type Engine interface {
	Recognize(ctx context.Context, png []byte) (string, error)
	Close() error
}

// Extractor runs OCR over every page of a PDF file.
type Extractor struct {
	rasterizer Rasterizer
	engine     Engine
	dpi        int
	logger     *zap.Logger
}

// NewExtractor creates an OCR extractor. A nil rasterizer or engine is
// allowed and reported on every result as not installed. A dpi of zero
// or less selects DefaultDPI.
func NewExtractor(r Rasterizer, e Engine, dpi int, logger *zap.Logger) *Extractor {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{rasterizer: r, engine: e, dpi: dpi, logger: logger}
}

// Method implements pdfcompare.Extractor.
func (x *Extractor) Method() pdfcompare.Method {
	return pdfcompare.MethodOCR
}

// Extract implements pdfcompare.Extractor.
func (x *Extractor) Extract(ctx context.Context, path string) *pdfcompare.ExtractionResult {
	res := pdfcompare.NewResult(pdfcompare.MethodOCR)
	res.Note = Note

	if x.engine == nil {
		return res.Fail(ErrEngineNotInstalled)
	}
	if x.rasterizer == nil {
		return res.Fail(ErrRasterizerNotInstalled)
	}

	images, err := x.rasterizer.Rasterize(ctx, path, x.dpi)
	if err != nil {
		if errors.Is(err, ErrRasterizerNotInstalled) {
			return res.Fail(err)
		}
		return res.Fail(eris.Wrapf(joinErr(ErrRasterize, err), "%s", x.rasterizer.Name()))
	}

	for i, img := range images {
		text, err := x.engine.Recognize(ctx, img)
		if err != nil {
			return res.Fail(eris.Wrapf(joinErr(ErrRecognize, err), "page %d", i+1))
		}
		res.AddPage(text)
	}

	x.logger.Debug("ocr finished",
		zap.String("path", path),
		zap.String("rasterizer", x.rasterizer.Name()),
		zap.Int("pages", len(images)))
	return res.Complete()
}

// joinErr keeps both the category sentinel and the underlying cause
// reachable through errors.Is.
func joinErr(kind, cause error) error {
	return fmt.Errorf("%w: %w", kind, cause)
}
