package textlayer

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	pdfcompare "github.com/porticus-lab/pdf-compare"
)

// GoPDF extracts the text layer with the pure Go ledongthuc/pdf reader and
// collects tables found on each page. Tables are reported separately and
// never merged into the page text.
type GoPDF struct {
	logger *zap.Logger
}

// NewGoPDF creates a GoPDF extractor. A nil logger disables logging.
func NewGoPDF(logger *zap.Logger) *GoPDF {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GoPDF{logger: logger}
}

// Method implements pdfcompare.Extractor.
func (g *GoPDF) Method() pdfcompare.Method {
	return pdfcompare.MethodGoPDF
}

// Extract implements pdfcompare.Extractor.
func (g *GoPDF) Extract(_ context.Context, path string) (res *pdfcompare.ExtractionResult) {
	res = pdfcompare.NewResult(pdfcompare.MethodGoPDF)

	f, err := os.Open(path)
	if err != nil {
		return res.Fail(err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return res.Fail(err)
	}

	// The reader panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			res = res.Fail(fmt.Errorf("%v", r))
		}
	}()

	r, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return res.Fail(err)
	}

	n := r.NumPage()
	for i := 1; i <= n; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			res.AddPage("")
			continue
		}

		text, err := p.GetPlainText(nil)
		if err != nil {
			return res.Fail(fmt.Errorf("page %d: %w", i, err))
		}
		pt := res.AddPage(strings.Trim(text, "\n"))

		rows, err := p.GetTextByRow()
		if err != nil {
			g.logger.Debug("table detection skipped",
				zap.String("path", path), zap.Int("page", i), zap.Error(err))
			continue
		}
		tables := detectTables(rows)
		pt.TableCount = len(tables)
		res.AddTables(i, tables)
	}

	g.logger.Debug("text layer read",
		zap.String("path", path), zap.Int("pages", n), zap.Int("tables", res.TableCount()))
	return res.Complete()
}
