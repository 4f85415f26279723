package pdfcompare

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Comparator runs every configured extraction method on a file and prints
// a short report of what each one found.
//
// Methods run one after another. A failing method does not prevent the
// next one from running, and nothing is retried.
type Comparator struct {
	cfg config
}

// NewComparator creates a Comparator with the given options.
func NewComparator(opts ...Option) *Comparator {
	return &Comparator{cfg: newConfig(opts)}
}

// Compare extracts path with every method and returns the collected results.
func (c *Comparator) Compare(ctx context.Context, path string) *FileResultSet {
	name := filepath.Base(path)
	out := c.cfg.out
	log := c.cfg.logger.With(zap.String("file", name))

	fmt.Fprintf(out, "\n%s\n", rule("=", 60))
	fmt.Fprintf(out, "File: %s\n", name)
	fmt.Fprintf(out, "%s\n", rule("=", 60))

	set := &FileResultSet{File: name, Path: path}
	steps := len(c.cfg.extractors) + 1

	for i, ext := range c.cfg.extractors {
		m := ext.Method()
		fmt.Fprintf(out, "  [%d/%d] Extracting with %s...\n", i+1, steps, m.Name)
		set.Results = append(set.Results, c.run(ctx, log, ext, path))
	}

	if c.cfg.ocr != nil {
		fmt.Fprintf(out, "  [%d/%d] Extracting with %s...\n", steps, steps, c.cfg.ocr.Method().Name)
		set.Results = append(set.Results, c.run(ctx, log, c.cfg.ocr, path))
	} else {
		fmt.Fprintf(out, "  [%d/%d] OCR skipped (enable it in the config; needs Tesseract and a rasterizer)\n", steps, steps)
	}

	fmt.Fprintf(out, "\n  Results:\n")
	for _, r := range set.Results {
		status := "OK"
		if !r.Succeeded {
			status = "FAILED: " + r.Error
		}
		fmt.Fprintf(out, "    - %s: %s chars, %s\n", r.Method.Name, formatCount(r.CharCount()), status)
	}

	return set
}

func (c *Comparator) run(ctx context.Context, log *zap.Logger, ext Extractor, path string) *ExtractionResult {
	m := ext.Method()
	start := time.Now()
	res := ext.Extract(ctx, path)
	if res == nil {
		res = NewResult(m).Fail(fmt.Errorf("%s returned no result", m.ID))
	}

	fields := []zap.Field{
		zap.String("method", m.ID),
		zap.Int("chars", res.CharCount()),
		zap.Int("pages", res.PageCount()),
		zap.Duration("elapsed", time.Since(start)),
	}
	if res.Succeeded {
		log.Debug("extraction finished", fields...)
	} else {
		log.Warn("extraction failed", append(fields, zap.Error(res.Err))...)
	}
	return res
}
