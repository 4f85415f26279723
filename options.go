package pdfcompare

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap"
)

// DefaultSummaryName is the file name of the summary table.
const DefaultSummaryName = "comparison_summary.txt"

// config holds the settings shared by Comparator, Persister and Runner.
type config struct {
	extractors  []Extractor
	ocr         Extractor
	out         io.Writer
	logger      *zap.Logger
	now         func() time.Time
	summaryName string
}

func defaultConfig() config {
	return config{
		out:         os.Stdout,
		logger:      zap.NewNop(),
		now:         time.Now,
		summaryName: DefaultSummaryName,
	}
}

func newConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// Option configures a [Comparator], [Persister] or [Runner].
type Option func(*config)

// WithExtractors sets the text-layer extractors, run in the given order.
func WithExtractors(exts ...Extractor) Option {
	return func(c *config) {
		c.extractors = append([]Extractor(nil), exts...)
	}
}

// WithOCR enables an OCR extractor that runs after the text-layer
// extractors. By default no OCR runs and the step is reported as skipped.
func WithOCR(ext Extractor) Option {
	return func(c *config) {
		c.ocr = ext
	}
}

// WithOutput sets where human-readable progress is printed.
// Defaults to os.Stdout. A nil writer discards progress.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w == nil {
			w = io.Discard
		}
		c.out = w
	}
}

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock replaces time.Now for the timestamps written to output files.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

// WithSummaryName sets the file name of the summary table written by
// [Runner.Run]. Defaults to [DefaultSummaryName].
func WithSummaryName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.summaryName = name
		}
	}
}
