package pdfcompare

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Runner compares every PDF file in an input directory and writes the
// per-method text files and a summary table to an output directory.
type Runner struct {
	inputDir   string
	outputDir  string
	cfg        config
	comparator *Comparator
	persister  *Persister
}

// NewRunner creates a Runner reading from inputDir and writing to outputDir.
// The options are shared with the Comparator and Persister it builds.
func NewRunner(inputDir, outputDir string, opts ...Option) *Runner {
	return &Runner{
		inputDir:   inputDir,
		outputDir:  outputDir,
		cfg:        newConfig(opts),
		comparator: NewComparator(opts...),
		persister:  NewPersister(outputDir, opts...),
	}
}

// SummaryPath returns the path of the summary table written by Run.
func (r *Runner) SummaryPath() string {
	return filepath.Join(r.outputDir, r.cfg.summaryName)
}

// Run processes the input files in discovery order. Each file is compared
// and saved before the next one starts. After the last file the summary
// table is written.
//
// When the input directory is missing or holds no PDF files, Run prints an
// error, writes nothing and returns [ErrNoInputDir] or [ErrNoInputFiles].
// A cancelled ctx stops the run between files without writing the summary.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	out := r.cfg.out
	log := r.cfg.logger

	fmt.Fprintf(out, "\n%s\n", rule("=", 60))
	fmt.Fprintln(out, "PDF text extractor: method comparison")
	fmt.Fprintf(out, "%s\n", rule("=", 60))

	files, err := Discover(r.inputDir)
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return nil, err
	}
	fmt.Fprintf(out, "\nFound %d PDF file(s)\n", len(files))
	log.Info("input discovered", zap.String("dir", r.inputDir), zap.Int("files", len(files)))

	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("pdfcompare: creating output directory: %w", err)
	}

	summary := NewSummary(r.methods()...)
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		set := r.comparator.Compare(ctx, path)
		if _, err := r.persister.Save(set); err != nil {
			return summary, err
		}
		summary.Add(set)
	}

	fmt.Fprintf(out, "\n%s\n", rule("=", 60))
	fmt.Fprintln(out, "Summary")
	fmt.Fprintf(out, "%s\n", rule("=", 60))

	if err := summary.WriteFile(r.SummaryPath(), r.cfg.now()); err != nil {
		return summary, err
	}
	fmt.Fprintf(out, "\nResults saved in '%s'\n", r.outputDir)
	fmt.Fprintf(out, "Summary file: %s\n", r.SummaryPath())
	log.Info("run finished", zap.Int("files", len(files)), zap.String("summary", r.SummaryPath()))

	return summary, nil
}

func (r *Runner) methods() []Method {
	var ms []Method
	for _, e := range r.cfg.extractors {
		ms = append(ms, e.Method())
	}
	if r.cfg.ocr != nil {
		ms = append(ms, r.cfg.ocr.Method())
	}
	return ms
}
