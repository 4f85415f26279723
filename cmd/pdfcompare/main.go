// pdfcompare extracts the text of every PDF in the input directory with
// several methods and writes the results side by side for comparison.
//
// Usage:
//
//	pdfcompare
//
// The command takes no arguments. Settings come from pdfcompare.yaml (or the
// file named by PDFCOMPARE_CONFIG), a .env file and PDFCOMPARE_* variables.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	pdfcompare "github.com/porticus-lab/pdf-compare"
	"github.com/porticus-lab/pdf-compare/internal/config"
	"github.com/porticus-lab/pdf-compare/internal/logging"
	"github.com/porticus-lab/pdf-compare/internal/ocr"
	"github.com/porticus-lab/pdf-compare/internal/textlayer"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Stdout)
	stop()
	os.Exit(code)
}

// Exit codes.
const (
	exitOK          = 0
	exitError       = 1
	exitInterrupted = 130
)

// run performs one comparison, printing the report to stdout, and returns
// the process exit code.
func run(ctx context.Context, stdout io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitError
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitError
	}
	defer logger.Sync()

	opts := []pdfcompare.Option{
		pdfcompare.WithOutput(stdout),
		pdfcompare.WithLogger(logger),
		pdfcompare.WithSummaryName(cfg.SummaryFile),
		pdfcompare.WithExtractors(
			textlayer.NewMuPDF(logger),
			textlayer.NewGoPDF(logger),
		),
	}

	if cfg.OCR.Enabled {
		ext, closeEngine := newOCR(cfg.OCR, logger)
		defer closeEngine()
		opts = append(opts, pdfcompare.WithOCR(ext))
	}

	runner := pdfcompare.NewRunner(cfg.InputDir, cfg.OutputDir, opts...)
	if _, err := runner.Run(ctx); err != nil {
		switch {
		case errors.Is(err, pdfcompare.ErrNoInputDir), errors.Is(err, pdfcompare.ErrNoInputFiles):
			// Already reported on stdout; nothing to compare is not a failure.
			return exitOK
		case errors.Is(err, context.Canceled):
			fmt.Fprintln(os.Stderr, "interrupted")
			return exitInterrupted
		}
		logger.Error("run failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitError
	}
	return exitOK
}

// newOCR builds the OCR extractor. A missing engine is not fatal: the
// extractor then reports "not installed" for every file.
func newOCR(c config.OCR, logger *zap.Logger) (pdfcompare.Extractor, func()) {
	engine, err := ocr.NewTesseract(ocr.TesseractConfig{
		Languages:      c.Languages,
		PageSegMode:    c.PageSegMode,
		TessdataPrefix: c.TessdataPrefix,
	})
	if err != nil {
		logger.Warn("OCR engine unavailable", zap.Error(err))
		engine = nil
	}

	ext := ocr.NewExtractor(ocr.NewRasterizer(c.Rasterizer, c.PdfToPPMPath), engine, c.DPI, logger)
	return ext, func() {
		if engine != nil {
			engine.Close()
		}
	}
}
