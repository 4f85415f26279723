package ocr

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/rotisserie/eris"
)

// PdfToPPM renders pages with poppler's pdftoppm command.
type PdfToPPM struct {
	binPath string
}

// NewPdfToPPM creates a pdftoppm Rasterizer. If binPath is empty,
// "pdftoppm" is looked up in PATH when rasterizing.
func NewPdfToPPM(binPath string) *PdfToPPM {
	if binPath == "" {
		binPath = "pdftoppm"
	}
	return &PdfToPPM{binPath: binPath}
}

// Name implements Rasterizer.
func (*PdfToPPM) Name() string { return "pdftoppm" }

// Rasterize implements Rasterizer. It returns an error matching
// ErrRasterizerNotInstalled when the binary cannot be found.
func (p *PdfToPPM) Rasterize(ctx context.Context, path string, dpi int) ([][]byte, error) {
	bin, err := exec.LookPath(p.binPath)
	if err != nil {
		return nil, eris.Wrapf(joinErr(ErrRasterizerNotInstalled, err), "looking up %s", p.binPath)
	}

	dir, err := os.MkdirTemp("", "pdfcompare-ocr-*")
	if err != nil {
		return nil, eris.Wrap(err, "creating temp dir")
	}
	defer os.RemoveAll(dir)

	cmd := exec.CommandContext(ctx, bin, "-r", strconv.Itoa(dpi), "-png", path, filepath.Join(dir, "page"))
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, eris.Wrapf(err, "pdftoppm failed for %s: %s", path, bytes.TrimSpace(stderr.Bytes()))
	}

	// pdftoppm zero-pads page numbers to a common width, so names sort in
	// page order.
	files, err := filepath.Glob(filepath.Join(dir, "page-*.png"))
	if err != nil {
		return nil, eris.Wrap(err, "listing rendered pages")
	}
	sort.Strings(files)

	pages := make([][]byte, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, eris.Wrapf(err, "reading %s", filepath.Base(f))
		}
		pages = append(pages, data)
	}
	return pages, nil
}
