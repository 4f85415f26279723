package ocr

import (
	"bytes"
	"context"
	"image/png"

	"github.com/gen2brain/go-fitz"
	"github.com/rotisserie/eris"
)

// MuPDFRasterizer renders pages with MuPDF, which is linked into the
// binary and therefore always available.
type MuPDFRasterizer struct{}

// NewMuPDFRasterizer returns a MuPDF backed Rasterizer.
func NewMuPDFRasterizer() *MuPDFRasterizer {
	return &MuPDFRasterizer{}
}

// Name implements Rasterizer.
func (*MuPDFRasterizer) Name() string { return "mupdf" }

// Rasterize implements Rasterizer.
func (*MuPDFRasterizer) Rasterize(ctx context.Context, path string, dpi int) ([][]byte, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, eris.Wrapf(err, "opening %s", path)
	}
	defer doc.Close()

	enc := png.Encoder{CompressionLevel: png.BestSpeed}

	var pages [][]byte
	for i := 0; i < doc.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		img, err := doc.ImageDPI(i, float64(dpi))
		if err != nil {
			return nil, eris.Wrapf(err, "rendering page %d", i+1)
		}
		var buf bytes.Buffer
		if err := enc.Encode(&buf, img); err != nil {
			return nil, eris.Wrapf(err, "encoding page %d", i+1)
		}
		pages = append(pages, buf.Bytes())
	}
	return pages, nil
}
