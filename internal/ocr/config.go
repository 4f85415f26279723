package ocr

// TesseractConfig configures the Tesseract engine.
type TesseractConfig struct {
	// Languages are the trained models to load, e.g. "kor", "eng".
	Languages []string
	// PageSegMode is Tesseract's page segmentation mode (0-13).
	PageSegMode int
	// TessdataPrefix is the directory holding the trained models. Empty
	// means the location compiled into libtesseract.
	TessdataPrefix string
}

func (c TesseractConfig) withDefaults() TesseractConfig {
	if len(c.Languages) == 0 {
		c.Languages = DefaultLanguages
	}
	if c.PageSegMode == 0 {
		c.PageSegMode = DefaultPageSegMode
	}
	return c
}

// NewRasterizer returns the Rasterizer registered under name: "mupdf"
// or "pdftoppm". pdftoppmPath is only used by the latter. It returns nil
// for unknown names.
func NewRasterizer(name, pdftoppmPath string) Rasterizer {
	switch name {
	case "mupdf", "":
		return NewMuPDFRasterizer()
	case "pdftoppm":
		return NewPdfToPPM(pdftoppmPath)
	}
	return nil
}
