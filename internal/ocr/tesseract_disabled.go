//go:build !tesseract

package ocr

// NewTesseract reports ErrEngineNotInstalled: this binary was built
// without the tesseract build tag and has no OCR engine linked in.
func NewTesseract(TesseractConfig) (Engine, error) {
	return nil, ErrEngineNotInstalled
}
