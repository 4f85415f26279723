//go:build !tesseract

package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTesseract_NotCompiledIn(t *testing.T) {
	e, err := NewTesseract(TesseractConfig{})
	assert.Nil(t, e)
	assert.ErrorIs(t, err, ErrEngineNotInstalled)
}
