package pdfcompare

import "errors"

// Sentinel errors returned by the library.
var (
	// ErrNoInputDir is returned when the input directory does not exist.
	ErrNoInputDir = errors.New("pdfcompare: input directory not found")

	// ErrNoInputFiles is returned when the input directory holds no PDF files.
	ErrNoInputFiles = errors.New("pdfcompare: no PDF files in input directory")
)
