package pdfcompare

import "context"

// Extractor pulls text out of a PDF file with one method.
//
// Extract never returns an error: open, parse and dependency failures are
// recorded on the returned result so that one failing method does not stop
// the others.
type Extractor interface {
	Method() Method
	Extract(ctx context.Context, path string) *ExtractionResult
}
