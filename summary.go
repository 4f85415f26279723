package pdfcompare

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"
)

// SummaryRow holds the character counts of one input file, keyed by method ID.
type SummaryRow struct {
	File   string
	Counts map[string]int
}

// Summary accumulates one row per input file and renders them as a
// fixed-width comparison table.
type Summary struct {
	methods []Method
	rows    []SummaryRow
}

// NewSummary creates a Summary with one column per method, in order.
func NewSummary(methods ...Method) *Summary {
	return &Summary{methods: append([]Method(nil), methods...)}
}

// Add appends a row for set. A method that did not run, or failed, counts
// as zero characters. Methods not yet known become new columns.
func (s *Summary) Add(set *FileResultSet) SummaryRow {
	row := SummaryRow{File: set.File, Counts: make(map[string]int, len(set.Results))}
	for _, r := range set.Results {
		if !s.hasMethod(r.Method.ID) {
			s.methods = append(s.methods, r.Method)
		}
		row.Counts[r.Method.ID] = r.CharCount()
	}
	s.rows = append(s.rows, row)
	return row
}

func (s *Summary) hasMethod(id string) bool {
	for _, m := range s.methods {
		if m.ID == id {
			return true
		}
	}
	return false
}

// Rows returns the accumulated rows in the order they were added.
func (s *Summary) Rows() []SummaryRow {
	return s.rows
}

// Methods returns the table columns.
func (s *Summary) Methods() []Method {
	return s.methods
}

// summaryNotes is the static guidance appended below the table.
var summaryNotes = []string{
	"A character count of 0 means the PDF has no text layer or is an image-only (scanned) PDF.",
	"Image-only PDFs need the OCR method.",
	"OCR needs Tesseract and a PDF rasterizer (MuPDF or poppler's pdftoppm) installed.",
}

// Write renders the summary table to w, stamped with the time at.
func (s *Summary) Write(w io.Writer, at time.Time) error {
	width := maxNameWidth + 13*len(s.methods)
	if width < 80 {
		width = 80
	}

	var b bytes.Buffer
	b.WriteString("PDF text extraction comparison\n")
	fmt.Fprintf(&b, "Extracted at: %s\n", at.Format(time.RFC3339))
	fmt.Fprintf(&b, "%s\n\n", rule("=", width))

	fmt.Fprintf(&b, "%-*s", maxNameWidth, "File")
	for _, m := range s.methods {
		fmt.Fprintf(&b, " %12s", m.ID)
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%s\n", rule("-", width))

	for _, row := range s.rows {
		fmt.Fprintf(&b, "%-*s", maxNameWidth, truncateName(row.File))
		for _, m := range s.methods {
			fmt.Fprintf(&b, " %12s", formatCount(row.Counts[m.ID]))
		}
		b.WriteByte('\n')
	}

	b.WriteString("\n\nNotes:\n")
	for _, n := range summaryNotes {
		fmt.Fprintf(&b, "- %s\n", n)
	}

	_, err := b.WriteTo(w)
	return err
}

// WriteFile renders the summary table into the file at path.
func (s *Summary) WriteFile(path string, at time.Time) error {
	var b bytes.Buffer
	if err := s.Write(&b, at); err != nil {
		return err
	}
	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		return fmt.Errorf("pdfcompare: writing summary: %w", err)
	}
	return nil
}
