// Package pdftest builds small, valid PDF documents for tests.
//
// Each page is described by its raw content stream. Helpers produce the
// common cases: lines of text, positioned table cells, and pages that only
// draw shapes and therefore carry no text layer.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// Build assembles a PDF with one page per content stream. All pages share
// a Helvetica font registered as /F1 with WinAnsiEncoding.
func Build(contentStreams ...string) []byte {
	var buf bytes.Buffer
	offsets := map[int]int{}

	buf.WriteString("%PDF-1.4\n")

	numPages := len(contentStreams)
	fontID := 3 + numPages*2

	kids := make([]string, numPages)
	for i := range contentStreams {
		kids[i] = strconv.Itoa(3+i*2) + " 0 R"
	}

	offsets[1] = buf.Len()
	buf.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	offsets[2] = buf.Len()
	fmt.Fprintf(&buf, "2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n",
		strings.Join(kids, " "), numPages)

	for i, cs := range contentStreams {
		pageID := 3 + i*2
		streamID := pageID + 1

		offsets[pageID] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n", pageID)
		buf.WriteString("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792]")
		fmt.Fprintf(&buf, " /Contents %d 0 R", streamID)
		fmt.Fprintf(&buf, " /Resources << /Font << /F1 %d 0 R >> >> >>\n", fontID)
		buf.WriteString("endobj\n")

		offsets[streamID] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n<< /Length %d >>\nstream\n", streamID, len(cs))
		buf.WriteString(cs)
		buf.WriteString("\nendstream\nendobj\n")
	}

	offsets[fontID] = buf.Len()
	fmt.Fprintf(&buf, "%d 0 obj\n", fontID)
	buf.WriteString("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>\n")
	buf.WriteString("endobj\n")

	size := fontID + 1
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", size)
	buf.WriteString("0000000000 65535 f \n")
	for id := 1; id < size; id++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[id])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\n", size)
	fmt.Fprintf(&buf, "startxref\n%d\n%%%%EOF\n", xref)

	return buf.Bytes()
}

// TextPage returns a content stream that draws each line in its own text
// object, 14 points apart, starting near the top of the page.
func TextPage(lines ...string) string {
	var sb strings.Builder
	y := 720
	for _, l := range lines {
		fmt.Fprintf(&sb, "BT /F1 12 Tf 1 0 0 1 72 %d Tm (%s) Tj ET\n", y, escape(l))
		y -= 14
	}
	return sb.String()
}

// TablePage returns a content stream that draws rows of cells on a grid,
// each cell in its own text object.
func TablePage(rows [][]string) string {
	var sb strings.Builder
	y := 700
	for _, row := range rows {
		x := 72
		for _, cell := range row {
			fmt.Fprintf(&sb, "BT /F1 10 Tf 1 0 0 1 %d %d Tm (%s) Tj ET\n", x, y, escape(cell))
			x += 120
		}
		y -= 20
	}
	return sb.String()
}

// ImagePage returns a content stream that only fills a rectangle, standing
// in for a scanned page without a text layer.
func ImagePage() string {
	return "q 0.5 g 72 72 468 648 re f Q"
}

// escape protects the characters that delimit PDF literal strings.
func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}

// WriteFile builds a PDF from contentStreams into dir/name and returns the path.
func WriteFile(t testing.TB, dir, name string, contentStreams ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, Build(contentStreams...), 0o644); err != nil {
		t.Fatalf("pdftest: writing %s: %v", path, err)
	}
	return path
}
