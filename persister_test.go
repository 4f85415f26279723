package pdfcompare

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var fixedTime = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

func completed(m Method, pages ...string) *ExtractionResult {
	r := NewResult(m)
	for _, p := range pages {
		r.AddPage(p)
	}
	return r.Complete()
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		file string
		want string
	}{
		{"report.pdf", "report_mupdf.txt"},
		{"REPORT.PDF", "REPORT_mupdf.txt"},
		{"a.b.pdf", "a.b_mupdf.txt"},
		{"noext", "noext_mupdf.txt"},
	}
	for _, tt := range tests {
		if got := OutputName(tt.file, MethodMuPDF); got != tt.want {
			t.Errorf("OutputName(%q) = %q, want %q", tt.file, got, tt.want)
		}
	}
}

func TestSave_OneFilePerSuccessfulMethod(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	set := &FileResultSet{File: "doc.pdf", Results: []*ExtractionResult{
		completed(MethodMuPDF, "page one", "page two"),
		completed(MethodGoPDF, "page one"),
	}}

	p := NewPersister(dir, WithOutput(nil), WithClock(fixedClock))
	written, err := p.Save(set)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(written) != 2 {
		t.Fatalf("wrote %d files, want 2", len(written))
	}

	names := listDir(t, dir)
	if strings.Join(names, ",") != "doc_gopdf.txt,doc_mupdf.txt" {
		t.Errorf("files = %v", names)
	}
}

func TestSave_SkipsFailedAndEmpty(t *testing.T) {
	dir := t.TempDir()
	set := &FileResultSet{File: "scan.pdf", Results: []*ExtractionResult{
		NewResult(MethodMuPDF).Fail(errors.New("broken")),
		completed(MethodGoPDF, "  \n\t", ""),
	}}

	written, err := NewPersister(dir, WithOutput(nil)).Save(set)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(written) != 0 {
		t.Errorf("wrote %v, want nothing", written)
	}
	if names := listDir(t, dir); len(names) != 0 {
		t.Errorf("directory holds %v, want nothing", names)
	}
}

func TestSave_Content(t *testing.T) {
	dir := t.TempDir()
	set := &FileResultSet{File: "doc.pdf", Results: []*ExtractionResult{
		completed(MethodMuPDF, strings.Repeat("a", 1200), "b"),
	}}

	var out bytes.Buffer
	if _, err := NewPersister(dir, WithOutput(&out), WithClock(fixedClock)).Save(set); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "doc_mupdf.txt"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "# Method: MuPDF (text layer)\n" +
		"# Source file: doc.pdf\n" +
		"# Extracted at: 2026-03-14T09:26:53Z\n" +
		"# Characters: 1,202\n" +
		"# Pages: 2\n" +
		strings.Repeat("=", 60) + "\n\n" +
		strings.Repeat("a", 1200) + "\nb"
	if string(data) != want {
		t.Errorf("content mismatch\ngot:\n%s\nwant:\n%s", data, want)
	}
	if !strings.Contains(out.String(), "saved: doc_mupdf.txt") {
		t.Errorf("progress = %q", out.String())
	}
}

func TestSave_ExistingDirectory(t *testing.T) {
	dir := t.TempDir()
	set := &FileResultSet{File: "doc.pdf", Results: []*ExtractionResult{completed(MethodGoPDF, "x")}}
	p := NewPersister(dir, WithOutput(nil))
	for i := 0; i < 2; i++ {
		if _, err := p.Save(set); err != nil {
			t.Fatalf("Save #%d: %v", i+1, err)
		}
	}
	if names := listDir(t, dir); len(names) != 1 {
		t.Errorf("files = %v, want one", names)
	}
}

func TestSave_ExtensionCaseCollision(t *testing.T) {
	dir := t.TempDir()
	p := NewPersister(dir, WithOutput(nil))

	lower := &FileResultSet{File: "a.pdf", Results: []*ExtractionResult{completed(MethodMuPDF, "lower")}}
	upper := &FileResultSet{File: "a.PDF", Results: []*ExtractionResult{completed(MethodMuPDF, "upper")}}
	for _, set := range []*FileResultSet{lower, upper, lower} {
		if _, err := p.Save(set); err != nil {
			t.Fatalf("Save %s: %v", set.File, err)
		}
	}

	names := listDir(t, dir)
	want := []string{"a.PDF_mupdf.txt", "a_mupdf.txt"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("files = %v, want %v", names, want)
	}
	for name, text := range map[string]string{"a_mupdf.txt": "lower", "a.PDF_mupdf.txt": "upper"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		if !strings.HasSuffix(string(data), "\n\n"+text) {
			t.Errorf("%s holds %q, want text %q", name, data, text)
		}
	}
}
