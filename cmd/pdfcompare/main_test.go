package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/porticus-lab/pdf-compare/internal/pdftest"
)

// workdir runs the test inside an empty directory with no config file and
// no PDFCOMPARE_* overrides, so the built-in defaults apply.
func workdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, key := range []string{
		"PDFCOMPARE_CONFIG", "PDFCOMPARE_INPUT_DIR", "PDFCOMPARE_OUTPUT_DIR",
		"PDFCOMPARE_SUMMARY_FILE", "PDFCOMPARE_OCR_ENABLED", "PDFCOMPARE_OCR_DPI",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("PDFCOMPARE_LOG_LEVEL", "error")
	return dir
}

func assertAbsent(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("%s exists (stat err: %v), want absent", path, err)
	}
}

func TestRun_MissingInputDir(t *testing.T) {
	dir := workdir(t)

	var out bytes.Buffer
	if code := run(context.Background(), &out); code != exitOK {
		t.Fatalf("exit code = %d, want %d", code, exitOK)
	}
	if !strings.Contains(out.String(), "error: ") {
		t.Errorf("report does not mention the error:\n%s", out.String())
	}
	assertAbsent(t, filepath.Join(dir, "extracted"))
}

func TestRun_EmptyInputDir(t *testing.T) {
	dir := workdir(t)
	if err := os.Mkdir(filepath.Join(dir, "pdfs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "pdfs", "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if code := run(context.Background(), &out); code != exitOK {
		t.Fatalf("exit code = %d, want %d", code, exitOK)
	}
	assertAbsent(t, filepath.Join(dir, "extracted"))
}

func TestRun_ConfigError(t *testing.T) {
	dir := workdir(t)
	t.Setenv("PDFCOMPARE_OCR_DPI", "abc")

	var out bytes.Buffer
	if code := run(context.Background(), &out); code != exitError {
		t.Fatalf("exit code = %d, want %d", code, exitError)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected report:\n%s", out.String())
	}
	assertAbsent(t, filepath.Join(dir, "extracted"))
}

func TestRun_Cancelled(t *testing.T) {
	dir := workdir(t)
	if err := os.Mkdir(filepath.Join(dir, "pdfs"), 0o755); err != nil {
		t.Fatal(err)
	}
	pdftest.WriteFile(t, filepath.Join(dir, "pdfs"), "doc.pdf", pdftest.TextPage("hello"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	if code := run(ctx, &out); code != exitInterrupted {
		t.Fatalf("exit code = %d, want %d", code, exitInterrupted)
	}
	assertAbsent(t, filepath.Join(dir, "extracted", "comparison_summary.txt"))
}

func TestRun_Compares(t *testing.T) {
	dir := workdir(t)
	if err := os.Mkdir(filepath.Join(dir, "pdfs"), 0o755); err != nil {
		t.Fatal(err)
	}
	pdftest.WriteFile(t, filepath.Join(dir, "pdfs"), "doc.pdf", pdftest.TextPage("hello world"))

	var out bytes.Buffer
	if code := run(context.Background(), &out); code != exitOK {
		t.Fatalf("exit code = %d, want %d\n%s", code, exitOK, out.String())
	}
	for _, name := range []string{"doc_mupdf.txt", "doc_gopdf.txt", "comparison_summary.txt"} {
		if _, err := os.Stat(filepath.Join(dir, "extracted", name)); err != nil {
			t.Errorf("missing output: %v", err)
		}
	}
	if !strings.Contains(out.String(), "OCR skipped") {
		t.Errorf("report does not mention the skipped OCR step:\n%s", out.String())
	}
}

func TestRun_OCREnabledWithoutEngine(t *testing.T) {
	dir := workdir(t)
	t.Setenv("PDFCOMPARE_OCR_ENABLED", "true")
	if err := os.Mkdir(filepath.Join(dir, "pdfs"), 0o755); err != nil {
		t.Fatal(err)
	}
	pdftest.WriteFile(t, filepath.Join(dir, "pdfs"), "doc.pdf", pdftest.TextPage("hello world"))

	var out bytes.Buffer
	if code := run(context.Background(), &out); code != exitOK {
		t.Fatalf("exit code = %d, want %d\n%s", code, exitOK, out.String())
	}
	summary, err := os.ReadFile(filepath.Join(dir, "extracted", "comparison_summary.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(summary), "ocr") {
		t.Errorf("summary has no ocr column:\n%s", summary)
	}
}
