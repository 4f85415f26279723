package main

import (
	"path/filepath"
	"testing"
)

func TestParseArgs(t *testing.T) {
	a, err := parseArgs([]string{"-scanned", "-no-sandbox", "-t", "5", "letter.txt"}, true)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if !a.scanned {
		t.Error("scanned not set")
	}
	if len(a.opts) != 2 {
		t.Errorf("got %d options, want 2", len(a.opts))
	}
	if want := filepath.Join("pdfs", "letter.pdf"); a.outputFile != want {
		t.Errorf("outputFile = %q, want %q", a.outputFile, want)
	}
}

func TestParseArgs_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		scanned bool
	}{
		{"no input", []string{"-scanned"}, true},
		{"missing -o value", []string{"in.txt", "-o"}, true},
		{"unknown option", []string{"-x", "in.txt"}, true},
		{"scanned on html", []string{"-scanned", "in.html"}, false},
		{"bad timeout", []string{"-t", "soon", "in.txt"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseArgs(tt.args, tt.scanned); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseArgs_ExplicitOutput(t *testing.T) {
	a, err := parseArgs([]string{"-o", "out/x.pdf", "invoice.html"}, false)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if a.outputFile != "out/x.pdf" || a.inputFile != "invoice.html" {
		t.Errorf("got %+v", a)
	}
}
