package pdfcompare

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover lists the PDF files directly inside dir, sorted by name.
// Subdirectories are not searched. Matching on the ".pdf" extension is
// case-insensitive.
//
// It returns [ErrNoInputDir] when dir does not exist and [ErrNoInputFiles]
// when it holds no PDF files.
func Discover(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.IsDir()) {
		return nil, fmt.Errorf("%w: %s", ErrNoInputDir, dir)
	}
	if err != nil {
		return nil, fmt.Errorf("pdfcompare: reading %s: %w", dir, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("pdfcompare: reading %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoInputFiles, dir)
	}

	sort.Strings(files)
	return files, nil
}
