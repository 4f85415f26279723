package pdfcompare

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Persister writes extraction results to text files, one per method.
//
// Output names are claimed per source file. Inputs that only differ in the
// case of their extension, such as a.pdf and a.PDF, would map to the same
// name; the later one keeps its extension in the name instead.
type Persister struct {
	dir string
	cfg config

	mu      sync.Mutex
	claimed map[string]string // lower-cased output name -> source file
}

// NewPersister creates a Persister that writes into dir.
func NewPersister(dir string, opts ...Option) *Persister {
	return &Persister{dir: dir, cfg: newConfig(opts), claimed: map[string]string{}}
}

// Dir returns the output directory.
func (p *Persister) Dir() string {
	return p.dir
}

// OutputName returns the file name used for the result of method on the
// input file name: "<base>_<method>.txt".
func OutputName(file string, method Method) string {
	base := strings.TrimSuffix(file, filepath.Ext(file))
	return base + "_" + method.ID + ".txt"
}

// Save writes one file for every result in set that succeeded and holds
// non-whitespace text. Failed and empty results are skipped. The output
// directory is created if needed. Save returns the paths it wrote.
func (p *Persister) Save(set *FileResultSet) ([]string, error) {
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return nil, fmt.Errorf("pdfcompare: creating output directory: %w", err)
	}

	var written []string
	for _, r := range set.Results {
		if !r.Succeeded || r.Empty() {
			continue
		}

		path := filepath.Join(p.dir, p.claim(set.File, r.Method))
		if err := os.WriteFile(path, []byte(p.render(set.File, r)), 0o644); err != nil {
			return written, fmt.Errorf("pdfcompare: writing %s: %w", path, err)
		}
		written = append(written, path)

		fmt.Fprintf(p.cfg.out, "    saved: %s\n", filepath.Base(path))
		p.cfg.logger.Debug("result saved",
			zap.String("file", set.File),
			zap.String("method", r.Method.ID),
			zap.String("path", path))
	}
	return written, nil
}

// claim returns the output name for file and method, falling back to a
// name that keeps the input extension when another source file already
// owns the plain one.
func (p *Persister) claim(file string, method Method) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	name := OutputName(file, method)
	if owner, ok := p.claimed[strings.ToLower(name)]; ok && owner != file {
		alt := file + "_" + method.ID + ".txt"
		p.cfg.logger.Warn("output name already used by another input",
			zap.String("file", file),
			zap.String("owner", owner),
			zap.String("name", name),
			zap.String("using", alt))
		name = alt
	}
	p.claimed[strings.ToLower(name)] = file
	return name
}

// render builds the header block followed by the extracted text.
func (p *Persister) render(file string, r *ExtractionResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Method: %s\n", r.Method.Name)
	fmt.Fprintf(&sb, "# Source file: %s\n", file)
	fmt.Fprintf(&sb, "# Extracted at: %s\n", p.cfg.now().Format(time.RFC3339))
	fmt.Fprintf(&sb, "# Characters: %s\n", formatCount(r.CharCount()))
	fmt.Fprintf(&sb, "# Pages: %d\n", r.PageCount())
	sb.WriteString(rule("=", 60))
	sb.WriteString("\n\n")
	sb.WriteString(r.Text)
	return sb.String()
}
