// pdfsample renders sample PDFs for the comparison with headless Chrome.
//
// Usage:
//
//	pdfsample text [options] <file.txt>
//	pdfsample html [options] <file.html>
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/porticus-lab/pdf-compare/internal/sample"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "text":
		err = runText(os.Args[2:])
	case "html":
		err = runHTML(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`pdfsample - render sample PDFs for pdfcompare

Usage:
  pdfsample text [options] <file.txt>
  pdfsample html [options] <file.html>

Commands:
  text      Render a text file, one page per form feed (\f) separated part
  html      Render an HTML file

Options:
  -o <file>       Output PDF (default: input name with .pdf, in pdfs/)
  -scanned        text only: rasterize every page so the PDF has no text layer
  -chrome <path>  Chrome or Chromium executable
  -download       Download Chromium when none is installed
  -no-sandbox     Disable the Chrome sandbox (needed as root)
  -t <seconds>    Timeout per render (default: 30)

Examples:
  pdfsample text -o pdfs/letter.pdf letter.txt
  pdfsample text -scanned -o pdfs/letter_scan.pdf letter.txt
  pdfsample html invoice.html
`)
}

type cmdArgs struct {
	outputFile string
	inputFile  string
	scanned    bool
	opts       []sample.Option
}

func parseArgs(args []string, allowScanned bool) (*cmdArgs, error) {
	a := &cmdArgs{}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-o":
			i++
			if i >= len(args) {
				return nil, fmt.Errorf("-o requires an argument")
			}
			a.outputFile = args[i]
		case "-chrome":
			i++
			if i >= len(args) {
				return nil, fmt.Errorf("-chrome requires an argument")
			}
			a.opts = append(a.opts, sample.WithChromePath(args[i]))
		case "-t":
			i++
			if i >= len(args) {
				return nil, fmt.Errorf("-t requires an argument")
			}
			d, err := time.ParseDuration(args[i] + "s")
			if err != nil {
				return nil, fmt.Errorf("invalid timeout %q: %w", args[i], err)
			}
			a.opts = append(a.opts, sample.WithTimeout(d))
		case "-download":
			a.opts = append(a.opts, sample.WithAutoDownload())
		case "-no-sandbox":
			a.opts = append(a.opts, sample.WithNoSandbox())
		case "-scanned":
			if !allowScanned {
				return nil, fmt.Errorf("-scanned only applies to text")
			}
			a.scanned = true
		default:
			if strings.HasPrefix(args[i], "-") {
				return nil, fmt.Errorf("unknown option: %s", args[i])
			}
			a.inputFile = args[i]
		}
	}

	if a.inputFile == "" {
		return nil, fmt.Errorf("no input file specified")
	}
	if a.outputFile == "" {
		base := strings.TrimSuffix(filepath.Base(a.inputFile), filepath.Ext(a.inputFile))
		a.outputFile = filepath.Join("pdfs", base+".pdf")
	}
	return a, nil
}

// runText implements the "text" command.
func runText(args []string) error {
	a, err := parseArgs(args, true)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(a.inputFile)
	if err != nil {
		return err
	}
	pages := strings.Split(strings.TrimRight(string(data), "\n\f"), "\f")

	return render(a, func(ctx context.Context, r *sample.Renderer) ([]byte, error) {
		if a.scanned {
			return r.RenderScanned(ctx, pages)
		}
		return r.RenderText(ctx, pages)
	})
}

// runHTML implements the "html" command.
func runHTML(args []string) error {
	a, err := parseArgs(args, false)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(a.inputFile)
	if err != nil {
		return err
	}

	return render(a, func(ctx context.Context, r *sample.Renderer) ([]byte, error) {
		return r.RenderHTML(ctx, string(data))
	})
}

func render(a *cmdArgs, fn func(context.Context, *sample.Renderer) ([]byte, error)) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r, err := sample.NewRenderer(a.opts...)
	if err != nil {
		return err
	}
	defer r.Close()

	pdf, err := fn(ctx, r)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(a.outputFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(a.outputFile, pdf, 0o644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	fmt.Printf("%s (%d bytes)\n", a.outputFile, len(pdf))
	return nil
}
