// Package config loads the settings of the pdfcompare command.
//
// Values come from, in increasing priority: built-in defaults, a YAML
// file, a .env file and the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the YAML file read from the working directory when
// PDFCOMPARE_CONFIG is not set.
const DefaultFile = "pdfcompare.yaml"

// Config holds every setting of a run.
type Config struct {
	InputDir    string `yaml:"input_dir"`
	OutputDir   string `yaml:"output_dir"`
	SummaryFile string `yaml:"summary_file"`
	OCR         OCR    `yaml:"ocr"`
	Log         Log    `yaml:"log"`
}

// OCR configures the optional OCR method.
type OCR struct {
	Enabled        bool     `yaml:"enabled"`
	Languages      []string `yaml:"languages"`
	PageSegMode    int      `yaml:"page_seg_mode"`
	DPI            int      `yaml:"dpi"`
	Rasterizer     string   `yaml:"rasterizer"`
	PdfToPPMPath   string   `yaml:"pdftoppm_path"`
	TessdataPrefix string   `yaml:"tessdata_prefix"`
}

// Log configures the diagnostic logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		InputDir:    "pdfs",
		OutputDir:   "extracted",
		SummaryFile: "comparison_summary.txt",
		OCR: OCR{
			Languages:   []string{"kor", "eng", "rus"},
			PageSegMode: 6,
			DPI:         300,
			Rasterizer:  "mupdf",
		},
		Log: Log{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load builds the configuration from defaults, the YAML file named by
// PDFCOMPARE_CONFIG (or DefaultFile when present), a .env file in the
// working directory and PDFCOMPARE_* environment variables.
func Load() (*Config, error) {
	cfg := Default()

	// .env only fills variables that are not already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: reading .env: %w", err)
	}

	path, explicit := os.LookupEnv("PDFCOMPARE_CONFIG")
	if !explicit {
		path = DefaultFile
	}
	if err := cfg.mergeFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	if err := cfg.mergeEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile reads a YAML file over the defaults and validates the result.
// The environment is not consulted.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.mergeFile(path); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv() error {
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	str("PDFCOMPARE_INPUT_DIR", &c.InputDir)
	str("PDFCOMPARE_OUTPUT_DIR", &c.OutputDir)
	str("PDFCOMPARE_SUMMARY_FILE", &c.SummaryFile)
	str("PDFCOMPARE_OCR_RASTERIZER", &c.OCR.Rasterizer)
	str("PDFCOMPARE_PDFTOPPM_PATH", &c.OCR.PdfToPPMPath)
	str("PDFCOMPARE_TESSDATA_PREFIX", &c.OCR.TessdataPrefix)
	str("PDFCOMPARE_LOG_LEVEL", &c.Log.Level)
	str("PDFCOMPARE_LOG_FORMAT", &c.Log.Format)

	if v, ok := os.LookupEnv("PDFCOMPARE_OCR_LANGUAGES"); ok {
		c.OCR.Languages = splitLanguages(v)
	}
	if v, ok := os.LookupEnv("PDFCOMPARE_OCR_ENABLED"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: PDFCOMPARE_OCR_ENABLED=%q: %w", v, err)
		}
		c.OCR.Enabled = b
	}
	for key, dst := range map[string]*int{
		"PDFCOMPARE_OCR_PAGE_SEG_MODE": &c.OCR.PageSegMode,
		"PDFCOMPARE_OCR_DPI":           &c.OCR.DPI,
	} {
		v, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", key, v, err)
		}
		*dst = n
	}
	return nil
}

// splitLanguages accepts both Tesseract's "kor+eng" form and a comma list.
func splitLanguages(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '+' || r == ',' || r == ' '
	})
	return fields
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.InputDir == "":
		return errors.New("config: input_dir is empty")
	case c.OutputDir == "":
		return errors.New("config: output_dir is empty")
	case c.SummaryFile == "":
		return errors.New("config: summary_file is empty")
	}

	switch c.OCR.Rasterizer {
	case "mupdf", "pdftoppm":
	default:
		return fmt.Errorf("config: unknown ocr.rasterizer %q (want mupdf or pdftoppm)", c.OCR.Rasterizer)
	}
	if c.OCR.DPI <= 0 {
		return fmt.Errorf("config: ocr.dpi must be positive, got %d", c.OCR.DPI)
	}
	if c.OCR.PageSegMode < 1 || c.OCR.PageSegMode > 13 {
		return fmt.Errorf("config: ocr.page_seg_mode must be within 1-13, got %d", c.OCR.PageSegMode)
	}
	if len(c.OCR.Languages) == 0 {
		return errors.New("config: ocr.languages is empty")
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log.level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("config: unknown log.format %q (want console or json)", c.Log.Format)
	}
	return nil
}
