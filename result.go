package pdfcompare

import (
	"strings"
	"unicode/utf8"
)

// Method identifies an extraction method.
type Method struct {
	// ID is the short identifier used in output file names and table headers.
	ID string
	// Name is the human-readable description printed in reports.
	Name string
}

// Known extraction methods.
var (
	MethodMuPDF = Method{ID: "mupdf", Name: "MuPDF (text layer)"}
	MethodGoPDF = Method{ID: "gopdf", Name: "ledongthuc/pdf (text layer)"}
	MethodOCR   = Method{ID: "ocr", Name: "Tesseract OCR"}
)

// PageText is the text recovered from a single page.
type PageText struct {
	Number     int    `json:"page"`
	Text       string `json:"text"`
	CharCount  int    `json:"char_count"`
	TableCount int    `json:"table_count,omitempty"`
}

// Table is a detected table: rows of cell strings.
type Table [][]string

// PageTables groups the tables found on one page.
type PageTables struct {
	Page   int     `json:"page"`
	Tables []Table `json:"tables"`
}

// ExtractionResult is the outcome of running one method on one file.
//
// A result is built by its extractor and not modified after it is returned.
// A result with Succeeded set and empty Text means the method ran but the
// document has no text it could see; that is different from a failure.
type ExtractionResult struct {
	Method    Method       `json:"method"`
	Text      string       `json:"text"`
	Pages     []PageText   `json:"pages"`
	Tables    []PageTables `json:"tables,omitempty"`
	Succeeded bool         `json:"success"`
	Error     string       `json:"error,omitempty"`
	Note      string       `json:"note,omitempty"`

	// Err is the error behind Error, kept for errors.Is checks.
	Err error `json:"-"`
}

// NewResult returns an empty, not yet successful result for m.
func NewResult(m Method) *ExtractionResult {
	return &ExtractionResult{Method: m}
}

// AddPage appends the text of the next page. Pages are numbered from 1 in
// the order they are added.
func (r *ExtractionResult) AddPage(text string) *PageText {
	r.Pages = append(r.Pages, PageText{
		Number:    len(r.Pages) + 1,
		Text:      text,
		CharCount: utf8.RuneCountInString(text),
	})
	return &r.Pages[len(r.Pages)-1]
}

// AddTables records tables found on page (1-based).
func (r *ExtractionResult) AddTables(page int, tables []Table) {
	if len(tables) == 0 {
		return
	}
	r.Tables = append(r.Tables, PageTables{Page: page, Tables: tables})
}

// Complete joins the page texts and marks the result successful.
func (r *ExtractionResult) Complete() *ExtractionResult {
	texts := make([]string, len(r.Pages))
	for i, p := range r.Pages {
		texts[i] = p.Text
	}
	r.Text = strings.Join(texts, "\n")
	r.Succeeded = true
	r.Error = ""
	r.Err = nil
	return r
}

// Fail marks the result failed with err. Text and pages gathered so far
// are discarded.
func (r *ExtractionResult) Fail(err error) *ExtractionResult {
	r.Text = ""
	r.Pages = nil
	r.Tables = nil
	r.Succeeded = false
	r.Err = err
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

// CharCount returns the number of Unicode code points in Text.
func (r *ExtractionResult) CharCount() int {
	return utf8.RuneCountInString(r.Text)
}

// PageCount returns the number of pages read.
func (r *ExtractionResult) PageCount() int {
	return len(r.Pages)
}

// Empty reports whether Text holds nothing but whitespace.
func (r *ExtractionResult) Empty() bool {
	return strings.TrimSpace(r.Text) == ""
}

// TableCount returns the number of tables across all pages.
func (r *ExtractionResult) TableCount() int {
	n := 0
	for _, pt := range r.Tables {
		n += len(pt.Tables)
	}
	return n
}

// FileResultSet holds the results of every method run on one input file,
// in the order the methods ran.
type FileResultSet struct {
	// File is the base name of the input file.
	File string
	// Path is the path the file was read from.
	Path    string
	Results []*ExtractionResult
}

// Get returns the result for the method with the given ID, or nil.
func (s *FileResultSet) Get(id string) *ExtractionResult {
	for _, r := range s.Results {
		if r.Method.ID == id {
			return r
		}
	}
	return nil
}

// Methods returns the methods that ran, in order.
func (s *FileResultSet) Methods() []Method {
	ms := make([]Method, len(s.Results))
	for i, r := range s.Results {
		ms[i] = r.Method
	}
	return ms
}
