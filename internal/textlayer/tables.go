package textlayer

import (
	"strings"

	"github.com/ledongthuc/pdf"

	pdfcompare "github.com/porticus-lab/pdf-compare"
)

const (
	minTableRows = 2
	minTableCols = 2
)

// detectTables groups text rows into tables. A table is a run of at least
// minTableRows consecutive rows that each hold the same number of cells,
// and at least minTableCols of them. Each drawn string is one cell.
func detectTables(rows pdf.Rows) []pdfcompare.Table {
	var (
		tables []pdfcompare.Table
		cur    pdfcompare.Table
	)
	flush := func() {
		if len(cur) >= minTableRows {
			tables = append(tables, cur)
		}
		cur = nil
	}

	for _, row := range rows {
		cells := rowCells(row)
		if len(cells) < minTableCols {
			flush()
			continue
		}
		if len(cur) > 0 && len(cur[0]) != len(cells) {
			flush()
		}
		cur = append(cur, cells)
	}
	flush()

	return tables
}

// rowCells returns the non-blank strings of a row, left to right.
func rowCells(row *pdf.Row) []string {
	var cells []string
	for _, t := range row.Content {
		if s := strings.TrimSpace(t.S); s != "" {
			cells = append(cells, s)
		}
	}
	return cells
}
