package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column describes one column of a table.
type Column struct {
	Header string
	Align  Alignment
}

// Gap separates adjacent columns.
const Gap = "  "

// Format lays out rows under the given columns, padding every cell to the
// widest entry in its column. A header row is emitted when any column has a
// header. Widths are measured in terminal cells, so styled cells line up.
func Format(columns []Column, rows [][]string) []string {
	if len(columns) == 0 {
		return nil
	}
	widths := make([]int, len(columns))
	withHeader := false
	for c, col := range columns {
		if col.Header != "" {
			withHeader = true
		}
		widths[c] = cellWidth(col.Header)
	}
	for _, row := range rows {
		for c := 0; c < len(columns) && c < len(row); c++ {
			if w := cellWidth(row[c]); w > widths[c] {
				widths[c] = w
			}
		}
	}
	out := make([]string, 0, len(rows)+1)
	if withHeader {
		header := make([]string, len(columns))
		for c, col := range columns {
			header[c] = col.Header
		}
		out = append(out, formatRow(columns, widths, header))
	}
	for _, row := range rows {
		out = append(out, formatRow(columns, widths, row))
	}
	return out
}

// Width returns the cell width of a formatted row for columns of the given
// widths.
func Width(widths ...int) int {
	total := 0
	for i, w := range widths {
		if i > 0 {
			total += len(Gap)
		}
		total += w
	}
	return total
}

func formatRow(columns []Column, widths []int, row []string) string {
	var b strings.Builder
	for c := range columns {
		if c > 0 {
			b.WriteString(Gap)
		}
		cell := ""
		if c < len(row) {
			cell = row[c]
		}
		pad := widths[c] - cellWidth(cell)
		if columns[c].Align == AlignRight {
			writeSpaces(&b, pad)
			b.WriteString(cell)
		} else {
			b.WriteString(cell)
			if c < len(columns)-1 {
				writeSpaces(&b, pad)
			}
		}
	}
	return b.String()
}

func cellWidth(text string) int {
	return ansi.StringWidth(text)
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}
