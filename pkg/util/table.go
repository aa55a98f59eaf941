package util

import (
	"fmt"
	"io"
	"strings"
)

// TablePrinter is useful for printing tables to the terminal.  Columns are
// right-aligned and separated by "|", whilst the first row is treated as a
// header.
type TablePrinter struct {
	widths []uint
	rows   [][]string
}

// NewTablePrinter constructs a new table with given dimensions.
func NewTablePrinter(width uint, height uint) *TablePrinter {
	widths := make([]uint, width)
	rows := make([][]string, height)
	// Construct the table
	for i := range height {
		rows[i] = make([]string, width)
	}

	return &TablePrinter{widths, rows}
}

// Set the contents of a given cell in this table
func (p *TablePrinter) Set(col uint, row uint, val string) {
	p.widths[col] = max(p.widths[col], uint(len(val)))
	p.rows[row][col] = val
}

// SetRow sets the contents of an entire row in this table
func (p *TablePrinter) SetRow(row uint, vals ...string) {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	// Update column widths
	for i := range p.widths {
		p.widths[i] = max(p.widths[i], uint(len(vals[i])))
	}
	// Done
	p.rows[row] = vals
}

// SetMaxWidth puts an upper bound on the width of any column.
func (p *TablePrinter) SetMaxWidth(m uint) {
	for i := range p.widths {
		p.widths[i] = min(p.widths[i], m)
	}
}

// Lines renders the table as a sequence of lines, each clipped to a given line
// width.  A line width of zero means lines are never clipped.
func (p *TablePrinter) Lines(lineWidth uint) []string {
	var lines = make([]string, len(p.rows))
	//
	for i, row := range p.rows {
		var builder strings.Builder
		//
		for j, col := range row {
			jth := col
			jthWidth := p.widths[j]

			if uint(len(col)) > jthWidth {
				jth = col[0:jthWidth]
			}

			builder.WriteString(fmt.Sprintf(" %*s |", jthWidth, jth))
		}
		//
		lines[i] = clip(builder.String(), lineWidth)
	}
	//
	return lines
}

// Print the table to a given writer, clipping each line to the given width (or
// not at all, if this is zero).
func (p *TablePrinter) Print(out io.Writer, lineWidth uint) error {
	for _, line := range p.Lines(lineWidth) {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}

	return nil
}

func clip(line string, width uint) string {
	if width == 0 || uint(len(line)) <= width {
		return line
	} else if width == 1 {
		return "…"
	}
	// Mark clipped lines
	return line[:width-1] + "…"
}
