// Package report renders benchmark results as fixed-width text tables.
//
// Layout is declared once as a list of Columns. Header and data rows go
// through the same Pad routine, so alignment cannot drift between rows.
// Values wider than their column are printed whole, never truncated.
package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Alignment selects where padding goes.
type Alignment int

const (
	// AlignLeft pads on the right.
	AlignLeft Alignment = iota
	// AlignRight pads on the left.
	AlignRight
)

// Column describes one table column.
type Column struct {
	Header string
	Width  int
	Align  Alignment
}

// width is the effective width: never narrower than the header.
func (c Column) width() int {
	return max(c.Width, utf8.RuneCountInString(c.Header))
}

// Pad fits s into width runes using a. Longer strings are returned as is.
func Pad(s string, width int, a Alignment) string {
	gap := width - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}
	if a == AlignRight {
		return strings.Repeat(" ", gap) + s
	}

	return s + strings.Repeat(" ", gap)
}

// Layout is an ordered set of columns with a row prefix and separator.
type Layout struct {
	Indent  string
	Sep     string
	Columns []Column
}

// Row formats values against the columns. Missing values print as blanks;
// extra values are an error.
func (l Layout) Row(values ...string) (string, error) {
	if len(values) > len(l.Columns) {
		return "", fmt.Errorf("report: %d values for %d columns", len(values), len(l.Columns))
	}
	var sb strings.Builder
	sb.WriteString(l.Indent)
	for i, c := range l.Columns {
		if i > 0 {
			sb.WriteString(l.Sep)
		}
		v := ""
		if i < len(values) {
			v = values[i]
		}
		sb.WriteString(Pad(v, c.width(), c.Align))
	}

	return sb.String(), nil
}

// Header formats the column headers as a row.
func (l Layout) Header() string {
	hs := make([]string, len(l.Columns))
	for i, c := range l.Columns {
		hs[i] = c.Header
	}
	// len(hs) == len(l.Columns), Row cannot fail.
	row, _ := l.Row(hs...)

	return row
}

// Write prints the header and every row, one per line.
func (l Layout) Write(w io.Writer, rows [][]string) error {
	if _, err := fmt.Fprintln(w, l.Header()); err != nil {
		return err
	}
	for _, r := range rows {
		line, err := l.Row(r...)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
