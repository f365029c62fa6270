package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/katalvlaran/dijkbench/bench"
)

// Column widths of the benchmark tables.
const (
	indent       = "    "
	nodesWidth   = 19
	linksWidth   = 19
	elapsedWidth = 24
)

// LayoutFor returns the table layout whose time column is labelled label.
func LayoutFor(label string) Layout {
	return Layout{
		Indent: indent,
		Sep:    " ",
		Columns: []Column{
			{Header: "Number of Nodes", Width: nodesWidth},
			{Header: "Number of Links", Width: linksWidth},
			{Header: "Execution Time (" + label + ")", Width: elapsedWidth},
		},
	}
}

// FormatSeconds prints d as seconds in the shortest form that round-trips.
func FormatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}

// Write prints one section per solver table in res:
//
//	For Dijkstra with <Title> complexity
//	<blank>
//	header
//	rows...
//
// Sections are separated by a blank line. A row whose solver exited
// non-zero carries an "(exit N)" suffix on the time.
func Write(w io.Writer, res *bench.Result) error {
	for k, tbl := range res.Tables {
		if k > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		title := tbl.Solver.Title
		if title == "" {
			title = tbl.Solver.Name
		}
		if _, err := fmt.Fprintf(w, "For Dijkstra with %s complexity\n\n", title); err != nil {
			return err
		}

		rows := make([][]string, 0, len(tbl.Rows))
		for _, r := range tbl.Rows {
			elapsed := FormatSeconds(r.Elapsed)
			if r.ExitCode != 0 {
				elapsed += fmt.Sprintf(" (exit %d)", r.ExitCode)
			}
			rows = append(rows, []string{strconv.Itoa(r.Nodes), strconv.Itoa(r.Links), elapsed})
		}
		label := tbl.Solver.Label
		if label == "" {
			label = title
		}
		if err := LayoutFor(label).Write(w, rows); err != nil {
			return fmt.Errorf("report: %s: %w", tbl.Solver.Name, err)
		}
	}

	return nil
}
