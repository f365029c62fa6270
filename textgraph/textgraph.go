// Package textgraph reads and writes the line-oriented graph format consumed
// by the external shortest-path solvers.
//
// One edge per line, "<from>-<to>-<cost>", with from < to. Lines are joined
// by '\n' and the text carries no trailing newline. There is no node list:
// the vertex count is implied by the caller or by the largest index seen.
package textgraph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/dijkbench/core"
)

// ErrMalformedLine indicates a line that is not "<int>-<int>-<int>".
var ErrMalformedLine = errors.New("textgraph: malformed line")

const (
	fieldSep = '-'
	lineSep  = '\n'
)

// Format renders g as text. Edges appear in g.Edges() order.
// Complexity: O(E).
func Format(g *core.Graph) string {
	var sb strings.Builder
	// strings.Builder never returns a write error.
	_ = Write(&sb, g)

	return sb.String()
}

// Write streams g to w in the same form Format returns.
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for k, e := range g.Edges() {
		buf = buf[:0]
		if k > 0 {
			buf = append(buf, lineSep)
		}
		buf = AppendEdge(buf, e)
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("textgraph: write edge %d: %w", k, err)
		}
	}

	return bw.Flush()
}

// AppendEdge appends one "<from>-<to>-<cost>" record to dst.
func AppendEdge(dst []byte, e core.Edge) []byte {
	dst = strconv.AppendInt(dst, int64(e.From), 10)
	dst = append(dst, fieldSep)
	dst = strconv.AppendInt(dst, int64(e.To), 10)
	dst = append(dst, fieldSep)

	return strconv.AppendInt(dst, e.Weight, 10)
}

// Parse builds a graph from text. When n >= 0 the graph has exactly n
// vertices and every index must fall below it; when n < 0 the vertex count
// is the largest index seen plus one. Edge order is preserved, so
// Format(Parse(s)) == s for any s that Format produced.
//
// Blank lines are skipped. Every other line must be a valid record and
// satisfy core's insertion rules (from != to, no duplicates, cost ≥ 1);
// a reversed pair "j-i-c" is accepted and normalized.
func Parse(text string, n int) (*core.Graph, error) {
	type record struct {
		line     int
		from, to int
		cost     int64
	}

	var (
		recs   []record
		maxIdx = -1
	)
	for lineNo, line := range strings.Split(text, string(lineSep)) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		from, to, cost, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("textgraph: line %d %q: %w", lineNo+1, line, err)
		}
		recs = append(recs, record{line: lineNo + 1, from: from, to: to, cost: cost})
		maxIdx = max(maxIdx, from, to)
	}

	if n < 0 {
		n = maxIdx + 1
	}
	g := core.NewGraph(core.WithVertices(n))
	for _, r := range recs {
		if err := g.AddEdge(r.from, r.to, r.cost); err != nil {
			return nil, fmt.Errorf("textgraph: line %d: %w", r.line, err)
		}
	}

	return g, nil
}

func parseLine(line string) (from, to int, cost int64, err error) {
	parts := strings.Split(line, string(fieldSep))
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("want 3 fields, got %d: %w", len(parts), ErrMalformedLine)
	}
	if from, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, 0, fmt.Errorf("source: %v: %w", err, ErrMalformedLine)
	}
	if to, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, 0, fmt.Errorf("destination: %v: %w", err, ErrMalformedLine)
	}
	if cost, err = strconv.ParseInt(parts[2], 10, 64); err != nil {
		return 0, 0, 0, fmt.Errorf("cost: %v: %w", err, ErrMalformedLine)
	}

	return from, to, cost, nil
}
