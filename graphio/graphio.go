// SPDX-License-Identifier: MIT

// Package graphio reads undirected graphs from edge lists and writes fill
// edges.
//
// Edge-list format, one edge per line:
//
//	# comment
//	u v
//
// Tokens are separated by white space. Blank lines and lines starting with
// '#' are skipped, and so are self-loops "v v" (without registering v).
// Any other line that does not hold exactly two tokens is rejected with
// ErrMalformedLine.
package graphio

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/minfill/core"
	"github.com/katalvlaran/minfill/graph"
	"github.com/katalvlaran/minfill/treedecomp"
)

// ErrMalformedLine reports an edge-list line without exactly two tokens.
var ErrMalformedLine = errors.New("graphio: malformed line")

// ReadEdgeList parses an edge list into an undirected, unweighted
// core.Graph. Repeated edges are stored once.
func ReadEdgeList(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		tok := strings.Fields(text)
		if len(tok) != 2 {
			return nil, fmt.Errorf("graphio: line %d %q: %w", line, text, ErrMalformedLine)
		}
		if tok[0] == tok[1] {
			continue
		}
		if _, err := g.AddEdge(tok[0], tok[1], 0); err != nil {
			return nil, fmt.Errorf("graphio: line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read: %w", err)
	}

	return g, nil
}

// ReadGraph parses an edge list into an indexed graph whose vertices are
// numbered by ascending label.
func ReadGraph(r io.Reader) (*graph.Graph, error) {
	cg, err := ReadEdgeList(r)
	if err != nil {
		return nil, err
	}

	return graph.FromCore(cg)
}

// WriteEdgeList writes every edge of g as "from to", in insertion order.
func WriteEdgeList(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%s %s\n", e.From, e.To); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFill writes one "u v" line per fill edge.
func WriteFill(w io.Writer, fill []treedecomp.FillEdge) error {
	bw := bufio.NewWriter(w)
	for _, e := range fill {
		if _, err := fmt.Fprintf(bw, "%s %s\n", e.U, e.V); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Report is the JSON form of a solved instance.
type Report struct {
	Vertices int         `json:"vertices"`
	Edges    int         `json:"edges"`
	Cost     int         `json:"cost"`
	Safe     int         `json:"safe"`
	Fill     [][2]string `json:"fill"`
}

// NewReport builds a Report for a graph with n vertices and m edges.
func NewReport(n, m, safe int, fill []treedecomp.FillEdge) Report {
	r := Report{Vertices: n, Edges: m, Cost: len(fill), Safe: safe, Fill: make([][2]string, len(fill))}
	for i, e := range fill {
		r.Fill[i] = [2]string{e.U, e.V}
	}

	return r
}

// WriteJSON writes r as indented JSON followed by a newline.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}
