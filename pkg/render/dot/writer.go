package dot

import (
	"bytes"
	"fmt"
	"strings"
)

// Writer builds a DOT document as an ordered sequence of writes. The
// document is held in memory and flushed by the caller in one piece, so
// an aborted pass never leaves a truncated graph behind.
//
// Writers are single-use: open the graph, write the body, close it
// exactly once, then read the result with String.
type Writer struct {
	buf   bytes.Buffer
	depth int
}

// NewWriter returns an empty writer.
func NewWriter() *Writer { return &Writer{} }

func (w *Writer) indent() string {
	return strings.Repeat("\t", w.depth)
}

// BeginGraph opens the top-level directed graph with left-to-right
// layout and edge concentration, the fixed rendering defaults.
func (w *Writer) BeginGraph() {
	w.buf.WriteString("digraph G {\n")
	w.depth++
	fmt.Fprintf(&w.buf, "%srankdir=LR;\n", w.indent())
	fmt.Fprintf(&w.buf, "%sconcentrate=true;\n", w.indent())
}

// EndGraph closes the top-level graph.
func (w *Writer) EndGraph() {
	w.depth--
	w.buf.WriteString("}\n")
}

// BeginCluster opens a labeled cluster subgraph. The id must carry the
// "cluster" prefix for Graphviz to draw a box around the members.
func (w *Writer) BeginCluster(id, label string) {
	fmt.Fprintf(&w.buf, "%ssubgraph %s {\n", w.indent(), id)
	w.depth++
	fmt.Fprintf(&w.buf, "%slabel=%q;\n", w.indent(), label)
}

// EndCluster closes the current cluster subgraph.
func (w *Writer) EndCluster() {
	w.depth--
	fmt.Fprintf(&w.buf, "%s}\n", w.indent())
}

// Node emits a node entry with a display label.
func (w *Writer) Node(id, label string) {
	fmt.Fprintf(&w.buf, "%s%s [label=%q];\n", w.indent(), id, label)
}

// InvisNode emits an invisible node, used as the synthetic endpoint of
// unconnected channels.
func (w *Writer) InvisNode(id string) {
	fmt.Fprintf(&w.buf, "%s%s [style=invis];\n", w.indent(), id)
}

// Edge emits one rendered connection. Line thickness follows penwidth
// to emphasize fan-out.
func (w *Writer) Edge(src, dst, label, color string, penwidth int) {
	fmt.Fprintf(&w.buf, "%s%s -> %s [label=%q, color=%s, fontcolor=%s, penwidth=%d];\n",
		w.indent(), src, dst, label, color, color, penwidth)
}

// Raw writes a preformatted fragment, indented to the current depth.
// Used for the HTML-table legend nodes that the attribute helpers
// cannot express.
func (w *Writer) Raw(s string) {
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		fmt.Fprintf(&w.buf, "%s%s\n", w.indent(), line)
	}
}

// String returns the document written so far.
func (w *Writer) String() string { return w.buf.String() }
