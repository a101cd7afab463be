package dot

import (
	"fmt"

	"github.com/topoviz/topoviz/pkg/topo"
)

// Options configures document serialization.
type Options struct {
	// ShowTypes appends the first declared type string to each
	// connection label, in brackets.
	ShowTypes bool

	// Colors is the category palette used by the legend. Individual
	// edges carry their color from aggregation.
	Colors topo.Colors
}

// Document serializes the aggregated graph: header, legend, one cluster
// per non-empty namespace, invisible placeholder nodes, and one
// connection per (source, destination) pair of every connected edge.
// Edges left one-sided by a disabled unconnected resolver are skipped.
//
// An empty discovery set degenerates to a minimal valid document
// containing only the legend.
func Document(groups []topo.Group, edges []*topo.Edge, blanks []string, ids *topo.IDGen, opts Options) string {
	w := NewWriter()
	w.BeginGraph()

	writeLegend(w, ids, opts.Colors)

	for _, g := range groups {
		if g.Namespace != "" {
			w.BeginCluster(ids.Next("cluster_"), g.Namespace)
		}
		for _, n := range g.Nodes {
			w.Node(n.ID, n.Name)
		}
		if g.Namespace != "" {
			w.EndCluster()
		}
	}

	for _, blank := range blanks {
		w.InvisNode(blank)
	}

	for _, e := range edges {
		if !e.Connected() {
			continue
		}
		label := e.Channel.Name
		if len(e.Src) > 1 {
			// Fan-out multiplicity: always the source count, even on
			// the reverse direction of a fan-in edge.
			label = fmt.Sprintf("%s(%d)", label, len(e.Src))
		}
		if opts.ShowTypes {
			if t := e.Channel.FirstType(); t != "" {
				label = fmt.Sprintf("%s [%s]", label, t)
			}
		}
		for _, src := range e.Src {
			for _, dst := range e.Dst {
				w.Edge(src, dst, label, e.Color, len(e.Src))
			}
		}
	}

	w.EndGraph()
	return w.String()
}

// writeLegend emits the static legend cluster: a two-column table of
// the three categories joined by one colored connection per row.
func writeLegend(w *Writer, ids *topo.IDGen, colors topo.Colors) {
	w.BeginCluster(ids.Next("cluster_"), "legend")

	keyID := ids.Next("key_")
	key2ID := ids.Next("key2_")

	w.Raw(keyID + ` [shape=plaintext, label=<<table border="0" cellpadding="2" cellspacing="0" cellborder="0">
	<tr><td align="right" port="i1">Topics</td></tr>
	<tr><td align="right" port="i2">Services</td></tr>
	<tr><td align="right" port="i3">Actions</td></tr>
	</table>>];`)
	w.Raw(key2ID + ` [shape=plaintext, label=<<table border="0" cellpadding="2" cellspacing="0" cellborder="0">
	<tr><td port="i1">&nbsp;</td></tr>
	<tr><td port="i2">&nbsp;</td></tr>
	<tr><td port="i3">&nbsp;</td></tr>
	</table>>];`)

	w.Raw(fmt.Sprintf("%s:i1:e -> %s:i1:w [color=%s];", keyID, key2ID, colors.Topics))
	w.Raw(fmt.Sprintf("%s:i2:e -> %s:i2:w [color=%s];", keyID, key2ID, colors.Services))
	w.Raw(fmt.Sprintf("%s:i3:e -> %s:i3:w [color=%s];", keyID, key2ID, colors.Actions))

	w.EndCluster()
}
