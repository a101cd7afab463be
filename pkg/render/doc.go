// Package render groups the visualization backends for topology graphs.
//
// # Overview
//
// The [dot] subpackage is the only backend today. It serializes an
// aggregated communication graph as a Graphviz DOT document and can lay
// the document out in-process to SVG or PNG via goccy/go-graphviz, so no
// external dot binary is needed.
//
//	doc := dot.Document(groups, edges, blanks, ids, dot.Options{})
//	svg, err := dot.RenderSVG(ctx, doc)
//	png, err := dot.RenderPNG(ctx, doc)
//
// [dot]: github.com/topoviz/topoviz/pkg/render/dot
package render
