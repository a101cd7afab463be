// Package dot serializes an aggregated communication graph into
// Graphviz DOT and optionally lays it out in-process.
//
// # Document structure
//
// [Document] produces one directed graph per rendering pass, in a fixed
// order: graph header (left-to-right layout, edge concentration), the
// static legend cluster, one cluster per non-empty namespace containing
// its member nodes, the invisible placeholder nodes for unconnected
// channels, and finally one connection per (source, destination) pair
// of every edge. Connection labels carry the channel name, a
// parenthesized source count when more than one source contributes, and
// the first declared type in brackets when type display is enabled.
//
// The whole document is built in memory; callers flush it atomically so
// a failed pass never emits a partial graph.
//
// # Rendering
//
// [RenderSVG] and [RenderPNG] lay the DOT text out with
// [github.com/goccy/go-graphviz], avoiding a dependency on an external
// dot binary.
package dot
