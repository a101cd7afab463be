// Package pkg provides the core libraries for topoviz topology visualization.
//
// # Overview
//
// Topoviz renders the communication topology of a distributed node graph
// (topics, services, actions) as a Graphviz document. The pkg directory is
// organized into five main areas:
//
//  1. [topo] - Domain logic (grouping, aggregation, unconnected resolution)
//  2. [discovery] - Snapshot format and the discovery provider boundary
//  3. [render/dot] - DOT serialization and in-process SVG/PNG layout
//  4. [pipeline] - Orchestration (discover → aggregate → serialize)
//  5. [cache] - Render artifact storage between invocations
//
// # Architecture
//
// The typical data flow through topoviz:
//
//	Topology Snapshot (file or stdin)
//	         ↓
//	    [discovery] package (provider over the snapshot)
//	         ↓
//	    [topo] package (ignore filter + edge aggregation)
//	         ↓
//	    [render/dot] package (DOT document, optional SVG/PNG)
//	         ↓
//	    stdout / file / HTTP preview
//
// # Quick Start
//
// Run one rendering pass over a snapshot:
//
//	import (
//	    "context"
//	    "github.com/topoviz/topoviz/pkg/discovery"
//	    "github.com/topoviz/topoviz/pkg/pipeline"
//	)
//
//	snap, _ := discovery.ReadSnapshotFile("topology.json")
//	res, _ := pipeline.Run(context.Background(), discovery.NewProvider(snap), pipeline.Options{
//	    ShowTypes: true,
//	})
//	fmt.Print(res.Document)
//
// # Main Packages
//
// [topo] - Communication graph aggregation. Folds per-node endpoint records
// into edges keyed by channel name, applies the infrastructure ignore list,
// groups nodes by namespace, and resolves one-sided channels with invisible
// placeholders.
//
// [discovery] - The boundary to the discovery collaborator. Defines the
// Provider interface and a JSON snapshot format read by every command.
//
// [render/dot] - Serializes the aggregated graph as a DOT document
// (namespace clusters, category-colored connections, static legend) and
// optionally lays it out in-process via Graphviz.
//
// [pipeline] - One complete pass: drain discovery, aggregate, serialize.
// A failed pass emits nothing; the document is returned whole.
//
// [cache] - File-backed artifact cache for rendered SVG/PNG, keyed by
// snapshot hash and options.
//
// [errors] - Structured errors with machine-readable codes and name
// validation for nodes, namespaces, and channels.
//
// [observability] - Hook registry for pass, cache, and HTTP events with
// no-op defaults.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/topo/...       # Specific package
//
// [topo]: https://pkg.go.dev/github.com/topoviz/topoviz/pkg/topo
// [discovery]: https://pkg.go.dev/github.com/topoviz/topoviz/pkg/discovery
// [render/dot]: https://pkg.go.dev/github.com/topoviz/topoviz/pkg/render/dot
// [pipeline]: https://pkg.go.dev/github.com/topoviz/topoviz/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/topoviz/topoviz/pkg/cache
// [errors]: https://pkg.go.dev/github.com/topoviz/topoviz/pkg/errors
// [observability]: https://pkg.go.dev/github.com/topoviz/topoviz/pkg/observability
package pkg
