// Package topo builds the aggregated communication graph of a
// distributed node system.
//
// The package implements the in-memory half of a rendering pass: nodes
// discovered by a collaborator are grouped into namespace clusters, and
// the raw per-node endpoint records (topic publish/subscribe, service
// client/server, action client/server) are folded into one [Edge] per
// channel name. Edges keep the full list of contributing source and
// destination node identifiers so a single edge captures fan-out and
// fan-in completely.
//
// A pass looks like:
//
//	var ids topo.IDGen
//	agg := topo.NewAggregator(&ids, nil, topo.DefaultColors)
//	for _, n := range nodes {
//	    for _, role := range topo.RolesFor(topo.CategoryTopics) {
//	        for _, ch := range endpointsOf(n, role) {
//	            agg.Add(n.ID, role, ch)
//	        }
//	    }
//	}
//	blanks := topo.ResolveUnconnected(agg.Edges(), &ids)
//
// All state is created per pass and discarded with it; nothing in this
// package is safe for concurrent use.
package topo
