package discovery

import (
	"context"

	"github.com/topoviz/topoviz/pkg/topo"
)

// snapshotProvider serves a captured snapshot through the Provider
// interface. It holds no connection state; Close is a no-op.
type snapshotProvider struct {
	snap *Snapshot
}

// NewProvider wraps a snapshot in a Provider.
func NewProvider(snap *Snapshot) Provider {
	return &snapshotProvider{snap: snap}
}

func (p *snapshotProvider) ListNodes(ctx context.Context, includeHidden bool) ([]NodeName, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	nodes := make([]NodeName, 0, len(p.snap.Nodes))
	for _, r := range p.snap.Nodes {
		if r.Hidden && !includeHidden {
			continue
		}
		nodes = append(nodes, NodeName{Name: r.Name, Namespace: r.Namespace, Hidden: r.Hidden})
	}
	return nodes, nil
}

func (p *snapshotProvider) ListEndpoints(ctx context.Context, node NodeName, role topo.Role, includeHidden bool) ([]topo.Channel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i := range p.snap.Nodes {
		r := &p.snap.Nodes[i]
		if r.Name != node.Name || r.Namespace != node.Namespace {
			continue
		}
		eps := r.endpoints(role)
		channels := make([]topo.Channel, 0, len(eps))
		for _, ep := range eps {
			if ep.Hidden && !includeHidden {
				continue
			}
			channels = append(channels, topo.Channel{Name: ep.Name, Types: ep.Types, Hidden: ep.Hidden})
		}
		return channels, nil
	}
	// Unknown node: nothing to report. The node list and endpoint
	// queries come from the same snapshot, so this only happens when
	// callers mix providers.
	return nil, nil
}

func (p *snapshotProvider) Close() error { return nil }
