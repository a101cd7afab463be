// Package discovery defines the boundary to the node-discovery
// collaborator and the snapshot interchange format the CLI consumes.
//
// The rendering core never performs network discovery itself: it drains
// a [Provider] once per pass. The concrete provider shipped here reads
// a JSON [Snapshot] captured by an external introspection tool; live
// providers implement the same interface.
package discovery

import (
	"context"

	"github.com/topoviz/topoviz/pkg/topo"
)

// NodeName describes one discovered node: its short name plus the
// namespace it lives in. The root namespace is the empty string.
type NodeName struct {
	Name      string
	Namespace string
	Hidden    bool
}

// FullName returns the fully-qualified node name.
func (n NodeName) FullName() string {
	if n.Namespace == "" || n.Namespace == "/" {
		return "/" + n.Name
	}
	return n.Namespace + "/" + n.Name
}

// Provider supplies the discovered nodes and, per node and role, the
// channel endpoint records they communicate on. Implementations own any
// connection state; Close releases it on every exit path of a pass.
//
// A failed call is fatal to the pass: callers abort without emitting a
// partial document. Providers perform no retries; any retry policy
// belongs behind this interface.
type Provider interface {
	// ListNodes returns the discovered nodes in a stable order.
	// Hidden nodes are filtered out unless includeHidden is set.
	ListNodes(ctx context.Context, includeHidden bool) ([]NodeName, error)

	// ListEndpoints returns the endpoint records of one node for one
	// role. Hidden endpoints are filtered out unless includeHidden is
	// set.
	ListEndpoints(ctx context.Context, node NodeName, role topo.Role, includeHidden bool) ([]topo.Channel, error)

	// Close releases the provider's resources. Safe to call more than
	// once.
	Close() error
}
