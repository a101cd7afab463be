package discovery

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/topoviz/topoviz/pkg/errors"
	"github.com/topoviz/topoviz/pkg/topo"
)

// Endpoint is one channel endpoint in a snapshot.
type Endpoint struct {
	Name   string   `json:"name"`
	Types  []string `json:"types,omitempty"`
	Hidden bool     `json:"hidden,omitempty"`
}

// NodeRecord is one node in a snapshot together with every endpoint it
// was observed to communicate on, split by role.
type NodeRecord struct {
	Name      string `json:"name"`
	Namespace string `json:"namespace,omitempty"`
	Hidden    bool   `json:"hidden,omitempty"`

	Publishers     []Endpoint `json:"publishers,omitempty"`
	Subscribers    []Endpoint `json:"subscribers,omitempty"`
	ServiceClients []Endpoint `json:"service_clients,omitempty"`
	ServiceServers []Endpoint `json:"service_servers,omitempty"`
	ActionClients  []Endpoint `json:"action_clients,omitempty"`
	ActionServers  []Endpoint `json:"action_servers,omitempty"`
}

// endpoints returns the record's endpoint list for a role.
func (r *NodeRecord) endpoints(role topo.Role) []Endpoint {
	switch role {
	case topo.RolePublisher:
		return r.Publishers
	case topo.RoleSubscriber:
		return r.Subscribers
	case topo.RoleServiceClient:
		return r.ServiceClients
	case topo.RoleServiceServer:
		return r.ServiceServers
	case topo.RoleActionClient:
		return r.ActionClients
	default:
		return r.ActionServers
	}
}

// Snapshot is one captured discovery pass. It is collaborator input to
// the rendering core, not core output; the core itself persists
// nothing between passes.
type Snapshot struct {
	ID         string       `json:"id,omitempty"`
	CapturedAt time.Time    `json:"captured_at,omitempty"`
	Nodes      []NodeRecord `json:"nodes"`
}

// NewSnapshot wraps node records in a snapshot with a fresh capture id
// and timestamp.
func NewSnapshot(nodes []NodeRecord) *Snapshot {
	return &Snapshot{
		ID:         uuid.NewString(),
		CapturedAt: time.Now().UTC(),
		Nodes:      nodes,
	}
}

// Validate checks every node and endpoint name in the snapshot.
// A validation failure indicates a corrupt or hand-edited file.
func (s *Snapshot) Validate() error {
	for i := range s.Nodes {
		r := &s.Nodes[i]
		if err := errors.ValidateNodeName(r.Name); err != nil {
			return fmt.Errorf("node %d: %w", i, err)
		}
		if err := errors.ValidateNamespace(r.Namespace); err != nil {
			return fmt.Errorf("node %s: %w", r.Name, err)
		}
		for _, role := range []topo.Role{
			topo.RolePublisher, topo.RoleSubscriber,
			topo.RoleServiceClient, topo.RoleServiceServer,
			topo.RoleActionClient, topo.RoleActionServer,
		} {
			for _, ep := range r.endpoints(role) {
				if err := errors.ValidateChannelName(ep.Name); err != nil {
					return fmt.Errorf("node %s %s: %w", r.Name, role, err)
				}
			}
		}
	}
	return nil
}

// ReadSnapshot decodes a snapshot from r and validates it.
func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSnapshot, err, "decode snapshot")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ReadSnapshotFile reads and validates a snapshot file. The path "-"
// reads from stdin.
func ReadSnapshotFile(path string) (*Snapshot, error) {
	if path == "-" {
		return ReadSnapshot(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "snapshot %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadSnapshot(f)
}

// WriteSnapshot encodes the snapshot as indented JSON.
func (s *Snapshot) WriteSnapshot(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// WriteSnapshotFile writes the snapshot to a file with 0644 permissions.
func (s *Snapshot) WriteSnapshotFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return s.WriteSnapshot(f)
}
