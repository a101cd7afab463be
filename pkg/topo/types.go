package topo

import "strconv"

// Category groups the six channel roles into the three rendered kinds.
// Each category draws with its own color in the output document.
type Category int

const (
	CategoryTopics Category = iota
	CategoryServices
	CategoryActions
)

// String returns the category name as used in --select and config files.
func (c Category) String() string {
	switch c {
	case CategoryTopics:
		return "topics"
	case CategoryServices:
		return "services"
	case CategoryActions:
		return "actions"
	default:
		return "unknown"
	}
}

// AllCategories lists every category in rendering order.
var AllCategories = []Category{CategoryTopics, CategoryServices, CategoryActions}

// Role identifies which side of a channel a node sits on.
type Role int

const (
	RoleSubscriber Role = iota
	RolePublisher
	RoleServiceClient
	RoleServiceServer
	RoleActionClient
	RoleActionServer
)

// Category returns the category a role belongs to.
func (r Role) Category() Category {
	switch r {
	case RoleSubscriber, RolePublisher:
		return CategoryTopics
	case RoleServiceClient, RoleServiceServer:
		return CategoryServices
	default:
		return CategoryActions
	}
}

// Outgoing reports whether the role is a source side of a channel.
// Publishers and clients originate traffic; subscribers and servers
// receive it.
func (r Role) Outgoing() bool {
	switch r {
	case RolePublisher, RoleServiceClient, RoleActionClient:
		return true
	default:
		return false
	}
}

// String returns a short role name for logs and errors.
func (r Role) String() string {
	switch r {
	case RoleSubscriber:
		return "subscriber"
	case RolePublisher:
		return "publisher"
	case RoleServiceClient:
		return "service-client"
	case RoleServiceServer:
		return "service-server"
	case RoleActionClient:
		return "action-client"
	case RoleActionServer:
		return "action-server"
	default:
		return "unknown"
	}
}

// RolesFor returns the roles queried for a category, in query order.
// The order matches the discovery drain order: receivers of a category
// are listed before senders for topics, senders first for services and
// actions.
func RolesFor(c Category) []Role {
	switch c {
	case CategoryTopics:
		return []Role{RoleSubscriber, RolePublisher}
	case CategoryServices:
		return []Role{RoleServiceClient, RoleServiceServer}
	default:
		return []Role{RoleActionClient, RoleActionServer}
	}
}

// Colors maps categories to Graphviz color names.
type Colors struct {
	Topics   string
	Services string
	Actions  string
}

// DefaultColors is the fixed palette: topics blue, services orange,
// actions olive.
var DefaultColors = Colors{Topics: "blue", Services: "orange", Actions: "olive"}

// For returns the color for a category.
func (c Colors) For(cat Category) string {
	switch cat {
	case CategoryTopics:
		return c.Topics
	case CategoryServices:
		return c.Services
	default:
		return c.Actions
	}
}

// Node is one communicating entity discovered in the system.
// Nodes are created once per rendering pass and never mutated.
type Node struct {
	Name      string // short name, no namespace
	Namespace string // path prefix, "" for the root namespace
	ID        string // allocated graph identifier, stable for the pass
	Hidden    bool
}

// FullName returns the fully-qualified node name (namespace + short name).
func (n Node) FullName() string {
	if n.Namespace == "" || n.Namespace == "/" {
		return "/" + n.Name
	}
	return n.Namespace + "/" + n.Name
}

// Channel is one endpoint record supplied by the discovery collaborator:
// a named channel together with its declared type strings.
type Channel struct {
	Name   string
	Types  []string
	Hidden bool
}

// FirstType returns the first declared type string, or "" when the
// record carries none. Only the first type is ever rendered.
func (c Channel) FirstType() string {
	if len(c.Types) == 0 {
		return ""
	}
	return c.Types[0]
}

// Edge is the per-channel-name accumulation of every contributing
// source and destination node identifier. Src and Dst are append-only
// during aggregation and may contain duplicates when a node
// participates multiply.
type Edge struct {
	Channel Channel  // the record that seeded the edge (used for its types)
	Src     []string // source node identifiers, in contribution order
	Dst     []string // destination node identifiers, in contribution order
	ID      string   // allocated edge identifier
	Color   string   // category color, fixed at creation
}

// Connected reports whether the edge has at least one entry on each side.
func (e *Edge) Connected() bool {
	return len(e.Src) > 0 && len(e.Dst) > 0
}

// IDGen issues process-unique identifiers formed from a prefix and a
// strictly increasing counter. No two calls return the same string,
// regardless of prefix. The zero value is ready to use; generators are
// not safe for concurrent use and each rendering pass should own its own
// instance so that repeated passes in one process do not share state.
type IDGen struct {
	n int
}

// Next returns prefix concatenated with the next counter value.
func (g *IDGen) Next(prefix string) string {
	id := prefix + strconv.Itoa(g.n)
	g.n++
	return id
}
