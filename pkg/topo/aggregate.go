package topo

// Aggregator folds endpoint records into one edge per channel name.
// All channel kinds share a single namespace of names, so a service and
// a topic with the same name merge into one edge; the first record to
// arrive fixes the edge's color and type list. This is accepted
// behavior, not detected or reported.
//
// Aggregating by name rather than by (source, destination) pair lets
// fan-out and fan-in collapse into a single edge whose Src and Dst
// lists capture full connectivity; the serializer expands them into the
// complete bipartite set of rendered connections.
//
// An Aggregator is built once per rendering pass and is not safe for
// concurrent use.
type Aggregator struct {
	ids    *IDGen
	ignore *IgnoreList
	colors Colors
	edges  map[string]*Edge
	order  []string // channel names in first-seen order
}

// NewAggregator creates an aggregator drawing edge identifiers from ids
// and suppressing channels matched by ignore. A nil ignore list
// suppresses only the default denylist.
func NewAggregator(ids *IDGen, ignore *IgnoreList, colors Colors) *Aggregator {
	if ignore == nil {
		ignore = NewIgnoreList()
	}
	return &Aggregator{
		ids:    ids,
		ignore: ignore,
		colors: colors,
		edges:  make(map[string]*Edge),
	}
}

// Add records that nodeID participates in ch with the given role.
// Records matching the ignore list contribute nothing. The node
// identifier is appended to the edge's source list for outgoing roles
// and to the destination list otherwise; entries are never deduplicated.
func (a *Aggregator) Add(nodeID string, role Role, ch Channel) {
	if a.ignore.Match(ch.Name) {
		return
	}

	e, ok := a.edges[ch.Name]
	if !ok {
		e = &Edge{
			Channel: ch,
			ID:      a.ids.Next("edge_"),
			Color:   a.colors.For(role.Category()),
		}
		a.edges[ch.Name] = e
		a.order = append(a.order, ch.Name)
	}

	if role.Outgoing() {
		e.Src = append(e.Src, nodeID)
	} else {
		e.Dst = append(e.Dst, nodeID)
	}
}

// Edges returns the aggregated edges in first-seen channel order.
func (a *Aggregator) Edges() []*Edge {
	out := make([]*Edge, len(a.order))
	for i, name := range a.order {
		out[i] = a.edges[name]
	}
	return out
}

// Len returns the number of distinct channels aggregated so far.
func (a *Aggregator) Len() int { return len(a.order) }
