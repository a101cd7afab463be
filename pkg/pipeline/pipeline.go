// Package pipeline runs one complete rendering pass: drain the
// discovery provider, aggregate the communication graph, and serialize
// the DOT document.
//
// A pass is single-threaded and synchronous: the discovery query set is
// fully drained, fully aggregated, and fully serialized before any
// output exists. The document is returned as one string so callers can
// flush it atomically; a failed pass emits nothing.
package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/topoviz/topoviz/pkg/discovery"
	"github.com/topoviz/topoviz/pkg/errors"
	"github.com/topoviz/topoviz/pkg/observability"
	"github.com/topoviz/topoviz/pkg/render/dot"
	"github.com/topoviz/topoviz/pkg/topo"
)

// Options configures a rendering pass. The zero value selects every
// category with the default palette and no type or hidden-entity
// display.
type Options struct {
	// IncludeHidden includes hidden nodes and endpoints.
	IncludeHidden bool

	// ShowTypes appends the first declared type to connection labels.
	ShowTypes bool

	// ShowUnconnected renders one-sided channels with a synthetic
	// invisible endpoint instead of dropping them.
	ShowUnconnected bool

	// Categories selects which channel kinds to graph. Empty selects
	// all of them.
	Categories []topo.Category

	// ExtraIgnore extends the built-in infrastructure denylist.
	ExtraIgnore []string

	// Colors overrides the category palette. The zero value uses the
	// default blue/orange/olive.
	Colors topo.Colors

	// Logger receives progress output. Nil uses log.Default().
	Logger *log.Logger
}

// setDefaults fills zero-value fields.
func (o *Options) setDefaults() {
	if len(o.Categories) == 0 {
		o.Categories = topo.AllCategories
	}
	if o.Colors == (topo.Colors{}) {
		o.Colors = topo.DefaultColors
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
}

// selected reports whether a category was requested.
func (o *Options) selected(c topo.Category) bool {
	for _, s := range o.Categories {
		if s == c {
			return true
		}
	}
	return false
}

// Stats describes one completed pass. The stage durations cover
// disjoint windows: discovery spans the node list and the per-node
// endpoint drain, aggregation the in-memory finish, serialization the
// document assembly.
type Stats struct {
	NodeCount     int // discovered nodes
	ChannelCount  int // distinct channel names after the ignore filter
	Unconnected   int // channels missing a source or destination side
	DiscoveryTime time.Duration
	AggregateTime time.Duration
	SerializeTime time.Duration
}

// Result is the output of one pass.
type Result struct {
	Document string
	Stats    Stats
}

// Run executes one rendering pass against the provider. The provider
// is treated as a scoped acquisition: it is closed on every exit path,
// including failures. A discovery failure aborts the pass; no partial
// document is returned. An empty discovery set yields a legend-only
// document.
func Run(ctx context.Context, p discovery.Provider, opts Options) (*Result, error) {
	defer p.Close()
	opts.setDefaults()
	logger := opts.Logger

	var ids topo.IDGen
	var result Result

	// Stage 1: discovery. The per-node endpoint queries below are
	// discovery traffic too, so the whole drain runs on the discovery
	// clock; the in-line fold into the aggregator is negligible next
	// to the queries.
	discoveryStart := time.Now()
	observability.Pass().OnDiscoveryStart(ctx)
	names, err := p.ListNodes(ctx, opts.IncludeHidden)
	if err != nil {
		observability.Pass().OnDiscoveryComplete(ctx, 0, time.Since(discoveryStart), err)
		return nil, errors.Wrap(errors.ErrCodeDiscovery, err, "listing nodes")
	}

	nodes := make([]*topo.Node, len(names))
	for i, nn := range names {
		nodes[i] = &topo.Node{
			Name:      nn.Name,
			Namespace: nn.Namespace,
			ID:        ids.Next("node_"),
			Hidden:    nn.Hidden,
		}
	}

	agg := topo.NewAggregator(&ids, topo.NewIgnoreList(opts.ExtraIgnore...), opts.Colors)

	for i, nn := range names {
		for _, cat := range topo.AllCategories {
			if !opts.selected(cat) {
				continue
			}
			for _, role := range topo.RolesFor(cat) {
				channels, err := p.ListEndpoints(ctx, nn, role, opts.IncludeHidden)
				if err != nil {
					observability.Pass().OnDiscoveryComplete(ctx, len(names), time.Since(discoveryStart), err)
					return nil, errors.Wrap(errors.ErrCodeDiscovery, err,
						"listing %s endpoints of %s", role, nn.FullName())
				}
				for _, ch := range channels {
					agg.Add(nodes[i].ID, role, ch)
				}
			}
		}
	}

	result.Stats.DiscoveryTime = time.Since(discoveryStart)
	observability.Pass().OnDiscoveryComplete(ctx, len(names), result.Stats.DiscoveryTime, nil)

	// Stage 2: finish the aggregation in memory: edge ordering,
	// unconnected accounting, placeholder resolution.
	observability.Pass().OnAggregateStart(ctx, len(nodes))
	aggregateStart := time.Now()
	edges := agg.Edges()
	for _, e := range edges {
		if !e.Connected() {
			result.Stats.Unconnected++
		}
	}

	var blanks []string
	if opts.ShowUnconnected {
		blanks = topo.ResolveUnconnected(edges, &ids)
	}
	result.Stats.AggregateTime = time.Since(aggregateStart)
	observability.Pass().OnAggregateComplete(ctx, len(edges), result.Stats.AggregateTime)

	logger.Debug("aggregated channels",
		"nodes", len(nodes),
		"channels", len(edges),
		"unconnected", result.Stats.Unconnected)

	// Stage 3: serialization.
	serializeStart := time.Now()
	observability.Pass().OnSerializeStart(ctx)
	groups := topo.GroupByNamespace(nodes)
	result.Document = dot.Document(groups, edges, blanks, &ids, dot.Options{
		ShowTypes: opts.ShowTypes,
		Colors:    opts.Colors,
	})
	result.Stats.SerializeTime = time.Since(serializeStart)
	observability.Pass().OnSerializeComplete(ctx, len(result.Document), result.Stats.SerializeTime)

	result.Stats.NodeCount = len(nodes)
	result.Stats.ChannelCount = len(edges)

	return &result, nil
}

// ParseCategories converts --select style names into categories.
// Names are case-insensitive; duplicates collapse.
func ParseCategories(names []string) ([]topo.Category, error) {
	var cats []topo.Category
	seen := make(map[topo.Category]bool)
	for _, name := range names {
		var c topo.Category
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "topics":
			c = topo.CategoryTopics
		case "services":
			c = topo.CategoryServices
		case "actions":
			c = topo.CategoryActions
		default:
			return nil, errors.New(errors.ErrCodeInvalidCategory,
				"invalid category: %s (must be 'topics', 'services', or 'actions')", name)
		}
		if !seen[c] {
			seen[c] = true
			cats = append(cats, c)
		}
	}
	return cats, nil
}

// Fingerprint summarizes the options that affect document content,
// used in render-cache keys.
func (o Options) Fingerprint() string {
	o.setDefaults()
	var b strings.Builder
	for _, c := range o.Categories {
		b.WriteString(c.String())
		b.WriteByte(',')
	}
	if o.IncludeHidden {
		b.WriteString("hidden,")
	}
	if o.ShowTypes {
		b.WriteString("types,")
	}
	if o.ShowUnconnected {
		b.WriteString("unconnected,")
	}
	b.WriteString(strings.Join(o.ExtraIgnore, ","))
	b.WriteString(o.Colors.Topics + o.Colors.Services + o.Colors.Actions)
	return b.String()
}
