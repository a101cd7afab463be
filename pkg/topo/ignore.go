package topo

import "strings"

// DefaultIgnore lists infrastructure-internal channels that never
// appear in the document: the log aggregation topic, the parameter
// event topic, and the parameter introspection services every node
// exposes.
var DefaultIgnore = []string{
	"/rosout",
	"/parameter_events",
	"describe_parameters",
	"get_parameter_types",
	"list_parameters",
	"set_parameters",
	"get_parameters",
	"set_parameters_atomically",
}

// IgnoreList suppresses channels by name. A channel matches when its
// full name, or the last path segment of its full name, is in the list.
type IgnoreList struct {
	names map[string]struct{}
}

// NewIgnoreList builds an ignore list from the default denylist plus
// any extra entries (typically from the config file).
func NewIgnoreList(extra ...string) *IgnoreList {
	names := make(map[string]struct{}, len(DefaultIgnore)+len(extra))
	for _, n := range DefaultIgnore {
		names[n] = struct{}{}
	}
	for _, n := range extra {
		names[n] = struct{}{}
	}
	return &IgnoreList{names: names}
}

// Match reports whether the channel name should be suppressed.
func (l *IgnoreList) Match(name string) bool {
	if _, ok := l.names[name]; ok {
		return true
	}
	last := name[strings.LastIndex(name, "/")+1:]
	_, ok := l.names[last]
	return ok
}
