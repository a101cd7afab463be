package topo

import "sort"

// Group is the set of nodes sharing one namespace, used to render a
// visual cluster. The root namespace ("") never becomes a cluster; its
// members render at the top level.
type Group struct {
	Namespace string
	Nodes     []*Node
}

// GroupByNamespace partitions nodes into namespace groups. Groups are
// returned sorted by namespace so repeated passes over the same
// discovery snapshot produce identical documents; node order within a
// group follows the input order.
func GroupByNamespace(nodes []*Node) []Group {
	byNS := make(map[string][]*Node)
	for _, n := range nodes {
		byNS[n.Namespace] = append(byNS[n.Namespace], n)
	}

	namespaces := make([]string, 0, len(byNS))
	for ns := range byNS {
		namespaces = append(namespaces, ns)
	}
	sort.Strings(namespaces)

	groups := make([]Group, 0, len(namespaces))
	for _, ns := range namespaces {
		groups = append(groups, Group{Namespace: ns, Nodes: byNS[ns]})
	}
	return groups
}
