package topo

// ResolveUnconnected gives every one-sided edge a synthetic endpoint so
// it still renders: an edge with no source gets an invisible reader
// placeholder, an edge with no destination an invisible writer
// placeholder. The placeholder identifiers are returned so the
// serializer can emit them as invisible nodes.
//
// Callers that do not want unconnected channels rendered skip this step
// and the serializer drops one-sided edges instead.
func ResolveUnconnected(edges []*Edge, ids *IDGen) []string {
	var blanks []string
	for _, e := range edges {
		if len(e.Src) == 0 {
			blank := ids.Next("blank_r_")
			e.Src = append(e.Src, blank)
			blanks = append(blanks, blank)
		}
		if len(e.Dst) == 0 {
			blank := ids.Next("blank_w_")
			e.Dst = append(e.Dst, blank)
			blanks = append(blanks, blank)
		}
	}
	return blanks
}
