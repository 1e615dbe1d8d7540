package shapepasses

import (
	"sort"

	"github.com/tsoniclang/generatedts/internal/symgraph"
)

// ViewPlanner is pass 10 (spec.md §4.2.10): for every ViewOnly(I) group on
// type T, materialize a view object — a named projection under the scope
// View(T, I) — grouping all members tagged for that interface.
func ViewPlanner(_ Context, g *symgraph.SymbolGraph) *symgraph.SymbolGraph {
	return g.MapTypes(func(_ symgraph.Namespace, t symgraph.Type) symgraph.Type {
		groups := map[string][]symgraph.Member{}
		var order []string
		for _, m := range t.Members {
			if !m.Tag.IsViewOnly() {
				continue
			}
			if _, ok := groups[m.Tag.InterfaceID]; !ok {
				order = append(order, m.Tag.InterfaceID)
			}
			groups[m.Tag.InterfaceID] = append(groups[m.Tag.InterfaceID], m)
		}
		if len(groups) == 0 {
			return t
		}
		sort.Strings(order)
		views := make([]symgraph.View, 0, len(order))
		for _, ifaceID := range order {
			views = append(views, symgraph.NewView(t.CanonicalID, ifaceID, groups[ifaceID]))
		}
		return t.WithViews(views)
	})
}
