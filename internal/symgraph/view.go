package symgraph

// View is the projection object ViewPlanner (§4.2 pass 10) materializes for
// every ViewOnly(I) group on a type: a named scope grouping all members
// tagged for that interface. Emitted under the scope View(T, I) per the
// glossary.
type View struct {
	TypeID      string
	InterfaceID string
	Members     []Member
	TsEmitName  string
}

func NewView(typeID, interfaceID string, members []Member) View {
	return View{TypeID: typeID, InterfaceID: interfaceID, Members: members}
}

// Scope is the stable identity of a View used by NameReserver's View scope
// kind (spec.md §4.3): per (type, interface-stable-id).
func (v View) Scope() string {
	return v.TypeID + "#" + v.InterfaceID
}
