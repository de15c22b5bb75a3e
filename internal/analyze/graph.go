package analyze

// TypeGraph holds all declared types of a program snapshot. It implements
// Facts and is never mutated after construction.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all declared types.
	Types map[TypeID]*TypeInfo
	// External lists referenced types that are not declared in the program
	// (types coming from referenced libraries).
	External map[TypeID]struct{}
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		External: make(map[TypeID]struct{}),
	}
}

// Add registers a declared type, replacing any previous entry with the same ID.
func (g *TypeGraph) Add(info *TypeInfo) {
	g.Types[info.ID] = info
}

// AddExternal registers a referenced library type.
func (g *TypeGraph) AddExternal(ids ...TypeID) {
	for _, id := range ids {
		g.External[id] = struct{}{}
	}
}

// Type returns the TypeInfo for a given TypeID.
func (g *TypeGraph) Type(id TypeID) (*TypeInfo, bool) {
	info, ok := g.Types[id]
	return info, ok
}

// LookupType resolves a metadata name against declared and external types.
func (g *TypeGraph) LookupType(metadataName string) (TypeID, bool) {
	id, err := ParseTypeID(metadataName)
	if err != nil {
		return TypeID{}, false
	}

	if _, ok := g.Types[id]; ok {
		return id, true
	}

	if _, ok := g.External[id]; ok {
		return id, true
	}

	return TypeID{}, false
}

// Implements reports whether ref is iface or implements it. The interfaces
// reported on the reference are trusted first; declared types are then
// searched through their interface and base chains.
func (g *TypeGraph) Implements(ref TypeRef, iface TypeID) bool {
	if ref.IsError {
		return false
	}

	if ref.ID == iface {
		return true
	}

	for _, id := range ref.Interfaces {
		if id == iface {
			return true
		}
	}

	return g.declaredImplements(ref.ID, iface, make(map[TypeID]struct{}))
}

func (g *TypeGraph) declaredImplements(id, iface TypeID, visited map[TypeID]struct{}) bool {
	if _, seen := visited[id]; seen {
		return false
	}
	visited[id] = struct{}{}

	info, ok := g.Types[id]
	if !ok {
		return false
	}

	for _, next := range info.Interfaces {
		if next == iface || g.declaredImplements(next, iface, visited) {
			return true
		}
	}

	if info.Base != nil {
		return *info.Base == iface || g.declaredImplements(*info.Base, iface, visited)
	}

	return false
}
