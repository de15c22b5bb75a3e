package spec

import (
	"slices"

	"locstring-generator/internal/analyze"
)

// ProviderLookup returns the already resolved provider source of a type.
type ProviderLookup func(id analyze.TypeID) ProviderSource

// Builder accumulates validated methods under their declaring types.
// Types are kept in first-discovery order; a type's containing types are
// discovered before the type itself. Builder is not safe for concurrent use.
type Builder struct {
	facts     analyze.Facts
	providers ProviderLookup
	order     []analyze.TypeID
	entries   map[analyze.TypeID]*typeEntry
}

type typeEntry struct {
	node    TypeNode
	methods []MethodSpec
}

// NewBuilder creates a Builder. providers may be nil, in which case no type
// carries a provider source.
func NewBuilder(facts analyze.Facts, providers ProviderLookup) *Builder {
	return &Builder{
		facts:     facts,
		providers: providers,
		entries:   make(map[analyze.TypeID]*typeEntry),
	}
}

// Register makes the type known to the builder without adding a method.
func (b *Builder) Register(id analyze.TypeID) {
	b.register(id, nil)
}

// Add registers the type and appends a method to it.
func (b *Builder) Add(id analyze.TypeID, method MethodSpec) {
	e := b.register(id, nil)
	e.methods = append(e.methods, method)
}

// Len returns the number of registered types.
func (b *Builder) Len() int {
	return len(b.order)
}

func (b *Builder) register(id analyze.TypeID, visiting map[analyze.TypeID]struct{}) *typeEntry {
	if e, ok := b.entries[id]; ok {
		return e
	}

	node := TypeNode{
		ID:      id,
		Name:    id.SimpleName(),
		Keyword: "class",
	}

	if info, ok := b.facts.Type(id); ok {
		node.Name = info.Name
		node.Keyword = info.Keyword
		node.Namespace = info.Namespace

		if info.Containing != nil {
			if visiting == nil {
				visiting = make(map[analyze.TypeID]struct{})
			}
			visiting[id] = struct{}{}

			// Containing chains mirror lexical nesting; a cycle means broken facts.
			if _, cyclic := visiting[*info.Containing]; !cyclic {
				parent := b.register(*info.Containing, visiting)
				parentID := parent.node.ID
				node.Parent = &parentID
			}
		}
	}

	if b.providers != nil {
		node.Provider = b.providers(id)
	}

	e := &typeEntry{node: node}
	b.entries[id] = e
	b.order = append(b.order, id)

	return e
}

// Build returns the forest of types that have methods, directly or through
// nested types. It returns nil when no type qualifies.
func (b *Builder) Build() *Forest {
	var roots []analyze.TypeID
	children := make(map[analyze.TypeID][]analyze.TypeID)

	for _, id := range b.order {
		parent := b.entries[id].node.Parent
		if parent == nil {
			roots = append(roots, id)
			continue
		}

		children[*parent] = append(children[*parent], id)
	}

	types := b.buildNodes(roots, children)
	if len(types) == 0 {
		return nil
	}

	return &Forest{Types: types}
}

func (b *Builder) buildNodes(ids []analyze.TypeID, children map[analyze.TypeID][]analyze.TypeID) []TypeNode {
	var out []TypeNode

	for _, id := range ids {
		e := b.entries[id]
		nested := b.buildNodes(children[id], children)

		// record only types with members
		if len(e.methods) == 0 && len(nested) == 0 {
			continue
		}

		node := e.node
		node.Methods = slices.Clone(e.methods)
		node.Types = nested
		out = append(out, node)
	}

	return out
}
