package spec

import (
	"slices"

	"locstring-generator/internal/analyze"
	"locstring-generator/internal/common"
)

// ParameterSpec describes one parameter of a generated method.
type ParameterSpec struct {
	Name string
	// Type is the parameter type; only ID and Display are kept.
	Type analyze.TypeRef
	// IsProvider marks the parameter the method obtains its localizer from.
	IsProvider bool
}

// Equal reports whether two parameter specs are equal.
func (p ParameterSpec) Equal(other ParameterSpec) bool {
	return p.Name == other.Name && p.IsProvider == other.IsProvider && p.Type.Equal(other.Type)
}

// MethodSpec describes one validated method to generate.
type MethodSpec struct {
	Name string
	// Modifiers is the declared modifier list joined by spaces, in source order.
	Modifiers  string
	ReturnType analyze.TypeRef
	// ResourceID is the string resource name; it defaults to Name.
	ResourceID  string
	Parameters  []ParameterSpec
	IsExtension bool
	IsStatic    bool
	IsPartial   bool
}

// Equal reports whether two method specs are equal.
func (m MethodSpec) Equal(other MethodSpec) bool {
	return m.Name == other.Name &&
		m.Modifiers == other.Modifiers &&
		m.ReturnType.Equal(other.ReturnType) &&
		m.ResourceID == other.ResourceID &&
		m.IsExtension == other.IsExtension &&
		m.IsStatic == other.IsStatic &&
		m.IsPartial == other.IsPartial &&
		slices.EqualFunc(m.Parameters, other.Parameters, ParameterSpec.Equal)
}

// ProviderParameter returns the provider parameter of a static method.
func (m MethodSpec) ProviderParameter() (ParameterSpec, bool) {
	for _, p := range m.Parameters {
		if p.IsProvider {
			return p, true
		}
	}

	return ParameterSpec{}, false
}

// ProviderKind tells where a type's localizer comes from.
type ProviderKind int

const (
	// ProviderNone - the type has no usable localizer.
	ProviderNone ProviderKind = iota
	// ProviderField - a field of the type or an accessible base type field.
	ProviderField
	// ProviderParameter - a primary constructor parameter.
	ProviderParameter
)

// String returns a human-readable provider kind.
func (k ProviderKind) String() string {
	switch k {
	case ProviderNone:
		return "none"
	case ProviderField:
		return "field"
	case ProviderParameter:
		return "parameter"
	default:
		return common.UnknownStr
	}
}

// ProviderSource is the resolved source of a type's localizer.
type ProviderSource struct {
	Kind ProviderKind
	Name string
}

// FieldSource returns a field-backed ProviderSource.
func FieldSource(name string) ProviderSource {
	return ProviderSource{Kind: ProviderField, Name: name}
}

// ParameterSource returns a primary-constructor-parameter-backed ProviderSource.
func ParameterSource(name string) ProviderSource {
	return ProviderSource{Kind: ProviderParameter, Name: name}
}

// Found reports whether a source was resolved.
func (s ProviderSource) Found() bool {
	return s.Kind != ProviderNone
}

// TypeNode is a declaring type in the specification.
type TypeNode struct {
	ID        analyze.TypeID
	Name      string // Display name including type parameters
	Keyword   string
	Namespace string
	Parent    *analyze.TypeID
	Provider  ProviderSource
	Methods   []MethodSpec
	Types     []TypeNode
}

// Equal reports whether two nodes, including their subtrees, are equal.
func (n TypeNode) Equal(other TypeNode) bool {
	if n.ID != other.ID || n.Name != other.Name || n.Keyword != other.Keyword ||
		n.Namespace != other.Namespace || n.Provider != other.Provider {
		return false
	}

	if (n.Parent == nil) != (other.Parent == nil) || (n.Parent != nil && *n.Parent != *other.Parent) {
		return false
	}

	return slices.EqualFunc(n.Methods, other.Methods, MethodSpec.Equal) &&
		slices.EqualFunc(n.Types, other.Types, TypeNode.Equal)
}

// Walk calls fn for the node and every descendant, parents first.
func (n *TypeNode) Walk(fn func(*TypeNode)) {
	fn(n)
	for i := range n.Types {
		n.Types[i].Walk(fn)
	}
}

// Forest is the root-level set of type nodes.
type Forest struct {
	Types []TypeNode
}

// Equal reports whether two forests are equal. A nil forest only equals nil.
func (f *Forest) Equal(other *Forest) bool {
	if f == nil || other == nil {
		return f == other
	}

	return slices.EqualFunc(f.Types, other.Types, TypeNode.Equal)
}

// Find returns the node with the given ID anywhere in the forest.
func (f *Forest) Find(id analyze.TypeID) (*TypeNode, bool) {
	if f == nil {
		return nil, false
	}

	var found *TypeNode
	for i := range f.Types {
		f.Types[i].Walk(func(n *TypeNode) {
			if found == nil && n.ID == id {
				found = n
			}
		})
	}

	return found, found != nil
}

// MethodCount returns the number of methods in the forest.
func (f *Forest) MethodCount() int {
	if f == nil {
		return 0
	}

	count := 0
	for i := range f.Types {
		f.Types[i].Walk(func(n *TypeNode) {
			count += len(n.Methods)
		})
	}

	return count
}
