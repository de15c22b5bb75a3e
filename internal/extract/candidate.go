package extract

import (
	"slices"

	"locstring-generator/internal/analyze"
	"locstring-generator/internal/diagnostic"
)

const (
	modifierStatic  = "static"
	modifierPartial = "partial"
)

// Parameter is a candidate method parameter.
type Parameter struct {
	Name     string
	Type     analyze.TypeRef
	RefKind  analyze.RefKind
	Location *diagnostic.Location
}

// Equal reports whether two parameters are equal.
func (p Parameter) Equal(other Parameter) bool {
	return p.Name == other.Name &&
		p.RefKind == other.RefKind &&
		p.Type.Equal(other.Type) &&
		p.Location.Equal(other.Location)
}

// Candidate holds the facts about one marked method needed for validation.
type Candidate struct {
	Key         string
	Name        string
	Modifiers   []string
	Arity       int
	ReturnType  analyze.TypeRef
	HasBody     bool
	IsExtension bool
	Parameters  []Parameter
	Containing  analyze.TypeID
	// ResourceID is the explicit resource id, nil when the marker has none.
	ResourceID *string

	Identifier         *diagnostic.Location
	ReturnTypeLocation *diagnostic.Location
	BodyLocation       *diagnostic.Location
	Location           *diagnostic.Location
}

// IsStatic reports whether the method carries the static modifier.
func (c *Candidate) IsStatic() bool {
	return analyze.HasModifier(c.Modifiers, modifierStatic)
}

// IsPartial reports whether the method carries the partial modifier.
func (c *Candidate) IsPartial() bool {
	return analyze.HasModifier(c.Modifiers, modifierPartial)
}

// Equal reports whether two candidates are structurally equal.
func (c Candidate) Equal(other Candidate) bool {
	if c.Key != other.Key || c.Name != other.Name || c.Arity != other.Arity ||
		c.HasBody != other.HasBody || c.IsExtension != other.IsExtension ||
		c.Containing != other.Containing {
		return false
	}

	if (c.ResourceID == nil) != (other.ResourceID == nil) ||
		(c.ResourceID != nil && *c.ResourceID != *other.ResourceID) {
		return false
	}

	return slices.Equal(c.Modifiers, other.Modifiers) &&
		c.ReturnType.Equal(other.ReturnType) &&
		slices.EqualFunc(c.Parameters, other.Parameters, Parameter.Equal) &&
		c.Identifier.Equal(other.Identifier) &&
		c.ReturnTypeLocation.Equal(other.ReturnTypeLocation) &&
		c.BodyLocation.Equal(other.BodyLocation) &&
		c.Location.Equal(other.Location)
}
