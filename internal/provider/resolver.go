package provider

import (
	"locstring-generator/internal/analyze"
	"locstring-generator/internal/diagnostic"
	"locstring-generator/internal/spec"
)

// Resolution is the result of resolving a type's provider.
type Resolution struct {
	// Source is the resolved provider source; Kind is ProviderNone when
	// nothing usable was found or a conflict was reported.
	Source spec.ProviderSource
	// Diagnostic is the conflict found during resolution, if any.
	Diagnostic *diagnostic.Diagnostic
}

// Resolver implements the provider lookup rules against a Facts provider.
type Resolver struct {
	facts    analyze.Facts
	provider analyze.TypeID
	root     analyze.TypeID
}

// NewResolver creates a resolver for the given provider interface. The
// walk over base types stops before root.
func NewResolver(facts analyze.Facts, providerType, root analyze.TypeID) *Resolver {
	return &Resolver{
		facts:    facts,
		provider: providerType,
		root:     root,
	}
}

// Resolve finds the provider source of the type id.
func (r *Resolver) Resolve(id analyze.TypeID) Resolution {
	info, ok := r.facts.Type(id)
	if !ok {
		return Resolution{}
	}

	typeName := id.SimpleName()
	// names of accessible non-provider fields; they hide constructor parameters
	shadowed := make(map[string]struct{})
	visited := make(map[analyze.TypeID]struct{})

	var fieldName string

	for current, mostDerived := info, true; current != nil; mostDerived = false {
		if current.ID == r.root {
			break
		}

		if _, seen := visited[current.ID]; seen {
			break
		}
		visited[current.ID] = struct{}{}

		for i := range current.Fields {
			f := &current.Fields[i]

			if !mostDerived && f.Access.IsPrivate() {
				continue
			}

			if !f.CanBeReferencedByName() {
				continue
			}

			if !r.facts.Implements(f.Type, r.provider) {
				shadowed[f.Name] = struct{}{}
				continue
			}

			if fieldName != "" {
				return conflict(diagnostic.MultipleLocalizerFields, f.Location, typeName)
			}

			fieldName = f.Name
		}

		current = r.base(current)
	}

	if fieldName != "" {
		return Resolution{Source: spec.FieldSource(fieldName)}
	}

	var paramName string

	for _, ctor := range info.PrimaryConstructors() {
		for _, p := range ctor.Parameters {
			if !r.facts.Implements(p.Type, r.provider) {
				continue
			}

			if _, hidden := shadowed[p.Name]; hidden {
				return conflict(diagnostic.PrimaryConstructorParameterHidden, p.Location, typeName)
			}

			if paramName != "" {
				return conflict(diagnostic.MultipleLocalizerFields, p.Location, typeName)
			}

			paramName = p.Name
		}
	}

	if paramName != "" {
		return Resolution{Source: spec.ParameterSource(paramName)}
	}

	return Resolution{}
}

func (r *Resolver) base(info *analyze.TypeInfo) *analyze.TypeInfo {
	if info.Base == nil {
		return nil
	}

	next, ok := r.facts.Type(*info.Base)
	if !ok {
		return nil
	}

	return next
}

func conflict(code diagnostic.Code, loc analyze.Location, typeName string) Resolution {
	d := diagnostic.New(code, diagnostic.Trim(loc), typeName)
	return Resolution{Diagnostic: &d}
}
