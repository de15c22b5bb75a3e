package extract

import (
	"slices"

	"locstring-generator/internal/analyze"
	"locstring-generator/internal/diagnostic"
)

// Extract produces the candidate for a declaration carrying the marker
// named markerName. It returns false when the declaration is not a method
// declared directly in a type, carries no such marker, or the marker
// arguments are not valid yet.
func Extract(decl *analyze.Declaration, markerName string) (Candidate, bool) {
	if decl == nil || decl.Kind != analyze.DeclMethod || decl.Containing == nil || decl.Name == "" {
		return Candidate{}, false
	}

	resourceID, ok := resourceIDOf(decl.Markers, markerName)
	if !ok {
		return Candidate{}, false
	}

	params := make([]Parameter, 0, len(decl.Parameters))
	for _, p := range decl.Parameters {
		params = append(params, Parameter{
			Name:     p.Name,
			Type:     p.Type,
			RefKind:  p.RefKind,
			Location: diagnostic.Trim(p.Location),
		})
	}

	return Candidate{
		Key:                decl.Key,
		Name:               decl.Name,
		Modifiers:          slices.Clone(decl.Modifiers),
		Arity:              len(decl.TypeParameters),
		ReturnType:         decl.ReturnType,
		HasBody:            decl.HasBody,
		IsExtension:        decl.IsExtension,
		Parameters:         params,
		Containing:         *decl.Containing,
		ResourceID:         resourceID,
		Identifier:         diagnostic.Trim(decl.Identifier),
		ReturnTypeLocation: diagnostic.Trim(decl.ReturnTypeLocation),
		BodyLocation:       diagnostic.Trim(decl.BodyLocation),
		Location:           diagnostic.Trim(decl.Location),
	}, true
}

// resourceIDOf reads the explicit resource id from the matching markers.
// The second result is false when no marker matches or an argument list
// cannot be trusted.
func resourceIDOf(markers []analyze.Marker, markerName string) (*string, bool) {
	var (
		resourceID *string
		matched    bool
	)

	for _, m := range markers {
		if m.Name != markerName {
			continue
		}

		matched = true

		switch len(m.Args) {
		case 0:
			resourceID = nil
			continue
		case 1:
		default:
			// more than one argument does not bind to any marker constructor
			return nil, false
		}

		arg := m.Args[0]
		if arg.Error {
			return nil, false
		}

		resourceID = nil
		if arg.Value != nil {
			v := *arg.Value
			resourceID = &v
		}
	}

	return resourceID, matched
}
