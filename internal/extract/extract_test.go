package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locstring-generator/internal/analyze"
	"locstring-generator/internal/diagnostic"
)

const marker = "Ithline.Extensions.Localization.LocalizedStringAttribute"

func strPtr(s string) *string { return &s }

func baseDecl() *analyze.Declaration {
	owner := analyze.TypeID{Name: "App.Strings"}

	return &analyze.Declaration{
		Key:        "strings.cs#0",
		Kind:       analyze.DeclMethod,
		Name:       "Hello",
		Modifiers:  []string{"public", "static", "partial"},
		ReturnType: analyze.TypeRef{ID: analyze.TypeID{Name: "Microsoft.Extensions.Localization.LocalizedString"}},
		Parameters: []analyze.ParameterInfo{
			{
				Name:     "localizer",
				Type:     analyze.TypeRef{ID: analyze.TypeID{Name: "Microsoft.Extensions.Localization.IStringLocalizer"}},
				Location: analyze.Location{File: "strings.cs", Start: 40, End: 60, StartLine: 3, StartCol: 10},
			},
		},
		Markers:    []analyze.Marker{{Name: marker}},
		Containing: &owner,
		Identifier: analyze.Location{File: "strings.cs", Start: 30, End: 35, StartLine: 3, StartCol: 4},
		Location:   analyze.Location{File: "strings.cs", Start: 0, End: 70, StartLine: 2},
	}
}

func TestExtract(t *testing.T) {
	c, ok := Extract(baseDecl(), marker)
	require.True(t, ok)

	assert.Equal(t, "strings.cs#0", c.Key)
	assert.Equal(t, "Hello", c.Name)
	assert.Equal(t, analyze.TypeID{Name: "App.Strings"}, c.Containing)
	assert.True(t, c.IsStatic())
	assert.True(t, c.IsPartial())
	assert.Nil(t, c.ResourceID)
	assert.Zero(t, c.Arity)
	require.Len(t, c.Parameters, 1)
	assert.Equal(t, &diagnostic.Location{File: "strings.cs", Start: 40, End: 60, StartLine: 3, StartCol: 10}, c.Parameters[0].Location)
	assert.Nil(t, c.BodyLocation)
	assert.Nil(t, c.ReturnTypeLocation)
	assert.NotNil(t, c.Identifier)
}

func TestExtractCopiesInput(t *testing.T) {
	decl := baseDecl()
	c, ok := Extract(decl, marker)
	require.True(t, ok)

	decl.Modifiers[0] = "private"
	assert.Equal(t, "public", c.Modifiers[0])
}

func TestExtractResourceID(t *testing.T) {
	tests := []struct {
		name    string
		markers []analyze.Marker
		want    *string
		ok      bool
	}{
		{
			name:    "no arguments",
			markers: []analyze.Marker{{Name: marker}},
			ok:      true,
		},
		{
			name:    "explicit id",
			markers: []analyze.Marker{{Name: marker, Args: []analyze.MarkerArg{{Value: strPtr("greeting")}}}},
			want:    strPtr("greeting"),
			ok:      true,
		},
		{
			name:    "null literal",
			markers: []analyze.Marker{{Name: marker, Args: []analyze.MarkerArg{{}}}},
			ok:      true,
		},
		{
			name:    "empty string is kept",
			markers: []analyze.Marker{{Name: marker, Args: []analyze.MarkerArg{{Value: strPtr("")}}}},
			want:    strPtr(""),
			ok:      true,
		},
		{
			name: "last marker wins",
			markers: []analyze.Marker{
				{Name: marker, Args: []analyze.MarkerArg{{Value: strPtr("first")}}},
				{Name: "Other.Attribute", Args: []analyze.MarkerArg{{Value: strPtr("ignored")}}},
				{Name: marker, Args: []analyze.MarkerArg{{Value: strPtr("second")}}},
			},
			want: strPtr("second"),
			ok:   true,
		},
		{
			name:    "argument error",
			markers: []analyze.Marker{{Name: marker, Args: []analyze.MarkerArg{{Error: true}}}},
		},
		{
			name:    "too many arguments",
			markers: []analyze.Marker{{Name: marker, Args: []analyze.MarkerArg{{Value: strPtr("a")}, {Value: strPtr("b")}}}},
		},
		{
			name:    "no matching marker",
			markers: []analyze.Marker{{Name: "Other.Attribute"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decl := baseDecl()
			decl.Markers = tt.markers

			c, ok := Extract(decl, marker)
			require.Equal(t, tt.ok, ok)

			if !ok {
				return
			}

			assert.Equal(t, tt.want, c.ResourceID)
		})
	}
}

func TestExtractRejectsShape(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *analyze.Declaration)
	}{
		{name: "property", mutate: func(d *analyze.Declaration) { d.Kind = analyze.DeclProperty }},
		{name: "local function", mutate: func(d *analyze.Declaration) { d.Kind = analyze.DeclLocalMethod }},
		{name: "no containing type", mutate: func(d *analyze.Declaration) { d.Containing = nil }},
		{name: "blank name", mutate: func(d *analyze.Declaration) { d.Name = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decl := baseDecl()
			tt.mutate(decl)

			_, ok := Extract(decl, marker)
			assert.False(t, ok)
		})
	}

	_, ok := Extract(nil, marker)
	assert.False(t, ok)
}

func TestCandidateEqual(t *testing.T) {
	a, ok := Extract(baseDecl(), marker)
	require.True(t, ok)

	b, ok := Extract(baseDecl(), marker)
	require.True(t, ok)

	assert.True(t, a.Equal(b))

	b.ResourceID = strPtr("x")
	assert.False(t, a.Equal(b))

	b.ResourceID = nil
	b.Parameters[0].RefKind = analyze.RefOut
	assert.False(t, a.Equal(b))
}
