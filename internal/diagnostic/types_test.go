package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locstring-generator/internal/analyze"
)

func TestTrim(t *testing.T) {
	loc := Trim(analyze.Location{
		File:      "Messages.cs",
		Start:     10,
		End:       20,
		StartLine: 2,
		StartCol:  4,
		EndLine:   2,
		EndCol:    14,
		Handle:    &struct{ tree string }{"syntax tree"},
	})

	require.NotNil(t, loc)
	assert.Equal(t, Location{File: "Messages.cs", Start: 10, End: 20, StartLine: 2, StartCol: 4, EndLine: 2, EndCol: 14}, *loc)
	assert.Equal(t, "Messages.cs(3,5)", loc.String())

	assert.Nil(t, Trim(analyze.Location{}))

	negative := Trim(analyze.Location{File: "a.cs", Start: -1, End: 3})
	require.NotNil(t, negative)
	assert.Equal(t, uint32(0), negative.Start)
	assert.Equal(t, uint32(3), negative.End)
}

func TestMessageFormatting(t *testing.T) {
	d := New(MissingLocalizerField, nil, "Greeter")
	assert.Equal(t, "Class 'Greeter' has no accessible fields of type Microsoft.Extensions.Localization.IStringLocalizer.", d.Message())

	d = New(ParameterHasRefModifier, nil, "count")
	assert.Equal(t, "Argument 'count' is using an unsupported parameter modifier.", d.Message())

	d = New(MethodIsGeneric, nil)
	assert.Equal(t, "Method cannot be generic.", d.Message())

	assert.Equal(t, "a b {2}", formatMessage("{0} {1} {2}", []string{"a", "b"}))
	assert.Equal(t, "x-y {2}", formatMessage("{0}-{1} {2}", []string{"x", "y"}))
	assert.Equal(t, "x {oops} {", formatMessage("{0} {oops} {", []string{"x"}))
}

func TestDiagnosticString(t *testing.T) {
	loc := &Location{File: "Messages.cs", StartLine: 4, StartCol: 8}
	d := New(MustBePartial, loc)
	assert.Equal(t, "Messages.cs(5,9): error ITH0003: Method must be partial.", d.String())

	d = New(LanguageVersionIsNotSupported, nil)
	assert.Equal(t, "error ITH0001: The project's language version has to be at least 'C# 6'.", d.String())
}

func TestDiagnosticEqual(t *testing.T) {
	a := New(MissingLocalizerField, &Location{File: "a.cs", Start: 1, End: 2}, "A")
	b := New(MissingLocalizerField, &Location{File: "a.cs", Start: 1, End: 2}, "A")

	assert.True(t, a.Equal(b))
	assert.NotSame(t, a.Location, b.Location)

	assert.False(t, a.Equal(New(MissingLocalizerField, &Location{File: "a.cs", Start: 1, End: 3}, "A")))
	assert.False(t, a.Equal(New(MissingLocalizerField, &Location{File: "a.cs", Start: 1, End: 2}, "B")))
	assert.False(t, a.Equal(New(MustBePartial, &Location{File: "a.cs", Start: 1, End: 2}, "A")))
	assert.False(t, a.Equal(New(MissingLocalizerField, nil, "A")))
}

func TestNewCopiesArgs(t *testing.T) {
	args := []string{"A"}
	d := New(MissingLocalizerField, nil, args...)
	args[0] = "B"

	assert.Equal(t, []string{"A"}, d.Args)
}

func TestListDedupAndOrder(t *testing.T) {
	l := NewList()
	first := New(MustBePartial, &Location{File: "a.cs", Start: 5})
	second := New(MethodHasBody, &Location{File: "a.cs", Start: 1})
	dup := New(MustBePartial, &Location{File: "a.cs", Start: 5})

	assert.True(t, l.Add(first))
	assert.True(t, l.Add(second))
	assert.False(t, l.Add(dup))
	assert.True(t, l.Add(New(MustBePartial, &Location{File: "b.cs", Start: 5})))

	items := l.Items()
	require.Len(t, items, 3)
	assert.Equal(t, MustBePartial, items[0].Code())
	assert.Equal(t, MethodHasBody, items[1].Code(), "emission order is kept, not sorted")
	assert.Equal(t, 3, l.Len())
	assert.True(t, l.HasErrors())
	assert.Error(t, l.Error())

	items[0] = Diagnostic{}
	assert.Equal(t, MustBePartial, l.Items()[0].Code(), "Items returns a copy")
}

func TestListArgsDistinguishDuplicates(t *testing.T) {
	var l List

	assert.True(t, l.Add(New(MultipleLocalizerFields, nil, "A")))
	assert.True(t, l.Add(New(MultipleLocalizerFields, nil, "B")))
	assert.False(t, l.Add(New(MultipleLocalizerFields, nil, "A")))
	assert.Equal(t, 2, l.Len())
}

func TestEmptyList(t *testing.T) {
	l := NewList()

	assert.Nil(t, l.Items())
	assert.False(t, l.HasErrors())
	assert.NoError(t, l.Error())
}

func TestEqualSequences(t *testing.T) {
	a := []Diagnostic{New(MustBePartial, nil), New(MethodHasBody, nil)}
	b := []Diagnostic{New(MustBePartial, nil), New(MethodHasBody, nil)}
	c := []Diagnostic{New(MethodHasBody, nil), New(MustBePartial, nil)}

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
	assert.True(t, Equal(nil, []Diagnostic{}))
}
