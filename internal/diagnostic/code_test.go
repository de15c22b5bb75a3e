package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeIDs(t *testing.T) {
	assert.Equal(t, "ITH0001", LanguageVersionIsNotSupported.ID())
	assert.Equal(t, "ITH0002", NameStartsWithUnderscore.ID())
	assert.Equal(t, "ITH0011", MethodIsGeneric.ID())
	assert.Equal(t, "ITH0013", ParameterHasRefModifier.ID())
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "NameStartsWithUnderscore", NameStartsWithUnderscore.String())
	assert.Equal(t, "ParameterHasRefModifier", ParameterHasRefModifier.String())
	assert.Equal(t, "Code(0)", Code(0).String())
	assert.Equal(t, "Code(99)", Code(99).String())
}

func TestCatalogue(t *testing.T) {
	all := All()
	require.Len(t, all, 13)

	for i, d := range all {
		assert.Equal(t, Code(i+1), d.Code)
		assert.NotEmpty(t, d.Title, d.Code.String())
		assert.NotEmpty(t, d.Message, d.Code.String())
		assert.Equal(t, DiagnosticError, d.Severity)
		assert.Equal(t, Category, d.Category)
	}

	_, ok := Lookup(Code(0))
	assert.False(t, ok)

	_, ok = Lookup(Code(CodeTotal))
	assert.False(t, ok)
}
