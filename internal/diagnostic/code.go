package diagnostic

import "fmt"

//go:generate go tool stringer -type=Code -output=code_string.go

// Code identifies a diagnostic descriptor. The numeric value is the
// descriptor number in the published ID (ITH0001 for 1).
type Code int

const (
	_ Code = iota // zero is not a valid code

	LanguageVersionIsNotSupported
	NameStartsWithUnderscore
	MustBePartial
	MethodHasBody
	MissingLocalizerArgument
	MultipleLocalizerArguments
	InstanceMethodHasLocalizerArgument
	PrimaryConstructorParameterHidden
	MultipleLocalizerFields
	MissingLocalizerField
	MethodIsGeneric
	MustReturnLocalizedString
	ParameterHasRefModifier

	// CodeTotal is the number of defined codes plus one.
	CodeTotal = int(iota)
)

// ID returns the published identifier, e.g. "ITH0002".
func (c Code) ID() string {
	return fmt.Sprintf("ITH%04d", int(c))
}

// IsValid reports whether c is a defined code.
func (c Code) IsValid() bool {
	return c > 0 && int(c) < CodeTotal
}
