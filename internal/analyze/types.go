package analyze

import (
	"fmt"
	"strconv"
	"strings"
)

// TypeID uniquely identifies a declared type by its metadata name and arity.
type TypeID struct {
	Name  string // e.g., "App.Resources.Messages"
	Arity int    // number of generic type parameters
}

// ParseTypeID parses the metadata form "Name" or "Name`Arity".
func ParseTypeID(s string) (TypeID, error) {
	name, arity, found := strings.Cut(s, "`")
	if name == "" {
		return TypeID{}, fmt.Errorf("empty type name in %q", s)
	}

	if !found {
		return TypeID{Name: name}, nil
	}

	n, err := strconv.Atoi(arity)
	if err != nil || n < 0 {
		return TypeID{}, fmt.Errorf("invalid arity in type name %q", s)
	}

	return TypeID{Name: name, Arity: n}, nil
}

// String returns the metadata form of the TypeID.
func (t TypeID) String() string {
	if t.Arity == 0 {
		return t.Name
	}

	return t.Name + "`" + strconv.Itoa(t.Arity)
}

// IsZero reports whether the TypeID is unset.
func (t TypeID) IsZero() bool {
	return t.Name == ""
}

// SimpleName returns the last dotted segment of the name.
func (t TypeID) SimpleName() string {
	if i := strings.LastIndexAny(t.Name, ".+"); i >= 0 {
		return t.Name[i+1:]
	}

	return t.Name
}

// TypeRef is a type as referenced by a field, parameter or return value.
type TypeRef struct {
	ID      TypeID // Referenced type
	Display string // Display form used in generated code, e.g. "global::System.String"
	// IsError marks an error placeholder produced by the front-end for an
	// unresolved type.
	IsError bool
	// Interfaces lists every interface the referenced type implements,
	// including inherited ones, as reported by the front-end.
	Interfaces []TypeID
}

// Equal reports whether two references are structurally equal.
func (r TypeRef) Equal(other TypeRef) bool {
	if r.ID != other.ID || r.Display != other.Display || r.IsError != other.IsError {
		return false
	}

	if len(r.Interfaces) != len(other.Interfaces) {
		return false
	}

	for i := range r.Interfaces {
		if r.Interfaces[i] != other.Interfaces[i] {
			return false
		}
	}

	return true
}

// String returns the display form, falling back to the metadata name.
func (r TypeRef) String() string {
	if r.Display != "" {
		return r.Display
	}

	return r.ID.String()
}

// Location is a source span as reported by the front-end.
// Line and column values are zero-based.
type Location struct {
	File      string `yaml:"file"`
	Start     int    `yaml:"start"`
	End       int    `yaml:"end"`
	StartLine int    `yaml:"line"`
	StartCol  int    `yaml:"col"`
	EndLine   int    `yaml:"end_line"`
	EndCol    int    `yaml:"end_col"`
	// Handle is an opaque front-end reference (syntax tree, compilation).
	// It is never copied into generator output.
	Handle any `yaml:"-" hash:"ignore"`
}

// IsZero reports whether the location carries no span information.
func (l Location) IsZero() bool {
	return l.File == "" && l.Start == 0 && l.End == 0 && l.StartLine == 0 && l.EndLine == 0
}

// RefKind is the passing mode of a parameter.
type RefKind string

const (
	RefNone     RefKind = ""
	RefRef      RefKind = "ref"
	RefOut      RefKind = "out"
	RefIn       RefKind = "in"
	RefReadonly RefKind = "ref readonly"
)

// Accessibility is the declared accessibility of a member.
type Accessibility string

const (
	AccessPrivate           Accessibility = "private"
	AccessPrivateProtected  Accessibility = "private protected"
	AccessProtected         Accessibility = "protected"
	AccessInternal          Accessibility = "internal"
	AccessProtectedInternal Accessibility = "protected internal"
	AccessPublic            Accessibility = "public"
)

// IsPrivate returns true for private members. Members without declared
// accessibility default to private.
func (a Accessibility) IsPrivate() bool {
	return a == "" || a == AccessPrivate
}

// DeclKind is the syntactic kind of a declaration.
type DeclKind string

const (
	DeclMethod      DeclKind = "method"
	DeclProperty    DeclKind = "property"
	DeclField       DeclKind = "field"
	DeclLocalMethod DeclKind = "local_function"
)

// ParameterInfo describes a method or constructor parameter.
type ParameterInfo struct {
	Name     string   `yaml:"name"`
	Type     TypeRef  `yaml:"type"`
	RefKind  RefKind  `yaml:"ref"`
	Location Location `yaml:"at"`
}

// FieldInfo describes a field declared on a type.
type FieldInfo struct {
	Name   string        `yaml:"name"`
	Type   TypeRef       `yaml:"type"`
	Access Accessibility `yaml:"access"`
	// Synthesized marks compiler-generated fields that cannot be referenced
	// by name (backing fields, captured primary constructor state).
	Synthesized bool     `yaml:"synthesized"`
	Location    Location `yaml:"at"`
}

// CanBeReferencedByName reports whether generated code may name the field.
func (f *FieldInfo) CanBeReferencedByName() bool {
	return !f.Synthesized && f.Name != ""
}

// ConstructorInfo describes an instance constructor.
type ConstructorInfo struct {
	// Primary is true when the parameter list is attached to the type
	// declaration itself rather than to a constructor in the body.
	Primary    bool            `yaml:"primary"`
	Parameters []ParameterInfo `yaml:"parameters"`
	Location   Location        `yaml:"at"`
}

// TypeInfo describes a declared type.
type TypeInfo struct {
	ID           TypeID            `yaml:"id"`
	Name         string            `yaml:"name"`      // Display name including type parameters, e.g. "Box<T>"
	Keyword      string            `yaml:"keyword"`   // class, struct, record, interface
	Namespace    string            `yaml:"namespace"` // Empty for the global namespace
	Containing   *TypeID           `yaml:"containing"`
	Base         *TypeID           `yaml:"base"`
	Interfaces   []TypeID          `yaml:"interfaces"`
	Fields       []FieldInfo       `yaml:"fields"`
	Constructors []ConstructorInfo `yaml:"constructors"`
	Location     Location          `yaml:"at"`
}

// PrimaryConstructors returns the constructors declared on the type declaration.
func (t *TypeInfo) PrimaryConstructors() []ConstructorInfo {
	var out []ConstructorInfo

	for _, c := range t.Constructors {
		if c.Primary {
			out = append(out, c)
		}
	}

	return out
}

// MarkerArg is one constructor argument of a marker attribute.
type MarkerArg struct {
	Value *string `yaml:"value"` // nil for a null literal
	Error bool    `yaml:"error"` // argument did not bind
}

// Marker is an attribute attached to a declaration.
type Marker struct {
	Name string      `yaml:"name"` // Fully qualified attribute type name
	Args []MarkerArg `yaml:"args"`
}

// Declaration is one marked declaration handed over by the front-end.
type Declaration struct {
	// Key identifies the declaration across runs (e.g. file path + ordinal).
	Key            string          `yaml:"key"`
	Kind           DeclKind        `yaml:"kind"`
	Name           string          `yaml:"name"`
	Modifiers      []string        `yaml:"modifiers"`
	TypeParameters []string        `yaml:"type_parameters"`
	ReturnType     TypeRef         `yaml:"returns"`
	HasBody        bool            `yaml:"has_body"`
	IsExtension    bool            `yaml:"extension"`
	Parameters     []ParameterInfo `yaml:"parameters"`
	Markers        []Marker        `yaml:"markers"`
	// Containing is the type the declaration is nested in directly, nil
	// when the declaration is not a direct type member.
	Containing *TypeID `yaml:"containing"`

	Identifier         Location `yaml:"name_at"`
	ReturnTypeLocation Location `yaml:"returns_at"`
	BodyLocation       Location `yaml:"body_at"`
	Location           Location `yaml:"at"`
}

// HasModifier reports whether modifiers contains the given modifier keyword.
func HasModifier(modifiers []string, mod string) bool {
	for _, m := range modifiers {
		if m == mod {
			return true
		}
	}

	return false
}
