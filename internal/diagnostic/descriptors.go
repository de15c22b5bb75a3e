package diagnostic

// Category is reported with every descriptor.
const Category = "LocalizationGenerator"

// Descriptor describes one kind of diagnostic.
type Descriptor struct {
	Code     Code
	Title    string
	Message  string // Template with positional {0}, {1}, ... arguments
	Severity DiagnosticSeverity
	Category string
}

// ID returns the published identifier of the descriptor.
func (d Descriptor) ID() string {
	return d.Code.ID()
}

func newDescriptor(code Code, title, message string) Descriptor {
	return Descriptor{
		Code:     code,
		Title:    title,
		Message:  message,
		Severity: DiagnosticError,
		Category: Category,
	}
}

var descriptors = [...]Descriptor{
	LanguageVersionIsNotSupported: newDescriptor(LanguageVersionIsNotSupported,
		"Language version is required to be at least C# 6",
		"The project's language version has to be at least 'C# 6'."),
	NameStartsWithUnderscore: newDescriptor(NameStartsWithUnderscore,
		"Method names cannot start with _",
		"Method names cannot start with '_' character."),
	MustBePartial: newDescriptor(MustBePartial,
		"Method must be partial",
		"Method must be partial."),
	MethodHasBody: newDescriptor(MethodHasBody,
		"Method cannot have body",
		"Method cannot have body declared."),
	MissingLocalizerArgument: newDescriptor(MissingLocalizerArgument,
		"No arguments of type Microsoft.Extensions.Localization.IStringLocalizer found",
		"Method has no arguments of type Microsoft.Extensions.Localization.IStringLocalizer declared."),
	MultipleLocalizerArguments: newDescriptor(MultipleLocalizerArguments,
		"Multiple arguments of type Microsoft.Extensions.Localization.IStringLocalizer found",
		"Only one argument of type Microsoft.Extensions.Localization.IStringLocalizer is permitted as argument."),
	InstanceMethodHasLocalizerArgument: newDescriptor(InstanceMethodHasLocalizerArgument,
		"Instance method has argument of type Microsoft.Extensions.Localization.IStringLocalizer",
		"Instance method are not allowed to declare parameters of type Microsoft.Extensions.Localization.IStringLocalizer."),
	PrimaryConstructorParameterHidden: newDescriptor(PrimaryConstructorParameterHidden,
		"Primary constructor parameter of type Microsoft.Extensions.Localization.IStringLocalizer is hidden by a field",
		"Class '{0}' has a primary constructor parameter of type Microsoft.Extensions.Localization.IStringLocalizer that is hidden by a field in the class or a base class, preventing its use."),
	MultipleLocalizerFields: newDescriptor(MultipleLocalizerFields,
		"Found multiple fields of type Microsoft.Extensions.Localization.IStringLocalizer",
		"Class '{0}' has multiple fields of type Microsoft.Extensions.Localization.IStringLocalizer."),
	MissingLocalizerField: newDescriptor(MissingLocalizerField,
		"Class has no fields of type Microsoft.Extensions.Localization.IStringLocalizer",
		"Class '{0}' has no accessible fields of type Microsoft.Extensions.Localization.IStringLocalizer."),
	MethodIsGeneric: newDescriptor(MethodIsGeneric,
		"Method cannot be generic.",
		"Method cannot be generic."),
	MustReturnLocalizedString: newDescriptor(MustReturnLocalizedString,
		"Method must return Microsoft.Extensions.Localization.LocalizedString",
		"Method must return Microsoft.Extensions.Localization.LocalizedString."),
	ParameterHasRefModifier: newDescriptor(ParameterHasRefModifier,
		"Argument is using unsupported parameter modifier",
		"Argument '{0}' is using an unsupported parameter modifier."),
}

// Lookup returns the descriptor for a code.
func Lookup(code Code) (Descriptor, bool) {
	if !code.IsValid() {
		return Descriptor{}, false
	}

	return descriptors[code], true
}

// All returns every descriptor in code order.
func All() []Descriptor {
	out := make([]Descriptor, 0, CodeTotal-1)
	for c := Code(1); int(c) < CodeTotal; c++ {
		out = append(out, descriptors[c])
	}

	return out
}
