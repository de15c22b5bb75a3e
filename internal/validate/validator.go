package validate

import (
	"strings"

	"locstring-generator/internal/analyze"
	"locstring-generator/internal/diagnostic"
	"locstring-generator/internal/extract"
	"locstring-generator/internal/provider"
	"locstring-generator/internal/spec"
)

// Outcome is the result of validating one candidate. At most one of Method
// and Diagnostic is set; both are nil when the candidate was dropped
// without a diagnostic.
type Outcome struct {
	// Type is the declaring type of the candidate.
	Type       analyze.TypeID
	Method     *spec.MethodSpec
	Diagnostic *diagnostic.Diagnostic
	// ConsultedProvider is true when the provider of Type was resolved.
	ConsultedProvider bool
}

// Accepted reports whether the candidate produced a method spec.
func (o Outcome) Accepted() bool {
	return o.Method != nil
}

// Options holds the names the rules check against.
type Options struct {
	ProviderType   analyze.TypeID
	ResultType     analyze.TypeID
	ReservedPrefix string
}

// Validator validates candidates. It is safe for concurrent use as long as
// the facts provider is.
type Validator struct {
	facts     analyze.Facts
	providers *provider.Cache
	opts      Options
}

// New creates a validator sharing the given provider cache.
func New(facts analyze.Facts, providers *provider.Cache, opts Options) *Validator {
	return &Validator{
		facts:     facts,
		providers: providers,
		opts:      opts,
	}
}

// state is threaded through the rule chain.
type state struct {
	cand        *extract.Candidate
	isStatic    bool
	params      []spec.ParameterSpec
	hasProvider bool
	outcome     Outcome
}

// rule inspects the candidate and returns true when validation stops.
type rule func(v *Validator, st *state) bool

var rules = []rule{
	checkName,
	checkArity,
	checkReturnType,
	checkBody,
	checkPartial,
	checkParameters,
	checkProviderArgument,
	checkProviderField,
}

// Validate runs the rule chain on a candidate.
func (v *Validator) Validate(cand *extract.Candidate) Outcome {
	st := &state{
		cand:     cand,
		isStatic: cand.IsStatic(),
		outcome:  Outcome{Type: cand.Containing},
	}

	for _, r := range rules {
		if r(v, st) {
			return st.outcome
		}
	}

	st.outcome.Method = v.methodSpec(st)

	return st.outcome
}

func (v *Validator) methodSpec(st *state) *spec.MethodSpec {
	c := st.cand

	resourceID := c.Name
	if c.ResourceID != nil && *c.ResourceID != "" {
		resourceID = *c.ResourceID
	}

	return &spec.MethodSpec{
		Name:        c.Name,
		Modifiers:   strings.Join(c.Modifiers, " "),
		ReturnType:  analyze.TypeRef{ID: c.ReturnType.ID, Display: c.ReturnType.Display},
		ResourceID:  resourceID,
		Parameters:  st.params,
		IsExtension: c.IsExtension,
		IsStatic:    st.isStatic,
		IsPartial:   c.IsPartial(),
	}
}

func (st *state) fail(code diagnostic.Code, loc *diagnostic.Location, args ...string) bool {
	d := diagnostic.New(code, loc, args...)
	st.outcome.Diagnostic = &d

	return true
}

func checkName(v *Validator, st *state) bool {
	if v.opts.ReservedPrefix != "" && strings.HasPrefix(st.cand.Name, v.opts.ReservedPrefix) {
		return st.fail(diagnostic.NameStartsWithUnderscore, st.cand.Identifier)
	}

	return false
}

func checkArity(_ *Validator, st *state) bool {
	if st.cand.Arity > 0 {
		return st.fail(diagnostic.MethodIsGeneric, st.cand.Identifier)
	}

	return false
}

func checkReturnType(v *Validator, st *state) bool {
	ret := st.cand.ReturnType
	if ret.IsError || ret.ID != v.opts.ResultType {
		return st.fail(diagnostic.MustReturnLocalizedString, st.cand.ReturnTypeLocation)
	}

	return false
}

func checkBody(_ *Validator, st *state) bool {
	if st.cand.HasBody {
		return st.fail(diagnostic.MethodHasBody, st.cand.BodyLocation)
	}

	return false
}

func checkPartial(_ *Validator, st *state) bool {
	if !st.cand.IsPartial() {
		return st.fail(diagnostic.MustBePartial, st.cand.Location)
	}

	return false
}

func checkParameters(v *Validator, st *state) bool {
	params := make([]spec.ParameterSpec, 0, len(st.cand.Parameters))

	for _, p := range st.cand.Parameters {
		if strings.TrimSpace(p.Name) == "" || p.Type.IsError {
			// not valid yet, the front-end reports it
			return true
		}

		if p.RefKind != analyze.RefNone {
			return st.fail(diagnostic.ParameterHasRefModifier, p.Location, p.Name)
		}

		isProvider := v.facts.Implements(p.Type, v.opts.ProviderType)
		params = append(params, spec.ParameterSpec{
			Name:       p.Name,
			Type:       analyze.TypeRef{ID: p.Type.ID, Display: p.Type.Display},
			IsProvider: isProvider,
		})

		if !isProvider {
			continue
		}

		if !st.isStatic {
			return st.fail(diagnostic.InstanceMethodHasLocalizerArgument, st.cand.Location)
		}

		if st.hasProvider {
			return st.fail(diagnostic.MultipleLocalizerArguments, st.cand.Location)
		}

		st.hasProvider = true
	}

	st.params = params

	return false
}

func checkProviderArgument(_ *Validator, st *state) bool {
	if st.isStatic && !st.hasProvider {
		return st.fail(diagnostic.MissingLocalizerArgument, st.cand.Location)
	}

	return false
}

func checkProviderField(v *Validator, st *state) bool {
	if st.isStatic {
		return false
	}

	st.outcome.ConsultedProvider = true

	if res := v.providers.Resolve(st.cand.Containing); !res.Source.Found() {
		return st.fail(diagnostic.MissingLocalizerField, st.cand.Location, v.displayName(st.cand.Containing))
	}

	return false
}

// displayName returns the declared name of a type including its type
// parameters, falling back to the simple metadata name.
func (v *Validator) displayName(id analyze.TypeID) string {
	if info, ok := v.facts.Type(id); ok && info.Name != "" {
		return info.Name
	}

	return id.SimpleName()
}
