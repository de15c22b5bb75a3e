package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"locstring-generator/internal/analyze"
	"locstring-generator/internal/config"
	"locstring-generator/internal/diagnostic"
	"locstring-generator/internal/extract"
	"locstring-generator/internal/incremental"
	"locstring-generator/internal/provider"
	"locstring-generator/internal/spec"
	"locstring-generator/internal/validate"
)

// ErrNilFacts is returned when a run has no facts provider.
var ErrNilFacts = errors.New("pipeline: nil facts provider")

// Store keys of the tracked outputs.
const (
	specKey        = "spec"
	diagnosticsKey = "diagnostics"
)

// Input is one snapshot of the front-end state.
type Input struct {
	LanguageVersion int
	Declarations    []analyze.Declaration
	Facts           analyze.Facts
}

// Steps reports how the run outputs relate to the previous run.
type Steps struct {
	// Candidates holds one change per extracted candidate, keyed by
	// declaration key, followed by the candidates that disappeared.
	Candidates  []incremental.Change[string]
	Spec        incremental.StepReason
	Diagnostics incremental.StepReason
}

// Result is the output of one run.
type Result struct {
	// Spec is nil when no type qualifies.
	Spec        *spec.Forest
	Diagnostics []diagnostic.Diagnostic
	Steps       Steps
}

// Generator runs the pipeline and tracks its outputs across runs.
// Runs are serialized.
type Generator struct {
	cfg      *config.Config
	logger   *slog.Logger
	store    incremental.Store
	observer SpecObserver

	mu          sync.Mutex
	candidates  *incremental.Table[string, extract.Candidate]
	specs       *incremental.Node[*spec.Forest]
	diagnostics *incremental.Node[[]diagnostic.Diagnostic]
}

// New creates a generator. A nil cfg means config.Default().
func New(cfg *config.Config, opts ...Option) (*Generator, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}

	if g.logger == nil {
		g.logger = cfg.NewLogger(os.Stderr)
	}

	g.candidates = incremental.NewTable[string, extract.Candidate]()
	g.specs = incremental.NewNode(specKey,
		incremental.WithEqual((*spec.Forest).Equal),
		incremental.WithNodeStore[*spec.Forest](g.store))
	g.diagnostics = incremental.NewNode(diagnosticsKey,
		incremental.WithEqual(diagnostic.Equal),
		incremental.WithNodeStore[[]diagnostic.Diagnostic](g.store))

	return g, nil
}

// Run executes the pipeline. A canceled ctx yields ctx.Err() and no result;
// the tracked outputs are left as they were.
func (g *Generator) Run(ctx context.Context, in Input) (*Result, error) {
	if in.Facts == nil {
		return nil, ErrNilFacts
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	start := time.Now()
	log := g.logger.With("run_id", uuid.NewString())

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if in.LanguageVersion < g.cfg.MinLanguageVersion {
		log.Warn("language version not supported",
			"version", in.LanguageVersion,
			"min_version", g.cfg.MinLanguageVersion)

		d := diagnostic.New(diagnostic.LanguageVersionIsNotSupported, nil)

		return g.finish(log, start, nil, []diagnostic.Diagnostic{d}, nil), nil
	}

	providerType, okProvider := in.Facts.LookupType(g.cfg.ProviderType)
	resultType, okResult := in.Facts.LookupType(g.cfg.ResultType)

	if !okProvider || !okResult {
		log.Debug("known types not visible",
			"provider_type", g.cfg.ProviderType, "provider_found", okProvider,
			"result_type", g.cfg.ResultType, "result_found", okResult)

		return g.finish(log, start, nil, nil, nil), nil
	}

	// an invisible root only ends the walk at the first unknown base
	root, _ := in.Facts.LookupType(g.cfg.UniversalRoot)

	cands, err := g.extract(ctx, in.Declarations)
	if err != nil {
		return nil, err
	}

	cache := provider.NewCache(provider.NewResolver(in.Facts, providerType, root))
	v := validate.New(in.Facts, cache, validate.Options{
		ProviderType:   providerType,
		ResultType:     resultType,
		ReservedPrefix: g.cfg.ReservedPrefix,
	})

	outcomes, err := g.validate(ctx, v, cands)
	if err != nil {
		return nil, err
	}

	_, changes, err := g.candidates.Update(cands, func(c extract.Candidate) string { return c.Key })
	if err != nil {
		return nil, fmt.Errorf("track candidates: %w", err)
	}

	forest, diags := merge(in.Facts, cache, outcomes)

	log.Debug("candidates validated",
		"declarations", len(in.Declarations),
		"candidates", len(cands),
		"resolved_types", cache.Len())

	return g.finish(log, start, forest, diags, changes), nil
}

func (g *Generator) extract(ctx context.Context, decls []analyze.Declaration) ([]extract.Candidate, error) {
	var out []extract.Candidate

	for i := range decls {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if c, ok := extract.Extract(&decls[i], g.cfg.MarkerName); ok {
			out = append(out, c)
		}
	}

	return out, nil
}

func (g *Generator) validate(ctx context.Context, v *validate.Validator, cands []extract.Candidate) ([]validate.Outcome, error) {
	outcomes := make([]validate.Outcome, len(cands))

	workers := g.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i := range cands {
		if egCtx.Err() != nil {
			break
		}

		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			outcomes[i] = v.Validate(&cands[i])

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return outcomes, nil
}

// merge folds outcomes in candidate order. A type's resolution conflict is
// reported once, right before the first outcome that consulted it.
func merge(facts analyze.Facts, cache *provider.Cache, outcomes []validate.Outcome) (*spec.Forest, []diagnostic.Diagnostic) {
	diags := diagnostic.NewList()
	builder := spec.NewBuilder(facts, cache.Source)
	reported := make(map[analyze.TypeID]struct{})

	for _, o := range outcomes {
		if o.ConsultedProvider {
			if _, done := reported[o.Type]; !done {
				reported[o.Type] = struct{}{}

				if res, ok := cache.Lookup(o.Type); ok && res.Diagnostic != nil {
					diags.Add(*res.Diagnostic)
				}
			}
		}

		if o.Diagnostic != nil {
			diags.Add(*o.Diagnostic)
		}

		switch {
		case o.Method != nil:
			builder.Add(o.Type, *o.Method)
		case o.ConsultedProvider:
			builder.Register(o.Type)
		}
	}

	return builder.Build(), diags.Items()
}

func (g *Generator) finish(
	log *slog.Logger,
	start time.Time,
	forest *spec.Forest,
	diags []diagnostic.Diagnostic,
	changes []incremental.Change[string],
) *Result {
	forest, specReason, err := g.specs.Update(forest)
	if err != nil {
		log.Warn("spec cache unavailable", "error", err)
	}

	diags, diagReason, err := g.diagnostics.Update(diags)
	if err != nil {
		log.Warn("diagnostics cache unavailable", "error", err)
	}

	if g.observer != nil && forest != nil && specReason != incremental.StepCached {
		g.observer(forest)
	}

	log.Debug("run finished",
		"types", typeCount(forest),
		"methods", forest.MethodCount(),
		"diagnostics", len(diags),
		"spec_step", specReason.String(),
		"diagnostics_step", diagReason.String(),
		"duration", time.Since(start))

	return &Result{
		Spec:        forest,
		Diagnostics: diags,
		Steps: Steps{
			Candidates:  changes,
			Spec:        specReason,
			Diagnostics: diagReason,
		},
	}
}

func typeCount(f *spec.Forest) int {
	if f == nil {
		return 0
	}

	n := 0
	for i := range f.Types {
		f.Types[i].Walk(func(*spec.TypeNode) { n++ })
	}

	return n
}
