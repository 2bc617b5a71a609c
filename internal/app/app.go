// Package app implements the application layer for weft: loading a manifest,
// classifying every injection site and validating the resulting binding graph.
package app

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"go.trai.ch/zerr"

	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/core/ports"
	"go.trai.ch/weft/internal/engine/classify"
	"go.trai.ch/weft/internal/engine/driver"
	"go.trai.ch/weft/internal/engine/graph"
	"go.trai.ch/weft/internal/engine/request"
)

var setName = domain.NewInternedString("Set")

// CheckOptions configures a manifest check.
type CheckOptions struct {
	// Parallelism bounds concurrent classification per pass. Zero means one
	// worker per CPU.
	Parallelism int
}

// Report summarizes a successful check.
type Report struct {
	Components  int
	Modules     int
	Bindings    int
	EntryPoints int
	Passes      int
}

// App represents the main application logic.
type App struct {
	loader    ports.ManifestLoader
	keys      ports.KeyFactory
	resolver  ports.TypeResolver
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ManifestLoader,
	keyFactory ports.KeyFactory,
	resolver ports.TypeResolver,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		loader:    loader,
		keys:      keyFactory,
		resolver:  resolver,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Check loads the manifest at path, classifies it and validates the binding
// graph. The annotation lookups live on the manifest, so the request builder
// and driver are assembled per run.
func (a *App) Check(ctx context.Context, path string, opts CheckOptions) (*Report, error) {
	parallelism := opts.Parallelism
	if parallelism < 1 {
		parallelism = runtime.NumCPU()
	}

	manifest, err := a.loader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load manifest")
	}

	builder := request.NewBuilder(a.keys, &manifest.Annotations, &manifest.Annotations)
	drv := driver.New(builder, a.keys, a.resolver, a.telemetry, a.logger)

	result, err := drv.Run(ctx, manifest, parallelism)
	if err != nil {
		return nil, err
	}

	g, err := a.assembleGraph(builder, result)
	if err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if err := a.resolveEntryPoints(g, result.EntryPoints); err != nil {
		return nil, err
	}

	report := &Report{
		Components:  len(manifest.Components),
		Modules:     len(manifest.Modules),
		Bindings:    g.Size(),
		EntryPoints: len(result.EntryPoints),
		Passes:      result.Passes,
	}
	a.logger.Info(fmt.Sprintf(
		"binding graph valid: %d bindings, %d entry points, %d passes",
		report.Bindings, report.EntryPoints, report.Passes))
	return report, nil
}

// assembleGraph builds the binding graph from the classified bindings plus the
// implicit bindings generated code supplies: members injectors, production
// infrastructure, multibinding aggregates and present-optional dependencies.
func (a *App) assembleGraph(builder *request.Builder, result *driver.Result) (*graph.Graph, error) {
	bindings, err := a.wireOptionals(builder, result.Bindings)
	if err != nil {
		return nil, err
	}

	g := graph.New()
	for _, b := range bindings {
		if err := g.Add(b); err != nil {
			return nil, err
		}
	}
	if err := a.addImplicitBindings(g, result.EntryPoints); err != nil {
		return nil, err
	}
	if err := a.addAggregates(g, builder, bindings); err != nil {
		return nil, err
	}
	return g, nil
}

// wireOptionals gives each optional binding a dependency on the present value
// when the underlying binding exists. An absent underlying binding leaves the
// optional empty rather than failing.
func (a *App) wireOptionals(builder *request.Builder, bindings []domain.Binding) ([]domain.Binding, error) {
	declared := make(map[uint64]bool, len(bindings))
	for _, b := range bindings {
		if !b.Members {
			declared[b.Key.Fingerprint()] = true
		}
	}

	out := make([]domain.Binding, len(bindings))
	for i, b := range bindings {
		out[i] = b

		valueType, ok := a.keys.OptionalValueType(b.Key)
		if !ok {
			continue
		}
		inner, ok := a.keys.UnwrapOptional(b.Key)
		if !ok || !declared[inner.Fingerprint()] {
			continue
		}

		kt, err := classify.Classify(valueType)
		if err != nil {
			return nil, zerr.With(err, "key", b.Key.String())
		}
		present, err := builder.ForPresentOptional(b.Key, kt.Kind)
		if err != nil {
			return nil, err
		}
		out[i].Dependencies = append(out[i].Dependencies, present)
	}
	return out, nil
}

// addImplicitBindings adds the bindings generated code synthesizes for entry
// points: a members injector per members-injection accessor and the production
// executor and monitor bindings behind their synthetic requests.
func (a *App) addImplicitBindings(g *graph.Graph, entryPoints []domain.DependencyRequest) error {
	for _, entry := range entryPoints {
		switch {
		case entry.Kind == domain.KindMembersInjection:
			bk := domain.MembersInjectionKey(entry.Key)
			if _, ok := g.Lookup(bk); ok {
				continue
			}
			if err := g.Add(domain.Binding{Key: entry.Key, Members: true}); err != nil {
				return err
			}
		case entry.Synthetic():
			bk := domain.ContributionKey(entry.Key)
			if _, ok := g.Lookup(bk); ok {
				continue
			}
			if err := g.Add(domain.Binding{Key: entry.Key, Production: true}); err != nil {
				return err
			}
		}
	}
	return nil
}

// addAggregates synthesizes one aggregate binding per distinct contributed
// element key, with a synthetic request per contribution. Set and set-values
// contributions aggregate to Set<T>; map contributions to Map<String, T>.
func (a *App) addAggregates(g *graph.Graph, builder *request.Builder, bindings []domain.Binding) error {
	type aggregate struct {
		key        domain.Key
		production bool
	}
	seen := make(map[uint64]aggregate)

	for _, b := range bindings {
		if !b.Contribution.Multibinding() {
			continue
		}
		key := a.aggregateKey(b)
		fp := key.Fingerprint()
		if prior, ok := seen[fp]; ok {
			seen[fp] = aggregate{key: key, production: prior.production || b.Production}
			continue
		}
		seen[fp] = aggregate{key: key, production: b.Production}
	}

	for _, agg := range seen {
		element := a.elementKey(agg.key)
		deps, err := builder.ForMultibindingContributions(agg.key, g.Contributions(element))
		if err != nil {
			return err
		}
		if err := g.Add(domain.Binding{
			Key:          agg.key,
			Production:   agg.production,
			Dependencies: deps,
		}); err != nil {
			return err
		}
	}
	return nil
}

// aggregateKey derives the aggregate key a contribution feeds into.
func (a *App) aggregateKey(b domain.Binding) domain.Key {
	var aggType domain.Type
	if b.Contribution == domain.ContributionMap {
		aggType = domain.Declared("Map", domain.Declared("String"), b.Key.Type)
	} else {
		aggType = domain.Declared("Set", b.Key.Type)
	}
	return a.keys.ForQualifiedType(b.Key.Qualifier, aggType)
}

// elementKey recovers the contributed element key from an aggregate key.
func (a *App) elementKey(agg domain.Key) domain.Key {
	if element, ok := agg.Type.SoleArg(); ok && agg.Type.Name == setName {
		return domain.Key{Type: element, Qualifier: agg.Qualifier}
	}
	if len(agg.Type.Args) == 2 {
		return domain.Key{Type: agg.Type.Args[1], Qualifier: agg.Qualifier}
	}
	return domain.Key{Type: agg.Type, Qualifier: agg.Qualifier}
}

// resolveEntryPoints checks that every component accessor's request resolves
// to a binding. All unresolved entry points are reported together.
func (a *App) resolveEntryPoints(g *graph.Graph, entryPoints []domain.DependencyRequest) error {
	var missing error
	for _, entry := range entryPoints {
		bk, err := entry.BindingKey()
		if err != nil {
			return err
		}
		if _, ok := g.Lookup(bk); !ok {
			missing = errors.Join(missing, zerr.With(zerr.With(domain.ErrMissingBinding,
				"key", bk.String()),
				"entry_point", entry.String()))
		}
	}
	return missing
}
