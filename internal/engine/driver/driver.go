// Package driver runs classification over a manifest in passes. Sites whose
// types reference not-yet-generated names defer; between passes the driver
// marks generated names available and retries until every site classifies or
// no further progress is possible.
package driver

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/core/ports"
	"go.trai.ch/weft/internal/engine/request"
)

// SiteStatus represents the classification status of one injection site.
type SiteStatus string

const (
	// StatusPending indicates the site has not been classified yet.
	StatusPending SiteStatus = "Pending"
	// StatusClassified indicates the site classified successfully.
	StatusClassified SiteStatus = "Classified"
	// StatusDeferred indicates the site references a type that does not
	// exist yet and will be retried.
	StatusDeferred SiteStatus = "Deferred"
	// StatusFailed indicates the site is invalid.
	StatusFailed SiteStatus = "Failed"
)

// Result is the classified output of a driver run: the entry-point requests
// declared by components and the bindings declared by modules, both in
// deterministic order.
type Result struct {
	EntryPoints []domain.DependencyRequest
	Bindings    []domain.Binding
	// Passes is the number of classification passes the run took.
	Passes int
}

// Driver classifies every injection site of a manifest.
type Driver struct {
	builder   *request.Builder
	keys      ports.KeyFactory
	resolver  ports.TypeResolver
	telemetry ports.Telemetry
	logger    ports.Logger

	mu     sync.RWMutex
	status map[domain.Site]SiteStatus
}

// New creates a new Driver.
func New(
	builder *request.Builder,
	keys ports.KeyFactory,
	resolver ports.TypeResolver,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Driver {
	return &Driver{
		builder:   builder,
		keys:      keys,
		resolver:  resolver,
		telemetry: telemetry,
		logger:    logger,
		status:    make(map[domain.Site]SiteStatus),
	}
}

// Status returns the classification status of a site.
func (d *Driver) Status(site domain.Site) SiteStatus {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.status[site]
}

func (d *Driver) setStatus(site domain.Site, status SiteStatus) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.status[site] = status
}

// unit is one schedulable piece of classification work.
type unit struct {
	site domain.Site
	run  func() (classified, error)
}

// classified is what a unit produces: entry-point requests, a binding, or both.
type classified struct {
	entries []domain.DependencyRequest
	binding *domain.Binding
}

// Run classifies the whole manifest with the given parallelism per pass.
func (d *Driver) Run(ctx context.Context, manifest *domain.Manifest, parallelism int) (*Result, error) {
	if parallelism < 1 {
		parallelism = 1
	}

	pending := d.buildUnits(manifest)
	for _, u := range pending {
		d.setStatus(u.site, StatusPending)
	}

	result := &Result{}
	marked := false

	for len(pending) > 0 {
		result.Passes++
		passCtx, vtx := d.telemetry.Record(ctx, fmt.Sprintf("classify pass %d", result.Passes))

		deferred, err := d.runPass(passCtx, pending, result, parallelism)
		vtx.Log(fmt.Sprintf("%d sites classified, %d deferred", len(pending)-len(deferred), len(deferred)))
		vtx.Complete(err)
		if err != nil {
			return nil, err
		}

		if len(deferred) == 0 {
			break
		}
		if !marked && len(manifest.Generated) > 0 {
			for _, name := range manifest.Generated {
				d.resolver.MarkAvailable(name)
			}
			d.logger.Info(fmt.Sprintf("marked %d generated types available", len(manifest.Generated)))
			marked = true
		} else if len(deferred) == len(pending) {
			return nil, unresolvedError(deferred)
		}
		pending = deferred
	}

	sortResult(result)
	return result, nil
}

// runPass classifies every pending unit concurrently and returns the units
// that deferred. Invalid sites fail the pass; their diagnostics are joined so
// one pass reports every defect it saw.
func (d *Driver) runPass(ctx context.Context, pending []unit, result *Result, parallelism int) ([]unit, error) {
	var (
		mu       sync.Mutex
		deferred []unit
		failures error
	)

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for _, u := range pending {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := u.run()

			mu.Lock()
			defer mu.Unlock()
			switch {
			case errors.Is(err, domain.ErrDeferredResolution):
				d.setStatus(u.site, StatusDeferred)
				deferred = append(deferred, u)
			case err != nil:
				d.setStatus(u.site, StatusFailed)
				failures = errors.Join(failures,
					zerr.With(zerr.Wrap(err, "classification failed"), "site", u.site.String()))
			default:
				d.setStatus(u.site, StatusClassified)
				result.EntryPoints = append(result.EntryPoints, out.entries...)
				if out.binding != nil {
					result.Bindings = append(result.Bindings, *out.binding)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if failures != nil {
		return nil, zerr.Wrap(failures, domain.ErrClassificationFailed.Error())
	}
	return deferred, nil
}

// buildUnits flattens the manifest into one unit per injection site.
func (d *Driver) buildUnits(manifest *domain.Manifest) []unit {
	var units []unit

	for _, component := range manifest.Components {
		units = append(units, d.componentUnits(component)...)
	}
	for _, module := range manifest.Modules {
		for _, binding := range module.Bindings {
			units = append(units, d.bindingUnit(module, binding))
		}
	}
	return units
}

func (d *Driver) componentUnits(component domain.Component) []unit {
	var units []unit

	for _, method := range component.Provisions {
		site := domain.MethodSite(component.Name, method.Name)
		units = append(units, unit{site: site, run: func() (classified, error) {
			req, err := d.builder.ForProvisionAccessor(site, d.resolveMethod(method))
			if err != nil {
				return classified{}, err
			}
			return classified{entries: []domain.DependencyRequest{req}}, nil
		}})
	}
	for _, method := range component.Productions {
		site := domain.MethodSite(component.Name, method.Name)
		units = append(units, unit{site: site, run: func() (classified, error) {
			req, err := d.builder.ForProductionAccessor(site, d.resolveMethod(method))
			if err != nil {
				return classified{}, err
			}
			return classified{entries: []domain.DependencyRequest{req}}, nil
		}})
	}
	for _, method := range component.MembersInjections {
		site := domain.MethodSite(component.Name, method.Name)
		units = append(units, unit{site: site, run: func() (classified, error) {
			req, err := d.builder.ForMembersInjectionAccessor(site, d.resolveMethod(method))
			if err != nil {
				return classified{}, err
			}
			return classified{entries: []domain.DependencyRequest{req}}, nil
		}})
	}

	// A component with production accessors implicitly depends on the
	// production infrastructure.
	if len(component.Productions) > 0 {
		site := domain.MethodSite(component.Name, domain.NewInternedString("<production-infrastructure>"))
		units = append(units, unit{site: site, run: func() (classified, error) {
			return classified{entries: []domain.DependencyRequest{
				d.builder.ForProductionExecutor(),
				d.builder.ForProductionMonitor(),
			}}, nil
		}})
	}
	return units
}

// bindingUnit classifies one module binding: its bound key plus one request
// per parameter.
func (d *Driver) bindingUnit(module domain.Module, binding domain.ModuleBinding) unit {
	site := domain.MethodSite(module.Name, binding.Name)
	return unit{site: site, run: func() (classified, error) {
		provides := d.resolver.Resolve(binding.Provides)
		if provides.IsUnresolved() {
			return classified{}, zerr.With(domain.ErrDeferredResolution,
				"type", provides.String())
		}

		sites := make([]domain.Site, 0, len(binding.Params))
		resolved := make([]domain.Type, 0, len(binding.Params))
		for _, param := range binding.Params {
			sites = append(sites, domain.ParamSite(module.Name, binding.Name, param.Name))
			resolved = append(resolved, d.resolver.Resolve(param.Type))
		}
		deps, err := d.builder.ForParameters(sites, resolved)
		if err != nil {
			return classified{}, err
		}

		key := d.bindingKey(module, binding, provides)
		return classified{binding: &domain.Binding{
			Key:          key,
			Contribution: binding.Contribution,
			Production:   binding.Production,
			Module:       module.Name,
			Dependencies: deps,
		}}, nil
	}}
}

func (d *Driver) bindingKey(module domain.Module, binding domain.ModuleBinding, provides domain.Type) domain.Key {
	if binding.Contribution.Multibinding() {
		return d.keys.ForMultibindingContribution(binding.Qualifier, provides, domain.ContributionID{
			Module:  module.Name,
			Binding: binding.Name,
		})
	}
	return d.keys.ForQualifiedType(binding.Qualifier, provides)
}

// resolveMethod re-resolves a method's declared types against the current set
// of available generated names.
func (d *Driver) resolveMethod(method domain.Method) domain.Method {
	out := method
	if method.Ret != nil {
		ret := d.resolver.Resolve(*method.Ret)
		out.Ret = &ret
	}
	if len(method.Params) > 0 {
		out.Params = make([]domain.Param, len(method.Params))
		for i, p := range method.Params {
			out.Params[i] = domain.Param{Name: p.Name, Type: d.resolver.Resolve(p.Type)}
		}
	}
	return out
}

func unresolvedError(deferred []unit) error {
	sites := make([]string, 0, len(deferred))
	for _, u := range deferred {
		sites = append(sites, u.site.String())
	}
	slices.Sort(sites)
	return zerr.With(domain.ErrUnresolvedTypes, "sites", strings.Join(sites, ", "))
}

// sortResult orders entries and bindings so that run output is deterministic
// regardless of per-pass goroutine interleaving.
func sortResult(result *Result) {
	slices.SortFunc(result.EntryPoints, func(a, b domain.DependencyRequest) int {
		return strings.Compare(a.String(), b.String())
	})
	slices.SortFunc(result.Bindings, func(a, b domain.Binding) int {
		return strings.Compare(a.BindingKey().String(), b.BindingKey().String())
	})
}
