// Package request builds fully-formed dependency requests for every shape of
// injection site, including the synthetic requests the graph builder needs
// for multibindings, optional bindings and production infrastructure.
package request

import (
	"go.trai.ch/zerr"

	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/core/ports"
	"go.trai.ch/weft/internal/engine/classify"
)

var (
	membersInjectorName = domain.NewInternedString("MembersInjector")
	mapName             = domain.NewInternedString("Map")
)

// Kinds whose wrapper may appear around a map-multibinding value type.
var wrappingMapValueKinds = []domain.RequestKind{
	domain.KindProvider,
	domain.KindProducer,
}

// Builder constructs dependency requests. It is stateless and collaborates
// only with the key factory and the annotation lookups, so it is safe to use
// concurrently for independent injection sites.
type Builder struct {
	keys       ports.KeyFactory
	qualifiers ports.QualifierLookup
	nullables  ports.NullableLookup
}

// NewBuilder creates a new request builder.
func NewBuilder(
	keys ports.KeyFactory,
	qualifiers ports.QualifierLookup,
	nullables ports.NullableLookup,
) *Builder {
	return &Builder{
		keys:       keys,
		qualifiers: qualifiers,
		nullables:  nullables,
	}
}

// ForParameters builds one request per parameter site, paired positionally
// with its resolved type. A length mismatch between the two lists signals an
// upstream defect and fails with ErrArityMismatch.
func (b *Builder) ForParameters(
	sites []domain.Site,
	resolved []domain.Type,
) ([]domain.DependencyRequest, error) {
	if len(sites) != len(resolved) {
		return nil, zerr.With(zerr.With(domain.ErrArityMismatch,
			"sites", len(sites)), "resolved_types", len(resolved))
	}
	requests := make([]domain.DependencyRequest, 0, len(sites))
	for i, site := range sites {
		req, err := b.ForParameter(site, resolved[i])
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// ForParameter builds the request for a single parameter site.
func (b *Builder) ForParameter(site domain.Site, resolved domain.Type) (domain.DependencyRequest, error) {
	qualifier, _ := b.qualifiers.Qualifier(site)
	return b.newRequest(site, resolved, qualifier)
}

// ForProvisionAccessor builds the request for a no-argument component
// provision method from its declared return type.
func (b *Builder) ForProvisionAccessor(site domain.Site, method domain.Method) (domain.DependencyRequest, error) {
	if err := requireAccessorShape(site, method); err != nil {
		return domain.DependencyRequest{}, err
	}
	qualifier, _ := b.qualifiers.Qualifier(site)
	return b.newRequest(site, *method.Ret, qualifier)
}

// ForProductionAccessor builds the request for a no-argument component
// production method. A return type that is the future wrapper itself bypasses
// the generic classifier: only production accessors may request the Future
// kind, keyed by the future's sole type argument.
func (b *Builder) ForProductionAccessor(site domain.Site, method domain.Method) (domain.DependencyRequest, error) {
	if err := requireAccessorShape(site, method); err != nil {
		return domain.DependencyRequest{}, err
	}
	qualifier, _ := b.qualifiers.Qualifier(site)

	futureName, _ := classify.WrapperType(domain.KindFuture)
	if method.Ret.IsDeclared(futureName) {
		if produced, ok := method.Ret.SoleArg(); ok {
			return domain.DependencyRequest{
				Kind:     domain.KindFuture,
				Key:      b.keys.ForQualifiedType(qualifier, produced),
				Site:     &site,
				Nullable: AllowsNull(domain.KindFuture, false),
			}, nil
		}
	}
	return b.newRequest(site, *method.Ret, qualifier)
}

// ForMembersInjectionAccessor builds the request for a members-injection
// accessor. The injected type is the sole type argument of a
// MembersInjector-wrapped return type, or the type of the accessor's sole
// parameter otherwise. Members-injection targets are never qualified.
func (b *Builder) ForMembersInjectionAccessor(site domain.Site, method domain.Method) (domain.DependencyRequest, error) {
	if _, qualified := b.qualifiers.Qualifier(site); qualified {
		return domain.DependencyRequest{}, zerr.With(zerr.With(domain.ErrInvalidSignature,
			"site", site.String()),
			"reason", "members-injection accessors must not be qualified")
	}

	target, ok := membersInjectedType(method)
	if !ok {
		return domain.DependencyRequest{}, zerr.With(zerr.With(domain.ErrInvalidSignature,
			"site", site.String()),
			"reason", "accessor must return MembersInjector<T> or take exactly one parameter")
	}

	return domain.DependencyRequest{
		Kind:     domain.KindMembersInjection,
		Key:      b.keys.ForMembersInjectedType(target),
		Site:     &site,
		Nullable: AllowsNull(domain.KindMembersInjection, false),
	}, nil
}

// ForProductionExecutor builds the synthetic request threading the
// process-wide production executor into generated code.
func (b *Builder) ForProductionExecutor() domain.DependencyRequest {
	return b.syntheticProvider(b.keys.ForProductionExecutor())
}

// ForProductionMonitor builds the synthetic request for the production monitor.
func (b *Builder) ForProductionMonitor() domain.DependencyRequest {
	return b.syntheticProvider(b.keys.ForProductionMonitor())
}

// ForPresentOptional builds the synthetic request for the present value of an
// optional binding. The given kind applies to the unwrapped key; nullability
// is derived from the request kind the optional's value type would classify
// to as a plain, non-optional request.
func (b *Builder) ForPresentOptional(requestKey domain.Key, kind domain.RequestKind) (domain.DependencyRequest, error) {
	valueType, ok := b.keys.OptionalValueType(requestKey)
	if !ok {
		return domain.DependencyRequest{}, zerr.With(domain.ErrNotOptional,
			"key", requestKey.String())
	}
	inner, ok := b.keys.UnwrapOptional(requestKey)
	if !ok {
		return domain.DependencyRequest{}, zerr.With(domain.ErrNotOptional,
			"key", requestKey.String())
	}

	kt, err := classify.Classify(valueType)
	if err != nil {
		return domain.DependencyRequest{}, err
	}

	return domain.DependencyRequest{
		Kind:     kind,
		Key:      inner,
		Nullable: AllowsNull(kt.Kind, false),
	}, nil
}

// ForMultibindingContributions builds one synthetic request per contribution
// to the aggregate multibinding key.
func (b *Builder) ForMultibindingContributions(
	aggregate domain.Key,
	contributions []domain.ContributionBinding,
) ([]domain.DependencyRequest, error) {
	requests := make([]domain.DependencyRequest, 0, len(contributions))
	for _, contribution := range contributions {
		req, err := b.ForMultibindingContribution(aggregate, contribution)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// ForMultibindingContribution builds the synthetic request for one
// multibinding contribution. The contribution must not be tagged unique, and
// its key must carry a contribution identifier.
func (b *Builder) ForMultibindingContribution(
	aggregate domain.Key,
	contribution domain.ContributionBinding,
) (domain.DependencyRequest, error) {
	if contribution.Key.Contribution.IsZero() {
		return domain.DependencyRequest{}, zerr.With(zerr.With(domain.ErrInvalidMultibinding,
			"key", contribution.Key.String()),
			"reason", "contribution key lacks a contribution identifier")
	}

	kind, err := multibindingRequestKind(aggregate, contribution)
	if err != nil {
		return domain.DependencyRequest{}, err
	}

	return domain.DependencyRequest{
		Kind:     kind,
		Key:      contribution.Key,
		Nullable: AllowsNull(kind, false),
	}, nil
}

// multibindingRequestKind derives the request kind for one contribution. Map
// contributions whose aggregate value type is wrapped in Provider or Producer
// request that wrapper kind; everything else is a plain instance request.
func multibindingRequestKind(
	aggregate domain.Key,
	contribution domain.ContributionBinding,
) (domain.RequestKind, error) {
	switch contribution.Type {
	case domain.ContributionMap:
		if value, ok := mapValueType(aggregate.Type); ok {
			for _, kind := range wrappingMapValueKinds {
				wrapper, _ := classify.WrapperType(kind)
				if value.IsDeclared(wrapper) && len(value.Args) > 0 {
					return kind, nil
				}
			}
		}
		return domain.KindInstance, nil
	case domain.ContributionSet, domain.ContributionSetValues:
		return domain.KindInstance, nil
	case domain.ContributionUnique:
		return 0, zerr.With(zerr.With(domain.ErrInvalidMultibinding,
			"key", contribution.Key.String()),
			"reason", "unique bindings cannot contribute to a multibinding")
	default:
		return 0, zerr.With(domain.ErrInternalConsistency,
			"contribution", int(contribution.Type))
	}
}

// mapValueType returns the value type of a Map<K, V> descriptor.
func mapValueType(t domain.Type) (domain.Type, bool) {
	if t.Form != domain.FormDeclared || t.Name != mapName || len(t.Args) != 2 {
		return domain.Type{}, false
	}
	return t.Args[1], true
}

// newRequest is the generic path every declared injection site goes through:
// classify the type, build the key, derive nullability.
func (b *Builder) newRequest(
	site domain.Site,
	t domain.Type,
	qualifier domain.InternedString,
) (domain.DependencyRequest, error) {
	kt, err := classify.Classify(t)
	if err != nil {
		return domain.DependencyRequest{}, err
	}
	return domain.DependencyRequest{
		Kind:     kt.Kind,
		Key:      b.keys.ForQualifiedType(qualifier, kt.Type),
		Site:     &site,
		Nullable: AllowsNull(kt.Kind, b.nullables.Nullable(site)),
	}, nil
}

func (b *Builder) syntheticProvider(key domain.Key) domain.DependencyRequest {
	return domain.DependencyRequest{
		Kind:     domain.KindProvider,
		Key:      key,
		Nullable: AllowsNull(domain.KindProvider, false),
	}
}

// requireAccessorShape checks the shape shared by provision and production
// accessors: no parameters and a declared return type.
func requireAccessorShape(site domain.Site, method domain.Method) error {
	if len(method.Params) != 0 {
		return zerr.With(zerr.With(zerr.With(domain.ErrInvalidSignature,
			"site", site.String()),
			"reason", "component accessors must have no parameters"),
			"parameters", len(method.Params))
	}
	if method.Ret == nil {
		return zerr.With(zerr.With(domain.ErrInvalidSignature,
			"site", site.String()),
			"reason", "component accessors must declare a return type")
	}
	return nil
}

// membersInjectedType extracts the injected type from a members-injection
// accessor shape.
func membersInjectedType(method domain.Method) (domain.Type, bool) {
	if method.Ret != nil && method.Ret.IsDeclared(membersInjectorName) {
		if target, ok := method.Ret.SoleArg(); ok {
			return target, true
		}
	}
	if len(method.Params) == 1 {
		return method.Params[0].Type, true
	}
	return domain.Type{}, false
}
