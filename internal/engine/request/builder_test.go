package request_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/core/ports/mocks"
	"go.trai.ch/weft/internal/engine/keys"
	"go.trai.ch/weft/internal/engine/request"
)

type builderFixture struct {
	builder    *request.Builder
	qualifiers *mocks.MockQualifierLookup
	nullables  *mocks.MockNullableLookup
	keys       *keys.Factory
}

func newBuilderFixture(t *testing.T) *builderFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	qualifiers := mocks.NewMockQualifierLookup(ctrl)
	nullables := mocks.NewMockNullableLookup(ctrl)
	factory := keys.New()
	return &builderFixture{
		builder:    request.NewBuilder(factory, qualifiers, nullables),
		qualifiers: qualifiers,
		nullables:  nullables,
		keys:       factory,
	}
}

func paramSite(member string) domain.Site {
	return domain.Site{
		Kind:   domain.SiteParameter,
		Owner:  domain.NewInternedString("WidgetModule"),
		Member: domain.NewInternedString(member),
	}
}

func methodSite(member string) domain.Site {
	return domain.Site{
		Kind:   domain.SiteMethod,
		Owner:  domain.NewInternedString("AppComponent"),
		Member: domain.NewInternedString(member),
	}
}

func TestForParameter(t *testing.T) {
	widget := domain.Declared("Widget")

	tests := []struct {
		name         string
		resolved     domain.Type
		qualifier    string
		nullable     bool
		wantKind     domain.RequestKind
		wantKeyType  domain.Type
		wantNullable bool
	}{
		{
			name:         "plain instance",
			resolved:     widget,
			wantKind:     domain.KindInstance,
			wantKeyType:  widget,
			wantNullable: false,
		},
		{
			name:         "nullable instance",
			resolved:     widget,
			nullable:     true,
			wantKind:     domain.KindInstance,
			wantKeyType:  widget,
			wantNullable: true,
		},
		{
			name:         "provider strips wrapper",
			resolved:     domain.Declared("Provider", widget),
			wantKind:     domain.KindProvider,
			wantKeyType:  widget,
			wantNullable: true,
		},
		{
			name:         "lazy",
			resolved:     domain.Declared("Lazy", widget),
			wantKind:     domain.KindLazy,
			wantKeyType:  widget,
			wantNullable: true,
		},
		{
			name:         "provider of lazy collapses",
			resolved:     domain.Declared("Provider", domain.Declared("Lazy", widget)),
			wantKind:     domain.KindProviderOfLazy,
			wantKeyType:  widget,
			wantNullable: true,
		},
		{
			name:         "producer",
			resolved:     domain.Declared("Producer", widget),
			wantKind:     domain.KindProducer,
			wantKeyType:  widget,
			wantNullable: true,
		},
		{
			name:         "qualified instance",
			resolved:     widget,
			qualifier:    "blue",
			wantKind:     domain.KindInstance,
			wantKeyType:  widget,
			wantNullable: false,
		},
		{
			name:         "primitive boxes to declared key",
			resolved:     domain.Primitive("int"),
			wantKind:     domain.KindInstance,
			wantKeyType:  domain.Declared("int"),
			wantNullable: false,
		},
		{
			name:         "raw wrapper is an instance of itself",
			resolved:     domain.Declared("Provider"),
			wantKind:     domain.KindInstance,
			wantKeyType:  domain.Declared("Provider"),
			wantNullable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBuilderFixture(t)
			site := paramSite("widget")
			f.qualifiers.EXPECT().Qualifier(site).
				Return(domain.NewInternedString(tt.qualifier), tt.qualifier != "")
			f.nullables.EXPECT().Nullable(site).Return(tt.nullable).AnyTimes()

			req, err := f.builder.ForParameter(site, tt.resolved)
			require.NoError(t, err)

			assert.Equal(t, tt.wantKind, req.Kind)
			assert.True(t, req.Key.Type.Equal(tt.wantKeyType), "key type %s", req.Key.Type)
			assert.Equal(t, tt.qualifier, req.Key.Qualifier.String())
			assert.Equal(t, tt.wantNullable, req.Nullable)
			require.NotNil(t, req.Site)
			assert.Equal(t, site, *req.Site)
		})
	}
}

func TestForParameterUnresolvedDefers(t *testing.T) {
	f := newBuilderFixture(t)
	site := paramSite("pending")
	f.qualifiers.EXPECT().Qualifier(site).Return(domain.InternedString{}, false).AnyTimes()
	f.nullables.EXPECT().Nullable(site).Return(false).AnyTimes()

	_, err := f.builder.ForParameter(site, domain.Unresolved("GeneratedWidget"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDeferredResolution))

	// Deferred classification is retryable: the same call fails the same way
	// until the type becomes resolvable.
	_, err = f.builder.ForParameter(site, domain.Unresolved("GeneratedWidget"))
	assert.True(t, errors.Is(err, domain.ErrDeferredResolution))
}

func TestForParameters(t *testing.T) {
	widget := domain.Declared("Widget")
	gear := domain.Declared("Gear")

	t.Run("pairs sites with resolved types positionally", func(t *testing.T) {
		f := newBuilderFixture(t)
		sites := []domain.Site{paramSite("widget"), paramSite("gear")}
		f.qualifiers.EXPECT().Qualifier(gomock.Any()).
			Return(domain.InternedString{}, false).Times(2)
		f.nullables.EXPECT().Nullable(gomock.Any()).Return(false).Times(2)

		reqs, err := f.builder.ForParameters(sites, []domain.Type{
			widget,
			domain.Declared("Lazy", gear),
		})
		require.NoError(t, err)
		require.Len(t, reqs, 2)

		assert.Equal(t, domain.KindInstance, reqs[0].Kind)
		assert.True(t, reqs[0].Key.Type.Equal(widget))
		assert.Equal(t, domain.KindLazy, reqs[1].Kind)
		assert.True(t, reqs[1].Key.Type.Equal(gear))
	})

	t.Run("length mismatch fails", func(t *testing.T) {
		f := newBuilderFixture(t)

		_, err := f.builder.ForParameters(
			[]domain.Site{paramSite("widget")},
			[]domain.Type{widget, gear},
		)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrArityMismatch))
	})

	t.Run("first failing site aborts the batch", func(t *testing.T) {
		f := newBuilderFixture(t)
		f.qualifiers.EXPECT().Qualifier(gomock.Any()).
			Return(domain.InternedString{}, false).AnyTimes()
		f.nullables.EXPECT().Nullable(gomock.Any()).Return(false).AnyTimes()

		_, err := f.builder.ForParameters(
			[]domain.Site{paramSite("widget"), paramSite("pending")},
			[]domain.Type{widget, domain.Unresolved("GeneratedGear")},
		)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDeferredResolution))
	})
}

func TestForProvisionAccessor(t *testing.T) {
	widget := domain.Declared("Widget")

	t.Run("returns the declared type as an instance request", func(t *testing.T) {
		f := newBuilderFixture(t)
		site := methodSite("widget")
		f.qualifiers.EXPECT().Qualifier(site).Return(domain.InternedString{}, false)
		f.nullables.EXPECT().Nullable(site).Return(false)

		req, err := f.builder.ForProvisionAccessor(site, domain.Method{
			Name: domain.NewInternedString("widget"),
			Ret:  &widget,
		})
		require.NoError(t, err)

		assert.Equal(t, domain.KindInstance, req.Kind)
		assert.True(t, req.Key.Type.Equal(widget))
		assert.False(t, req.Nullable)
	})

	t.Run("qualified provider accessor", func(t *testing.T) {
		f := newBuilderFixture(t)
		site := methodSite("blueWidgetProvider")
		ret := domain.Declared("Provider", widget)
		f.qualifiers.EXPECT().Qualifier(site).Return(domain.NewInternedString("blue"), true)
		f.nullables.EXPECT().Nullable(site).Return(false).AnyTimes()

		req, err := f.builder.ForProvisionAccessor(site, domain.Method{
			Name: domain.NewInternedString("blueWidgetProvider"),
			Ret:  &ret,
		})
		require.NoError(t, err)

		assert.Equal(t, domain.KindProvider, req.Kind)
		assert.True(t, req.Key.Type.Equal(widget))
		assert.Equal(t, "blue", req.Key.Qualifier.String())
		assert.True(t, req.Nullable)
	})

	t.Run("parameters are rejected", func(t *testing.T) {
		f := newBuilderFixture(t)

		_, err := f.builder.ForProvisionAccessor(methodSite("widget"), domain.Method{
			Name:   domain.NewInternedString("widget"),
			Params: []domain.Param{{Name: domain.NewInternedString("w"), Type: widget}},
			Ret:    &widget,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidSignature))
	})

	t.Run("missing return type is rejected", func(t *testing.T) {
		f := newBuilderFixture(t)

		_, err := f.builder.ForProvisionAccessor(methodSite("widget"), domain.Method{
			Name: domain.NewInternedString("widget"),
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidSignature))
	})
}

func TestForProductionAccessor(t *testing.T) {
	widget := domain.Declared("Widget")

	t.Run("future return requests the future kind", func(t *testing.T) {
		f := newBuilderFixture(t)
		site := methodSite("widget")
		ret := domain.Declared("Future", widget)
		f.qualifiers.EXPECT().Qualifier(site).Return(domain.InternedString{}, false)

		req, err := f.builder.ForProductionAccessor(site, domain.Method{
			Name: domain.NewInternedString("widget"),
			Ret:  &ret,
		})
		require.NoError(t, err)

		assert.Equal(t, domain.KindFuture, req.Kind)
		assert.True(t, req.Key.Type.Equal(widget))
		assert.True(t, req.Nullable)
	})

	t.Run("future of primitive boxes the key", func(t *testing.T) {
		f := newBuilderFixture(t)
		site := methodSite("count")
		ret := domain.Declared("Future", domain.Primitive("int"))
		f.qualifiers.EXPECT().Qualifier(site).Return(domain.InternedString{}, false)

		req, err := f.builder.ForProductionAccessor(site, domain.Method{
			Name: domain.NewInternedString("count"),
			Ret:  &ret,
		})
		require.NoError(t, err)

		assert.Equal(t, domain.KindFuture, req.Kind)
		assert.True(t, req.Key.Type.Equal(domain.Declared("int")))
	})

	t.Run("producer return goes through the classifier", func(t *testing.T) {
		f := newBuilderFixture(t)
		site := methodSite("widgetProducer")
		ret := domain.Declared("Producer", widget)
		f.qualifiers.EXPECT().Qualifier(site).Return(domain.InternedString{}, false)
		f.nullables.EXPECT().Nullable(site).Return(false).AnyTimes()

		req, err := f.builder.ForProductionAccessor(site, domain.Method{
			Name: domain.NewInternedString("widgetProducer"),
			Ret:  &ret,
		})
		require.NoError(t, err)

		assert.Equal(t, domain.KindProducer, req.Kind)
		assert.True(t, req.Key.Type.Equal(widget))
	})

	t.Run("raw future falls back to an instance request", func(t *testing.T) {
		f := newBuilderFixture(t)
		site := methodSite("rawFuture")
		ret := domain.Declared("Future")
		f.qualifiers.EXPECT().Qualifier(site).Return(domain.InternedString{}, false)
		f.nullables.EXPECT().Nullable(site).Return(false)

		req, err := f.builder.ForProductionAccessor(site, domain.Method{
			Name: domain.NewInternedString("rawFuture"),
			Ret:  &ret,
		})
		require.NoError(t, err)

		assert.Equal(t, domain.KindInstance, req.Kind)
		assert.True(t, req.Key.Type.Equal(ret))
	})

	t.Run("parameters are rejected", func(t *testing.T) {
		f := newBuilderFixture(t)
		ret := domain.Declared("Future", widget)

		_, err := f.builder.ForProductionAccessor(methodSite("widget"), domain.Method{
			Name:   domain.NewInternedString("widget"),
			Params: []domain.Param{{Name: domain.NewInternedString("w"), Type: widget}},
			Ret:    &ret,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidSignature))
	})
}

func TestForMembersInjectionAccessor(t *testing.T) {
	widget := domain.Declared("Widget")

	t.Run("members injector return", func(t *testing.T) {
		f := newBuilderFixture(t)
		site := methodSite("widgetInjector")
		ret := domain.Declared("MembersInjector", widget)
		f.qualifiers.EXPECT().Qualifier(site).Return(domain.InternedString{}, false)

		req, err := f.builder.ForMembersInjectionAccessor(site, domain.Method{
			Name: domain.NewInternedString("widgetInjector"),
			Ret:  &ret,
		})
		require.NoError(t, err)

		assert.Equal(t, domain.KindMembersInjection, req.Kind)
		assert.True(t, req.Key.Type.Equal(widget))
		assert.True(t, req.Nullable)
	})

	t.Run("single parameter form", func(t *testing.T) {
		f := newBuilderFixture(t)
		site := methodSite("inject")
		f.qualifiers.EXPECT().Qualifier(site).Return(domain.InternedString{}, false)

		req, err := f.builder.ForMembersInjectionAccessor(site, domain.Method{
			Name:   domain.NewInternedString("inject"),
			Params: []domain.Param{{Name: domain.NewInternedString("target"), Type: widget}},
		})
		require.NoError(t, err)

		assert.Equal(t, domain.KindMembersInjection, req.Kind)
		assert.True(t, req.Key.Type.Equal(widget))
	})

	t.Run("qualified accessor is rejected", func(t *testing.T) {
		f := newBuilderFixture(t)
		site := methodSite("inject")
		f.qualifiers.EXPECT().Qualifier(site).Return(domain.NewInternedString("blue"), true)

		_, err := f.builder.ForMembersInjectionAccessor(site, domain.Method{
			Name:   domain.NewInternedString("inject"),
			Params: []domain.Param{{Name: domain.NewInternedString("target"), Type: widget}},
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidSignature))
	})

	t.Run("unrecognized shape is rejected", func(t *testing.T) {
		f := newBuilderFixture(t)
		site := methodSite("inject")
		f.qualifiers.EXPECT().Qualifier(site).Return(domain.InternedString{}, false)

		_, err := f.builder.ForMembersInjectionAccessor(site, domain.Method{
			Name: domain.NewInternedString("inject"),
			Params: []domain.Param{
				{Name: domain.NewInternedString("a"), Type: widget},
				{Name: domain.NewInternedString("b"), Type: widget},
			},
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidSignature))
	})
}

func TestSyntheticProductionRequests(t *testing.T) {
	f := newBuilderFixture(t)

	executor := f.builder.ForProductionExecutor()
	assert.Equal(t, domain.KindProvider, executor.Kind)
	assert.True(t, executor.Key.Type.Equal(domain.Declared("ProductionExecutor")))
	assert.Nil(t, executor.Site)
	assert.True(t, executor.Synthetic())
	assert.True(t, executor.Nullable)

	monitor := f.builder.ForProductionMonitor()
	assert.Equal(t, domain.KindProvider, monitor.Kind)
	assert.True(t, monitor.Key.Type.Equal(domain.Declared("ProductionMonitor")))
	assert.Nil(t, monitor.Site)
}

func TestForPresentOptional(t *testing.T) {
	widget := domain.Declared("Widget")
	factory := keys.New()

	t.Run("plain optional value is not nullable", func(t *testing.T) {
		f := newBuilderFixture(t)
		key := factory.ForQualifiedType(domain.InternedString{}, domain.Declared("Optional", widget))

		req, err := f.builder.ForPresentOptional(key, domain.KindInstance)
		require.NoError(t, err)

		assert.Equal(t, domain.KindInstance, req.Kind)
		assert.True(t, req.Key.Type.Equal(widget))
		assert.Nil(t, req.Site)
		assert.False(t, req.Nullable)
	})

	t.Run("provider-wrapped optional value is nullable", func(t *testing.T) {
		f := newBuilderFixture(t)
		key := factory.ForQualifiedType(domain.InternedString{},
			domain.Declared("Optional", domain.Declared("Provider", widget)))

		req, err := f.builder.ForPresentOptional(key, domain.KindProvider)
		require.NoError(t, err)

		assert.Equal(t, domain.KindProvider, req.Kind)
		assert.True(t, req.Key.Type.Equal(widget))
		assert.True(t, req.Nullable)
	})

	t.Run("qualifier carries over", func(t *testing.T) {
		f := newBuilderFixture(t)
		key := factory.ForQualifiedType(domain.NewInternedString("blue"),
			domain.Declared("Optional", widget))

		req, err := f.builder.ForPresentOptional(key, domain.KindInstance)
		require.NoError(t, err)
		assert.Equal(t, "blue", req.Key.Qualifier.String())
	})

	t.Run("non-optional key is rejected", func(t *testing.T) {
		f := newBuilderFixture(t)
		key := factory.ForQualifiedType(domain.InternedString{}, widget)

		_, err := f.builder.ForPresentOptional(key, domain.KindInstance)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotOptional))
	})

	t.Run("unresolved optional value defers", func(t *testing.T) {
		f := newBuilderFixture(t)
		key := factory.ForQualifiedType(domain.InternedString{},
			domain.Declared("Optional", domain.Unresolved("GeneratedWidget")))

		_, err := f.builder.ForPresentOptional(key, domain.KindInstance)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDeferredResolution))
	})
}

func TestForMultibindingContribution(t *testing.T) {
	widget := domain.Declared("Widget")
	factory := keys.New()
	id := domain.ContributionID{
		Module:  domain.NewInternedString("WidgetModule"),
		Binding: domain.NewInternedString("provideWidget"),
	}
	contributionKey := factory.ForMultibindingContribution(domain.InternedString{}, widget, id)

	tests := []struct {
		name      string
		aggregate domain.Key
		binding   domain.ContributionBinding
		wantKind  domain.RequestKind
		wantErr   error
	}{
		{
			name:      "set contribution is an instance request",
			aggregate: factory.ForQualifiedType(domain.InternedString{}, domain.Declared("Set", widget)),
			binding: domain.ContributionBinding{
				Type: domain.ContributionSet,
				Key:  contributionKey,
			},
			wantKind: domain.KindInstance,
		},
		{
			name:      "set-values contribution is an instance request",
			aggregate: factory.ForQualifiedType(domain.InternedString{}, domain.Declared("Set", widget)),
			binding: domain.ContributionBinding{
				Type: domain.ContributionSetValues,
				Key:  contributionKey,
			},
			wantKind: domain.KindInstance,
		},
		{
			name: "map of plain values is an instance request",
			aggregate: factory.ForQualifiedType(domain.InternedString{},
				domain.Declared("Map", domain.Declared("String"), widget)),
			binding: domain.ContributionBinding{
				Type: domain.ContributionMap,
				Key:  contributionKey,
			},
			wantKind: domain.KindInstance,
		},
		{
			name: "map of providers requests the provider",
			aggregate: factory.ForQualifiedType(domain.InternedString{},
				domain.Declared("Map", domain.Declared("String"), domain.Declared("Provider", widget))),
			binding: domain.ContributionBinding{
				Type: domain.ContributionMap,
				Key:  contributionKey,
			},
			wantKind: domain.KindProvider,
		},
		{
			name: "map of producers requests the producer",
			aggregate: factory.ForQualifiedType(domain.InternedString{},
				domain.Declared("Map", domain.Declared("String"), domain.Declared("Producer", widget))),
			binding: domain.ContributionBinding{
				Type: domain.ContributionMap,
				Key:  contributionKey,
			},
			wantKind: domain.KindProducer,
		},
		{
			name: "map of raw providers is an instance request",
			aggregate: factory.ForQualifiedType(domain.InternedString{},
				domain.Declared("Map", domain.Declared("String"), domain.Declared("Provider"))),
			binding: domain.ContributionBinding{
				Type: domain.ContributionMap,
				Key:  contributionKey,
			},
			wantKind: domain.KindInstance,
		},
		{
			name:      "unique contribution is rejected",
			aggregate: factory.ForQualifiedType(domain.InternedString{}, widget),
			binding: domain.ContributionBinding{
				Type: domain.ContributionUnique,
				Key:  contributionKey,
			},
			wantErr: domain.ErrInvalidMultibinding,
		},
		{
			name:      "missing contribution identifier is rejected",
			aggregate: factory.ForQualifiedType(domain.InternedString{}, domain.Declared("Set", widget)),
			binding: domain.ContributionBinding{
				Type: domain.ContributionSet,
				Key:  factory.ForQualifiedType(domain.InternedString{}, widget),
			},
			wantErr: domain.ErrInvalidMultibinding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBuilderFixture(t)

			req, err := f.builder.ForMultibindingContribution(tt.aggregate, tt.binding)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.wantKind, req.Kind)
			assert.Equal(t, tt.binding.Key, req.Key)
			assert.Nil(t, req.Site)
			assert.Equal(t, tt.wantKind != domain.KindInstance, req.Nullable)
		})
	}
}

func TestForMultibindingContributions(t *testing.T) {
	widget := domain.Declared("Widget")
	factory := keys.New()
	aggregate := factory.ForQualifiedType(domain.InternedString{}, domain.Declared("Set", widget))
	module := domain.NewInternedString("WidgetModule")

	t.Run("one request per contribution", func(t *testing.T) {
		f := newBuilderFixture(t)
		contributions := []domain.ContributionBinding{
			{
				Type: domain.ContributionSet,
				Key: factory.ForMultibindingContribution(domain.InternedString{}, widget,
					domain.ContributionID{Module: module, Binding: domain.NewInternedString("provideA")}),
			},
			{
				Type: domain.ContributionSet,
				Key: factory.ForMultibindingContribution(domain.InternedString{}, widget,
					domain.ContributionID{Module: module, Binding: domain.NewInternedString("provideB")}),
			},
		}

		reqs, err := f.builder.ForMultibindingContributions(aggregate, contributions)
		require.NoError(t, err)
		require.Len(t, reqs, 2)

		// Each contribution keeps its own identity even though the type and
		// qualifier agree.
		assert.NotEqual(t, reqs[0].Key, reqs[1].Key)
		assert.NotEqual(t, reqs[0].Key.Fingerprint(), reqs[1].Key.Fingerprint())
	})

	t.Run("first invalid contribution aborts the batch", func(t *testing.T) {
		f := newBuilderFixture(t)
		contributions := []domain.ContributionBinding{
			{
				Type: domain.ContributionUnique,
				Key: factory.ForMultibindingContribution(domain.InternedString{}, widget,
					domain.ContributionID{Module: module, Binding: domain.NewInternedString("provideA")}),
			},
		}

		_, err := f.builder.ForMultibindingContributions(aggregate, contributions)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidMultibinding))
	})
}

func TestAllowsNull(t *testing.T) {
	assert.False(t, request.AllowsNull(domain.KindInstance, false))
	assert.True(t, request.AllowsNull(domain.KindInstance, true))

	for _, kind := range []domain.RequestKind{
		domain.KindLazy,
		domain.KindProvider,
		domain.KindProviderOfLazy,
		domain.KindProducer,
		domain.KindProduced,
		domain.KindFuture,
		domain.KindMembersInjection,
	} {
		assert.True(t, request.AllowsNull(kind, false), kind.String())
		assert.True(t, request.AllowsNull(kind, true), kind.String())
	}
}
