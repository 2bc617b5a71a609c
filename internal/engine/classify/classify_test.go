package classify_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/engine/classify"
)

func TestClassify(t *testing.T) {
	widget := domain.Declared("Widget")

	tests := []struct {
		name     string
		typ      domain.Type
		wantKind domain.RequestKind
		wantType domain.Type
	}{
		{
			name:     "plain declared type",
			typ:      widget,
			wantKind: domain.KindInstance,
			wantType: widget,
		},
		{
			name:     "primitive",
			typ:      domain.Primitive("int"),
			wantKind: domain.KindInstance,
			wantType: domain.Primitive("int"),
		},
		{
			name:     "lazy",
			typ:      domain.Declared("Lazy", widget),
			wantKind: domain.KindLazy,
			wantType: widget,
		},
		{
			name:     "provider",
			typ:      domain.Declared("Provider", widget),
			wantKind: domain.KindProvider,
			wantType: widget,
		},
		{
			name:     "producer",
			typ:      domain.Declared("Producer", widget),
			wantKind: domain.KindProducer,
			wantType: widget,
		},
		{
			name:     "produced",
			typ:      domain.Declared("Produced", widget),
			wantKind: domain.KindProduced,
			wantType: widget,
		},
		{
			name:     "provider of lazy collapses",
			typ:      domain.Declared("Provider", domain.Declared("Lazy", widget)),
			wantKind: domain.KindProviderOfLazy,
			wantType: widget,
		},
		{
			name:     "lazy of provider stays lazy",
			typ:      domain.Declared("Lazy", domain.Declared("Provider", widget)),
			wantKind: domain.KindLazy,
			wantType: domain.Declared("Provider", widget),
		},
		{
			name:     "provider of provider stays single wrap",
			typ:      domain.Declared("Provider", domain.Declared("Provider", widget)),
			wantKind: domain.KindProvider,
			wantType: domain.Declared("Provider", widget),
		},
		{
			name:     "triple nesting peels once",
			typ:      domain.Declared("Provider", domain.Declared("Lazy", domain.Declared("Lazy", widget))),
			wantKind: domain.KindProviderOfLazy,
			wantType: domain.Declared("Lazy", widget),
		},
		{
			name:     "raw wrapper use is not unwrapped",
			typ:      domain.Declared("Provider"),
			wantKind: domain.KindInstance,
			wantType: domain.Declared("Provider"),
		},
		{
			name:     "raw lazy use is not unwrapped",
			typ:      domain.Declared("Lazy"),
			wantKind: domain.KindInstance,
			wantType: domain.Declared("Lazy"),
		},
		{
			name:     "callable classifies its return type",
			typ:      domain.Callable(domain.Declared("Lazy", widget)),
			wantKind: domain.KindLazy,
			wantType: widget,
		},
		{
			name:     "provider wrapping unresolved stays provider",
			typ:      domain.Declared("Provider", domain.Unresolved("Report")),
			wantKind: domain.KindProvider,
			wantType: domain.Unresolved("Report"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kt, err := classify.Classify(tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, kt.Kind)
			assert.True(t, tt.wantType.Equal(kt.Type),
				"expected type %s, got %s", tt.wantType, kt.Type)
		})
	}
}

func TestClassify_Unresolved(t *testing.T) {
	_, err := classify.Classify(domain.Unresolved("Report"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDeferredResolution))

	// Retrying with the same input is idempotent
	_, err2 := classify.Classify(domain.Unresolved("Report"))
	assert.True(t, errors.Is(err2, domain.ErrDeferredResolution))
}

func TestClassify_UnresolvedBehindCallable(t *testing.T) {
	_, err := classify.Classify(domain.Callable(domain.Unresolved("Report")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDeferredResolution))
}

func TestWrapperType(t *testing.T) {
	name, ok := classify.WrapperType(domain.KindProvider)
	require.True(t, ok)
	assert.Equal(t, "Provider", name.String())

	_, ok = classify.WrapperType(domain.KindInstance)
	assert.False(t, ok)
	_, ok = classify.WrapperType(domain.KindProviderOfLazy)
	assert.False(t, ok)
	_, ok = classify.WrapperType(domain.KindMembersInjection)
	assert.False(t, ok)
}

func TestValidateTable(t *testing.T) {
	assert.NoError(t, classify.ValidateTable())
}
