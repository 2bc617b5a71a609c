// Package keys builds canonical binding keys from qualifiers and type
// descriptors.
package keys

import (
	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/core/ports"
	"go.trai.ch/weft/internal/engine/classify"
)

// Well-known declared type names the factory special-cases.
var (
	optionalName       = domain.NewInternedString("Optional")
	productionExecutor = domain.Declared("ProductionExecutor")
	productionMonitor  = domain.Declared("ProductionMonitor")
)

var _ ports.KeyFactory = (*Factory)(nil)

// Factory implements ports.KeyFactory. It is stateless; the zero value is
// ready to use.
type Factory struct{}

// New creates a new key factory.
func New() *Factory {
	return &Factory{}
}

// ForQualifiedType builds the key for a qualifier and type. Primitive
// descriptors are boxed to their declared form so that primitive and boxed
// requests for the same type share a key.
func (f *Factory) ForQualifiedType(qualifier domain.InternedString, t domain.Type) domain.Key {
	return domain.Key{Type: box(t), Qualifier: qualifier}
}

// ForMembersInjectedType builds the key for a members-injection target.
// Members-injection targets are never qualified.
func (f *Factory) ForMembersInjectedType(t domain.Type) domain.Key {
	return domain.Key{Type: box(t)}
}

// ForMultibindingContribution tags a key with a contribution identifier so
// that each contribution to an aggregate binding has its own identity.
func (f *Factory) ForMultibindingContribution(
	qualifier domain.InternedString,
	t domain.Type,
	id domain.ContributionID,
) domain.Key {
	return domain.Key{Type: box(t), Qualifier: qualifier, Contribution: id}
}

// ForProductionExecutor returns the fixed key for the process-wide production
// executor.
func (f *Factory) ForProductionExecutor() domain.Key {
	return domain.Key{Type: productionExecutor}
}

// ForProductionMonitor returns the fixed key for the production monitor.
func (f *Factory) ForProductionMonitor() domain.Key {
	return domain.Key{Type: productionMonitor}
}

// OptionalValueType returns the declared value type of an Optional key,
// wrappers included, e.g. Provider<Widget> for Optional<Provider<Widget>>.
func (f *Factory) OptionalValueType(key domain.Key) (domain.Type, bool) {
	if !key.Type.IsDeclared(optionalName) {
		return domain.Type{}, false
	}
	return key.Type.SoleArg()
}

// UnwrapOptional recovers the key for the present value of an Optional key,
// stripping one request wrapper off the value type: Optional<Provider<Widget>>
// unwraps to the Widget key. The qualifier carries over.
func (f *Factory) UnwrapOptional(key domain.Key) (domain.Key, bool) {
	valueType, ok := f.OptionalValueType(key)
	if !ok {
		return domain.Key{}, false
	}
	inner := valueType
	if kt, err := classify.Classify(valueType); err == nil {
		inner = kt.Type
	}
	return domain.Key{Type: box(inner), Qualifier: key.Qualifier}, true
}

// box normalizes a primitive descriptor to its declared form.
func box(t domain.Type) domain.Type {
	if t.Form == domain.FormPrimitive {
		return domain.Type{Form: domain.FormDeclared, Name: t.Name}
	}
	return t
}
