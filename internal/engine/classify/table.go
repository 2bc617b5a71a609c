package classify

import (
	"go.trai.ch/zerr"

	"go.trai.ch/weft/internal/core/domain"
)

// wrapperTable maps each non-instance request kind to the declared wrapper
// type representing it. Keeping the mapping as one data table makes
// exhaustiveness and disjointness checkable in one place; ValidateTable
// enforces the latter.
var wrapperTable = map[domain.RequestKind]string{
	domain.KindLazy:     "Lazy",
	domain.KindProvider: "Provider",
	domain.KindProducer: "Producer",
	domain.KindProduced: "Produced",
	domain.KindFuture:   "Future",
}

// kindForWrapper is the interned reverse lookup of wrapperTable.
var kindForWrapper = func() map[domain.InternedString]domain.RequestKind {
	rev := make(map[domain.InternedString]domain.RequestKind, len(wrapperTable))
	for kind, name := range wrapperTable {
		rev[domain.NewInternedString(name)] = kind
	}
	return rev
}()

// WrapperType returns the wrapper type name representing the given request
// kind, if the kind has one. Instance, ProviderOfLazy and MembersInjection
// have no single wrapper.
func WrapperType(kind domain.RequestKind) (domain.InternedString, bool) {
	name, ok := wrapperTable[kind]
	if !ok {
		return domain.InternedString{}, false
	}
	return domain.NewInternedString(name), true
}

// ValidateTable verifies that no two table entries name the same wrapper
// type. The match set is designed to be disjoint; a collision would make
// classification order-dependent.
func ValidateTable() error {
	if len(kindForWrapper) != len(wrapperTable) {
		return zerr.With(domain.ErrInternalConsistency,
			"reason", "wrapper table entries are not disjoint")
	}
	return nil
}
