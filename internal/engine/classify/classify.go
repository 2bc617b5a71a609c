// Package classify peels known wrapper types off a type descriptor to
// determine the request kind of an injection site.
package classify

import (
	"go.trai.ch/zerr"

	"go.trai.ch/weft/internal/core/domain"
)

// KindAndType is the transient result of classification: the request kind an
// injection site asks for and the underlying type the graph must satisfy.
type KindAndType struct {
	Kind domain.RequestKind
	Type domain.Type
}

// Classify extracts the request kind and underlying type from the declared
// type of an injection site. For example, Provider<Foo> classifies as
// (Provider, Foo).
//
// At most one wrapper layer is peeled, with one exception: Provider<Lazy<T>>
// collapses to (ProviderOfLazy, T). Any other nesting order surfaces as the
// outer kind with the inner wrapper left unpeeled, and a raw unparameterized
// wrapper falls through to (Instance, rawType).
//
// Classifying a not-yet-resolved type returns ErrDeferredResolution, which
// callers must treat as retryable, not fatal.
func Classify(t domain.Type) (KindAndType, error) {
	switch t.Form {
	case domain.FormUnresolved:
		return KindAndType{}, zerr.With(domain.ErrDeferredResolution, "type", t.String())

	case domain.FormCallable:
		if t.Ret != nil {
			return Classify(*t.Ret)
		}

	case domain.FormDeclared:
		if kt, ok := fromWrapper(t); ok {
			if kt.Kind == domain.KindProvider {
				if inner, ok := fromWrapper(kt.Type); ok && inner.Kind == domain.KindLazy {
					return KindAndType{Kind: domain.KindProviderOfLazy, Type: inner.Type}, nil
				}
			}
			return kt, nil
		}
	}

	return KindAndType{Kind: domain.KindInstance, Type: t}, nil
}

// fromWrapper matches a declared type against the wrapper table. Raw
// unparameterized wrapper uses do not match.
func fromWrapper(t domain.Type) (KindAndType, bool) {
	if t.Form != domain.FormDeclared || len(t.Args) == 0 {
		return KindAndType{}, false
	}
	kind, ok := kindForWrapper[t.Name]
	if !ok {
		return KindAndType{}, false
	}
	return KindAndType{Kind: kind, Type: t.Args[0]}, true
}
