// Package registry implements the type resolver: a registry of generated type
// names that have become available, used to re-resolve deferred references
// between classification passes.
package registry

import (
	"sync"

	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/core/ports"
)

var _ ports.TypeResolver = (*Registry)(nil)

// Registry implements ports.TypeResolver. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	available map[domain.InternedString]struct{}
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		available: make(map[domain.InternedString]struct{}),
	}
}

// MarkAvailable records that a generated type name now exists.
func (r *Registry) MarkAvailable(name domain.InternedString) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.available[name] = struct{}{}
}

// Available reports whether a generated type name exists yet.
func (r *Registry) Available(name domain.InternedString) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.available[name]
	return ok
}

// Resolve replaces unresolved references to available names with declared
// types, recursing through type arguments and callable return types.
// Everything else passes through unchanged.
func (r *Registry) Resolve(t domain.Type) domain.Type {
	switch t.Form {
	case domain.FormUnresolved:
		if r.Available(t.Name) {
			return domain.Type{Form: domain.FormDeclared, Name: t.Name}
		}
		return t
	case domain.FormDeclared:
		if len(t.Args) == 0 {
			return t
		}
		args := make([]domain.Type, len(t.Args))
		for i, a := range t.Args {
			args[i] = r.Resolve(a)
		}
		return domain.Type{Form: domain.FormDeclared, Name: t.Name, Args: args}
	case domain.FormCallable:
		if t.Ret == nil {
			return t
		}
		ret := r.Resolve(*t.Ret)
		return domain.Type{Form: domain.FormCallable, Ret: &ret}
	default:
		return t
	}
}
