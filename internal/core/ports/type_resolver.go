package ports

import "go.trai.ch/weft/internal/core/domain"

// TypeResolver tracks which generated type names have become available and
// re-resolves descriptors that reference them. The driver marks names
// available between passes; resolving the same descriptor twice is idempotent.
//
//go:generate mockgen -source=type_resolver.go -destination=mocks/mock_type_resolver.go -package=mocks
type TypeResolver interface {
	// MarkAvailable records that a generated type name now exists.
	MarkAvailable(name domain.InternedString)

	// Available reports whether a generated type name exists yet.
	Available(name domain.InternedString) bool

	// Resolve replaces unresolved references to available names with declared
	// types, leaving everything else untouched.
	Resolve(t domain.Type) domain.Type
}
