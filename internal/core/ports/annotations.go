package ports

import "go.trai.ch/weft/internal/core/domain"

//go:generate mockgen -source=annotations.go -destination=mocks/mock_annotations.go -package=mocks

// QualifierLookup resolves the qualifier annotation of an injection site.
type QualifierLookup interface {
	// Qualifier returns the qualifier of the site and whether one is present.
	Qualifier(site domain.Site) (domain.InternedString, bool)
}

// NullableLookup resolves the declared-nullable marker of an injection site.
type NullableLookup interface {
	// Nullable reports whether the site carries a nullable annotation.
	Nullable(site domain.Site) bool
}
