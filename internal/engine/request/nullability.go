package request

import "go.trai.ch/weft/internal/core/domain"

// AllowsNull decides whether a request may yield an absent value. Instance
// requests allow null only when the site carries a nullable annotation. Every
// other kind allows null unconditionally: the value is wrapped in a container
// whose own emptiness or deferral semantics subsume nullability of the
// contained value.
func AllowsNull(kind domain.RequestKind, nullableAnnotated bool) bool {
	if kind == domain.KindInstance {
		return nullableAnnotated
	}
	return true
}
