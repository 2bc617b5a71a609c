package ports

import "go.trai.ch/weft/internal/core/domain"

// KeyFactory builds canonical keys from qualifiers and type descriptors. The
// request builder treats it as opaque: normalization rules (primitive boxing,
// optional unwrapping) live behind this interface.
//
//go:generate mockgen -source=keys.go -destination=mocks/mock_keys.go -package=mocks
type KeyFactory interface {
	// ForQualifiedType builds the key for a qualifier and type.
	ForQualifiedType(qualifier domain.InternedString, t domain.Type) domain.Key

	// ForMembersInjectedType builds the key for a members-injection target.
	ForMembersInjectedType(t domain.Type) domain.Key

	// ForMultibindingContribution tags a key with a contribution identifier.
	ForMultibindingContribution(qualifier domain.InternedString, t domain.Type, id domain.ContributionID) domain.Key

	// ForProductionExecutor returns the fixed key threading the process-wide
	// production executor into generated code.
	ForProductionExecutor() domain.Key

	// ForProductionMonitor returns the fixed key for the production monitor.
	ForProductionMonitor() domain.Key

	// UnwrapOptional recovers the key for the present value of an
	// optional-wrapping key. It reports false if the key does not wrap an
	// optional.
	UnwrapOptional(key domain.Key) (domain.Key, bool)

	// OptionalValueType returns the declared value type of an
	// optional-wrapping key, wrappers included. It reports false if the key
	// does not wrap an optional.
	OptionalValueType(key domain.Key) (domain.Type, bool)
}
