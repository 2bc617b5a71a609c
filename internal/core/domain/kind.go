package domain

import "go.trai.ch/zerr"

// RequestKind is the semantic shape of a dependency request: what kind of
// object an injection site asks for, independent of the type it asks it for.
type RequestKind int

const (
	// KindInstance requests the value itself.
	KindInstance RequestKind = iota
	// KindLazy requests a deferred holder that computes the value on first use.
	KindLazy
	// KindProvider requests a factory producing a fresh value per call.
	KindProvider
	// KindProviderOfLazy requests a factory of deferred holders.
	KindProviderOfLazy
	// KindProducer requests an asynchronous producer of the value.
	KindProducer
	// KindProduced requests the completed result of a production, carrying
	// either the value or its failure.
	KindProduced
	// KindFuture requests a future of the value. Only component production
	// accessors may request this kind.
	KindFuture
	// KindMembersInjection requests injection into an existing instance
	// rather than a new value.
	KindMembersInjection
)

var kindNames = map[RequestKind]string{
	KindInstance:         "Instance",
	KindLazy:             "Lazy",
	KindProvider:         "Provider",
	KindProviderOfLazy:   "ProviderOfLazy",
	KindProducer:         "Producer",
	KindProduced:         "Produced",
	KindFuture:           "Future",
	KindMembersInjection: "MembersInjection",
}

func (k RequestKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "RequestKind(unknown)"
}

// BindingKeyKind is the category under which a request is looked up in the
// binding graph.
type BindingKeyKind int

const (
	// BindingKeyContribution looks up a contribution binding.
	BindingKeyContribution BindingKeyKind = iota
	// BindingKeyMembersInjection looks up a members-injection binding.
	BindingKeyMembersInjection
)

func (k BindingKeyKind) String() string {
	switch k {
	case BindingKeyContribution:
		return "Contribution"
	case BindingKeyMembersInjection:
		return "MembersInjection"
	default:
		return "BindingKeyKind(unknown)"
	}
}

// BindingKey pairs a graph-lookup category with the key looked up under it.
type BindingKey struct {
	Kind BindingKeyKind
	Key  Key
}

// ContributionKey returns a binding key in the contribution category.
func ContributionKey(key Key) BindingKey {
	return BindingKey{Kind: BindingKeyContribution, Key: key}
}

// MembersInjectionKey returns a binding key in the members-injection category.
func MembersInjectionKey(key Key) BindingKey {
	return BindingKey{Kind: BindingKeyMembersInjection, Key: key}
}

// Equal reports whether two binding keys are equal.
func (b BindingKey) Equal(o BindingKey) bool {
	return b.Kind == o.Kind && b.Key.Equal(o.Key)
}

func (b BindingKey) String() string {
	return b.Kind.String() + "[" + b.Key.String() + "]"
}

// BindingKeyForRequest maps a request kind and key to the binding key the
// graph resolves it under. The switch is exhaustive over RequestKind; an
// unknown kind means the classifier itself is defective, so it is reported as
// an internal consistency failure rather than silently defaulted.
func BindingKeyForRequest(kind RequestKind, key Key) (BindingKey, error) {
	switch kind {
	case KindInstance, KindLazy, KindProvider, KindProviderOfLazy,
		KindProducer, KindProduced, KindFuture:
		return ContributionKey(key), nil
	case KindMembersInjection:
		return MembersInjectionKey(key), nil
	default:
		return BindingKey{}, zerr.With(zerr.With(ErrInternalConsistency,
			"kind", int(kind)), "key", key.String())
	}
}
