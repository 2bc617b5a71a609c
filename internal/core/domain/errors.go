package domain

import "go.trai.ch/zerr"

var (
	// ErrDeferredResolution is returned when classification needs a type that
	// is not resolvable yet, typically one that will be generated in a later
	// pass. It is the only retryable outcome: the driver re-runs the whole
	// pass once the type becomes available. It must never be conflated with
	// the fatal errors below.
	ErrDeferredResolution = zerr.New("type not yet resolvable")

	// ErrArityMismatch is returned when a parameter-site list and its resolved
	// type list differ in length. This signals an upstream defect.
	ErrArityMismatch = zerr.New("parameter and resolved type lists differ in length")

	// ErrInvalidSignature is returned when an accessor method has parameters
	// or a qualifier it must not have.
	ErrInvalidSignature = zerr.New("invalid accessor signature")

	// ErrInvalidMultibinding is returned when a multibinding contribution
	// request is built from a binding tagged unique.
	ErrInvalidMultibinding = zerr.New("contribution is not a multibinding")

	// ErrNotOptional is returned when a present-optional request is built
	// from a key that does not wrap an optional.
	ErrNotOptional = zerr.New("key is not a request for an optional")

	// ErrInternalConsistency is returned when an enumerated request kind is
	// not handled by an exhaustive match. It indicates a defect in the
	// classifier and aborts compilation rather than silently guessing.
	ErrInternalConsistency = zerr.New("unhandled request kind")

	// ErrDuplicateBinding is returned when two bindings register the same key
	// in the same graph namespace.
	ErrDuplicateBinding = zerr.New("duplicate binding")

	// ErrMissingBinding is returned when no binding satisfies a request.
	ErrMissingBinding = zerr.New("missing binding")

	// ErrBindingCycle is returned when the binding graph contains a cycle not
	// broken by a deferring wrapper such as Provider or Lazy.
	ErrBindingCycle = zerr.New("binding cycle detected")

	// ErrManifestReadFailed is returned when the manifest file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestParseFailed is returned when the manifest cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse manifest")

	// ErrTypeParseFailed is returned when a type expression is malformed.
	ErrTypeParseFailed = zerr.New("failed to parse type expression")

	// ErrUnknownModule is returned when a component references a module the
	// manifest does not declare.
	ErrUnknownModule = zerr.New("unknown module")

	// ErrUnresolvedTypes is returned when classification passes stall with
	// types still unresolved.
	ErrUnresolvedTypes = zerr.New("types still unresolved after final pass")

	// ErrClassificationFailed is returned when one or more injection sites
	// failed to classify.
	ErrClassificationFailed = zerr.New("classification failed")
)
