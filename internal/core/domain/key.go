package domain

import "github.com/cespare/xxhash/v2"

// ContributionID identifies one multibinding contribution: the module and the
// binding within it that contributed the element. The zero value means the key
// is not a multibinding contribution.
type ContributionID struct {
	Module  InternedString
	Binding InternedString
}

// IsZero reports whether no contribution identifier is present.
func (c ContributionID) IsZero() bool {
	return c == ContributionID{}
}

func (c ContributionID) String() string {
	return c.Module.String() + "#" + c.Binding.String()
}

// Key is the canonical identity of a requested type: the type itself, an
// optional qualifier distinguishing otherwise-identical requests, and an
// optional multibinding contribution identifier. Two keys are equal iff all
// three parts are equal.
type Key struct {
	Type         Type
	Qualifier    InternedString
	Contribution ContributionID
}

// Qualified reports whether the key carries a qualifier.
func (k Key) Qualified() bool {
	return k.Qualifier != InternedString{}
}

// Equal reports whether two keys are equal.
func (k Key) Equal(o Key) bool {
	return k.Qualifier == o.Qualifier &&
		k.Contribution == o.Contribution &&
		k.Type.Equal(o.Type)
}

// Fingerprint returns a stable 64-bit hash of the key, used to index the
// binding maps of the graph. Keys that are Equal share a fingerprint.
func (k Key) Fingerprint() uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(k.Qualifier.String())
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(k.Type.String())
	_, _ = h.WriteString("\x00")
	if !k.Contribution.IsZero() {
		_, _ = h.WriteString(k.Contribution.String())
	}
	return h.Sum64()
}

func (k Key) String() string {
	s := k.Type.String()
	if k.Qualified() {
		s = "@" + k.Qualifier.String() + " " + s
	}
	if !k.Contribution.IsZero() {
		s += " (" + k.Contribution.String() + ")"
	}
	return s
}
