package domain

// DependencyRequest is one classified injection site: the kind of object the
// site asks for, the key the graph must satisfy, the originating site (nil for
// synthetic requests) and whether the request may yield an absent value.
//
// Requests are created once per injection site during a classification pass
// and are immutable afterwards.
type DependencyRequest struct {
	Kind     RequestKind
	Key      Key
	Site     *Site
	Nullable bool
}

// Synthetic reports whether the request has no originating declaration.
func (r DependencyRequest) Synthetic() bool {
	return r.Site == nil
}

// BindingKey returns the graph-lookup key for this request.
func (r DependencyRequest) BindingKey() (BindingKey, error) {
	return BindingKeyForRequest(r.Kind, r.Key)
}

func (r DependencyRequest) String() string {
	s := r.Kind.String() + " " + r.Key.String()
	if r.Site != nil {
		s += " at " + r.Site.String()
	}
	return s
}
