package domain

// SiteKind distinguishes the shapes an injection site can have.
type SiteKind int

const (
	// SiteParameter is a constructor or binding-method parameter.
	SiteParameter SiteKind = iota
	// SiteMethod is a component accessor method.
	SiteMethod
	// SiteField is an injected field.
	SiteField
)

func (k SiteKind) String() string {
	switch k {
	case SiteParameter:
		return "parameter"
	case SiteMethod:
		return "method"
	case SiteField:
		return "field"
	default:
		return "site(unknown)"
	}
}

// Site references the declaration a dependency request originates from.
// Sites are comparable and used as lookup keys by the annotation indexes.
type Site struct {
	Kind SiteKind
	// Owner is the component or module the declaration belongs to.
	Owner InternedString
	// Member names the method, binding parameter or field.
	Member InternedString
}

func (s Site) String() string {
	return s.Owner.String() + "." + s.Member.String() + " (" + s.Kind.String() + ")"
}

// MethodSite references a component accessor or module binding method.
func MethodSite(owner, member InternedString) Site {
	return Site{Kind: SiteMethod, Owner: owner, Member: member}
}

// ParamSite references one parameter of a module binding. The member joins
// binding and parameter name so that sites stay unique per parameter.
func ParamSite(owner, binding, param InternedString) Site {
	return Site{
		Kind:   SiteParameter,
		Owner:  owner,
		Member: NewInternedString(binding.String() + "/" + param.String()),
	}
}
