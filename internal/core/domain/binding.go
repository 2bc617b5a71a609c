package domain

// ContributionType tags how a binding contributes to the graph: as the unique
// binding for its key or as one element of a set- or map-shaped multibinding.
type ContributionType int

const (
	// ContributionUnique is a plain, non-multibinding contribution.
	ContributionUnique ContributionType = iota
	// ContributionSet contributes one element to a set binding.
	ContributionSet
	// ContributionSetValues contributes a whole set of elements to a set binding.
	ContributionSetValues
	// ContributionMap contributes one entry to a map binding.
	ContributionMap
)

var contributionNames = map[ContributionType]string{
	ContributionUnique:    "unique",
	ContributionSet:       "set",
	ContributionSetValues: "setValues",
	ContributionMap:       "map",
}

func (c ContributionType) String() string {
	if name, ok := contributionNames[c]; ok {
		return name
	}
	return "contribution(unknown)"
}

// Multibinding reports whether the contribution participates in an aggregate
// set or map binding.
func (c ContributionType) Multibinding() bool {
	return c != ContributionUnique
}

// ContributionBinding is the slice of a binding the request classifier needs
// when deriving synthetic multibinding requests: the contribution tag and the
// contribution-discriminated key.
type ContributionBinding struct {
	Type ContributionType
	Key  Key
}

// Binding is one node of the binding graph: a key, how it contributes, and
// the dependency requests its fulfillment needs in turn.
type Binding struct {
	Key          Key
	Contribution ContributionType
	// Members marks a members-injection binding; its key lives in the
	// members-injection namespace of the graph.
	Members bool
	// Production marks bindings fulfilled asynchronously.
	Production bool
	// Module names the module that declared the binding, if any.
	Module       InternedString
	Dependencies []DependencyRequest
}

// BindingKey returns the graph namespace and key this binding is registered under.
func (b Binding) BindingKey() BindingKey {
	if b.Members {
		return MembersInjectionKey(b.Key)
	}
	return ContributionKey(b.Key)
}
