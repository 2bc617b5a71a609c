package domain

// Manifest is the parsed declaration model classification runs over:
// components with their accessor methods, modules with their bindings, and
// the set of type names that only exist after code generation.
type Manifest struct {
	Components []Component
	Modules    []Module
	// Generated lists type names that are produced by a later generation
	// pass. References to them parse as unresolved until the driver marks
	// them available.
	Generated []InternedString

	Annotations Annotations
}

// Module looks up a module by name.
func (m *Manifest) Module(name InternedString) (Module, bool) {
	for _, mod := range m.Modules {
		if mod.Name == name {
			return mod, true
		}
	}
	return Module{}, false
}

// Component is one component declaration: the modules it installs and its
// accessor methods.
type Component struct {
	Name    InternedString
	Modules []InternedString
	// Provisions are no-argument accessors returning a provisioned value.
	Provisions []Method
	// Productions are no-argument accessors returning an asynchronously
	// produced value, possibly as a Future.
	Productions []Method
	// MembersInjections are accessors injecting into an existing instance.
	MembersInjections []Method
}

// Method is the declaration shape of an accessor: its parameters and return
// type. Qualifier and nullability annotations are not part of the shape; they
// are looked up per site through the annotation index.
type Method struct {
	Name   InternedString
	Params []Param
	// Ret is nil for void methods.
	Ret *Type
}

// Param is one declared parameter.
type Param struct {
	Name InternedString
	Type Type
}

// Module is a named group of bindings.
type Module struct {
	Name     InternedString
	Bindings []ModuleBinding
}

// ModuleBinding is one binding declaration inside a module.
type ModuleBinding struct {
	Name InternedString
	// Provides is the bound type.
	Provides Type
	// Qualifier on the bound key, empty for none.
	Qualifier InternedString
	// Production marks the binding as asynchronously fulfilled.
	Production bool
	// Optional marks a binds-optional-of declaration; Provides is then the
	// full optional type.
	Optional     bool
	Contribution ContributionType
	Params       []Param
}

// Annotations indexes the qualifier and nullable annotations of the manifest
// by injection site. The zero value is empty and read-only safe.
type Annotations struct {
	qualifiers map[Site]InternedString
	nullables  map[Site]bool
}

// SetQualifier records a qualifier annotation for a site.
func (a *Annotations) SetQualifier(site Site, qualifier InternedString) {
	if a.qualifiers == nil {
		a.qualifiers = make(map[Site]InternedString)
	}
	a.qualifiers[site] = qualifier
}

// Qualifier returns the qualifier annotation of a site, if present.
func (a *Annotations) Qualifier(site Site) (InternedString, bool) {
	q, ok := a.qualifiers[site]
	return q, ok
}

// SetNullable records a nullable annotation for a site.
func (a *Annotations) SetNullable(site Site) {
	if a.nullables == nil {
		a.nullables = make(map[Site]bool)
	}
	a.nullables[site] = true
}

// Nullable reports whether a site carries a nullable annotation.
func (a *Annotations) Nullable(site Site) bool {
	return a.nullables[site]
}
