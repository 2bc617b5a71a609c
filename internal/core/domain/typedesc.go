// Package domain contains the core domain model for the binding graph builder:
// type descriptors, keys, dependency requests and bindings.
package domain

import "strings"

// Form discriminates the shapes a type descriptor can take.
type Form int

const (
	// FormPrimitive is a primitive type such as "int" or "bool".
	FormPrimitive Form = iota
	// FormDeclared is a named, possibly generic, declared type.
	FormDeclared
	// FormCallable is a callable signature; only its return type matters here.
	FormCallable
	// FormUnresolved is a reference to a type that does not exist yet,
	// typically because it will be generated in a later pass.
	FormUnresolved
)

// Type is a tagged-union type descriptor. Exactly one shape is populated per
// Form: Name for primitives, declared and unresolved types, Args for declared
// type arguments, Ret for callable signatures.
type Type struct {
	Form Form
	Name InternedString
	Args []Type
	Ret  *Type
}

// Primitive returns a primitive type descriptor.
func Primitive(name string) Type {
	return Type{Form: FormPrimitive, Name: NewInternedString(name)}
}

// Declared returns a declared type descriptor with the given type arguments.
func Declared(name string, args ...Type) Type {
	return Type{Form: FormDeclared, Name: NewInternedString(name), Args: args}
}

// Callable returns a callable signature descriptor with the given return type.
func Callable(ret Type) Type {
	return Type{Form: FormCallable, Ret: &ret}
}

// Unresolved returns a descriptor for a type that is not yet resolvable.
func Unresolved(name string) Type {
	return Type{Form: FormUnresolved, Name: NewInternedString(name)}
}

// IsUnresolved reports whether the descriptor is a not-yet-resolved type.
func (t Type) IsUnresolved() bool {
	return t.Form == FormUnresolved
}

// IsDeclared reports whether the descriptor is a declared type with the given name.
func (t Type) IsDeclared(name InternedString) bool {
	return t.Form == FormDeclared && t.Name == name
}

// SoleArg returns the single type argument of a declared type. It reports
// false for non-declared types and for declared types whose argument count is
// not exactly one.
func (t Type) SoleArg() (Type, bool) {
	if t.Form != FormDeclared || len(t.Args) != 1 {
		return Type{}, false
	}
	return t.Args[0], true
}

// Equal reports structural equality of two type descriptors.
func (t Type) Equal(o Type) bool {
	if t.Form != o.Form || t.Name != o.Name || len(t.Args) != len(o.Args) {
		return false
	}
	for i := range t.Args {
		if !t.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	if (t.Ret == nil) != (o.Ret == nil) {
		return false
	}
	if t.Ret != nil && !t.Ret.Equal(*o.Ret) {
		return false
	}
	return true
}

// String renders the descriptor in manifest syntax, e.g. "Provider<Lazy<Widget>>".
func (t Type) String() string {
	switch t.Form {
	case FormCallable:
		if t.Ret == nil {
			return "() -> ()"
		}
		return "() -> " + t.Ret.String()
	case FormDeclared:
		if len(t.Args) == 0 {
			return t.Name.String()
		}
		var sb strings.Builder
		sb.WriteString(t.Name.String())
		sb.WriteByte('<')
		for i, a := range t.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(a.String())
		}
		sb.WriteByte('>')
		return sb.String()
	default:
		return t.Name.String()
	}
}
