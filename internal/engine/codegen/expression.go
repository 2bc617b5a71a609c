// Package codegen holds the boundary between the binding graph and generated
// code: expressions that fulfill one request kind for one binding key inside a
// generated component.
package codegen

import (
	"go.trai.ch/zerr"

	"go.trai.ch/weft/internal/core/domain"
)

// Fulfillment produces the code expression that evaluates to the value of a
// request inside the named requesting type.
type Fulfillment interface {
	Expression(requesting string) string
}

// Expression fulfills requests for exactly one binding key and request kind.
type Expression struct {
	binding     domain.Binding
	kind        domain.RequestKind
	fulfillment Fulfillment
}

// New creates an Expression bound to the given binding and request kind.
func New(binding domain.Binding, kind domain.RequestKind, fulfillment Fulfillment) *Expression {
	return &Expression{
		binding:     binding,
		kind:        kind,
		fulfillment: fulfillment,
	}
}

// BindingKey returns the binding key this expression fulfills.
func (e *Expression) BindingKey() domain.BindingKey {
	return e.binding.BindingKey()
}

// Kind returns the request kind this expression fulfills.
func (e *Expression) Kind() domain.RequestKind {
	return e.kind
}

// Dependency returns the expression evaluating to the requested value inside
// the requesting type.
func (e *Expression) Dependency(requesting string) string {
	return e.fulfillment.Expression(requesting)
}

// AccessorImplementation returns the statement implementing a component
// accessor for the given request. The request's binding key and kind must
// match this expression's; a mismatch means the generator routed the request
// to the wrong expression.
func (e *Expression) AccessorImplementation(req domain.DependencyRequest, requesting string) (string, error) {
	bk, err := req.BindingKey()
	if err != nil {
		return "", err
	}
	if !bk.Equal(e.BindingKey()) || req.Kind != e.kind {
		return "", zerr.With(zerr.With(zerr.With(domain.ErrInternalConsistency,
			"request", req.String()),
			"expression_key", e.BindingKey().String()),
			"expression_kind", e.kind.String())
	}
	return "return " + e.Dependency(requesting), nil
}

// FieldAccess fulfills requests by reading a field of the generated component.
type FieldAccess struct {
	Field string
}

// Expression returns the field read, qualified by the requesting type.
func (f FieldAccess) Expression(requesting string) string {
	return requesting + "." + f.Field
}
