// Package expr is the complexity algebra: an immutable expression tree
// over a variable domain (github.com/complexo-io/complexo/variable),
// with composition, substitution, free-variable extraction, numerical
// evaluation, and Big-O rendering.
//
// Architecture: per spec.md §9, this is deliberately a sum type over an
// exported interface (Expression), not a class hierarchy. Every variant
// is an unexported-field-free, exported value struct so front-ends can
// construct trees directly; each implements Expression's five methods
// plus Kind() for exhaustive type-switch dispatch elsewhere (classify,
// bigo rendering). Visitor (visitor.go) is a second, independent
// dispatch mechanism for callers that want to traverse without a type
// switch at every call site — BaseVisitor supplies a fallback hook so
// new variants never break existing visitors.
//
// All trees are value-typed: a Binary node's Left/Right are Expression
// interface values that may alias other trees' subexpressions; sharing
// is permitted (not required) because every operation here is read-only.
package expr
