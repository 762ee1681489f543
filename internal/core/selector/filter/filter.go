// Package filter holds the named predicates a selector can constrain its
// candidates with, and the registry that resolves clause names to them.
package filter

import (
	"strings"

	"github.com/zeusync/selector/internal/core/entity"
)

// Filter accepts or rejects a single entity.
type Filter func(entity.Entity) bool

// Not inverts f.
func Not(f Filter) Filter {
	return func(e entity.Entity) bool { return !f(e) }
}

// All accepts an entity only when every filter does. No filters accept everything.
func All(filters ...Filter) Filter {
	return func(e entity.Entity) bool {
		for _, f := range filters {
			if !f(e) {
				return false
			}
		}
		return true
	}
}

// Spec is one clause of a bracketed filter list: `[!]name[=value]`.
type Spec struct {
	Name     string
	Value    string
	HasValue bool
	Negated  bool
}

func (s Spec) String() string {
	var sb strings.Builder
	if s.Negated {
		sb.WriteByte('!')
	}
	sb.WriteString(s.Name)
	if s.HasValue {
		sb.WriteByte('=')
		sb.WriteString(s.Value)
	}
	return sb.String()
}

// Directive is the result of resolving a Spec: a Predicate or a Limit.
type Directive interface {
	directive()
}

// Predicate constrains the candidate pool.
type Predicate struct {
	Filter Filter
}

// Limit caps the number of selected entities. It never takes part in
// predicate composition.
type Limit struct {
	Value string
}

func (Predicate) directive() {}
func (Limit) directive()     {}

// FrameSource exposes an operator's most recent selection stack frame.
type FrameSource interface {
	Top(operator entity.Identity) []entity.Entity
}

// Env is what built-in filters may consult besides the entity itself.
type Env struct {
	Operator entity.Identity
	Frames   FrameSource
}
