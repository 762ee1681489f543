package filter

import (
	"slices"
	"strings"
	"sync"
)

// Factory builds a custom filter from a clause value. The value is empty
// when the clause has none. A nil filter with a nil error is treated as an
// invalid value.
type Factory func(value string) (Filter, error)

type builtinFactory func(spec Spec, env Env) (Directive, error)

// Registry resolves clause names, consulting the built-in catalog before
// custom registrations. Aliases are unique across both catalogs and the
// first registration of an alias wins.
type Registry struct {
	mu       sync.RWMutex
	builtins map[string]builtinFactory
	custom   map[string]Factory
}

// NewRegistry returns a registry holding the built-in catalog.
func NewRegistry() *Registry {
	r := &Registry{
		builtins: make(map[string]builtinFactory),
		custom:   make(map[string]Factory),
	}
	for _, b := range builtinCatalog() {
		for _, alias := range b.aliases {
			r.builtins[alias] = b.factory
		}
	}
	return r
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds a custom filter under aliases. It returns false without
// changing anything if the alias list is empty or any alias is taken.
func (r *Registry) Register(factory Factory, aliases ...string) bool {
	if factory == nil || len(aliases) == 0 {
		return false
	}

	normalized := make([]string, 0, len(aliases))
	for _, alias := range aliases {
		n := normalize(alias)
		if n == "" {
			return false
		}
		normalized = append(normalized, n)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, alias := range normalized {
		if r.existsLocked(alias) {
			return false
		}
	}
	for _, alias := range normalized {
		r.custom[alias] = factory
	}
	return true
}

// Exists reports whether name is known to either catalog.
func (r *Registry) Exists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.existsLocked(normalize(name))
}

func (r *Registry) existsLocked(alias string) bool {
	if _, ok := r.builtins[alias]; ok {
		return true
	}
	_, ok := r.custom[alias]
	return ok
}

// Aliases lists every known alias in sorted order.
func (r *Registry) Aliases() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.builtins)+len(r.custom))
	for alias := range r.builtins {
		out = append(out, alias)
	}
	for alias := range r.custom {
		out = append(out, alias)
	}
	slices.Sort(out)
	return out
}

// Resolve turns a clause into a Directive. Negated predicates are inverted;
// negating a Limit has no effect.
func (r *Registry) Resolve(spec Spec, env Env) (Directive, error) {
	name := normalize(spec.Name)

	r.mu.RLock()
	builtin, isBuiltin := r.builtins[name]
	custom, isCustom := r.custom[name]
	r.mu.RUnlock()

	var (
		d   Directive
		err error
	)
	switch {
	case isBuiltin:
		d, err = builtin(spec, env)
	case isCustom:
		d, err = resolveCustom(name, spec, custom)
	default:
		return nil, &UnknownFilterError{Name: name}
	}
	if err != nil {
		return nil, err
	}

	if p, ok := d.(Predicate); ok && spec.Negated {
		return Predicate{Filter: Not(p.Filter)}, nil
	}
	return d, nil
}

func resolveCustom(name string, spec Spec, factory Factory) (Directive, error) {
	f, err := factory(spec.Value)
	if err != nil {
		return nil, &ValueError{Filter: name, Err: err}
	}
	if f == nil {
		return nil, &ValueError{Filter: name, Err: ErrInvalidValue}
	}
	return Predicate{Filter: f}, nil
}
