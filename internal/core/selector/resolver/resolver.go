// Package resolver computes the entities a parsed selector addresses.
package resolver

import (
	"math/rand/v2"
	"slices"

	"github.com/zeusync/selector/internal/core/entity"
	"github.com/zeusync/selector/internal/core/selector/filter"
	"github.com/zeusync/selector/internal/core/selector/parser"
)

// Rand draws a uniform integer in [0, n).
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Plan is a selector with its clauses resolved against one roster.
type Plan struct {
	Mode   parser.Mode
	Filter filter.Filter
	Limit  int
}

// Resolver evaluates selectors against a roster snapshot.
type Resolver struct {
	registry *filter.Registry
	frames   filter.FrameSource
	rnd      Rand
}

// New creates a resolver. A nil rnd uses the global math/rand/v2 source.
func New(registry *filter.Registry, frames filter.FrameSource, rnd Rand) *Resolver {
	if rnd == nil {
		rnd = globalRand{}
	}
	return &Resolver{registry: registry, frames: frames, rnd: rnd}
}

// Compile resolves every clause of sel. The last limit clause wins.
func (r *Resolver) Compile(sel *parser.Selector, operator entity.Identity, rosterSize int) (Plan, error) {
	env := filter.Env{Operator: operator, Frames: r.frames}
	plan := Plan{Mode: sel.Mode, Limit: filter.Unbounded}

	predicates := make([]filter.Filter, 0, len(sel.Filters))
	for _, spec := range sel.Filters {
		d, err := r.registry.Resolve(spec, env)
		if err != nil {
			return Plan{}, err
		}
		switch v := d.(type) {
		case filter.Predicate:
			predicates = append(predicates, v.Filter)
		case filter.Limit:
			plan.Limit = v.Count(rosterSize)
		}
	}
	plan.Filter = filter.All(predicates...)
	return plan, nil
}

// Resolve returns the ordered, duplicate-free entities sel addresses.
func (r *Resolver) Resolve(sel *parser.Selector, operator entity.Identity, roster entity.Roster) ([]entity.Entity, error) {
	plan, err := r.Compile(sel, operator, len(roster))
	if err != nil {
		return nil, err
	}
	return r.Execute(plan, operator, roster), nil
}

// Execute applies a compiled plan to the roster.
func (r *Resolver) Execute(plan Plan, operator entity.Identity, roster entity.Roster) []entity.Entity {
	switch plan.Mode {
	case parser.ModeSelf:
		// Filters do not apply to self.
		if e, ok := roster.Find(operator); ok {
			return []entity.Entity{e}
		}
		return []entity.Entity{}
	case parser.ModeOthers:
		pool := roster.Filter(func(e entity.Entity) bool {
			return (operator == "" || e.Identity() != operator) && plan.Filter(e)
		})
		return truncate(pool, plan.Limit)
	case parser.ModeRandom:
		return sample(roster.Filter(plan.Filter), plan.Limit, r.rnd)
	default:
		return truncate(roster.Filter(plan.Filter), plan.Limit)
	}
}

func truncate(pool []entity.Entity, limit int) []entity.Entity {
	if limit >= 0 && len(pool) > limit {
		return pool[:limit]
	}
	return pool
}

// sample draws without replacement, in pick order. An unbounded limit
// draws a single entity.
func sample(pool []entity.Entity, limit int, rnd Rand) []entity.Entity {
	if limit < 0 {
		limit = 1
	}
	out := make([]entity.Entity, 0, min(limit, len(pool)))
	for len(out) < limit && len(pool) > 0 {
		i := rnd.IntN(len(pool))
		out = append(out, pool[i])
		pool = slices.Delete(pool, i, i+1)
	}
	return out
}
