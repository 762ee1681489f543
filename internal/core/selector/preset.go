package selector

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/zeusync/selector/internal/core/selector/filter"
	"github.com/zeusync/selector/internal/core/selector/parser"
)

var (
	ErrPresetTaken = errors.New("preset alias already registered")
	ErrPresetLimit = errors.New("presets cannot carry a limit")
)

// RegisterPreset registers alias as a custom filter equal to the AND of
// clauses, each written as inside a filter list (e.g. "ra=true", "!alive").
// The preset is true when used bare or with a true value and inverted
// with a false value.
func (s *Service) RegisterPreset(alias string, clauses []string) error {
	predicates := make([]filter.Filter, 0, len(clauses))
	for _, clause := range clauses {
		q, ok := parser.Parse("a["+clause+"]", parser.Options{})
		if !ok {
			return fmt.Errorf("preset %q: clause %q: not a filter", alias, clause)
		}
		for _, spec := range q.(*parser.Selector).Filters {
			d, err := s.registry.Resolve(spec, filter.Env{})
			if err != nil {
				return fmt.Errorf("preset %q: %w", alias, err)
			}
			p, ok := d.(filter.Predicate)
			if !ok {
				return fmt.Errorf("preset %q: %w", alias, ErrPresetLimit)
			}
			predicates = append(predicates, p.Filter)
		}
	}

	match := filter.All(predicates...)
	factory := func(value string) (filter.Filter, error) {
		if strings.TrimSpace(value) == "" {
			return match, nil
		}
		want, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("expects a boolean: %w", err)
		}
		if want {
			return match, nil
		}
		return filter.Not(match), nil
	}

	if !s.Register(factory, alias) {
		return fmt.Errorf("preset %q: %w", alias, ErrPresetTaken)
	}
	return nil
}
