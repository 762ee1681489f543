package parser

import (
	"strings"
	"unicode"

	"github.com/zeusync/selector/internal/core/selector/filter"
)

type scanState uint8

const (
	readingName scanState = iota
	readingValue
)

// scanner accumulates the clauses of a bracketed filter list one rune at a time.
type scanner struct {
	state    scanState
	escaped  bool
	negated  bool
	started  bool
	hasValue bool
	name     string
	acc      strings.Builder
	specs    []filter.Spec
}

// step consumes one rune and reports whether the list was closed by it.
func (s *scanner) step(c rune) bool {
	if s.escaped {
		s.escaped = false
		s.literal(c)
		return false
	}

	switch {
	case c == '\\':
		s.escaped = true
	case c == ']':
		s.finish()
		return true
	case c == ',':
		s.finish()
	case c == '!' && s.state == readingName && !s.started:
		s.negated = true
	case c == '=' && s.state == readingName:
		s.name = s.acc.String()
		s.acc.Reset()
		s.state = readingValue
		s.hasValue = true
	case unicode.IsSpace(c) && s.state == readingName && !s.started:
	default:
		s.literal(c)
	}
	return false
}

func (s *scanner) literal(c rune) {
	s.started = true
	s.acc.WriteRune(c)
}

// finish records the clause in progress, if any, and resets for the next one.
func (s *scanner) finish() {
	if s.state == readingName {
		s.name = s.acc.String()
	}
	spec := filter.Spec{
		Name:    strings.ToLower(strings.TrimSpace(s.name)),
		Negated: s.negated,
	}
	if s.hasValue {
		spec.Value = s.acc.String()
		spec.HasValue = true
	}
	// Only a clause with no name, value or negation is skipped; anything
	// else reaches the registry and fails there if the name is missing.
	if spec.Name != "" || spec.HasValue || spec.Negated {
		s.specs = append(s.specs, spec)
	}

	s.state = readingName
	s.escaped = false
	s.negated = false
	s.started = false
	s.hasValue = false
	s.name = ""
	s.acc.Reset()
}
