// Package parser turns selector text (with the leading sentinel already
// stripped) into a Selector or a StackQuery.
package parser

import "github.com/zeusync/selector/internal/core/selector/filter"

// Mode picks how candidates are drawn from the filtered pool.
type Mode uint8

const (
	ModeAll Mode = iota
	ModeRandom
	ModeSelf
	ModeOthers
)

func (m Mode) String() string {
	switch m {
	case ModeAll:
		return "all"
	case ModeRandom:
		return "random"
	case ModeSelf:
		return "self"
	case ModeOthers:
		return "others"
	default:
		return "unknown"
	}
}

func modeOf(c byte) (Mode, bool) {
	switch c {
	case 'a', 'A':
		return ModeAll, true
	case 'r', 'R':
		return ModeRandom, true
	case 's', 'S':
		return ModeSelf, true
	case 'o', 'O':
		return ModeOthers, true
	default:
		return 0, false
	}
}

// Query is either a *Selector or a *StackQuery.
type Query interface {
	// Rest returns the text following the query, split into argument tokens.
	Rest() []string
}

// Selector is a parsed `MODE[filters] rest` query.
type Selector struct {
	Mode     Mode
	Filters  []filter.Spec
	Leftover []string
}

func (s *Selector) Rest() []string { return s.Leftover }

// StackOp is the action a stack query performs.
type StackOp uint8

const (
	// StackNone marks an unrecognized sub-command; it selects nothing.
	StackNone StackOp = iota
	StackPop
	StackPopLast
	StackPopAll
)

// StackQuery recalls frames from the operator's selection stack.
type StackQuery struct {
	Op       StackOp
	Index    int
	Leftover []string
}

func (s *StackQuery) Rest() []string { return s.Leftover }

// Options tune tokenization of the text after a query.
type Options struct {
	// KeepEmptyTokens preserves empty tokens between consecutive whitespace
	// so quote-aware re-parsing can restore the original spacing.
	KeepEmptyTokens bool
}
