package parser

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/shlex"
)

// StackPrefix introduces a stack query. It is matched case-insensitively.
const StackPrefix = "stack"

// Parse reads selector text whose sentinel has already been stripped. It
// returns false when the text is not a selector and should be treated as
// a literal argument.
func Parse(text string, opts Options) (Query, bool) {
	if q, ok := parseStack(text, opts); ok {
		return q, true
	}
	if sel, ok := parseSelector(text, opts); ok {
		return sel, true
	}
	return nil, false
}

func parseSelector(text string, opts Options) (*Selector, bool) {
	if text == "" {
		return nil, false
	}
	mode, ok := modeOf(text[0])
	if !ok {
		return nil, false
	}

	sel := &Selector{Mode: mode}
	rest := text[1:]
	if rest == "" {
		return sel, true
	}

	next, size := utf8.DecodeRuneInString(rest)
	switch {
	case unicode.IsSpace(next):
		sel.Leftover = Tokenize(rest[size:], opts)
		return sel, true
	case next != '[':
		return nil, false
	}

	sc := &scanner{}
	end := len(rest)
	closed := false
	for i, c := range rest[1:] {
		if sc.step(c) {
			end = 1 + i + utf8.RuneLen(c)
			closed = true
			break
		}
	}
	if !closed {
		// An unterminated list closes at the end of the text.
		sc.finish()
	}
	sel.Filters = sc.specs
	sel.Leftover = Tokenize(trimSeparator(rest[end:]), opts)
	return sel, true
}

func parseStack(text string, opts Options) (*StackQuery, bool) {
	if len(text) < len(StackPrefix) || !strings.EqualFold(text[:len(StackPrefix)], StackPrefix) {
		return nil, false
	}
	rest := text[len(StackPrefix):]
	if rest != "" && strings.ContainsRune(":>. ", rune(rest[0])) {
		rest = rest[1:]
	}

	cmd, tail := rest, ""
	if idx := strings.IndexFunc(rest, unicode.IsSpace); idx >= 0 {
		cmd, tail = rest[:idx], trimSeparator(rest[idx:])
	}

	q := &StackQuery{Leftover: Tokenize(tail, opts)}
	switch strings.ToLower(cmd) {
	case "", "first", "f":
		q.Op = StackPop
	case "last", "l":
		q.Op = StackPopLast
	case "all", "a", "*":
		q.Op = StackPopAll
	default:
		if n, err := strconv.Atoi(cmd); err == nil && n >= 0 {
			q.Op, q.Index = StackPop, n
		}
	}
	return q, true
}

func trimSeparator(s string) string {
	if c, size := utf8.DecodeRuneInString(s); size > 0 && unicode.IsSpace(c) {
		return s[size:]
	}
	return s
}

// Tokenize splits text on whitespace. With KeepEmptyTokens every
// whitespace rune separates a token, so runs of whitespace yield empty
// tokens.
func Tokenize(text string, opts Options) []string {
	if text == "" {
		return nil
	}
	if !opts.KeepEmptyTokens {
		return strings.Fields(text)
	}

	var tokens []string
	start := 0
	for i, c := range text {
		if unicode.IsSpace(c) {
			tokens = append(tokens, text[start:i])
			start = i + utf8.RuneLen(c)
		}
	}
	return append(tokens, text[start:])
}

// SplitQuoted re-tokenizes leftover tokens honoring shell-style quotes,
// e.g. `"two words" x` becomes ["two words", "x"].
func SplitQuoted(tokens []string) ([]string, error) {
	return shlex.Split(strings.Join(tokens, " "))
}

// Sentinel marks an argument as a selector.
const Sentinel = "@"

// TrimSentinel strips the sentinel from arg, reporting whether it was present.
func TrimSentinel(arg string) (string, bool) {
	return strings.CutPrefix(arg, Sentinel)
}
