package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/selector/internal/core/selector/filter"
)

func mustSelector(t *testing.T, text string, opts Options) *Selector {
	t.Helper()
	q, ok := Parse(text, opts)
	require.True(t, ok, "expected %q to be handled", text)
	sel, ok := q.(*Selector)
	require.True(t, ok, "expected selector for %q, got %T", text, q)
	return sel
}

func mustStack(t *testing.T, text string) *StackQuery {
	t.Helper()
	q, ok := Parse(text, Options{})
	require.True(t, ok, "expected %q to be handled", text)
	sq, ok := q.(*StackQuery)
	require.True(t, ok, "expected stack query for %q, got %T", text, q)
	return sq
}

func TestModes(t *testing.T) {
	tests := map[string]Mode{
		"a": ModeAll, "A": ModeAll,
		"r": ModeRandom, "R": ModeRandom,
		"s": ModeSelf, "S": ModeSelf,
		"o": ModeOthers, "O": ModeOthers,
	}
	for text, want := range tests {
		sel := mustSelector(t, text, Options{})
		assert.Equal(t, want, sel.Mode, text)
		assert.Empty(t, sel.Filters)
		assert.Empty(t, sel.Leftover)
	}
}

func TestDeclines(t *testing.T) {
	for _, text := range []string{"", "admin", "random", "x", "x[hp=1]", "o_o", "s-1"} {
		_, ok := Parse(text, Options{})
		assert.False(t, ok, "expected %q to be declined", text)
	}
}

func TestFilterList(t *testing.T) {
	sel := mustSelector(t, "a[role=classd..scientist, !alive,hp=..50] give 5", Options{})

	assert.Equal(t, ModeAll, sel.Mode)
	assert.Equal(t, []filter.Spec{
		{Name: "role", Value: "classd..scientist", HasValue: true},
		{Name: "alive", Negated: true},
		{Name: "hp", Value: "..50", HasValue: true},
	}, sel.Filters)
	assert.Equal(t, []string{"give", "5"}, sel.Leftover)
}

func TestEscapes(t *testing.T) {
	tests := []struct {
		text string
		want filter.Spec
	}{
		{text: `a[nick=a\,b\]c]`, want: filter.Spec{Name: "nick", Value: "a,b]c", HasValue: true}},
		{text: `a[nick=x!y]`, want: filter.Spec{Name: "nick", Value: "x!y", HasValue: true}},
		{text: `a[nick=a=b]`, want: filter.Spec{Name: "nick", Value: "a=b", HasValue: true}},
		{text: `a[nick=\\]`, want: filter.Spec{Name: "nick", Value: `\`, HasValue: true}},
		{text: `a[\!odd]`, want: filter.Spec{Name: "!odd"}},
		{text: `a[od!d]`, want: filter.Spec{Name: "od!d"}},
		{text: `a[na\=me=v]`, want: filter.Spec{Name: "na=me", Value: "v", HasValue: true}},
		{text: `a[NICK=Bob]`, want: filter.Spec{Name: "nick", Value: "Bob", HasValue: true}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			sel := mustSelector(t, tt.text, Options{})
			require.Len(t, sel.Filters, 1)
			assert.Equal(t, tt.want, sel.Filters[0])
		})
	}
}

func TestEmptyClausesIgnored(t *testing.T) {
	sel := mustSelector(t, "o[] x", Options{})
	assert.Empty(t, sel.Filters)
	assert.Equal(t, []string{"x"}, sel.Leftover)

	sel = mustSelector(t, "a[hp=1,,]", Options{})
	assert.Len(t, sel.Filters, 1)
}

func TestNamelessClausesKept(t *testing.T) {
	tests := []struct {
		text string
		want filter.Spec
	}{
		{text: "a[=5]", want: filter.Spec{Value: "5", HasValue: true}},
		{text: "a[!]", want: filter.Spec{Negated: true}},
		{text: "a[!=classd]", want: filter.Spec{Value: "classd", HasValue: true, Negated: true}},
		{text: "a[alive, =]", want: filter.Spec{HasValue: true}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			sel := mustSelector(t, tt.text, Options{})
			require.NotEmpty(t, sel.Filters)
			assert.Equal(t, tt.want, sel.Filters[len(sel.Filters)-1])
		})
	}
}

func TestUnterminatedListClosesAtEnd(t *testing.T) {
	sel := mustSelector(t, "r[limit=2,alive", Options{})
	assert.Equal(t, ModeRandom, sel.Mode)
	assert.Equal(t, []filter.Spec{
		{Name: "limit", Value: "2", HasValue: true},
		{Name: "alive"},
	}, sel.Filters)
	assert.Empty(t, sel.Leftover)
}

func TestLeftoverTokens(t *testing.T) {
	sel := mustSelector(t, "o one  two", Options{})
	assert.Equal(t, []string{"one", "two"}, sel.Leftover)

	sel = mustSelector(t, "o one  two", Options{KeepEmptyTokens: true})
	assert.Equal(t, []string{"one", "", "two"}, sel.Leftover)

	sel = mustSelector(t, "a[alive]tail", Options{})
	assert.Equal(t, []string{"tail"}, sel.Leftover)
}

func TestSplitQuoted(t *testing.T) {
	sel := mustSelector(t, `a say "two  words" x`, Options{KeepEmptyTokens: true})
	args, err := SplitQuoted(sel.Leftover)
	require.NoError(t, err)
	assert.Equal(t, []string{"say", "two  words", "x"}, args)
}

func TestStackQueries(t *testing.T) {
	tests := []struct {
		text  string
		op    StackOp
		index int
		rest  []string
	}{
		{text: "stack", op: StackPop},
		{text: "STACK:first", op: StackPop},
		{text: "stack.f", op: StackPop},
		{text: "stack:last", op: StackPopLast},
		{text: "stack>l", op: StackPopLast},
		{text: "stack all", op: StackPopAll},
		{text: "stack:a", op: StackPopAll},
		{text: "stack*", op: StackPopAll},
		{text: "stack>2 give 5", op: StackPop, index: 2, rest: []string{"give", "5"}},
		{text: "stack:wat", op: StackNone},
		{text: "stack:-1", op: StackNone},
		{text: "stacking", op: StackNone},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			sq := mustStack(t, tt.text)
			assert.Equal(t, tt.op, sq.Op)
			assert.Equal(t, tt.index, sq.Index)
			assert.Equal(t, tt.rest, sq.Rest())
		})
	}
}

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Parse(`a[role=classd..scientist,!alive,nick=a\,b,limit=half] give 5`, Options{})
	}
}
