// Package valrange implements optionally bounded value ranges written as
// "V", "A..B", "A.." or "..B".
package valrange

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Separator splits the lower and upper bound of a range.
const Separator = ".."

// ErrEmptyRange is returned for an empty range text or a bare separator.
var ErrEmptyRange = errors.New("empty range")

// FormatError reports a range side that could not be parsed as the target type.
type FormatError struct {
	Text string
	Type string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cannot parse %q as %s", e.Text, e.Type)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Parser converts one side of a range to T.
type Parser[T cmp.Ordered] func(text string) (T, error)

// Range is a closed interval with optional bounds. A nil bound is open.
type Range[T cmp.Ordered] struct {
	Start *T
	End   *T
}

// Exact returns the range accepting only v.
func Exact[T cmp.Ordered](v T) Range[T] {
	return Range[T]{Start: &v, End: &v}
}

// Between returns the range [start, end].
func Between[T cmp.Ordered](start, end T) Range[T] {
	return Range[T]{Start: &start, End: &end}
}

// Contains reports whether x lies within the range.
func (r Range[T]) Contains(x T) bool {
	if r.Start != nil && x < *r.Start {
		return false
	}
	if r.End != nil && x > *r.End {
		return false
	}
	return true
}

func (r Range[T]) String() string {
	var sb strings.Builder
	if r.Start != nil {
		sb.WriteString(fmt.Sprint(*r.Start))
	}
	if r.Start != nil && r.End != nil && *r.Start == *r.End {
		return sb.String()
	}
	sb.WriteString(Separator)
	if r.End != nil {
		sb.WriteString(fmt.Sprint(*r.End))
	}
	return sb.String()
}

// Parse reads text using parse for each present side.
func Parse[T cmp.Ordered](text string, parse Parser[T]) (Range[T], error) {
	text = strings.TrimSpace(text)
	if text == "" || text == Separator {
		return Range[T]{}, ErrEmptyRange
	}

	idx := strings.Index(text, Separator)
	if idx < 0 {
		v, err := parse(text)
		if err != nil {
			return Range[T]{}, err
		}
		return Exact(v), nil
	}

	var r Range[T]
	if lo := text[:idx]; lo != "" {
		v, err := parse(lo)
		if err != nil {
			return Range[T]{}, err
		}
		r.Start = &v
	}
	if hi := text[idx+len(Separator):]; hi != "" {
		v, err := parse(hi)
		if err != nil {
			return Range[T]{}, err
		}
		r.End = &v
	}
	return r, nil
}

// TryParse is Parse without the error detail.
func TryParse[T cmp.Ordered](text string, parse Parser[T]) (Range[T], bool) {
	r, err := Parse(text, parse)
	return r, err == nil
}

// Int parses a base 10 int.
func Int(text string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, &FormatError{Text: text, Type: "integer", Err: err}
	}
	return v, nil
}

// Float parses a float64.
func Float(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, &FormatError{Text: text, Type: "float", Err: err}
	}
	return v, nil
}

// Byte parses an unsigned 8 bit value.
func Byte(text string) (uint8, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(text), 10, 8)
	if err != nil {
		return 0, &FormatError{Text: text, Type: "byte", Err: err}
	}
	return uint8(v), nil
}

// Enum returns a parser for a named integer type. Names are matched
// case-insensitively; anything else must be an ordinal that fits in T.
func Enum[T constraints.Integer](typeName string, names map[string]T) Parser[T] {
	return func(text string) (T, error) {
		text = strings.TrimSpace(text)
		if v, ok := names[strings.ToLower(text)]; ok {
			return v, nil
		}
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return 0, &FormatError{Text: text, Type: typeName, Err: err}
		}
		v := T(n)
		if int64(v) != n {
			return 0, &FormatError{Text: text, Type: typeName, Err: strconv.ErrRange}
		}
		return v, nil
	}
}
