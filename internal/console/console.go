// Package console runs selector scripts for the operator CLI.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/zeusync/selector/internal/core/entity"
	"github.com/zeusync/selector/internal/core/selector"
	"github.com/zeusync/selector/internal/core/selector/parser"
)

// Line is one script instruction: an operator, a selector argument and,
// when Save is set, a request to push the result onto the operator's stack.
type Line struct {
	Number   int
	Operator entity.Identity
	Save     bool
	Text     string
}

// ParseScript reads lines of the form `[+]operator @selector [args...]`.
// Blank lines and lines starting with # are skipped.
func ParseScript(r io.Reader) ([]Line, error) {
	var lines []Line
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		raw := strings.TrimSpace(sc.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}

		l := Line{Number: n}
		raw, l.Save = strings.CutPrefix(raw, "+")
		op, text, ok := strings.Cut(raw, " ")
		if !ok || strings.TrimSpace(text) == "" {
			return nil, fmt.Errorf("line %d: expected `operator selector`", n)
		}
		l.Operator = entity.Identity(op)
		l.Text = strings.TrimSpace(text)
		lines = append(lines, l)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Outcome is the printed result of one line.
type Outcome struct {
	Line   Line
	Output string
	Err    error
}

// Run executes lines against roster. Operators run concurrently; each
// operator's lines run in script order. Outcomes are returned in script order.
func Run(svc *selector.Service, roster entity.Roster, lines []Line) []Outcome {
	byOperator := make(map[entity.Identity][]int)
	order := make([]entity.Identity, 0)
	for i, l := range lines {
		if _, ok := byOperator[l.Operator]; !ok {
			order = append(order, l.Operator)
		}
		byOperator[l.Operator] = append(byOperator[l.Operator], i)
	}

	outcomes := make([]Outcome, len(lines))
	var g errgroup.Group
	for _, op := range order {
		indexes := byOperator[op]
		g.Go(func() error {
			for _, i := range indexes {
				outcomes[i] = Execute(svc, roster, lines[i])
			}
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

// Execute resolves a single line.
func Execute(svc *selector.Service, roster entity.Roster, l Line) Outcome {
	arg, rest, _ := strings.Cut(l.Text, " ")
	text, ok := parser.TrimSentinel(arg)
	if !ok {
		return Outcome{Line: l, Output: "not a selector: " + arg}
	}
	if rest != "" {
		text += " " + rest
	}

	res, err := svc.Resolve(text, l.Operator, roster)
	if err != nil {
		return Outcome{Line: l, Err: err}
	}
	if !res.Handled {
		return Outcome{Line: l, Output: "not a selector: " + arg}
	}
	if l.Save {
		svc.Push(l.Operator, res.Entities)
	}
	return Outcome{Line: l, Output: Format(res)}
}

// Format renders a result as `nick(id), ... | leftover`.
func Format(res selector.Result) string {
	names := make([]string, len(res.Entities))
	for i, e := range res.Entities {
		names[i] = fmt.Sprintf("%s(%d)", e.Nickname(), e.PlayerID())
	}
	out := "[" + strings.Join(names, ", ") + "]"
	if len(res.Leftover) > 0 {
		out += " | " + strings.Join(res.Leftover, " ")
	}
	return out
}
