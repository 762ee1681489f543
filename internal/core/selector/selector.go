// Package selector resolves selector text such as "@a[role=classd,hp=..50]"
// or "@stack:last" against a roster snapshot, on behalf of an operator.
package selector

import (
	"time"

	"github.com/google/uuid"

	"github.com/zeusync/selector/internal/core/entity"
	"github.com/zeusync/selector/internal/core/observability/log"
	"github.com/zeusync/selector/internal/core/selector/filter"
	"github.com/zeusync/selector/internal/core/selector/parser"
	"github.com/zeusync/selector/internal/core/selector/resolver"
	"github.com/zeusync/selector/internal/core/selector/stack"
)

// Options configure a Service.
type Options struct {
	KeepEmptyTokens bool
	StackShards     int
}

// Result is the outcome of Resolve. When Handled is false the text is not
// a selector and the caller should fall back to its own argument parsing.
type Result struct {
	Handled  bool
	Entities []entity.Entity
	Leftover []string
}

// Service resolves selectors and owns the per-operator selection stacks.
// Registration is meant for start-up; resolutions for a single operator
// must not run concurrently.
type Service struct {
	registry *filter.Registry
	stacks   *stack.Store
	resolver *resolver.Resolver
	opts     parser.Options
	logger   log.Log
}

// NewService wires a service. A nil rnd uses the global random source.
func NewService(opts Options, registry *filter.Registry, rnd resolver.Rand, logger log.Log) *Service {
	stacks := stack.NewStore(opts.StackShards)
	return &Service{
		registry: registry,
		stacks:   stacks,
		resolver: resolver.New(registry, stacks, rnd),
		opts:     parser.Options{KeepEmptyTokens: opts.KeepEmptyTokens},
		logger:   logger.With(log.String("component", "selector")),
	}
}

// Resolve evaluates text, with its sentinel already stripped, for operator.
// Hard failures such as unknown filters or malformed values are returned
// unchanged.
func (s *Service) Resolve(text string, operator entity.Identity, roster entity.Roster) (Result, error) {
	q, ok := parser.Parse(text, s.opts)
	if !ok {
		return Result{}, nil
	}

	started := time.Now()
	logger := s.logger.With(
		log.String("request_id", uuid.NewString()),
		log.String("operator", string(operator)),
	)

	var (
		entities []entity.Entity
		err      error
	)
	switch v := q.(type) {
	case *parser.StackQuery:
		entities = s.recall(v, operator, roster)
	case *parser.Selector:
		entities, err = s.resolver.Resolve(v, operator, roster)
		if err != nil {
			logger.Warn("Selector rejected", log.String("text", text), log.Error(err))
			return Result{}, err
		}
	}

	logger.Debug("Selector resolved",
		log.String("text", text),
		log.Int("count", len(entities)),
		log.Int("roster", len(roster)),
		log.Any("elapsed", time.Since(started)))

	return Result{Handled: true, Entities: entities, Leftover: q.Rest()}, nil
}

// recall answers a stack query, keeping only entities still on the roster.
func (s *Service) recall(q *parser.StackQuery, operator entity.Identity, roster entity.Roster) []entity.Entity {
	st, ok := s.stacks.Lookup(operator)
	if !ok {
		return []entity.Entity{}
	}

	var f stack.Frame
	switch q.Op {
	case parser.StackPop:
		f = st.Pop(q.Index)
	case parser.StackPopLast:
		f = st.Pop(st.Len() - 1)
	case parser.StackPopAll:
		f = st.PopAll()
	default:
		return []entity.Entity{}
	}

	live := make(map[entity.PlayerID]struct{}, len(roster))
	for _, e := range roster {
		live[e.PlayerID()] = struct{}{}
	}
	out := make([]entity.Entity, 0, len(f))
	for _, e := range f {
		if _, ok := live[e.PlayerID()]; ok {
			out = append(out, e)
		}
	}
	return out
}

// Register adds a custom filter. It returns false, changing nothing, when
// any alias is already taken.
func (s *Service) Register(factory filter.Factory, aliases ...string) bool {
	ok := s.registry.Register(factory, aliases...)
	if ok {
		s.logger.Info("Custom filter registered", log.Strings("aliases", aliases))
	} else {
		s.logger.Warn("Custom filter rejected", log.Strings("aliases", aliases))
	}
	return ok
}

// Aliases lists every filter alias the service understands.
func (s *Service) Aliases() []string {
	return s.registry.Aliases()
}

// Push saves entities as the operator's newest stack frame.
func (s *Service) Push(operator entity.Identity, entities []entity.Entity) {
	s.stacks.Get(operator).Push(entities)
}

// Stack returns the operator's stack, creating it on first use.
func (s *Service) Stack(operator entity.Identity) *stack.Stack {
	return s.stacks.Get(operator)
}

// Retire forgets an operator's stack, typically on disconnect.
func (s *Service) Retire(operator entity.Identity) bool {
	ok := s.stacks.Retire(operator)
	if ok {
		s.logger.Debug("Operator stack dropped", log.String("operator", string(operator)))
	}
	return ok
}

// Operators is the number of operators currently holding a stack.
func (s *Service) Operators() int {
	return s.stacks.Len()
}
