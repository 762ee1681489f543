package filter

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/zeusync/selector/internal/core/entity"
	"github.com/zeusync/selector/pkg/valrange"
)

type builtinEntry struct {
	aliases []string
	factory builtinFactory
}

func builtinCatalog() []builtinEntry {
	return []builtinEntry{
		{
			aliases: []string{"role", "class", "r", "c"},
			factory: rangeOf("role", valrange.Enum("role", entity.RoleNames), entity.Entity.Role),
		},
		{
			aliases: []string{"team"},
			factory: rangeOf("team", valrange.Enum("team", entity.TeamNames), entity.Entity.Team),
		},
		{
			aliases: []string{"playerid", "pid"},
			factory: rangeOf("integer", valrange.Int, func(e entity.Entity) int { return int(e.PlayerID()) }),
		},
		{
			aliases: []string{"nickname", "nick", "name"},
			factory: nickname,
		},
		{
			aliases: []string{"alive"},
			factory: flag(entity.Entity.IsAlive),
		},
		{
			aliases: []string{"remoteadmin", "ra"},
			factory: flag(entity.Entity.RemoteAdmin),
		},
		{
			aliases: []string{"onstack", "stack"},
			factory: onStack,
		},
		{
			aliases: []string{"currentitem", "curi"},
			factory: rangeOf("item", valrange.Enum("item", entity.ItemNames), entity.Entity.CurrentItem),
		},
		{
			aliases: []string{"godmode", "god"},
			factory: flag(entity.Entity.GodMode),
		},
		{
			aliases: []string{"noclip", "nc"},
			factory: flag(entity.Entity.Noclip),
		},
		{
			aliases: []string{"health", "hp"},
			factory: rangeOf("float", valrange.Float, entity.Entity.Health),
		},
		{
			aliases: []string{"artificalhealth", "ahp"},
			factory: rangeOf("float", valrange.Float, entity.Entity.ArtificialHealth),
		},
		{
			aliases: []string{"humeshield", "hs"},
			factory: rangeOf("float", valrange.Float, entity.Entity.HumeShield),
		},
		{
			aliases: []string{"limit"},
			factory: func(spec Spec, _ Env) (Directive, error) {
				return Limit{Value: spec.Value}, nil
			},
		},
	}
}

func rangeOf[T cmp.Ordered](typeName string, parse valrange.Parser[T], get func(entity.Entity) T) builtinFactory {
	return func(spec Spec, _ Env) (Directive, error) {
		if !spec.HasValue {
			return nil, &ValueError{Filter: normalize(spec.Name), Expected: "a " + typeName + " range", Err: ErrMissingValue}
		}
		r, err := valrange.Parse(spec.Value, parse)
		if err != nil {
			return nil, &ValueError{Filter: normalize(spec.Name), Expected: "a " + typeName + " range", Err: err}
		}
		return Predicate{Filter: func(e entity.Entity) bool {
			return r.Contains(get(e))
		}}, nil
	}
}

// parseFlag reads an optional boolean clause value; no value means true.
func parseFlag(spec Spec) (bool, error) {
	if !spec.HasValue {
		return true, nil
	}
	want, err := strconv.ParseBool(strings.TrimSpace(spec.Value))
	if err != nil {
		return false, &ValueError{
			Filter:   normalize(spec.Name),
			Expected: "a boolean",
			Err:      &valrange.FormatError{Text: spec.Value, Type: "boolean", Err: err},
		}
	}
	return want, nil
}

func flag(get func(entity.Entity) bool) builtinFactory {
	return func(spec Spec, _ Env) (Directive, error) {
		want, err := parseFlag(spec)
		if err != nil {
			return nil, err
		}
		return Predicate{Filter: func(e entity.Entity) bool {
			return get(e) == want
		}}, nil
	}
}

func nickname(spec Spec, _ Env) (Directive, error) {
	if !spec.HasValue {
		return nil, &ValueError{Filter: normalize(spec.Name), Expected: "a name fragment", Err: ErrMissingValue}
	}
	needle := strings.ToLower(spec.Value)
	return Predicate{Filter: func(e entity.Entity) bool {
		return strings.Contains(strings.ToLower(e.Nickname()), needle)
	}}, nil
}

func onStack(spec Spec, env Env) (Directive, error) {
	want, err := parseFlag(spec)
	if err != nil {
		return nil, err
	}

	members := make(map[entity.PlayerID]struct{})
	if env.Frames != nil {
		for _, e := range env.Frames.Top(env.Operator) {
			members[e.PlayerID()] = struct{}{}
		}
	}
	return Predicate{Filter: func(e entity.Entity) bool {
		_, ok := members[e.PlayerID()]
		return ok == want
	}}, nil
}
