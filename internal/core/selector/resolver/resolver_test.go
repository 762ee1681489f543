package resolver

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/selector/internal/core/entity"
	"github.com/zeusync/selector/internal/core/selector/filter"
	"github.com/zeusync/selector/internal/core/selector/parser"
)

type noFrames struct{}

func (noFrames) Top(entity.Identity) []entity.Entity { return nil }

func newRoster(n int) entity.Roster {
	roster := make(entity.Roster, n)
	for i := range roster {
		roster[i] = &entity.Player{
			ID:     entity.PlayerID(i + 1),
			UserID: entity.Identity(fmt.Sprint("user-", i+1)),
			Nick:   fmt.Sprint("player", i+1),
			RoleID: entity.RoleType(i % 3),
			Alive:  i%2 == 0,
			HP:     float64(10 * (i + 1)),
		}
	}
	return roster
}

func newResolver(seed uint64) *Resolver {
	return New(filter.NewRegistry(), noFrames{}, rand.New(rand.NewPCG(seed, seed+1)))
}

func selector(t *testing.T, text string) *parser.Selector {
	t.Helper()
	q, ok := parser.Parse(text, parser.Options{})
	require.True(t, ok)
	sel, ok := q.(*parser.Selector)
	require.True(t, ok)
	return sel
}

func playerIDs(entities []entity.Entity) []entity.PlayerID {
	out := make([]entity.PlayerID, len(entities))
	for i, e := range entities {
		out[i] = e.PlayerID()
	}
	return out
}

func TestAllKeepsRosterOrder(t *testing.T) {
	r := newResolver(1)
	roster := newRoster(8)

	got, err := r.Resolve(selector(t, "a[alive,hp=20..]"), "user-1", roster)
	require.NoError(t, err)
	assert.Equal(t, []entity.PlayerID{3, 5, 7}, playerIDs(got))

	got, err = r.Resolve(selector(t, "a"), "user-1", roster)
	require.NoError(t, err)
	assert.Len(t, got, 8)
}

func TestAllLimitTruncates(t *testing.T) {
	r := newResolver(1)

	got, err := r.Resolve(selector(t, "a[limit=half]"), "", newRoster(7))
	require.NoError(t, err)
	assert.Equal(t, []entity.PlayerID{1, 2, 3, 4}, playerIDs(got))

	got, err = r.Resolve(selector(t, "a[limit=quarter]"), "", newRoster(7))
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = r.Resolve(selector(t, "a[limit=3/4]"), "", newRoster(8))
	require.NoError(t, err)
	assert.Len(t, got, 6)

	got, err = r.Resolve(selector(t, "a[limit=0]"), "", newRoster(8))
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = r.Resolve(selector(t, "a[limit=many]"), "", newRoster(8))
	require.NoError(t, err)
	assert.Len(t, got, 8)

	got, err = r.Resolve(selector(t, "a[limit=1,limit=3]"), "", newRoster(8))
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestRandomSingle(t *testing.T) {
	roster := newRoster(10)
	alive := map[entity.PlayerID]bool{}
	for _, e := range roster {
		alive[e.PlayerID()] = e.IsAlive()
	}

	for seed := uint64(0); seed < 50; seed++ {
		got, err := newResolver(seed).Resolve(selector(t, "r[alive]"), "", roster)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.True(t, alive[got[0].PlayerID()])
	}

	got, err := newResolver(1).Resolve(selector(t, "r[hp=1000..]"), "", roster)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRandomSamplingWithoutReplacement(t *testing.T) {
	roster := newRoster(10)

	for seed := uint64(0); seed < 50; seed++ {
		got, err := newResolver(seed).Resolve(selector(t, "r[limit=4]"), "", roster)
		require.NoError(t, err)
		require.Len(t, got, 4)

		seen := map[entity.PlayerID]bool{}
		for _, e := range got {
			assert.False(t, seen[e.PlayerID()], "entity picked twice")
			seen[e.PlayerID()] = true
		}
	}

	got, err := newResolver(3).Resolve(selector(t, "r[alive,limit=99]"), "", roster)
	require.NoError(t, err)
	assert.Len(t, got, 5)
	for _, e := range got {
		assert.True(t, e.IsAlive())
	}
}

func TestRandomIsDeterministicPerSeed(t *testing.T) {
	roster := newRoster(20)
	a, err := newResolver(42).Resolve(selector(t, "r[limit=5]"), "", roster)
	require.NoError(t, err)
	b, err := newResolver(42).Resolve(selector(t, "r[limit=5]"), "", roster)
	require.NoError(t, err)
	assert.Equal(t, playerIDs(a), playerIDs(b))
}

func TestOthersExcludesOperator(t *testing.T) {
	r := newResolver(1)
	roster := newRoster(6)

	all, err := r.Resolve(selector(t, "a[alive]"), "user-3", roster)
	require.NoError(t, err)
	others, err := r.Resolve(selector(t, "o[alive]"), "user-3", roster)
	require.NoError(t, err)

	assert.Equal(t, []entity.PlayerID{1, 3, 5}, playerIDs(all))
	assert.Equal(t, []entity.PlayerID{1, 5}, playerIDs(others))

	others, err = r.Resolve(selector(t, "o[limit=1]"), "user-1", roster)
	require.NoError(t, err)
	assert.Equal(t, []entity.PlayerID{2}, playerIDs(others))
}

func TestSelfIgnoresFilters(t *testing.T) {
	r := newResolver(1)
	roster := newRoster(4)

	got, err := r.Resolve(selector(t, "s[hp=1000..]"), "user-2", roster)
	require.NoError(t, err)
	assert.Equal(t, []entity.PlayerID{2}, playerIDs(got))

	got, err = r.Resolve(selector(t, "s"), "console", roster)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUnknownFilterFails(t *testing.T) {
	r := newResolver(1)

	got, err := r.Resolve(selector(t, "a[bogus=1]"), "", newRoster(3))
	require.Error(t, err)
	assert.Nil(t, got)

	var unknown *filter.UnknownFilterError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "bogus", unknown.Name)
}

func TestNamelessClauseFails(t *testing.T) {
	r := newResolver(1)

	for _, text := range []string{"a[=5]", "a[!]", "a[!=classd]", "o[alive,=1]"} {
		got, err := r.Resolve(selector(t, text), "", newRoster(5))
		var unknown *filter.UnknownFilterError
		require.ErrorAs(t, err, &unknown, text)
		assert.Equal(t, "", unknown.Name)
		assert.Nil(t, got, text)
	}
}

func TestFractionLimitSaturates(t *testing.T) {
	r := newResolver(1)

	got, err := r.Resolve(selector(t, "a[limit=4611686018427387904/1]"), "", newRoster(4))
	require.NoError(t, err)
	assert.Len(t, got, 4)

	got, err = r.Resolve(selector(t, "r[limit=99999999999999999999]"), "", newRoster(4))
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestCompile(t *testing.T) {
	r := newResolver(1)
	plan, err := r.Compile(selector(t, "o[limit=all,!alive]"), "user-1", 5)
	require.NoError(t, err)
	assert.Equal(t, parser.ModeOthers, plan.Mode)
	assert.Equal(t, 5, plan.Limit)
	assert.True(t, plan.Filter(&entity.Player{Alive: false}))
	assert.False(t, plan.Filter(&entity.Player{Alive: true}))
}
