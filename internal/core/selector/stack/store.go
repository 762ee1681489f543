package stack

import (
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/zeusync/selector/internal/core/entity"
)

const defaultShardCount = 16

type shard struct {
	mu     sync.Mutex
	stacks map[entity.Identity]*Stack
}

// Store maps operator identities to their stacks. Stacks are created on
// first use and dropped by Retire. Different operators never contend on
// the same stack; calls for one operator must be serialized by the caller.
type Store struct {
	shards []*shard
}

// NewStore creates a store split into shardCount shards.
func NewStore(shardCount int) *Store {
	if shardCount <= 0 {
		shardCount = defaultShardCount
	}
	s := &Store{shards: make([]*shard, shardCount)}
	for i := range s.shards {
		s.shards[i] = &shard{stacks: make(map[entity.Identity]*Stack)}
	}
	return s
}

func (s *Store) shardFor(id entity.Identity) *shard {
	return s.shards[xxhash.Sum64String(string(id))%uint64(len(s.shards))]
}

// Get returns the operator's stack, creating it if needed.
func (s *Store) Get(id entity.Identity) *Stack {
	sh := s.shardFor(id)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	st, ok := sh.stacks[id]
	if !ok {
		st = New()
		sh.stacks[id] = st
	}
	return st
}

// Lookup returns the operator's stack without creating one.
func (s *Store) Lookup(id entity.Identity) (*Stack, bool) {
	sh := s.shardFor(id)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	st, ok := sh.stacks[id]
	return st, ok
}

// Top returns the operator's most recent frame, or nil.
func (s *Store) Top(id entity.Identity) []entity.Entity {
	st, ok := s.Lookup(id)
	if !ok {
		return nil
	}
	return st.Peek(0)
}

// Retire drops the operator's stack. It reports whether one existed.
func (s *Store) Retire(id entity.Identity) bool {
	sh := s.shardFor(id)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	_, ok := sh.stacks[id]
	delete(sh.stacks, id)
	return ok
}

// Len is the number of operators holding a stack.
func (s *Store) Len() int {
	n := 0
	for _, sh := range s.shards {
		sh.mu.Lock()
		n += len(sh.stacks)
		sh.mu.Unlock()
	}
	return n
}
