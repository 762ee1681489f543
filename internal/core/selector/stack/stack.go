// Package stack keeps each operator's selection stack: previously resolved
// entity sets that later selectors can recall.
package stack

import (
	"slices"

	"github.com/zeusync/selector/internal/core/entity"
)

// Frame is one ordered, duplicate-free entity set on a stack.
type Frame []entity.Entity

// NewFrame copies entities into a frame, dropping repeats.
func NewFrame(entities []entity.Entity) Frame {
	return Frame(entity.Dedup(entities))
}

// Stack is a per-operator list of frames. Indexes count from the top:
// 0 is the most recent frame. Out of range indexes yield an empty frame.
type Stack struct {
	frames []Frame // top is the last element
}

func New() *Stack {
	return &Stack{}
}

func (s *Stack) Len() int {
	return len(s.frames)
}

// Push adds entities as a new top frame.
func (s *Stack) Push(entities []entity.Entity) {
	s.frames = append(s.frames, NewFrame(entities))
}

func (s *Stack) position(index int) (int, bool) {
	if index < 0 || index >= len(s.frames) {
		return 0, false
	}
	return len(s.frames) - 1 - index, true
}

// Pop removes and returns the frame at index.
func (s *Stack) Pop(index int) Frame {
	pos, ok := s.position(index)
	if !ok {
		return Frame{}
	}
	f := s.frames[pos]
	s.frames = slices.Delete(s.frames, pos, pos+1)
	return f
}

// Peek returns a copy of the frame at index.
func (s *Stack) Peek(index int) Frame {
	pos, ok := s.position(index)
	if !ok {
		return Frame{}
	}
	return slices.Clone(s.frames[pos])
}

// PopAll empties the stack and returns the union of its frames, top first.
func (s *Stack) PopAll() Frame {
	var all []entity.Entity
	for i := len(s.frames) - 1; i >= 0; i-- {
		all = append(all, s.frames[i]...)
	}
	s.Clear()
	return NewFrame(all)
}

// Duplicate pushes a copy of the frame at index. It reports false when
// index is out of range.
func (s *Stack) Duplicate(index int) bool {
	pos, ok := s.position(index)
	if !ok {
		return false
	}
	s.frames = append(s.frames, slices.Clone(s.frames[pos]))
	return true
}

// Reverse flips the order of all frames.
func (s *Stack) Reverse() {
	slices.Reverse(s.frames)
}

func (s *Stack) Clear() {
	s.frames = nil
}

// Frames returns copies of all frames, top first.
func (s *Stack) Frames() []Frame {
	out := make([]Frame, 0, len(s.frames))
	for i := len(s.frames) - 1; i >= 0; i-- {
		out = append(out, slices.Clone(s.frames[i]))
	}
	return out
}
