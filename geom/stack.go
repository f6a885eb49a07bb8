package geom

import (
	"fmt"
	"sync"
)

// Stack is a scoped "active geometry" for callers that prefer an ambient
// descriptor to passing *Geometry around. Push returns a restore function;
// Within restores on every exit path, including panics.
type Stack struct {
	mu    sync.Mutex
	items []*Geometry
}

// NewStack returns a stack whose bottom (and current) geometry is g.
func NewStack(g *Geometry) *Stack {
	return &Stack{items: []*Geometry{g}}
}

// Current is the innermost active geometry.
func (s *Stack) Current() *Geometry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[len(s.items)-1]
}

// Depth is the number of active entries, the bottom one included.
func (s *Stack) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Push makes g current and returns the function restoring the previous
// state. Restoring twice is a no-op. Restores must happen in reverse order
// of pushes; restoring while a later push is still active panics with
// ErrStackOrder and leaves the stack as it was.
func (s *Stack) Push(g *Geometry) (restore func()) {
	s.mu.Lock()
	s.items = append(s.items, g)
	depth := len(s.items)
	s.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if len(s.items) != depth {
				panic(fmt.Errorf("%w: depth %d, restoring %d", ErrStackOrder, len(s.items), depth))
			}
			s.items[depth-1] = nil
			s.items = s.items[:depth-1]
		})
	}
}

// Within runs fn with g current.
func (s *Stack) Within(g *Geometry, fn func() error) error {
	restore := s.Push(g)
	defer restore()
	return fn()
}
