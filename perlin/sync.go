package perlin

import "sync"

type synchronized struct {
	mu    sync.Mutex
	field Field
}

// Synchronized serializes every evaluation of f, so one field can be
// shared between goroutines. The memoized lattice is otherwise unguarded.
func Synchronized(f Field) Field {
	if s, ok := f.(*synchronized); ok {
		return s
	}
	return &synchronized{field: f}
}

func (s *synchronized) Get(x ...float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.field.Get(x...)
}

func (s *synchronized) Dimensions() int {
	return s.field.Dimensions()
}
