package hashset

type sentinel struct{}

// MapSet is a Container backed by a Go map. It grows without bound and is
// the baseline Set is measured against.
type MapSet[T comparable] struct {
	data map[T]sentinel
}

// NewMapSet creates a MapSet with room for sizeHint elements.
func NewMapSet[T comparable](sizeHint int) *MapSet[T] {
	return &MapSet[T]{
		data: make(map[T]sentinel, sizeHint),
	}
}

// Size returns the number of elements.
func (s *MapSet[T]) Size() int {
	return len(s.data)
}

// Add inserts a key into the set. It never fails.
func (s *MapSet[T]) Add(key T) (bool, error) {
	if _, ok := s.data[key]; ok {
		return false, nil
	}
	s.data[key] = sentinel{}
	return true, nil
}

// Contains checks if a key is in the set
func (s *MapSet[T]) Contains(key T) bool {
	_, exists := s.data[key]
	return exists
}

// Remove deletes a key from the set
func (s *MapSet[T]) Remove(key T) bool {
	if _, ok := s.data[key]; !ok {
		return false
	}
	delete(s.data, key)
	return true
}

// Range visits elements in map order.
func (s *MapSet[T]) Range(fn func(T) bool) {
	for k := range s.data {
		if !fn(k) {
			return
		}
	}
}
