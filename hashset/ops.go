package hashset

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// AddAll adds each element in turn. It reports whether the set changed and
// stops at the first error, keeping the elements added before it.
func (s *Set[T]) AddAll(elems ...T) (bool, error) {
	changed := false
	for _, e := range elems {
		ok, err := s.Add(e)
		if err != nil {
			return changed, err
		}
		changed = changed || ok
	}
	return changed, nil
}

// ContainsAll reports whether every element is present.
func (s *Set[T]) ContainsAll(elems ...T) bool {
	for _, e := range elems {
		if !s.Contains(e) {
			return false
		}
	}
	return true
}

// RemoveAll removes every listed element that is present and reports
// whether anything was removed.
func (s *Set[T]) RemoveAll(elems ...T) bool {
	changed := false
	for _, e := range elems {
		if s.Remove(e) {
			changed = true
		}
	}
	return changed
}

// RetainAll removes every element not contained in keep.
func (s *Set[T]) RetainAll(keep Container[T]) bool {
	return s.removeWhere(func(e T) bool { return !keep.Contains(e) })
}

// Clear removes every element through an iterator. The freed slots stay
// tombstoned, so Clear does not shorten later probes.
func (s *Set[T]) Clear() {
	s.removeWhere(func(T) bool { return true })
}

// removeWhere sweeps the set once and removes each element drop accepts.
// An iterator error ends the sweep early and is logged.
func (s *Set[T]) removeWhere(drop func(T) bool) bool {
	changed := false
	it := s.Iterator()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			s.logger.Warn("hashset sweep stopped", zap.Error(err))
			break
		}
		if !drop(e) {
			continue
		}
		if err := it.Remove(); err != nil {
			s.logger.Warn("hashset sweep stopped", zap.Error(err))
			break
		}
		changed = true
	}
	return changed
}

// Equal reports whether both containers hold the same elements.
func (s *Set[T]) Equal(other Container[T]) bool {
	if other == nil || s.Size() != other.Size() {
		return false
	}
	equal := true
	other.Range(func(e T) bool {
		equal = s.Contains(e)
		return equal
	})
	return equal
}

// Slice returns the live elements in slot order.
func (s *Set[T]) Slice() []T {
	out := make([]T, 0, s.size)
	s.Range(func(e T) bool {
		out = append(out, e)
		return true
	})
	return out
}

// String formats the set as [a, b, c].
func (s *Set[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	s.Range(func(e T) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprint(&b, e)
		return true
	})
	b.WriteByte(']')
	return b.String()
}
