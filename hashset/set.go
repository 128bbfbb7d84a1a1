package hashset

import (
	"fmt"
	"math/bits"

	"go.uber.org/zap"
)

const (
	MinBits = 2
	// MaxBits is 31 on 64-bit platforms and 30 on 32-bit ones, where 1<<31
	// does not fit in an int.
	MaxBits = 30 + bits.UintSize/64
)

// Set is a fixed capacity hash set using open addressing with linear
// probing. Deleted slots become tombstones and are never reset to empty,
// though a later Add may reuse them. The table never grows: once a lap of
// the table finds no free slot, Add reports ErrTableFull.
//
// A Set is not safe for concurrent use.
type Set[T comparable] struct {
	slots      []slot[T]
	bits       int
	mask       uint64
	size       int
	tombstones int
	hash       Hasher[T]
	logger     *zap.Logger
}

// Option configures a Set at construction.
type Option[T comparable] func(*Set[T])

// WithHasher replaces DefaultHasher.
func WithHasher[T comparable](h Hasher[T]) Option[T] {
	return func(s *Set[T]) {
		if h != nil {
			s.hash = h
		}
	}
}

// WithLogger sets the logger used to report construction and overflow.
func WithLogger[T comparable](l *zap.Logger) Option[T] {
	return func(s *Set[T]) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Set holding at most 2^bits elements.
func New[T comparable](bits int, opts ...Option[T]) (*Set[T], error) {
	if bits < MinBits || bits > MaxBits {
		return nil, fmt.Errorf("%w: got %d, want %d..%d", ErrInvalidBits, bits, MinBits, MaxBits)
	}

	capacity := 1 << bits
	s := &Set[T]{
		slots:  make([]slot[T], capacity),
		bits:   bits,
		mask:   uint64(capacity - 1),
		hash:   DefaultHasher[T](),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.logger.Debug("hashset created", zap.Int("bits", bits), zap.Int("capacity", capacity))
	return s, nil
}

func (s *Set[T]) startingIndex(e T) int {
	return int(s.hash(e) & s.mask)
}

func (s *Set[T]) next(i int) int {
	return (i + 1) & int(s.mask)
}

// find returns the slot index holding e, or -1. The probe walks past
// tombstones and stops at the first empty slot or after one lap.
func (s *Set[T]) find(e T) int {
	start := s.startingIndex(e)
	i := start
	for {
		sl := &s.slots[i]
		if sl.state == slotEmpty {
			return -1
		}
		if sl.holds(e) {
			return i
		}
		i = s.next(i)
		if i == start {
			return -1
		}
	}
}

// Size returns the number of live elements.
func (s *Set[T]) Size() int { return s.size }

// IsEmpty reports whether the set has no live elements.
func (s *Set[T]) IsEmpty() bool { return s.size == 0 }

// Capacity returns 2^bits.
func (s *Set[T]) Capacity() int { return len(s.slots) }

// Bits returns the bits the set was built with.
func (s *Set[T]) Bits() int { return s.bits }

// Tombstones returns the number of slots currently marked deleted.
func (s *Set[T]) Tombstones() int { return s.tombstones }

// LoadFactor is the share of slots that are occupied or tombstoned.
func (s *Set[T]) LoadFactor() float64 {
	return float64(s.size+s.tombstones) / float64(len(s.slots))
}

// Contains reports whether e is in the set.
func (s *Set[T]) Contains(e T) bool {
	return s.find(e) >= 0
}

// Add inserts e. It returns false if an equal element is already present.
// The first tombstone on the probe path is reused, but only after the rest
// of the chain has been checked for e.
func (s *Set[T]) Add(e T) (bool, error) {
	start := s.startingIndex(e)
	free := -1
	i := start
	for {
		sl := &s.slots[i]
		if sl.state == slotEmpty {
			if free < 0 {
				free = i
			}
			break
		}
		if sl.state == slotTombstone {
			if free < 0 {
				free = i
			}
		} else if sl.elem == e {
			return false, nil
		}

		i = s.next(i)
		if i == start {
			break
		}
	}

	if free < 0 {
		s.logger.Warn("hashset full",
			zap.Int("capacity", len(s.slots)),
			zap.Int("size", s.size),
			zap.Int("tombstones", s.tombstones))
		return false, fmt.Errorf("%w: capacity %d", ErrTableFull, len(s.slots))
	}

	if s.slots[free].state == slotTombstone {
		s.tombstones--
	}
	s.slots[free].occupy(e)
	s.size++
	return true, nil
}

// Remove deletes e. It returns false and leaves the set untouched if e is
// not present.
func (s *Set[T]) Remove(e T) bool {
	i := s.find(e)
	if i < 0 {
		return false
	}
	s.removeAt(i)
	return true
}

func (s *Set[T]) removeAt(i int) {
	s.slots[i].bury()
	s.tombstones++
	s.size--
}

// Iterator returns a new cursor positioned before the first slot.
func (s *Set[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{set: s, index: -1}
}

// Range calls fn for each live element in slot order until fn returns
// false. fn must not mutate the set.
func (s *Set[T]) Range(fn func(T) bool) {
	for i := range s.slots {
		if s.slots[i].occupied() && !fn(s.slots[i].elem) {
			return
		}
	}
}
