package hashset

import "fmt"

// Iterator walks the live elements of a Set once, in slot order. It shares
// storage with the set: mutating the set through Add or Remove while an
// iterator is in use leaves the iterator in an undefined position. Removal
// during iteration must go through Iterator.Remove.
type Iterator[T comparable] struct {
	set        *Set[T]
	index      int // last visited slot, -1 before the first Next
	checkedOut bool
	yielded    int
}

// HasNext reports whether Next would return another element.
func (it *Iterator[T]) HasNext() bool {
	return it.yielded < it.set.size
}

// Next advances to the next live element.
func (it *Iterator[T]) Next() (T, error) {
	var zero T
	if !it.HasNext() {
		return zero, ErrNoMoreElements
	}

	slots := it.set.slots
	for i := it.index + 1; i < len(slots); i++ {
		if slots[i].occupied() {
			it.index = i
			it.checkedOut = true
			it.yielded++
			return slots[i].elem, nil
		}
	}

	// only reachable if the set was mutated behind the iterator's back
	it.index = len(slots)
	it.checkedOut = false
	return zero, fmt.Errorf("%w: sweep ended after %d of %d elements", ErrNoMoreElements, it.yielded, it.set.size)
}

// Remove deletes the element returned by the last call to Next. It may be
// called at most once per Next.
func (it *Iterator[T]) Remove() error {
	if !it.checkedOut || it.index < 0 || it.index >= len(it.set.slots) {
		return ErrIllegalState
	}
	if !it.set.slots[it.index].occupied() {
		it.checkedOut = false
		return fmt.Errorf("%w: slot %d no longer occupied", ErrIllegalState, it.index)
	}

	it.set.removeAt(it.index)
	it.yielded--
	it.checkedOut = false
	return nil
}
