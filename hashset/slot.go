package hashset

type slotState uint8

const (
	slotEmpty slotState = iota // zero value; never held an element
	slotTombstone
	slotOccupied
)

// slot is one cell of the table. elem is only meaningful while occupied.
type slot[T comparable] struct {
	state slotState
	elem  T
}

func (s *slot[T]) occupied() bool { return s.state == slotOccupied }

func (s *slot[T]) holds(e T) bool { return s.state == slotOccupied && s.elem == e }

func (s *slot[T]) occupy(e T) {
	s.state = slotOccupied
	s.elem = e
}

// bury turns the slot into a tombstone and drops the element so the table
// does not keep it reachable.
func (s *slot[T]) bury() {
	var zero T
	s.state = slotTombstone
	s.elem = zero
}
