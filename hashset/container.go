package hashset

// Container is the surface shared by Set and MapSet.
type Container[T comparable] interface {
	Size() int
	Contains(e T) bool
	Add(e T) (bool, error)
	Remove(e T) bool
	Range(fn func(T) bool)
}

var (
	_ Container[int] = (*Set[int])(nil)
	_ Container[int] = (*MapSet[int])(nil)
)
