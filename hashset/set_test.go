package hashset

import (
	"errors"
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/btree"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fzft/go-openset/internal/pcg"
)

func newIntSet(t *testing.T, bits int) *Set[int] {
	t.Helper()
	s, err := New[int](bits)
	require.NoError(t, err)
	return s
}

func TestNewBits(t *testing.T) {
	for _, bits := range []int{-1, 0, 1, 32, 64} {
		s, err := New[int](bits)
		assert.Nil(t, s)
		assert.ErrorIs(t, err, ErrInvalidBits, "bits=%d", bits)
	}

	for _, bits := range []int{2, 3, 10} {
		s, err := New[int](bits)
		require.NoError(t, err)
		assert.Equal(t, 1<<bits, s.Capacity())
		assert.Equal(t, bits, s.Bits())
		assert.Equal(t, 0, s.Size())
		assert.True(t, s.IsEmpty())
	}
}

func TestAddNoDuplicates(t *testing.T) {
	s := newIntSet(t, 4)

	ok, err := s.Add(7)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Add(7)
	require.NoError(t, err)
	assert.False(t, ok, "second add of a present element must be a no-op")
	assert.Equal(t, 1, s.Size())
	assert.True(t, s.Contains(7))
}

func TestAddRemoveInverse(t *testing.T) {
	s := newIntSet(t, 4)
	_, err := s.AddAll(1, 2, 3)
	require.NoError(t, err)

	ok, err := s.Add(42)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, s.Remove(42))
	assert.Equal(t, 3, s.Size())
	assert.False(t, s.Contains(42))

	assert.False(t, s.Remove(42), "removing an absent element reports false")
	assert.Equal(t, 3, s.Size())
	assert.Equal(t, 1, s.Tombstones())
}

func TestTombstoneReused(t *testing.T) {
	s := newIntSet(t, 3)

	_, err := s.Add(5)
	require.NoError(t, err)
	require.True(t, s.Remove(5))
	assert.Equal(t, 1, s.Tombstones())

	ok, err := s.Add(5)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, s.Contains(5))
	assert.Equal(t, 1, s.Size())
	assert.Equal(t, 0, s.Tombstones())
}

func TestTableFull(t *testing.T) {
	s := newIntSet(t, 2)
	for i := 0; i < 4; i++ {
		ok, err := s.Add(i)
		require.NoError(t, err)
		require.True(t, ok)
	}

	ok, err := s.Add(4)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrTableFull)
	assert.Equal(t, 4, s.Size())

	// a lookup on a table without empty slots must terminate
	assert.False(t, s.Contains(4))
	assert.False(t, s.Remove(4))

	// re-adding a present element on a full table is still a plain no-op
	ok, err = s.Add(2)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestAllTombstones(t *testing.T) {
	s := newIntSet(t, 2)
	_, err := s.AddAll(0, 1, 2, 3)
	require.NoError(t, err)
	require.True(t, s.RemoveAll(0, 1, 2, 3))
	require.Equal(t, 4, s.Tombstones())
	assert.Equal(t, 1.0, s.LoadFactor())

	assert.False(t, s.Contains(5))

	ok, err := s.Add(5)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, s.Contains(5))
	assert.Equal(t, 1, s.Size())
	assert.Equal(t, 3, s.Tombstones())
}

func TestProbePastTombstone(t *testing.T) {
	// identity hash, 8 slots: all three start at slot 1
	s := newIntSet(t, 3)
	_, err := s.AddAll(1, 9, 17)
	require.NoError(t, err)

	require.True(t, s.Remove(9))
	assert.True(t, s.Contains(17))
	assert.True(t, s.Contains(1))
	assert.False(t, s.Contains(9))

	assert.True(t, s.Remove(17))
	assert.Equal(t, 1, s.Size())
}

func TestNoDuplicateBehindTombstone(t *testing.T) {
	s := newIntSet(t, 3)
	_, err := s.AddAll(1, 9)
	require.NoError(t, err)
	require.True(t, s.Remove(1))

	ok, err := s.Add(9)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, s.Size())

	s.Remove(9)
	assert.False(t, s.Contains(9))
}

func TestCustomHasher(t *testing.T) {
	constant := func(string) uint64 { return 3 }
	s, err := New[string](3, WithHasher[string](constant))
	require.NoError(t, err)

	words := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for _, w := range words {
		ok, err := s.Add(w)
		require.NoError(t, err)
		require.True(t, ok)
	}
	for _, w := range words {
		assert.True(t, s.Contains(w), w)
	}

	_, err = s.Add("i")
	assert.ErrorIs(t, err, ErrTableFull)
}

func TestFullTableLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	s, err := New[int](2, WithLogger[int](zap.New(core)))
	require.NoError(t, err)

	_, err = s.AddAll(0, 1, 2, 3, 4)
	require.True(t, errors.Is(err, ErrTableFull))

	entries := logs.FilterMessage("hashset full").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(4), entries[0].ContextMap()["capacity"])
}

func TestSizeMatchesIteration(t *testing.T) {
	s := newIntSet(t, 6)
	for i := 0; i < 40; i++ {
		_, err := s.Add(i * 3)
		require.NoError(t, err)
	}
	for i := 0; i < 40; i += 4 {
		s.Remove(i * 3)
	}

	n := 0
	it := s.Iterator()
	for it.HasNext() {
		_, err := it.Next()
		require.NoError(t, err)
		n++
	}
	assert.Equal(t, s.Size(), n)
	assert.Len(t, s.Slice(), n)
}

// TestAgainstModel drives random operations against a btree set and checks
// that both agree after every step.
func TestAgainstModel(t *testing.T) {
	const (
		bits     = 8
		universe = 200
		steps    = 20000
	)

	s := newIntSet(t, bits)
	var model btree.Set[int]
	p := pcg.New(1, 2)

	for step := 0; step < steps; step++ {
		v := p.Intn(universe)
		switch p.Intn(3) {
		case 0:
			ok, err := s.Add(v)
			require.NoError(t, err)
			require.Equal(t, !model.Contains(v), ok, "add %d at step %d", v, step)
			model.Insert(v)
		case 1:
			ok := s.Remove(v)
			require.Equal(t, model.Contains(v), ok, "remove %d at step %d", v, step)
			model.Delete(v)
		case 2:
			require.Equal(t, model.Contains(v), s.Contains(v), "contains %d at step %d", v, step)
		}
		require.Equal(t, model.Len(), s.Size())
	}

	var want []int
	model.Scan(func(k int) bool {
		want = append(want, k)
		return true
	})
	got := s.Slice()
	sort.Ints(got)
	assert.Equal(t, want, got)
}

func TestMaxBitsFitsInt(t *testing.T) {
	if strconv.IntSize == 64 {
		assert.Equal(t, 31, MaxBits)
	} else {
		assert.Equal(t, 30, MaxBits)
	}
	assert.Greater(t, 1<<MaxBits, 0, "capacity must not overflow int")

	_, err := New[int](MaxBits + 1)
	assert.ErrorIs(t, err, ErrInvalidBits)
}
