package datastructures

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var constructors = map[string]func() Sequence[int]{
	"array":        func() Sequence[int] { return NewArray[int]() },
	"list":         func() Sequence[int] { return NewList[int]() },
	"forward_list": func() Sequence[int] { return NewForwardList[int]() },
}

func filled(newSeq func() Sequence[int], n int) Sequence[int] {
	s := newSeq()
	for i := 0; i < n; i++ {
		s.PushBack(i)
	}
	return s
}

func TestSequenceScenario(t *testing.T) {
	for name, newSeq := range constructors {
		t.Run(name, func(t *testing.T) {
			s := filled(newSeq, 10)
			require.Equal(t, 10, s.Size())
			assert.Equal(t, "0 1 2 3 4 5 6 7 8 9", s.String())

			require.NoError(t, s.Erase(2))
			require.NoError(t, s.Erase(3))
			require.NoError(t, s.Erase(4))
			assert.Equal(t, []int{0, 1, 3, 5, 7, 8, 9}, s.Slice())

			s.PushFront(10)
			assert.Equal(t, []int{10, 0, 1, 3, 5, 7, 8, 9}, s.Slice())

			require.NoError(t, s.Insert(s.Size()/2, 20))
			assert.Equal(t, []int{10, 0, 1, 3, 20, 5, 7, 8, 9}, s.Slice())

			s.PushBack(30)
			assert.Equal(t, []int{10, 0, 1, 3, 20, 5, 7, 8, 9, 30}, s.Slice())
			assert.Equal(t, 10, s.Size())
		})
	}
}

func TestSequenceAtMatchesPushOrder(t *testing.T) {
	for name, newSeq := range constructors {
		t.Run(name, func(t *testing.T) {
			s := filled(newSeq, 25)
			for i := 0; i < 25; i++ {
				v, err := s.Get(i)
				require.NoError(t, err)
				assert.Equal(t, i, v)
			}
			for i, v := range s.All() {
				assert.Equal(t, i, v)
			}
		})
	}
}

func TestSequenceEraseInsertRoundTrip(t *testing.T) {
	for name, newSeq := range constructors {
		t.Run(name, func(t *testing.T) {
			s := filled(newSeq, 8)
			want := s.Slice()
			for i := 0; i < 8; i++ {
				v, err := s.Get(i)
				require.NoError(t, err)
				require.NoError(t, s.Erase(i))
				require.NoError(t, s.Insert(i, v))
				assert.Equal(t, want, s.Slice(), "index %d", i)
			}
		})
	}
}

func TestSequenceSizeAfterChurn(t *testing.T) {
	for name, newSeq := range constructors {
		t.Run(name, func(t *testing.T) {
			s := filled(newSeq, 6)
			s.PushFront(-1)
			require.NoError(t, s.Insert(3, -2))
			require.NoError(t, s.Erase(0))
			require.NoError(t, s.Erase(s.Size()-1))
			assert.Equal(t, 6, s.Size())
			assert.Equal(t, 6, s.Len())
		})
	}
}

func TestSequenceOutOfRange(t *testing.T) {
	for name, newSeq := range constructors {
		t.Run(name, func(t *testing.T) {
			s := filled(newSeq, 3)
			size := s.Size()

			assert.ErrorIs(t, s.Insert(size+1, 0), ErrOutOfRange)
			assert.ErrorIs(t, s.Insert(-1, 0), ErrOutOfRange)
			assert.ErrorIs(t, s.Erase(size), ErrOutOfRange)
			assert.ErrorIs(t, s.Erase(-1), ErrOutOfRange)
			_, err := s.At(size)
			assert.ErrorIs(t, err, ErrOutOfRange)
			_, err = s.At(-1)
			assert.ErrorIs(t, err, ErrOutOfRange)

			assert.Equal(t, []int{0, 1, 2}, s.Slice())
		})
	}
}

func TestSequenceValuesStopEarly(t *testing.T) {
	for name, newSeq := range constructors {
		t.Run(name, func(t *testing.T) {
			s := filled(newSeq, 5)
			var seen []int
			for v := range s.Values() {
				if v == 2 {
					break
				}
				seen = append(seen, v)
			}
			assert.Equal(t, []int{0, 1}, seen)
			assert.Equal(t, s.Slice(), slices.Collect(s.Values()))
		})
	}
}

func TestSequenceClearThenReuse(t *testing.T) {
	for name, newSeq := range constructors {
		t.Run(name, func(t *testing.T) {
			s := filled(newSeq, 4)
			s.Clear()
			assert.True(t, s.Empty())
			assert.Empty(t, slices.Collect(s.Values()))
			s.PushBack(7)
			assert.Equal(t, []int{7}, s.Slice())
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "", Format(slices.Values([]int(nil))))
	assert.Equal(t, " a", Format(slices.Values([]string{"", "a"})))
	assert.Equal(t, "1 2", Format(slices.Values([]int{1, 2})))
}
