package datastructures

import (
	"fmt"
	"iter"
	"strings"
)

type (
	// Sequence is the positional API shared by Array, List and ForwardList.
	Sequence[T any] interface {
		PushBack(value T)
		PushFront(value T)
		Insert(index int, value T) error
		Erase(index int) error
		At(index int) (*T, error)
		Get(index int) (T, error)
		Set(index int, value T) error
		PopFront() (T, error)
		PopBack() (T, error)
		Size() int
		Len() int
		Empty() bool
		Clear()
		Values() iter.Seq[T]
		All() iter.Seq2[int, T]
		Slice() []T
		String() string
	}

	// Cursor is a forward position inside a container. A cursor that has
	// run off the end is the end sentinel: Valid reports false and Get
	// fails with ErrOutOfRange.
	Cursor[T any] interface {
		Valid() bool
		Next()
		Get() (*T, error)
	}
)

var (
	_ Sequence[int] = (*Array[int])(nil)
	_ Sequence[int] = (*List[int])(nil)
	_ Sequence[int] = (*ForwardList[int])(nil)

	_ Cursor[int] = (*ArrayCursor[int])(nil)
	_ Cursor[int] = (*ListCursor[int])(nil)
	_ Cursor[int] = (*ForwardCursor[int])(nil)
)

// Format renders values space separated, e.g. "0 1 2".
func Format[T any](values iter.Seq[T]) string {
	var b strings.Builder
	first := true
	for v := range values {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&b, v)
	}
	return b.String()
}
