package datastructures

import "iter"

const arrayName = "array"

// Array is a growable contiguous buffer. len(data) is the capacity; slots
// [0, size) hold live elements and the rest hold zero values.
//
// Capacity grows by half again when a full array receives an element and is
// trimmed to the exact size once an erase leaves it less than half used.
type Array[T any] struct {
	data []T
	size int
}

// NewArray creates an empty array with no storage.
func NewArray[T any]() *Array[T] {
	return &Array[T]{}
}

// Size returns the number of elements in the array.
func (a *Array[T]) Size() int {
	return a.size
}

// Len is an alias for Size.
func (a *Array[T]) Len() int {
	return a.size
}

// Capacity returns the number of allocated slots.
func (a *Array[T]) Capacity() int {
	return len(a.data)
}

// Empty reports whether the array holds no elements.
func (a *Array[T]) Empty() bool {
	return a.size == 0
}

// grownCapacity is floor(c*1.5), but always at least c+1 so that a
// capacity of 1 still makes room.
func grownCapacity(c int) int {
	return max(c+1, c+c/2)
}

func (a *Array[T]) reallocate(capacity int) {
	var data []T
	if capacity > 0 {
		data = make([]T, capacity)
		copy(data, a.data[:a.size])
	}
	a.data = data
}

func (a *Array[T]) growIfFull() {
	if a.size == len(a.data) {
		a.reallocate(grownCapacity(len(a.data)))
	}
}

// Reserve grows the storage to hold at least n elements. It never shrinks.
func (a *Array[T]) Reserve(n int) {
	if n > len(a.data) {
		a.reallocate(n)
	}
}

// ShrinkToFit reallocates the storage to exactly Size slots.
func (a *Array[T]) ShrinkToFit() {
	if a.size != len(a.data) {
		a.reallocate(a.size)
	}
}

// PushBack appends value at the end.
func (a *Array[T]) PushBack(value T) {
	a.growIfFull()
	a.data[a.size] = value
	a.size++
}

// PushFront inserts value at index 0, shifting everything right.
func (a *Array[T]) PushFront(value T) {
	a.growIfFull()
	copy(a.data[1:a.size+1], a.data[:a.size])
	a.data[0] = value
	a.size++
}

// Insert places value at index, shifting [index, size) one slot right.
func (a *Array[T]) Insert(index int, value T) error {
	if index < 0 || index > a.size {
		return outOfRange(arrayName, "insert", index, a.size+1)
	}
	a.growIfFull()
	copy(a.data[index+1:a.size+1], a.data[index:a.size])
	a.data[index] = value
	a.size++
	return nil
}

// Erase removes the element at index and may shrink the storage.
func (a *Array[T]) Erase(index int) error {
	if index < 0 || index >= a.size {
		return outOfRange(arrayName, "erase", index, a.size)
	}
	a.removeAt(index)
	return nil
}

func (a *Array[T]) removeAt(index int) T {
	value := a.data[index]
	copy(a.data[index:a.size-1], a.data[index+1:a.size])
	a.size--
	var zero T
	a.data[a.size] = zero

	if capacity := len(a.data); a.size < capacity/2 && capacity > 1 {
		a.ShrinkToFit()
	}
	return value
}

// PopFront removes and returns the first element.
func (a *Array[T]) PopFront() (T, error) {
	if a.size == 0 {
		var zero T
		return zero, emptyContainer(arrayName, "pop front")
	}
	return a.removeAt(0), nil
}

// PopBack removes and returns the last element.
func (a *Array[T]) PopBack() (T, error) {
	if a.size == 0 {
		var zero T
		return zero, emptyContainer(arrayName, "pop back")
	}
	return a.removeAt(a.size - 1), nil
}

// At returns a reference to the element at index. The reference is only
// good until the next operation that reallocates.
func (a *Array[T]) At(index int) (*T, error) {
	if index < 0 || index >= a.size {
		return nil, outOfRange(arrayName, "at", index, a.size)
	}
	return &a.data[index], nil
}

// Get returns a copy of the element at index.
func (a *Array[T]) Get(index int) (T, error) {
	p, err := a.At(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Set overwrites the element at index.
func (a *Array[T]) Set(index int, value T) error {
	p, err := a.At(index)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

// Clear drops the storage, leaving an empty array with capacity 0.
func (a *Array[T]) Clear() {
	a.data = nil
	a.size = 0
}

// Move transfers the storage to a new array and resets the receiver.
func (a *Array[T]) Move() *Array[T] {
	dst := &Array[T]{data: a.data, size: a.size}
	a.data = nil
	a.size = 0
	return dst
}

// MoveFrom drops the receiver's storage and takes over src's. src is left
// empty. Moving an array onto itself does nothing.
func (a *Array[T]) MoveFrom(src *Array[T]) {
	if a == src {
		return
	}
	a.Clear()
	a.data, a.size = src.data, src.size
	src.data, src.size = nil, 0
}

// Values yields the elements from index 0 to Size-1.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(a.data[i]) {
				return
			}
		}
	}
}

// All yields index/value pairs in order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

// Refs yields mutable references to the elements in order.
func (a *Array[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(&a.data[i]) {
				return
			}
		}
	}
}

// Slice returns a copy of the live elements.
func (a *Array[T]) Slice() []T {
	out := make([]T, a.size)
	copy(out, a.data[:a.size])
	return out
}

func (a *Array[T]) String() string {
	return Format(a.Values())
}

// Begin returns a cursor on the first element.
func (a *Array[T]) Begin() *ArrayCursor[T] {
	return &ArrayCursor[T]{array: a}
}

// ArrayCursor walks an Array by position.
type ArrayCursor[T any] struct {
	array *Array[T]
	pos   int
}

// Valid reports whether the cursor is on an element.
func (c *ArrayCursor[T]) Valid() bool {
	return c.pos < c.array.size
}

// Next advances the cursor. It stays put at the end.
func (c *ArrayCursor[T]) Next() {
	if c.Valid() {
		c.pos++
	}
}

// Get returns a reference to the current element.
func (c *ArrayCursor[T]) Get() (*T, error) {
	if !c.Valid() {
		return nil, endOfSequence(arrayName)
	}
	return &c.array.data[c.pos], nil
}
