package datastructures

import "iter"

const forwardListName = "forward list"

type (
	// ForwardList is a singly linked list. Only the head is tracked, so
	// anything at the back costs a walk.
	ForwardList[T any] struct {
		head   *forwardNode[T]
		length int
	}

	forwardNode[T any] struct {
		value T
		next  *forwardNode[T]
	}
)

// NewForwardList creates an empty singly linked list.
func NewForwardList[T any]() *ForwardList[T] {
	return &ForwardList[T]{}
}

// PushFront makes value the new head.
func (l *ForwardList[T]) PushFront(value T) {
	l.head = &forwardNode[T]{value: value, next: l.head}
	l.length++
}

// PushBack walks to the last node and links value after it.
func (l *ForwardList[T]) PushBack(value T) {
	n := &forwardNode[T]{value: value}
	if l.head == nil {
		l.head = n
	} else {
		last := l.head
		for last.next != nil {
			last = last.next
		}
		last.next = n
	}
	l.length++
}

// Insert adds value so that it ends up at index.
func (l *ForwardList[T]) Insert(index int, value T) error {
	if index < 0 || index > l.length {
		return outOfRange(forwardListName, "insert", index, l.length+1)
	}
	switch index {
	case 0:
		l.PushFront(value)
	case l.length:
		l.PushBack(value)
	default:
		prev := l.nodeAt(index - 1)
		prev.next = &forwardNode[T]{value: value, next: prev.next}
		l.length++
	}
	return nil
}

// Erase removes the value at index.
func (l *ForwardList[T]) Erase(index int) error {
	if index < 0 || index >= l.length {
		return outOfRange(forwardListName, "erase", index, l.length)
	}
	if index == 0 {
		l.removeHead()
	} else {
		l.removeAfter(l.nodeAt(index - 1))
	}
	return nil
}

// PopFront removes and returns the head value.
func (l *ForwardList[T]) PopFront() (T, error) {
	if l.length == 0 {
		var zero T
		return zero, emptyContainer(forwardListName, "pop front")
	}
	return l.removeHead(), nil
}

// PopBack walks to the second-to-last node.
func (l *ForwardList[T]) PopBack() (T, error) {
	if l.length == 0 {
		var zero T
		return zero, emptyContainer(forwardListName, "pop back")
	}
	if l.length == 1 {
		return l.removeHead(), nil
	}
	return l.removeAfter(l.nodeAt(l.length - 2)), nil
}

func (l *ForwardList[T]) removeHead() T {
	old := l.head
	l.head = old.next
	old.next = nil
	l.length--
	return old.value
}

func (l *ForwardList[T]) removeAfter(prev *forwardNode[T]) T {
	target := prev.next
	prev.next = target.next
	target.next = nil
	l.length--
	return target.value
}

func (l *ForwardList[T]) nodeAt(index int) *forwardNode[T] {
	n := l.head
	for i := 0; i < index; i++ {
		n = n.next
	}
	return n
}

// At returns a reference to the value at index.
func (l *ForwardList[T]) At(index int) (*T, error) {
	if index < 0 || index >= l.length {
		return nil, outOfRange(forwardListName, "at", index, l.length)
	}
	return &l.nodeAt(index).value, nil
}

// Get returns the value at index.
func (l *ForwardList[T]) Get(index int) (T, error) {
	p, err := l.At(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Set overwrites the value at index.
func (l *ForwardList[T]) Set(index int, value T) error {
	p, err := l.At(index)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

// Len returns the number of elements in the list.
func (l *ForwardList[T]) Len() int {
	return l.length
}

// Size is an alias for Len.
func (l *ForwardList[T]) Size() int {
	return l.length
}

// Empty reports whether the list has no elements.
func (l *ForwardList[T]) Empty() bool {
	return l.head == nil
}

// Clear releases the chain node by node from the head.
func (l *ForwardList[T]) Clear() {
	for l.head != nil {
		next := l.head.next
		l.head.next = nil
		l.head = next
	}
	l.length = 0
}

// Move hands the chain to a new list; the receiver ends up empty.
func (l *ForwardList[T]) Move() *ForwardList[T] {
	dst := &ForwardList[T]{head: l.head, length: l.length}
	l.head, l.length = nil, 0
	return dst
}

// MoveFrom clears the receiver before adopting src's chain.
func (l *ForwardList[T]) MoveFrom(src *ForwardList[T]) {
	if l == src {
		return
	}
	l.Clear()
	l.head, l.length = src.head, src.length
	src.head, src.length = nil, 0
}

// Values yields the values from the head to the nil terminator.
func (l *ForwardList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// All yields index/value pairs from the head.
func (l *ForwardList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := l.head; n != nil; n = n.next {
			if !yield(i, n.value) {
				return
			}
			i++
		}
	}
}

// Slice copies the values into a new slice.
func (l *ForwardList[T]) Slice() []T {
	out := make([]T, 0, l.length)
	for v := range l.Values() {
		out = append(out, v)
	}
	return out
}

func (l *ForwardList[T]) String() string {
	return Format(l.Values())
}

// Begin returns a cursor on the head; it reaches the end at the nil
// terminator.
func (l *ForwardList[T]) Begin() *ForwardCursor[T] {
	return &ForwardCursor[T]{current: l.head}
}

// ForwardCursor follows next links; a nil node is the end.
type ForwardCursor[T any] struct {
	current *forwardNode[T]
}

// Valid reports whether the cursor is on a node.
func (c *ForwardCursor[T]) Valid() bool { return c.current != nil }

// Next advances the cursor. It stays put at the end.
func (c *ForwardCursor[T]) Next() {
	if c.current != nil {
		c.current = c.current.next
	}
}

// Get returns a reference to the current value.
func (c *ForwardCursor[T]) Get() (*T, error) {
	if c.current == nil {
		return nil, endOfSequence(forwardListName)
	}
	return &c.current.value, nil
}
