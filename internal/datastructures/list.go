package datastructures

import "iter"

const listName = "list"

type (
	// List represents a doubly linked list.
	List[T any] struct {
		head   *node[T]
		tail   *node[T]
		length int
	}

	// node represents an element in the doubly linked list. prev and next
	// are traversal links only; the list owns every node.
	node[T any] struct {
		value T
		prev  *node[T]
		next  *node[T]
	}
)

// NewList creates a new list.
func NewList[T any]() *List[T] {
	return &List[T]{}
}

// PushFront adds a value to the head of the list.
func (l *List[T]) PushFront(value T) {
	n := &node[T]{value: value}
	if l.length == 0 {
		l.head = n
		l.tail = n
	} else {
		n.next = l.head
		l.head.prev = n
		l.head = n
	}
	l.length++
}

// PushBack adds a value to the tail of the list.
func (l *List[T]) PushBack(value T) {
	n := &node[T]{value: value}
	if l.length == 0 {
		l.head = n
		l.tail = n
	} else {
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	}
	l.length++
}

// Insert adds a value so that it ends up at index.
func (l *List[T]) Insert(index int, value T) error {
	if index < 0 || index > l.length {
		return outOfRange(listName, "insert", index, l.length+1)
	}
	switch index {
	case 0:
		l.PushFront(value)
	case l.length:
		l.PushBack(value)
	default:
		at := l.nodeAt(index)
		n := &node[T]{value: value, prev: at.prev, next: at}
		at.prev.next = n
		at.prev = n
		l.length++
	}
	return nil
}

// Erase removes the value at index.
func (l *List[T]) Erase(index int) error {
	if index < 0 || index >= l.length {
		return outOfRange(listName, "erase", index, l.length)
	}
	l.unlink(l.nodeAt(index))
	return nil
}

// PopFront removes and returns the value at the head of the list.
func (l *List[T]) PopFront() (T, error) {
	if l.length == 0 {
		var zero T
		return zero, emptyContainer(listName, "pop front")
	}
	return l.unlink(l.head), nil
}

// PopBack removes and returns the value at the tail of the list.
func (l *List[T]) PopBack() (T, error) {
	if l.length == 0 {
		var zero T
		return zero, emptyContainer(listName, "pop back")
	}
	return l.unlink(l.tail), nil
}

// nodeAt walks from the head; index must already be in range.
func (l *List[T]) nodeAt(index int) *node[T] {
	n := l.head
	for i := 0; i < index; i++ {
		n = n.next
	}
	return n
}

func (l *List[T]) unlink(n *node[T]) T {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev = nil
	n.next = nil
	l.length--
	return n.value
}

// At returns a reference to the value at index.
func (l *List[T]) At(index int) (*T, error) {
	if index < 0 || index >= l.length {
		return nil, outOfRange(listName, "at", index, l.length)
	}
	return &l.nodeAt(index).value, nil
}

// Get returns the value at index.
func (l *List[T]) Get(index int) (T, error) {
	p, err := l.At(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Set overwrites the value at index.
func (l *List[T]) Set(index int, value T) error {
	p, err := l.At(index)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.length
}

// Size is an alias for Len to maintain consistency with the required operations.
func (l *List[T]) Size() int {
	return l.Len()
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	return l.length == 0
}

// Clear removes all elements from the list, severing every node from its
// neighbours on the way.
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.prev = nil
		n.next = nil
		n = next
	}
	l.head = nil
	l.tail = nil
	l.length = 0
}

// Move transfers every node to a new list and resets the receiver.
func (l *List[T]) Move() *List[T] {
	dst := &List[T]{head: l.head, tail: l.tail, length: l.length}
	l.head, l.tail, l.length = nil, nil, 0
	return dst
}

// MoveFrom clears the receiver and takes over src's nodes, leaving src
// empty.
func (l *List[T]) MoveFrom(src *List[T]) {
	if l == src {
		return
	}
	l.Clear()
	l.head, l.tail, l.length = src.head, src.tail, src.length
	src.head, src.tail, src.length = nil, nil, 0
}

// Values yields the values from head to tail.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward yields the values from tail to head.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// All yields index/value pairs from head to tail.
func (l *List[T]) All() iter.Seq2[int, T] {
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
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.length)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

func (l *List[T]) String() string {
	return Format(l.Values())
}

// Begin returns a cursor on the head.
func (l *List[T]) Begin() *ListCursor[T] {
	return &ListCursor[T]{current: l.head}
}

// ListCursor follows next links; a nil node is the end.
type ListCursor[T any] struct {
	current *node[T]
}

// Valid reports whether the cursor is on a node.
func (c *ListCursor[T]) Valid() bool {
	return c.current != nil
}

// Next advances the cursor. It stays put at the end.
func (c *ListCursor[T]) Next() {
	if c.current != nil {
		c.current = c.current.next
	}
}

// Get returns a reference to the current value.
func (c *ListCursor[T]) Get() (*T, error) {
	if c.current == nil {
		return nil, endOfSequence(listName)
	}
	return &c.current.value, nil
}
