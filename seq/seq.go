// Package seq is a generic ordered sequence built on owned singly linked
// nodes. It exists because the document tree in jdoc.mleku.dev/json needs
// constant time front insertion and iterator stability while members are
// prepended, which a growable array does not give.
package seq

// Node is one element of a List. Nodes are owned by exactly one list; sharing
// a node between lists is not supported.
type Node[V any] struct {
	V    V
	next *Node[V]
}

// Next returns the following node, or nil at the end of the list.
func (n *Node[V]) Next() *Node[V] { return n.next }

// List is an ordered, mutable sequence with head and tail pointers. The zero
// value is an empty list ready to use.
//
// Iteration is forward only:
//
//	for n := l.Front(); n != nil; n = n.Next() { ... }
type List[V any] struct {
	front  *Node[V]
	back   *Node[V]
	length int
}

// New returns an empty list.
func New[V any]() *List[V] { return &List[V]{} }

// Len returns the number of elements.
func (l *List[V]) Len() int { return l.length }

// Empty reports whether the list has no elements.
func (l *List[V]) Empty() bool { return l.front == nil }

// Front returns the first node, or nil if the list is empty.
func (l *List[V]) Front() *Node[V] { return l.front }

// Back returns the last node, or nil if the list is empty.
func (l *List[V]) Back() *Node[V] { return l.back }

// PushFront prepends v. O(1).
func (l *List[V]) PushFront(v V) {
	n := &Node[V]{V: v, next: l.front}
	l.front = n
	if l.back == nil {
		l.back = n
	}
	l.length++
}

// PushBack appends v. O(1).
func (l *List[V]) PushBack(v V) {
	n := &Node[V]{V: v}
	if l.back == nil {
		l.front = n
		l.back = n
	} else {
		l.back.next = n
		l.back = n
	}
	l.length++
}

// PopFront removes the first element. Removing from an empty list is a no-op.
// O(1).
func (l *List[V]) PopFront() {
	if l.front == nil {
		return
	}
	l.front = l.front.next
	if l.front == nil {
		l.back = nil
	}
	l.length--
}

// PopBack removes the last element. Removing from an empty list is a no-op.
// O(n) because the nodes only link forward.
func (l *List[V]) PopBack() {
	if l.front == nil {
		return
	}
	if l.front == l.back {
		l.PopFront()
		return
	}
	prev := l.front
	for prev.next != l.back {
		prev = prev.next
	}
	prev.next = nil
	l.back = prev
	l.length--
}

// At returns the i-th element. O(n). ok is false when i is out of range.
func (l *List[V]) At(i int) (v V, ok bool) {
	if i < 0 || i >= l.length {
		return
	}
	n := l.front
	for ; i > 0; i-- {
		n = n.next
	}
	return n.V, true
}

// Clear removes all elements.
func (l *List[V]) Clear() {
	l.front = nil
	l.back = nil
	l.length = 0
}

// Append appends the elements of rhs to l. The elements themselves are not
// cloned; pass the result of rhs.Copy if independent values are needed.
func (l *List[V]) Append(rhs *List[V]) *List[V] {
	for n := rhs.front; n != nil; n = n.next {
		l.PushBack(n.V)
	}
	return l
}

// AppendValue appends a single value and returns the list for chaining.
func (l *List[V]) AppendValue(v V) *List[V] {
	l.PushBack(v)
	return l
}

// Equal reports elementwise equality under eq.
func (l *List[V]) Equal(rhs *List[V], eq func(a, b V) bool) bool {
	if l.length != rhs.length {
		return false
	}
	a, b := l.front, rhs.front
	for a != nil {
		if !eq(a.V, b.V) {
			return false
		}
		a, b = a.next, b.next
	}
	return true
}

// Copy returns an independent structural clone of the list with every element
// passed through clone. Pass an identity function for shallow element copies.
func (l *List[V]) Copy(clone func(V) V) (c *List[V]) {
	c = New[V]()
	for n := l.front; n != nil; n = n.next {
		c.PushBack(clone(n.V))
	}
	return
}

// Move transfers the nodes of l into a new list and leaves l empty.
func (l *List[V]) Move() (m *List[V]) {
	m = &List[V]{front: l.front, back: l.back, length: l.length}
	l.Clear()
	return
}
