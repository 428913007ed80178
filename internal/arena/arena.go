package arena

// Handle is a stable index of a node in a List. A handle stays valid until
// its node is removed; afterwards the slot is recycled through the free list
// and the old handle must not be used again.
type Handle int32

// none marks the absence of a neighbor.
const none Handle = -1

type node[T any] struct {
	value T
	prev  Handle
	next  Handle
	used  bool
}

// List is a doubly linked list backed by a slot arena. The front is the
// least recent end, the back the most recent end. All operations are O(1)
// except Each and Reset.
//
// List is not safe for concurrent use.
type List[T any] struct {
	nodes []node[T]
	free  []Handle
	front Handle
	back  Handle
	size  int
}

// New creates an empty list. hint pre-allocates slots for the expected
// number of nodes; zero is fine.
func New[T any](hint int) *List[T] {
	if hint < 0 {
		hint = 0
	}
	return &List[T]{
		nodes: make([]node[T], 0, hint),
		front: none,
		back:  none,
	}
}

// Len returns the number of linked nodes.
func (l *List[T]) Len() int {
	return l.size
}

// Slots returns the number of slots ever allocated, linked or free.
func (l *List[T]) Slots() int {
	return len(l.nodes)
}

// PushBack appends v at the most recent end and returns its handle.
func (l *List[T]) PushBack(v T) Handle {
	h := l.alloc(v)
	l.linkBack(h)
	return h
}

// MoveToBack relinks the node at h to the most recent end.
func (l *List[T]) MoveToBack(h Handle) {
	l.validate(h)
	if l.back == h {
		return
	}
	l.unlink(h)
	l.linkBack(h)
}

// PopFront removes the least recent node and returns its value. ok is false
// if the list is empty.
func (l *List[T]) PopFront() (v T, ok bool) {
	if l.front == none {
		return v, false
	}
	return l.Remove(l.front), true
}

// Remove deletes the node at h and returns its value. The slot is recycled;
// h must not be used again.
func (l *List[T]) Remove(h Handle) T {
	n := l.node(h)
	v := n.value
	l.unlink(h)

	var zero T
	n.value = zero
	n.used = false
	l.free = append(l.free, h)

	return v
}

// At returns the value stored at h.
func (l *List[T]) At(h Handle) T {
	return l.node(h).value
}

// Each calls fn for every value from least to most recent. Iteration stops
// early when fn returns false. fn must not mutate the list.
func (l *List[T]) Each(fn func(v T) bool) {
	for h := l.front; h != none; {
		n := &l.nodes[h]
		if !fn(n.value) {
			return
		}
		h = n.next
	}
}

// Reset drops every node at once, keeping the backing storage for reuse.
func (l *List[T]) Reset() {
	l.nodes = l.nodes[:0]
	l.free = l.free[:0]
	l.front = none
	l.back = none
	l.size = 0
}

// validate panics if h is out of range or points at a free slot. A stale
// handle indicates a bookkeeping defect in the caller, never an expected
// condition.
func (l *List[T]) validate(h Handle) {
	if h < 0 || int(h) >= len(l.nodes) || !l.nodes[h].used {
		panic("arena: stale handle")
	}
}

func (l *List[T]) node(h Handle) *node[T] {
	l.validate(h)
	return &l.nodes[h]
}

func (l *List[T]) alloc(v T) Handle {
	if n := len(l.free); n > 0 {
		h := l.free[n-1]
		l.free = l.free[:n-1]
		l.nodes[h] = node[T]{value: v, prev: none, next: none, used: true}
		return h
	}
	l.nodes = append(l.nodes, node[T]{value: v, prev: none, next: none, used: true})
	return Handle(len(l.nodes) - 1)
}

func (l *List[T]) linkBack(h Handle) {
	n := &l.nodes[h]
	n.prev = l.back
	n.next = none
	if l.back != none {
		l.nodes[l.back].next = h
	} else {
		l.front = h
	}
	l.back = h
	l.size++
}

func (l *List[T]) unlink(h Handle) {
	n := l.node(h)
	if n.prev != none {
		l.nodes[n.prev].next = n.next
	} else {
		l.front = n.next
	}
	if n.next != none {
		l.nodes[n.next].prev = n.prev
	} else {
		l.back = n.prev
	}
	n.prev = none
	n.next = none
	l.size--
}
