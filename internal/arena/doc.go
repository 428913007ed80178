// Package arena provides a doubly linked list whose nodes live in a growable
// slot arena.
//
// Nodes are addressed by stable integer handles instead of pointers. Removing
// a node recycles its slot through a free list, so arbitrary-position removal
// stays O(1) without individually heap-allocated nodes referencing each
// other. The arena owns every node; handles are plain indices, copyable, and
// carry no ownership.
package arena
