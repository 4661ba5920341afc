// File: heap.go
// Role: Indexed binary min-heap: Push, ExtractMin, DecreaseKey and O(1) queries.
// Determinism:
//   - siftDown prefers the left child on equal keys; siftUp never swaps equal keys.
// Concurrency:
//   - None; a Heap is owned by one goroutine.

package minheap

import (
	"cmp"
	"errors"
	"fmt"
)

// Sentinel errors returned by Push.
var (
	// ErrIDOutOfRange indicates an ID outside [0, capacity).
	ErrIDOutOfRange = errors.New("minheap: id out of range")

	// ErrDuplicateID indicates the ID was already inserted once.
	ErrDuplicateID = errors.New("minheap: id already inserted")
)

// notPresent marks an ID that was never pushed.
const notPresent = -1

// Entry is one (ID, Key) pair held by the heap.
type Entry[K cmp.Ordered] struct {
	ID  int
	Key K
}

// Heap is an indexed binary min-heap keyed by K.
//
// nodes[0:size) is the active heap; nodes[size:] holds extracted entries.
// pos[id] is the slot of id in nodes, or notPresent.
type Heap[K cmp.Ordered] struct {
	nodes []Entry[K]
	pos   []int
	size  int
}

// New returns an empty heap accepting IDs in [0, capacity).
// A negative capacity is treated as zero.
func New[K cmp.Ordered](capacity int) *Heap[K] {
	if capacity < 0 {
		capacity = 0
	}
	pos := make([]int, capacity)
	for i := range pos {
		pos[i] = notPresent
	}

	return &Heap[K]{
		nodes: make([]Entry[K], 0, capacity),
		pos:   pos,
	}
}

// Len returns the number of entries still in the heap.
func (h *Heap[K]) Len() int { return h.size }

// Cap returns the ID capacity fixed at construction.
func (h *Heap[K]) Cap() int { return len(h.pos) }

// Contains reports whether id is currently in the heap.
func (h *Heap[K]) Contains(id int) bool {
	if id < 0 || id >= len(h.pos) {
		return false
	}
	p := h.pos[id]

	return p != notPresent && p < h.size
}

// Key returns the current key of id, if id is in the heap.
func (h *Heap[K]) Key(id int) (K, bool) {
	if !h.Contains(id) {
		var zero K
		return zero, false
	}

	return h.nodes[h.pos[id]].Key, true
}

// Peek returns the minimum entry without removing it.
func (h *Heap[K]) Peek() (Entry[K], bool) {
	if h.size == 0 {
		return Entry[K]{}, false
	}

	return h.nodes[0], true
}

// Push inserts id with the given key and restores heap order.
//
// Each ID can be pushed once for the lifetime of the heap; pushing an
// extracted ID again returns ErrDuplicateID.
func (h *Heap[K]) Push(id int, key K) error {
	if id < 0 || id >= len(h.pos) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIDOutOfRange, id, len(h.pos))
	}
	if h.pos[id] != notPresent {
		return fmt.Errorf("%w: %d", ErrDuplicateID, id)
	}

	// 1) Slot h.size may hold a parked entry; move it to the tail first.
	if h.size < len(h.nodes) {
		parked := h.nodes[h.size]
		h.nodes = append(h.nodes, parked)
		h.pos[parked.ID] = len(h.nodes) - 1
		h.nodes[h.size] = Entry[K]{ID: id, Key: key}
	} else {
		h.nodes = append(h.nodes, Entry[K]{ID: id, Key: key})
	}

	// 2) Grow the active region and restore heap order.
	h.pos[id] = h.size
	h.size++
	h.siftUp(h.size - 1)

	return nil
}

// ExtractMin removes and returns the entry with the smallest key.
// It returns false when the heap is empty.
//
// The root is swapped with the last active slot, the active region
// shrinks by one, and the new root is sifted down.
func (h *Heap[K]) ExtractMin() (Entry[K], bool) {
	if h.size == 0 {
		return Entry[K]{}, false
	}

	// 1) Park the root behind the last active slot.
	last := h.size - 1
	h.swap(0, last)
	h.size--

	// 2) Sift the former last entry down from the root.
	h.siftDown(0)

	return h.nodes[last], true
}

// DecreaseKey lowers the key of id and sifts it toward the root.
//
// Preconditions (unchecked): Contains(id) and key ≤ current key.
func (h *Heap[K]) DecreaseKey(id int, key K) {
	i := h.pos[id]
	h.nodes[i].Key = key
	h.siftUp(i)
}

// siftUp moves nodes[i] up while it is smaller than its parent.
func (h *Heap[K]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !(h.nodes[i].Key < h.nodes[parent].Key) {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

// siftDown moves nodes[i] down while a child is smaller.
// On equal children the left one wins.
func (h *Heap[K]) siftDown(i int) {
	for {
		smallest := i
		left, right := 2*i+1, 2*i+2
		if left < h.size && h.nodes[left].Key < h.nodes[smallest].Key {
			smallest = left
		}
		if right < h.size && h.nodes[right].Key < h.nodes[smallest].Key {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// swap exchanges two slots and keeps pos in sync.
func (h *Heap[K]) swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
	h.pos[h.nodes[i].ID] = i
	h.pos[h.nodes[j].ID] = j
}
