// Package minheap implements an indexed binary min-heap: a priority queue
// over dense integer identifiers [0, capacity) that supports decrease-key
// in O(log n).
//
// Overview:
//
//   - Entries (ID, Key) live in an array-backed binary heap ordered by Key.
//   - A reverse index pos[ID] tracks the slot of every entry, so any entry
//     can be located in O(1) and sifted after its key changes.
//   - Keys are generic over cmp.Ordered; ties are broken by heap shape
//     (the left child is preferred when both children are equal).
//
// Removed entries:
//
//	ExtractMin swaps the root with the last active slot and shrinks the
//	active region. The extracted entry stays parked beyond the active
//	region and its pos entry keeps pointing at it, so Contains is a single
//	comparison pos[ID] < Len(). pos[ID] == -1 means "never inserted".
//
// Complexity:
//
//	– Push, ExtractMin, DecreaseKey: O(log n)
//	– Contains, Key, Peek, Len:       O(1)
//	– Space: O(capacity)
//
// Errors (sentinel):
//
//	– ErrIDOutOfRange  if Push receives an ID outside [0, capacity).
//	– ErrDuplicateID   if Push receives an ID that was already inserted.
//
// DecreaseKey does not validate its input: the caller guarantees that the
// ID is present and the new key is not larger than the current one.
//
// Thread safety: a Heap is not safe for concurrent use.
package minheap
