package minheap

import "fmt"

// CheckInvariants verifies heap order over the active region and that pos
// and nodes are mutual inverses for every inserted ID. Test-only.
func (h *Heap[K]) CheckInvariants() error {
	for i := 1; i < h.size; i++ {
		parent := (i - 1) / 2
		if h.nodes[i].Key < h.nodes[parent].Key {
			return fmt.Errorf("heap order: slot %d (key %v) < parent %d (key %v)",
				i, h.nodes[i].Key, parent, h.nodes[parent].Key)
		}
	}
	for id, p := range h.pos {
		if p == notPresent {
			continue
		}
		if p < 0 || p >= len(h.nodes) {
			return fmt.Errorf("pos[%d]=%d outside nodes (len %d)", id, p, len(h.nodes))
		}
		if h.nodes[p].ID != id {
			return fmt.Errorf("pos[%d]=%d but nodes[%d].ID=%d", id, p, p, h.nodes[p].ID)
		}
	}

	return nil
}

// Pos exposes the raw reverse index of id. Test-only.
func (h *Heap[K]) Pos(id int) int { return h.pos[id] }
