package spm

import "container/heap"

// dirtyHeap is a min-heap of vertex ids, used as the solver's worklist. It
// follows the same container/heap.Interface-over-a-slice shape as a
// Dijkstra priority queue, repurposed to order by vertex id rather than
// tentative distance, giving a deterministic "lowest index first" pick
// order.
type dirtyHeap []int

func (h dirtyHeap) Len() int            { return len(h) }
func (h dirtyHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h dirtyHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *dirtyHeap) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *dirtyHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]

	return v
}

// worklist tracks the dirty set as a min-heap plus a dense membership
// bitset, so re-marking an already-dirty vertex is a no-op (O(1)) instead
// of inflating the heap with duplicate entries.
type worklist struct {
	h       dirtyHeap
	inDirty []bool
}

func newWorklist(n int) *worklist {
	return &worklist{h: make(dirtyHeap, 0, n), inDirty: make([]bool, n)}
}

// mark adds v to the dirty set if it isn't already present.
func (w *worklist) mark(v int) {
	if w.inDirty[v] {
		return
	}
	w.inDirty[v] = true
	heap.Push(&w.h, v)
}

// pop removes and returns the lowest-id dirty vertex. ok is false if the
// worklist is empty.
func (w *worklist) pop() (v int, ok bool) {
	if w.h.Len() == 0 {
		return 0, false
	}
	v = heap.Pop(&w.h).(int)
	w.inDirty[v] = false

	return v, true
}
