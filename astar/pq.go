package astar

import "github.com/katalvlaran/gridastar/gridgraph"

// frontierItem is a queued cell with its ordering key.
type frontierItem struct {
	cell  gridgraph.Coordinate // queued cell
	f     int                  // g + h at the time of the last update
	seq   int                  // insertion sequence, strictly increasing
	index int                  // position in the heap, maintained by Swap
}

// frontierPQ is a min-heap of *frontierItem ordered by (f, seq): lowest f
// first, and among equal f the cell discovered first. The sequence makes
// the expansion order fully deterministic.
//
// When a queued cell's f improves its item is updated in place and
// re-positioned with heap.Fix (decrease-key), keeping its sequence, so the
// heap never holds stale entries.
type frontierPQ []*frontierItem

// Len returns the number of items in the heap.
func (pq frontierPQ) Len() int { return len(pq) }

// Less orders by f, then by insertion sequence.
func (pq frontierPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements and keeps their indices current.
func (pq frontierPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *frontierItem.
func (pq *frontierPQ) Push(x interface{}) {
	item := x.(*frontierItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

// Pop removes and returns the last element.
// Called by heap.Pop; returns interface{} that must be cast to *frontierItem.
func (pq *frontierPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]

	return item
}
