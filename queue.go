// Copyright © 2024 Galvanized Logic Inc.

package collider2d

import (
	"container/heap"

	"github.com/gazed/collider2d/geom"
)

// entryKind extends the public Event enum with a third, engine-internal
// occurrence: a hitbox's envelope refresh, which never reaches a client
// but still needs to interrupt Next at the right time (§4.5, §4.6).
type entryKind int

const (
	kindCollide entryKind = iota
	kindSeparate
	kindRefresh
)

// queueEntry is one scheduled occurrence. For a refresh entry only idA and
// genA are meaningful. genA/genB pin the entry to the generation of each
// hitbox's state at the time it was scheduled; Next discards an entry
// whose generation has since moved on instead of tracking cancellations,
// avoiding the reference cycles a cancel-on-mutate design would need
// (§4.6).
type queueEntry struct {
	time      geom.Scalar
	kind      entryKind
	idA       HbId
	idB       HbId
	genA      uint64
	genB      uint64
	heapIndex int
}

// entryHeap implements container/heap.Interface, ordering by
// (time asc, idA asc, idB desc) as spec.md §4.6 requires for a
// deterministic tie-break between simultaneous events.
type entryHeap []*queueEntry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.time != b.time {
		return a.time < b.time
	}
	if a.idA != b.idA {
		return a.idA < b.idA
	}
	return a.idB > b.idB
}

func (h entryHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].heapIndex, h[j].heapIndex = i, j
}

func (h *entryHeap) Push(x any) {
	e := x.(*queueEntry)
	e.heapIndex = len(*h)
	*h = append(*h, e)
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.heapIndex = -1
	*h = old[:n-1]
	return e
}

// eventQueue is the engine's scheduled-occurrence priority queue.
type eventQueue struct {
	h entryHeap
}

func newEventQueue() *eventQueue {
	return &eventQueue{h: entryHeap{}}
}

func (q *eventQueue) push(e *queueEntry) {
	heap.Push(&q.h, e)
}

// peek returns the earliest entry without removing it, and false if the
// queue is empty.
func (q *eventQueue) peek() (*queueEntry, bool) {
	if len(q.h) == 0 {
		return nil, false
	}
	return q.h[0], true
}

// pop removes and returns the earliest entry.
func (q *eventQueue) pop() (*queueEntry, bool) {
	if len(q.h) == 0 {
		return nil, false
	}
	return heap.Pop(&q.h).(*queueEntry), true
}

func (q *eventQueue) len() int { return len(q.h) }
