// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpsc

import "sync/atomic"

// Raw is the pointer-level intrusive MPSC queue: Vyukov's stub-based
// singly linked list operating on *Link.
//
// Producers push by exchanging head and then publishing the new link into
// the previous head's next slot. The single consumer walks tail. Between a
// producer's exchange and its publication the list is briefly
// disconnected; Pop then reports nothing available although the queue is
// not empty. A retry succeeds once the producer finishes.
//
// Raw enforces none of its contracts. Links must not be pushed twice
// without an intervening Pop, and Pop must never run concurrently with
// itself. [Queue] adds both checks on top.
//
// Memory: one link per element, no allocation on the hot path.
type Raw struct {
	_    pad
	head atomic.Pointer[Link] // Producers exchange here
	_    padPtr
	tail atomic.Pointer[Link] // Consumer only
	_    padPtr
	stub *Link
}

// NewRaw creates a queue around stub.
// stub must not be used by anything else while the queue is alive.
func NewRaw(stub *Link) *Raw {
	q := &Raw{}
	q.Init(stub)
	return q
}

// Init resets q to the empty state around stub.
// Not safe while producers or a consumer are active.
func (q *Raw) Init(stub *Link) {
	if stub == nil {
		panic("mpsc: nil stub")
	}
	stub.next.Store(nil)
	q.stub = stub
	q.head.Store(stub)
	q.tail.Store(stub)
}

// Push appends l (multiple producers safe).
// l must not currently be in any queue.
func (q *Raw) Push(l *Link) {
	q.publish(q.exchange(l), l)
}

// exchange makes l the new head and returns the previous head.
// Until publish runs, l is reachable from head but not from tail.
func (q *Raw) exchange(l *Link) *Link {
	l.next.Store(nil)
	return q.head.Swap(l)
}

// publish links l behind prev, making it visible to the consumer.
func (q *Raw) publish(prev, l *Link) {
	prev.next.Store(l)
}

// Pop removes and returns the oldest link (single consumer only).
//
// Returns nil when nothing is available: either the queue is empty or a
// push is between its head exchange and its publication. The two cases
// are not distinguished and Pop never waits; the caller decides whether
// to retry.
func (q *Raw) Pop() *Link {
	tail := q.tail.Load()
	next := tail.next.Load()

	if tail == q.stub {
		if next == nil {
			return nil
		}
		q.tail.Store(next)
		tail.next.Store(nil)
		tail = next
		next = next.next.Load()
	}

	if next != nil {
		q.tail.Store(next)
		tail.next.Store(nil)
		return tail
	}

	if tail != q.head.Load() {
		// A producer exchanged head but has not published yet.
		return nil
	}

	// tail is the last element. Park the stub behind it so tail has
	// somewhere to move to.
	q.Push(q.stub)

	next = tail.next.Load()
	if next == nil {
		// Another producer won the exchange between our head check and
		// the stub push; its publication is still pending.
		return nil
	}
	q.tail.Store(next)
	tail.next.Store(nil)
	return tail
}

// Empty reports whether the queue holds only the stub (single consumer
// only). A false result may be followed by a nil Pop while a push is in
// flight.
func (q *Raw) Empty() bool {
	tail := q.tail.Load()
	return tail == q.stub && tail.next.Load() == nil && q.head.Load() == tail
}
