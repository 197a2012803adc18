// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpsc

import (
	"iter"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/intrusive"
)

// Acquired is a node claimed for a queue whose link type is [Link].
type Acquired[P intrusive.Pointer[P, N], N any, NP intrusive.Node[N, Link]] = intrusive.Acquired[P, N, Link, NP]

// Queue is an unbounded intrusive multi-producer single-consumer queue of
// owning pointers P to nodes N.
//
// Push claims the node through its [intrusive.Node] capability and links
// it in without allocating. Consumption goes through a [Consumer], of
// which at most one exists at a time.
//
// Example:
//
//	type Task struct {
//	    intrusive.Claim
//	    link mpsc.Link
//	    ID   int
//	}
//
//	var stub mpsc.Stub
//	q := mpsc.WithStub[intrusive.Box[Task], Task](&stub)
//	q.Push(intrusive.NewBox(&Task{ID: 1}))
//
//	c, _ := q.Consumer()
//	defer c.Close()
//	t, err := c.Pop()
type Queue[P intrusive.Pointer[P, N], N any, NP intrusive.Node[N, Link]] struct {
	raw       Raw
	_         pad
	consuming atomix.Uint64 // 1 while a Consumer is open
	stub      *Stub
}

// WithStub creates a queue that uses stub as its sentinel.
// stub must outlive the queue and serve no other queue.
// Panics if stub is already bound to a queue.
func WithStub[P intrusive.Pointer[P, N], N any, NP intrusive.Node[N, Link]](stub *Stub) *Queue[P, N, NP] {
	if stub == nil {
		panic("mpsc: nil stub")
	}
	q := &Queue[P, N, NP]{stub: stub}
	q.raw.Init(stub.take())
	return q
}

// Push claims the node behind p and appends it (multiple producers safe).
//
// If the node is already claimed by some intrusive structure, Push
// returns an [*intrusive.AcquireError] holding p; the caller keeps
// ownership.
func (q *Queue[P, N, NP]) Push(p P) error {
	acq, err := intrusive.Acquire[P, N, Link, NP](p)
	if err != nil {
		return err
	}
	q.PushAcquired(acq)
	return nil
}

// PushAcquired appends a node the caller has already claimed, consuming
// acq (multiple producers safe).
func (q *Queue[P, N, NP]) PushAcquired(acq *Acquired[P, N, NP]) {
	q.raw.Push(acq.IntoLink())
}

// Consumer opens the queue's consumer.
// Returns false if another Consumer is open.
func (q *Queue[P, N, NP]) Consumer() (*Consumer[P, N, NP], bool) {
	if !q.consuming.CompareAndSwapAcqRel(0, 1) {
		return nil, false
	}
	return &Consumer[P, N, NP]{q: q}, true
}

// Consumer is the exclusive consuming end of a [Queue].
// A Consumer may move between goroutines but must not be used by two at
// once. Close it to let another Consumer open.
type Consumer[P intrusive.Pointer[P, N], N any, NP intrusive.Node[N, Link]] struct {
	q      *Queue[P, N, NP]
	closed bool
}

// Pop removes the oldest node, releases its claim and returns its owning
// pointer.
//
// Returns (zero-value, ErrWouldBlock) when nothing is available. This
// covers both an empty queue and a push still in flight; treat it as
// "try again later", not as a final empty state.
func (c *Consumer[P, N, NP]) Pop() (P, error) {
	acq, err := c.PopAcquired()
	if err != nil {
		var zero P
		return zero, err
	}
	return acq.Release(), nil
}

// PopAcquired removes the oldest node and returns it still claimed, for
// moving it to another structure with the same link type without a
// release/claim round trip.
// Returns (nil, ErrWouldBlock) when nothing is available.
func (c *Consumer[P, N, NP]) PopAcquired() (*Acquired[P, N, NP], error) {
	if c.closed {
		panic("mpsc: use of closed Consumer")
	}
	l := c.q.raw.Pop()
	if l == nil {
		return nil, intrusive.ErrWouldBlock
	}
	return intrusive.FromLinkUnchecked[P, N, Link, NP](l), nil
}

// Empty reports whether the queue holds no nodes and no push is in
// flight.
func (c *Consumer[P, N, NP]) Empty() bool {
	if c.closed {
		panic("mpsc: use of closed Consumer")
	}
	return c.q.raw.Empty()
}

// All returns an iterator popping nodes until nothing is available.
// Nodes the loop body does not reach stay queued.
func (c *Consumer[P, N, NP]) All() iter.Seq[P] {
	return func(yield func(P) bool) {
		for {
			p, err := c.Pop()
			if err != nil || !yield(p) {
				return
			}
		}
	}
}

// Drain pops nodes and passes them to fn until nothing is available or
// fn returns false. It returns the number of nodes popped, including the
// one fn stopped on. Drain does not wait for pushes in flight.
func (c *Consumer[P, N, NP]) Drain(fn func(P) bool) int {
	n := 0
	for p := range c.All() {
		n++
		if !fn(p) {
			break
		}
	}
	return n
}

// Close gives up consumer access so that [Queue.Consumer] can succeed
// again. Close is idempotent; the Consumer must not be used afterwards.
func (c *Consumer[P, N, NP]) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.q.consuming.StoreRelease(0)
}
