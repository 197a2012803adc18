// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mpsc provides an unbounded intrusive multi-producer
// single-consumer queue.
//
// Two layers are offered:
//
//	Raw            - pointer-level algorithm over *Link, no checks
//	Queue/Consumer - owning pointers, claim protocol, single consumer
//
// # Quick Start
//
//	type Job struct {
//	    intrusive.Claim
//	    link mpsc.Link
//	    Name string
//	}
//
//	var jobLink = unsafe.Offsetof(Job{}.link)
//
//	func (j *Job) Link() *mpsc.Link { return &j.link }
//
//	func (*Job) FromLink(l *mpsc.Link) *Job {
//	    return intrusive.ContainerOf[Job](unsafe.Pointer(l), jobLink)
//	}
//
//	q := mpsc.Build[intrusive.Box[Job], Job](mpsc.New())
//
//	// Any number of producers
//	go q.Push(intrusive.NewBox(&Job{Name: "a"}))
//
//	// One consumer at a time
//	c, ok := q.Consumer()
//	if !ok {
//	    return // someone else is consuming
//	}
//	defer c.Close()
//
//	backoff := iox.Backoff{}
//	for {
//	    job, err := c.Pop()
//	    if err != nil {
//	        backoff.Wait()
//	        continue
//	    }
//	    backoff.Reset()
//	    run(job.Get())
//	}
//
// # Algorithm
//
// The queue is Vyukov's stub-based linked list. A push makes two steps:
//
//  1. exchange head with the new link, obtaining the previous head
//  2. store the new link into the previous head's next slot
//
// The consumer follows next slots from tail and parks the stub behind the
// last element when the queue drains.
//
// # Nothing Available
//
// Pop returns [intrusive.ErrWouldBlock] both when the queue is empty and
// when a producer sits between steps 1 and 2 above. The queue cannot tell
// the two apart without waiting, and it never waits. A consumer that needs
// every element must retry; the element appears as soon as the producer
// completes step 2.
//
// # Ordering
//
// Pushes are totally ordered by the head exchange. Elements pushed by one
// producer are popped in push order. Each push happens-before the Pop
// that returns its element.
//
// # Thread Safety
//
// Push is safe from any number of goroutines. [Queue.Consumer] hands out
// at most one open [Consumer]; Close it to let another goroutine consume.
// [Raw] performs no such check: concurrent Raw.Pop calls are undefined
// behavior.
package mpsc
