// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpsc_test

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"code.hybscloud.com/intrusive"
	"code.hybscloud.com/intrusive/mpsc"
	"code.hybscloud.com/iox"
)

type job struct {
	intrusive.Claim
	link mpsc.Link
	name string
}

var jobLink = unsafe.Offsetof(job{}.link)

func (j *job) Link() *mpsc.Link { return &j.link }

func (*job) FromLink(l *mpsc.Link) *job {
	return intrusive.ContainerOf[job](unsafe.Pointer(l), jobLink)
}

// ExampleWithStub demonstrates a queue over a caller-owned stub.
func ExampleWithStub() {
	var stub mpsc.Stub
	q := mpsc.WithStub[intrusive.Box[job], job](&stub)

	for _, name := range []string{"build", "test", "deploy"} {
		q.Push(intrusive.NewBox(&job{name: name}))
	}

	c, _ := q.Consumer()
	defer c.Close()
	for p := range c.All() {
		fmt.Println(p.Get().name)
	}

	// Output:
	// build
	// test
	// deploy
}

// ExampleQueue_Push shows the claim failure path: a node that is already
// queued is handed back to the caller.
func ExampleQueue_Push() {
	q := mpsc.Build[intrusive.Box[job], job](mpsc.New())
	j := &job{name: "once"}

	fmt.Println(q.Push(intrusive.NewBox(j)))

	err := q.Push(intrusive.NewBox(j))
	var ae *intrusive.AcquireError[intrusive.Box[job]]
	if errors.As(err, &ae) {
		fmt.Println(err, "-", ae.Pointer.Get().name)
	}

	// Output:
	// <nil>
	// intrusive: node already claimed - once
}

// ExampleQueue_Consumer shows that only one consumer is open at a time.
func ExampleQueue_Consumer() {
	q := mpsc.Build[intrusive.Box[job], job](mpsc.New())

	c1, ok1 := q.Consumer()
	_, ok2 := q.Consumer()
	fmt.Println(ok1, ok2)

	c1.Close()
	c3, ok3 := q.Consumer()
	fmt.Println(ok3)
	c3.Close()

	// Output:
	// true false
	// true
}

// Example_producers demonstrates several producers feeding one consumer
// that retries on ErrWouldBlock.
func Example_producers() {
	q := mpsc.Build[intrusive.Arc[job], job](mpsc.New())

	var wg sync.WaitGroup
	for p := range 3 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			q.Push(intrusive.NewArc(job{name: fmt.Sprintf("job from producer %d", id)}))
		}(p)
	}

	c, _ := q.Consumer()
	defer c.Close()

	backoff := iox.Backoff{}
	for received := 0; received < 3; {
		p, err := c.Pop()
		if err != nil {
			backoff.Wait()
			continue
		}
		backoff.Reset()
		fmt.Println(p.Get().name)
		p.Drop()
		received++
	}
	wg.Wait()

	// Unordered output:
	// job from producer 0
	// job from producer 1
	// job from producer 2
}
