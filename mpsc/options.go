// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpsc

import (
	"unsafe"

	"code.hybscloud.com/intrusive"
)

// Options configures queue creation.
type Options struct {
	stub *Stub // nil: allocate one per queue
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// Queue with its own stub
//	q := mpsc.Build[intrusive.Box[Task], Task](mpsc.New())
//
//	// Queue over a caller-owned stub
//	var stub mpsc.Stub
//	q := mpsc.Build[intrusive.Arc[Task], Task](mpsc.New().Stub(&stub))
type Builder struct {
	opts Options
}

// New creates a queue builder.
func New() *Builder {
	return &Builder{}
}

// Stub makes the queue use a caller-owned sentinel. The stub must
// outlive the queue and serve no other queue.
func (b *Builder) Stub(s *Stub) *Builder {
	if s == nil {
		panic("mpsc: nil stub")
	}
	b.opts.stub = s
	return b
}

// Build creates a Queue from the builder's configuration.
// A builder configured with Stub can build only one queue.
func Build[P intrusive.Pointer[P, N], N any, NP intrusive.Node[N, Link]](b *Builder) *Queue[P, N, NP] {
	stub := b.opts.stub
	if stub == nil {
		stub = new(Stub)
	}
	return WithStub[P, N, NP](stub)
}

const ptrSize = int(unsafe.Sizeof(uintptr(0)))

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// padPtr pads a pointer-sized field to a cache line.
type padPtr [64 - ptrSize]byte
