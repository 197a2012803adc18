// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpsc

import (
	"sync/atomic"
	"unsafe"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/intrusive"
)

// Link is the queue's intrusive metadata: one atomic next slot.
// Embed a Link by value in every node type that can be queued.
//
// The next slot of a Link that is not currently in a queue holds no
// meaningful value.
type Link struct {
	next atomic.Pointer[Link]
}

// LinkOf views one-word dynamic link storage as a queue Link.
// Node types that reserve generic link storage use it in their
// Link method:
//
//	func (t *Task) Link() *mpsc.Link { return mpsc.LinkOf(&t.dyn) }
func LinkOf(d *intrusive.DynLink[[1]unsafe.Pointer]) *Link {
	return (*Link)(unsafe.Pointer(d))
}

// Stub is the permanent sentinel of a queue.
//
// A queue keeps exactly one Stub and reinserts it by itself whenever it
// drains. The stub is never returned to a consumer. A Stub serves a single
// queue for that queue's whole lifetime.
type Stub struct {
	link  Link
	taken atomix.Uint64
}

// take binds s to one queue.
// Panics if s already serves another queue.
func (s *Stub) take() *Link {
	if !s.taken.CompareAndSwapAcqRel(0, 1) {
		panic("mpsc: stub already in use")
	}
	return &s.link
}
