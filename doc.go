// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package intrusive provides the ownership protocol for intrusive
// lock-free data structures.
//
// An intrusive structure stores its linkage (next pointers, claim state)
// inside the element itself, so linking an element allocates nothing. The
// price is a protocol: an element must not be linked into two structures
// through the same link, and whoever holds the element while it is linked
// must be clear. This package supplies that protocol; concrete structures
// live in subpackages such as [code.hybscloud.com/intrusive/mpsc].
//
// # Building Blocks
//
//   - [Pointer]: an owning pointer kind that can surrender its pointee as a
//     raw address and be rebuilt from it. [Box] (unique), [Arc] (atomic
//     reference count), [Rc] (plain reference count) and [UnsafeRef]
//     (non-owning) are provided.
//   - [Node]: what a node type supplies to structures with link type L:
//     TryClaim/Unclaim plus the node↔link conversions.
//   - [Claim] and [Counter]: embeddable claim state.
//   - [ContainerOf] and [FieldOf]: address translation between a node
//     and an embedded field.
//   - [DynLink]: inline storage for a fixed number of link words.
//
// # Claim Protocol
//
// [Acquire] claims the node behind an owning pointer and returns an
// [Acquired]. The claim is a compare-and-set gate: of several goroutines
// racing to claim one node exactly one wins, the others get an
// [*AcquireError] holding their pointer back.
//
//	acq, err := intrusive.Acquire[intrusive.Box[Task], Task, mpsc.Link](p)
//	if err != nil {
//	    var ae *intrusive.AcquireError[intrusive.Box[Task]]
//	    errors.As(err, &ae) // ae.Pointer is p, still usable
//	    return
//	}
//	link := acq.IntoLink() // the structure owns the node now
//
// An Acquired must be consumed exactly once:
//
//	acq.Release()  // drop the claim, get the pointer back
//	acq.IntoLink() // hand the node to a raw structure
//
// [FromLinkUnchecked] turns a link taken out of a raw structure back into
// an Acquired, with the claim still held.
//
// # Defining a Node
//
//	type Task struct {
//	    intrusive.Claim
//	    link mpsc.Link
//	    ID   int
//	}
//
//	var taskLink = unsafe.Offsetof(Task{}.link)
//
//	func (t *Task) Link() *mpsc.Link { return &t.link }
//
//	func (*Task) FromLink(l *mpsc.Link) *Task {
//	    return intrusive.ContainerOf[Task](unsafe.Pointer(l), taskLink)
//	}
//
// A node that must sit in several structures at once embeds one link per
// structure and a [Counter] with Max set to the number of links.
//
// # Unchecked Contracts
//
// Offsets, link provenance and single-consumer access are not verified at
// run time. Violations are undefined behavior, not errors. The only
// reported errors are claim failures ([ErrClaimed]) and "nothing
// available" from consumers ([ErrWouldBlock]).
//
// Build with -tags intrusive_debug to attach a finalizer to every Acquired
// and report the ones collected unconsumed (see [SetLeakHandler]).
//
// # Race Detection
//
// Claim state and reference counts use [code.hybscloud.com/atomix]
// orderings that Go's race detector does not model, so concurrent tests
// are excluded under -race via [RaceEnabled].
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic primitives with
// explicit memory ordering, [code.hybscloud.com/spin] for CPU pause in
// CAS retry loops, and [code.hybscloud.com/iox] for semantic errors.
package intrusive
