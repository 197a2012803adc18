// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package intrusive

import "runtime"

// Acquired is a claimed node held through its owning pointer P.
//
// While an Acquired exists the node counts as owned by an intrusive
// structure and cannot be claimed again. Every Acquired must be consumed
// exactly once, by [Acquired.Release] (the caller keeps the pointer) or by
// [Acquired.IntoLink] (a raw structure takes custody of the node).
// Consuming twice panics with [ErrConsumed]. Under the intrusive_debug
// build tag, an Acquired collected without being consumed is reported to
// the leak handler (see [SetLeakHandler]).
//
// Type parameters: P is the owning pointer, N the node type, L the link
// type of the structure, NP is *N.
type Acquired[P Pointer[P, N], N any, L any, NP Node[N, L]] struct {
	ptr      P
	consumed bool
}

// Acquire claims the node behind p.
//
// On success the returned Acquired holds p. If the node is already
// claimed, Acquire returns an [*AcquireError] carrying p back unchanged.
// This is the single gate that keeps a node out of two structures at once.
//
//	acq, err := intrusive.Acquire[intrusive.Box[Task], Task, mpsc.Link](p)
func Acquire[P Pointer[P, N], N any, L any, NP Node[N, L]](p P) (*Acquired[P, N, L, NP], error) {
	if !NP(p.Get()).TryClaim() {
		return nil, &AcquireError[P]{Pointer: p}
	}
	return newAcquired[P, N, L, NP](p), nil
}

// NewUnchecked wraps p whose node the caller has already claimed.
func NewUnchecked[P Pointer[P, N], N any, L any, NP Node[N, L]](p P) *Acquired[P, N, L, NP] {
	return newAcquired[P, N, L, NP](p)
}

// FromLinkUnchecked rebuilds the Acquired whose [Acquired.IntoLink]
// returned link. The claim is still held; ownership moves from the raw
// structure back to the returned value.
//
// link must come from IntoLink of an Acquired with exactly these type
// arguments and must not be rebuilt twice.
func FromLinkUnchecked[P Pointer[P, N], N any, L any, NP Node[N, L]](link *L) *Acquired[P, N, L, NP] {
	var np NP
	var zero P
	return newAcquired[P, N, L, NP](zero.FromRaw(np.FromLink(link)))
}

func newAcquired[P Pointer[P, N], N any, L any, NP Node[N, L]](p P) *Acquired[P, N, L, NP] {
	a := &Acquired[P, N, L, NP]{ptr: p}
	if Debug {
		runtime.SetFinalizer(a, (*Acquired[P, N, L, NP]).finalize)
	}
	return a
}

// Get returns the claimed node.
func (a *Acquired[P, N, L, NP]) Get() *N {
	return a.ptr.Get()
}

// Release gives up the claim and returns the owning pointer.
func (a *Acquired[P, N, L, NP]) Release() P {
	p := a.take()
	NP(p.Get()).Unclaim()
	return p
}

// IntoLink surrenders the owning pointer and returns the node's link.
// The claim stays held; whoever stores the link now owns the node until
// [FromLinkUnchecked] rebuilds an Acquired from it.
func (a *Acquired[P, N, L, NP]) IntoLink() *L {
	raw := a.take().IntoRaw()
	return NP(raw).Link()
}

func (a *Acquired[P, N, L, NP]) take() P {
	if a.consumed {
		panic(ErrConsumed)
	}
	a.consumed = true
	if Debug {
		runtime.SetFinalizer(a, nil)
	}
	p := a.ptr
	var zero P
	a.ptr = zero
	return p
}

func (a *Acquired[P, N, L, NP]) finalize() {
	if !a.consumed {
		reportLeak(a.ptr.Get())
	}
}
