// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package intrusive

import (
	"unsafe"

	"code.hybscloud.com/atomix"
)

// Arc is a shared owning pointer to a T with an atomic strong count.
//
// Each Arc value accounts for one strong reference. Clone adds one, Drop
// gives one up. When the last reference is dropped the optional drop hook
// runs with the value; memory itself is reclaimed by the garbage collector.
//
// IntoRaw and FromRaw leave the count unchanged: the reference is carried
// by the raw address while it sits in an intrusive structure.
type Arc[T any] struct {
	inner *arcInner[T]
}

type arcInner[T any] struct {
	strong atomix.Int64
	drop   func(*T)
	value  T
}

// NewArc allocates v with a strong count of one.
func NewArc[T any](v T) Arc[T] {
	return NewArcWithDrop(v, nil)
}

// NewArcWithDrop is like [NewArc] and registers drop to run when the
// strong count reaches zero.
func NewArcWithDrop[T any](v T, drop func(*T)) Arc[T] {
	inner := &arcInner[T]{drop: drop, value: v}
	inner.strong.StoreRelaxed(1)
	return Arc[T]{inner: inner}
}

// Get returns the shared value.
func (a Arc[T]) Get() *T {
	return &a.inner.value
}

// Clone returns a new strong reference to the same value.
func (a Arc[T]) Clone() Arc[T] {
	a.inner.strong.AddAcqRel(1)
	return a
}

// Drop releases this strong reference and reports whether it was the last.
// a must not be used afterwards.
func (a Arc[T]) Drop() bool {
	c := a.inner.strong.AddAcqRel(-1)
	if c < 0 {
		panic("intrusive: Arc dropped too many times")
	}
	if c > 0 {
		return false
	}
	if a.inner.drop != nil {
		a.inner.drop(&a.inner.value)
	}
	return true
}

// Count returns the current strong count. The value may be stale by the
// time the caller observes it.
func (a Arc[T]) Count() int64 {
	return a.inner.strong.LoadAcquire()
}

// IntoRaw surrenders this reference and returns the value's address.
func (a Arc[T]) IntoRaw() *T {
	return &a.inner.value
}

// FromRaw reclaims a reference surrendered by IntoRaw.
func (Arc[T]) FromRaw(raw *T) Arc[T] {
	var probe arcInner[T]
	inner := ContainerOf[arcInner[T]](unsafe.Pointer(raw), unsafe.Offsetof(probe.value))
	return Arc[T]{inner: inner}
}

// Rc is the single-goroutine counterpart of [Arc]: the strong count is a
// plain integer. All clones and drops of one Rc must happen on goroutines
// ordered by external synchronization. Handing the node through an
// intrusive structure is such synchronization.
type Rc[T any] struct {
	inner *rcInner[T]
}

type rcInner[T any] struct {
	strong int64
	drop   func(*T)
	value  T
}

// NewRc allocates v with a strong count of one.
func NewRc[T any](v T) Rc[T] {
	return NewRcWithDrop(v, nil)
}

// NewRcWithDrop is like [NewRc] and registers drop to run when the
// strong count reaches zero.
func NewRcWithDrop[T any](v T, drop func(*T)) Rc[T] {
	return Rc[T]{inner: &rcInner[T]{strong: 1, drop: drop, value: v}}
}

// Get returns the shared value.
func (r Rc[T]) Get() *T {
	return &r.inner.value
}

// Clone returns a new strong reference to the same value.
func (r Rc[T]) Clone() Rc[T] {
	r.inner.strong++
	return r
}

// Drop releases this strong reference and reports whether it was the last.
func (r Rc[T]) Drop() bool {
	r.inner.strong--
	switch {
	case r.inner.strong < 0:
		panic("intrusive: Rc dropped too many times")
	case r.inner.strong > 0:
		return false
	}
	if r.inner.drop != nil {
		r.inner.drop(&r.inner.value)
	}
	return true
}

// Count returns the current strong count.
func (r Rc[T]) Count() int64 {
	return r.inner.strong
}

// IntoRaw surrenders this reference and returns the value's address.
func (r Rc[T]) IntoRaw() *T {
	return &r.inner.value
}

// FromRaw reclaims a reference surrendered by IntoRaw.
func (Rc[T]) FromRaw(raw *T) Rc[T] {
	var probe rcInner[T]
	inner := ContainerOf[rcInner[T]](unsafe.Pointer(raw), unsafe.Offsetof(probe.value))
	return Rc[T]{inner: inner}
}
