// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package intrusive

// Pointer is the capability every owning pointer type P to a T provides.
//
// An owning pointer can be decomposed into the raw address of its pointee,
// surrendering ownership to whoever holds the address, and later rebuilt
// from that address, reclaiming it.
//
// Go has no static methods, so FromRaw is called on the zero value of P
// and must not read its receiver:
//
//	var zero P
//	p := zero.FromRaw(raw)
type Pointer[P any, T any] interface {
	// IntoRaw consumes the pointer and returns the non-nil address of
	// its pointee. The caller becomes responsible for the ownership the
	// pointer represented.
	IntoRaw() *T

	// FromRaw rebuilds a P from an address returned by IntoRaw of the
	// same pointer kind. Unchecked: raw must not be rebuilt twice.
	FromRaw(raw *T) P

	// Get returns the pointee without affecting ownership.
	Get() *T
}

// Box is a uniquely owned pointer to a T.
//
// The zero Box is empty; Get on an empty Box returns nil and IntoRaw
// panics.
type Box[T any] struct {
	ptr *T
}

// NewBox takes unique ownership of v.
// Panics if v is nil.
func NewBox[T any](v *T) Box[T] {
	if v == nil {
		panic("intrusive: NewBox of nil")
	}
	return Box[T]{ptr: v}
}

// Get returns the owned value.
func (b Box[T]) Get() *T {
	return b.ptr
}

// IntoRaw surrenders ownership and returns the value's address.
func (b Box[T]) IntoRaw() *T {
	if b.ptr == nil {
		panic("intrusive: IntoRaw of empty Box")
	}
	return b.ptr
}

// FromRaw reclaims ownership of raw.
func (Box[T]) FromRaw(raw *T) Box[T] {
	return Box[T]{ptr: raw}
}

// UnsafeRef is a non-owning reference usable wherever a [Pointer] is
// expected. The caller guarantees that the referent outlives every
// structure it is linked into; UnsafeRef itself keeps nothing alive beyond
// what the garbage collector already sees.
type UnsafeRef[T any] struct {
	ptr *T
}

// NewUnsafeRef wraps v.
// Panics if v is nil.
func NewUnsafeRef[T any](v *T) UnsafeRef[T] {
	if v == nil {
		panic("intrusive: NewUnsafeRef of nil")
	}
	return UnsafeRef[T]{ptr: v}
}

// Get returns the referent.
func (r UnsafeRef[T]) Get() *T {
	return r.ptr
}

// IntoRaw returns the referent's address.
func (r UnsafeRef[T]) IntoRaw() *T {
	return r.ptr
}

// FromRaw wraps raw.
func (UnsafeRef[T]) FromRaw(raw *T) UnsafeRef[T] {
	return UnsafeRef[T]{ptr: raw}
}
