// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package intrusive

import "unsafe"

// Words is the set of inline storage shapes accepted by [DynLink].
type Words interface {
	~[1]unsafe.Pointer | ~[2]unsafe.Pointer | ~[3]unsafe.Pointer | ~[4]unsafe.Pointer
}

// DynLink is inline storage for a fixed number of pointer-sized words,
// embedded in a node as the physical home of intrusive metadata.
//
// The number of words is carried by W: DynLink[[2]unsafe.Pointer] holds
// two. Words are typed unsafe.Pointer so that the garbage collector traces
// whatever a structure links through them.
//
// A DynLink has no meaning of its own; the structure that owns it decides
// how the words are read and written (see mpsc.LinkOf). The zero value is
// ready to use.
type DynLink[W Words] struct {
	words W
}

// Len returns the number of words in the link.
func (d *DynLink[W]) Len() int {
	return int(unsafe.Sizeof(d.words)) / ptrSize
}

// Word returns the address of word i.
// Panics if i is out of range.
func (d *DynLink[W]) Word(i int) *unsafe.Pointer {
	if i < 0 || i >= d.Len() {
		panic("intrusive: DynLink word index out of range")
	}
	return (*unsafe.Pointer)(unsafe.Add(unsafe.Pointer(&d.words), i*ptrSize))
}

// Reset clears every word.
// Must not be called while a structure still links through d.
func (d *DynLink[W]) Reset() {
	var zero W
	d.words = zero
}

const ptrSize = int(unsafe.Sizeof(uintptr(0)))
