// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package intrusive

import "unsafe"

// ContainerOf returns the address of the N that embeds the field at
// address field, where offset is the byte offset of that field inside N
// (as reported by unsafe.Offsetof).
//
// The translation is pure address arithmetic: memory is not read and
// nothing is checked. field must point into a live N at exactly offset,
// otherwise the result is undefined.
//
// Example:
//
//	type Task struct {
//	    id   int
//	    link mpsc.Link
//	}
//
//	var taskLink = unsafe.Offsetof(Task{}.link)
//
//	t := intrusive.ContainerOf[Task](unsafe.Pointer(l), taskLink)
func ContainerOf[N any](field unsafe.Pointer, offset uintptr) *N {
	return (*N)(unsafe.Add(field, -int(offset)))
}

// FieldOf returns the address of the F located offset bytes into the
// object at address owner. It is the inverse of [ContainerOf].
func FieldOf[F any](owner unsafe.Pointer, offset uintptr) *F {
	return (*F)(unsafe.Add(owner, offset))
}
