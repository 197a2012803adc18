// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package intrusive

// Node is the capability a node type N provides to intrusive structures
// whose link type is L. It is satisfied by *N.
//
// Claim state usually comes from embedding [Claim] or [Counter]; the link
// conversions are written per node type with [FieldOf] and [ContainerOf]
// or plain field access:
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
type Node[N any, L any] interface {
	*N

	// TryClaim attempts to mark the node as owned by an intrusive
	// structure. Returns false if it is already claimed. Must be safe
	// for concurrent callers racing on the same node.
	TryClaim() bool

	// Unclaim undoes one successful TryClaim.
	Unclaim()

	// Link returns the address of the node's embedded L.
	Link() *L

	// FromLink returns the node embedding l. It is called on a nil
	// receiver and must be pure address arithmetic.
	FromLink(l *L) *N
}
