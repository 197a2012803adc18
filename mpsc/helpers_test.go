// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpsc_test

import (
	"unsafe"

	"code.hybscloud.com/intrusive"
	"code.hybscloud.com/intrusive/mpsc"
)

type task struct {
	intrusive.Claim
	link     mpsc.Link
	producer int
	seq      int
}

var taskLink = unsafe.Offsetof(task{}.link)

func (t *task) Link() *mpsc.Link { return &t.link }

func (*task) FromLink(l *mpsc.Link) *task {
	return intrusive.ContainerOf[task](unsafe.Pointer(l), taskLink)
}

type boxTask = intrusive.Box[task]

func newTaskQueue() *mpsc.Queue[boxTask, task, *task] {
	return mpsc.Build[boxTask, task](mpsc.New())
}

// event is a node that can be queued in two queues at once: one through
// its inbox link, one through its audit link. auditView is the node type
// seen by the audit queue.
type event struct {
	intrusive.Counter
	inbox mpsc.Link
	audit mpsc.Link
	id    int
}

var (
	eventInbox = unsafe.Offsetof(event{}.inbox)
	eventAudit = unsafe.Offsetof(event{}.audit)
)

func newEvent(id int) *event {
	e := &event{id: id}
	e.Max = 2
	return e
}

func (e *event) Link() *mpsc.Link { return &e.inbox }

func (*event) FromLink(l *mpsc.Link) *event {
	return intrusive.ContainerOf[event](unsafe.Pointer(l), eventInbox)
}

type auditView event

func (a *auditView) Link() *mpsc.Link { return &a.audit }

func (*auditView) FromLink(l *mpsc.Link) *auditView {
	return intrusive.ContainerOf[auditView](unsafe.Pointer(l), eventAudit)
}

// dynTask reserves generic one-word link storage instead of a Link.
type dynTask struct {
	intrusive.Claim
	dyn intrusive.DynLink[[1]unsafe.Pointer]
	id  int
}

func (d *dynTask) Link() *mpsc.Link { return mpsc.LinkOf(&d.dyn) }

func (*dynTask) FromLink(l *mpsc.Link) *dynTask {
	return intrusive.ContainerOf[dynTask](unsafe.Pointer(l), unsafe.Offsetof(dynTask{}.dyn))
}
