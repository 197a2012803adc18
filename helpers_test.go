// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package intrusive_test

import (
	"unsafe"

	"code.hybscloud.com/intrusive"
)

// testLink is a minimal singly linked link type.
type testLink struct {
	next *testLink
}

type item struct {
	intrusive.Claim
	val  int
	link testLink
}

var itemLink = unsafe.Offsetof(item{}.link)

func (it *item) Link() *testLink {
	return intrusive.FieldOf[testLink](unsafe.Pointer(it), itemLink)
}

func (*item) FromLink(l *testLink) *item {
	return intrusive.ContainerOf[item](unsafe.Pointer(l), itemLink)
}

// shared is a node that can sit in up to two structures.
type shared struct {
	intrusive.Counter
	link testLink
}

func (s *shared) Link() *testLink { return &s.link }

func (*shared) FromLink(l *testLink) *shared {
	return intrusive.ContainerOf[shared](unsafe.Pointer(l), unsafe.Offsetof(shared{}.link))
}

type (
	boxItem = intrusive.Box[item]
	arcItem = intrusive.Arc[item]
	rcItem  = intrusive.Rc[item]
	refItem = intrusive.UnsafeRef[item]
)
