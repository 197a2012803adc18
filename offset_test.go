// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package intrusive_test

import (
	"testing"
	"unsafe"

	"code.hybscloud.com/intrusive"
	"github.com/stretchr/testify/require"
)

func TestContainerOfFieldOf(t *testing.T) {
	type record struct {
		a    uint64
		b    [3]byte
		link testLink
		c    string
	}
	off := unsafe.Offsetof(record{}.link)
	r := &record{c: "x"}

	l := intrusive.FieldOf[testLink](unsafe.Pointer(r), off)
	require.Same(t, &r.link, l)
	require.Same(t, r, intrusive.ContainerOf[record](unsafe.Pointer(l), off))

	require.Same(t, r, intrusive.ContainerOf[record](unsafe.Pointer(&r.a), 0))
}

func TestNodeConversions(t *testing.T) {
	v := &item{}
	l := v.Link()
	require.Same(t, &v.link, l)

	var nilItem *item
	require.Same(t, v, nilItem.FromLink(l))
}

func TestDynLink(t *testing.T) {
	var d intrusive.DynLink[[3]unsafe.Pointer]
	require.Equal(t, 3, d.Len())

	vals := []*item{{val: 0}, {val: 1}, {val: 2}}
	for i, v := range vals {
		*d.Word(i) = unsafe.Pointer(v)
	}
	for i, v := range vals {
		require.Equal(t, unsafe.Pointer(v), *d.Word(i))
	}
	require.NotSame(t, d.Word(0), d.Word(1))

	require.Panics(t, func() { d.Word(3) })
	require.Panics(t, func() { d.Word(-1) })

	d.Reset()
	for i := range d.Len() {
		require.True(t, *d.Word(i) == nil)
	}

	var one intrusive.DynLink[[1]unsafe.Pointer]
	require.Equal(t, 1, one.Len())
	require.EqualValues(t, unsafe.Sizeof(uintptr(0)), unsafe.Sizeof(one))
}
