// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpsc_test

import (
	"testing"

	"code.hybscloud.com/intrusive"
	"code.hybscloud.com/intrusive/mpsc"
)

func BenchmarkRawPushPop(b *testing.B) {
	var stub mpsc.Link
	q := mpsc.NewRaw(&stub)
	var l mpsc.Link

	b.ReportAllocs()
	for b.Loop() {
		q.Push(&l)
		q.Pop()
	}
}

func BenchmarkQueuePushPop(b *testing.B) {
	q := newTaskQueue()
	c, _ := q.Consumer()
	defer c.Close()
	p := intrusive.NewBox(&task{})

	b.ReportAllocs()
	for b.Loop() {
		q.Push(p)
		p, _ = c.Pop()
	}
}

func BenchmarkQueueParallelPush(b *testing.B) {
	q := newTaskQueue()
	c, _ := q.Consumer()
	defer c.Close()

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			q.Push(intrusive.NewBox(&task{}))
		}
	})
	b.StopTimer()
	for range c.All() {
	}
}
