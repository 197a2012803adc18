// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package intrusive

import (
	"fmt"
	"sync/atomic"
)

var leakHandler atomic.Pointer[func(node any)]

// SetLeakHandler installs h to be called with the node of every [Acquired]
// that is garbage collected without being consumed. A nil h restores the
// default, which panics with an error wrapping [ErrLeaked].
//
// Leak tracking is only active in builds with the intrusive_debug tag
// (see [Debug]). h runs on the runtime's finalizer goroutine.
func SetLeakHandler(h func(node any)) {
	if h == nil {
		leakHandler.Store(nil)
		return
	}
	leakHandler.Store(&h)
}

func reportLeak(node any) {
	if h := leakHandler.Load(); h != nil {
		(*h)(node)
		return
	}
	panic(fmt.Errorf("%w: %T", ErrLeaked, node))
}
