// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package intrusive

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Claim is a single-membership claim flag to embed in node types.
//
// Embedding Claim gives a node the TryClaim and Unclaim methods required
// by [Node]. The zero value is unclaimed.
//
//	type Task struct {
//	    intrusive.Claim
//	    link mpsc.Link
//	}
type Claim struct {
	state atomix.Uint64 // 0: free, 1: claimed
}

// TryClaim marks the node as owned by an intrusive structure.
// Returns false if it is already claimed.
// Safe for concurrent use; exactly one of several racing callers wins.
func (c *Claim) TryClaim() bool {
	return c.state.CompareAndSwapAcqRel(0, 1)
}

// Unclaim undoes a successful TryClaim.
// Panics if the node is not claimed.
func (c *Claim) Unclaim() {
	if !c.state.CompareAndSwapAcqRel(1, 0) {
		panic("intrusive: Unclaim of unclaimed node")
	}
}

// Claimed reports whether the node is currently claimed.
func (c *Claim) Claimed() bool {
	return c.state.LoadAcquire() == 1
}

// Counter is a claim counter for nodes that may be members of up to Max
// intrusive structures at once, one link per structure.
//
// Set Max before the node is shared; zero means one.
type Counter struct {
	Max uint64
	n   atomix.Uint64
}

// TryClaim takes one membership slot.
// Returns false if all Max slots are taken.
func (c *Counter) TryClaim() bool {
	limit := max(c.Max, 1)
	sw := spin.Wait{}
	for {
		n := c.n.LoadAcquire()
		if n >= limit {
			return false
		}
		if c.n.CompareAndSwapAcqRel(n, n+1) {
			return true
		}
		sw.Once()
	}
}

// Unclaim gives back one membership slot.
// Panics if no slot is held.
func (c *Counter) Unclaim() {
	sw := spin.Wait{}
	for {
		n := c.n.LoadAcquire()
		if n == 0 {
			panic("intrusive: Unclaim of unclaimed node")
		}
		if c.n.CompareAndSwapAcqRel(n, n-1) {
			return
		}
		sw.Once()
	}
}

// Claims returns the number of structures currently holding the node.
func (c *Counter) Claims() uint64 {
	return c.n.LoadAcquire()
}
