// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package intrusive

import (
	"errors"

	"code.hybscloud.com/iox"
)

var (
	// ErrClaimed reports that a node is already claimed by an intrusive
	// structure. It is matched by every [AcquireError].
	ErrClaimed = errors.New("intrusive: node already claimed")

	// ErrConsumed is the panic value raised when a terminal operation is
	// applied to an [Acquired] that was already consumed.
	ErrConsumed = errors.New("intrusive: acquired node already consumed")

	// ErrLeaked is the panic value raised by the default leak handler when
	// an [Acquired] is garbage collected without being consumed.
	ErrLeaked = errors.New("intrusive: acquired node leaked")
)

// ErrWouldBlock indicates that a structure has nothing available right now.
//
// For an MPSC consumer it covers both an empty queue and a push that is
// still in flight; the two are not distinguished. It is a control flow
// signal: retry later (with backoff or yield) rather than propagating it.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// AcquireError is returned when a node cannot be claimed. It hands the
// owning pointer back so the caller loses nothing: retry, redirect or
// drop it.
//
//	err := q.Push(p)
//	var ae *intrusive.AcquireError[intrusive.Box[Task]]
//	if errors.As(err, &ae) {
//	    p = ae.Pointer // still owned by the caller
//	}
type AcquireError[P any] struct {
	Pointer P
}

func (e *AcquireError[P]) Error() string {
	return ErrClaimed.Error()
}

// Unwrap returns [ErrClaimed].
func (e *AcquireError[P]) Unwrap() error {
	return ErrClaimed
}

// IsClaimed reports whether err is a claim failure.
func IsClaimed(err error) bool {
	return errors.Is(err, ErrClaimed)
}

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
