// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build intrusive_debug

package intrusive

// Debug is true when built with the intrusive_debug tag.
// Every [Acquired] then carries a finalizer that reports leaks.
const Debug = true
