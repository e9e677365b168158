// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wnd connects the handler registries of package events to a
// window procedure.
//
// A Base keeps three layers of handlers. Handlers installed by a library
// before the user's own run first, all of them, in registration order. The
// user's handlers run next, and the most recently registered one that
// handles the message supplies the reply. Handlers installed after the
// user's run last, again all of them.
//
// Handlers must be registered before the window exists. Once the first
// message for a window arrives, the Base is sealed and further
// registration panics. On WM_NCDESTROY every layer is cleared.
package wnd
