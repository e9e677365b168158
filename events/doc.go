// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events stores the handlers a window registers for its messages
// and dispatches incoming messages to them.
//
// A WindowEvents holds five registries: ordinary messages keyed by message
// id, the creation message (WM_CREATE, or WM_INITDIALOG for dialogs),
// WM_COMMAND keyed by notification code and control id, WM_NOTIFY keyed by
// source control id and notification code, and WM_TIMER keyed by timer id.
// Each registry keeps its handlers in registration order and a key may have
// any number of handlers.
//
// Messages are dispatched in one of two modes. ProcessLastMessage runs the
// handlers for the message key from the most recently registered backwards
// and stops at the first one that handles the message. ProcessAllMessages
// runs every handler in registration order and reports whether any of them
// handled the message.
//
// Handler errors are returned unchanged by the dispatch methods and stop
// the dispatch. A message with no handler is not an error; it is reported
// as NotHandled, meaning the default procedure should process it.
//
// A WindowEvents is not safe for concurrent use. Windows deliver messages
// to the thread that created the window, and registration and dispatch are
// expected to happen on that thread.
//
// # Registration
//
// Handlers are registered with the Wm* methods. Wm accepts a raw Handler;
// the other methods accept a function over the decoded message from
// package msg/wm and adapt its result:
//
//	ev := events.New(nil)
//	ev.WmSize(func(p wm.Size) error {
//		return layout(p.ClientArea)
//	})
//	ev.WmCommand(co.BN_CLICKED, idOK, func() error {
//		return save()
//	})
package events
