// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wnd

import (
	"github.com/wmdispatch/wmdispatch/win"
	"golang.org/x/xerrors"
)

// A Queue is the message queue of the calling thread.
type Queue interface {
	// Get waits for the next message and stores it in m. It returns false
	// if the message is WM_QUIT.
	Get(m *win.MSG) (bool, error)
	// Dispatch delivers m to its window procedure.
	Dispatch(m *win.MSG)
}

// SystemQueue is the thread message queue of the operating system.
type SystemQueue struct{}

func (SystemQueue) Get(m *win.MSG) (bool, error) { return win.GetMessage(m, 0, 0, 0) }

func (SystemQueue) Dispatch(m *win.MSG) {
	win.TranslateMessage(m)
	win.DispatchMessage(m)
}

// Run pumps q until WM_QUIT arrives and returns the exit code it carries.
// If the window procedure of main ended the loop because of a handler
// error, Run returns that error too.
//
// Run must be called on the thread that created main, which should be
// locked to its goroutine with runtime.LockOSThread.
func Run(q Queue, main *Base) (int32, error) {
	main.checkThread()
	var m win.MSG
	for {
		ok, err := q.Get(&m)
		if err != nil {
			return 0, xerrors.Errorf("wnd: message loop: %w", err)
		}
		if !ok {
			return int32(m.WParam), main.Err()
		}
		q.Dispatch(&m)
	}
}
