// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msg

import (
	"github.com/wmdispatch/wmdispatch/win"
	"golang.org/x/xerrors"
)

// A Sender delivers raw triples to a window.
type Sender interface {
	SendMessage(hwnd win.HWND, p WndMsg) (uintptr, error)
	PostMessage(hwnd win.HWND, p WndMsg) error
}

// System is the Sender backed by the user32 SendMessageW and PostMessageW
// entry points.
type System struct{}

func (System) SendMessage(hwnd win.HWND, p WndMsg) (uintptr, error) {
	return win.SendMessage(hwnd, uint32(p.MsgID), p.WParam, p.LParam)
}

func (System) PostMessage(hwnd win.HWND, p WndMsg) error {
	return win.PostMessage(hwnd, uint32(p.MsgID), p.WParam, p.LParam)
}

// Send encodes m, sends it to hwnd and converts the reply.
func Send[R any](s Sender, hwnd win.HWND, m MsgSend[R]) (R, error) {
	p := m.AsGenericWm()
	v, err := s.SendMessage(hwnd, p)
	if err != nil {
		var zero R
		return zero, xerrors.Errorf("send %v: %w", p.MsgID, err)
	}
	return m.ConvertRet(v), nil
}

// Post encodes m and posts it to hwnd's queue. The reply, if any, is lost.
func Post[R any](s Sender, hwnd win.HWND, m MsgSend[R]) error {
	p := m.AsGenericWm()
	if err := s.PostMessage(hwnd, p); err != nil {
		return xerrors.Errorf("post %v: %w", p.MsgID, err)
	}
	return nil
}
