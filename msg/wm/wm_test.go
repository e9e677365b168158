// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm_test

import (
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/wmdispatch/wmdispatch/co"
	"github.com/wmdispatch/wmdispatch/msg"
	"github.com/wmdispatch/wmdispatch/msg/wm"
	"github.com/wmdispatch/wmdispatch/win"
)

func TestCommandWords(t *testing.T) {
	p := wm.Command{Code: co.EN_CHANGE, CtrlID: 1001, Ctrl: 0xabc}.AsGenericWm()
	want := msg.WndMsg{MsgID: co.WM_COMMAND, WParam: 0x0300_03e9, LParam: 0xabc}
	if p != want {
		t.Errorf("AsGenericWm = %v, want %v", p, want)
	}
	got := msg.Decode[wm.Command](msg.WndMsg{MsgID: co.WM_COMMAND, WParam: 0x0001_0007})
	if diff := cmp.Diff(wm.Command{Code: co.CMD_ACCELERATOR, CtrlID: 7}, got); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestKeyFlags(t *testing.T) {
	// Alt+F4 release: repeat 1, scan code 0x3e, context code, previous
	// state and transition bits set.
	p := msg.WndMsg{MsgID: co.WM_SYSKEYUP, WParam: 0x73, LParam: 0xe03e_0001}
	got := msg.Decode[wm.SysKeyUp](p)
	want := wm.SysKeyUp{Key: wm.Key{
		Code:        0x73,
		RepeatCount: 1,
		ScanCode:    0x3e,
		AltDown:     true,
		WasDown:     true,
		Releasing:   true,
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
	if back := got.AsGenericWm(); back != p {
		t.Errorf("AsGenericWm = %v, want %v", back, p)
	}
	if c := msg.Decode[wm.Char](msg.WndMsg{MsgID: co.WM_CHAR, WParam: 'é'}); c.Rune() != 'é' {
		t.Errorf("Rune = %q, want 'é'", c.Rune())
	}
}

func TestSignedWords(t *testing.T) {
	w := msg.Decode[wm.MouseWheel](msg.WndMsg{
		MsgID:  co.WM_MOUSEWHEEL,
		WParam: win.MAKELONG(uint16(co.MK_CONTROL), 0xff88), // -120
		LParam: win.MAKELONG(0xfff6, 30),                    // x = -10
	})
	want := wm.MouseWheel{Delta: -120, Keys: co.MK_CONTROL, Pos: win.POINT{X: -10, Y: 30}}
	if diff := cmp.Diff(want, w); diff != "" {
		t.Errorf("MouseWheel mismatch (-want, +got):\n%s", diff)
	}

	sc := wm.SetCursor{Hwnd: 5, HitTest: co.HTERROR, MouseID: co.WM_LBUTTONDOWN}
	if got := msg.Decode[wm.SetCursor](sc.AsGenericWm()); got != sc {
		t.Errorf("SetCursor round trip = %+v, want %+v", got, sc)
	}
	if got := (wm.NcHitTest{}).ConvertRet(^uintptr(0)); got != co.HTTRANSPARENT {
		t.Errorf("NcHitTest.ConvertRet(-1) = %v, want HTTRANSPARENT", got)
	}
	if got := (wm.Create{}).ConvertRet(^uintptr(0)); got != -1 {
		t.Errorf("Create.ConvertRet = %d, want -1", got)
	}
}

func TestPackedFields(t *testing.T) {
	for _, test := range []struct {
		name string
		p    msg.WndMsg
		got  func(msg.WndMsg) any
		want any
	}{
		{
			name: "xbutton",
			p:    msg.WndMsg{MsgID: co.WM_XBUTTONDOWN, WParam: 0x0002_0020, LParam: 0x0005_0004},
			got:  func(p msg.WndMsg) any { return msg.Decode[wm.XButtonDown](p) },
			want: wm.XButtonDown{XMouse: wm.XMouse{
				Mouse:  wm.Mouse{Keys: co.MK_XBUTTON1, Pos: win.POINT{X: 4, Y: 5}},
				Button: co.XBUTTON2,
			}},
		},
		{
			name: "appcommand",
			p:    msg.WndMsg{MsgID: co.WM_APPCOMMAND, WParam: 9, LParam: 0x800e_0000},
			got:  func(p msg.WndMsg) any { return msg.Decode[wm.AppCommand](p) },
			want: wm.AppCommand{Owner: 9, Command: co.APPCOMMAND_MEDIA_PLAY_PAUSE, Device: co.FAPPCOMMAND_MOUSE},
		},
		{
			name: "syscommand",
			p:    msg.WndMsg{MsgID: co.WM_SYSCOMMAND, WParam: 0xf012},
			got:  func(p msg.WndMsg) any { return msg.Decode[wm.SysCommand](p) },
			want: wm.SysCommand{Request: co.SC_MOVE},
		},
		{
			name: "activate",
			p:    msg.WndMsg{MsgID: co.WM_ACTIVATE, WParam: 0x0001_0002, LParam: 0x77},
			got:  func(p msg.WndMsg) any { return msg.Decode[wm.Activate](p) },
			want: wm.Activate{State: co.WA_CLICKACTIVE, Minimized: true, Other: 0x77},
		},
		{
			name: "vscroll",
			p:    msg.WndMsg{MsgID: co.WM_VSCROLL, WParam: 0x0040_0005},
			got:  func(p msg.WndMsg) any { return msg.Decode[wm.VScroll](p) },
			want: wm.VScroll{Scroll: wm.Scroll{Request: co.SB_THUMBTRACK, Pos: 0x40}},
		},
		{
			name: "initmenupopup",
			p:    msg.WndMsg{MsgID: co.WM_INITMENUPOPUP, WParam: 0x99, LParam: 0x0001_0003},
			got:  func(p msg.WndMsg) any { return msg.Decode[wm.InitMenuPopup](p) },
			want: wm.InitMenuPopup{Menu: 0x99, Pos: 3, IsWindowMenu: true},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			if diff := cmp.Diff(test.want, test.got(test.p)); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestNotifyCast(t *testing.T) {
	kd := &win.NMLVKEYDOWN{
		Hdr:  win.NMHDR{HwndFrom: 0x10, IdFrom: 300, Code: co.LVN_KEYDOWN.Raw()},
		VKey: uint16(co.VK_DELETE),
	}
	var pin runtime.Pinner
	pin.Pin(kd)
	defer pin.Unpin()

	p := wm.Notify{Hdr: &kd.Hdr}.AsGenericWm()
	if p.WParam != 300 {
		t.Errorf("WParam = %d, want 300", p.WParam)
	}
	n := msg.Decode[wm.Notify](p)
	if n.Code() != co.LVN_KEYDOWN || n.Hdr.IDFrom() != 300 {
		t.Errorf("Code, IDFrom = %v, %d", n.Code(), n.Hdr.IDFrom())
	}
	if got := wm.CastNmhdr[win.NMLVKEYDOWN](n); got != kd || co.VK(got.VKey) != co.VK_DELETE {
		t.Errorf("CastNmhdr = %p (VKey %#x), want %p", got, got.VKey, kd)
	}
}

func TestSetText(t *testing.T) {
	text := win.UTF16FromString("héllo, wörld")
	var pin runtime.Pinner
	pin.Pin(&text[0])
	defer pin.Unpin()

	st := msg.Decode[wm.SetText](wm.SetText{Text: &text[0]}.AsGenericWm())
	if got := st.String(); got != "héllo, wörld" {
		t.Errorf("String = %q", got)
	}
	if got := (wm.SetText{}).String(); got != "" {
		t.Errorf("nil text String = %q, want empty", got)
	}
}
