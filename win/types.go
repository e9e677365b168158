// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package win

// Handle types. Each is an opaque pointer-sized value owned by the OS.
type (
	HWND      uintptr
	HDC       uintptr
	HBRUSH    uintptr
	HFONT     uintptr
	HICON     uintptr
	HMENU     uintptr
	HRGN      uintptr
	HDROP     uintptr
	HINSTANCE uintptr
	HCURSOR   uintptr
)

type POINT struct {
	X int32
	Y int32
}

// MSG is a message retrieved from a thread's message queue.
type MSG struct {
	Hwnd     HWND
	Message  uint32
	WParam   uintptr
	LParam   uintptr
	Time     uint32
	Pt       POINT
	LPrivate uint32
}

type SIZE struct {
	Cx int32
	Cy int32
}

type RECT struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// NMHDR is the header every WM_NOTIFY payload starts with.
type NMHDR struct {
	HwndFrom HWND
	IdFrom   uintptr
	Code     uint32
}

// IDFrom returns the control identifier, truncated to the 16 bits a
// dialog control id occupies.
func (h *NMHDR) IDFrom() uint16 { return uint16(h.IdFrom) }

type CREATESTRUCT struct {
	CreateParams uintptr
	Instance     HINSTANCE
	Menu         HMENU
	Parent       HWND
	Cy           int32
	Cx           int32
	Y            int32
	X            int32
	Style        int32
	Name         *uint16
	Class        *uint16
	ExStyle      uint32
}

type MINMAXINFO struct {
	Reserved     POINT
	MaxSize      POINT
	MaxPosition  POINT
	MinTrackSize POINT
	MaxTrackSize POINT
}

type WINDOWPOS struct {
	Hwnd            HWND
	HwndInsertAfter HWND
	X               int32
	Y               int32
	Cx              int32
	Cy              int32
	Flags           uint32
}

// NMLISTVIEW is the payload of most list view notifications.
type NMLISTVIEW struct {
	Hdr      NMHDR
	Item     int32
	SubItem  int32
	NewState uint32
	OldState uint32
	Changed  uint32
	Action   POINT
	Param    uintptr
}

// NMITEMACTIVATE is the payload of LVN_ITEMACTIVATE and NM_CLICK on list views.
type NMITEMACTIVATE struct {
	Hdr      NMHDR
	Item     int32
	SubItem  int32
	NewState uint32
	OldState uint32
	Changed  uint32
	Action   POINT
	Param    uintptr
	KeyFlags uint32
}

// NMLVKEYDOWN is the payload of LVN_KEYDOWN.
type NMLVKEYDOWN struct {
	Hdr   NMHDR
	VKey  uint16
	Flags uint32
}
