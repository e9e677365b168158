// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package co

import (
	"fmt"
	"strconv"
	"strings"
)

// WM is a window message identifier.
type WM uint32

const (
	WM_NULL              WM = 0x0000
	WM_CREATE            WM = 0x0001
	WM_DESTROY           WM = 0x0002
	WM_MOVE              WM = 0x0003
	WM_SIZE              WM = 0x0005
	WM_ACTIVATE          WM = 0x0006
	WM_SETFOCUS          WM = 0x0007
	WM_KILLFOCUS         WM = 0x0008
	WM_ENABLE            WM = 0x000a
	WM_SETREDRAW         WM = 0x000b
	WM_SETTEXT           WM = 0x000c
	WM_GETTEXT           WM = 0x000d
	WM_GETTEXTLENGTH     WM = 0x000e
	WM_PAINT             WM = 0x000f
	WM_CLOSE             WM = 0x0010
	WM_QUERYENDSESSION   WM = 0x0011
	WM_QUIT              WM = 0x0012
	WM_QUERYOPEN         WM = 0x0013
	WM_ERASEBKGND        WM = 0x0014
	WM_ENDSESSION        WM = 0x0016
	WM_SHOWWINDOW        WM = 0x0018
	WM_ACTIVATEAPP       WM = 0x001c
	WM_CANCELMODE        WM = 0x001f
	WM_SETCURSOR         WM = 0x0020
	WM_CHILDACTIVATE     WM = 0x0022
	WM_GETMINMAXINFO     WM = 0x0024
	WM_SETFONT           WM = 0x0030
	WM_GETFONT           WM = 0x0031
	WM_WINDOWPOSCHANGING WM = 0x0046
	WM_WINDOWPOSCHANGED  WM = 0x0047
	WM_NOTIFY            WM = 0x004e
	WM_HELP              WM = 0x0053
	WM_CONTEXTMENU       WM = 0x007b
	WM_STYLECHANGING     WM = 0x007c
	WM_STYLECHANGED      WM = 0x007d
	WM_DISPLAYCHANGE     WM = 0x007e
	WM_SETICON           WM = 0x0080
	WM_NCCREATE          WM = 0x0081
	WM_NCDESTROY         WM = 0x0082
	WM_NCCALCSIZE        WM = 0x0083
	WM_NCHITTEST         WM = 0x0084
	WM_NCPAINT           WM = 0x0085
	WM_GETDLGCODE        WM = 0x0087
	WM_SYNCPAINT         WM = 0x0088
	WM_KEYDOWN           WM = 0x0100
	WM_KEYUP             WM = 0x0101
	WM_CHAR              WM = 0x0102
	WM_DEADCHAR          WM = 0x0103
	WM_SYSKEYDOWN        WM = 0x0104
	WM_SYSKEYUP          WM = 0x0105
	WM_SYSCHAR           WM = 0x0106
	WM_SYSDEADCHAR       WM = 0x0107
	WM_INITDIALOG        WM = 0x0110
	WM_COMMAND           WM = 0x0111
	WM_SYSCOMMAND        WM = 0x0112
	WM_TIMER             WM = 0x0113
	WM_HSCROLL           WM = 0x0114
	WM_VSCROLL           WM = 0x0115
	WM_INITMENUPOPUP     WM = 0x0117
	WM_ENTERIDLE         WM = 0x0121
	WM_UNINITMENUPOPUP   WM = 0x0125
	WM_MENUCOMMAND       WM = 0x0126
	WM_CTLCOLORMSGBOX    WM = 0x0132
	WM_CTLCOLOREDIT      WM = 0x0133
	WM_CTLCOLORLISTBOX   WM = 0x0134
	WM_CTLCOLORBTN       WM = 0x0135
	WM_CTLCOLORDLG       WM = 0x0136
	WM_CTLCOLORSCROLLBAR WM = 0x0137
	WM_CTLCOLORSTATIC    WM = 0x0138
	WM_MOUSEMOVE         WM = 0x0200
	WM_LBUTTONDOWN       WM = 0x0201
	WM_LBUTTONUP         WM = 0x0202
	WM_LBUTTONDBLCLK     WM = 0x0203
	WM_RBUTTONDOWN       WM = 0x0204
	WM_RBUTTONUP         WM = 0x0205
	WM_RBUTTONDBLCLK     WM = 0x0206
	WM_MBUTTONDOWN       WM = 0x0207
	WM_MBUTTONUP         WM = 0x0208
	WM_MBUTTONDBLCLK     WM = 0x0209
	WM_MOUSEWHEEL        WM = 0x020a
	WM_XBUTTONDOWN       WM = 0x020b
	WM_XBUTTONUP         WM = 0x020c
	WM_XBUTTONDBLCLK     WM = 0x020d
	WM_PARENTNOTIFY      WM = 0x0210
	WM_ENTERMENULOOP     WM = 0x0211
	WM_EXITMENULOOP      WM = 0x0212
	WM_SIZING            WM = 0x0214
	WM_CAPTURECHANGED    WM = 0x0215
	WM_MOVING            WM = 0x0216
	WM_ENTERSIZEMOVE     WM = 0x0231
	WM_EXITSIZEMOVE      WM = 0x0232
	WM_DROPFILES         WM = 0x0233
	WM_MOUSEHOVER        WM = 0x02a1
	WM_MOUSELEAVE        WM = 0x02a3
	WM_UNDO              WM = 0x0304
	WM_APPCOMMAND        WM = 0x0319
	WM_THEMECHANGED      WM = 0x031a

	// WM_USER is the first identifier available for private window classes.
	WM_USER WM = 0x0400
	// WM_APP is the first identifier available for application-wide use.
	WM_APP WM = 0x8000
)

var wmNames = map[WM]string{
	WM_NULL:              "WM_NULL",
	WM_CREATE:            "WM_CREATE",
	WM_DESTROY:           "WM_DESTROY",
	WM_MOVE:              "WM_MOVE",
	WM_SIZE:              "WM_SIZE",
	WM_ACTIVATE:          "WM_ACTIVATE",
	WM_SETFOCUS:          "WM_SETFOCUS",
	WM_KILLFOCUS:         "WM_KILLFOCUS",
	WM_ENABLE:            "WM_ENABLE",
	WM_SETREDRAW:         "WM_SETREDRAW",
	WM_SETTEXT:           "WM_SETTEXT",
	WM_GETTEXT:           "WM_GETTEXT",
	WM_GETTEXTLENGTH:     "WM_GETTEXTLENGTH",
	WM_PAINT:             "WM_PAINT",
	WM_CLOSE:             "WM_CLOSE",
	WM_QUERYENDSESSION:   "WM_QUERYENDSESSION",
	WM_QUIT:              "WM_QUIT",
	WM_QUERYOPEN:         "WM_QUERYOPEN",
	WM_ERASEBKGND:        "WM_ERASEBKGND",
	WM_ENDSESSION:        "WM_ENDSESSION",
	WM_SHOWWINDOW:        "WM_SHOWWINDOW",
	WM_ACTIVATEAPP:       "WM_ACTIVATEAPP",
	WM_CANCELMODE:        "WM_CANCELMODE",
	WM_SETCURSOR:         "WM_SETCURSOR",
	WM_CHILDACTIVATE:     "WM_CHILDACTIVATE",
	WM_GETMINMAXINFO:     "WM_GETMINMAXINFO",
	WM_SETFONT:           "WM_SETFONT",
	WM_GETFONT:           "WM_GETFONT",
	WM_WINDOWPOSCHANGING: "WM_WINDOWPOSCHANGING",
	WM_WINDOWPOSCHANGED:  "WM_WINDOWPOSCHANGED",
	WM_NOTIFY:            "WM_NOTIFY",
	WM_HELP:              "WM_HELP",
	WM_CONTEXTMENU:       "WM_CONTEXTMENU",
	WM_STYLECHANGING:     "WM_STYLECHANGING",
	WM_STYLECHANGED:      "WM_STYLECHANGED",
	WM_DISPLAYCHANGE:     "WM_DISPLAYCHANGE",
	WM_SETICON:           "WM_SETICON",
	WM_NCCREATE:          "WM_NCCREATE",
	WM_NCDESTROY:         "WM_NCDESTROY",
	WM_NCCALCSIZE:        "WM_NCCALCSIZE",
	WM_NCHITTEST:         "WM_NCHITTEST",
	WM_NCPAINT:           "WM_NCPAINT",
	WM_GETDLGCODE:        "WM_GETDLGCODE",
	WM_SYNCPAINT:         "WM_SYNCPAINT",
	WM_KEYDOWN:           "WM_KEYDOWN",
	WM_KEYUP:             "WM_KEYUP",
	WM_CHAR:              "WM_CHAR",
	WM_DEADCHAR:          "WM_DEADCHAR",
	WM_SYSKEYDOWN:        "WM_SYSKEYDOWN",
	WM_SYSKEYUP:          "WM_SYSKEYUP",
	WM_SYSCHAR:           "WM_SYSCHAR",
	WM_SYSDEADCHAR:       "WM_SYSDEADCHAR",
	WM_INITDIALOG:        "WM_INITDIALOG",
	WM_COMMAND:           "WM_COMMAND",
	WM_SYSCOMMAND:        "WM_SYSCOMMAND",
	WM_TIMER:             "WM_TIMER",
	WM_HSCROLL:           "WM_HSCROLL",
	WM_VSCROLL:           "WM_VSCROLL",
	WM_INITMENUPOPUP:     "WM_INITMENUPOPUP",
	WM_ENTERIDLE:         "WM_ENTERIDLE",
	WM_UNINITMENUPOPUP:   "WM_UNINITMENUPOPUP",
	WM_MENUCOMMAND:       "WM_MENUCOMMAND",
	WM_CTLCOLORMSGBOX:    "WM_CTLCOLORMSGBOX",
	WM_CTLCOLOREDIT:      "WM_CTLCOLOREDIT",
	WM_CTLCOLORLISTBOX:   "WM_CTLCOLORLISTBOX",
	WM_CTLCOLORBTN:       "WM_CTLCOLORBTN",
	WM_CTLCOLORDLG:       "WM_CTLCOLORDLG",
	WM_CTLCOLORSCROLLBAR: "WM_CTLCOLORSCROLLBAR",
	WM_CTLCOLORSTATIC:    "WM_CTLCOLORSTATIC",
	WM_MOUSEMOVE:         "WM_MOUSEMOVE",
	WM_LBUTTONDOWN:       "WM_LBUTTONDOWN",
	WM_LBUTTONUP:         "WM_LBUTTONUP",
	WM_LBUTTONDBLCLK:     "WM_LBUTTONDBLCLK",
	WM_RBUTTONDOWN:       "WM_RBUTTONDOWN",
	WM_RBUTTONUP:         "WM_RBUTTONUP",
	WM_RBUTTONDBLCLK:     "WM_RBUTTONDBLCLK",
	WM_MBUTTONDOWN:       "WM_MBUTTONDOWN",
	WM_MBUTTONUP:         "WM_MBUTTONUP",
	WM_MBUTTONDBLCLK:     "WM_MBUTTONDBLCLK",
	WM_MOUSEWHEEL:        "WM_MOUSEWHEEL",
	WM_XBUTTONDOWN:       "WM_XBUTTONDOWN",
	WM_XBUTTONUP:         "WM_XBUTTONUP",
	WM_XBUTTONDBLCLK:     "WM_XBUTTONDBLCLK",
	WM_PARENTNOTIFY:      "WM_PARENTNOTIFY",
	WM_ENTERMENULOOP:     "WM_ENTERMENULOOP",
	WM_EXITMENULOOP:      "WM_EXITMENULOOP",
	WM_SIZING:            "WM_SIZING",
	WM_CAPTURECHANGED:    "WM_CAPTURECHANGED",
	WM_MOVING:            "WM_MOVING",
	WM_ENTERSIZEMOVE:     "WM_ENTERSIZEMOVE",
	WM_EXITSIZEMOVE:      "WM_EXITSIZEMOVE",
	WM_DROPFILES:         "WM_DROPFILES",
	WM_MOUSEHOVER:        "WM_MOUSEHOVER",
	WM_MOUSELEAVE:        "WM_MOUSELEAVE",
	WM_UNDO:              "WM_UNDO",
	WM_APPCOMMAND:        "WM_APPCOMMAND",
	WM_THEMECHANGED:      "WM_THEMECHANGED",
}

var wmByName = func() map[string]WM {
	m := make(map[string]WM, len(wmNames))
	for id, name := range wmNames {
		m[name] = id
	}
	return m
}()

// String returns the conventional name of the message, or an offset from
// WM_USER or WM_APP for private messages.
func (m WM) String() string {
	if name, ok := wmNames[m]; ok {
		return name
	}
	switch {
	case m >= WM_APP && m <= 0xbfff:
		return fmt.Sprintf("WM_APP+%#x", uint32(m-WM_APP))
	case m >= WM_USER && m < WM_APP:
		return fmt.Sprintf("WM_USER+%#x", uint32(m-WM_USER))
	}
	return fmt.Sprintf("WM(%#04x)", uint32(m))
}

// ParseWM accepts a message name such as "WM_SIZE" (the prefix may be
// omitted and case is ignored), a private message such as "WM_APP+0x2" as
// printed by String, or a decimal or 0x-prefixed number.
func ParseWM(s string) (WM, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseUint(s, 0, 32); err == nil {
		return WM(n), nil
	}
	name := strings.ToUpper(s)
	if !strings.HasPrefix(name, "WM_") {
		name = "WM_" + name
	}
	if m, ok := wmByName[name]; ok {
		return m, nil
	}
	if base, off, ok := strings.Cut(name, "+"); ok {
		n, err := strconv.ParseUint(strings.ToLower(off), 0, 16)
		if err == nil {
			switch base {
			case "WM_USER":
				return WM_USER + WM(n), nil
			case "WM_APP":
				return WM_APP + WM(n), nil
			}
		}
	}
	return 0, fmt.Errorf("unknown window message %q", s)
}
