// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package co

import (
	"fmt"
	"strconv"
	"strings"
)

// NM is a WM_NOTIFY notification code, the code field of NMHDR.
type NM int32

// Common control notifications.
const (
	NM_OUTOFMEMORY NM = -1
	NM_CLICK       NM = -2
	NM_DBLCLK      NM = -3
	NM_RETURN      NM = -4
	NM_RCLICK      NM = -5
	NM_RDBLCLK     NM = -6
	NM_SETFOCUS    NM = -7
	NM_KILLFOCUS   NM = -8
	NM_CUSTOMDRAW  NM = -12
	NM_HOVER       NM = -13
)

// List view notifications.
const (
	LVN_ITEMCHANGING   NM = -100
	LVN_ITEMCHANGED    NM = -101
	LVN_INSERTITEM     NM = -102
	LVN_DELETEITEM     NM = -103
	LVN_DELETEALLITEMS NM = -104
	LVN_COLUMNCLICK    NM = -108
	LVN_BEGINDRAG      NM = -109
	LVN_ITEMACTIVATE   NM = -114
	LVN_KEYDOWN        NM = -155
)

var nmNames = map[NM]string{
	NM_OUTOFMEMORY:     "NM_OUTOFMEMORY",
	NM_CLICK:           "NM_CLICK",
	NM_DBLCLK:          "NM_DBLCLK",
	NM_RETURN:          "NM_RETURN",
	NM_RCLICK:          "NM_RCLICK",
	NM_RDBLCLK:         "NM_RDBLCLK",
	NM_SETFOCUS:        "NM_SETFOCUS",
	NM_KILLFOCUS:       "NM_KILLFOCUS",
	NM_CUSTOMDRAW:      "NM_CUSTOMDRAW",
	NM_HOVER:           "NM_HOVER",
	LVN_ITEMCHANGING:   "LVN_ITEMCHANGING",
	LVN_ITEMCHANGED:    "LVN_ITEMCHANGED",
	LVN_INSERTITEM:     "LVN_INSERTITEM",
	LVN_DELETEITEM:     "LVN_DELETEITEM",
	LVN_DELETEALLITEMS: "LVN_DELETEALLITEMS",
	LVN_COLUMNCLICK:    "LVN_COLUMNCLICK",
	LVN_BEGINDRAG:      "LVN_BEGINDRAG",
	LVN_ITEMACTIVATE:   "LVN_ITEMACTIVATE",
	LVN_KEYDOWN:        "LVN_KEYDOWN",
}

func (n NM) String() string {
	if name, ok := nmNames[n]; ok {
		return name
	}
	return fmt.Sprintf("NM(%d)", int32(n))
}

// Raw returns the code as stored in the Code field of an NMHDR.
func (n NM) Raw() uint32 { return uint32(n) }

// ParseNM returns the notification code with the given name, such as
// "NM_CLICK", or the code written as a signed number.
func ParseNM(s string) (NM, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 0, 32); err == nil {
		return NM(n), nil
	}
	name := strings.ToUpper(s)
	for n, nm := range nmNames {
		if nm == name {
			return n, nil
		}
	}
	return 0, fmt.Errorf("unknown notification code %q", s)
}
