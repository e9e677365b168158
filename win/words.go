// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package win

import (
	"unicode/utf16"
	"unsafe"
)

func LOWORD(v uintptr) uint16 { return uint16(v & 0xffff) }
func HIWORD(v uintptr) uint16 { return uint16((v >> 16) & 0xffff) }
func LOBYTE(v uint16) uint8   { return uint8(v & 0xff) }
func HIBYTE(v uint16) uint8   { return uint8(v >> 8) }

// MAKELONG packs two words into the low 32 bits of a machine word.
func MAKELONG(lo, hi uint16) uintptr { return uintptr(uint32(lo) | uint32(hi)<<16) }

// GET_X_LPARAM and GET_Y_LPARAM return signed coordinates, which may be
// negative on multi-monitor setups.
func GET_X_LPARAM(lp uintptr) int32 { return int32(int16(LOWORD(lp))) }
func GET_Y_LPARAM(lp uintptr) int32 { return int32(int16(HIWORD(lp))) }

// MakePoint packs a point the way mouse messages carry it in LPARAM.
func MakePoint(p POINT) uintptr { return MAKELONG(uint16(int16(p.X)), uint16(int16(p.Y))) }

// PointFrom unpacks a point packed with MakePoint.
func PointFrom(lp uintptr) POINT { return POINT{X: GET_X_LPARAM(lp), Y: GET_Y_LPARAM(lp)} }

// BoolToUintptr returns 1 for true and 0 for false.
func BoolToUintptr(b bool) uintptr {
	if b {
		return 1
	}
	return 0
}

// UTF16PtrToString converts a NUL-terminated UTF-16 string to a Go string.
// A nil pointer yields the empty string.
func UTF16PtrToString(p *uint16) string {
	if p == nil {
		return ""
	}
	n := 0
	for ptr := unsafe.Pointer(p); *(*uint16)(ptr) != 0; n++ {
		ptr = unsafe.Add(ptr, unsafe.Sizeof(*p))
	}
	return string(utf16.Decode(unsafe.Slice(p, n)))
}

// UTF16FromString returns the NUL-terminated UTF-16 encoding of s.
func UTF16FromString(s string) []uint16 {
	return append(utf16.Encode([]rune(s)), 0)
}
