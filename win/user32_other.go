// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows

package win

func SendMessage(hwnd HWND, msg uint32, wParam, lParam uintptr) (uintptr, error) {
	return 0, ErrUnsupported
}

func PostMessage(hwnd HWND, msg uint32, wParam, lParam uintptr) error {
	return ErrUnsupported
}

// DefWindowProc returns 0, the reply of an unhandled message.
func DefWindowProc(hwnd HWND, msg uint32, wParam, lParam uintptr) uintptr { return 0 }

func PostQuitMessage(exitCode int32) {}

func SetWindowLongPtr(hwnd HWND, index int32, v uintptr) (uintptr, error) {
	return 0, ErrUnsupported
}

// CurrentThreadID returns 0; thread affinity is not tracked off Windows.
func CurrentThreadID() uint32 { return 0 }

func NewWndProcCallback(fn func(hwnd HWND, msg uint32, wParam, lParam uintptr) uintptr) uintptr {
	return 0
}

func GetMessage(m *MSG, hwnd HWND, msgFilterMin, msgFilterMax uint32) (bool, error) {
	return false, ErrUnsupported
}

func TranslateMessage(m *MSG) bool { return false }

func DispatchMessage(m *MSG) uintptr { return 0 }
