// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate go run golang.org/x/sys/windows/mkwinsyscall -output zsyscall_windows.go syscall_windows.go

package win

import (
	"syscall"

	"golang.org/x/sys/windows"
	"golang.org/x/xerrors"
)

//sys	_SendMessage(hwnd HWND, msg uint32, wParam uintptr, lParam uintptr) (lResult uintptr) = user32.SendMessageW
//sys	_PostMessage(hwnd HWND, msg uint32, wParam uintptr, lParam uintptr) (err error) = user32.PostMessageW
//sys	_DefWindowProc(hwnd HWND, msg uint32, wParam uintptr, lParam uintptr) (lResult uintptr) = user32.DefWindowProcW
//sys	_PostQuitMessage(exitCode int32) = user32.PostQuitMessage
//sys	_SetWindowLongPtr(hwnd HWND, index int32, v uintptr) (prev uintptr, err error) = user32.SetWindowLongPtrW
//sys	_GetMessage(m *MSG, hwnd HWND, msgFilterMin uint32, msgFilterMax uint32) (ret int32, err error) [failretval==-1] = user32.GetMessageW
//sys	_TranslateMessage(m *MSG) (done bool) = user32.TranslateMessage
//sys	_DispatchMessage(m *MSG) (ret uintptr) = user32.DispatchMessageW

// SendMessage sends a message and waits for the window procedure's reply.
func SendMessage(hwnd HWND, msg uint32, wParam, lParam uintptr) (uintptr, error) {
	if err := procSendMessageW.Find(); err != nil {
		return 0, xerrors.Errorf("win: SendMessageW: %w", err)
	}
	return _SendMessage(hwnd, msg, wParam, lParam), nil
}

// PostMessage places a message in the window's queue and returns at once.
func PostMessage(hwnd HWND, msg uint32, wParam, lParam uintptr) error {
	if err := _PostMessage(hwnd, msg, wParam, lParam); err != nil {
		return xerrors.Errorf("win: PostMessageW: %w", err)
	}
	return nil
}

// DefWindowProc runs the default window procedure.
func DefWindowProc(hwnd HWND, msg uint32, wParam, lParam uintptr) uintptr {
	return _DefWindowProc(hwnd, msg, wParam, lParam)
}

// PostQuitMessage asks the calling thread's message loop to terminate.
func PostQuitMessage(exitCode int32) { _PostQuitMessage(exitCode) }

// SetWindowLongPtr writes a window long slot and returns the previous value.
func SetWindowLongPtr(hwnd HWND, index int32, v uintptr) (uintptr, error) {
	prev, err := _SetWindowLongPtr(hwnd, index, v)
	// A zero previous value with no last error comes back as EINVAL.
	if err != nil && err != syscall.EINVAL {
		return 0, xerrors.Errorf("win: SetWindowLongPtrW: %w", err)
	}
	return prev, nil
}

// CurrentThreadID returns the OS identifier of the calling thread.
func CurrentThreadID() uint32 { return windows.GetCurrentThreadId() }

// NewWndProcCallback converts a window procedure into a callback pointer
// suitable for a window class.
func NewWndProcCallback(fn func(hwnd HWND, msg uint32, wParam, lParam uintptr) uintptr) uintptr {
	return windows.NewCallback(fn)
}

// GetMessage waits for a message for the calling thread. It returns false
// when the message is WM_QUIT.
func GetMessage(m *MSG, hwnd HWND, msgFilterMin, msgFilterMax uint32) (bool, error) {
	ret, err := _GetMessage(m, hwnd, msgFilterMin, msgFilterMax)
	if err != nil {
		return false, xerrors.Errorf("win: GetMessageW: %w", err)
	}
	return ret != 0, nil
}

// TranslateMessage posts character messages for virtual-key messages.
func TranslateMessage(m *MSG) bool { return _TranslateMessage(m) }

// DispatchMessage delivers m to its window procedure.
func DispatchMessage(m *MSG) uintptr { return _DispatchMessage(m) }
