// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package win

import (
	"testing"
)

func TestWords(t *testing.T) {
	v := MAKELONG(0x1234, 0xabcd)
	if v != 0xabcd1234 {
		t.Fatalf("MAKELONG = %#x", v)
	}
	if LOWORD(v) != 0x1234 || HIWORD(v) != 0xabcd {
		t.Errorf("LOWORD, HIWORD = %#x, %#x", LOWORD(v), HIWORD(v))
	}
	if LOBYTE(0xabcd) != 0xcd || HIBYTE(0xabcd) != 0xab {
		t.Errorf("LOBYTE, HIBYTE = %#x, %#x", LOBYTE(0xabcd), HIBYTE(0xabcd))
	}
}

func TestPoint(t *testing.T) {
	for _, p := range []POINT{{0, 0}, {10, 20}, {-1, -1}, {-32768, 32767}} {
		if got := PointFrom(MakePoint(p)); got != p {
			t.Errorf("PointFrom(MakePoint(%v)) = %v", p, got)
		}
	}
	if x := GET_X_LPARAM(0x0000_ffff); x != -1 {
		t.Errorf("GET_X_LPARAM = %d, want -1", x)
	}
}

func TestUTF16(t *testing.T) {
	for _, s := range []string{"", "abc", "Grüße", "日本語", "🎉"} {
		u := UTF16FromString(s)
		if got := UTF16PtrToString(&u[0]); got != s {
			t.Errorf("round trip of %q = %q", s, got)
		}
	}
	if got := UTF16PtrToString(nil); got != "" {
		t.Errorf("nil = %q", got)
	}
}
