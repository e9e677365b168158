// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package win

import "errors"

// ErrUnsupported is returned by the user32 entry points on platforms other
// than Windows.
var ErrUnsupported = errors.New("win: unsupported platform")

// DWLP_MSGRESULT is the dialog window long slot holding a message reply.
const DWLP_MSGRESULT = 0
