// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package co holds the Win32 integer codes used by the dispatch packages.
//
// Each family of codes is a distinct integer type, so a notification code
// cannot be passed where a message identifier is expected. The values are
// defined by the operating system; only the subset needed by the message
// codecs in packages msg and msg/wm is present.
package co
