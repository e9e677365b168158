// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package win holds the raw Windows handle and structure types carried by
// window messages, and the few user32 entry points the dispatch packages call.
//
// The types are plain Go values on every platform so that message codecs and
// their tests build anywhere. The entry points are implemented only on
// Windows; elsewhere they report ErrUnsupported.
package win
