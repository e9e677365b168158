// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wm contains one codec per window message handled by the events
// package. Each codec is a plain struct; its value implements
// msg.MsgSend and its pointer implements msg.MsgSendRecv.
//
// Codecs that carry a pointer in LParam (Create, Notify, GetMinMaxInfo and
// similar) expose it as a Go pointer. The pointee is owned by the sender and
// is valid only for the duration of the dispatch.
package wm
