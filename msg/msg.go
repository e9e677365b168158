// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package msg defines the raw window message triple and the codec
// capability that converts between it and typed message values.
//
// A codec is a plain struct, one per message, in package msg/wm. Encoding
// (AsGenericWm) and reply conversion (ConvertRet) are used to send messages;
// decoding (FromGenericWm) is used by the dispatch packages to hand typed
// values to handlers.
//
// Decoding is trusted: FromGenericWm assumes the triple carries the message
// the codec describes and does not check MsgID. Handing a codec the wrong
// triple yields meaningless field values, or, for codecs that dereference
// LParam, undefined behavior.
package msg

import (
	"fmt"

	"github.com/wmdispatch/wmdispatch/co"
)

// WndMsg is the raw triple delivered to a window procedure.
type WndMsg struct {
	MsgID  co.WM
	WParam uintptr
	LParam uintptr
}

// String returns a compact form suitable for logs.
func (p WndMsg) String() string {
	return fmt.Sprintf("%v wp=%#x lp=%#x", p.MsgID, p.WParam, p.LParam)
}

// NoRet is the reply type of messages whose reply carries no meaning.
type NoRet struct{}

// MsgSend is implemented by every codec. R is the typed meaning of the
// reply word.
type MsgSend[R any] interface {
	// AsGenericWm encodes the message into its raw triple.
	AsGenericWm() WndMsg
	// ConvertRet interprets the reply word of a sent message.
	ConvertRet(v uintptr) R
}

// MsgSendRecv is implemented by the pointer type of codecs that can also be
// decoded, which is every codec in msg/wm.
type MsgSendRecv[T any] interface {
	*T
	// FromGenericWm fills the receiver from a raw triple whose MsgID is
	// assumed to match.
	FromGenericWm(p WndMsg)
}

// Decode builds a T from p.
//
//	sz := msg.Decode[wm.Size](p)
func Decode[T any, PT MsgSendRecv[T]](p WndMsg) T {
	var v T
	PT(&v).FromGenericWm(p)
	return v
}
