// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"github.com/wmdispatch/wmdispatch/co"
	"github.com/wmdispatch/wmdispatch/msg/wm"
	"github.com/wmdispatch/wmdispatch/win"
)

// Control notifications are delivered to the parent window. The types below
// register handlers in the parent's WindowEvents for a single control id.

// ButtonEvents registers BN_* notifications of one button.
type ButtonEvents struct {
	parent *WindowEvents
	id     uint16
}

// Button returns the notifications of the button with the given id.
func (e *WindowEvents) Button(ctrlID uint16) ButtonEvents { return ButtonEvents{e, ctrlID} }

func (b ButtonEvents) BnClicked(fn func() error) { b.parent.WmCommand(co.BN_CLICKED, b.id, fn) }
func (b ButtonEvents) BnDblClk(fn func() error) {
	b.parent.WmCommand(co.BN_DOUBLECLICKED, b.id, fn)
}
func (b ButtonEvents) BnSetFocus(fn func() error)  { b.parent.WmCommand(co.BN_SETFOCUS, b.id, fn) }
func (b ButtonEvents) BnKillFocus(fn func() error) { b.parent.WmCommand(co.BN_KILLFOCUS, b.id, fn) }

// EditEvents registers EN_* notifications of one edit control.
type EditEvents struct {
	parent *WindowEvents
	id     uint16
}

// Edit returns the notifications of the edit control with the given id.
func (e *WindowEvents) Edit(ctrlID uint16) EditEvents { return EditEvents{e, ctrlID} }

func (d EditEvents) EnChange(fn func() error)    { d.parent.WmCommand(co.EN_CHANGE, d.id, fn) }
func (d EditEvents) EnUpdate(fn func() error)    { d.parent.WmCommand(co.EN_UPDATE, d.id, fn) }
func (d EditEvents) EnSetFocus(fn func() error)  { d.parent.WmCommand(co.EN_SETFOCUS, d.id, fn) }
func (d EditEvents) EnKillFocus(fn func() error) { d.parent.WmCommand(co.EN_KILLFOCUS, d.id, fn) }
func (d EditEvents) EnMaxText(fn func() error)   { d.parent.WmCommand(co.EN_MAXTEXT, d.id, fn) }

// ComboBoxEvents registers CBN_* notifications of one combo box.
type ComboBoxEvents struct {
	parent *WindowEvents
	id     uint16
}

// ComboBox returns the notifications of the combo box with the given id.
func (e *WindowEvents) ComboBox(ctrlID uint16) ComboBoxEvents { return ComboBoxEvents{e, ctrlID} }

func (c ComboBoxEvents) CbnSelChange(fn func() error) {
	c.parent.WmCommand(co.CBN_SELCHANGE, c.id, fn)
}
func (c ComboBoxEvents) CbnEditChange(fn func() error) {
	c.parent.WmCommand(co.CBN_EDITCHANGE, c.id, fn)
}
func (c ComboBoxEvents) CbnDropDown(fn func() error) { c.parent.WmCommand(co.CBN_DROPDOWN, c.id, fn) }
func (c ComboBoxEvents) CbnCloseUp(fn func() error)  { c.parent.WmCommand(co.CBN_CLOSEUP, c.id, fn) }

// ListViewEvents registers NM_* and LVN_* notifications of one list view.
type ListViewEvents struct {
	parent *WindowEvents
	id     uint16
}

// ListView returns the notifications of the list view with the given id.
func (e *WindowEvents) ListView(ctrlID uint16) ListViewEvents { return ListViewEvents{e, ctrlID} }

func (l ListViewEvents) noParm(code co.NM, fn func() error) {
	l.parent.WmNotify(l.id, code, func(wm.Notify) (WmRet, error) {
		if err := fn(); err != nil {
			return NotHandled, err
		}
		return HandledOk, nil
	})
}

func withNmhdr[T any](l ListViewEvents, code co.NM, fn func(p *T) error) {
	l.parent.WmNotify(l.id, code, func(p wm.Notify) (WmRet, error) {
		if err := fn(wm.CastNmhdr[T](p)); err != nil {
			return NotHandled, err
		}
		return HandledOk, nil
	})
}

func (l ListViewEvents) NmSetFocus(fn func() error)  { l.noParm(co.NM_SETFOCUS, fn) }
func (l ListViewEvents) NmKillFocus(fn func() error) { l.noParm(co.NM_KILLFOCUS, fn) }

func (l ListViewEvents) NmClick(fn func(p *win.NMITEMACTIVATE) error) {
	withNmhdr(l, co.NM_CLICK, fn)
}

func (l ListViewEvents) NmDblClk(fn func(p *win.NMITEMACTIVATE) error) {
	withNmhdr(l, co.NM_DBLCLK, fn)
}

func (l ListViewEvents) NmRClick(fn func(p *win.NMITEMACTIVATE) error) {
	withNmhdr(l, co.NM_RCLICK, fn)
}

func (l ListViewEvents) LvnItemActivate(fn func(p *win.NMITEMACTIVATE) error) {
	withNmhdr(l, co.LVN_ITEMACTIVATE, fn)
}

func (l ListViewEvents) LvnItemChanged(fn func(p *win.NMLISTVIEW) error) {
	withNmhdr(l, co.LVN_ITEMCHANGED, fn)
}

func (l ListViewEvents) LvnColumnClick(fn func(p *win.NMLISTVIEW) error) {
	withNmhdr(l, co.LVN_COLUMNCLICK, fn)
}

func (l ListViewEvents) LvnKeyDown(fn func(p *win.NMLVKEYDOWN) error) {
	withNmhdr(l, co.LVN_KEYDOWN, fn)
}

// LvnItemChanging handlers reply true to prevent the change.
func (l ListViewEvents) LvnItemChanging(fn func(p *win.NMLISTVIEW) (bool, error)) {
	l.parent.WmNotify(l.id, co.LVN_ITEMCHANGING, func(p wm.Notify) (WmRet, error) {
		b, err := fn(wm.CastNmhdr[win.NMLISTVIEW](p))
		if err != nil {
			return NotHandled, err
		}
		return HandledWithRet(win.BoolToUintptr(b)), nil
	})
}
