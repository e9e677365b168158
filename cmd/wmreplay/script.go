// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wmdispatch/wmdispatch/co"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// script is a replay script: handlers to register, in order, and the
// messages to dispatch to them.
type script struct {
	// Dialog makes the window a dialog, as the -dialog flag does.
	Dialog   bool
	Handlers []*handlerSpec
	Messages []*messageSpec
}

// handlerSpec registers one handler. Exactly one of WM, Command, Notify,
// Timer, AccelMenu and Creation must be set.
type handlerSpec struct {
	Name      string
	WM        *wmName      `yaml:"wm"`
	Command   *commandSpec `yaml:"command"`
	Notify    *notifySpec  `yaml:"notify"`
	Timer     *uint64      `yaml:"timer"`
	AccelMenu *uint16      `yaml:"accelmenu"`
	Creation  bool         `yaml:"creation"`
	// Reply is what the handler returns: "pass", "ok" (the default), a
	// number, or "error".
	Reply reply
	// Error is the text of the error returned when Reply is "error".
	Error string

	line int
}

// messageSpec is one message triple. Command, Notify and Timer build the
// triple of WM_COMMAND, WM_NOTIFY and WM_TIMER; otherwise WM with WParam
// and LParam is sent as is.
type messageSpec struct {
	WM      *wmName      `yaml:"wm"`
	WParam  uint64       `yaml:"wparam"`
	LParam  uint64       `yaml:"lparam"`
	Command *commandSpec `yaml:"command"`
	Notify  *notifySpec  `yaml:"notify"`
	Timer   *uint64      `yaml:"timer"`

	line int
}

type commandSpec struct {
	Code uint16
	ID   uint16
}

type notifySpec struct {
	ID   uint16
	Code nmCode
}

type wmName co.WM

func (w *wmName) UnmarshalYAML(n *yaml.Node) error {
	m, err := co.ParseWM(n.Value)
	if err != nil {
		return err
	}
	*w = wmName(m)
	return nil
}

type nmCode co.NM

func (c *nmCode) UnmarshalYAML(n *yaml.Node) error {
	nm, err := co.ParseNM(n.Value)
	if err != nil {
		return err
	}
	*c = nmCode(nm)
	return nil
}

type replyKind uint8

const (
	replyOK replyKind = iota
	replyPass
	replyValue
	replyError
)

type reply struct {
	kind  replyKind
	value uintptr
}

func (r *reply) UnmarshalYAML(n *yaml.Node) error {
	switch s := strings.ToLower(strings.TrimSpace(n.Value)); s {
	case "ok", "":
		*r = reply{kind: replyOK}
	case "pass":
		*r = reply{kind: replyPass}
	case "error":
		*r = reply{kind: replyError}
	default:
		v, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return xerrors.Errorf("reply %q is not pass, ok, error or a number", n.Value)
		}
		*r = reply{kind: replyValue, value: uintptr(v)}
	}
	return nil
}

// UnmarshalYAML records the line of each entry for error messages.
func (h *handlerSpec) UnmarshalYAML(n *yaml.Node) error {
	type plain handlerSpec
	if err := n.Decode((*plain)(h)); err != nil {
		return err
	}
	h.line = n.Line
	return nil
}

func (m *messageSpec) UnmarshalYAML(n *yaml.Node) error {
	type plain messageSpec
	if err := n.Decode((*plain)(m)); err != nil {
		return err
	}
	m.line = n.Line
	return nil
}

// readScript parses and checks a script. name is used in error messages.
func readScript(r io.Reader, name string) (*script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s script
	if err := dec.Decode(&s); err != nil {
		if xerrors.Is(err, io.EOF) {
			return nil, xerrors.Errorf("%s: empty script", name)
		}
		return nil, xerrors.Errorf("reading %s: %w", name, err)
	}
	for i, h := range s.Handlers {
		if h.Name == "" {
			h.Name = fmt.Sprintf("h%d", i+1)
		}
		if err := h.check(); err != nil {
			return nil, &scriptError{file: name, line: h.line, err: err}
		}
	}
	for _, m := range s.Messages {
		if err := m.check(); err != nil {
			return nil, &scriptError{file: name, line: m.line, err: err}
		}
	}
	return &s, nil
}

func (h *handlerSpec) check() error {
	n := 0
	for _, set := range []bool{h.WM != nil, h.Command != nil, h.Notify != nil, h.Timer != nil, h.AccelMenu != nil, h.Creation} {
		if set {
			n++
		}
	}
	if n != 1 {
		return xerrors.Errorf("handler %s: want exactly one of wm, command, notify, timer, accelmenu, creation", h.Name)
	}
	if h.WM != nil {
		switch co.WM(*h.WM) {
		case co.WM_COMMAND, co.WM_NOTIFY, co.WM_TIMER:
			return xerrors.Errorf("handler %s: %v is registered with its own key", h.Name, co.WM(*h.WM))
		}
	}
	if h.Timer != nil || h.AccelMenu != nil || h.Creation {
		if k := h.Reply.kind; k != replyOK && k != replyError {
			return xerrors.Errorf("handler %s: reply must be ok or error", h.Name)
		}
	}
	if (h.Reply.kind == replyError) != (h.Error != "") {
		return xerrors.Errorf("handler %s: error text goes with reply: error", h.Name)
	}
	return nil
}

func (m *messageSpec) check() error {
	n := 0
	for _, set := range []bool{m.WM != nil, m.Command != nil, m.Notify != nil, m.Timer != nil} {
		if set {
			n++
		}
	}
	if n != 1 {
		return xerrors.New("message: want exactly one of wm, command, notify, timer")
	}
	if m.WM == nil && (m.WParam != 0 || m.LParam != 0) {
		return xerrors.New("message: wparam and lparam go with wm")
	}
	return nil
}
