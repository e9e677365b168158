// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The wmreplay command replays window messages against a set of handlers
// and prints how each message was dispatched.
//
// Usage:
//
//	wmreplay [-mode=last|all] [-dialog] [-timing] script.yaml
//
// The script is a YAML document listing handlers, registered in order,
// and messages, dispatched in order:
//
//	handlers:
//	  - name: layout
//	    wm: WM_SIZE
//	  - name: save
//	    command: {code: 0, id: 42}
//	    reply: error
//	    error: disk full
//	  - name: click
//	    notify: {id: 3, code: NM_CLICK}
//	    reply: pass
//	messages:
//	  - wm: WM_SIZE
//	    lparam: 0x00c80064
//	  - command: {code: 0, id: 42}
//	  - notify: {id: 3, code: NM_CLICK}
//
// A handler replies "ok" unless its reply says otherwise: "pass" leaves the
// message unhandled, a number is returned as the message result and
// "error" fails the dispatch with the handler's error text. Timer,
// accelmenu and creation handlers can only reply ok or error.
//
// Each handler prints a call line when it runs. Each dispatch then prints
// one logfmt line describing it, followed by the reply in last mode or by
// whether the message was handled in all mode.
//
// The -mode flag selects the dispatch mode: "last" runs handlers most
// recent first until one handles the message, "all" runs all of them. The
// -dialog flag dispatches as a dialog would, with WM_INITDIALOG as the
// creation message. The -timing flag adds the time and duration of each
// dispatch.
package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/wmdispatch/wmdispatch/events"
	"golang.org/x/xerrors"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("wmreplay: ")
	if err := runReplay(os.Stdout, os.Args[1:]); err != nil {
		if _, ok := err.(*usageError); ok {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

// runReplay is the main function of wmreplay. It's called by tests, so it
// writes to w instead of os.Stdout and returns an error instead of exiting.
func runReplay(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("wmreplay", flag.ContinueOnError)
	fs.Usage = func() {}
	fs.SetOutput(ioutil.Discard)
	var (
		modeName string
		dialog   bool
		timing   bool
	)
	fs.StringVar(&modeName, "mode", "last", "dispatch mode: last or all")
	fs.BoolVar(&dialog, "dialog", false, "dispatch as a dialog")
	fs.BoolVar(&timing, "timing", false, "print dispatch times")
	if err := fs.Parse(args); err != nil {
		return &usageError{err: err}
	}

	var mode events.Mode
	switch modeName {
	case "last":
		mode = events.LastWins
	case "all":
		mode = events.RunAll
	default:
		return usageErrorf("unknown mode %q", modeName)
	}
	if fs.NArg() != 1 {
		return usageErrorf("want exactly one script")
	}

	name := fs.Arg(0)
	f, err := os.Open(name)
	if err != nil {
		return xerrors.Errorf("opening script: %w", err)
	}
	defer f.Close()
	s, err := readScript(f, name)
	if err != nil {
		return err
	}
	return newReplayer(w, s, mode, dialog, timing).run()
}
