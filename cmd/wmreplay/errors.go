// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"

	"golang.org/x/xerrors"
)

type usageError struct {
	err error
}

func usageErrorf(format string, args ...interface{}) error {
	return &usageError{err: xerrors.Errorf(format, args...)}
}

const usageText = `usage: wmreplay [-mode=last|all] [-dialog] [-timing] script.yaml`

func (e *usageError) Error() string {
	msg := ""
	if !xerrors.Is(e.err, flag.ErrHelp) {
		msg = e.err.Error()
	}
	return usageText + "\n" + msg + "\nFor more information, run go doc github.com/wmdispatch/wmdispatch/cmd/wmreplay"
}

// scriptError reports a problem at a line of the script.
type scriptError struct {
	file string
	line int
	err  error
}

func (e *scriptError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.file, e.line, e.err)
}

func (e *scriptError) Unwrap() error { return e.err }
