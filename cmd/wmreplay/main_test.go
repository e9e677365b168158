// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"io/ioutil"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/wmdispatch/wmdispatch/events/eventstest"
	"golang.org/x/tools/txtar"
)

var updateGolden = flag.Bool("u", false, "update expected text in test files instead of failing")

// test describes an individual test case, written as a .txt file in the
// testdata directory.
//
// Each test is a txtar archive. The comment section holds key=value lines:
// args (the flags passed to wmreplay) and error (true if the run is
// expected to fail). The file named "script.yaml" is the script; the file
// named "want" holds the expected output, or the expected error text.
// Occurrences of the work directory are written as $WORK, and notification
// header addresses as $PTR.
type test struct {
	txtar.Archive
	testPath  string
	args      []string
	wantError bool
	want      []byte
}

func readTest(testPath string) (*test, error) {
	arc, err := txtar.ParseFile(testPath)
	if err != nil {
		return nil, err
	}
	t := &test{Archive: *arc, testPath: testPath}
	for n, line := range bytes.Split(t.Comment, []byte("\n")) {
		if i := bytes.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		key, value, ok := strings.Cut(string(line), "=")
		if !ok {
			return nil, fmt.Errorf("%s:%d: no '=' found", testPath, n+1)
		}
		switch strings.TrimSpace(key) {
		case "args":
			t.args = strings.Fields(value)
		case "error":
			if t.wantError, err = strconv.ParseBool(strings.TrimSpace(value)); err != nil {
				return nil, fmt.Errorf("%s:%d: %v", testPath, n+1, err)
			}
		default:
			return nil, fmt.Errorf("%s:%d: unknown key: %q", testPath, n+1, key)
		}
	}
	for _, f := range t.Files {
		if f.Name == "want" {
			t.want = bytes.TrimSpace(f.Data)
		}
	}
	return t, nil
}

// updateTest replaces the contents of the file named "want" and writes
// the test file back.
func updateTest(t *test, want []byte) error {
	var wantFile *txtar.File
	for i := range t.Files {
		if t.Files[i].Name == "want" {
			wantFile = &t.Files[i]
			break
		}
	}
	if wantFile == nil {
		t.Files = append(t.Files, txtar.File{Name: "want"})
		wantFile = &t.Files[len(t.Files)-1]
	}
	wantFile.Data = append(bytes.TrimSpace(want), '\n')
	return ioutil.WriteFile(t.testPath, txtar.Format(&t.Archive), 0666)
}

var notifyPtr = regexp.MustCompile(`(wm=WM_NOTIFY wparam=0x[0-9a-f]+) lparam=0x[0-9a-f]+`)

func TestReplay(t *testing.T) {
	testPaths, err := filepath.Glob(filepath.FromSlash("testdata/*.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if len(testPaths) == 0 {
		t.Fatal("no tests found")
	}
	for _, testPath := range testPaths {
		testPath := testPath
		testName := strings.TrimSuffix(filepath.Base(testPath), ".txt")
		t.Run(testName, func(t *testing.T) {
			test, err := readTest(testPath)
			if err != nil {
				t.Fatal(err)
			}
			dir := t.TempDir()
			for _, f := range test.Files {
				if f.Name == "want" {
					continue
				}
				if err := ioutil.WriteFile(filepath.Join(dir, f.Name), f.Data, 0666); err != nil {
					t.Fatal(err)
				}
			}
			now = eventstest.Clock(time.Millisecond)
			defer func() { now = time.Now }()

			buf := &bytes.Buffer{}
			args := append(test.args, filepath.Join(dir, "script.yaml"))
			err = runReplay(buf, args)
			got := buf.Bytes()
			if err != nil {
				if !test.wantError {
					t.Fatalf("unexpected error: %v", err)
				}
				got = []byte(err.Error())
			} else if test.wantError {
				t.Fatalf("got success, want error; output:\n%s", got)
			}
			got = bytes.ReplaceAll(got, []byte(dir), []byte("$WORK"))
			got = notifyPtr.ReplaceAll(got, []byte("$1 lparam=$$PTR"))
			got = bytes.TrimSpace(got)

			if *updateGolden {
				if err := updateTest(test, got); err != nil {
					t.Fatal(err)
				}
				return
			}
			if !bytes.Equal(got, test.want) {
				t.Errorf("got:\n%s\n\nwant:\n%s", got, test.want)
			}
		})
	}
}

func TestMissingScript(t *testing.T) {
	err := runReplay(ioutil.Discard, []string{filepath.Join(t.TempDir(), "none.yaml")})
	if err == nil {
		t.Fatal("got nil error")
	}
	if _, ok := err.(*usageError); ok {
		t.Errorf("missing file reported as a usage error: %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want a not-exist error", err)
	}
}

type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }

func TestWriteError(t *testing.T) {
	script := filepath.Join(t.TempDir(), "script.yaml")
	src := "handlers:\n  - wm: WM_PAINT\nmessages:\n  - wm: WM_PAINT\n  - wm: WM_CLOSE\n"
	if err := ioutil.WriteFile(script, []byte(src), 0o666); err != nil {
		t.Fatal(err)
	}
	errFull := errors.New("disk full")
	err := runReplay(failWriter{errFull}, []string{script})
	if !errors.Is(err, errFull) {
		t.Fatalf("err = %v, want %v", err, errFull)
	}
	if !strings.HasPrefix(err.Error(), "writing output: ") {
		t.Errorf("err = %q, want a writing output error", err)
	}
}
