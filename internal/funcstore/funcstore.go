// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package funcstore implements an insertion-ordered multimap from a
// dispatch key to handler functions.
package funcstore

import "iter"

type entry[K comparable, F any] struct {
	key K
	fn  F
}

// A FuncStore holds (key, function) pairs in insertion order. A key may
// appear any number of times.
//
// A FuncStore must only be used by one goroutine. Push may be called while
// a sequence returned by Filter or FilterRev is being iterated; the new
// entry is not visited by that iteration. Clear ends any iteration in
// progress.
//
// The zero value is an empty FuncStore ready to use.
type FuncStore[K comparable, F any] struct {
	entries []entry[K, F]
	gen     uint64 // incremented by Clear
}

// Push appends fn under key.
func (s *FuncStore[K, F]) Push(key K, fn F) {
	s.entries = append(s.entries, entry[K, F]{key, fn})
}

// Filter returns the functions stored under key, in insertion order.
// The sequence may be iterated more than once.
func (s *FuncStore[K, F]) Filter(key K) iter.Seq[F] {
	return func(yield func(F) bool) {
		gen, n := s.gen, len(s.entries)
		for i := 0; i < n; i++ {
			if s.gen != gen {
				return
			}
			if e := s.entries[i]; e.key == key && !yield(e.fn) {
				return
			}
		}
	}
}

// FilterRev returns the functions stored under key, most recently pushed
// first. The sequence may be iterated more than once.
func (s *FuncStore[K, F]) FilterRev(key K) iter.Seq[F] {
	return func(yield func(F) bool) {
		gen := s.gen
		for i := len(s.entries) - 1; i >= 0; i-- {
			if s.gen != gen {
				return
			}
			if e := s.entries[i]; e.key == key && !yield(e.fn) {
				return
			}
		}
	}
}

// Len reports the number of stored entries across all keys.
func (s *FuncStore[K, F]) Len() int { return len(s.entries) }

// IsEmpty reports whether no entries are stored.
func (s *FuncStore[K, F]) IsEmpty() bool { return len(s.entries) == 0 }

// Clear removes all entries.
func (s *FuncStore[K, F]) Clear() {
	clear(s.entries)
	s.entries = nil
	s.gen++
}
