// This file is part of go-optspec.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package sliceiterator - builds a forward iterator over a slice that keeps
// track of the current index.
package sliceiterator

// Iterator - iterator data
type Iterator[T any] struct {
	data []T
	idx  int
}

// New - builds an Iterator positioned before the first element.
func New[T any](s []T) *Iterator[T] {
	return &Iterator[T]{data: s, idx: -1}
}

// Index - return current index.
func (a *Iterator[T]) Index() int {
	return a.idx
}

// Next - moves the index forward and returns a bool to indicate if there is another value.
func (a *Iterator[T]) Next() bool {
	if a.idx < len(a.data) {
		a.idx++
	}
	return a.idx < len(a.data)
}

// Value - returns the value at the current index or the zero value when the
// iterator is not positioned on an element.
func (a *Iterator[T]) Value() T {
	var zero T
	if a.idx < 0 || a.idx >= len(a.data) {
		return zero
	}
	return a.data[a.idx]
}

// Remaining - Get all remaining values index inclusive.
func (a *Iterator[T]) Remaining() []T {
	if a.idx < 0 {
		return a.data
	}
	if a.idx >= len(a.data) {
		return []T{}
	}
	return a.data[a.idx:]
}
