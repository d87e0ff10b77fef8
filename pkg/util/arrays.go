// Copyright The go-stac Authors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package util

import "math"

// Predicate abstracts the notion of a function which identifies something.
type Predicate[T any] func(T) bool

// AppendAll creates a new slice containing the result of appending the given
// items onto the end of the given slice.  Observe that, unlike the built-in
// append() function, this will never modify the given slice.
func AppendAll[T any](lhs []T, rhs ...T) []T {
	n := len(lhs)
	m := len(rhs)
	// Make space for new slice
	nslice := make([]T, n+m)
	// Copy left values
	copy(nslice[:n], lhs)
	// Copy right values
	copy(nslice[n:], rhs)
	// Done
	return nslice
}

// FindMatching determines the index of first matching item in a given array, or
// returns math.MaxUint otherwise.
func FindMatching[T any](items []T, predicate Predicate[T]) uint {
	for i, item := range items {
		if predicate(item) {
			return uint(i)
		}
	}
	//
	return math.MaxUint
}

// ContainsMatching checks whether a given array contains an item matching a given predicate.
func ContainsMatching[T any](items []T, predicate Predicate[T]) bool {
	for _, item := range items {
		if predicate(item) {
			return true
		}
	}
	//
	return false
}

// CountMatching counts the number of items in a given array matching a given predicate.
func CountMatching[T any](items []T, predicate Predicate[T]) uint {
	count := uint(0)
	//
	for _, item := range items {
		if predicate(item) {
			count++
		}
	}
	//
	return count
}

// RemoveMatching removes all elements from an array matching the given item.
func RemoveMatching[T any](items []T, predicate Predicate[T]) []T {
	count := 0
	// Check how many matches we have
	for _, r := range items {
		if !predicate(r) {
			count++
		}
	}
	// Check for stuff to remove
	if count != len(items) {
		nitems := make([]T, count)
		j := 0
		// Remove items
		for i, r := range items {
			if !predicate(r) {
				nitems[j] = items[i]
				j++
			}
		}
		//
		items = nitems
	}
	//
	return items
}

// Includes checks whether every element of one sorted sequence (rhs) occurs
// within another sorted sequence (lhs), respecting multiplicity.  That is,
// Includes treats both sequences as multisets: an element occurring twice in
// rhs must occur at least twice in lhs.  Both sequences must be sorted with
// respect to the given comparator.
func Includes[T any](lhs []T, rhs []T, cmp func(T, T) int) bool {
	i := 0
	//
	for _, item := range rhs {
		// Advance past smaller elements
		for i < len(lhs) && cmp(lhs[i], item) < 0 {
			i++
		}
		// Check for a match
		if i >= len(lhs) || cmp(lhs[i], item) != 0 {
			return false
		}
		// Each match is consumed exactly once
		i++
	}
	//
	return true
}
