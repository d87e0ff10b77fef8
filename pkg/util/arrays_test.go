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

import (
	"cmp"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_AppendAll_01(t *testing.T) {
	lhs := []int{1, 2}
	//
	assert.Equal(t, []int{1, 2, 3, 4}, AppendAll(lhs, 3, 4))
	// Original slice untouched
	assert.Equal(t, []int{1, 2}, lhs)
}

func Test_FindMatching_01(t *testing.T) {
	items := []int{3, 1, 4}
	//
	assert.Equal(t, uint(1), FindMatching(items, func(n int) bool { return n == 1 }))
	assert.Equal(t, uint(math.MaxUint), FindMatching(items, func(n int) bool { return n == 9 }))
}

func Test_RemoveMatching_01(t *testing.T) {
	items := []int{1, 2, 3, 2}
	//
	assert.Equal(t, []int{1, 3}, RemoveMatching(items, func(n int) bool { return n == 2 }))
}

func Test_RemoveMatching_02(t *testing.T) {
	// No matches leaves the slice untouched
	items := []int{1, 3}
	//
	assert.Equal(t, items, RemoveMatching(items, func(n int) bool { return n == 2 }))
}

func Test_Includes_01(t *testing.T) {
	assert.True(t, Includes([]int{1, 2, 3}, []int{2}, cmp.Compare))
	assert.True(t, Includes([]int{1, 2, 3}, []int{1, 3}, cmp.Compare))
	assert.True(t, Includes([]int{1, 2, 3}, []int{}, cmp.Compare))
	assert.False(t, Includes([]int{1, 2, 3}, []int{4}, cmp.Compare))
	assert.False(t, Includes([]int{2}, []int{1, 2}, cmp.Compare))
}

func Test_Includes_02(t *testing.T) {
	// Multiplicity is respected
	assert.True(t, Includes([]int{1, 1, 2}, []int{1, 1}, cmp.Compare))
	assert.False(t, Includes([]int{1, 2}, []int{1, 1}, cmp.Compare))
}

func Test_Includes_03(t *testing.T) {
	// Every multiset includes itself
	items := []int{1, 2, 2, 5}
	//
	assert.True(t, Includes(items, items, cmp.Compare))
}

func Test_Option_01(t *testing.T) {
	some := Some(10)
	//
	assert.True(t, some.HasValue())
	assert.False(t, some.IsEmpty())
	assert.Equal(t, 10, some.Unwrap())
}

func Test_Option_02(t *testing.T) {
	none := None[int]()
	//
	assert.False(t, none.HasValue())
	assert.True(t, none.IsEmpty())
	assert.Panics(t, func() { none.Unwrap() })
}
