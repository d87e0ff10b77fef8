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
package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Op_01(t *testing.T) {
	// Multiplicative operators combine conjunctively
	assert.False(t, ADD.Conjunctive())
	assert.False(t, SUB.Conjunctive())
	assert.True(t, MUL.Conjunctive())
	assert.True(t, DIV.Conjunctive())
}

func Test_Op_02(t *testing.T) {
	var (
		lhs = NewAccess("A", "i")
		rhs = NewAccess("B", "i")
	)
	//
	assert.Equal(t, "(A(i) + B(i))", ADD.New(lhs, rhs).String())
	assert.Equal(t, "(A(i) - B(i))", SUB.New(lhs, rhs).String())
	assert.Equal(t, "(A(i) * B(i))", MUL.New(lhs, rhs).String())
	assert.Equal(t, "(A(i) / B(i))", DIV.New(lhs, rhs).String())
}

func Test_Access_01(t *testing.T) {
	access := NewAccess("A", "i", "j")
	//
	assert.True(t, access.Binds("i"))
	assert.True(t, access.Binds("j"))
	assert.False(t, access.Binds("k"))
	// Scalar accesses bind nothing
	assert.False(t, NewAccess("c").Binds("i"))
}

func Test_Accesses_01(t *testing.T) {
	expr, err := Parse("(+ (* (A i) (B i)) (A i))")
	require.NoError(t, err)
	//
	accesses := Accesses(expr)
	require.Len(t, accesses, 3)
	// Evaluation order, with repeated reads kept distinct
	assert.Equal(t, "A", accesses[0].Tensor)
	assert.Equal(t, "B", accesses[1].Tensor)
	assert.Equal(t, "A", accesses[2].Tensor)
	assert.NotSame(t, accesses[0], accesses[2])
}

func Test_Constant_01(t *testing.T) {
	assert.True(t, IsConstant(Const(1)))
	assert.False(t, IsConstant(NewAccess("A", "i")))
	assert.Equal(t, "0.5", Const(0.5).String())
}
