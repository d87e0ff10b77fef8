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

func Test_Parse_01(t *testing.T) {
	checkParse(t, "(A i j)", "A(i,j)")
}

func Test_Parse_02(t *testing.T) {
	// Scalar access
	checkParse(t, "c", "c")
}

func Test_Parse_03(t *testing.T) {
	checkParse(t, "2.5", "2.5")
}

func Test_Parse_04(t *testing.T) {
	checkParse(t, "(+ (A i) (B i))", "(A(i) + B(i))")
}

func Test_Parse_05(t *testing.T) {
	checkParse(t, "(- (A i) (B i))", "(A(i) - B(i))")
}

func Test_Parse_06(t *testing.T) {
	checkParse(t, "(* (A i j) (B j k))", "(A(i,j) * B(j,k))")
}

func Test_Parse_07(t *testing.T) {
	checkParse(t, "(/ (A i) 2)", "(A(i) / 2)")
}

func Test_Parse_08(t *testing.T) {
	checkParse(t, "(neg (sqrt (A i)))", "-sqrt(A(i))")
}

func Test_Parse_09(t *testing.T) {
	// Nested expression
	checkParse(t, "(+ (* (A i j) (B i j)) (C i j))", "((A(i,j) * B(i,j)) + C(i,j))")
}

func Test_Parse_10(t *testing.T) {
	// Commas are whitespace
	checkParse(t, "(A i, j)", "A(i,j)")
}

func Test_Parse_11(t *testing.T) {
	expr, err := Parse("(+ (A i) (B i))")
	require.NoError(t, err)
	// Structure, not just rendering
	add, ok := expr.(*Add)
	require.True(t, ok)
	//
	lhs, ok := add.Lhs.(*Access)
	require.True(t, ok)
	assert.Equal(t, "A", lhs.Tensor)
	assert.Equal(t, []string{"i"}, lhs.Indices)
}

func Test_ParseErr_01(t *testing.T) {
	checkParseErr(t, "")
}

func Test_ParseErr_02(t *testing.T) {
	// Trailing tokens
	checkParseErr(t, "(A i) (B i)")
}

func Test_ParseErr_03(t *testing.T) {
	// Unbalanced parentheses
	checkParseErr(t, "(+ (A i) (B i)")
}

func Test_ParseErr_04(t *testing.T) {
	checkParseErr(t, ")")
}

func Test_ParseErr_05(t *testing.T) {
	// Missing operand
	checkParseErr(t, "(+ (A i))")
}

func Test_ParseErr_06(t *testing.T) {
	// Nested list where an index variable is expected
	checkParseErr(t, "(A (B i))")
}

func checkParse(t *testing.T, input string, expected string) {
	t.Helper()
	//
	expr, err := Parse(input)
	require.NoError(t, err)
	assert.Equal(t, expected, expr.String())
}

func checkParseErr(t *testing.T, input string) {
	t.Helper()
	//
	_, err := Parse(input)
	assert.Error(t, err)
}
