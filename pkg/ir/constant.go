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

import "strconv"

// Constant represents a numeric immediate within an expression.  Constants
// only ever occur as the scalar operand of a binary operator; they never
// drive iteration.
type Constant struct {
	// Value of this immediate.
	Value float64
}

// Const constructs an expression representing a given immediate.
func Const(value float64) *Constant {
	return &Constant{value}
}

// IsConstant checks whether an arbitrary expression corresponds to an
// immediate or not.
func IsConstant(expr Expr) bool {
	_, ok := expr.(*Constant)
	return ok
}

// Children implementation for Expr interface.
func (p *Constant) Children() []Expr {
	return nil
}

// String implementation for Expr interface.
func (p *Constant) String() string {
	return strconv.FormatFloat(p.Value, 'g', -1, 64)
}
