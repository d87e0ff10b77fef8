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

import "fmt"

// Add represents the sum of two expressions.
type Add struct {
	// Lhs and Rhs are the two operands being summed.
	Lhs Expr
	Rhs Expr
}

// Sum constructs an expression representing the sum of two expressions.
func Sum(lhs Expr, rhs Expr) Expr {
	return &Add{lhs, rhs}
}

// Children implementation for Expr interface.
func (p *Add) Children() []Expr {
	return []Expr{p.Lhs, p.Rhs}
}

// String implementation for Expr interface.
func (p *Add) String() string {
	return fmt.Sprintf("(%s + %s)", p.Lhs, p.Rhs)
}
