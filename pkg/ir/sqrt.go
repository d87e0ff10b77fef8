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

// Sqrt represents the square root of an expression.
type Sqrt struct {
	// Arg is the expression being rooted.
	Arg Expr
}

// SquareRoot constructs an expression representing the square root of an
// expression.
func SquareRoot(arg Expr) Expr {
	return &Sqrt{arg}
}

// Children implementation for Expr interface.
func (p *Sqrt) Children() []Expr {
	return []Expr{p.Arg}
}

// String implementation for Expr interface.
func (p *Sqrt) String() string {
	return fmt.Sprintf("sqrt(%s)", p.Arg)
}
