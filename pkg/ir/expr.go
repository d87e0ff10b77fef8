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

// Expr represents a node within a tensor index expression.  Expressions are
// immutable trees built from tensor accesses, numeric immediates and
// arithmetic operators.  Lowering never copies subtrees; anything annotating
// an expression (e.g. a merge lattice) holds shared references into the tree.
type Expr interface {
	// Children returns the operand subexpressions of this node (nil for leaf
	// nodes).
	Children() []Expr
	// String returns a human-readable rendering of this expression.  This is
	// for diagnostics only, and is not a parseable format.
	String() string
}

// BinaryOp identifies one of the binary arithmetic operators.  Operators are
// passed around as values during lowering, where they serve two purposes:
// constructing combined expression nodes, and determining whether operands
// combine conjunctively (multiplication-like) or disjunctively
// (addition-like).
type BinaryOp uint8

const (
	// ADD represents the addition operator.
	ADD BinaryOp = iota
	// SUB represents the subtraction operator.
	SUB
	// MUL represents the multiplication operator.
	MUL
	// DIV represents the division operator.
	DIV
)

// Conjunctive indicates whether this operator combines its operands
// conjunctively.  A conjunctive operator is only active where both operands
// are active, whereas a disjunctive operator is active where either is.
func (p BinaryOp) Conjunctive() bool {
	return p == MUL || p == DIV
}

// New constructs the expression node applying this operator to the given
// operands.
func (p BinaryOp) New(lhs Expr, rhs Expr) Expr {
	switch p {
	case ADD:
		return Sum(lhs, rhs)
	case SUB:
		return Subtract(lhs, rhs)
	case MUL:
		return Product(lhs, rhs)
	case DIV:
		return Quotient(lhs, rhs)
	default:
		// Should be unreachable as no other operators exist.
		panic("unknown binary operator")
	}
}

// String returns the operator symbol.
func (p BinaryOp) String() string {
	switch p {
	case ADD:
		return "+"
	case SUB:
		return "-"
	case MUL:
		return "*"
	case DIV:
		return "/"
	default:
		panic("unknown binary operator")
	}
}

// Accesses returns all tensor access nodes contained within the given
// expression, in evaluation order.
func Accesses(expr Expr) []*Access {
	var accesses []*Access
	//
	if a, ok := expr.(*Access); ok {
		return []*Access{a}
	}
	//
	for _, child := range expr.Children() {
		accesses = append(accesses, Accesses(child)...)
	}
	//
	return accesses
}
