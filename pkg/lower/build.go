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
package lower

import (
	"fmt"
	"reflect"

	"github.com/stac-lang/go-stac/pkg/ir"
	"github.com/stac-lang/go-stac/pkg/util"
)

// BuildMergeLattice constructs the merge lattice describing how the operands
// of the given expression are merged when compiling the given index variable.
// Every expression compiled for a variable must yield at least one case;
// anything else indicates an internal failure and panics.  Reaching a bare
// immediate as a lattice-bearing node is not supported.
func BuildMergeLattice[T Iterator[T]](expr ir.Expr, indexVar string, schedule Iterators[T]) MergeLattice[T] {
	builder := latticeBuilder[T]{indexVar, schedule}
	//
	lattice := builder.build(expr)
	//
	if lattice.IsEmpty() {
		panic("every merge lattice should have at least one lattice point")
	}
	// Done
	return lattice.Unwrap()
}

// latticeBuilder captures the state threaded through the recursive traversal
// which builds a merge lattice: the index variable under compilation and the
// iteration schedule resolving accesses to iterators.
type latticeBuilder[T Iterator[T]] struct {
	indexVar string
	schedule Iterators[T]
}

// Build the (possibly undefined) lattice for a given subexpression.  A
// subexpression which the index variable does not contribute to yields the
// undefined lattice, and participates in its parent as a scalar operand.
func (p *latticeBuilder[T]) build(expr ir.Expr) util.Option[MergeLattice[T]] {
	switch e := expr.(type) {
	case *ir.Access:
		return p.buildAccess(e)
	case *ir.Neg:
		return p.buildUnary(ir.Negation, e.Arg)
	case *ir.Sqrt:
		return p.buildUnary(ir.SquareRoot, e.Arg)
	case *ir.Add:
		return p.buildBinary(ir.ADD, e.Lhs, e.Rhs)
	case *ir.Sub:
		return p.buildBinary(ir.SUB, e.Lhs, e.Rhs)
	case *ir.Mul:
		return p.buildBinary(ir.MUL, e.Lhs, e.Rhs)
	case *ir.Div:
		return p.buildBinary(ir.DIV, e.Lhs, e.Rhs)
	case *ir.Constant:
		panic("immediates are not supported as lattice-bearing nodes")
	default:
		name := reflect.TypeOf(expr).String()
		panic(fmt.Sprintf("unknown expression node \"%s\"", name))
	}
}

func (p *latticeBuilder[T]) buildAccess(expr *ir.Access) util.Option[MergeLattice[T]] {
	// Throw away accesses the index variable does not contribute to
	if !expr.Binds(p.indexVar) {
		return util.None[MergeLattice[T]]()
	}
	// Locate the variable within this access's iteration order
	path := p.schedule.Path(expr)
	//
	position, ok := path.Position(p.indexVar)
	if !ok {
		panic(fmt.Sprintf("index variable \"%s\" missing from tensor path of %s", p.indexVar, expr))
	}
	//
	iter := p.schedule.Iterator(expr, position)
	point := NewMergeLatticePoint([]T{iter}, []T{iter}, expr)
	// Done
	return util.Some(NewMergeLattice([]MergeLatticePoint[T]{point}))
}

// Build the lattice of a unary operator by rewriting each point of the
// operand's lattice to apply the operator to its expression.  An undefined
// operand stays undefined, leaving the enclosing binary operator to treat the
// whole node as a scalar.
func (p *latticeBuilder[T]) buildUnary(construct func(ir.Expr) ir.Expr, arg ir.Expr) util.Option[MergeLattice[T]] {
	lattice := p.build(arg)
	//
	if lattice.IsEmpty() {
		return lattice
	}
	//
	points := make([]MergeLatticePoint[T], lattice.Unwrap().Size())
	//
	for i, point := range lattice.Unwrap().Points() {
		points[i] = NewMergeLatticePoint(point.Iterators(), point.MergeIterators(), construct(point.Expr()))
	}
	//
	return util.Some(NewMergeLattice(points))
}

func (p *latticeBuilder[T]) buildBinary(op ir.BinaryOp, lhs ir.Expr, rhs ir.Expr) util.Option[MergeLattice[T]] {
	var a, b util.Option[MergeLattice[T]]
	// Immediates never bear a lattice of their own; they participate only as
	// scalar operands via the scaling cases below.
	if !ir.IsConstant(lhs) {
		a = p.build(lhs)
	}
	//
	if !ir.IsConstant(rhs) {
		b = p.build(rhs)
	}
	//
	switch {
	case a.HasValue() && b.HasValue():
		if op.Conjunctive() {
			return util.Some(Conjunction(op, a.Unwrap(), b.Unwrap()))
		}
		//
		return util.Some(Disjunction(op, a.Unwrap(), b.Unwrap()))
	case a.HasValue():
		// Right operand is scalar with respect to the index variable
		return util.Some(scaleRight(op, a.Unwrap(), rhs))
	case b.HasValue():
		// Left operand is scalar with respect to the index variable
		return util.Some(scaleLeft(op, lhs, b.Unwrap()))
	default:
		return util.None[MergeLattice[T]]()
	}
}
