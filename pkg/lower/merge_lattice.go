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
	"slices"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/stac-lang/go-stac/pkg/ir"
	"github.com/stac-lang/go-stac/pkg/util"
)

// EXPLODING_POINT_COUNT determines the number of candidate points beyond
// which a disjunction is logged as "exploding".  This is essentially an aid
// to debugging.
var EXPLODING_POINT_COUNT = uint(16)

// ============================================================================
// MergeLatticePoint
// ============================================================================

// MergeLatticePoint represents one case within the case analysis described by
// a merge lattice: a combination of iterators being simultaneously active,
// together with the subexpression which is evaluated while they are.  Points
// are immutable once constructed.
type MergeLatticePoint[T Iterator[T]] struct {
	// All iterators whose presence defines this case.  When points are
	// combined their iterator sequences are concatenated as-is, so duplicates
	// can occur.
	iterators []T
	// The non-dense iterators of this case or, if every iterator is dense, a
	// single representative dense iterator.  These establish the iteration
	// range of the loop.
	rangeIterators []T
	// The iterators which must actually be compared and stepped to detect
	// coordinate matches in this case.  This is either a single dense
	// iterator, or one or more iterators none of which is dense.
	mergeIterators []T
	// Subexpression evaluated while this case is active.
	expr ir.Expr
}

// NewMergeLatticePoint constructs a lattice point merging the given
// iterators.  The range iterators are derived here and never independently
// mutated.
func NewMergeLatticePoint[T Iterator[T]](iterators []T, mergeIterators []T, expr ir.Expr) MergeLatticePoint[T] {
	return MergeLatticePoint[T]{iterators, Simplify(iterators), mergeIterators, expr}
}

// Iterators returns all iterators merged by this point.
func (p MergeLatticePoint[T]) Iterators() []T {
	return p.iterators
}

// RangeIterators returns the iterators establishing the iteration range of
// this point.
func (p MergeLatticePoint[T]) RangeIterators() []T {
	return p.rangeIterators
}

// MergeIterators returns the iterators which must be compared and stepped to
// drive this point.
func (p MergeLatticePoint[T]) MergeIterators() []T {
	return p.mergeIterators
}

// Expr returns the subexpression evaluated while this point is active.
func (p MergeLatticePoint[T]) Expr() ir.Expr {
	return p.expr
}

// Equals returns true if both points merge the same iterator sequence.
// Expression and merge-iterator content deliberately play no part in point
// equality: the iterator sequence alone identifies a case, which is all the
// dominance machinery compares.
func (p MergeLatticePoint[T]) Equals(other MergeLatticePoint[T]) bool {
	if len(p.iterators) != len(other.iterators) {
		return false
	}
	//
	for i := range p.iterators {
		if p.iterators[i].Compare(other.iterators[i]) != 0 {
			return false
		}
	}
	//
	return true
}

// String returns the iterator-conjunction rendering of this point, such as
// "[A0 ∧ B0]".  Display-only.
func (p MergeLatticePoint[T]) String() string {
	names := make([]string, len(p.iterators))
	//
	for i, iter := range p.iterators {
		names[i] = iter.String()
	}
	//
	return "[" + strings.Join(names, " ∧ ") + "]"
}

// Simplify removes all dense iterators from the given sequence or, should
// that leave nothing, returns the sequence's first iterator as a
// representative.  Simplifying an empty sequence is an internal failure.
func Simplify[T Iterator[T]](iterators []T) []T {
	if len(iterators) == 0 {
		panic("cannot simplify an empty iterator sequence")
	}
	// Remove dense iterators
	simplified := util.RemoveMatching(iterators, func(iter T) bool { return iter.IsDense() })
	// If there are only dense iterators then keep the first one
	if len(simplified) == 0 {
		simplified = []T{iterators[0]}
	}
	//
	return simplified
}

// ============================================================================
// Lattice-point algebra
// ============================================================================

// PointConjunction merges two lattice points under a conjunctive
// (multiplication-like) operator.
func PointConjunction[T Iterator[T]](op ir.BinaryOp, a MergeLatticePoint[T], b MergeLatticePoint[T]) MergeLatticePoint[T] {
	return mergePoints(op, a, b, true)
}

// PointDisjunction merges two lattice points under a disjunctive
// (addition-like) operator.
func PointDisjunction[T Iterator[T]](op ir.BinaryOp, a MergeLatticePoint[T], b MergeLatticePoint[T]) MergeLatticePoint[T] {
	return mergePoints(op, a, b, false)
}

func mergePoints[T Iterator[T]](op ir.BinaryOp, a MergeLatticePoint[T], b MergeLatticePoint[T],
	conjunctive bool) MergeLatticePoint[T] {
	// Concatenate the iterator sequences, preserving order and duplicates
	iterators := util.AppendAll(a.Iterators(), b.Iterators()...)
	// Combine the subexpressions
	expr := op.New(a.Expr(), b.Expr())
	//
	var (
		mergeIterators []T
		aMergeIters    = a.MergeIterators()
		bMergeIters    = b.MergeIterators()
	)
	// A merge iterator list consists of either one dense or n sparse iterators.
	checkMergeIterators(aMergeIters)
	checkMergeIterators(bMergeIters)
	//
	switch {
	case !aMergeIters[0].IsDense() && !bMergeIters[0].IsDense():
		// Both merge iterator lists consist of sparse iterators, so the
		// result is the union of those lists: every sparse source must be
		// compared to find the next matching or minimal coordinate.
		mergeIterators = util.AppendAll(aMergeIters, bMergeIters...)
	case aMergeIters[0].IsDense() && bMergeIters[0].IsDense():
		// Both merge iterator lists consist of a dense iterator, and either
		// one suffices since dense iteration is driven by position.
		mergeIterators = aMergeIters
	case conjunctive:
		// One side dense, the other sparse.  A dense factor contributes at
		// every coordinate, so only the sparse side's coordinates need be
		// visited.
		if aMergeIters[0].IsDense() {
			mergeIterators = bMergeIters
		} else {
			mergeIterators = aMergeIters
		}
	default:
		// One side dense, the other sparse, combined disjunctively.  The sum
		// is not guaranteed zero off the sparse side's coordinates, so the
		// full dense domain must be enumerated.
		if aMergeIters[0].IsDense() {
			mergeIterators = aMergeIters
		} else {
			mergeIterators = bMergeIters
		}
	}
	//
	return NewMergeLatticePoint(iterators, mergeIterators, expr)
}

func checkMergeIterators[T Iterator[T]](iterators []T) {
	var denseCount = util.CountMatching(iterators, func(iter T) bool { return iter.IsDense() })
	// Either a single dense iterator, or one or more all-sparse iterators.
	if len(iterators) == 0 || (len(iterators) > 1 && denseCount != 0) {
		panic("merge iterators must be a single dense iterator or an all-sparse list")
	}
}

// ============================================================================
// MergeLattice
// ============================================================================

// MergeLattice enumerates every combination of sparse and dense iteration
// states ("cases") the loop body generated for one index variable must
// handle, together with the subexpression active in each case.  The first
// point is distinguished: it is the full case merging every operand, and its
// iterators and expression are reported as those of the whole lattice.  A
// lattice with no points is undefined and its accessors must not be used.
type MergeLattice[T Iterator[T]] struct {
	points []MergeLatticePoint[T]
}

// NewMergeLattice constructs a lattice from the given points.
func NewMergeLattice[T Iterator[T]](points []MergeLatticePoint[T]) MergeLattice[T] {
	return MergeLattice[T]{points}
}

// Size returns the number of points within this lattice.
func (p MergeLattice[T]) Size() uint {
	return uint(len(p.points))
}

// Defined indicates whether this lattice contains at least one point.
func (p MergeLattice[T]) Defined() bool {
	return len(p.points) > 0
}

// Point returns the ith point of this lattice.
func (p MergeLattice[T]) Point(index uint) MergeLatticePoint[T] {
	return p.points[index]
}

// Points returns all points of this lattice, in order.
func (p MergeLattice[T]) Points() []MergeLatticePoint[T] {
	return p.points
}

// Iterators returns the iterators merged by this lattice, which are those
// merged by its first point.
func (p MergeLattice[T]) Iterators() []T {
	if len(p.points) == 0 {
		panic("no lattice points in the merge lattice")
	}
	//
	return p.points[0].Iterators()
}

// Expr returns the expression merged by this lattice, which is the expression
// of its first point.
func (p MergeLattice[T]) Expr() ir.Expr {
	if len(p.points) == 0 {
		panic("no lattice points in the merge lattice")
	}
	//
	return p.points[0].Expr()
}

// SubLatticeOf returns the lattice of all points dominated by the given
// point.  A point lp dominates lq iff lq's iterators form a sub-multiset of
// lp's; these are the cases which remain relevant once lp has been entered.
func (p MergeLattice[T]) SubLatticeOf(lp MergeLatticePoint[T]) MergeLattice[T] {
	var (
		dominated   []MergeLatticePoint[T]
		lpIterators = sortedIterators(lp.Iterators())
	)
	//
	for _, lq := range p.points {
		lqIterators := sortedIterators(lq.Iterators())
		//
		if util.Includes(lpIterators, lqIterators, compareIterators[T]) {
			dominated = append(dominated, lq)
		}
	}
	//
	return NewMergeLattice(dominated)
}

// Equals returns true if both lattices hold pointwise-equal points in the
// same order.
func (p MergeLattice[T]) Equals(other MergeLattice[T]) bool {
	if len(p.points) != len(other.points) {
		return false
	}
	//
	for i := range p.points {
		if !p.points[i].Equals(other.points[i]) {
			return false
		}
	}
	//
	return true
}

// String returns this lattice rendered as the join of its points'
// iterator-conjunction renderings, such as "[A0 ∧ B0] ∨ [B0]".  Display-only.
func (p MergeLattice[T]) String() string {
	names := make([]string, len(p.points))
	//
	for i, point := range p.points {
		names[i] = point.String()
	}
	//
	return strings.Join(names, " ∨ ")
}

// ============================================================================
// Lattice algebra
// ============================================================================

// Conjunction combines two lattices under a conjunctive (multiplication-like)
// operator.  A conjunctive combination is only active where both operands are
// simultaneously active, so the result is exactly the pairwise conjunction of
// every point of a with every point of b, and nothing else.
func Conjunction[T Iterator[T]](op ir.BinaryOp, a MergeLattice[T], b MergeLattice[T]) MergeLattice[T] {
	var points []MergeLatticePoint[T]
	// Append all combinations of a and b lattice points
	for _, aPoint := range a.Points() {
		for _, bPoint := range b.Points() {
			points = append(points, PointConjunction(op, aPoint, bPoint))
		}
	}
	//
	return NewMergeLattice(points)
}

// Disjunction combines two lattices under a disjunctive (addition-like)
// operator.  An additive combination can be active from either side alone or
// both, so the result holds the pairwise disjunctions of the points of a and
// b, followed by the points of a, followed by the points of b.  Candidates
// missing a dense iterator of the first (full) point are then pruned away:
// exhausting a dense iterator drops the whole merged result to zero, so no
// reachable case can omit one.
func Disjunction[T Iterator[T]](op ir.BinaryOp, a MergeLattice[T], b MergeLattice[T]) MergeLattice[T] {
	var allPoints []MergeLatticePoint[T]
	// Append all combinations of the lattice points of a and b
	for _, aPoint := range a.Points() {
		for _, bPoint := range b.Points() {
			allPoints = append(allPoints, PointDisjunction(op, aPoint, bPoint))
		}
	}
	// Append the lattice points of a
	allPoints = append(allPoints, a.Points()...)
	// Append the lattice points of b
	allPoints = append(allPoints, b.Points()...)
	//
	if len(allPoints) == 0 {
		panic("a lattice must have at least one point")
	}
	//
	if uint(len(allPoints)) > EXPLODING_POINT_COUNT {
		log.Debug("exploding merge lattice (", len(allPoints), " candidate points) in disjunction \"", op, "\"")
	}
	// Prune points missing a dense iterator of the first point
	var (
		denseIterators = getDenseIterators(allPoints[0].Iterators())
		points         []MergeLatticePoint[T]
	)
	//
	for _, point := range allPoints {
		missingDenseIterator := false
		//
		for _, denseIterator := range denseIterators {
			if !containsIterator(point.Iterators(), denseIterator) {
				missingDenseIterator = true
				break
			}
		}
		//
		if !missingDenseIterator {
			points = append(points, point)
		}
	}
	//
	lattice := NewMergeLattice(points)
	//
	if !lattice.Defined() {
		panic("no lattice points survived dense iterator pruning")
	}
	//
	return lattice
}

// Scale every point of a lattice by a side expression which does not itself
// drive iteration, rewriting each point's expression to apply the operator
// between the scalar and the point's expression.
func scaleLeft[T Iterator[T]](op ir.BinaryOp, scalar ir.Expr, lattice MergeLattice[T]) MergeLattice[T] {
	return scale(op, lattice, scalar, true)
}

func scaleRight[T Iterator[T]](op ir.BinaryOp, lattice MergeLattice[T], scalar ir.Expr) MergeLattice[T] {
	return scale(op, lattice, scalar, false)
}

func scale[T Iterator[T]](op ir.BinaryOp, lattice MergeLattice[T], scalar ir.Expr, leftScale bool) MergeLattice[T] {
	scaledPoints := make([]MergeLatticePoint[T], lattice.Size())
	//
	for i, point := range lattice.Points() {
		var scaledExpr ir.Expr
		//
		if leftScale {
			scaledExpr = op.New(scalar, point.Expr())
		} else {
			scaledExpr = op.New(point.Expr(), scalar)
		}
		//
		scaledPoints[i] = NewMergeLatticePoint(point.Iterators(), point.MergeIterators(), scaledExpr)
	}
	//
	return NewMergeLattice(scaledPoints)
}

// ============================================================================
// Helpers
// ============================================================================

func getDenseIterators[T Iterator[T]](iterators []T) []T {
	var dense []T
	//
	for _, iter := range iterators {
		if iter.IsDense() {
			dense = append(dense, iter)
		}
	}
	//
	return dense
}

func containsIterator[T Iterator[T]](iterators []T, item T) bool {
	return util.ContainsMatching(iterators, func(iter T) bool { return iter.Compare(item) == 0 })
}

func sortedIterators[T Iterator[T]](iterators []T) []T {
	sorted := slices.Clone(iterators)
	slices.SortFunc(sorted, compareIterators[T])
	//
	return sorted
}

func compareIterators[T Iterator[T]](lhs T, rhs T) int {
	return lhs.Compare(rhs)
}
