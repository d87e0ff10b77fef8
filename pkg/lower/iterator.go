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

	"github.com/stac-lang/go-stac/pkg/ir"
	"github.com/stac-lang/go-stac/pkg/schema"
)

// Iterator abstracts the capability of iterating one dimension of one tensor.
// Iterators are opaque handles supplied by the storage layer: the lattice
// machinery only requires that they are totally ordered, comparable for
// equality (two iterators are the same entity iff they compare equal) and
// know whether their dimension is dense.
type Iterator[T any] interface {
	// Compare returns a negative number, zero or a positive number depending
	// on whether this iterator is ordered before, equal to, or after the
	// given iterator.
	Compare(T) int
	// IsDense indicates whether this iterator ranges over every coordinate of
	// its dimension, rather than only the nonzero ones.
	IsDense() bool
	// String returns a human-readable rendering of this iterator.
	String() string
}

// Iterators resolves tensor accesses to the iterators which drive them.  For
// each access it supplies the ordered index variables the access is iterated
// over (its tensor path), and for each position within that order, the
// corresponding iterator.
type Iterators[T Iterator[T]] interface {
	// Path returns the tensor path of the given access.
	Path(access *ir.Access) TensorPath
	// Iterator returns the iterator driving the given position of the given
	// access's tensor path.
	Iterator(access *ir.Access, position uint) T
}

// LevelIterator is the storage-backed iterator over a single level of a
// tensor, identified by the tensor's name and the position of the level
// within its access order.  It is the concrete Iterator used by the
// iteration schedule.
type LevelIterator struct {
	// Tensor this iterator belongs to.
	Tensor string
	// Level within the tensor's access order.
	Level uint
	// Format of the level being iterated.
	Format schema.LevelFormat
}

// Compare implementation for Iterator interface.  Iterators are ordered by
// tensor name, then level.
func (p LevelIterator) Compare(other LevelIterator) int {
	switch {
	case p.Tensor < other.Tensor:
		return -1
	case p.Tensor > other.Tensor:
		return 1
	case p.Level < other.Level:
		return -1
	case p.Level > other.Level:
		return 1
	default:
		return 0
	}
}

// IsDense implementation for Iterator interface.
func (p LevelIterator) IsDense() bool {
	return p.Format.IsDense()
}

// String implementation for Iterator interface.
func (p LevelIterator) String() string {
	return fmt.Sprintf("%s%d", p.Tensor, p.Level)
}
