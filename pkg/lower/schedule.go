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
	"math"

	"github.com/pkg/errors"
	"github.com/stac-lang/go-stac/pkg/ir"
	"github.com/stac-lang/go-stac/pkg/schema"
	"github.com/stac-lang/go-stac/pkg/util"
)

// TensorPath describes the ordered sequence of index variables one tensor
// access is iterated over.  The position of a variable within the path
// identifies the tensor level driven by that variable.
type TensorPath struct {
	// Access this path belongs to.
	Access *ir.Access
	// Variables iterated over, in order.
	Variables []string
}

// Position returns the position of the given index variable within this path,
// or false if the variable does not occur.
func (p TensorPath) Position(variable string) (uint, bool) {
	index := util.FindMatching(p.Variables, func(v string) bool { return v == variable })
	//
	return index, index != math.MaxUint
}

// IterationSchedule maps every tensor access of an expression to its tensor
// path, and resolves (access, position) pairs to the level iterators which
// drive them.  It implements the Iterators interface over LevelIterator.
type IterationSchedule struct {
	schema *schema.Schema
	paths  map[*ir.Access]TensorPath
}

// NewIterationSchedule constructs the iteration schedule for a given
// expression against a given schema.  Every access must read a declared
// tensor with as many index variables as the tensor has dimensions.
func NewIterationSchedule(expr ir.Expr, sc *schema.Schema) (*IterationSchedule, error) {
	paths := make(map[*ir.Access]TensorPath)
	//
	for _, access := range ir.Accesses(expr) {
		tensor, ok := sc.Tensor(access.Tensor)
		//
		if !ok {
			return nil, errors.Errorf("tensor %q not declared", access.Tensor)
		} else if uint(len(access.Indices)) != tensor.Order() {
			return nil, errors.Errorf("tensor %q has order %d, accessed with %d index variables",
				access.Tensor, tensor.Order(), len(access.Indices))
		}
		//
		paths[access] = TensorPath{access, access.Indices}
	}
	// Done
	return &IterationSchedule{sc, paths}, nil
}

// Path implementation for Iterators interface.
func (p *IterationSchedule) Path(access *ir.Access) TensorPath {
	path, ok := p.paths[access]
	//
	if !ok {
		panic("access not part of this iteration schedule")
	}
	//
	return path
}

// Iterator implementation for Iterators interface.
func (p *IterationSchedule) Iterator(access *ir.Access, position uint) LevelIterator {
	tensor, _ := p.schema.Tensor(access.Tensor)
	//
	if position >= tensor.Order() {
		panic("iterator position out of bounds")
	}
	//
	return LevelIterator{tensor.Name, position, tensor.Formats[position]}
}
