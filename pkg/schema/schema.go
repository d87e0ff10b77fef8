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
package schema

import "github.com/pkg/errors"

// Tensor declares the shape of one tensor: its name and the storage format of
// each of its dimensions.  A scalar is a tensor of order zero.
type Tensor struct {
	// Name of this tensor.
	Name string
	// Formats gives the storage format of each dimension, in access order.
	Formats []LevelFormat
}

// Order returns the number of dimensions of this tensor.
func (p Tensor) Order() uint {
	return uint(len(p.Formats))
}

// Schema collects the tensor declarations an expression is compiled against.
type Schema struct {
	tensors map[string]Tensor
}

// NewSchema constructs an empty schema.
func NewSchema() *Schema {
	return &Schema{make(map[string]Tensor)}
}

// Declare a tensor with the given per-dimension formats.  Declaring the same
// name twice is an error.
func (p *Schema) Declare(name string, formats ...LevelFormat) error {
	if _, ok := p.tensors[name]; ok {
		return errors.Errorf("tensor %q already declared", name)
	}
	//
	p.tensors[name] = Tensor{name, formats}
	//
	return nil
}

// Tensor returns the declaration of the named tensor, if one exists.
func (p *Schema) Tensor(name string) (Tensor, bool) {
	tensor, ok := p.tensors[name]
	return tensor, ok
}
