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

// LevelFormat describes how one dimension (level) of a tensor is stored, and
// hence how it can be iterated.  A dense level materialises every coordinate;
// a sparse level materialises only the coordinates of nonzero values.
type LevelFormat uint8

const (
	// DENSE indicates every coordinate along this level is present, and
	// iteration is driven by position rather than coordinate comparison.
	DENSE LevelFormat = iota
	// SPARSE indicates only nonzero coordinates along this level are present.
	SPARSE
)

// IsDense indicates whether this level materialises every coordinate.
func (p LevelFormat) IsDense() bool {
	return p == DENSE
}

// String returns the single-letter rendering of this format ("d" or "s").
func (p LevelFormat) String() string {
	if p == DENSE {
		return "d"
	}
	//
	return "s"
}

// ParseFormat parses a per-level format string, such as "ds" for a tensor
// whose first level is dense and whose second is sparse.
func ParseFormat(input string) ([]LevelFormat, error) {
	formats := make([]LevelFormat, len(input))
	//
	for i, c := range input {
		switch c {
		case 'd':
			formats[i] = DENSE
		case 's':
			formats[i] = SPARSE
		default:
			return nil, errors.Errorf("unknown level format %q in %q", c, input)
		}
	}
	//
	return formats, nil
}
