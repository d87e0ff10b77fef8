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

import (
	"strings"

	"github.com/stac-lang/go-stac/pkg/util"
)

// Access represents a read of a tensor at the coordinate formed by zero or
// more index variables (e.g. "A(i,j)").  An access of a scalar (order zero)
// tensor has no index variables.
type Access struct {
	// Name of the tensor being read.
	Tensor string
	// Index variables this access depends upon, in the order the tensor's
	// dimensions are accessed.
	Indices []string
}

// NewAccess constructs a tensor access for the given index variables.
func NewAccess(tensor string, indices ...string) *Access {
	return &Access{tensor, indices}
}

// Binds indicates whether the given index variable is among those this access
// depends upon.
func (p *Access) Binds(variable string) bool {
	return util.ContainsMatching(p.Indices, func(v string) bool { return v == variable })
}

// Children implementation for Expr interface.
func (p *Access) Children() []Expr {
	return nil
}

// String implementation for Expr interface.
func (p *Access) String() string {
	if len(p.Indices) == 0 {
		return p.Tensor
	}
	//
	return p.Tensor + "(" + strings.Join(p.Indices, ",") + ")"
}
