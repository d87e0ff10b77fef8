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
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stac-lang/go-stac/pkg/ir"
	"github.com/stac-lang/go-stac/pkg/lower"
	"golang.org/x/term"
)

// Colour used when rendering dense iterators.
var denseColour = color.New(color.FgCyan, color.Bold)

// latticeCmd displays the merge lattice constructed for each index variable
// of an expression.  This is a debugging aid for inspecting how the sparsity
// patterns of the operands combine.
var latticeCmd = &cobra.Command{
	Use:   "lattice [flags] expr index_var...",
	Short: "Display the merge lattice for each index variable of an expression.",
	Long: `Display the merge lattice constructed for each given index variable of a
tensor expression.  Tensors are declared with the --tensor flag, giving a
per-dimension storage format (d=dense, s=sparse).  For example:

  go-stac lattice -t A:s -t B:d "(+ (A i) (B i))" i`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		// Disable colouring unless attached to a terminal
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			color.NoColor = true
		}
		// Parse tensor declarations
		sc := readSchema(getStringArray(cmd, "tensor"))
		// Parse the expression
		expr, err := ir.Parse(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		// Construct the iteration schedule
		schedule, err := lower.NewIterationSchedule(expr, sc)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		// Build and print the lattice of each index variable
		for _, indexVar := range args[1:] {
			lattice := lower.BuildMergeLattice[lower.LevelIterator](expr, indexVar, schedule)
			fmt.Printf("%s: %s\n", indexVar, renderLattice(lattice))
		}
	},
}

func init() {
	rootCmd.AddCommand(latticeCmd)
	latticeCmd.Flags().StringArrayP("tensor", "t", nil, "declare a tensor and its per-dimension formats (e.g. \"A:ds\")")
}

// Render a lattice as the join of its points, colouring dense iterators.
func renderLattice(lattice lower.MergeLattice[lower.LevelIterator]) string {
	points := make([]string, lattice.Size())
	//
	for i, point := range lattice.Points() {
		points[i] = renderPoint(point)
	}
	//
	return strings.Join(points, " ∨ ")
}

func renderPoint(point lower.MergeLatticePoint[lower.LevelIterator]) string {
	iterators := make([]string, len(point.Iterators()))
	//
	for i, iter := range point.Iterators() {
		if iter.IsDense() {
			iterators[i] = denseColour.Sprint(iter.String())
		} else {
			iterators[i] = iter.String()
		}
	}
	//
	return "[" + strings.Join(iterators, " ∧ ") + "]"
}
