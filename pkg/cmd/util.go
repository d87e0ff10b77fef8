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

	"github.com/spf13/cobra"
	"github.com/stac-lang/go-stac/pkg/schema"
)

// Get an expected flag, or panic if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string array flag, or panic if an error arises.
func getStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Parse tensor declarations of the form "A:ds" into a schema.
func readSchema(declarations []string) *schema.Schema {
	sc := schema.NewSchema()
	//
	for _, declaration := range declarations {
		var err error
		// Split name from formats
		name, formatString, ok := strings.Cut(declaration, ":")
		//
		if !ok {
			err = fmt.Errorf("malformed tensor declaration %q (expected e.g. \"A:ds\")", declaration)
		} else {
			var formats []schema.LevelFormat
			// Parse per-level formats
			if formats, err = schema.ParseFormat(formatString); err == nil {
				err = sc.Declare(name, formats...)
			}
		}
		// Handle error
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	}
	//
	return sc
}
