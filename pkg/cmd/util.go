// Copyright Consensys Software Inc.
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

	"github.com/consensys/go-rtlsim/pkg/bitvec"
	"github.com/consensys/go-rtlsim/pkg/netlist"
	"github.com/consensys/go-rtlsim/pkg/netlist/json"
	"github.com/consensys/go-rtlsim/pkg/sim"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned int, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetStringArray gets an expected string array, or exits if an error arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Read a netlist description file, exiting if an error arises.
func readNetlistFile(filename string) *netlist.Graph {
	bytes, err := os.ReadFile(filename)
	//
	if err == nil {
		var graph *netlist.Graph
		//
		if graph, err = json.FromBytes(bytes); err == nil {
			return graph
		}
	}
	// Handle error
	fmt.Println(errors.Wrap(err, filename))
	os.Exit(2)
	// unreachable
	return nil
}

// Construct a simulator for a given netlist, exiting if an error arises.
func newSimulator(graph *netlist.Graph) *sim.Simulator {
	simulator, err := sim.New(graph)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(3)
	}
	//
	return simulator
}

// Parse an assignment of the form "name=value" against a given simulator.
// Values may be given in decimal, hexadecimal ("0x") or binary ("0b").
func parseAssignment(simulator *sim.Simulator, assignment string) (netlist.Id, bitvec.BitVector, error) {
	var value bitvec.BitVector
	//
	name, text, ok := strings.Cut(assignment, "=")
	//
	if !ok {
		return netlist.None, value, errors.Errorf("malformed assignment \"%s\"", assignment)
	}
	//
	id, ok := simulator.Lookup(name)
	//
	if !ok {
		return netlist.None, value, errors.Errorf("unknown node \"%s\"", name)
	}
	//
	value = bitvec.New(simulator.Graph().Node(id).Width())
	//
	if _, ok := value.SetString(text, 0); !ok {
		return netlist.None, value, errors.Errorf("invalid value \"%s\" for %s", text, name)
	}
	//
	return id, value, nil
}
