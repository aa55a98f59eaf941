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

	"github.com/consensys/go-rtlsim/pkg/netlist"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] netlist_file",
	Short: "inspect the compiled form of a netlist.",
	Long: `Inspect a netlist (given as a JSON description) by printing the
	instructions it compiles into (in execution order), a summary of its nodes
	and any nodes which contribute to neither an output nor a register.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		summary := GetFlag(cmd, "summary")
		graph := readNetlistFile(args[0])
		simulator := newSimulator(graph)
		//
		if !summary {
			for i, insn := range simulator.Program() {
				fmt.Printf("%4d: %s\n", i, insn.Format(graph.Label))
			}
			//
			fmt.Println()
		}
		//
		printKindSummary(graph)
		printDeadNodes(graph)
	},
}

func printKindSummary(graph *netlist.Graph) {
	var counts [netlist.Output + 1]uint
	//
	for i := range graph.Len() {
		counts[graph.Node(netlist.Id(i)).Kind()]++
	}
	//
	for kind, count := range counts {
		fmt.Printf("%s: %d\n", netlist.Kind(kind), count)
	}
}

func printDeadNodes(graph *netlist.Graph) {
	dead := graph.Dead()
	//
	if len(dead) == 0 {
		return
	}
	//
	fmt.Printf("dead nodes (%d):", len(dead))
	//
	for _, id := range dead {
		fmt.Printf(" %s", graph.Label(id))
	}
	//
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Bool("summary", false, "only print summary information")
}
