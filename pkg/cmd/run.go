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
	"github.com/consensys/go-rtlsim/pkg/sim"
	"github.com/consensys/go-rtlsim/pkg/util"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] netlist_file",
	Short: "simulate a netlist for a given number of ticks.",
	Long: `Simulate a netlist (given as a JSON description) for a given number
	of ticks, printing the values of watched nodes on each tick.  By default,
	every output is watched.  Inputs are held at the values given with --set.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		ticks := GetUint(cmd, "ticks")
		stimulus := GetStringArray(cmd, "set")
		watches := GetStringArray(cmd, "watch")
		asJson := GetFlag(cmd, "json")
		output := GetString(cmd, "output")
		// Read netlist & construct simulator
		graph := readNetlistFile(args[0])
		simulator := newSimulator(graph)
		// Apply stimulus
		for _, assignment := range stimulus {
			id, value, err := parseAssignment(simulator, assignment)
			//
			if err != nil {
				fmt.Println(err)
				os.Exit(4)
			}
			//
			simulator.SetValue(id, &value)
		}
		//
		recorder := sim.NewRecorder(graph, watchedNodes(graph, watches)...)
		simulator.Run(ticks, recorder)
		//
		if asJson || output != "" {
			writeJsonTrace(recorder.Trace(), output)
		} else {
			printTrace(recorder.Trace())
		}
	},
}

// Determine the nodes to watch, which defaults to every output (or every
// register, if there are no outputs).
func watchedNodes(graph *netlist.Graph, names []string) []netlist.Id {
	var watched []netlist.Id
	//
	for _, name := range names {
		id, ok := graph.Lookup(name)
		//
		if !ok {
			fmt.Printf("unknown node \"%s\"\n", name)
			os.Exit(4)
		}
		//
		watched = append(watched, id)
	}
	//
	if len(names) == 0 {
		watched = graph.Outputs()
	}
	//
	if len(watched) == 0 {
		watched = graph.Registers()
	}
	//
	return watched
}

func writeJsonTrace(trace *sim.Trace, output string) {
	bytes, err := trace.ToBytes()
	//
	if err == nil && output == "" {
		fmt.Println(string(bytes))
		return
	} else if err == nil {
		err = os.WriteFile(output, bytes, 0644)
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(4)
	}
}

// Print a trace as a table with one row per tick, clipped to the width of the
// terminal (if there is one).
func printTrace(trace *sim.Trace) {
	var (
		ncols     = uint(len(trace.Signals)) + 1
		table     = util.NewTablePrinter(ncols, trace.Len()+1)
		lineWidth uint
	)
	//
	table.Set(0, 0, "tick")
	//
	for i, signal := range trace.Signals {
		table.Set(uint(i)+1, 0, signal.Name)
		//
		for tick := range signal.Values {
			table.Set(uint(i)+1, uint(tick)+1, signal.Values[tick].String())
		}
	}
	//
	for tick := range trace.Len() {
		table.Set(0, tick+1, fmt.Sprintf("%d", tick))
	}
	//
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil && width > 0 {
			lineWidth = uint(width)
		}
	}
	//
	if err := table.Print(os.Stdout, lineWidth); err != nil {
		fmt.Println(err)
		os.Exit(4)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().UintP("ticks", "n", 1, "number of ticks to simulate")
	runCmd.Flags().StringArrayP("set", "s", []string{}, "set node to value (e.g. -s in=0x1f)")
	runCmd.Flags().StringArrayP("watch", "w", []string{}, "watch node (defaults to all outputs)")
	runCmd.Flags().Bool("json", false, "print trace as JSON")
	runCmd.Flags().StringP("output", "o", "", "write JSON trace to file")
}
