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
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

var rootCmd = &cobra.Command{
	Use:   "rtlsim",
	Short: "A cycle-based simulator for register-transfer level netlists.",
	Long: `Simulate register-transfer level netlists given as JSON descriptions.
	A netlist is a graph of literals, inputs, combinational operations,
	registers and outputs.  Each tick evaluates every combinational node once,
	in dependency order, before every register latches its next value.

	Use "run" to simulate a netlist and print (or save) the values of watched
	nodes on each tick, and "inspect" to view the instructions a netlist
	compiles into.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		if GetFlag(cmd, "log-json") {
			log.SetFormatter(&log.JSONFormatter{})
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if !GetFlag(cmd, "version") {
			fmt.Println(cmd.UsageString())
			return
		}
		//
		fmt.Printf("rtlsim %s\n", version())
	},
}

// version reports the version given at build time, falling back to the module
// version when installed via "go install".
func version() string {
	if Version != "" {
		return Version
	} else if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	//
	return "(unknown version)"
}

// Execute runs the command selected on the command line, exiting with a
// non-zero status if it could not be run.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log build and run statistics")
	rootCmd.PersistentFlags().Bool("log-json", false, "write log messages as JSON")
}
