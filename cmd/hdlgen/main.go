// Copyright 2025 hdlgen Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command hdlgen generates build inputs for the MLP accelerator's HDL.
//
// Usage:
//
//	hdlgen lut --num_entries 256 --min_input -6 --max_input 6 --output_file sigmoid_lut.mem
//	hdlgen lut --policy symmetric --function tanh --output_file tanh_lut.mem
//	hdlgen modelparams model.bin                      # writes model_params.vh
//
// Or via go:generate:
//
//	//go:generate go run github.com/mlp-fpga/hdlgen/cmd/hdlgen lut --quiet
//
// Defaults can be set in a .env file or through HDLGEN_* environment
// variables; flags always take precedence.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mlp-fpga/hdlgen/internal/config"
)

const version = "0.1.0"

// usageError is reported with the command's usage line instead of the
// generic error prefix.
type usageError struct {
	use string
	msg string
}

func (e *usageError) Error() string { return e.msg }

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hdlgen",
		Short:         "Generate activation LUTs and model headers for the MLP accelerator",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().String("env_file", config.DefaultEnvFile, "Optional .env file with HDLGEN_* defaults (empty to skip)")
	root.AddCommand(newLUTCmd(), newModelParamsCmd())
	return root
}

// loadConfig resolves the configuration named by the --env_file flag.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	envFile, err := cmd.Flags().GetString("env_file")
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(envFile)
}

// run executes the command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		var uerr *usageError
		if errors.As(err, &uerr) {
			fmt.Fprintf(stderr, "[*] Usage: %s\n", uerr.use)
		} else {
			fmt.Fprintf(stderr, "[-] ERROR: %v\n", err)
		}
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
