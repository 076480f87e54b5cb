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

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlp-fpga/hdlgen/hdl/vheader"
)

func newModelParamsCmd() *cobra.Command {
	var output, name string

	cmd := &cobra.Command{
		Use:   "modelparams <file_path>",
		Short: "Write a Verilog header with the size and path of a model file",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &usageError{use: cmd.UseLine(), msg: fmt.Sprintf("expected 1 argument, got %d", len(args))}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("output") {
				output = cfg.Header.Output
			}
			if !cmd.Flags().Changed("name") {
				name = cfg.Header.Name
			}

			path := args[0]
			params, err := vheader.Stat(path)
			if err != nil {
				return err
			}
			params.Name = name

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "[+] The size of '%s' is %d bytes.\n", path, params.Size)
			if err := vheader.WriteFile(output, params); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Fprintf(out, "[+] Verilog header file '%s' generated successfully.\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", vheader.DefaultOutput, "Header file to write")
	cmd.Flags().StringVar(&name, "name", vheader.DefaultName, "Macro prefix (NAME_SIZE, NAME_PATH)")
	return cmd
}
