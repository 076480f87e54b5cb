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
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mlp-fpga/hdlgen/hdl/activation"
	"github.com/mlp-fpga/hdlgen/hdl/lut"
	"github.com/mlp-fpga/hdlgen/hdl/memfile"
	"github.com/mlp-fpga/hdlgen/internal/config"
)

var _ pflag.Value = (*lut.Policy)(nil)

// dumpRowWidth is the number of values per row when printing a table.
const dumpRowWidth = 16

func newLUTCmd() *cobra.Command {
	defaults := lut.DefaultOptions()
	var (
		opts       = defaults
		outputFile string
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "lut",
		Short: "Generate a quantized activation LUT as a $readmemh image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if !flags.Changed("num_entries") {
				opts.NumEntries = cfg.LUT.NumEntries
			}
			if !flags.Changed("min_input") {
				opts.MinInput = cfg.LUT.MinInput
			}
			if !flags.Changed("max_input") {
				opts.MaxInput = cfg.LUT.MaxInput
			}
			if !flags.Changed("policy") {
				opts.Policy = cfg.LUT.Policy
			}
			if !flags.Changed("function") {
				opts.Function = cfg.LUT.Function
			}
			if !flags.Changed("output_file") {
				outputFile = cfg.LUT.OutputFile
			}

			table, err := lut.Generate(opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !quiet {
				printTable(out, table.Values)
			}
			if err := memfile.WriteFile(outputFile, table.Values); err != nil {
				return fmt.Errorf("write %s: %w", outputFile, err)
			}
			fmt.Fprintf(out, "[+] LUT generated and saved to %s\n", outputFile)
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.NumEntries, "num_entries", defaults.NumEntries, "Number of entries in the LUT")
	f.Float64Var(&opts.MinInput, "min_input", defaults.MinInput, "Minimum input value for the LUT")
	f.Float64Var(&opts.MaxInput, "max_input", defaults.MaxInput, "Maximum input value for the LUT")
	f.StringVar(&outputFile, "output_file", config.DefaultLUTOutputFile, "Output file name")
	f.Var(&opts.Policy, "policy", "Address mapping: linear or symmetric")
	f.StringVar(&opts.Function, "function", defaults.Function,
		"Activation function ("+strings.Join(activation.Names(), ", ")+")")
	f.Float64Var(&opts.Scale, "scale", defaults.Scale, "Multiplier applied before rounding to int8")
	f.BoolVarP(&quiet, "quiet", "q", false, "Do not print the generated table")
	return cmd
}

// printTable writes values as rows of decimal numbers, bracketed like an array.
func printTable(w io.Writer, values []int8) {
	if len(values) == 0 {
		fmt.Fprintln(w, "[]")
		return
	}
	rows := lo.Chunk(values, dumpRowWidth)
	for i, row := range rows {
		cells := lo.Map(row, func(v int8, _ int) string {
			return fmt.Sprintf("%4d", v)
		})
		lead, tail := " ", ""
		if i == 0 {
			lead = "["
		}
		if i == len(rows)-1 {
			tail = "]"
		}
		fmt.Fprintf(w, "%s%s%s\n", lead, strings.Join(cells, ""), tail)
	}
}
