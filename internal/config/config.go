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

// Package config resolves the defaults for hdlgen's subcommands.
//
// Values are layered: built-in defaults, then an optional .env file, then the
// process environment. Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/mlp-fpga/hdlgen/hdl/lut"
	"github.com/mlp-fpga/hdlgen/hdl/vheader"
)

// Environment keys.
const (
	KeyLUTNumEntries = "HDLGEN_LUT_NUM_ENTRIES"
	KeyLUTMinInput   = "HDLGEN_LUT_MIN_INPUT"
	KeyLUTMaxInput   = "HDLGEN_LUT_MAX_INPUT"
	KeyLUTOutputFile = "HDLGEN_LUT_OUTPUT_FILE"
	KeyLUTPolicy     = "HDLGEN_LUT_POLICY"
	KeyLUTFunction   = "HDLGEN_LUT_FUNCTION"
	KeyHeaderOutput  = "HDLGEN_HEADER_OUTPUT"
	KeyHeaderName    = "HDLGEN_HEADER_NAME"
)

const (
	// DefaultEnvFile is read when no --env_file flag is given.
	DefaultEnvFile = ".env"

	// DefaultLUTOutputFile is the ROM image the synthesis scripts load.
	DefaultLUTOutputFile = "sigmoid_lut.mem"
)

// LUT holds the lut subcommand defaults.
type LUT struct {
	lut.Options
	OutputFile string
}

// Header holds the modelparams subcommand defaults.
type Header struct {
	Output string
	Name   string
}

// Config is the resolved configuration.
type Config struct {
	LUT    LUT
	Header Header
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LUT: LUT{
			Options:    lut.DefaultOptions(),
			OutputFile: DefaultLUTOutputFile,
		},
		Header: Header{
			Output: vheader.DefaultOutput,
			Name:   vheader.DefaultName,
		},
	}
}

// Load returns the defaults overlaid with envFile and the process environment.
// A missing envFile is ignored; an empty envFile skips the file.
func Load(envFile string) (Config, error) {
	vars := map[string]string{}
	if envFile != "" {
		fileVars, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			vars = fileVars
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("read %s: %w", envFile, err)
		}
	}
	for _, key := range []string{
		KeyLUTNumEntries, KeyLUTMinInput, KeyLUTMaxInput, KeyLUTOutputFile,
		KeyLUTPolicy, KeyLUTFunction, KeyHeaderOutput, KeyHeaderName,
	} {
		if v, ok := os.LookupEnv(key); ok {
			vars[key] = v
		}
	}
	return FromMap(vars)
}

// FromMap overlays vars onto the defaults.
func FromMap(vars map[string]string) (Config, error) {
	cfg := Default()
	if v, ok := vars[KeyLUTNumEntries]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", KeyLUTNumEntries, err)
		}
		cfg.LUT.NumEntries = n
	}
	if v, ok := vars[KeyLUTMinInput]; ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", KeyLUTMinInput, err)
		}
		cfg.LUT.MinInput = f
	}
	if v, ok := vars[KeyLUTMaxInput]; ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", KeyLUTMaxInput, err)
		}
		cfg.LUT.MaxInput = f
	}
	if v, ok := vars[KeyLUTPolicy]; ok {
		p, err := lut.ParsePolicy(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", KeyLUTPolicy, err)
		}
		cfg.LUT.Policy = p
	}
	if v, ok := vars[KeyLUTFunction]; ok && v != "" {
		cfg.LUT.Function = v
	}
	if v, ok := vars[KeyLUTOutputFile]; ok && v != "" {
		cfg.LUT.OutputFile = v
	}
	if v, ok := vars[KeyHeaderOutput]; ok && v != "" {
		cfg.Header.Output = v
	}
	if v, ok := vars[KeyHeaderName]; ok && v != "" {
		cfg.Header.Name = v
	}
	return cfg, nil
}
