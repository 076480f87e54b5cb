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

// Package vheader emits the Verilog header that passes the model image size
// and location to the model reader at compile time.
//
// For a 1234-byte model the generated header is:
//
//	`ifndef MODEL_PARAMS_H
//	`define MODEL_PARAMS_H
//
//	`define MODEL_SIZE 1234
//	`define MODEL_PATH "/abs/path/model.bin"
//
//	`endif // MODEL_PARAMS_H
package vheader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// DefaultName is the macro prefix used when Params.Name is empty.
	DefaultName = "MODEL"

	// DefaultOutput is where the build expects the header.
	DefaultOutput = "model_params.vh"
)

// Params holds the values written into the header.
type Params struct {
	Name string // Macro prefix, e.g. "MODEL" for MODEL_SIZE
	Size int64  // Model file size in bytes
	Path string // Absolute path of the model file
}

// Stat reads the size and absolute path of the model file.
func Stat(path string) (Params, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Params{}, &Error{Kind: KindNotFound, Path: path, Err: err}
		}
		return Params{}, &Error{Kind: KindIO, Path: path, Err: err}
	}
	if info.IsDir() {
		return Params{}, &Error{Kind: KindIO, Path: path, Err: fmt.Errorf("%s is a directory", path)}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return Params{}, &Error{Kind: KindIO, Path: path, Err: err}
	}
	return Params{Name: DefaultName, Size: info.Size(), Path: abs}, nil
}

// MacroPrefix returns the upper-cased identifier used for the macro names.
// Characters outside [A-Z0-9_] become underscores.
func (p Params) MacroPrefix() string {
	name := p.Name
	if name == "" {
		name = DefaultName
	}
	upper := cases.Upper(language.Und).String(name)
	var b strings.Builder
	for i, r := range upper {
		switch {
		case r >= 'A' && r <= 'Z', r == '_':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Render writes the header text. The output has no trailing newline.
func Render(w io.Writer, p Params) error {
	prefix := p.MacroPrefix()
	guard := prefix + "_PARAMS_H"
	_, err := fmt.Fprintf(w, "`ifndef %[1]s\n`define %[1]s\n\n`define %[2]s_SIZE %[3]d\n`define %[2]s_PATH %[4]q\n\n`endif // %[1]s",
		guard, prefix, p.Size, p.Path)
	return err
}

// WriteFile renders the header into out, creating parent directories as needed.
func WriteFile(out string, p Params) (err error) {
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create header directory: %w", err)
		}
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Render(f, p)
}
