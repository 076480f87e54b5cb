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

// Package memfile reads and writes $readmemh memory initialization images.
//
// The format is plain text with one two-digit uppercase hexadecimal byte per
// line and no header. Signed values are stored in two's complement, so -1 is
// written as FF.
package memfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// SyntaxError reports a line that is not a hexadecimal byte.
type SyntaxError struct {
	Line int    // 1-based line number
	Text string // Offending line content
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("memfile: line %d: invalid hex byte %q", e.Line, e.Text)
}

// Encode writes one line per value.
func Encode(w io.Writer, values []int8) error {
	bw := bufio.NewWriter(w)
	for _, v := range values {
		if _, err := fmt.Fprintf(bw, "%02X\n", uint8(v)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile encodes values into the file at path, creating parent directories
// as needed.
func WriteFile(path string, values []int8) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Encode(f, values)
}

// Decode parses an image back into signed bytes. Blank lines and // comments
// are skipped, as $readmemh does.
func Decode(r io.Reader) ([]int8, error) {
	var values []int8
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.Index(text, "//"); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if len(text) > 2 {
			return nil, &SyntaxError{Line: line, Text: sc.Text()}
		}
		b, err := strconv.ParseUint(text, 16, 8)
		if err != nil {
			return nil, &SyntaxError{Line: line, Text: sc.Text()}
		}
		values = append(values, int8(uint8(b)))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// ReadFile decodes the image stored at path.
func ReadFile(path string) ([]int8, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}
