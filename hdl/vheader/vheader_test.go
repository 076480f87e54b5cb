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

package vheader

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

func loadGolden(t *testing.T) map[string]string {
	t.Helper()
	ar, err := txtar.ParseFile(filepath.Join("testdata", "model_params.txtar"))
	require.NoError(t, err)
	files := make(map[string]string, len(ar.Files))
	for _, f := range ar.Files {
		files[f.Name] = strings.TrimSuffix(string(f.Data), "\n")
	}
	return files
}

func TestRenderGolden(t *testing.T) {
	golden := loadGolden(t)
	tests := []struct {
		file   string
		params Params
	}{
		{"model_params.vh", Params{Name: "MODEL", Size: 1234, Path: "/opt/mlp/weights/model.bin"}},
		{"layer2_params.vh", Params{Name: "layer2", Size: 0, Path: "/opt/mlp/weights/empty.bin"}},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, tt.params))
			if diff := cmp.Diff(golden[tt.file], buf.String()); diff != "" {
				t.Errorf("Render mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMacroPrefix(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", "MODEL"},
		{"model", "MODEL"},
		{"mlp-v2", "MLP_V2"},
		{"2layer", "_2LAYER"},
		{"weights.bin", "WEIGHTS_BIN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Params{Name: tt.name}.MacroPrefix())
		})
	}
}

func TestStat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.bin")
	require.NoError(t, os.WriteFile(path, make([]byte, 1234), 0o644))

	p, err := Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), p.Size)
	assert.Equal(t, DefaultName, p.Name)
	assert.True(t, filepath.IsAbs(p.Path))
	assert.Equal(t, path, p.Path)
}

func TestStatRelativePath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model.bin"), []byte("abc"), 0o644))
	chdirForTest(t, dir)

	p, err := Stat("model.bin")
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.Size)
	assert.True(t, filepath.IsAbs(p.Path))
	assert.Equal(t, "model.bin", filepath.Base(p.Path))
}

func TestStatErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name     string
		path     string
		wantKind ErrorKind
	}{
		{"Missing", filepath.Join(dir, "missing.bin"), KindNotFound},
		{"Directory", dir, KindIO},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Stat(tt.path)
			var verr *Error
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.wantKind, verr.Kind)
		})
	}

	_, err := Stat(filepath.Join(dir, "missing.bin"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "not found")
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "NotFound", KindNotFound.String())
	assert.Equal(t, "IOError", KindIO.String())
	assert.Equal(t, "Unknown", ErrorKind(7).String())
}

func TestWriteFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "build", "include", DefaultOutput)
	p := Params{Name: "MODEL", Size: 1234, Path: "/opt/mlp/weights/model.bin"}
	require.NoError(t, WriteFile(out, p))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, loadGolden(t)["model_params.vh"], string(raw))
}
