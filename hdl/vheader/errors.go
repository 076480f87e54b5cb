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

import "fmt"

// ErrorKind classifies failures reading the model file.
type ErrorKind int

const (
	// KindNotFound means the model file does not exist.
	KindNotFound ErrorKind = iota
	// KindIO covers every other filesystem failure.
	KindIO
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindIO:
		return "IOError"
	default:
		return "Unknown"
	}
}

// Error is returned by Stat.
type Error struct {
	Kind ErrorKind
	Path string // Path as given by the caller
	Err  error  // Underlying filesystem error
}

func (e *Error) Error() string {
	if e.Kind == KindNotFound {
		return fmt.Sprintf("file '%s' not found", e.Path)
	}
	return fmt.Sprintf("an error occurred: %v", e.Err)
}

// Unwrap allows errors.Is(err, fs.ErrNotExist) on NotFound errors.
func (e *Error) Unwrap() error {
	return e.Err
}
