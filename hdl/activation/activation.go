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

// Package activation provides the scalar activation functions the MLP
// accelerator evaluates through lookup tables.
//
// The same names are used by the software model ("sigmoid", "relu", "tanh"),
// so a LUT generated for a layer matches the activation stored with it.
package activation

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/samber/lo"
)

// ErrUnknown is returned by Lookup for names with no registered function.
var ErrUnknown = errors.New("unknown activation function")

// Func is a scalar activation function.
type Func func(x float64) float64

// Sigmoid computes the logistic function: 1 / (1 + exp(-x)).
func Sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Tanh computes the hyperbolic tangent.
func Tanh(x float64) float64 {
	return math.Tanh(x)
}

// ReLU computes max(0, x).
func ReLU(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

var registry = map[string]Func{
	"sigmoid": Sigmoid,
	"tanh":    Tanh,
	"relu":    ReLU,
}

// Lookup returns the activation function registered under name.
func Lookup(name string) (Func, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknown, name, Names())
	}
	return fn, nil
}

// Names returns the registered function names in sorted order.
func Names() []string {
	names := lo.Keys(registry)
	slices.Sort(names)
	return names
}

// Apply evaluates fn over input and stores the results in output.
// It processes min(len(input), len(output)) elements.
func Apply(fn Func, input, output []float64) {
	size := min(len(input), len(output))
	for i := 0; i < size; i++ {
		output[i] = fn(input[i])
	}
}
