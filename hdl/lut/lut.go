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

// Package lut generates quantized activation lookup tables for the
// accelerator's activation ROM.
//
// A table has NumEntries 8-bit signed values. Each value is
//
//	Quantize(f(x), Scale)
//
// where f is the selected activation function and x is the input sample the
// Policy assigns to that address. The defaults reproduce the sigmoid ROM:
// 256 entries over [-6, 6] scaled by 127.
package lut

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/mlp-fpga/hdlgen/hdl/activation"
)

// DefaultScale maps the activation range (0, 1) onto the positive int8 range.
const DefaultScale = 127

var (
	// ErrNegativeEntries is returned when NumEntries < 0.
	ErrNegativeEntries = errors.New("number of entries must not be negative")

	// ErrOddEntries is returned when the symmetric policy is asked for an odd
	// number of entries, which cannot be split into two equal halves.
	ErrOddEntries = errors.New("symmetric policy requires an even number of entries")

	// ErrInvalidScale is returned for a scale that is not positive and finite.
	ErrInvalidScale = errors.New("scale must be positive and finite")
)

// Options configures table generation.
type Options struct {
	NumEntries int     // Total number of table entries
	MinInput   float64 // Lower bound of the input domain
	MaxInput   float64 // Upper bound of the input domain
	Policy     Policy  // Address to input mapping
	Function   string  // Activation function name (see activation.Names)
	Scale      float64 // Multiplier applied before rounding
}

// DefaultOptions returns the options of the sigmoid ROM.
func DefaultOptions() Options {
	return Options{
		NumEntries: 256,
		MinInput:   -6.0,
		MaxInput:   6.0,
		Policy:     PolicyLinear,
		Function:   "sigmoid",
		Scale:      DefaultScale,
	}
}

// Validate checks the options without generating anything.
// The domain bounds are not ordered: a reversed domain yields a descending sweep.
func (o Options) Validate() error {
	if o.NumEntries < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeEntries, o.NumEntries)
	}
	if o.Policy == PolicySymmetric && o.NumEntries%2 != 0 {
		return fmt.Errorf("%w: got %d", ErrOddEntries, o.NumEntries)
	}
	if _, ok := policyNames[o.Policy]; !ok {
		return fmt.Errorf("unknown sampling policy %v", o.Policy)
	}
	if !(o.Scale > 0) || math.IsInf(o.Scale, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidScale, o.Scale)
	}
	if _, err := activation.Lookup(o.Function); err != nil {
		return err
	}
	return nil
}

// Table is a generated lookup table.
type Table struct {
	Options Options
	Inputs  []float64 // Input sample per address
	Values  []int8    // Quantized activation per address
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.Values) }

// Bytes returns the two's-complement encoding of the values.
func (t *Table) Bytes() []byte {
	out := make([]byte, len(t.Values))
	for i, v := range t.Values {
		out[i] = byte(v)
	}
	return out
}

// Generate builds the table described by opts.
func Generate(opts Options) (*Table, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	fn, err := activation.Lookup(opts.Function)
	if err != nil {
		return nil, err
	}

	inputs, err := Sample(opts.Policy, opts.NumEntries, opts.MinInput, opts.MaxInput)
	if err != nil {
		return nil, err
	}

	outputs := make([]float64, len(inputs))
	activation.Apply(fn, inputs, outputs)

	values := make([]int8, len(outputs))
	for i, y := range outputs {
		values[i] = Quantize(y, opts.Scale)
	}
	return &Table{Options: opts, Inputs: inputs, Values: values}, nil
}

// Sample returns the input value assigned to each of the n table addresses.
func Sample(policy Policy, n int, minInput, maxInput float64) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeEntries, n)
	}
	switch policy {
	case PolicyLinear:
		return Linspace(n, minInput, maxInput), nil
	case PolicySymmetric:
		if n%2 != 0 {
			return nil, fmt.Errorf("%w: got %d", ErrOddEntries, n)
		}
		half := n / 2
		out := make([]float64, 0, n)
		out = append(out, Linspace(half, 0, maxInput)...)
		out = append(out, Linspace(half, minInput, 0)...)
		return out, nil
	default:
		return nil, fmt.Errorf("unknown sampling policy %v", policy)
	}
}

// Linspace returns n evenly spaced values over [start, stop], both endpoints
// included. n <= 0 yields an empty slice and n == 1 yields [start].
func Linspace(n int, start, stop float64) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{start}
	}
	dst := floats.Span(make([]float64, n), start, stop)
	dst[n-1] = stop
	return dst
}

// Quantize scales v and rounds it to the nearest int8, ties to even.
// Results outside [-128, 127] saturate; NaN maps to 0.
func Quantize(v, scale float64) int8 {
	r := math.RoundToEven(v * scale)
	switch {
	case math.IsNaN(r):
		return 0
	case r > math.MaxInt8:
		return math.MaxInt8
	case r < math.MinInt8:
		return math.MinInt8
	}
	return int8(r)
}
