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

package lut

import (
	"fmt"
	"strings"
)

// Policy selects how table addresses map onto the input domain.
type Policy int

const (
	// PolicyLinear sweeps [min, max] in ascending order across every entry.
	PolicyLinear Policy = iota

	// PolicySymmetric lays the table out for signed addressing: the first half
	// covers [0, max] and the second half, reached when the address wraps
	// negative, covers [min, 0].
	PolicySymmetric
)

var policyNames = map[Policy]string{
	PolicyLinear:    "linear",
	PolicySymmetric: "symmetric",
}

// String returns the flag spelling of the policy.
func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy converts a flag value into a Policy. Matching is case-insensitive.
func ParsePolicy(s string) (Policy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for p, name := range policyNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown sampling policy %q (want linear or symmetric)", s)
}

// Set implements pflag.Value.
func (p *Policy) Set(s string) error {
	v, err := ParsePolicy(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Type implements pflag.Value.
func (p *Policy) Type() string { return "policy" }
