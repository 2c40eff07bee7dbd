// SPDX-License-Identifier: MIT

package processor

import (
	"fmt"
	"strconv"
	"strings"
)

// ModePair is the dual-rail encoding of one qubit: a photon on Zero means
// |0>, on One means |1>.
type ModePair struct {
	Zero int `yaml:"zero"`
	One  int `yaml:"one"`
}

// Source injects Photons photons on Mode at input.
type Source struct {
	Mode    int `yaml:"mode"`
	Photons int `yaml:"photons"`
}

// Herald requires Count photons to be detected on Mode.
type Herald struct {
	Mode  int `yaml:"mode"`
	Count int `yaml:"count"`
}

// Condition requires the photons detected over Modes to sum to Count.
type Condition struct {
	Modes []int `yaml:"modes,flow"`
	Count int   `yaml:"count"`
}

// holds reports whether output satisfies the condition. Modes are assumed in range.
func (c Condition) holds(output []int) bool {
	sum := 0
	for _, m := range c.Modes {
		sum += output[m]
	}

	return sum == c.Count
}

// String renders the condition as [a,b]==n.
func (c Condition) String() string {
	parts := make([]string, len(c.Modes))
	for i, m := range c.Modes {
		parts[i] = strconv.Itoa(m)
	}

	return fmt.Sprintf("[%s]==%d", strings.Join(parts, ","), c.Count)
}

// PostSelect is a conjunction of conditions. The zero value accepts everything.
type PostSelect struct {
	Conditions []Condition `yaml:"conditions"`
}

// Empty reports whether the predicate has no conditions.
func (p PostSelect) Empty() bool { return len(p.Conditions) == 0 }

// Has reports whether an identical condition is already present.
func (p PostSelect) Has(c Condition) bool {
	for _, have := range p.Conditions {
		if have.Count == c.Count && equalInts(have.Modes, c.Modes) {
			return true
		}
	}

	return false
}

// String joins the conditions with " & ".
func (p PostSelect) String() string {
	if p.Empty() {
		return "true"
	}
	parts := make([]string, len(p.Conditions))
	for i, c := range p.Conditions {
		parts[i] = c.String()
	}

	return strings.Join(parts, " & ")
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
