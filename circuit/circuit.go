// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

// MaxArity is the largest operand count a gate may carry.
const MaxArity = 2

// Gate is one operation in program order.
type Gate struct {
	Kind   string    `yaml:"kind"`
	Qubits []int     `yaml:"qubits,flow"`
	Params []float64 `yaml:"params,omitempty,flow"`
}

// String renders the gate in its compact form, e.g. "rz(0.5) 1".
func (g Gate) String() string {
	var sb strings.Builder
	sb.WriteString(g.Kind)
	if len(g.Params) > 0 {
		ps := make([]string, len(g.Params))
		for i, p := range g.Params {
			ps[i] = strconv.FormatFloat(p, 'g', -1, 64)
		}
		sb.WriteString("(" + strings.Join(ps, ",") + ")")
	}
	for _, q := range g.Qubits {
		sb.WriteString(" " + strconv.Itoa(q))
	}

	return sb.String()
}

// Circuit is a qubit count plus an ordered gate list.
type Circuit struct {
	Name      string `yaml:"name,omitempty"`
	NumQubits int    `yaml:"qubits"`
	Gates     []Gate `yaml:"gates"`
}

// New returns an empty circuit over n qubits.
func New(n int) *Circuit { return &Circuit{NumQubits: n} }

// Add appends a gate and returns c for chaining. Operands and parameters are
// copied; nothing is validated until Validate.
func (c *Circuit) Add(kind string, qubits []int, params ...float64) *Circuit {
	g := Gate{Kind: kind, Qubits: append([]int(nil), qubits...)}
	if len(params) > 0 {
		g.Params = append([]float64(nil), params...)
	}
	c.Gates = append(c.Gates, g)

	return c
}

// Len returns the number of gates.
func (c *Circuit) Len() int { return len(c.Gates) }

// Validate reports every malformed gate at once. The returned error combines
// one wrapped sentinel per problem; use errors.Is or multierr.Errors.
func (c *Circuit) Validate() error {
	if c.NumQubits <= 0 {
		return fmt.Errorf("%d qubits: %w", c.NumQubits, ErrNoQubits)
	}
	var errs error
	for i, g := range c.Gates {
		errs = multierr.Append(errs, g.validate(i, c.NumQubits))
	}

	return errs
}

// validate checks one gate against an n-qubit register.
func (g Gate) validate(index, n int) error {
	wrap := func(err error) error { return fmt.Errorf("gate %d (%s): %w", index, g, err) }

	if strings.TrimSpace(g.Kind) == "" {
		return wrap(ErrEmptyKind)
	}
	if len(g.Qubits) == 0 || len(g.Qubits) > MaxArity {
		return wrap(ErrOperandCount)
	}
	var errs error
	for j, q := range g.Qubits {
		if q < 0 || q >= n {
			errs = multierr.Append(errs, wrap(fmt.Errorf("qubit %d of %d: %w", q, n, ErrOperandRange)))
		}
		for _, prev := range g.Qubits[:j] {
			if prev == q {
				errs = multierr.Append(errs, wrap(fmt.Errorf("qubit %d: %w", q, ErrRepeatedOperand)))
			}
		}
	}
	for _, p := range g.Params {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			errs = multierr.Append(errs, wrap(ErrBadParam))
		}
	}

	return errs
}
