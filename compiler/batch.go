// SPDX-License-Identifier: MIT

package compiler

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvphoton/circuit"
	"github.com/katalvlaran/lvphoton/processor"
	"golang.org/x/sync/errgroup"
)

// CompileAll compiles independent circuits in parallel, at most
// Options.Concurrency at a time. Results are in input order. The first
// failure cancels the remaining work and is returned with the circuit index.
func (c *Compiler) CompileAll(ctx context.Context, circuits []*circuit.Circuit) ([]*processor.Processor, error) {
	out := make([]*processor.Processor, len(circuits))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Concurrency)

	for i, circ := range circuits {
		i, circ := i, circ // per-iteration copies (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := c.Compile(circ)
			if err != nil {
				return fmt.Errorf("circuit %d: %w", i, err)
			}
			out[i] = p

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
