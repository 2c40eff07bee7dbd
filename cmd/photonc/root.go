package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by subcommands.
type app struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:   "photonc",
		Short: "Gate-circuit to photonic network compiler",
		Long: `photonc translates quantum circuits written as YAML gate lists into
linear-optical networks on dual-rail encoded modes, with heralded or
postselected two-qubit gates.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !a.verbose {
				return nil
			}
			l, err := zap.NewDevelopment()
			if err != nil {
				return errors.Wrap(err, "build logger")
			}
			a.logger = l

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every compiled gate to stderr")

	root.AddCommand(newCompileCmd(a), newGatesCmd())

	return root
}
