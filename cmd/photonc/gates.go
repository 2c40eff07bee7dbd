package main

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/lvphoton/catalog"
	"github.com/markkurossi/tabulate"
	"github.com/spf13/cobra"
)

func newGatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gates",
		Short: "List the gate kinds the built-in catalog supports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gatesTable(catalog.Default()).Print(cmd.OutOrStdout())

			return nil
		},
	}
}

func gatesTable(reg *catalog.Registry) *tabulate.Tabulate {
	tab := tabulate.New(tabulate.Unicode)
	tab.Header("Kind").SetAlign(tabulate.ML)
	tab.Header("Aliases").SetAlign(tabulate.ML)
	tab.Header("Qubits").SetAlign(tabulate.MR)
	tab.Header("Params").SetAlign(tabulate.MR)
	tab.Header("Description").SetAlign(tabulate.ML)

	for _, e := range reg.Entries() {
		row := tab.Row()
		row.Column(e.Kind)
		row.Column(strings.Join(e.Aliases, ", "))
		row.Column(strconv.Itoa(e.Arity))
		row.Column(strconv.Itoa(e.Params))
		row.Column(e.Summary)
	}

	return tab
}
