package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lvphoton/circuit"
	"github.com/katalvlaran/lvphoton/compiler"
	"github.com/katalvlaran/lvphoton/optics"
	"github.com/katalvlaran/lvphoton/processor"
	"github.com/markkurossi/tabulate"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputTable = "table"
	outputYAML  = "yaml"
)

type compileFlags struct {
	heralded     bool
	keepIdentity bool
	output       string
	concurrency  int
}

func newCompileCmd(a *app) *cobra.Command {
	var f compileFlags
	cmd := &cobra.Command{
		Use:   "compile FILE...",
		Short: "Compile YAML circuit files into photonic processors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.output != outputTable && f.output != outputYAML {
				return errors.Errorf("unknown output format %q (want %s or %s)", f.output, outputTable, outputYAML)
			}
			circuits := make([]*circuit.Circuit, len(args))
			for i, path := range args {
				c, err := circuit.Load(path)
				if err != nil {
					return err
				}
				circuits[i] = c
			}

			opts := []compiler.Option{
				compiler.WithHeralded(f.heralded),
				compiler.WithLogger(a.logger),
			}
			if f.keepIdentity {
				opts = append(opts, compiler.WithIdentityPermutations())
			}
			if f.concurrency > 0 {
				opts = append(opts, compiler.WithConcurrency(f.concurrency))
			}
			procs, err := compiler.New(opts...).CompileAll(cmd.Context(), circuits)
			if err != nil {
				return errors.Wrap(err, "compile")
			}

			reports := make([]report, len(procs))
			for i, p := range procs {
				reports[i] = newReport(circuits[i], p)
			}
			if f.output == outputYAML {
				return writeYAML(cmd.OutOrStdout(), reports)
			}
			writeTables(cmd.OutOrStdout(), reports)

			return nil
		},
	}
	cmd.Flags().BoolVar(&f.heralded, "heralded", false, "use heralded two-qubit gates instead of postselected ones")
	cmd.Flags().BoolVar(&f.keepIdentity, "keep-identity", false, "emit routing permutations even when they are the identity")
	cmd.Flags().StringVarP(&f.output, "output", "o", outputTable, "output format: table or yaml")
	cmd.Flags().IntVar(&f.concurrency, "concurrency", 0, "circuits compiled at once (0 = GOMAXPROCS)")

	return cmd
}

// report is the printable view of one compiled circuit.
type report struct {
	Name               string                `yaml:"name"`
	Qubits             int                   `yaml:"qubits"`
	Modes              int                   `yaml:"modes"`
	Heralded           bool                  `yaml:"heralded"`
	SuccessProbability float64               `yaml:"success_probability"`
	QubitModes         []processor.ModePair  `yaml:"qubit_modes"`
	Sources            []processor.Source    `yaml:"sources"`
	Heralds            []processor.Herald    `yaml:"heralds,omitempty"`
	PostSelect         []processor.Condition `yaml:"postselect,omitempty"`
	Network            []networkEntry        `yaml:"network"`
}

type networkEntry struct {
	Modes     []int  `yaml:"modes,flow"`
	Component string `yaml:"component"`
}

func newReport(c *circuit.Circuit, p *processor.Processor) report {
	r := report{
		Name:               p.Network.Name(),
		Qubits:             c.NumQubits,
		Modes:              p.M(),
		Heralded:           p.Heralded,
		SuccessProbability: p.SuccessProbability,
		QubitModes:         p.QubitModes,
		Sources:            p.Sources,
		Heralds:            p.Heralds,
		PostSelect:         p.PostSelect.Conditions,
	}
	for _, e := range p.Network.Entries() {
		r.Network = append(r.Network, networkEntry{Modes: e.Modes(), Component: describe(e.Component)})
	}

	return r
}

// describe names a component on one line; nested circuits by name and size.
func describe(c optics.Component) string {
	if sub, ok := c.(*optics.Circuit); ok {
		return fmt.Sprintf("%s (%d components)", sub.Name(), sub.Len())
	}
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}

	return c.Name()
}

func writeYAML(w io.Writer, reports []report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, r := range reports {
		if err := enc.Encode(r); err != nil {
			return errors.Wrap(err, "encode report")
		}
	}

	return errors.Wrap(enc.Close(), "encode report")
}

func writeTables(w io.Writer, reports []report) {
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s\n", r.Name)
		summaryTable(r).Print(w)
		networkTable(r).Print(w)
	}
}

func summaryTable(r report) *tabulate.Tabulate {
	tab := tabulate.New(tabulate.Unicode)
	tab.Header("Field").SetAlign(tabulate.ML)
	tab.Header("Value").SetAlign(tabulate.ML)

	mode := "postselected"
	if r.Heralded {
		mode = "heralded"
	}
	post := processor.PostSelect{Conditions: r.PostSelect}
	for _, kv := range [][2]string{
		{"qubits", strconv.Itoa(r.Qubits)},
		{"modes", strconv.Itoa(r.Modes)},
		{"mode", mode},
		{"sources", fmt.Sprint(r.Sources)},
		{"heralds", fmt.Sprint(r.Heralds)},
		{"postselect", post.String()},
		{"success", strconv.FormatFloat(r.SuccessProbability, 'g', 6, 64)},
	} {
		row := tab.Row()
		row.Column(kv[0])
		row.Column(kv[1])
	}

	return tab
}

func networkTable(r report) *tabulate.Tabulate {
	tab := tabulate.New(tabulate.Unicode)
	tab.Header("#").SetAlign(tabulate.MR)
	tab.Header("Modes").SetAlign(tabulate.ML)
	tab.Header("Component").SetAlign(tabulate.ML)
	for i, e := range r.Network {
		row := tab.Row()
		row.Column(strconv.Itoa(i))
		row.Column(fmt.Sprint(e.Modes))
		row.Column(e.Component)
	}

	return tab
}
