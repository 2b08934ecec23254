package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/martsokha/pgtrgm"
)

// CatalogOutput is the yaml form of the catalog.
type CatalogOutput struct {
	Operators []OperatorEntry `yaml:"operators"`
	Functions []FunctionEntry `yaml:"functions"`
}

// OperatorEntry describes one operator.
type OperatorEntry struct {
	Name       string `yaml:"name"`
	Token      string `yaml:"token"`
	Commutator string `yaml:"commutator"`
	Result     string `yaml:"result"`
}

// FunctionEntry describes one function.
type FunctionEntry struct {
	Name       string   `yaml:"name"`
	Args       []string `yaml:"args"`
	Result     string   `yaml:"result"`
	Deprecated bool     `yaml:"deprecated,omitempty"`
}

// NewCatalogCommand creates the catalog command.
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List pg_trgm operators and functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(rootOpts, cmd.OutOrStdout())
		},
	}
}

func buildCatalog() CatalogOutput {
	var out CatalogOutput
	for _, op := range pgtrgm.Operators() {
		out.Operators = append(out.Operators, OperatorEntry{
			Name:       op.Name,
			Token:      string(op.Operator),
			Commutator: string(op.Commutator),
			Result:     string(op.Result),
		})
	}
	for _, fn := range pgtrgm.Functions() {
		args := make([]string, len(fn.Args))
		for i, a := range fn.Args {
			args[i] = string(a)
		}
		out.Functions = append(out.Functions, FunctionEntry{
			Name:       string(fn.Function),
			Args:       args,
			Result:     string(fn.Result),
			Deprecated: fn.Deprecated,
		})
	}
	return out
}

func runCatalog(opts *RootOptions, w io.Writer) error {
	catalog := buildCatalog()
	opts.logger.Debug().
		Int("operators", len(catalog.Operators)).
		Int("functions", len(catalog.Functions)).
		Msg("catalog loaded")

	if opts.Format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(catalog); err != nil {
			return fmt.Errorf("encoding catalog: %w", err)
		}
		return enc.Close()
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "OPERATOR\tNAME\tCOMMUTATOR\tRESULT")
	for _, op := range catalog.Operators {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", op.Token, op.Name, op.Commutator, op.Result)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "FUNCTION\tRESULT\tNOTE\t")
	for _, fn := range catalog.Functions {
		note := ""
		if fn.Deprecated {
			note = "deprecated"
		}
		fmt.Fprintf(tw, "%s(%s)\t%s\t%s\t\n", fn.Name, strings.Join(fn.Args, ", "), fn.Result, note)
	}
	return tw.Flush()
}
