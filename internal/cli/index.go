package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/martsokha/pgtrgm/raw"
)

// IndexOptions holds flags for the index command.
type IndexOptions struct {
	Name      string
	Table     string
	Column    string
	Extension bool
	File      string
}

// IndexPlan is a yaml file listing trigram indexes to create.
//
//	extension: true
//	indexes:
//	  - name: products_name_trgm_idx
//	    table: products
//	    column: name
//	    method: gin
type IndexPlan struct {
	Extension bool        `yaml:"extension"`
	Indexes   []IndexSpec `yaml:"indexes"`
}

// IndexSpec is one index in an IndexPlan.
type IndexSpec struct {
	Name   string `yaml:"name"`
	Table  string `yaml:"table"`
	Column string `yaml:"column"`
	Method string `yaml:"method"`
}

// identifierPattern accepts a plain or schema-qualified identifier.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// Validate checks the index definition before its values are substituted into DDL.
func (s IndexSpec) Validate() error {
	switch raw.Method(s.Method) {
	case raw.GIN, raw.GiST:
	default:
		return fmt.Errorf("index %q: method must be gin or gist, got %q", s.Name, s.Method)
	}
	fields := []struct{ name, value string }{
		{"name", s.Name},
		{"table", s.Table},
		{"column", s.Column},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("index %q: %s is required", s.Name, f.name)
		}
		if !identifierPattern.MatchString(f.value) {
			return fmt.Errorf("index %q: invalid %s %q", s.Name, f.name, f.value)
		}
	}
	// CREATE INDEX places the index in the table's schema
	if strings.Contains(s.Name, ".") {
		return fmt.Errorf("index %q: index names cannot be schema-qualified", s.Name)
	}
	if strings.Contains(s.Column, ".") {
		return fmt.Errorf("index %q: column cannot be qualified", s.Name)
	}
	return nil
}

// SQL renders the CREATE INDEX statement.
func (s IndexSpec) SQL() string {
	return raw.IndexSQL(raw.Method(s.Method), s.Name, s.Table, s.Column)
}

// NewIndexCommand creates the index command.
func NewIndexCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &IndexOptions{}

	cmd := &cobra.Command{
		Use:   "index [gin|gist]",
		Short: "Print trigram index DDL",
		Long: `Print CREATE INDEX statements for trigram indexes.

Either pass the method with --name, --table and --column, or read many
indexes from a yaml plan with -f. GIN is faster to search; GiST also
serves <-> nearest-neighbour ordering.`,
		Example: `  pgtrgm index gin --name users_name_trgm_idx --table users --column name
  pgtrgm index -f indexes.yaml --extension`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := loadPlan(opts, args)
			if err != nil {
				return err
			}
			return runIndex(rootOpts, plan, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "index name")
	cmd.Flags().StringVar(&opts.Table, "table", "", "table name")
	cmd.Flags().StringVar(&opts.Column, "column", "", "text column")
	cmd.Flags().BoolVar(&opts.Extension, "extension", false, "prefix CREATE EXTENSION IF NOT EXISTS pg_trgm")
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "yaml index plan")

	return cmd
}

func loadPlan(opts *IndexOptions, args []string) (*IndexPlan, error) {
	if opts.File != "" {
		if len(args) > 0 {
			return nil, errors.New("method argument cannot be combined with --file")
		}
		data, err := os.ReadFile(opts.File)
		if err != nil {
			return nil, fmt.Errorf("reading index plan: %w", err)
		}
		plan, err := ParsePlan(data)
		if err != nil {
			return nil, err
		}
		plan.Extension = plan.Extension || opts.Extension
		return plan, nil
	}

	if len(args) == 0 {
		return nil, errors.New("method (gin or gist) or --file is required")
	}
	return &IndexPlan{
		Extension: opts.Extension,
		Indexes: []IndexSpec{{
			Name:   opts.Name,
			Table:  opts.Table,
			Column: opts.Column,
			Method: args[0],
		}},
	}, nil
}

// ParsePlan decodes a yaml index plan. Unknown keys are rejected.
func ParsePlan(data []byte) (*IndexPlan, error) {
	var plan IndexPlan
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&plan); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("index plan is empty")
		}
		return nil, fmt.Errorf("parsing index plan: %w", err)
	}
	if len(plan.Indexes) == 0 {
		return nil, errors.New("index plan lists no indexes")
	}
	return &plan, nil
}

func runIndex(opts *RootOptions, plan *IndexPlan, w io.Writer) error {
	for _, spec := range plan.Indexes {
		if err := spec.Validate(); err != nil {
			return err
		}
	}

	if plan.Extension {
		if _, err := fmt.Fprintf(w, "%s;\n", raw.CreateExtensionSQL); err != nil {
			return err
		}
	}
	for _, spec := range plan.Indexes {
		opts.logger.Debug().
			Str("index", spec.Name).
			Str("table", spec.Table).
			Str("method", spec.Method).
			Msg("rendering index")
		if _, err := fmt.Fprintf(w, "%s;\n", spec.SQL()); err != nil {
			return err
		}
	}
	return nil
}
