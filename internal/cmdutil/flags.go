// Package cmdutil provides shared command utilities: pipeline construction
// from resolved configuration and error reporting.
package cmdutil

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/bundler/internal/output"
)

// OutputFlags holds the --output flag for listing commands.
type OutputFlags struct {
	Format string
}

// AddTo registers the output flag on the given cobra command.
func (f *OutputFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Format, "output", "o", "table",
		"Output format: table, yaml, json")
}

// Parse validates the flag value.
func (f *OutputFlags) Parse() (output.OutputFormat, error) {
	format, ok := output.ParseOutputFormat(f.Format)
	if !ok {
		return "", InvalidFormatError(f.Format)
	}
	return format, nil
}
