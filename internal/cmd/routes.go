package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/opmodel/bundler/internal/cmdutil"
	"github.com/opmodel/bundler/internal/output"
)

// routeEntry is one row of the routes listing.
type routeEntry struct {
	Route       string   `json:"route" yaml:"route"`
	SourceFiles []string `json:"sourceFiles" yaml:"sourceFiles"`
	Version     string   `json:"version,omitempty" yaml:"version,omitempty"`
}

// NewRoutesCmd creates the routes command.
func NewRoutesCmd() *cobra.Command {
	var (
		outputFlags cmdutil.OutputFlags
		versions    bool
	)

	c := &cobra.Command{
		Use:   "routes",
		Short: "List registered bundle routes",
		Long: `List the bundle routes registered by the manifest with their source files.

With --versions, the version token of each combined artifact is shown.
This requires the bundles to be built under the web root.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runRoutes(c, &outputFlags, versions)
		},
	}

	outputFlags.AddTo(c)
	c.Flags().BoolVar(&versions, "versions", false, "Include the version token of each combined artifact")

	return c
}

func runRoutes(c *cobra.Command, outputFlags *cmdutil.OutputFlags, versions bool) error {
	format, err := outputFlags.Parse()
	if err != nil {
		return reportError("invalid flag", err)
	}

	p, err := cmdutil.NewPipeline(cmdutil.PipelineOpts{Config: GetResolvedConfig()})
	if err != nil {
		return reportError("loading bundles", err)
	}

	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	routes := p.Registry.Routes()
	entries := make([]routeEntry, 0, len(routes))
	for _, route := range routes {
		a, _ := p.Registry.Lookup(route)
		entry := routeEntry{Route: a.Route, SourceFiles: a.Files()}
		if versions {
			tok, err := p.Versions.AssetVersion(ctx, a)
			if err != nil {
				return reportError(fmt.Sprintf("fingerprinting %s", route), err)
			}
			entry.Version = tok.String()
		}
		entries = append(entries, entry)
	}

	w := c.OutOrStdout()
	switch format {
	case output.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case output.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	}

	if len(entries) == 0 {
		output.Info("no bundle routes registered", "manifest", GetResolvedConfig().Manifest.Value)
		return nil
	}

	headers := []string{"ROUTE", "SOURCE FILES"}
	if versions {
		headers = append(headers, "VERSION")
	}
	tbl := output.NewTable(headers...)
	for _, e := range entries {
		row := []string{e.Route, strings.Join(e.SourceFiles, "\n")}
		if versions {
			row = append(row, e.Version)
		}
		tbl.Row(row...)
	}
	fmt.Fprintln(w, tbl.String())
	return nil
}
