package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/bundler/internal/config"
	"github.com/opmodel/bundler/internal/fingerprint"
	"github.com/opmodel/bundler/internal/output"
)

// NewFingerprintCmd creates the fingerprint command.
func NewFingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint PATH...",
		Short: "Print version tokens for files under the web root",
		Long: `Print the version token of each file.

Paths resolve against the web root. A leading "/" or "~/" refers to the
web root itself, and any "?query" suffix is ignored.

Examples:
  bundler fingerprint /js/site.js /css/site.css
  bundler fingerprint --hash xxhash /js/site.js`,
		Args: cobra.MinimumNArgs(1),
		RunE: runFingerprint,
	}
}

func runFingerprint(c *cobra.Command, args []string) error {
	rc := GetResolvedConfig()
	if rc == nil {
		rc = &config.ResolvedConfig{}
	}

	algo, err := fingerprint.ParseAlgorithm(rc.Hash.Value)
	if err != nil {
		return reportError("invalid hash algorithm", err)
	}
	gen := fingerprint.NewGenerator(fingerprint.WebRootFs(rc.WebRoot.Value), algo)

	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	for _, path := range args {
		tok, err := gen.FileVersion(ctx, path)
		if err != nil {
			return reportError(fmt.Sprintf("fingerprinting %s", path), err)
		}
		fmt.Fprintln(c.OutOrStdout(), output.FormatTokenLine(path, tok.String()))
	}
	return nil
}
