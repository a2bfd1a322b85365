package cmd

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opmodel/bundler/internal/cmdutil"
	"github.com/opmodel/bundler/internal/output"
	"github.com/opmodel/bundler/internal/render"
)

// templateExts marks files executed as html/template with the bundle function.
var templateExts = map[string]bool{
	".tmpl":   true,
	".gohtml": true,
}

// NewRenderCmd creates the render command.
func NewRenderCmd() *cobra.Command {
	var outDir string

	c := &cobra.Command{
		Use:   "render [FILE...]",
		Short: "Render bundle script references in HTML",
		Long: `Render bundle script references in HTML documents.

Every <script bundle="/route"> element is replaced with the markup for the
route. HTML files are processed token by token and all other markup is
copied unchanged. Files ending in .tmpl or .gohtml are executed as
html/template templates with a "bundle" function:

  {{ bundle "/js/site.js" "defer" "type=module" }}

With no files, the document is read from stdin and written to stdout.

Examples:
  # Render a page to stdout
  bundler render index.html

  # Render pages with one reference per source file
  bundler render --no-pipeline --out dist/ index.html about.gohtml`,
		RunE: func(c *cobra.Command, args []string) error {
			return runRender(c, args, outDir)
		},
	}

	c.Flags().StringVar(&outDir, "out", "", "Write rendered files to this directory")

	return c
}

func runRender(c *cobra.Command, args []string, outDir string) error {
	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	p, err := cmdutil.NewPipeline(cmdutil.PipelineOpts{Config: GetResolvedConfig()})
	if err != nil {
		return reportError("loading bundles", err)
	}

	if len(args) == 0 {
		if _, err := p.Renderer.ProcessHTML(ctx, c.InOrStdin(), c.OutOrStdout()); err != nil {
			return reportError("rendering stdin", err)
		}
		return nil
	}

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return reportError("creating output directory", err)
		}
	}

	for _, path := range args {
		var buf bytes.Buffer
		if err := renderFile(ctx, p.Renderer, path, &buf); err != nil {
			return reportError(fmt.Sprintf("rendering %s", path), err)
		}

		if outDir == "" {
			if _, err := buf.WriteTo(c.OutOrStdout()); err != nil {
				return err
			}
			continue
		}

		dest := filepath.Join(outDir, outputName(path))
		if err := os.WriteFile(dest, buf.Bytes(), 0o644); err != nil {
			return reportError(fmt.Sprintf("writing %s", dest), err)
		}
		output.Debug("wrote rendered file", "source", path, "dest", dest)
	}

	fmt.Fprintln(c.ErrOrStderr(), output.FormatRenderSummary(len(args), p.Renderer.Enabled()))
	return nil
}

// renderFile renders one file into w.
func renderFile(ctx context.Context, r *render.Renderer, path string, w io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if !templateExts[strings.ToLower(filepath.Ext(path))] {
		n, err := r.ProcessHTML(ctx, bytes.NewReader(data), w)
		if err != nil {
			return err
		}
		if n == 0 {
			output.Warn("no bundle elements found", "path", path)
		}
		output.Debug("rendered document", "path", path, "bundles", n)
		return nil
	}

	tmpl, err := template.New(filepath.Base(path)).Funcs(r.FuncMap(ctx)).Parse(string(data))
	if err != nil {
		return fmt.Errorf("parsing template: %w", err)
	}
	return tmpl.Execute(w, nil)
}

// outputName strips a template extension: page.html.tmpl becomes page.html.
func outputName(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if !templateExts[strings.ToLower(ext)] {
		return base
	}
	base = strings.TrimSuffix(base, ext)
	if filepath.Ext(base) == "" {
		base += ".html"
	}
	return base
}
