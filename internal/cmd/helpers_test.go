package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opmodel/bundler/internal/fingerprint"
	"github.com/opmodel/bundler/internal/testutil"
)

const testManifest = `[
  {"route": "/js/site.js", "sourceFiles": ["/js/a.js", "/js/b.js"]},
  {"route": "/css/site.css", "sourceFiles": ["/css/main.css"]}
]`

// project is a temporary web root with a manifest and built bundles.
type project struct {
	dir      string
	webRoot  string
	manifest string
}

func newProject(t *testing.T) *project {
	t.Helper()
	t.Setenv("BUNDLER_CONFIG", "")
	t.Setenv("BUNDLER_WEBROOT", "")
	t.Setenv("BUNDLER_MANIFEST", "")
	t.Setenv("BUNDLER_HASH", "")
	t.Setenv("BUNDLER_PIPELINE_ENABLED", "")

	dir := testutil.WebRoot(t, map[string]string{
		"wwwroot/js/a.js":      "console.log('a');\n",
		"wwwroot/js/b.js":      "console.log('b');\n",
		"wwwroot/js/site.js":   "console.log('a');console.log('b');\n",
		"wwwroot/css/main.css": "body { margin: 0 }\n",
		"wwwroot/css/site.css": "body{margin:0}\n",
		"bundleconfig.json":    testManifest,
	})
	return &project{
		dir:      dir,
		webRoot:  filepath.Join(dir, "wwwroot"),
		manifest: filepath.Join(dir, "bundleconfig.json"),
	}
}

// args prefixes the global flags pointing at the project.
func (p *project) args(args ...string) []string {
	return append([]string{
		"--config", filepath.Join(p.dir, "bundler.yaml"),
		"--web-root", p.webRoot,
		"--manifest", p.manifest,
	}, args...)
}

// token computes the expected sha256 token of a file under the web root.
func (p *project) token(t *testing.T, path string) string {
	t.Helper()
	gen := fingerprint.NewGenerator(fingerprint.WebRootFs(p.webRoot), fingerprint.SHA256)
	tok, err := gen.FileVersion(context.Background(), path)
	require.NoError(t, err)
	return tok.String()
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
