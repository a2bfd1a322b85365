package cmd

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRoutes_Table(t *testing.T) {
	p := newProject(t)

	stdout, _, err := execute(t, "", p.args("routes")...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "ROUTE")
	assert.Contains(t, stdout, "/js/site.js")
	assert.Contains(t, stdout, "/js/b.js")
	assert.Contains(t, stdout, "/css/main.css")
	assert.NotContains(t, stdout, "VERSION")
}

func TestRoutes_JSONWithVersions(t *testing.T) {
	p := newProject(t)

	stdout, _, err := execute(t, "", p.args("routes", "-o", "json", "--versions")...)
	require.NoError(t, err)

	var got []routeEntry
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))

	want := []routeEntry{
		{Route: "/css/site.css", SourceFiles: []string{"/css/main.css"}, Version: p.token(t, "/css/site.css")},
		{Route: "/js/site.js", SourceFiles: []string{"/js/a.js", "/js/b.js"}, Version: p.token(t, "/js/site.js")},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("routes mismatch (-want +got):\n%s", diff)
	}
}

func TestRoutes_YAML(t *testing.T) {
	p := newProject(t)

	stdout, _, err := execute(t, "", p.args("routes", "-o", "yaml")...)
	require.NoError(t, err)

	var got []routeEntry
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "/css/site.css", got[0].Route)
	assert.Empty(t, got[0].Version)
}

func TestRoutes_InvalidFormat(t *testing.T) {
	p := newProject(t)

	_, _, err := execute(t, "", p.args("routes", "-o", "xml")...)
	require.Error(t, err)
	assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
}
