package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/bundler/internal/errors"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BUNDLER_CONFIG", "")
	for _, env := range envBindings {
		t.Setenv(env, "")
	}
}

func TestResolveAll_Defaults(t *testing.T) {
	clearEnv(t)

	rc, err := ResolveAll(ResolveAllOptions{})
	require.NoError(t, err)

	assert.Equal(t, DefaultWebRoot, rc.WebRoot.Value)
	assert.Equal(t, SourceDefault, rc.WebRoot.Source)
	assert.Equal(t, DefaultConfigFile, rc.ConfigPath.Value)
	assert.True(t, rc.PipelineEnabled)
	assert.Equal(t, SourceDefault, rc.Pipeline.Source)
	assert.Equal(t, DefaultParallelism, rc.Parallelism)
}

func TestResolveAll_FlagPrecedence(t *testing.T) {
	clearEnv(t)
	enabled := true

	rc, err := ResolveAll(ResolveAllOptions{
		WebRootFlag:  "flag-root",
		PipelineFlag: func() *bool { b := false; return &b }(),
		Config: &Config{
			WebRoot:  "config-root",
			Pipeline: PipelineConfig{Enabled: &enabled},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "flag-root", rc.WebRoot.Value)
	assert.Equal(t, SourceFlag, rc.WebRoot.Source)
	assert.Equal(t, "config-root", rc.WebRoot.Shadowed[SourceConfig])
	assert.False(t, rc.PipelineEnabled)
	assert.Equal(t, "true", rc.Pipeline.Shadowed[SourceConfig])
}

func TestResolveAll_EnvSource(t *testing.T) {
	clearEnv(t)
	t.Setenv("BUNDLER_HASH", "xxhash")

	rc, err := ResolveAll(ResolveAllOptions{Config: &Config{Hash: "xxhash"}})
	require.NoError(t, err)

	assert.Equal(t, "xxhash", rc.Hash.Value)
	assert.Equal(t, SourceEnv, rc.Hash.Source)
	assert.Equal(t, DefaultHash, rc.Hash.Shadowed[SourceDefault])
}

func TestResolveAll_ConfigFallback(t *testing.T) {
	clearEnv(t)

	rc, err := ResolveAll(ResolveAllOptions{Config: &Config{Manifest: "bundles.yaml", Parallelism: 3}})
	require.NoError(t, err)

	assert.Equal(t, "bundles.yaml", rc.Manifest.Value)
	assert.Equal(t, SourceConfig, rc.Manifest.Source)
	assert.Equal(t, 3, rc.Parallelism)
}

func TestResolveAll_ConfigPathFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("BUNDLER_CONFIG", "/etc/bundler.yaml")

	rc, err := ResolveAll(ResolveAllOptions{})
	require.NoError(t, err)
	assert.Equal(t, "/etc/bundler.yaml", rc.ConfigPath.Value)
	assert.Equal(t, SourceEnv, rc.ConfigPath.Source)

	rc, err = ResolveAll(ResolveAllOptions{ConfigFlag: "local.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "local.yaml", rc.ConfigPath.Value)
	assert.Equal(t, "/etc/bundler.yaml", rc.ConfigPath.Shadowed[SourceEnv])
}

func TestResolveValue_InvalidPipeline(t *testing.T) {
	clearEnv(t)
	rv := resolveValue("pipeline.enabled", "", "", "maybe", "true")
	assert.Equal(t, "maybe", rv.Value)

	_, err := parsePipeline(rv, "bundler.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

func TestResolvedConfigValues(t *testing.T) {
	clearEnv(t)
	rc, err := ResolveAll(ResolveAllOptions{})
	require.NoError(t, err)

	keys := make([]string, 0)
	for _, v := range rc.Values() {
		keys = append(keys, v.Key)
	}
	assert.Equal(t, []string{"config", "webRoot", "manifest", "hash", "pipeline.enabled"}, keys)
}

func TestResolveAll_UndecodablePipelineEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("BUNDLER_PIPELINE_ENABLED", "sometimes")

	_, err := ResolveAll(ResolveAllOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}
