package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "wwwroot", cfg.WebRoot)
	assert.Equal(t, "bundleconfig.json", cfg.Manifest)
	assert.Equal(t, "sha256", cfg.Hash)
	assert.Equal(t, 8, cfg.Parallelism)
	assert.True(t, cfg.PipelineEnabled())
}

func TestWithDefaults(t *testing.T) {
	disabled := false
	cfg := &Config{
		WebRoot:  "public",
		Pipeline: PipelineConfig{Enabled: &disabled},
	}

	got := cfg.WithDefaults()

	assert.Equal(t, "public", got.WebRoot, "set values are kept")
	assert.Equal(t, DefaultManifest, got.Manifest)
	assert.Equal(t, DefaultHash, got.Hash)
	assert.False(t, got.PipelineEnabled())
	assert.Empty(t, cfg.Manifest, "receiver is not modified")
}

func TestPipelineEnabledNil(t *testing.T) {
	assert.True(t, (&Config{}).PipelineEnabled())
}
