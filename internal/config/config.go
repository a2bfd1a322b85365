// Package config provides configuration loading and management.
package config

// Default values applied by WithDefaults.
const (
	DefaultWebRoot     = "wwwroot"
	DefaultManifest    = "bundleconfig.json"
	DefaultHash        = "sha256"
	DefaultParallelism = 8
)

// PipelineConfig controls the rendering mode.
type PipelineConfig struct {
	// Enabled serves combined bundles. false references each source file.
	// Env: BUNDLER_PIPELINE_ENABLED, Default: true
	Enabled *bool `json:"enabled,omitempty" yaml:"enabled,omitempty" mapstructure:"enabled"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty" mapstructure:"timestamps"`
}

// Config represents the bundler configuration file (bundler.yaml).
type Config struct {
	// WebRoot is the content root that file paths resolve against.
	// Env: BUNDLER_WEBROOT, Default: wwwroot
	WebRoot string `json:"webRoot,omitempty" yaml:"webRoot,omitempty" mapstructure:"webRoot"`

	// Manifest is the bundle manifest written by the build step.
	// Env: BUNDLER_MANIFEST, Default: bundleconfig.json
	Manifest string `json:"manifest,omitempty" yaml:"manifest,omitempty" mapstructure:"manifest"`

	// Hash is the version token algorithm: sha256 or xxhash.
	// Env: BUNDLER_HASH, Default: sha256
	Hash string `json:"hash,omitempty" yaml:"hash,omitempty" mapstructure:"hash"`

	// Parallelism bounds concurrent file hashing per element.
	// Env: BUNDLER_PARALLELISM, Default: 8
	Parallelism int `json:"parallelism,omitempty" yaml:"parallelism,omitempty" mapstructure:"parallelism"`

	// Pipeline controls the rendering mode.
	Pipeline PipelineConfig `json:"pipeline,omitempty" yaml:"pipeline,omitempty" mapstructure:"pipeline"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty" yaml:"log,omitempty" mapstructure:"log"`
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	enabled := true
	return &Config{
		WebRoot:     DefaultWebRoot,
		Manifest:    DefaultManifest,
		Hash:        DefaultHash,
		Parallelism: DefaultParallelism,
		Pipeline:    PipelineConfig{Enabled: &enabled},
	}
}

// WithDefaults returns a copy of c with unset fields defaulted.
func (c *Config) WithDefaults() *Config {
	out := *c
	def := DefaultConfig()
	if out.WebRoot == "" {
		out.WebRoot = def.WebRoot
	}
	if out.Manifest == "" {
		out.Manifest = def.Manifest
	}
	if out.Hash == "" {
		out.Hash = def.Hash
	}
	if out.Parallelism <= 0 {
		out.Parallelism = def.Parallelism
	}
	if out.Pipeline.Enabled == nil {
		out.Pipeline.Enabled = def.Pipeline.Enabled
	}
	return &out
}

// PipelineEnabled reports the pipeline mode, defaulting to enabled.
func (c *Config) PipelineEnabled() bool {
	return c.Pipeline.Enabled == nil || *c.Pipeline.Enabled
}
