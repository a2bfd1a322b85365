package config

import (
	"fmt"
	"os"
	"strconv"

	oerrors "github.com/opmodel/bundler/internal/errors"
	"github.com/opmodel/bundler/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a configuration value with the source that won.
type ResolvedValue struct {
	Key    string
	Value  string
	Source ConfigSource
	// Shadowed holds lower-precedence values that were overridden.
	Shadowed map[ConfigSource]string
}

// ResolvedConfig is the effective configuration after precedence.
type ResolvedConfig struct {
	ConfigPath ResolvedValue
	WebRoot    ResolvedValue
	Manifest   ResolvedValue
	Hash       ResolvedValue
	Pipeline   ResolvedValue

	// PipelineEnabled is Pipeline parsed as a bool.
	PipelineEnabled bool

	// Parallelism bounds concurrent hashing per element.
	Parallelism int
}

// Values returns the resolved values in display order.
func (r *ResolvedConfig) Values() []ResolvedValue {
	return []ResolvedValue{r.ConfigPath, r.WebRoot, r.Manifest, r.Hash, r.Pipeline}
}

// ResolveAllOptions carries flag values and the loaded config.
type ResolveAllOptions struct {
	ConfigFlag   string
	WebRootFlag  string
	ManifestFlag string
	HashFlag     string
	// PipelineFlag is nil unless --pipeline was given explicitly.
	PipelineFlag *bool

	// Config is the loaded file+env configuration (may be nil).
	Config *Config
}

// ResolveAll resolves every setting using precedence:
// (1) flag, (2) BUNDLER_* env, (3) config file, (4) default.
//
// The loaded Config already has env merged in, so a config value whose env
// variable is set is reported with SourceEnv.
func ResolveAll(opts ResolveAllOptions) (*ResolvedConfig, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}
	def := DefaultConfig()

	var pipelineFlag, pipelineCfg string
	if opts.PipelineFlag != nil {
		pipelineFlag = strconv.FormatBool(*opts.PipelineFlag)
	}
	if cfg.Pipeline.Enabled != nil {
		pipelineCfg = strconv.FormatBool(*cfg.Pipeline.Enabled)
	} else {
		// A value viper could not decode still has to be reported.
		pipelineCfg = os.Getenv(envBindings["pipeline.enabled"])
	}

	rc := &ResolvedConfig{
		ConfigPath: resolveValue("config", opts.ConfigFlag, "BUNDLER_CONFIG", os.Getenv("BUNDLER_CONFIG"), DefaultConfigFile),
		WebRoot:    resolveValue("webRoot", opts.WebRootFlag, envBindings["webRoot"], cfg.WebRoot, def.WebRoot),
		Manifest:   resolveValue("manifest", opts.ManifestFlag, envBindings["manifest"], cfg.Manifest, def.Manifest),
		Hash:       resolveValue("hash", opts.HashFlag, envBindings["hash"], cfg.Hash, def.Hash),
		Pipeline:   resolveValue("pipeline.enabled", pipelineFlag, envBindings["pipeline.enabled"], pipelineCfg, "true"),
	}

	enabled, err := parsePipeline(rc.Pipeline, rc.ConfigPath.Value)
	if err != nil {
		return nil, err
	}
	rc.PipelineEnabled = enabled

	rc.Parallelism = cfg.Parallelism
	if rc.Parallelism <= 0 {
		rc.Parallelism = def.Parallelism
	}

	return rc, nil
}

func parsePipeline(rv ResolvedValue, location string) (bool, error) {
	enabled, err := strconv.ParseBool(rv.Value)
	if err != nil {
		return false, oerrors.NewValidationError(
			fmt.Sprintf("pipeline.enabled must be true or false, got %q", rv.Value), location, rv.Key,
			"Set pipeline.enabled or BUNDLER_PIPELINE_ENABLED to true or false")
	}
	return enabled, nil
}

// resolveValue applies flag > env/config > default. cfgValue already
// contains any env override, so env presence only decides the source label.
func resolveValue(key, flagValue, envVar, cfgValue, defValue string) ResolvedValue {
	rv := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]string)}

	cfgSource := SourceConfig
	if envVar != "" && os.Getenv(envVar) != "" {
		cfgSource = SourceEnv
	}

	switch {
	case flagValue != "":
		rv.Value = flagValue
		rv.Source = SourceFlag
		if cfgValue != "" {
			rv.Shadowed[cfgSource] = cfgValue
		}
		rv.Shadowed[SourceDefault] = defValue
	case cfgValue != "":
		rv.Value = cfgValue
		rv.Source = cfgSource
		rv.Shadowed[SourceDefault] = defValue
	default:
		rv.Value = defValue
		rv.Source = SourceDefault
	}

	return rv
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
