package cmdutil

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/opmodel/bundler/internal/asset"
	"github.com/opmodel/bundler/internal/config"
	"github.com/opmodel/bundler/internal/fingerprint"
	"github.com/opmodel/bundler/internal/output"
	"github.com/opmodel/bundler/internal/render"
)

// Pipeline holds the components a command needs to render bundles.
type Pipeline struct {
	Registry  *asset.Registry
	Generator *fingerprint.Generator
	Versions  *fingerprint.Versioner
	Renderer  *render.Renderer
}

// PipelineOpts holds the inputs for NewPipeline.
type PipelineOpts struct {
	// Config is the resolved configuration.
	Config *config.ResolvedConfig

	// ManifestFs reads the manifest. Defaults to the OS file system.
	ManifestFs afero.Fs

	// WebRootFs reads files to fingerprint. Defaults to the configured web root.
	WebRootFs afero.Fs
}

// NewPipeline loads the bundle manifest and wires the registry, version
// cache, and renderer.
func NewPipeline(opts PipelineOpts) (*Pipeline, error) {
	rc := opts.Config
	if rc == nil {
		return nil, fmt.Errorf("configuration not resolved")
	}

	algo, err := fingerprint.ParseAlgorithm(rc.Hash.Value)
	if err != nil {
		return nil, err
	}

	manifestFs := opts.ManifestFs
	if manifestFs == nil {
		manifestFs = afero.NewOsFs()
	}
	reg, err := asset.LoadRegistry(manifestFs, rc.Manifest.Value)
	if err != nil {
		return nil, err
	}

	webRoot := opts.WebRootFs
	if webRoot == nil {
		webRoot = fingerprint.WebRootFs(rc.WebRoot.Value)
	}

	gen := fingerprint.NewGenerator(webRoot, algo)
	versions := fingerprint.NewVersioner(gen, fingerprint.NewCache())
	renderer := render.New(reg, versions, render.Options{
		Enabled:     rc.PipelineEnabled,
		Parallelism: rc.Parallelism,
	})

	output.Debug("pipeline ready",
		"manifest", rc.Manifest.Value,
		"webRoot", rc.WebRoot.Value,
		"routes", reg.Len(),
		"mode", output.ModeLabel(rc.PipelineEnabled),
		"hash", gen.Algorithm(),
	)

	return &Pipeline{
		Registry:  reg,
		Generator: gen,
		Versions:  versions,
		Renderer:  renderer,
	}, nil
}
