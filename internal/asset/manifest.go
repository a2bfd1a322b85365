package asset

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"

	oerrors "github.com/opmodel/bundler/internal/errors"
)

// LoadManifest reads a bundle manifest written by the build step. The file is
// a JSON or YAML list of {route, sourceFiles} entries.
func LoadManifest(fs afero.Fs, path string) ([]Asset, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, oerrors.NewNotFoundError(
			fmt.Sprintf("reading bundle manifest: %v", err), path,
			"Set manifest in bundler.yaml or pass --manifest")
	}

	var assets []Asset
	if err := yaml.UnmarshalStrict(data, &assets); err != nil {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("parsing bundle manifest: %v", err), path, "",
			"The manifest must be a list of {route, sourceFiles} entries")
	}

	return assets, nil
}

// LoadRegistry reads the manifest at path and registers its assets.
func LoadRegistry(fs afero.Fs, path string) (*Registry, error) {
	assets, err := LoadManifest(fs, path)
	if err != nil {
		return nil, err
	}

	reg, err := NewRegistry(assets...)
	if err != nil {
		var detail *oerrors.DetailError
		if errors.As(err, &detail) {
			detail.Location = path
		}
		return nil, err
	}
	return reg, nil
}
