// Package render turns a bundle route on a script element into markup: one
// cache-busted reference to the combined bundle, or one reference per source
// file when the pipeline is disabled.
package render

import (
	"context"

	"github.com/opmodel/bundler/internal/asset"
	"github.com/opmodel/bundler/internal/fingerprint"
)

// BundleAttribute is the attribute that names the bundle route.
const BundleAttribute = "bundle"

// Options configures a Renderer.
type Options struct {
	// Enabled serves the combined bundle. When false each source file is
	// referenced individually.
	Enabled bool

	// Parallelism bounds concurrent file hashing in expanded mode.
	// Zero or less means unbounded.
	Parallelism int
}

// Registry resolves bundle routes.
type Registry interface {
	Resolve(route string) (asset.Asset, error)
}

// Versions supplies version tokens, typically a *fingerprint.Versioner.
type Versions interface {
	FileVersion(ctx context.Context, path string) (fingerprint.Token, error)
	AssetVersion(ctx context.Context, a asset.Asset) (fingerprint.Token, error)
}

// QuoteStyle records how an attribute value was written.
type QuoteStyle int

const (
	// DoubleQuotes is name="value".
	DoubleQuotes QuoteStyle = iota
	// SingleQuotes is name='value'.
	SingleQuotes
	// NoQuotes is name=value.
	NoQuotes
	// Minimized is a bare name with no value.
	Minimized
)

// Attribute is one attribute of a markup element. Value is kept as written,
// without entity decoding.
type Attribute struct {
	Name  string
	Value string
	Style QuoteStyle
}

// String serializes the attribute in its original quoting style.
func (a Attribute) String() string {
	switch a.Style {
	case Minimized:
		return a.Name
	case SingleQuotes:
		return a.Name + "='" + a.Value + "'"
	case NoQuotes:
		return a.Name + "=" + a.Value
	default:
		return a.Name + `="` + a.Value + `"`
	}
}

// Element is the markup being processed.
type Element interface {
	// Attributes returns the element's attributes in source order.
	Attributes() []Attribute

	// SetAttribute overwrites or adds an attribute using double quotes.
	// value is raw text; implementations escape it for output.
	SetAttribute(name, value string)

	// SuppressOutput drops the element itself from the output.
	SuppressOutput()

	// AppendPostElement appends raw markup after the element.
	AppendPostElement(html string)
}
