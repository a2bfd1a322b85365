package render

import (
	"context"
	"html"
	"strings"

	"github.com/opmodel/bundler/internal/asset"
	"github.com/opmodel/bundler/internal/output"
)

// Renderer rewrites bundle elements. It holds no per-render state and is safe
// for concurrent use.
type Renderer struct {
	registry Registry
	versions Versions
	opts     Options
}

// New creates a Renderer.
func New(registry Registry, versions Versions, opts Options) *Renderer {
	return &Renderer{registry: registry, versions: versions, opts: opts}
}

// Enabled reports whether the renderer serves combined bundles.
func (r *Renderer) Enabled() bool {
	return r.opts.Enabled
}

// Render processes el for the given bundle route.
//
// An empty route leaves el untouched. An unknown route is an error and el is
// left untouched. In bundled mode the element's src becomes the route plus a
// version parameter. In expanded mode el is suppressed and one script element
// per source file is appended after it, in source order.
func (r *Renderer) Render(ctx context.Context, route string, el Element) error {
	if route == "" {
		return nil
	}

	base, _ := SplitQuery(route)
	a, err := r.registry.Resolve(base)
	if err != nil {
		return err
	}

	if r.opts.Enabled {
		tok, err := r.versions.AssetVersion(ctx, a)
		if err != nil {
			return err
		}
		el.SetAttribute("src", AppendVersion(route, tok.String()))
		output.BundleLogger(a.Route).Debug("rendered bundle", "mode", output.ModeBundled, "token", tok)
		return nil
	}

	return r.expand(ctx, a, el)
}

func (r *Renderer) expand(ctx context.Context, a asset.Asset, el Element) error {
	files := a.Files()
	tokens, err := r.fileVersions(ctx, files)
	if err != nil {
		return err
	}

	attrs := serializeAttributes(el.Attributes())
	el.SuppressOutput()
	for i, file := range files {
		el.AppendPostElement(scriptTag(AppendVersion(file, tokens[i]), attrs))
	}

	output.BundleLogger(a.Route).Debug("rendered bundle", "mode", output.ModeExpanded, "files", len(files))
	return nil
}

// SplitQuery splits ref on its first '?'. query excludes the '?'.
func SplitQuery(ref string) (path, query string) {
	if i := strings.IndexByte(ref, '?'); i >= 0 {
		return ref[:i], ref[i+1:]
	}
	return ref, ""
}

// AppendVersion appends v=token to ref, joining with '&' when ref already has
// a query and '?' otherwise.
func AppendVersion(ref, token string) string {
	sep := "?"
	if strings.IndexByte(ref, '?') >= 0 {
		sep = "&"
	}
	return ref + sep + "v=" + token
}

// serializeAttributes joins attributes for an expanded element. src is left
// out because each expanded element carries its own.
func serializeAttributes(attrs []Attribute) string {
	parts := make([]string, 0, len(attrs))
	for _, a := range attrs {
		if strings.EqualFold(a.Name, "src") {
			continue
		}
		parts = append(parts, a.String())
	}
	return strings.Join(parts, " ")
}

func scriptTag(src, attrs string) string {
	var b strings.Builder
	b.WriteString(`<script src="`)
	b.WriteString(html.EscapeString(src))
	b.WriteString(`"`)
	if attrs != "" {
		b.WriteString(" ")
		b.WriteString(attrs)
	}
	b.WriteString("></script>")
	return b.String()
}
