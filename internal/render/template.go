package render

import (
	"context"
	"html"
	"html/template"
	"strings"
)

// FuncMap returns html/template functions backed by r:
//
//	{{ bundle "/bundle.js" "defer" "type=module" }}
//
// Extra arguments become attributes: a bare name is minimized, name=value is
// double-quoted.
func (r *Renderer) FuncMap(ctx context.Context) template.FuncMap {
	return template.FuncMap{
		"bundle": func(route string, attrs ...string) (template.HTML, error) {
			return r.RenderTag(ctx, route, attrs...)
		},
	}
}

// RenderTag renders a script element for route with the given attributes.
func (r *Renderer) RenderTag(ctx context.Context, route string, attrs ...string) (template.HTML, error) {
	el := NewTagElement("script", parseAttrArgs(attrs))
	if err := r.Render(ctx, route, el); err != nil {
		return "", err
	}
	return template.HTML(el.HTML("", "</script>")), nil //nolint:gosec // src is escaped by SetAttribute and scriptTag, extra attributes by parseAttrArgs
}

func parseAttrArgs(args []string) []Attribute {
	attrs := make([]Attribute, 0, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			attrs = append(attrs, Attribute{Name: arg, Style: Minimized})
			continue
		}
		attrs = append(attrs, Attribute{Name: name, Value: html.EscapeString(value), Style: DoubleQuotes})
	}
	return attrs
}
