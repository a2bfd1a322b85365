package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html"
)

// ProcessHTML copies an HTML document from src to dst, rendering every
// <script bundle="..."> element on the way. All other bytes are copied
// unchanged. The bundle attribute itself never reaches the output.
//
// Nothing is written to dst if any element fails to render.
func (r *Renderer) ProcessHTML(ctx context.Context, src io.Reader, dst io.Writer) (int, error) {
	var out bytes.Buffer
	z := html.NewTokenizer(src)
	rendered := 0

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return 0, fmt.Errorf("tokenizing html: %w", err)
			}
			break
		}

		raw := string(z.Raw())
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			out.WriteString(raw)
			continue
		}

		name, hasAttr := z.TagName()
		if string(name) != "script" || !hasAttr {
			out.WriteString(raw)
			continue
		}

		_, attrs, selfClosing := parseStartTag(raw)
		el := NewTagElement("script", attrs)
		el.selfClosing = selfClosing || tt == html.SelfClosingTagToken
		bundle, ok := el.RemoveAttribute(BundleAttribute)
		if !ok {
			out.WriteString(raw)
			continue
		}

		var content, endTag string
		if !el.selfClosing {
			content, endTag = scriptBody(z)
		}

		route := html.UnescapeString(bundle.Value)
		if err := r.Render(ctx, route, el); err != nil {
			return 0, err
		}
		out.WriteString(el.HTML(content, endTag))
		rendered++
	}

	if _, err := out.WriteTo(dst); err != nil {
		return 0, err
	}
	return rendered, nil
}

// scriptBody consumes tokens up to and including the closing </script>.
func scriptBody(z *html.Tokenizer) (content, endTag string) {
	var b bytes.Buffer
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return b.String(), ""
		case html.EndTagToken:
			if name, _ := z.TagName(); string(name) == "script" {
				return b.String(), string(z.Raw())
			}
		}
		b.Write(z.Raw())
	}
}
