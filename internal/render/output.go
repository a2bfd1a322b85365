package render

import (
	"html"
	"strings"
)

// TagElement is an in-memory Element for a single start tag.
type TagElement struct {
	name        string
	attrs       []Attribute
	selfClosing bool
	suppressed  bool
	post        strings.Builder
}

// NewTagElement creates an element with the given tag name and attributes.
func NewTagElement(name string, attrs []Attribute) *TagElement {
	return &TagElement{name: name, attrs: append([]Attribute(nil), attrs...)}
}

// Attributes implements Element.
func (e *TagElement) Attributes() []Attribute {
	return append([]Attribute(nil), e.attrs...)
}

// Attribute returns the named attribute. Names are case-insensitive.
func (e *TagElement) Attribute(name string) (Attribute, bool) {
	for _, a := range e.attrs {
		if strings.EqualFold(a.Name, name) {
			return a, true
		}
	}
	return Attribute{}, false
}

// SetAttribute implements Element. value is raw text and is stored
// HTML-escaped. An existing attribute keeps its position; a new one is
// placed first.
func (e *TagElement) SetAttribute(name, value string) {
	attr := Attribute{Name: name, Value: html.EscapeString(value), Style: DoubleQuotes}
	for i, a := range e.attrs {
		if strings.EqualFold(a.Name, name) {
			e.attrs[i] = attr
			return
		}
	}
	e.attrs = append([]Attribute{attr}, e.attrs...)
}

// RemoveAttribute deletes the named attribute and reports whether it existed.
func (e *TagElement) RemoveAttribute(name string) (Attribute, bool) {
	for i, a := range e.attrs {
		if strings.EqualFold(a.Name, name) {
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			return a, true
		}
	}
	return Attribute{}, false
}

// SuppressOutput implements Element.
func (e *TagElement) SuppressOutput() {
	e.suppressed = true
}

// Suppressed reports whether SuppressOutput was called.
func (e *TagElement) Suppressed() bool {
	return e.suppressed
}

// AppendPostElement implements Element.
func (e *TagElement) AppendPostElement(html string) {
	e.post.WriteString(html)
}

// PostElement returns the markup appended after the element.
func (e *TagElement) PostElement() string {
	return e.post.String()
}

// StartTag serializes the start tag with every attribute in its quoting style.
func (e *TagElement) StartTag() string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(e.name)
	for _, a := range e.attrs {
		b.WriteString(" ")
		b.WriteString(a.String())
	}
	if e.selfClosing {
		b.WriteString(" />")
	} else {
		b.WriteString(">")
	}
	return b.String()
}

// HTML returns the final markup: the element with its content and end tag
// unless suppressed, followed by any post-element markup. A self-closing
// element ignores content and endTag.
func (e *TagElement) HTML(content, endTag string) string {
	var b strings.Builder
	if !e.suppressed {
		b.WriteString(e.StartTag())
		if !e.selfClosing {
			b.WriteString(content)
			b.WriteString(endTag)
		}
	}
	b.WriteString(e.post.String())
	return b.String()
}
