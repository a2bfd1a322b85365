package render

import "strings"

// parseStartTag reads a raw start tag such as `<script defer src='a.js'>` and
// returns its name and attributes with their original quoting. Values are
// not entity-decoded.
func parseStartTag(raw string) (name string, attrs []Attribute, selfClosing bool) {
	s := strings.TrimPrefix(raw, "<")
	i := 0

	for i < len(s) && !isSpace(s[i]) && s[i] != '/' && s[i] != '>' {
		i++
	}
	name = strings.ToLower(s[:i])

	for i < len(s) {
		for i < len(s) && (isSpace(s[i]) || s[i] == '/') {
			if s[i] == '/' && i+1 < len(s) && s[i+1] == '>' {
				selfClosing = true
			}
			i++
		}
		if i >= len(s) || s[i] == '>' {
			break
		}

		start := i
		i++
		for i < len(s) && !isSpace(s[i]) && s[i] != '=' && s[i] != '>' && s[i] != '/' {
			i++
		}
		attr := Attribute{Name: s[start:i], Style: Minimized}

		j := i
		for j < len(s) && isSpace(s[j]) {
			j++
		}
		if j >= len(s) || s[j] != '=' {
			attrs = append(attrs, attr)
			continue
		}

		i = j + 1
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		switch {
		case i >= len(s):
			attr.Style = NoQuotes
		case s[i] == '"' || s[i] == '\'':
			quote := s[i]
			end := strings.IndexByte(s[i+1:], quote)
			if end < 0 {
				end = len(s) - i - 1
			}
			attr.Value = s[i+1 : i+1+end]
			attr.Style = DoubleQuotes
			if quote == '\'' {
				attr.Style = SingleQuotes
			}
			i += end + 2
		default:
			start := i
			for i < len(s) && !isSpace(s[i]) && s[i] != '>' {
				i++
			}
			attr.Value = s[start:i]
			attr.Style = NoQuotes
		}
		attrs = append(attrs, attr)
	}

	return name, attrs, selfClosing
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
