// Package htmltag builds HTML tag strings from untrusted pieces.
//
// All attribute names and values pass through the sanitizer before they
// are embedded; class attributes are additionally rewritten through the
// state's CSS-module table when one is configured.
package htmltag

import (
	"strings"

	"github.com/npillmayer/dmark/engine"
)

// Attr is a single tag attribute. Attributes are kept as an ordered
// slice rather than a map so that emitted tags are byte-stable.
type Attr struct {
	Key   string
	Value string
}

// Tag assembles an HTML tag. Attributes with an empty value are omitted.
// With closed=false only the opening tag is emitted and content is
// ignored, for void tags like img.
func Tag(name string, content string, attrs []Attr, closed bool, s *engine.State) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(name)
	for _, a := range attrs {
		if a.Value == "" {
			continue
		}
		value := a.Value
		if a.Key == "class" && s != nil && s.CSSModules != nil {
			value = RemapClasses(value, s.CSSModules)
		}
		b.WriteByte(' ')
		b.WriteString(EscapeText(a.Key))
		b.WriteString(`="`)
		b.WriteString(EscapeText(value))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	if !closed {
		return b.String()
	}
	b.WriteString(content)
	b.WriteString("</")
	b.WriteString(name)
	b.WriteByte('>')
	return b.String()
}

// RemapClasses maps each space-separated class token through table;
// tokens without an entry pass through unchanged.
func RemapClasses(classes string, table map[string]string) string {
	tokens := strings.Fields(classes)
	for i, tok := range tokens {
		if mapped, ok := table[tok]; ok {
			tokens[i] = mapped
		}
	}
	return strings.Join(tokens, " ")
}
