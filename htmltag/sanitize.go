package htmltag

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// EscapeText HTML-escapes the characters &<>"' for safe embedding in
// element content and attribute values.
func EscapeText(s string) string {
	return html.EscapeString(s)
}

// Unsafe URL schemes. Matching happens on a decoded, letter/digit/colon/
// slash-reduced prefix, so scheme obfuscation through percent-encoding or
// interspersed control characters does not slip through.
var unsafeSchemes = []string{"javascript:", "vbscript:", "data:"}

// SanitizeURL screens a URL for use in an href attribute. Unsafe or
// undecodable URLs come back as the empty string, which callers treat as
// "drop the attribute".
func SanitizeURL(raw string) string {
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	var b strings.Builder
	for _, r := range decoded {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '/', r == ':':
			b.WriteRune(r)
		}
	}
	prot := strings.ToLower(b.String())
	for _, scheme := range unsafeSchemes {
		if strings.HasPrefix(prot, scheme) {
			return ""
		}
	}
	return raw
}
