package grammar

import (
	"regexp"
	"strings"

	"github.com/npillmayer/dmark/engine"
	"github.com/npillmayer/dmark/highlight"
	"github.com/npillmayer/dmark/htmltag"
)

// Order slots inherited from the base grammar. These numbers are
// load-bearing: relative order decides rule disambiguation, and equal
// numbers put rules into the same quality-scored group.
const (
	orderSpoiler    = 0 // tried before everything else in its scope
	orderCodeBlock  = 4
	orderBlockQuote = 6
	orderNewline    = 10
	orderEscape     = 12
	orderAutoLink   = 13
	orderURL        = 15
	orderLink       = 16
	orderEmphasis   = 20 // em, strong and u share one slot; ties go by quality
	orderStrike     = 21
	orderInlineCode = 22
	orderBr         = 23
	orderText       = 24
)

// --- Block quote -----------------------------------------------------------

var (
	quoteLeadRE  = regexp.MustCompile(`^$|\n *$`)
	quoteBodyRE  = regexp.MustCompile(`^(?: *>>> [\s\S]*| *> [^\n]*(?:\n *> [^\n]*)*\n?)`)
	quoteBlockRE = regexp.MustCompile(`^ *>>> ?`)
	quoteLineRE  = regexp.MustCompile(`(?m)^ *> ?`)
)

// BlockQuote marks up `> ` line quotes and `>>> ` block quotes. Quotes do
// not nest: inside a quote the rule refuses to match, and the quoted
// content is parsed with an isolated state so that siblings after the
// quote are unaffected.
func BlockQuote() *engine.Rule {
	return &engine.Rule{
		Order: orderBlockQuote,
		Match: func(source string, s *engine.State, prev string) *engine.Capture {
			// only at a line boundary, and never within another quote
			if s.InQuote || !quoteLeadRE.MatchString(prev) {
				return nil
			}
			m := quoteBodyRE.FindString(source)
			if m == "" {
				return nil
			}
			return engine.NewCapture(m)
		},
		Parse: func(c *engine.Capture, parse engine.Parser, s *engine.State) []*engine.Node {
			all := c.Full()
			var content string
			if loc := quoteBlockRE.FindStringIndex(all); loc != nil {
				// block form: strip the marker once, keep everything else
				content = all[loc[1]:]
			} else {
				content = quoteLineRE.ReplaceAllString(all, "")
			}
			inner := s.Clone()
			inner.InQuote = true
			return []*engine.Node{{Content: parse(content, inner)}}
		},
		Render: func(n *engine.Node, render engine.Renderer, s *engine.State) string {
			return htmltag.Tag("blockquote", render(n.Content, s), nil, true, s)
		},
	}
}

// --- Fenced code -----------------------------------------------------------

var spanClassRE = regexp.MustCompile(`<span class="([a-z0-9-_ ]+)">`)

// CodeBlock matches a triple-backtick fence with an optional language
// tag. Rendering asks the highlighter for span-wrapped HTML and falls
// back to escaped plain text when the language is unknown.
func CodeBlock() *engine.Rule {
	return &engine.Rule{
		Order: orderCodeBlock,
		Match: engine.InlineRegex("(?i)^```(?:([a-z0-9-]+?)\n+)?\n*([\\s\\S]+?)\n*```"),
		Parse: func(c *engine.Capture, parse engine.Parser, s *engine.State) []*engine.Node {
			return []*engine.Node{{
				Lang:    strings.TrimSpace(c.Group(1)),
				Literal: c.Group(2),
				InQuote: s.InQuote,
			}}
		},
		Render: func(n *engine.Node, render engine.Renderer, s *engine.State) string {
			code, ok := highlight.Code(n.Literal, n.Lang)
			if ok && s.CSSModules != nil {
				code = spanClassRE.ReplaceAllStringFunc(code, func(span string) string {
					classes := spanClassRE.FindStringSubmatch(span)[1]
					return `<span class="` + htmltag.RemapClasses(classes, s.CSSModules) + `">`
				})
			}
			class := "hljs"
			inner := code
			if ok {
				if n.Lang != "" {
					class += " " + n.Lang
				}
			} else {
				inner = htmltag.EscapeText(n.Literal)
			}
			codeTag := htmltag.Tag("code", inner, []htmltag.Attr{{Key: "class", Value: class}}, true, s)
			return htmltag.Tag("pre", codeTag, nil, true, s)
		},
	}
}

// --- Base-grammar block leftovers ------------------------------------------

// Newline is the base grammar's blank-line rule. It matches in block
// scope only and renders as a bare newline.
func Newline() *engine.Rule {
	return &engine.Rule{
		Order: orderNewline,
		Match: engine.BlockRegex(`^(?:\n *)*\n`),
		Parse: func(c *engine.Capture, parse engine.Parser, s *engine.State) []*engine.Node {
			return []*engine.Node{{}}
		},
		Render: func(n *engine.Node, render engine.Renderer, s *engine.State) string {
			return "\n"
		},
	}
}

// Escape handles backslash-escaped punctuation, yielding a plain text
// node so the escaped character cannot trigger another inline rule.
func Escape() *engine.Rule {
	return &engine.Rule{
		Order: orderEscape,
		Match: engine.InlineRegex(`^\\([^0-9A-Za-z\s])`),
		Parse: func(c *engine.Capture, parse engine.Parser, s *engine.State) []*engine.Node {
			return []*engine.Node{engine.Text(c.Group(1))}
		},
	}
}

// --- Links -----------------------------------------------------------------

func linkNode(target string) *engine.Node {
	return &engine.Node{
		Content: []*engine.Node{engine.Text(target)},
		Target:  target,
	}
}

func renderAnchor(n *engine.Node, render engine.Renderer, s *engine.State) string {
	attrs := []htmltag.Attr{{Key: "href", Value: htmltag.SanitizeURL(n.Target)}}
	return htmltag.Tag("a", render(n.Content, s), attrs, true, s)
}

// AutoLink matches an angle-bracketed URL.
func AutoLink() *engine.Rule {
	return &engine.Rule{
		Order: orderAutoLink,
		Match: engine.InlineRegex(`^<([^: >]+:\/[^ >]+)>`),
		Parse: func(c *engine.Capture, parse engine.Parser, s *engine.State) []*engine.Node {
			return []*engine.Node{linkNode(c.Group(1))}
		},
		Render: renderAnchor,
	}
}

// URL matches a bare http(s) URL.
func URL() *engine.Rule {
	return &engine.Rule{
		Order: orderURL,
		Match: engine.InlineRegex(`^(https?:\/\/[^\s<]+[^<.,:;"')\]\s])`),
		Parse: func(c *engine.Capture, parse engine.Parser, s *engine.State) []*engine.Node {
			return []*engine.Node{linkNode(c.Group(1))}
		},
		Render: renderAnchor,
	}
}

// pieces of the base grammar's bracket-link pattern
const (
	linkInside       = `(?:\[[^\]]*\]|[^\[\]]|\](?=[^\[]*\]))*`
	linkHrefAndTitle = `\s*<?((?:\([^)]*\)|[^\s\\]|\\.)*?)>?(?:\s+['"]([\s\S]*?)['"])?\s*`
)

var unescapeURLRE = regexp.MustCompile(`\\([^0-9A-Za-z\s])`)

// Link is the `[text](href "title")` rule, used by the embed table only.
func Link() *engine.Rule {
	return &engine.Rule{
		Order: orderLink,
		Match: engine.InlineRegex(`^\[(` + linkInside + `)\]\(` + linkHrefAndTitle + `\)`),
		Parse: func(c *engine.Capture, parse engine.Parser, s *engine.State) []*engine.Node {
			return []*engine.Node{{
				Content: parse(c.Group(1), s),
				Target:  unescapeURLRE.ReplaceAllString(c.Group(2), "$1"),
				Title:   c.Group(3),
			}}
		},
		Render: func(n *engine.Node, render engine.Renderer, s *engine.State) string {
			attrs := []htmltag.Attr{
				{Key: "href", Value: htmltag.SanitizeURL(n.Target)},
				{Key: "title", Value: n.Title},
			}
			return htmltag.Tag("a", render(n.Content, s), attrs, true, s)
		},
	}
}

// --- Emphasis family -------------------------------------------------------

const emPattern = `^\b_((?:__|\\[\s\S]|[^\\_])+?)_\b` +
	`|^\*(?=\S)((?:\*\*|\\[\s\S]|\s+(?:\\[\s\S]|[^\s\*\\]|\*\*)|[^\s\*\\])+?)\*(?!\*)`

// Em is emphasis with the dialect's collapsing twist: an emphasis nested
// directly inside another one yields its content nodes instead of a
// second em wrapper, so `*_text_*` renders a single <em>.
func Em() *engine.Rule {
	return &engine.Rule{
		Order: orderEmphasis,
		Match: engine.InlineRegex(emPattern),
		Quality: func(c *engine.Capture, s *engine.State, prev string) float64 {
			return float64(len(c.Full())) + 0.2
		},
		Parse: func(c *engine.Capture, parse engine.Parser, s *engine.State) []*engine.Node {
			src := c.Group(2)
			if src == "" {
				src = c.Group(1)
			}
			inner := s.Clone()
			inner.InEmphasis = true
			content := parse(src, inner)
			if s.InEmphasis {
				return content
			}
			return []*engine.Node{{Content: content}}
		},
		Render: func(n *engine.Node, render engine.Renderer, s *engine.State) string {
			return htmltag.Tag("em", render(n.Content, s), nil, true, s)
		},
	}
}

// Strong is the base grammar's `**…**` rule, unmodified.
func Strong() *engine.Rule {
	return &engine.Rule{
		Order: orderEmphasis,
		Match: engine.InlineRegex(`^\*\*((?:\\[\s\S]|[^\\])+?)\*\*(?!\*)`),
		Quality: func(c *engine.Capture, s *engine.State, prev string) float64 {
			return float64(len(c.Full())) + 0.1
		},
		Parse: parseCaptureInline,
		Render: func(n *engine.Node, render engine.Renderer, s *engine.State) string {
			return htmltag.Tag("strong", render(n.Content, s), nil, true, s)
		},
	}
}

// Underline is the base grammar's `__…__` rule, unmodified.
func Underline() *engine.Rule {
	return &engine.Rule{
		Order: orderEmphasis,
		Match: engine.InlineRegex(`^__((?:\\[\s\S]|[^\\])+?)__(?!_)`),
		Quality: func(c *engine.Capture, s *engine.State, prev string) float64 {
			return float64(len(c.Full()))
		},
		Parse: parseCaptureInline,
		Render: func(n *engine.Node, render engine.Renderer, s *engine.State) string {
			return htmltag.Tag("u", render(n.Content, s), nil, true, s)
		},
	}
}

// Strike matches `~~…~~` unless the closing fence is directly followed
// by an underscore.
func Strike() *engine.Rule {
	return &engine.Rule{
		Order: orderStrike,
		Match: engine.InlineRegex(`^~~([\s\S]+?)~~(?!_)`),
		Parse: parseCaptureInline,
		Render: func(n *engine.Node, render engine.Renderer, s *engine.State) string {
			return htmltag.Tag("del", render(n.Content, s), nil, true, s)
		},
	}
}

// parseCaptureInline recursively parses capture group 1 as inline
// content.
func parseCaptureInline(c *engine.Capture, parse engine.Parser, s *engine.State) []*engine.Node {
	return []*engine.Node{{Content: parse(c.Group(1), s)}}
}

// --- Inline code, text, breaks ---------------------------------------------

// InlineCode matches backtick spans of any fence length; the closing
// fence must repeat the opening one and not run longer.
func InlineCode() *engine.Rule {
	return &engine.Rule{
		Order: orderInlineCode,
		Match: engine.AnyScopeRegex("^(`+)([\\s\\S]*?[^`])\\1(?!`)"),
		Parse: func(c *engine.Capture, parse engine.Parser, s *engine.State) []*engine.Node {
			return []*engine.Node{{Literal: c.Group(2)}}
		},
		Render: func(n *engine.Node, render engine.Renderer, s *engine.State) string {
			return htmltag.Tag("code", htmltag.EscapeText(strings.TrimSpace(n.Literal)), nil, true, s)
		},
	}
}

// Text is the terminal catch-all: the longest run up to the next special
// character, newline, blank line or `word:`-shaped token. Its renderer is
// the dialect's controlled escaping bypass — content passes through raw
// when the state disables escaping.
func Text() *engine.Rule {
	return &engine.Rule{
		Order: orderText,
		Match: engine.AnyScopeRegex(`^[\s\S]+?(?=[^0-9A-Za-z\sÀ-￿-]|\n\n|\n|\w+:\S|$)`),
		Parse: func(c *engine.Capture, parse engine.Parser, s *engine.State) []*engine.Node {
			return []*engine.Node{{Literal: c.Full()}}
		},
		Render: func(n *engine.Node, render engine.Renderer, s *engine.State) string {
			if s.EscapeHTML {
				return htmltag.EscapeText(n.Literal)
			}
			return n.Literal
		},
	}
}

// Emoticon exempts the shrug glyph from inline parsing: its underscores
// would otherwise read as emphasis. It parses straight to a text node.
func Emoticon() *engine.Rule {
	return &engine.Rule{
		Order: orderText,
		Match: engine.AnyScopeRegex(`^(¯\\_\(ツ\)_/¯)`),
		Parse: func(c *engine.Capture, parse engine.Parser, s *engine.State) []*engine.Node {
			return []*engine.Node{engine.Text(c.Group(1))}
		},
	}
}

// Br treats every single newline as a hard line break, in any scope.
func Br() *engine.Rule {
	return &engine.Rule{
		Order: orderBr,
		Match: engine.AnyScopeRegex(`^\n`),
		Parse: func(c *engine.Capture, parse engine.Parser, s *engine.State) []*engine.Node {
			return []*engine.Node{{}}
		},
		Render: func(n *engine.Node, render engine.Renderer, s *engine.State) string {
			return "<br>"
		},
	}
}

// Spoiler matches a `||…||` span anywhere and parses its interior as
// inline content.
func Spoiler() *engine.Rule {
	return &engine.Rule{
		Order: orderSpoiler,
		Match: engine.AnyScopeRegex(`^\|\|([\s\S]+?)\|\|`),
		Parse: parseCaptureInline,
		Render: func(n *engine.Node, render engine.Renderer, s *engine.State) string {
			attrs := []htmltag.Attr{{Key: "class", Value: "d-spoiler"}}
			return htmltag.Tag("span", render(n.Content, s), attrs, true, s)
		},
	}
}
