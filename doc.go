/*
Package dmark renders a chat-oriented Markdown dialect into sanitized
HTML.

Input is untrusted user-authored text; the rendered fragment is safe to
embed into a page. The dialect extends plain Markdown with platform
inline entities (user/channel/role mentions, custom emoji, broadcast
tags), spoiler spans and a block-quote variant, while restricting some
standard behaviors: quotes do not nest, doubled emphasis collapses, and
every newline is a hard break.

The one call that matters is ToHTML:

	html, err := dmark.ToHTML("*hello* <@123>")

Options select the embed or mentions-only grammar, override per-kind
mention callbacks, remap emitted CSS classes, disable text escaping, or
swap in a custom parser/renderer pair built from the grammar package.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dmark

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dmark'.
func tracer() tracing.Trace {
	return tracing.Select("dmark")
}
