/*
Package grammar defines the chat-dialect Markdown grammar: the base
Markdown rules this dialect keeps (quotes, fenced code, emphasis, links),
its deliberate deviations (no quote nesting, collapsed double emphasis,
hard line breaks), and the platform inline entities (user/channel/role
mentions, custom emoji, broadcast tags, spoilers).

Three preset rule tables exist. Full carries Markdown plus all platform
entities; MentionsOnly restricts the grammar to platform entities and
plain text; EmbedTable adds the bracket-link rule for trusted embed
contexts.

Precedence is inherited from the base grammar's canonical order numbers.
A rule that specializes a base rule takes over its order slot; rules
without a base counterpart sit at the slot of the rule they must be tried
alongside (platform entities share the strong slot, the emoticon shares
the text slot), and the spoiler sits at order 0, before everything else.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dmark.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("dmark.grammar")
}
