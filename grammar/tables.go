package grammar

import (
	"github.com/npillmayer/dmark/engine"
)

// Full builds the default rule table: Markdown core plus all platform
// entities.
func Full() *engine.Table {
	t := engine.NewTable()
	t.Add("block_quote", BlockQuote())
	t.Add("code_block", CodeBlock())
	t.Add("newline", Newline())
	t.Add("escape", Escape())
	t.Add("autolink", AutoLink())
	t.Add("url", URL())
	t.Add("em", Em())
	t.Add("strong", Strong())
	t.Add("u", Underline())
	t.Add("strike", Strike())
	t.Add("inline_code", InlineCode())
	t.Add("text", Text())
	t.Add("emoticon", Emoticon())
	t.Add("br", Br())
	t.Add("spoiler", Spoiler())
	addPlatform(t)
	tracer().Debugf("built full rule table")
	return t
}

// MentionsOnly builds the restricted table: platform entities plus plain
// text, with all Markdown formatting disabled.
func MentionsOnly() *engine.Table {
	t := engine.NewTable()
	t.Add("text", Text())
	addPlatform(t)
	tracer().Debugf("built mentions-only rule table")
	return t
}

// EmbedTable builds the Full table augmented with the bracket-link rule,
// for trusted embed contexts.
func EmbedTable() *engine.Table {
	return Full().Extend([]string{"link"}, []*engine.Rule{Link()})
}

func addPlatform(t *engine.Table) {
	t.Add("discord_user", UserMention())
	t.Add("discord_channel", ChannelMention())
	t.Add("discord_role", RoleMention())
	t.Add("discord_emoji", Emoji())
	t.Add("discord_everyone", Everyone())
	t.Add("discord_here", Here())
}
