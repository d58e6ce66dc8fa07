package dmark

import (
	"github.com/npillmayer/dmark/core"
	"github.com/npillmayer/dmark/engine"
	"github.com/npillmayer/dmark/grammar"
)

// The preset tables and their derived parser/renderer pairs are built at
// initialization and never mutated, so concurrent ToHTML calls share
// them freely.
var (
	fullTable     = grammar.Full()
	embedTable    = grammar.EmbedTable()
	mentionsTable = grammar.MentionsOnly()

	parseFull     = engine.ParserFor(fullTable)
	outputFull    = engine.OutputFor(fullTable)
	parseEmbed    = engine.ParserFor(embedTable)
	outputEmbed   = engine.OutputFor(embedTable)
	parseMentions = engine.ParserFor(mentionsTable)
	outputMention = engine.OutputFor(mentionsTable)
)

// ToHTML renders source, written in the chat Markdown dialect, to a
// sanitized HTML fragment.
//
// Table selection precedence: a custom parser/renderer pair beats
// DiscordOnly beats Embed beats the default full table. Supplying only
// one half of a custom pair is a configuration error.
func ToHTML(source string, opts ...Option) (string, error) {
	cfg := config{escapeHTML: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if (cfg.parser == nil) != (cfg.output == nil) {
		return "", core.Error(core.EINVALID,
			"custom parser and custom output must be supplied together, not just one")
	}

	parse, output := parseFull, outputFull
	switch {
	case cfg.parser != nil:
		parse, output = cfg.parser, cfg.output
	case cfg.discordOnly:
		parse, output = parseMentions, outputMention
	case cfg.embed:
		parse, output = parseEmbed, outputEmbed
	}

	state := &engine.State{
		Inline:     true,
		EscapeHTML: cfg.escapeHTML,
		CSSModules: cfg.cssModules,
		Mentions:   cfg.callbacks.Merged(),
	}
	tracer().Debugf("rendering %d bytes of source", len(source))
	rendered := output(parse(source, state), state)
	if cfg.policy != nil {
		rendered = cfg.policy.Sanitize(rendered)
	}
	return rendered, nil
}
