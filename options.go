package dmark

import (
	"github.com/microcosm-cc/bluemonday"
	"github.com/npillmayer/dmark/engine"
	"github.com/npillmayer/dmark/grammar"
)

type config struct {
	embed       bool
	discordOnly bool
	escapeHTML  bool
	callbacks   grammar.Callbacks
	cssModules  map[string]string
	parser      engine.Parser
	output      engine.Renderer
	policy      *bluemonday.Policy
}

// Option configures a single ToHTML call.
type Option func(*config)

// Embed selects the link-augmented rule table, for trusted embed
// contexts where literal hyperlinks are allowed.
func Embed() Option {
	return func(c *config) { c.embed = true }
}

// DiscordOnly restricts the grammar to platform entities plus plain
// text, disabling all Markdown formatting.
func DiscordOnly() Option {
	return func(c *config) { c.discordOnly = true }
}

// WithoutEscaping passes unmatched text through verbatim instead of
// HTML-escaping it. Only for content that is already known to be safe.
func WithoutEscaping() Option {
	return func(c *config) { c.escapeHTML = false }
}

// WithMentions overrides mention-rendering callbacks per entity kind;
// nil fields keep the sanitized placeholder defaults.
func WithMentions(cb grammar.Callbacks) Option {
	return func(c *config) { c.callbacks = cb }
}

// WithCSSModules remaps every emitted CSS class token through m; tokens
// without an entry pass through unchanged.
func WithCSSModules(m map[string]string) Option {
	return func(c *config) { c.cssModules = m }
}

// WithParser installs a custom parser, bypassing table selection. It
// must be paired with WithOutput.
func WithParser(p engine.Parser) Option {
	return func(c *config) { c.parser = p }
}

// WithOutput installs a custom renderer, bypassing table selection. It
// must be paired with WithParser.
func WithOutput(o engine.Renderer) Option {
	return func(c *config) { c.output = o }
}

// WithPolicy runs the rendered fragment through a bluemonday policy as a
// final pass. The output is escape-safe without it; the policy is
// defense in depth for callers embedding into sensitive contexts.
func WithPolicy(p *bluemonday.Policy) Option {
	return func(c *config) { c.policy = p }
}
