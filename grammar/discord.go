package grammar

import (
	"github.com/npillmayer/dmark/engine"
	"github.com/npillmayer/dmark/htmltag"
)

// Callbacks customizes how platform entities render their inner text.
// A nil field keeps the default, which is a sanitized placeholder
// (`@id`, `#id`, `&id`, literal `@everyone`/`@here`). Callback output is
// embedded verbatim — a callback returning markup is trusted to escape
// its own data.
type Callbacks struct {
	User     engine.MentionHandler
	Channel  engine.MentionHandler
	Role     engine.MentionHandler
	Everyone engine.MentionHandler
	Here     engine.MentionHandler
}

// DefaultCallbacks returns the placeholder callbacks.
func DefaultCallbacks() Callbacks {
	return Callbacks{
		User:     func(n *engine.Node) string { return "@" + htmltag.EscapeText(n.ID) },
		Channel:  func(n *engine.Node) string { return "#" + htmltag.EscapeText(n.ID) },
		Role:     func(n *engine.Node) string { return "&" + htmltag.EscapeText(n.ID) },
		Everyone: func(n *engine.Node) string { return "@everyone" },
		Here:     func(n *engine.Node) string { return "@here" },
	}
}

// Merged fills nil fields with the defaults and returns the handler map
// keyed by entity kind, ready for engine.State.
func (cb Callbacks) Merged() map[string]engine.MentionHandler {
	defaults := DefaultCallbacks()
	pick := func(h, fallback engine.MentionHandler) engine.MentionHandler {
		if h != nil {
			return h
		}
		return fallback
	}
	return map[string]engine.MentionHandler{
		"user":     pick(cb.User, defaults.User),
		"channel":  pick(cb.Channel, defaults.Channel),
		"role":     pick(cb.Role, defaults.Role),
		"everyone": pick(cb.Everyone, defaults.Everyone),
		"here":     pick(cb.Here, defaults.Here),
	}
}

func handler(s *engine.State, kind string) engine.MentionHandler {
	if s.Mentions != nil {
		if h, ok := s.Mentions[kind]; ok && h != nil {
			return h
		}
	}
	// state assembled without callbacks, e.g. a custom parser/renderer pair
	return DefaultCallbacks().Merged()[kind]
}

func parseID(c *engine.Capture, parse engine.Parser, s *engine.State) []*engine.Node {
	return []*engine.Node{{ID: c.Group(1)}}
}

func renderMentionSpan(kind string, class string) engine.RenderFunc {
	return func(n *engine.Node, render engine.Renderer, s *engine.State) string {
		attrs := []htmltag.Attr{{Key: "class", Value: class}}
		return htmltag.Tag("span", handler(s, kind)(n), attrs, true, s)
	}
}

// UserMention matches `<@id>` and `<@!id>` (nickname form).
func UserMention() *engine.Rule {
	return &engine.Rule{
		Order:  orderEmphasis,
		Match:  engine.AnyScopeRegex(`^<@!?([0-9]+)>`),
		Parse:  parseID,
		Render: renderMentionSpan("user", "d-mention d-user"),
	}
}

// ChannelMention matches `<#id>`; the marker is optional, as in the
// platform's own grammar.
func ChannelMention() *engine.Rule {
	return &engine.Rule{
		Order:  orderEmphasis,
		Match:  engine.AnyScopeRegex(`^<#?([0-9]+)>`),
		Parse:  parseID,
		Render: renderMentionSpan("channel", "d-mention d-channel"),
	}
}

// RoleMention matches `<@&id>`.
func RoleMention() *engine.Rule {
	return &engine.Rule{
		Order:  orderEmphasis,
		Match:  engine.AnyScopeRegex(`^<@&([0-9]+)>`),
		Parse:  parseID,
		Render: renderMentionSpan("role", "d-mention d-role"),
	}
}

// emojiCDN is the image host for custom emoji, keyed by id and
// animated-ness.
const emojiCDN = "https://cdn.discordapp.com/emojis/"

// Emoji matches `<:name:id>` and the animated form `<a:name:id>`.
func Emoji() *engine.Rule {
	return &engine.Rule{
		Order: orderEmphasis,
		Match: engine.AnyScopeRegex(`^<(a?):(\w+):(\d+)>`),
		Parse: func(c *engine.Capture, parse engine.Parser, s *engine.State) []*engine.Node {
			return []*engine.Node{{
				Animated: c.Group(1) == "a",
				Name:     c.Group(2),
				ID:       c.Group(3),
			}}
		},
		Render: func(n *engine.Node, render engine.Renderer, s *engine.State) string {
			class, ext := "d-emoji", ".png"
			if n.Animated {
				class, ext = "d-emoji d-emoji-animated", ".gif"
			}
			attrs := []htmltag.Attr{
				{Key: "class", Value: class},
				{Key: "src", Value: emojiCDN + n.ID + ext},
				{Key: "alt", Value: ":" + n.Name + ":"},
			}
			return htmltag.Tag("img", "", attrs, false, s)
		},
	}
}

// Everyone matches the literal `@everyone` broadcast tag.
func Everyone() *engine.Rule {
	return &engine.Rule{
		Order: orderEmphasis,
		Match: engine.AnyScopeRegex(`^@everyone`),
		Parse: func(c *engine.Capture, parse engine.Parser, s *engine.State) []*engine.Node {
			return []*engine.Node{{}}
		},
		Render: renderMentionSpan("everyone", "d-mention d-user"),
	}
}

// Here matches the literal `@here` broadcast tag.
func Here() *engine.Rule {
	return &engine.Rule{
		Order: orderEmphasis,
		Match: engine.AnyScopeRegex(`^@here`),
		Parse: func(c *engine.Capture, parse engine.Parser, s *engine.State) []*engine.Node {
			return []*engine.Node{{}}
		},
		Render: renderMentionSpan("here", "d-mention d-user"),
	}
}
