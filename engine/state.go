package engine

// MentionHandler renders a parsed platform entity (mention, broadcast tag)
// into its visible inner text. Handlers are looked up by entity kind.
type MentionHandler func(n *Node) string

// State is the mutable context threaded through one parse/render call.
//
// Scalar flags are isolated by cloning at scope boundaries that require
// it (quote entry, emphasis entry); the map-valued fields are shared by
// reference and must not be written to once parsing has started.
type State struct {
	Inline     bool // true while parsing inline scope
	InQuote    bool // inside a block quote; quotes do not nest
	InEmphasis bool // inside an emphasis span; triggers collapsing
	EscapeHTML bool // HTML-escape plain text on render

	// CSSModules, when non-nil, remaps emitted CSS class tokens.
	CSSModules map[string]string

	// Mentions maps an entity kind ("user", "channel", "role",
	// "everyone", "here") to its rendering handler.
	Mentions map[string]MentionHandler
}

// Clone returns a shallow copy of the state. Map fields are shared with
// the receiver.
func (s *State) Clone() *State {
	dup := *s
	return &dup
}
