package engine

import (
	"github.com/dlclark/regexp2"
)

// Capture is the result of a successful rule match. Group 0 is the full
// matched span; further groups are the rule's own business and are only
// ever consumed by the owning rule's parse step.
type Capture struct {
	groups []string
}

// NewCapture builds a capture from explicit groups, full match first.
// Custom match predicates use it when they do not go through a regex
// helper.
func NewCapture(groups ...string) *Capture {
	return &Capture{groups: groups}
}

// Full returns the fully matched span (group 0).
func (c *Capture) Full() string {
	return c.Group(0)
}

// Group returns captured group i, or "" for an absent group.
func (c *Capture) Group(i int) string {
	if i < 0 || i >= len(c.groups) {
		return ""
	}
	return c.groups[i]
}

// Parser parses source into a node sequence, threading a state through
// the descent. ParserFor derives one from a rule table.
type Parser func(source string, s *State) []*Node

// Renderer renders a node sequence to HTML. OutputFor derives one from a
// rule table.
type Renderer func(nodes []*Node, s *State) string

// MatchFunc decides whether a rule applies at the start of source.
// prev is the previously committed capture (empty at the start of a
// branch); block-level rules use it to detect line boundaries.
// A nil return means no match.
type MatchFunc func(source string, s *State, prev string) *Capture

// QualityFunc scores a capture for disambiguation between rules of equal
// order; the highest score wins.
type QualityFunc func(c *Capture, s *State, prev string) float64

// ParseFunc turns a capture into nodes, optionally recursing via parse.
// Most rules return a single node; returning several splices them into
// the surrounding branch (emphasis collapsing relies on this).
type ParseFunc func(c *Capture, parse Parser, s *State) []*Node

// RenderFunc renders a node, recursing into nested content via render.
type RenderFunc func(n *Node, render Renderer, s *State) string

// Rule is one named grammar unit: a precedence order plus match, parse
// and render capabilities. Rules are immutable after registration in a
// table; overriding a base rule means building a new Rule value that
// keeps the functions one does not want to change.
type Rule struct {
	Order   int
	Match   MatchFunc
	Quality QualityFunc // optional
	Parse   ParseFunc
	Render  RenderFunc // may be nil if the parse step never emits this rule's own type
}

// --- Regex match helpers ---------------------------------------------------

// The grammar's patterns come from a Javascript lineage and lean on
// lookahead and backreferences, hence regexp2 rather than the stdlib's
// RE2 engine.

func compile(pattern string) *regexp2.Regexp {
	return regexp2.MustCompile(pattern, regexp2.None)
}

func matchPrefix(re *regexp2.Regexp, source string) *Capture {
	m, err := re.FindStringMatch(source)
	if err != nil || m == nil || m.Index != 0 {
		return nil
	}
	groups := make([]string, m.GroupCount())
	for i, g := range m.Groups() {
		groups[i] = g.String()
	}
	return &Capture{groups: groups}
}

// InlineRegex builds a matcher that applies only in inline scope.
// The pattern must be anchored with '^'.
func InlineRegex(pattern string) MatchFunc {
	re := compile(pattern)
	return func(source string, s *State, prev string) *Capture {
		if !s.Inline {
			return nil
		}
		return matchPrefix(re, source)
	}
}

// BlockRegex builds a matcher that applies only in block scope.
func BlockRegex(pattern string) MatchFunc {
	re := compile(pattern)
	return func(source string, s *State, prev string) *Capture {
		if s.Inline {
			return nil
		}
		return matchPrefix(re, source)
	}
}

// AnyScopeRegex builds a matcher indifferent to scope.
func AnyScopeRegex(pattern string) MatchFunc {
	re := compile(pattern)
	return func(source string, s *State, prev string) *Capture {
		return matchPrefix(re, source)
	}
}
