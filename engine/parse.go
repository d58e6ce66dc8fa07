package engine

import (
	"math"

	"github.com/npillmayer/dmark/core"
)

// ParserFor derives a parser from a rule table. The parser repeatedly
// commits to the first rule, in precedence order, whose match succeeds at
// the current position. Among consecutive equal-order rules that carry a
// quality score, the highest-scoring capture wins instead.
//
// Tables are expected to contain a terminal catch-all rule; a position no
// rule matches is a table-construction defect and panics.
func ParserFor(t *Table) Parser {
	entries := t.entries()
	var nested Parser
	nested = func(source string, s *State) []*Node {
		if len(entries) == 0 {
			panic(core.Error(core.EINVALID, "empty rule table"))
		}
		var result []*Node
		prev := ""
		for len(source) > 0 {
			var (
				name    string
				rule    *Rule
				capture *Capture
			)
			quality := math.NaN()
			i := 0
			current := entries[i]
			for {
				currOrder := current.rule.Order
				if c := current.rule.Match(source, s, prev); c != nil {
					q := 0.0
					if current.rule.Quality != nil {
						q = current.rule.Quality(c, s, prev)
					}
					// quality starts out as NaN, so the first capture always takes
					if !(q <= quality) {
						name, rule, capture, quality = current.name, current.rule, c, q
					}
				}
				i++
				if i >= len(entries) {
					break
				}
				next := entries[i]
				if capture != nil && !(next.rule.Order == currOrder && next.rule.Quality != nil) {
					break
				}
				current = next
			}
			if rule == nil {
				panic(core.Error(core.EMISSING, "no rule matched at %q, table lacks a catch-all", clip(source)))
			}
			if capture.Full() == "" {
				panic(core.Error(core.EINTERNAL, "rule %q matched the empty string", name))
			}
			tracer().Debugf("rule %q matched %q", name, clip(capture.Full()))
			for _, n := range rule.Parse(capture, nested, s) {
				if n.Type == "" {
					n.Type = name
				}
				result = append(result, n)
			}
			prev = capture.Full()
			source = source[len(prev):]
		}
		return result
	}
	return nested
}

func clip(s string) string {
	if len(s) > 16 {
		return s[:16] + "…"
	}
	return s
}
