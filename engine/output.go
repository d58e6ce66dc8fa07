package engine

import (
	"strings"

	"github.com/npillmayer/dmark/core"
)

// OutputFor derives a renderer from a rule table. Every node type the
// table's parse steps can produce must have a renderer registered in the
// same table; a missing renderer is a table-construction defect and
// panics.
func OutputFor(t *Table) Renderer {
	var render Renderer
	render = func(nodes []*Node, s *State) string {
		var b strings.Builder
		for _, n := range nodes {
			rule, ok := t.Rule(n.Type)
			if !ok || rule.Render == nil {
				panic(core.Error(core.EMISSING, "no renderer for node type %q", n.Type))
			}
			b.WriteString(rule.Render(n, render, s))
		}
		return b.String()
	}
	return render
}
