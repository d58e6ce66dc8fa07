/*
Package engine implements a generic rule-driven parser and renderer for
inline markup dialects.

A grammar is an ordered table of rules. Each rule carries a match
predicate, a parse transform and a render transform. Parsing walks the
source with recursive descent: at every position the first rule (in
precedence order) whose match succeeds is committed to, its parse step
may recurse into nested content, and the resulting node is appended to
the current branch. Rendering walks the node tree and dispatches each
node to the renderer registered for its type.

Rule tables are built once and are read-only afterwards; they may be
shared freely between goroutines. A State instance belongs to exactly
one parse/render call.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package engine

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dmark.engine'.
func tracer() tracing.Trace {
	return tracing.Select("dmark.engine")
}
