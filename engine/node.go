package engine

// Node is a parsed syntactic unit. Node is a union over all variants the
// grammar can produce, keyed by Type; which payload fields are meaningful
// depends on the variant. Trees are produced once by the parser, consumed
// once by the renderer, and never mutated in between.
type Node struct {
	Type string // rule name; stamped by the driver when the parse step leaves it empty

	Content []*Node // nested nodes (quote, emphasis, spoiler, link text)
	Literal string  // raw text payload (text, code)

	// links
	Target string
	Title  string

	// fenced code
	Lang    string
	InQuote bool

	// platform entities
	ID       string
	Name     string
	Animated bool
}

// Text returns a plain text node, exempt from further inline parsing.
func Text(content string) *Node {
	return &Node{Type: "text", Literal: content}
}
