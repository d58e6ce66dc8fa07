// Package highlight turns fenced-code content into span-wrapped HTML.
//
// It fronts the chroma highlighter with classed output, leaving the
// surrounding pre/code structure to the caller. An unknown language is a
// normal miss, not an error: callers fall back to escaped plain text.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dmark.highlight'.
func tracer() tracing.Trace {
	return tracing.Select("dmark.highlight")
}

var formatter = chromahtml.New(
	chromahtml.WithClasses(true),
	chromahtml.PreventSurroundingPre(true),
)

// Code highlights source written in the given language. ok reports
// whether highlighting happened; on a miss (unknown language, tokenizer
// failure) the caller keeps its plain-text fallback.
func Code(source string, language string) (code string, ok bool) {
	if language == "" {
		return "", false
	}
	lexer := lexers.Get(language)
	if lexer == nil {
		tracer().Debugf("no lexer for language %q", language)
		return "", false
	}
	lexer = chroma.Coalesce(lexer)
	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		tracer().Errorf("tokenizing %q source: %v", language, err)
		return "", false
	}
	var b strings.Builder
	if err := formatter.Format(&b, styles.Fallback, iterator); err != nil {
		tracer().Errorf("formatting %q source: %v", language, err)
		return "", false
	}
	return b.String(), true
}
