package dmark

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/microcosm-cc/bluemonday"
	"github.com/npillmayer/dmark/core"
	"github.com/npillmayer/dmark/engine"
	"github.com/npillmayer/dmark/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
)

// query parses a rendered fragment and returns the nodes matching a CSS
// selector.
func query(t *testing.T, fragment string, selector string) []*html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		t.Fatalf("cannot parse rendered fragment: %v", err)
	}
	return cascadia.MustCompile(selector).MatchAll(doc)
}

func innerText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func TestToHTMLPlainText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dmark")
	defer teardown()
	//
	out, err := ToHTML("plain words 123")
	assert.NoError(t, err)
	assert.Equal(t, "plain words 123", out)
}

func TestToHTMLEscapesByDefault(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dmark")
	defer teardown()
	//
	out, err := ToHTML("<b>hi</b>")
	assert.NoError(t, err)
	assert.Equal(t, "&lt;b&gt;hi&lt;/b&gt;", out)
}

func TestToHTMLWithoutEscaping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dmark")
	defer teardown()
	//
	out, err := ToHTML("<b>hi</b>", WithoutEscaping())
	assert.NoError(t, err)
	assert.Equal(t, "<b>hi</b>", out)
}

func TestToHTMLQuoteAndBreaks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dmark")
	defer teardown()
	//
	out, err := ToHTML("> hello")
	assert.NoError(t, err)
	assert.Equal(t, "<blockquote>hello</blockquote>", out)

	out, err = ToHTML(">>> a\nb")
	assert.NoError(t, err)
	assert.Equal(t, "<blockquote>a<br>b</blockquote>", out)
}

func TestToHTMLMentionStructure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dmark")
	defer teardown()
	//
	out, err := ToHTML("<@123>", DiscordOnly())
	assert.NoError(t, err)
	spans := query(t, out, "span.d-mention.d-user")
	assert.Len(t, spans, 1)
	assert.Equal(t, "@123", innerText(spans[0]))
}

func TestToHTMLMentionCallbackOverride(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dmark")
	defer teardown()
	//
	out, err := ToHTML("<@123>", WithMentions(grammar.Callbacks{
		User: func(n *engine.Node) string { return "custom" },
	}))
	assert.NoError(t, err)
	spans := query(t, out, "span.d-mention.d-user")
	assert.Len(t, spans, 1, "the wrapping tag and class must survive the override")
	assert.Equal(t, "custom", innerText(spans[0]))
}

func TestToHTMLEmojiStructure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dmark")
	defer teardown()
	//
	out, err := ToHTML("<a:wave:999>")
	assert.NoError(t, err)
	imgs := query(t, out, "img.d-emoji.d-emoji-animated")
	assert.Len(t, imgs, 1)
	assert.True(t, strings.HasSuffix(attrValue(imgs[0], "src"), "999.gif"))
	assert.Equal(t, ":wave:", attrValue(imgs[0], "alt"))

	out, err = ToHTML("<:wave:999>")
	assert.NoError(t, err)
	imgs = query(t, out, "img.d-emoji")
	assert.Len(t, imgs, 1)
	assert.True(t, strings.HasSuffix(attrValue(imgs[0], "src"), "999.png"))
	assert.Empty(t, query(t, out, "img.d-emoji-animated"))
}

func TestToHTMLDiscordOnlyDisablesMarkdown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dmark")
	defer teardown()
	//
	out, err := ToHTML("*x*", DiscordOnly())
	assert.NoError(t, err)
	assert.Equal(t, "*x*", out)
}

func TestToHTMLEmbedLink(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dmark")
	defer teardown()
	//
	out, err := ToHTML("[text](https://example.com)", Embed())
	assert.NoError(t, err)
	assert.Equal(t, `<a href="https://example.com">text</a>`, out)
}

func TestToHTMLSelectionPrecedence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dmark")
	defer teardown()
	//
	// discord_only beats embed
	out, err := ToHTML("*x*", Embed(), DiscordOnly())
	assert.NoError(t, err)
	assert.Equal(t, "*x*", out)
}

func TestToHTMLCustomPair(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dmark")
	defer teardown()
	//
	tbl := grammar.MentionsOnly()
	out, err := ToHTML("*x* <@5>",
		WithParser(engine.ParserFor(tbl)),
		WithOutput(engine.OutputFor(tbl)),
		Embed()) // custom pair wins over table options
	assert.NoError(t, err)
	assert.Contains(t, out, "*x*")
	assert.Contains(t, out, `<span class="d-mention d-user">@5</span>`)
}

func TestToHTMLCustomPairIncomplete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dmark")
	defer teardown()
	//
	tbl := grammar.Full()
	_, err := ToHTML("x", WithParser(engine.ParserFor(tbl)))
	assert.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))

	_, err = ToHTML("x", WithOutput(engine.OutputFor(tbl)))
	assert.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestToHTMLCSSModules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dmark")
	defer teardown()
	//
	out, err := ToHTML("||x||", WithCSSModules(map[string]string{
		"d-spoiler": "sp_1f",
	}))
	assert.NoError(t, err)
	assert.Equal(t, `<span class="sp_1f">x</span>`, out)
}

func TestToHTMLPolicyPass(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dmark")
	defer teardown()
	//
	policy := bluemonday.NewPolicy()
	policy.AllowElements("em")
	out, err := ToHTML("*x* ~~y~~", WithPolicy(policy))
	assert.NoError(t, err)
	assert.Contains(t, out, "<em>x</em>")
	assert.NotContains(t, out, "<del>")
}

func TestToHTMLConcurrentCalls(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dmark")
	defer teardown()
	//
	// preset tables are shared; states are per call
	done := make(chan string, 8)
	for i := 0; i < 8; i++ {
		go func() {
			out, _ := ToHTML("> *hi* <@1>")
			done <- out
		}()
	}
	first := <-done
	for i := 1; i < 8; i++ {
		assert.Equal(t, first, <-done)
	}
}
