package selector_test

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/csskit/selector"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestCompileRendersParseableCSS(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.selector")
	defer teardown()
	//
	builders := []*selector.Builder{
		selector.ID("main").Class("container").Class("editable"),
		selector.Element("a").Attr(`href$=".png"`).PseudoClass("focus"),
		selector.Element("div").ID("app").Class("wide").PseudoElement("before"),
		selector.Combine(selector.Element("div"), selector.Adjacent, selector.Element("span")),
	}
	for _, b := range builders {
		if _, err := b.Compile(); err != nil {
			t.Errorf("expected '%s' to compile with cascadia, got error: %s", b, err)
		}
	}
}

func TestCompilePseudoElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.selector")
	defer teardown()
	//
	sel, err := selector.Element("p").PseudoElement("first-line").Compile()
	if err != nil {
		t.Fatalf("expected chain with pseudo-element to compile, got error: %s", err)
	}
	if sel.PseudoElement() != "first-line" {
		t.Errorf("expected cascadia to report pseudo-element 'first-line', is '%s'", sel.PseudoElement())
	}
}

func TestCompileDeadChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.selector")
	defer teardown()
	//
	if _, err := selector.Class("a").ID("b").Compile(); err == nil {
		t.Error("expected Compile of a dead chain to fail, didn't")
	}
}

const fixture = `<html><body>
<div id="main" class="container editable">
  <a href="image.png">a picture</a>
</div>
<span class="note">aside</span>
</body></html>`

func TestCompiledSelectorMatchesDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.selector")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(fixture))
	require.NoError(t, err, "cannot parse HTML fixture")
	//
	sel, err := selector.ID("main").Class("container").Class("editable").Compile()
	require.NoError(t, err)
	node := cascadia.Query(doc, sel)
	require.NotNil(t, node, "expected selector to match the fixture's div")
	if node.Data != "div" {
		t.Errorf("expected selector to match a div, matched '%s'", node.Data)
	}
	//
	sel, err = selector.Element("span").Class("note").Compile()
	require.NoError(t, err)
	node = cascadia.Query(doc, sel)
	require.NotNil(t, node, "expected selector to match the fixture's span")
	if node.Data != "span" {
		t.Errorf("expected selector to match a span, matched '%s'", node.Data)
	}
}

func TestRenderedSelectorSurvivesStylesheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.selector")
	defer teardown()
	//
	sel, err := selector.ID("main").Class("container").Stringify()
	require.NoError(t, err)
	sheet, err := parser.Parse(sel + " { color: black; }")
	require.NoError(t, err, "cannot parse stylesheet around rendered selector")
	require.Len(t, sheet.Rules, 1)
	if prelude := sheet.Rules[0].Prelude; prelude != sel {
		t.Errorf("expected stylesheet prelude '%s', is '%s'", sel, prelude)
	}
}
