package docxrender

import (
	"testing"

	"github.com/fumiama/go-docx"
	"github.com/little-yangyang/docx-render/internal/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_HTML(t *testing.T) {
	content := `<h1>Title</h1><p>Hello <b>world</b></p>` +
		`<script>alert("x")</script><ul><li>a</li><li>b</li></ul><ol><li>one</li></ol>`
	tpl := newTemplate(t, sample.Text("before", "{{html .content}}", "after"))
	require.NoError(t, tpl.Render(Context{"content": content}))

	assert.Equal(t, "before\nTitle\nHello world\n• a\n• b\n1. one\nafter\n", tpl.Text())
	assert.NotContains(t, tpl.Text(), "alert")
}

func TestRender_HTMLRunStyles(t *testing.T) {
	tpl := newTemplate(t, sample.Text("{{html .content}}"))
	require.NoError(t, tpl.Render(Context{"content": `<p>a <strong>b</strong> <em>c</em> <u>d</u></p>`}))

	items := tpl.doc.Document.Body.Items
	require.Len(t, items, 1)
	p, ok := items[0].(*docx.Paragraph)
	require.True(t, ok)

	styled := map[string]*docx.RunProperties{}
	for _, child := range p.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if text, ok := rc.(*docx.Text); ok {
				styled[text.Text] = run.RunProperties
			}
		}
	}
	require.Contains(t, styled, "b")
	require.NotNil(t, styled["b"])
	assert.NotNil(t, styled["b"].Bold)
	require.NotNil(t, styled["c"])
	assert.NotNil(t, styled["c"].Italic)
	require.NotNil(t, styled["d"])
	assert.NotNil(t, styled["d"].Underline)
}

func TestRender_HTMLHeadingStyle(t *testing.T) {
	tpl := newTemplate(t, sample.Text("{{html .content}}"))
	require.NoError(t, tpl.Render(Context{"content": "<h2>Sub</h2>"}))

	items := tpl.doc.Document.Body.Items
	require.Len(t, items, 1)
	p := items[0].(*docx.Paragraph)
	require.NotNil(t, p.Properties)
	require.NotNil(t, p.Properties.Style)
	assert.Equal(t, "Heading2", p.Properties.Style.Val)
}

func TestRender_HTMLEmptyFragmentKeepsSlot(t *testing.T) {
	tpl := newTemplate(t, sample.Text("a", "{{html .content}}", "b"))
	require.NoError(t, tpl.Render(Context{"content": "<script>x</script>"}))
	assert.Equal(t, "a\n\nb\n", tpl.Text())
}

func TestRender_HTMLImage(t *testing.T) {
	tpl := newTemplate(t, sample.Text("{{html .content}}"))
	content := `<p>logo <img src="` + pngDataURI(t) + `" width="10" height="20"></p>`
	require.NoError(t, tpl.Render(Context{"content": content}))
	assert.Equal(t, "logo [IMAGE]\n", tpl.Text())
}

func TestPixelsToEMU(t *testing.T) {
	tests := map[string]int64{
		"10":    10 * emuPerPixel,
		" 4px ": 4 * emuPerPixel,
		"50%":   0,
		"-3":    0,
		"":      0,
		"abc":   0,
	}
	for in, want := range tests {
		assert.Equal(t, want, pixelsToEMU(in), "pixelsToEMU(%q)", in)
	}
}
