package docxrender

import (
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/fumiama/go-docx"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// HTMLInjector replaces its paragraph with paragraphs built from an HTML
// fragment. The fragment is sanitized first; scripts, styles and unknown
// attributes never reach the document.
type HTMLInjector struct {
	Content string
}

var (
	htmlPolicyOnce sync.Once
	htmlPolicy     *bluemonday.Policy
)

func htmlSanitizer() *bluemonday.Policy {
	htmlPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements(
			"h1", "h2", "h3", "p", "div", "span", "br",
			"strong", "b", "em", "i", "u",
		)
		policy.AllowLists()
		policy.AllowImages()
		policy.AllowDataURIImages()
		htmlPolicy = policy
	})
	return htmlPolicy
}

// Inject implements the Injector interface
func (h HTMLInjector) Inject(doc *docx.Docx, p *docx.Paragraph) ([]interface{}, error) {
	node, err := html.Parse(strings.NewReader(htmlSanitizer().Sanitize(h.Content)))
	if err != nil {
		return nil, err
	}

	b := &htmlBuilder{doc: doc, tmpl: p}
	b.block(node)
	if b.err != nil {
		return nil, b.err
	}
	if len(b.items) == 0 {
		// Keep the slot: an empty fragment still consumes the placeholder.
		return []interface{}{b.newParagraph()}, nil
	}
	return b.items, nil
}

type htmlBuilder struct {
	doc   *docx.Docx
	tmpl  *docx.Paragraph
	items []interface{}
	err   error
}

func (b *htmlBuilder) newParagraph() *docx.Paragraph {
	p := b.doc.AddParagraph()
	// AddParagraph appends to the body; the caller places it instead.
	items := b.doc.Document.Body.Items
	if len(items) > 0 {
		b.doc.Document.Body.Items = items[:len(items)-1]
	}
	p.XMLName = b.tmpl.XMLName
	return p
}

func (b *htmlBuilder) block(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			b.element(c)
		case html.TextNode:
			if text := strings.TrimSpace(c.Data); text != "" {
				p := b.newParagraph()
				p.AddText(text)
				b.items = append(b.items, p)
			}
		}
	}
}

func (b *htmlBuilder) element(n *html.Node) {
	switch n.Data {
	case "h1", "h2", "h3":
		p := b.newParagraph()
		p.Style(headingStyle(n.Data))
		p.AddText(strings.TrimSpace(extractText(n)))
		b.items = append(b.items, p)
	case "p":
		p := b.newParagraph()
		b.inline(n, p, runStyle{})
		b.items = append(b.items, p)
	case "ul", "ol":
		i := 0
		for li := n.FirstChild; li != nil; li = li.NextSibling {
			if li.Type != html.ElementNode || li.Data != "li" {
				continue
			}
			i++
			p := b.newParagraph()
			if n.Data == "ol" {
				p.AddText(strconv.Itoa(i) + ". ")
			} else {
				p.AddText(bullet)
			}
			b.inline(li, p, runStyle{})
			b.items = append(b.items, p)
		}
	case "img":
		p := b.newParagraph()
		if err := addHTMLImage(p, n); err != nil {
			b.err = err
			return
		}
		b.items = append(b.items, p)
	default:
		// html, body, div, span...
		b.block(n)
	}
}

var whitespace = regexp.MustCompile(`\s+`)

type runStyle struct {
	bold, italic, underline bool
}

func (b *htmlBuilder) inline(n *html.Node, p *docx.Paragraph, style runStyle) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.TextNode:
			text := whitespace.ReplaceAllString(c.Data, " ")
			if text == "" {
				continue
			}
			run := p.AddText(text)
			if style.bold {
				run.Bold()
			}
			if style.italic {
				run.Italic()
			}
			if style.underline {
				run.Underline("single")
			}
		case c.Type != html.ElementNode:
		case c.Data == "br":
			p.AddText("\n")
		case c.Data == "img":
			if err := addHTMLImage(p, c); err != nil && b.err == nil {
				b.err = err
			}
		case c.Data == "strong" || c.Data == "b":
			s := style
			s.bold = true
			b.inline(c, p, s)
		case c.Data == "em" || c.Data == "i":
			s := style
			s.italic = true
			b.inline(c, p, s)
		case c.Data == "u":
			s := style
			s.underline = true
			b.inline(c, p, s)
		default:
			b.inline(c, p, style)
		}
	}
}

func headingStyle(tag string) string {
	switch tag {
	case "h1":
		return "Heading1"
	case "h2":
		return "Heading2"
	case "h3":
		return "Heading3"
	default:
		return "Normal"
	}
}

func extractText(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		} else {
			sb.WriteString(extractText(c))
		}
	}
	return sb.String()
}

func addHTMLImage(p *docx.Paragraph, n *html.Node) error {
	img := ImageInjector{}
	for _, attr := range n.Attr {
		switch attr.Key {
		case "src":
			img.Src = attr.Val
		case "width":
			img.Width = pixelsToEMU(attr.Val)
		case "height":
			img.Height = pixelsToEMU(attr.Val)
		}
	}
	return img.addTo(p)
}
