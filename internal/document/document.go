// Package document flattens an HTML page into the ordered stream of heading
// and list nodes the extractors walk.
package document

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Kind distinguishes the node types that matter to extraction
type Kind int

const (
	KindHeading Kind = iota
	KindList
)

// Node is a heading (level 2-4) or a list with its items' flattened text
type Node struct {
	Kind  Kind
	Level int      // heading level, 0 for lists
	Text  string   // heading text, empty for lists
	Items []string // list item text, nil for headings
}

// Document wraps a parsed HTML page
type Document struct {
	doc *goquery.Document
}

// Parse parses an HTML document
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return &Document{doc: doc}, nil
}

// ParseBytes parses an HTML document held in memory
func ParseBytes(page []byte) (*Document, error) {
	return Parse(bytes.NewReader(page))
}

// Nodes returns every h2, h3, h4 and ul element in document order. Nested
// lists appear both on their own and inside their parent's items.
func (d *Document) Nodes() []Node {
	var nodes []Node
	d.doc.Find("h2, h3, h4, ul").Each(func(_ int, sel *goquery.Selection) {
		switch goquery.NodeName(sel) {
		case "h2", "h3", "h4":
			nodes = append(nodes, Node{
				Kind:  KindHeading,
				Level: int(goquery.NodeName(sel)[1] - '0'),
				Text:  Text(sel),
			})
		case "ul":
			nodes = append(nodes, Node{
				Kind:  KindList,
				Items: items(sel),
			})
		}
	})
	return nodes
}

// ListItems returns the text of every item of every list, ignoring headings
func (d *Document) ListItems() []string {
	var out []string
	d.doc.Find("ul").Each(func(_ int, sel *goquery.Selection) {
		out = append(out, items(sel)...)
	})
	return out
}

func items(list *goquery.Selection) []string {
	var out []string
	list.Find("li").Each(func(_ int, li *goquery.Selection) {
		out = append(out, Text(li))
	})
	return out
}

// Text joins the selection's descendant text nodes with single spaces. Each
// piece is trimmed and empty pieces are skipped.
func Text(sel *goquery.Selection) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, " ")
}
