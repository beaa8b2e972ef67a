package export

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// interactive controls never belong in an exported document
var interactiveTags = map[string]bool{
	"button":   true,
	"input":    true,
	"select":   true,
	"textarea": true,
	"script":   true,
}

// StripInteractive parses the markup and drops interactive controls from
// the tree before rasterizing, so the PDF contains only static content.
// The input string is left untouched; the caller gets a cleaned copy.
func StripInteractive(markup string) (string, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return "", err
	}
	pruneInteractive(doc)

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func pruneInteractive(n *html.Node) {
	var next *html.Node
	for c := n.FirstChild; c != nil; c = next {
		next = c.NextSibling
		if c.Type == html.ElementNode && interactiveTags[c.Data] {
			n.RemoveChild(c)
			continue
		}
		pruneInteractive(c)
	}
}
