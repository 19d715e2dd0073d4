package source

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// htmlText flattens an HTML document into text lines. Block elements start
// new lines; script, style and similar containers are dropped. The target of
// every mailto: anchor is emitted on its own line where the anchor appears,
// so addresses hidden behind link text are still found in document order.
func htmlText(r io.Reader) (io.Reader, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	doc := goquery.NewDocumentFromNode(root)
	doc.Find("script, style, noscript, template").Remove()

	mailto := map[*html.Node]string{}
	doc.Find(`a[href]`).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if addr := mailtoAddress(href); addr != "" {
			mailto[s.Get(0)] = addr
		}
	})

	var b strings.Builder
	collectText(&b, root, mailto)
	return strings.NewReader(b.String()), nil
}

func collectText(b *strings.Builder, n *html.Node, mailto map[*html.Node]string) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "br", "hr", "p", "div", "h1", "h2", "h3", "h4", "h5", "h6",
			"li", "ul", "ol", "tr", "table", "pre", "section", "article",
			"header", "footer", "address", "blockquote", "title":
			b.WriteString("\n")
		case "td", "th":
			b.WriteString(" ")
		}
		if addr, ok := mailto[n]; ok {
			b.WriteString("\n")
			b.WriteString(addr)
			b.WriteString("\n")
		}
	}
	if n.Type == html.TextNode {
		b.WriteString(strings.ReplaceAll(n.Data, "\r", " "))
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c, mailto)
	}
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "p", "div", "h1", "h2", "h3", "h4", "h5", "h6", "li", "tr", "pre", "title", "address":
			b.WriteString("\n")
		}
	}
}

// mailtoAddress returns the percent-decoded address part of a mailto: URL,
// or "" for any other href.
func mailtoAddress(href string) string {
	href = strings.TrimSpace(href)
	if len(href) < len("mailto:") || !strings.EqualFold(href[:len("mailto:")], "mailto:") {
		return ""
	}
	addr := href[len("mailto:"):]
	if i := strings.IndexByte(addr, '?'); i >= 0 {
		addr = addr[:i]
	}
	if un, err := url.PathUnescape(addr); err == nil {
		addr = un
	}
	return strings.TrimSpace(addr)
}
