package export

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// PageTitle returns the text of the first <title> element in body, decoded
// to UTF-8, or "" when there is none.
func PageTitle(body []byte) string {
	r, err := charset.NewReader(bytes.NewReader(body), "")
	if err != nil {
		return ""
	}
	doc, err := html.Parse(r)
	if err != nil {
		return ""
	}

	for n := range doc.Descendants() {
		if n.Type == html.ElementNode && n.Data == "title" {
			var sb strings.Builder
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.TextNode {
					sb.WriteString(c.Data)
				}
			}
			return strings.Join(strings.Fields(sb.String()), " ")
		}
	}
	return ""
}
