// Package render turns untrusted email content into something safe to show.
package render

import (
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/microcosm-cc/bluemonday"
)

var (
	bodyPolicy    = newBodyPolicy()
	headersPolicy = newHeadersPolicy()

	blankLines = regexp.MustCompile(`\n{3,}`)
)

func newBodyPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("link", "style", "center", "font")
	p.AllowAttrs("href").OnElements("link")
	p.AllowAttrs("color", "face", "size").OnElements("font")
	p.AllowStyling()
	return p
}

func newHeadersPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("br")
	return p
}

// Body sanitizes an HTML email body.
func Body(html string) string {
	return bodyPolicy.Sanitize(html)
}

// Headers renders raw headers as sanitized markup with one line per header line.
func Headers(raw string) string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	return headersPolicy.Sanitize(strings.ReplaceAll(raw, "\n", "<br/>"))
}

// Terminal converts sanitized markup into readable plain text.
func Terminal(html string) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}
	text, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return html
	}
	return strings.TrimSpace(blankLines.ReplaceAllString(text, "\n\n"))
}
