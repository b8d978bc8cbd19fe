// Package markup rewrites assistant output into markup that is safe to
// render inside the chat widget. It is deliberately not a Markdown
// parser: the only syntax it understands is the image/link pattern
// `![alt](url)` / `[alt](url)`. Everything outside a match is
// HTML-escaped, which makes this package the sole sanitization boundary
// between model output and the browser.
package markup

import (
	"html"
	"html/template"
	"regexp"
	"strings"
)

// imagePattern matches Markdown image syntax with an optional leading
// bang. Plain links without the bang match too and are rendered as
// images as well; that mirrors the widget's historical behavior and is
// kept intentionally (see DESIGN.md).
var imagePattern = regexp.MustCompile(`!?\[([^\]]+)\]\s*\(([^)]+)\)`)

var angleUnescaper = strings.NewReplacer("&lt;", "<", "&gt;", ">")

// RewriteImages scans message for Markdown image/link syntax and
// rewrites each match into an <img> element. Text outside matches is
// HTML-escaped verbatim. The result is pre-sanitized markup and must
// not be escaped again by the caller.
//
// Upstream layers may have entity-escaped angle brackets already; those
// are normalized back first so escaping happens exactly once here. No
// other entities are unescaped.
func RewriteImages(message string) template.HTML {
	message = angleUnescaper.Replace(message)

	var b strings.Builder
	last := 0
	for _, m := range imagePattern.FindAllStringSubmatchIndex(message, -1) {
		b.WriteString(html.EscapeString(message[last:m[0]]))
		title := message[m[2]:m[3]]
		src := message[m[4]:m[5]]
		b.WriteString(`<img title="`)
		b.WriteString(html.EscapeString(title))
		b.WriteString(`" src="`)
		b.WriteString(html.EscapeString(src))
		b.WriteString(`">`)
		last = m[1]
	}
	b.WriteString(html.EscapeString(message[last:]))

	return template.HTML(b.String())
}
