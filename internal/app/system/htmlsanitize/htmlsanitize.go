// Package htmlsanitize cleans text that comes from outside the process
// before it is shown in a page.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict removes every tag and attribute.
var strict = bluemonday.StrictPolicy()

// PlainText strips all markup from s and trims surrounding whitespace.
// Entities are decoded so templates can escape the result exactly once.
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
