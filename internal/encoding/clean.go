package encoding

import (
	"html"
	"strings"
)

// CleanLine unescapes HTML entities in one line of exported statement text
// and trims it. Non-breaking spaces count as whitespace.
func CleanLine(line string) string {
	line = strings.ReplaceAll(html.UnescapeString(line), "\u00a0", " ")
	return strings.TrimSpace(line)
}
