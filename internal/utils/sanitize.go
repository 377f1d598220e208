package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var textPolicy = bluemonday.StrictPolicy()

// SanitizeText strips any markup from user-supplied free text (journal
// reflections, complaint descriptions, chat messages) before it is
// persisted or forwarded anywhere.
func SanitizeText(s string) string {
	return strings.TrimSpace(textPolicy.Sanitize(s))
}
