// Package sanitize reduces markup from upstream services to plain text for
// logs.
package sanitize

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictOnce   sync.Once
	strictPolicy *bluemonday.Policy
)

// Text strips every HTML element from s and returns plain, trimmed text.
func Text(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	// bluemonday escapes what it keeps; callers escape again at render time.
	cleaned := html.UnescapeString(strict().Sanitize(trimmed))
	return strings.TrimSpace(cleaned)
}

func strict() *bluemonday.Policy {
	strictOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}
