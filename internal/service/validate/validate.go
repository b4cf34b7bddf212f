// Package validate applies regex-based checks and cleanup to model output
// before it is returned to callers.
package validate

import (
	"regexp"
	"strings"
)

var (
	// Chat-template control markers occasionally leak into completions.
	leakedMarkers = regexp.MustCompile(`(?m)^\s*<\|[a-z_]+\|>\s*$|\[/?(INST|SYS)\]`)
	// A fence opened on the last line with nothing after it.
	danglingFence = regexp.MustCompile("(?m)^```[a-zA-Z]*\\s*\\z")
	// Content that is only whitespace or punctuation carries no answer.
	substantive = regexp.MustCompile(`[\p{L}\p{N}]`)
)

// Output scrubs model artifacts from content and reports whether the result
// is substantive. A false return means the completion should be treated as a
// failed attempt.
func Output(content string) (string, bool) {
	cleaned := leakedMarkers.ReplaceAllString(content, "")
	cleaned = danglingFence.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	if cleaned == "" || !substantive.MatchString(cleaned) {
		return "", false
	}
	return cleaned, true
}
