// Package normalize cleans the candidate comparison narrative before it is handed to the model.
package normalize

import (
	"regexp"
	"strings"
)

var (
	// parenthetical matches one parenthesised aside; nesting is not tracked
	parenthetical = regexp.MustCompile(`\([^)]*\)`)
	// alternative matches word/word, where a word is Unicode letters, digits or underscore
	alternative = regexp.MustCompile(`([\p{L}\p{N}_]+)/([\p{L}\p{N}_]+)`)
)

// Narrative removes parenthetical asides, then collapses the first slash alternative.
func Narrative(text string) string {
	return CollapseFirstAlternative(RemoveParentheticals(text))
}

// RemoveParentheticals deletes every "(...)" group including the parentheses.
// Surrounding whitespace is left as is.
func RemoveParentheticals(text string) string {
	return parenthetical.ReplaceAllString(text, "")
}

// CollapseFirstAlternative finds the first "left/right" pair and replaces that exact text
// with "left" wherever it occurs. Different slash pairs later in the text are not touched.
func CollapseFirstAlternative(text string) string {
	m := alternative.FindStringSubmatch(text)
	if m == nil {
		return text
	}
	return strings.ReplaceAll(text, m[0], m[1])
}
