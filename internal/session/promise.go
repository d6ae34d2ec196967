package session

import "regexp"

// MatchesPromise reports whether text contains the completion promise wrapped
// in <promise> tags. The phrase is matched literally (regex metacharacters in
// it are escaped), case-insensitively, with optional whitespace between the
// tags and the phrase. An empty phrase never matches.
func MatchesPromise(text, phrase string) bool {
	if len(phrase) == 0 {
		return false
	}
	pattern := `(?i)<promise>\s*` + regexp.QuoteMeta(phrase) + `\s*</promise>`
	matched, err := regexp.MatchString(pattern, text)
	if err != nil {
		return false
	}
	return matched
}
