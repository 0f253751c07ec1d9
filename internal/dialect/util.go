package dialect

import (
	"regexp"
	"strings"
)

// quoteIfNeeded leaves identifiers matching plain that are not reserved
// words untouched and wraps everything else in open/close, doubling any
// embedded close character.
func quoteIfNeeded(name string, plain *regexp.Regexp, reserved keywordSet, open, close string) string {
	if plain.MatchString(name) && !reserved.has(name) {
		return name
	}
	return open + strings.ReplaceAll(name, close, close+close) + close
}
