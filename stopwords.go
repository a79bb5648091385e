package afinn

import (
	"strings"

	"github.com/bbalet/stopwords"
)

// IsStopWord reports whether token is a stop word in the language with the
// given ISO 639-1 code. An empty code or an unknown language has no stop
// words.
func IsStopWord(token, langCode string) bool {
	if token == "" || langCode == "" {
		return false
	}
	// The stopwords library does not export its lists; a word is a stop word
	// when cleaning it leaves nothing behind.
	return strings.TrimSpace(stopwords.CleanString(token, langCode, false)) == ""
}

// ContentTokens returns the non-empty tokens that are not stop words.
func ContentTokens(tokens []string, langCode string) []string {
	seen := make(map[string]bool)
	var content []string
	for _, token := range tokens {
		if token == "" {
			continue
		}
		stop, ok := seen[token]
		if !ok {
			stop = IsStopWord(token, langCode)
			seen[token] = stop
		}
		if !stop {
			content = append(content, token)
		}
	}
	return content
}
