package afinn

import (
	"regexp"
	"strings"
)

var (
	nonAlphaRE   = regexp.MustCompile(`[^a-zA-Z ]+`)
	whitespaceRE = regexp.MustCompile(`\s+`)
)

// Tokenize splits text into lowercase words.
//
// Every character that is not an ASCII letter or a space is dropped, runs of
// whitespace collapse to one space and the result is split on spaces. Input
// without letters yields a single empty token, and leading or trailing spaces
// produce empty tokens at the edges; empty tokens never match a lexicon word.
func Tokenize(input string) []string {
	input = nonAlphaRE.ReplaceAllString(input, "")
	input = whitespaceRE.ReplaceAllString(input, " ")
	input = strings.ToLower(input)
	return strings.Split(input, " ")
}

// NormalizeWord reduces a lexicon word to the token it would produce.
//
// The second result is false when the word yields no letters or more than one
// token, as phrase entries like "does not work" do.
func NormalizeWord(word string) (string, bool) {
	fields := strings.Fields(strings.Join(Tokenize(word), " "))
	if len(fields) != 1 {
		return "", false
	}
	return fields[0], true
}
