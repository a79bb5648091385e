package afinn

import (
	"encoding/json"
	"fmt"
	"slices"
)

// A LexiconEntry pairs a word with its polarity.
type LexiconEntry struct {
	Word     string
	Polarity int // Negative, zero or positive sentiment weight
}

// A Sentence represents a segmented portion of text.
type Sentence struct {
	Text  string // The sentence's text.
	Start int    // Start position in original text
	End   int    // End position in original text
}

// String returns the text content of the sentence
func (s Sentence) String() string {
	return s.Text
}

// Score is the result of scoring one piece of text. It is a value: the
// accessors return copies and nothing refers back to the lexicon.
type Score struct {
	tokens    []string
	matched   []string
	positive  []string
	negative  []string
	sentiment int
}

// Tokens returns every token of the input in order, matched or not.
func (s Score) Tokens() []string { return slices.Clone(s.tokens) }

// MatchedWords returns the tokens found in the lexicon, duplicates included.
func (s Score) MatchedWords() []string { return slices.Clone(s.matched) }

// PositiveWords returns matched tokens with a polarity above zero.
func (s Score) PositiveWords() []string { return slices.Clone(s.positive) }

// NegativeWords returns matched tokens with a polarity below zero.
func (s Score) NegativeWords() []string { return slices.Clone(s.negative) }

// Sentiment is the sum of the polarities of all matched tokens.
func (s Score) Sentiment() int { return s.sentiment }

// AverageSentimentPerToken returns Sentiment divided by the token count.
func (s Score) AverageSentimentPerToken() (float64, error) {
	return average(s.sentiment, len(s.tokens))
}

// AverageSentimentPerMatchedWord returns Sentiment divided by the number of
// matched words. Text without lexicon words yields ErrDivisionUndefined.
func (s Score) AverageSentimentPerMatchedWord() (float64, error) {
	return average(s.sentiment, len(s.matched))
}

// Equal reports whether two scores hold the same tokens and results.
func (s Score) Equal(o Score) bool {
	return s.sentiment == o.sentiment &&
		slices.Equal(s.tokens, o.tokens) &&
		slices.Equal(s.matched, o.matched) &&
		slices.Equal(s.positive, o.positive) &&
		slices.Equal(s.negative, o.negative)
}

func (s Score) String() string {
	return fmt.Sprintf("sentiment=%d tokens=%d matched=%v", s.sentiment, len(s.tokens), s.matched)
}

type scoreJSON struct {
	Tokens                         []string `json:"tokens"`
	MatchedWords                   []string `json:"matched_words"`
	PositiveWords                  []string `json:"positive_words"`
	NegativeWords                  []string `json:"negative_words"`
	Sentiment                      int      `json:"sentiment"`
	AverageSentimentPerToken       *float64 `json:"average_sentiment_per_token"`
	AverageSentimentPerMatchedWord *float64 `json:"average_sentiment_per_matched_word"`
}

// MarshalJSON encodes the score with its averages. An undefined average is
// encoded as null.
func (s Score) MarshalJSON() ([]byte, error) {
	out := scoreJSON{
		Tokens:        nonNil(s.tokens),
		MatchedWords:  nonNil(s.matched),
		PositiveWords: nonNil(s.positive),
		NegativeWords: nonNil(s.negative),
		Sentiment:     s.sentiment,
	}
	if avg, err := s.AverageSentimentPerToken(); err == nil {
		out.AverageSentimentPerToken = &avg
	}
	if avg, err := s.AverageSentimentPerMatchedWord(); err == nil {
		out.AverageSentimentPerMatchedWord = &avg
	}
	return json.Marshal(out)
}

func average(total, n int) (float64, error) {
	if n == 0 {
		return 0, ErrDivisionUndefined
	}
	return float64(total) / float64(n), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
