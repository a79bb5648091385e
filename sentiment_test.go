package afinn

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"testing"
)

func exampleLexicon(t *testing.T) *Lexicon {
	t.Helper()
	lexicon, err := NewLexicon(MapSource{"good": 3, "bad": -3, "great": 3, "meh": 0})
	if err != nil {
		t.Fatalf("Failed to build lexicon: %v", err)
	}
	return lexicon
}

func TestScoreText(t *testing.T) {
	lexicon := exampleLexicon(t)

	score := ScoreText("This is good and great, not bad", lexicon)

	if got := score.Tokens(); !reflect.DeepEqual(got, []string{"this", "is", "good", "and", "great", "not", "bad"}) {
		t.Errorf("Tokens() = %q", got)
	}
	if got := score.MatchedWords(); !reflect.DeepEqual(got, []string{"good", "great", "bad"}) {
		t.Errorf("MatchedWords() = %q", got)
	}
	if got := score.PositiveWords(); !reflect.DeepEqual(got, []string{"good", "great"}) {
		t.Errorf("PositiveWords() = %q", got)
	}
	if got := score.NegativeWords(); !reflect.DeepEqual(got, []string{"bad"}) {
		t.Errorf("NegativeWords() = %q", got)
	}
	if score.Sentiment() != 3 {
		t.Errorf("Sentiment() = %d, want 3", score.Sentiment())
	}

	perToken, err := score.AverageSentimentPerToken()
	if err != nil || math.Abs(perToken-3.0/7.0) > 1e-9 {
		t.Errorf("AverageSentimentPerToken() = (%.4f, %v), want 0.4286", perToken, err)
	}
	perWord, err := score.AverageSentimentPerMatchedWord()
	if err != nil || perWord != 1.0 {
		t.Errorf("AverageSentimentPerMatchedWord() = (%.4f, %v), want 1.0", perWord, err)
	}
}

func TestScoreTextEmpty(t *testing.T) {
	score := ScoreText("", exampleLexicon(t))

	if got := score.Tokens(); !reflect.DeepEqual(got, []string{""}) {
		t.Errorf("Tokens() = %q, want one empty token", got)
	}
	if len(score.MatchedWords()) != 0 {
		t.Errorf("MatchedWords() = %q, want none", score.MatchedWords())
	}
	if score.Sentiment() != 0 {
		t.Errorf("Sentiment() = %d, want 0", score.Sentiment())
	}

	perToken, err := score.AverageSentimentPerToken()
	if err != nil || perToken != 0 {
		t.Errorf("AverageSentimentPerToken() = (%v, %v), want (0, nil)", perToken, err)
	}
	if _, err := score.AverageSentimentPerMatchedWord(); !errors.Is(err, ErrDivisionUndefined) {
		t.Errorf("AverageSentimentPerMatchedWord() error = %v, want ErrDivisionUndefined", err)
	}
}

func TestZeroScoreAverages(t *testing.T) {
	var score Score
	if _, err := score.AverageSentimentPerToken(); !errors.Is(err, ErrDivisionUndefined) {
		t.Errorf("AverageSentimentPerToken() error = %v, want ErrDivisionUndefined", err)
	}
}

func TestScoreTextCaseInsensitive(t *testing.T) {
	score := ScoreText("GREAT! great.", exampleLexicon(t))

	if got := score.Tokens(); !reflect.DeepEqual(got, []string{"great", "great"}) {
		t.Errorf("Tokens() = %q", got)
	}
	if got := score.MatchedWords(); !reflect.DeepEqual(got, []string{"great", "great"}) {
		t.Errorf("MatchedWords() = %q", got)
	}
	if score.Sentiment() != 6 {
		t.Errorf("Sentiment() = %d, want 6", score.Sentiment())
	}
}

func TestScoreTextNeutralMatch(t *testing.T) {
	score := ScoreText("meh, good", exampleLexicon(t))

	if got := score.MatchedWords(); !reflect.DeepEqual(got, []string{"meh", "good"}) {
		t.Errorf("MatchedWords() = %q", got)
	}
	if got := score.PositiveWords(); !reflect.DeepEqual(got, []string{"good"}) {
		t.Errorf("PositiveWords() = %q", got)
	}
	if len(score.NegativeWords()) != 0 {
		t.Errorf("NegativeWords() = %q, want none", score.NegativeWords())
	}
}

func TestScoreProperties(t *testing.T) {
	lexicon := loadTestLexicon(t)

	inputs := []string{
		"I love this, but I hate the ending.",
		"Terrible terrible TERRIBLE",
		"Nothing here matches",
		"Don't abandon a good plan; meh.",
		"",
		"   ",
	}

	for _, input := range inputs {
		score := ScoreText(input, lexicon)
		tokens := score.Tokens()
		matched := score.MatchedWords()

		if len(tokens) < 1 {
			t.Errorf("%q: no tokens", input)
		}

		sum := 0
		for _, word := range matched {
			polarity, ok := lexicon.Lookup(word)
			if !ok {
				t.Errorf("%q: matched word %q not in lexicon", input, word)
			}
			sum += polarity
		}
		if sum != score.Sentiment() {
			t.Errorf("%q: Sentiment() = %d, sum of matches = %d", input, score.Sentiment(), sum)
		}

		matchedCount := 0
		for _, token := range tokens {
			if _, ok := lexicon.Lookup(token); ok {
				matchedCount++
			}
		}
		if matchedCount != len(matched) {
			t.Errorf("%q: %d tokens found in lexicon, %d matched", input, matchedCount, len(matched))
		}

		if len(score.PositiveWords())+len(score.NegativeWords()) > len(matched) {
			t.Errorf("%q: positive and negative words exceed matches", input)
		}
		for _, word := range score.PositiveWords() {
			if p, _ := lexicon.Lookup(word); p <= 0 {
				t.Errorf("%q: positive word %q has polarity %d", input, word, p)
			}
		}
		for _, word := range score.NegativeWords() {
			if p, _ := lexicon.Lookup(word); p >= 0 {
				t.Errorf("%q: negative word %q has polarity %d", input, word, p)
			}
		}

		if again := ScoreText(input, lexicon); !again.Equal(score) {
			t.Errorf("%q: scoring twice gave %v and %v", input, score, again)
		}
	}
}

func TestScoreIsImmutable(t *testing.T) {
	lexicon := exampleLexicon(t)
	score := ScoreText("good bad", lexicon)

	tokens := score.Tokens()
	tokens[0] = "changed"
	matched := score.MatchedWords()
	matched[0] = "changed"

	if score.Tokens()[0] != "good" || score.MatchedWords()[0] != "good" {
		t.Error("Score changed through a returned slice")
	}

	lexicon.Inject(map[string]int{"extra": 5})
	if score.Sentiment() != 0 {
		t.Errorf("Sentiment() = %d after Inject, want 0", score.Sentiment())
	}
}

func TestInjectAffectsLaterScores(t *testing.T) {
	lexicon := exampleLexicon(t)
	before := ScoreText("a splendid day", lexicon)

	lexicon.Inject(map[string]int{"splendid": 3, "good": -99})
	after := ScoreText("a splendid good day", lexicon)

	if before.Sentiment() != 0 {
		t.Errorf("Sentiment() before Inject = %d, want 0", before.Sentiment())
	}
	if after.Sentiment() != 6 {
		t.Errorf("Sentiment() after Inject = %d, want 6", after.Sentiment())
	}
}

func TestScoreMarshalJSON(t *testing.T) {
	tests := []struct {
		text       string
		perToken   interface{}
		perMatched interface{}
	}{
		{"good bad great", 1.0, 1.0},
		{"", 0.0, nil},
	}

	lexicon := exampleLexicon(t)
	for _, tt := range tests {
		data, err := json.Marshal(ScoreText(tt.text, lexicon))
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}

		var decoded map[string]interface{}
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("Unmarshal: %v", err)
		}
		if decoded["average_sentiment_per_token"] != tt.perToken {
			t.Errorf("%q: average_sentiment_per_token = %v, want %v", tt.text, decoded["average_sentiment_per_token"], tt.perToken)
		}
		if decoded["average_sentiment_per_matched_word"] != tt.perMatched {
			t.Errorf("%q: average_sentiment_per_matched_word = %v, want %v", tt.text, decoded["average_sentiment_per_matched_word"], tt.perMatched)
		}
		if _, ok := decoded["matched_words"].([]interface{}); !ok {
			t.Errorf("%q: matched_words = %v, want an array", tt.text, decoded["matched_words"])
		}
	}
}

func TestAnalyzerScore(t *testing.T) {
	lexicon := exampleLexicon(t)
	analyzer := NewAnalyzer(lexicon, AnalyzerConfig{})

	if analyzer.Lexicon() != lexicon {
		t.Error("Lexicon() returned a different lexicon")
	}
	if analyzer.config.Language != "en" {
		t.Errorf("Language = %q, want default en", analyzer.config.Language)
	}
	if got := analyzer.Score("good good bad"); got.Sentiment() != 3 {
		t.Errorf("Score().Sentiment() = %d, want 3", got.Sentiment())
	}
}
