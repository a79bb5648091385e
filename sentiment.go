package afinn

// Analyzer scores text against a lexicon
type Analyzer struct {
	lexicon *Lexicon
	config  AnalyzerConfig
}

// AnalyzerConfig configures document analysis
type AnalyzerConfig struct {
	Segment   bool   // Score each sentence as well as the whole text
	StopWords bool   // Count content tokens for AverageSentimentPerContentToken
	Language  string // ISO 639-1 code of the stop word list
}

// DefaultAnalyzerConfig returns standard configuration
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		Segment:   true,
		StopWords: true,
		Language:  "en",
	}
}

// NewAnalyzer creates an analyzer over lexicon
func NewAnalyzer(lexicon *Lexicon, config AnalyzerConfig) *Analyzer {
	if config.Language == "" {
		config.Language = "en"
	}
	return &Analyzer{lexicon: lexicon, config: config}
}

// NewDefaultAnalyzer creates an analyzer over the shared Default lexicon
func NewDefaultAnalyzer(config AnalyzerConfig) (*Analyzer, error) {
	lexicon, err := Default()
	if err != nil {
		return nil, err
	}
	return NewAnalyzer(lexicon, config), nil
}

// Lexicon returns the lexicon the analyzer scores against.
func (a *Analyzer) Lexicon() *Lexicon {
	return a.lexicon
}

// Score scores text against the analyzer's lexicon.
func (a *Analyzer) Score(text string) Score {
	return ScoreText(text, a.lexicon)
}

// ScoreText tokenizes input and sums the polarity of every token found in
// lexicon. Tokens that are not in the lexicon are kept in Tokens but do not
// contribute; a zero polarity word is matched but neither positive nor
// negative.
func ScoreText(input string, lexicon *Lexicon) Score {
	score := Score{tokens: Tokenize(input)}

	lexicon.mutex.RLock()
	defer lexicon.mutex.RUnlock()

	for _, token := range score.tokens {
		polarity, ok := lexicon.words[token]
		if !ok {
			continue
		}

		score.matched = append(score.matched, token)
		if polarity > 0 {
			score.positive = append(score.positive, token)
		}
		if polarity < 0 {
			score.negative = append(score.negative, token)
		}
		score.sentiment += polarity
	}

	return score
}
