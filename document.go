package afinn

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// A Document is a scored text, optionally broken into scored sentences.
type Document struct {
	Text      string
	Score     Score           // Score of the whole text
	Sentences []SentenceScore // Empty unless segmentation is enabled

	language  string
	stopWords bool
}

// SentenceScore is the score of one sentence of a Document.
type SentenceScore struct {
	Sentence Sentence
	Score    Score
}

var (
	segmenterOnce sync.Once
	segmenter     *sentences.DefaultSentenceTokenizer
	segmenterErr  error
)

// englishSegmenter loads the punkt training data once per process.
func englishSegmenter() (*sentences.DefaultSentenceTokenizer, error) {
	segmenterOnce.Do(func() {
		segmenter, segmenterErr = english.NewSentenceTokenizer(nil)
	})
	return segmenter, segmenterErr
}

// Segment splits text into sentences.
func Segment(text string) ([]Sentence, error) {
	tokenizer, err := englishSegmenter()
	if err != nil {
		return nil, fmt.Errorf("failed to load sentence tokenizer: %w", err)
	}

	var out []Sentence
	for _, s := range tokenizer.Tokenize(text) {
		trimmed := strings.TrimSpace(s.Text)
		if trimmed == "" {
			continue
		}
		out = append(out, Sentence{Text: trimmed, Start: s.Start, End: s.End})
	}
	return out, nil
}

// AnalyzeDocument scores text as a whole and, when the analyzer is
// configured to segment, sentence by sentence.
//
// For example,
//
//	doc, err := analyzer.AnalyzeDocument(ctx, "Great food. Awful service.")
func (a *Analyzer) AnalyzeDocument(ctx context.Context, text string) (*Document, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	doc := &Document{
		Text:      text,
		Score:     a.Score(text),
		language:  a.config.Language,
		stopWords: a.config.StopWords,
	}
	if !a.config.Segment {
		return doc, nil
	}

	sents, err := Segment(text)
	if err != nil {
		return nil, err
	}
	doc.Sentences = make([]SentenceScore, 0, len(sents))
	for _, sent := range sents {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		doc.Sentences = append(doc.Sentences, SentenceScore{
			Sentence: sent,
			Score:    a.Score(sent.Text),
		})
	}

	return doc, nil
}

// Summary aggregates the sentence scores, or the whole-text score when the
// document was not segmented.
func (doc *Document) Summary() Summary {
	if len(doc.Sentences) == 0 {
		return Summarize([]Score{doc.Score})
	}
	scores := make([]Score, len(doc.Sentences))
	for i, s := range doc.Sentences {
		scores[i] = s.Score
	}
	return Summarize(scores)
}

// ContentTokens returns the document's non-empty tokens, without stop words
// when the analyzer was configured to drop them.
func (doc *Document) ContentTokens() []string {
	if !doc.stopWords {
		return ContentTokens(doc.Score.tokens, "")
	}
	return ContentTokens(doc.Score.tokens, doc.language)
}

// AverageSentimentPerContentToken divides the document sentiment by the
// number of content tokens.
func (doc *Document) AverageSentimentPerContentToken() (float64, error) {
	return average(doc.Score.sentiment, len(doc.ContentTokens()))
}
