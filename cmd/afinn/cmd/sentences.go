package cmd

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tsawler/afinn"
)

type sentenceOutput struct {
	Text  string      `json:"text"`
	Start int         `json:"start"`
	End   int         `json:"end"`
	Score afinn.Score `json:"score"`
}

type documentOutput struct {
	Score     afinn.Score      `json:"score"`
	Sentences []sentenceOutput `json:"sentences"`
	Summary   afinn.Summary    `json:"summary"`
}

func newSentencesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sentences [text...]",
		Short: "Score text sentence by sentence",
		Long:  "Splits the text (arguments, or all of stdin) into sentences and scores each one.",
		RunE: func(cmd *cobra.Command, args []string) error {
			lexicon, logger, err := loadLexicon(cmd, opts)
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				text = string(data)
			}

			analyzer := afinn.NewAnalyzer(lexicon, afinn.DefaultAnalyzerConfig())
			doc, err := analyzer.AnalyzeDocument(cmd.Context(), text)
			if err != nil {
				return err
			}
			logger.Debug("document analyzed", "sentences", len(doc.Sentences))

			out := documentOutput{
				Score:     doc.Score,
				Sentences: make([]sentenceOutput, 0, len(doc.Sentences)),
				Summary:   doc.Summary(),
			}
			for _, s := range doc.Sentences {
				out.Sentences = append(out.Sentences, sentenceOutput{
					Text:  s.Sentence.Text,
					Start: s.Sentence.Start,
					End:   s.Sentence.End,
					Score: s.Score,
				})
			}

			return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
		},
	}
}
