package cmd

import (
	"bufio"
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tsawler/afinn"
)

func newScoreCmd(opts *options) *cobra.Command {
	var summaryOnly bool

	cmd := &cobra.Command{
		Use:   "score [text...]",
		Short: "Score text",
		Long: "Scores the arguments joined by spaces. Without arguments every line of stdin\n" +
			"is scored separately. Each score is printed as one JSON object.",
		RunE: func(cmd *cobra.Command, args []string) error {
			lexicon, logger, err := loadLexicon(cmd, opts)
			if err != nil {
				return err
			}

			var scores []afinn.Score
			if len(args) > 0 {
				scores = append(scores, afinn.ScoreText(strings.Join(args, " "), lexicon))
			} else {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					scores = append(scores, afinn.ScoreText(scanner.Text(), lexicon))
				}
				if err := scanner.Err(); err != nil {
					return err
				}
			}
			logger.Debug("scored", "inputs", len(scores))

			enc := json.NewEncoder(cmd.OutOrStdout())
			if summaryOnly {
				return enc.Encode(afinn.Summarize(scores))
			}
			for _, score := range scores {
				if err := enc.Encode(score); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&summaryOnly, "summary", false, "print only summary statistics over all inputs")
	return cmd
}
