package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tsawler/afinn"
)

func newLookupCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup word...",
		Short: "Print the polarity of words",
		Long:  "Normalizes each word the way the tokenizer does and prints its polarity, or \"not found\".",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lexicon, _, err := loadLexicon(cmd, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, arg := range args {
				word, ok := afinn.NormalizeWord(arg)
				if !ok {
					fmt.Fprintf(out, "%s\tnot found\n", arg)
					continue
				}
				if polarity, found := lexicon.Lookup(word); found {
					fmt.Fprintf(out, "%s\t%d\n", arg, polarity)
				} else {
					fmt.Fprintf(out, "%s\tnot found\n", arg)
				}
			}
			return nil
		},
	}
}
