package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/tsawler/afinn"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	lexiconPath string
	injectPath  string
	logLevel    string
	logFormat   string
}

// NewRootCmd builds the command tree. Each call returns independent flag
// state.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "afinn",
		Short:        "afinn: lexicon-based sentiment scoring",
		Long:         "Scores text by summing AFINN word polarities. Reads the word list once per run.",
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.lexiconPath, "lexicon", "", "AFINN word list (default $AFINN_LEXICON or "+afinn.DefaultLexiconPath+")")
	flags.StringVar(&opts.injectPath, "inject", "", "JSON file of extra words to add to the lexicon")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")

	rootCmd.AddCommand(newScoreCmd(opts))
	rootCmd.AddCommand(newSentencesCmd(opts))
	rootCmd.AddCommand(newLookupCmd(opts))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// loadLexicon resolves the lexicon for a run and applies --inject.
func loadLexicon(cmd *cobra.Command, opts *options) (*afinn.Lexicon, *slog.Logger, error) {
	logger := newLogger(opts.logLevel, opts.logFormat, cmd.ErrOrStderr())

	var (
		lexicon *afinn.Lexicon
		err     error
	)
	if opts.lexiconPath != "" {
		lexicon, err = afinn.NewLexicon(afinn.FileSource(opts.lexiconPath))
	} else {
		lexicon, err = afinn.Default()
	}
	if err != nil {
		return nil, nil, err
	}
	logger.Info("lexicon loaded", "words", lexicon.Len(), "skipped_phrases", lexicon.Skipped())

	if opts.injectPath != "" {
		added, err := lexicon.LoadExternalLexicon(opts.injectPath)
		if err != nil {
			return nil, nil, fmt.Errorf("inject %s: %w", opts.injectPath, err)
		}
		logger.Info("words injected", "file", opts.injectPath, "added", added)
	}

	return lexicon, logger, nil
}
