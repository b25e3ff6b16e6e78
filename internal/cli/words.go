package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/wordle-core/internal/wordsdb"
)

func newWordsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Inspect and export the configured word lists",
	}
	cmd.AddCommand(newWordsStatsCmd(a), newWordsImportCmd(a))
	return cmd
}

func newWordsStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print word-list counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := a.dictionary(cmd.Context())
			if err != nil {
				return err
			}
			ans, guesses := dict.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "length=%d answers=%d guesses=%d\n", dict.WordLength(), ans, guesses)
			return nil
		},
	}
}

func newWordsImportCmd(a *app) *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Copy the configured word lists into a sqlite word store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			dict, err := a.dictionary(ctx)
			if err != nil {
				return err
			}
			st, err := wordsdb.Open(dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			addedAns, err := st.Import(ctx, wordsdb.KindAnswer, dict.AnswerWords())
			if err != nil {
				return err
			}
			addedGuess, err := st.Import(ctx, wordsdb.KindGuess, dict.GuessWords())
			if err != nil {
				return err
			}
			log.Info().Str("db", dbPath).Int("answers", addedAns).Int("guesses", addedGuess).Msg("word lists imported")
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d answers and %d guesses into %s\n", addedAns, addedGuess, dbPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "sqlite database path")
	_ = cmd.MarkFlagRequired("db")
	return cmd
}
