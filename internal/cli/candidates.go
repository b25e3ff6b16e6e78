package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/wordle-core/internal/game"
	"github.com/robalobadob/wordle/apps/wordle-core/internal/solver"
)

func newCandidatesCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "candidates <guess>=<pattern>...",
		Short: "List answers consistent with observed feedback",
		Long: `List answers consistent with observed feedback.
Patterns use g for correct, y for misplaced and - (or x, .) for wrong,
e.g. "sores=-gy-g".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := a.dictionary(cmd.Context())
			if err != nil {
				return err
			}
			records := make([]game.Record, 0, len(args))
			for _, arg := range args {
				rec, err := parseObservation(arg, dict.WordLength())
				if err != nil {
					return err
				}
				records = append(records, rec)
			}

			matches := solver.Filter(dict.AnswerWords(), records)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d candidates\n", len(matches))
			for i, w := range matches {
				if limit > 0 && i >= limit {
					fmt.Fprintf(out, "... %d more\n", len(matches)-limit)
					break
				}
				fmt.Fprintln(out, w)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "print at most this many words (0 = all)")
	return cmd
}

// parseObservation turns "guess=pattern" into a Record.
func parseObservation(s string, wordLength int) (game.Record, error) {
	guess, pattern, ok := strings.Cut(s, "=")
	if !ok {
		return game.Record{}, fmt.Errorf("observation %q: want <guess>=<pattern>", s)
	}
	verdicts, err := game.ParsePattern(pattern)
	if err != nil {
		return game.Record{}, fmt.Errorf("observation %q: %w", s, err)
	}
	rec, err := game.NewRecord(strings.ToLower(guess), verdicts, wordLength)
	if err != nil {
		return game.Record{}, fmt.Errorf("observation %q: %w", s, err)
	}
	return rec, nil
}
