package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/wordle-core/internal/game"
)

type scoreResult struct {
	Answer   string         `json:"answer"`
	Guess    string         `json:"guess"`
	Verdicts []game.Verdict `json:"verdicts"`
	Pattern  string         `json:"pattern"`
	Solved   bool           `json:"solved"`
}

func newScoreCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "score <answer> <guess>",
		Short: "Score a guess against an answer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := a.dictionary(cmd.Context())
			if err != nil {
				return err
			}
			s, err := game.NewSession(args[0], dict)
			if err != nil {
				return err
			}
			rec, err := s.MakeGuess(args[1])
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				return enc.Encode(scoreResult{
					Answer:   args[0],
					Guess:    rec.WordString(),
					Verdicts: rec.Verdicts(),
					Pattern:  rec.Pattern(),
					Solved:   rec.AllMatch(),
				})
			}
			renderRecord(cmd.OutOrStdout(), rec)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
