package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/wordle-core/internal/share"
)

func newShareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "share <answer>",
		Short: "Print a signed puzzle token for an answer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := a.dictionary(cmd.Context())
			if err != nil {
				return err
			}
			p, err := share.NewPuzzle(dict, args[0], a.cfg.MaxGuesses)
			if err != nil {
				return err
			}
			tok, err := share.Issue(a.cfg.ShareSecret, a.cfg.ShareTTL(), p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
}
