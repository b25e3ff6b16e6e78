package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/robalobadob/wordle/apps/wordle-core/internal/daily"
	"github.com/robalobadob/wordle/apps/wordle-core/internal/game"
	"github.com/robalobadob/wordle/apps/wordle-core/internal/player"
	"github.com/robalobadob/wordle/apps/wordle-core/internal/share"
	"github.com/robalobadob/wordle/apps/wordle-core/internal/solver"
	"github.com/robalobadob/wordle/apps/wordle-core/internal/words"
)

type playOptions struct {
	answer string
	daily  bool
	puzzle string
	solver bool
	opener string
}

func newPlayCmd(a *app) *cobra.Command {
	var opts playOptions
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one round, typing guesses or letting the solver guess",
		Long: `Play one round. Guesses are read one per line from stdin.
Typing "1" restarts the round with a fresh answer.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, a, opts)
		},
	}
	cmd.Flags().StringVar(&opts.answer, "answer", "", "fixed answer word")
	cmd.Flags().BoolVar(&opts.daily, "daily", false, "play today's deterministic answer")
	cmd.Flags().StringVar(&opts.puzzle, "puzzle", "", "play a shared puzzle token")
	cmd.Flags().BoolVar(&opts.solver, "solver", false, "let the solver make the guesses")
	cmd.Flags().StringVar(&opts.opener, "opener", "", "solver's first guess")
	cmd.MarkFlagsMutuallyExclusive("answer", "daily", "puzzle")
	return cmd
}

func runPlay(cmd *cobra.Command, a *app, opts playOptions) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	dict, err := a.dictionary(ctx)
	if err != nil {
		return err
	}
	pick, maxGuesses, err := a.picker(dict, opts)
	if err != nil {
		return err
	}
	g, err := game.NewGame(dict, maxGuesses, pick)
	if err != nil {
		return err
	}

	var src player.Guesser
	if opts.solver {
		if opts.opener != "" && !dict.IsLegalGuess(opts.opener) {
			return fmt.Errorf("%w: opener %q", game.ErrIllegalGuess, opts.opener)
		}
		src = solver.New(dict.AnswerWords(), opts.opener)
	} else {
		src = player.NewHumanInput(cmd.InOrStdin(), promptWriter(cmd))
	}

	log.Info().Str("game", g.ID).Int("maxGuesses", g.MaxGuesses).Bool("solver", opts.solver).Msg("round started")
	fmt.Fprintf(out, "Guess the %d-letter word in %d tries.\n", dict.WordLength(), g.MaxGuesses)

	st, err := player.Play(ctx, g, src, func(e player.Event) {
		switch {
		case e.Reset:
			fmt.Fprintln(out, "New round.")
		case e.Err != nil:
			fmt.Fprintf(out, "%v\n", e.Err)
		default:
			renderRecord(out, e.Record)
		}
	})
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(out, "No more input.")
		return nil
	}
	if err != nil {
		return err
	}

	renderKeyboard(out, g.Session().History())
	answer, _ := g.Answer()
	switch st {
	case game.StateWon:
		fmt.Fprintf(out, "Solved in %d/%d.\n", g.Session().Guesses(), g.MaxGuesses)
	case game.StateLost:
		fmt.Fprintf(out, "Out of guesses. The word was %s.\n", answer)
	}
	log.Info().Str("game", g.ID).Str("state", string(st)).Int("guesses", g.Session().Guesses()).Msg("round finished")
	return nil
}

// picker resolves the answer source and guess limit for a round.
func (a *app) picker(dict *words.Dictionary, opts playOptions) (game.Picker, int, error) {
	switch {
	case opts.answer != "":
		if !dict.IsLegalAnswer(opts.answer) {
			return nil, 0, fmt.Errorf("%w: %q", game.ErrIllegalAnswer, opts.answer)
		}
		return game.FixedPicker(opts.answer), a.cfg.MaxGuesses, nil
	case opts.daily:
		return daily.Picker(time.Now, a.cfg.DailySalt), a.cfg.MaxGuesses, nil
	case opts.puzzle != "":
		p, err := share.Parse(a.cfg.ShareSecret, opts.puzzle)
		if err != nil {
			return nil, 0, err
		}
		answer, err := p.Answer(dict)
		if err != nil {
			return nil, 0, err
		}
		maxGuesses := p.MaxGuesses
		if maxGuesses < 1 {
			maxGuesses = a.cfg.MaxGuesses
		}
		return game.FixedPicker(answer), maxGuesses, nil
	default:
		return game.RandomPicker, a.cfg.MaxGuesses, nil
	}
}

// promptWriter returns the output for input prompts, or nil when stdin is not
// an interactive terminal.
func promptWriter(cmd *cobra.Command) io.Writer {
	f, ok := cmd.InOrStdin().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil
	}
	return cmd.OutOrStdout()
}
