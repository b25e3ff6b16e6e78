package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/wordle-core/internal/game"
)

// maxRejected bounds consecutive illegal guesses before Play gives up.
const maxRejected = 100

// Event is reported to the caller after each step of Play.
type Event struct {
	Record game.Record // set for accepted guesses
	State  game.State
	Err    error // set for rejected guesses
	Reset  bool  // the round was restarted
}

// Play drives g with guesses from src until the round is won or lost.
// Illegal guesses are reported and asked for again; ErrReset restarts the round.
func Play(ctx context.Context, g *game.Game, src Guesser, report func(Event)) (game.State, error) {
	if report == nil {
		report = func(Event) {}
	}
	rejected := 0
	for g.State() == game.StateActive {
		guess, err := src.NextGuess(ctx, g.Session())
		if errors.Is(err, ErrReset) {
			if err := g.Reset(); err != nil {
				return g.State(), err
			}
			log.Debug().Str("game", g.ID).Msg("round reset")
			report(Event{State: g.State(), Reset: true})
			continue
		}
		if err != nil {
			return g.State(), err
		}

		rec, st, err := g.Guess(guess)
		if errors.Is(err, game.ErrIllegalGuess) {
			rejected++
			log.Debug().Str("game", g.ID).Str("guess", guess).Msg("guess rejected")
			report(Event{State: st, Err: err})
			if rejected >= maxRejected {
				return st, fmt.Errorf("player: %d illegal guesses in a row: %w", rejected, err)
			}
			continue
		}
		if err != nil {
			return st, err
		}
		rejected = 0
		log.Debug().Str("game", g.ID).Str("guess", guess).Str("pattern", rec.Pattern()).Str("state", string(st)).Msg("guess scored")
		report(Event{Record: rec, State: st})
	}
	return g.State(), nil
}
