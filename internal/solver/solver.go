// Package solver is the automatic guess source: it keeps the set of answers
// still consistent with every observed record and guesses one of them.
//
// No search heuristic is applied; the first surviving candidate in dictionary
// order is guessed, optionally after a fixed opening word.
package solver

import (
	"context"
	"errors"

	"github.com/bits-and-blooms/bitset"

	"github.com/robalobadob/wordle/apps/wordle-core/internal/game"
)

// ErrNoCandidates means no candidate is consistent with the feedback so far.
var ErrNoCandidates = errors.New("solver: no consistent candidates left")

// Strategy guesses from a fixed candidate list, pruning it with
// game.IsPossibleWord as records arrive.
type Strategy struct {
	candidates []string
	opener     string

	session *game.Session
	alive   *bitset.BitSet // indexes into candidates
	seen    int            // records of session already applied
}

// New builds a strategy over candidates. opener, when non-empty, is the first
// guess of every round.
func New(candidates []string, opener string) *Strategy {
	s := &Strategy{candidates: append([]string(nil), candidates...), opener: opener}
	s.reset(nil)
	return s
}

func (s *Strategy) reset(sess *game.Session) {
	s.session = sess
	s.seen = 0
	s.alive = bitset.New(uint(len(s.candidates)))
	for i := range s.candidates {
		s.alive.Set(uint(i))
	}
}

// Observe prunes every candidate inconsistent with rec.
func (s *Strategy) Observe(rec game.Record) {
	for i, ok := s.alive.NextSet(0); ok; i, ok = s.alive.NextSet(i + 1) {
		if !game.IsPossibleWord(s.candidates[i], rec) {
			s.alive.Clear(i)
		}
	}
}

// NextGuess catches up on the session's history and returns the next guess.
// A different session than last time starts a fresh candidate set.
func (s *Strategy) NextGuess(ctx context.Context, sess *game.Session) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if sess != s.session {
		s.reset(sess)
	}
	history := sess.History()
	for _, rec := range history[s.seen:] {
		s.Observe(rec)
	}
	s.seen = len(history)

	if s.seen == 0 && s.opener != "" {
		return s.opener, nil
	}
	i, ok := s.alive.NextSet(0)
	if !ok {
		return "", ErrNoCandidates
	}
	return s.candidates[i], nil
}

// Remaining returns the candidates still consistent with what was observed.
func (s *Strategy) Remaining() []string {
	out := make([]string, 0, s.alive.Count())
	for i, ok := s.alive.NextSet(0); ok; i, ok = s.alive.NextSet(i + 1) {
		out = append(out, s.candidates[i])
	}
	return out
}

// Filter returns the candidates consistent with every record, in order.
func Filter(candidates []string, records []game.Record) []string {
	var out []string
next:
	for _, w := range candidates {
		for _, rec := range records {
			if !game.IsPossibleWord(w, rec) {
				continue next
			}
		}
		out = append(out, w)
	}
	return out
}
