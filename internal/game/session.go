// internal/game/session.go
//
// Session binds a hidden answer to a dictionary and accumulates one Record
// per accepted guess. A Session is driven by a single goroutine.

package game

import (
	"fmt"
	"slices"

	"github.com/robalobadob/wordle/apps/wordle-core/internal/words"
)

// Session is one hidden answer plus the feedback history for it.
type Session struct {
	answer  string
	dict    *words.Dictionary
	engine  *Engine
	history []Record
}

// NewSession fails with ErrIllegalAnswer unless answer is a dictionary answer.
func NewSession(answer string, dict *words.Dictionary) (*Session, error) {
	if !dict.IsLegalAnswer(answer) {
		return nil, fmt.Errorf("%w: %q", ErrIllegalAnswer, answer)
	}
	return &Session{answer: answer, dict: dict, engine: NewEngine(dict)}, nil
}

// MakeGuess scores guess and appends the result to the history.
// An illegal guess returns ErrIllegalGuess and leaves the session unchanged.
func (s *Session) MakeGuess(guess string) (Record, error) {
	verdicts, err := s.engine.Score(s.answer, guess)
	if err != nil {
		return Record{}, err
	}
	rec, err := NewRecord(guess, verdicts, s.dict.WordLength())
	if err != nil {
		return Record{}, err
	}
	s.history = append(s.history, rec)
	return rec, nil
}

// History returns the records in submission order.
func (s *Session) History() []Record { return slices.Clone(s.history) }

// Guesses is the number of accepted guesses.
func (s *Session) Guesses() int { return len(s.history) }

// IsSolved reports whether the most recent record is all Correct.
func (s *Session) IsSolved() bool {
	if len(s.history) == 0 {
		return false
	}
	return s.history[len(s.history)-1].AllMatch()
}

// Answer returns the hidden answer.
func (s *Session) Answer() string { return s.answer }

// WordLength is the dictionary's word length.
func (s *Session) WordLength() int { return s.dict.WordLength() }
