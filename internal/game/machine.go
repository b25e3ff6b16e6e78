// internal/game/machine.go
//
// Game state machine around a Session.
// Responsibilities:
//   - Turn counting against a maximum number of guesses.
//   - State transitions: playing → won/lost, and back to playing on Reset.
//   - Board row editing (add/remove letter, submit) for keyboard front ends.
//
// Illegal guesses never consume a turn.

package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle/apps/wordle-core/internal/words"
)

// DefaultMaxGuesses is the classic six rows.
const DefaultMaxGuesses = 6

// Picker chooses the hidden answer for a new round.
type Picker func(d *words.Dictionary) string

// RandomPicker draws a random answer.
func RandomPicker(d *words.Dictionary) string { return d.RandomAnswer() }

// FixedPicker always returns answer.
func FixedPicker(answer string) Picker {
	return func(*words.Dictionary) string { return answer }
}

// Game holds the state of a single round plus what is needed to start the next.
type Game struct {
	ID         string // unique per round
	MaxGuesses int

	dict    *words.Dictionary
	pick    Picker
	session *Session
	state   State
	row     []byte // letters typed for the current row
}

// NewGame starts a round with an answer from pick (random when nil).
func NewGame(dict *words.Dictionary, maxGuesses int, pick Picker) (*Game, error) {
	if maxGuesses < 1 {
		return nil, fmt.Errorf("game: max guesses must be positive, got %d", maxGuesses)
	}
	if pick == nil {
		pick = RandomPicker
	}
	g := &Game{MaxGuesses: maxGuesses, dict: dict, pick: pick}
	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset draws a fresh answer, clears history and the board row, and returns
// to StateActive.
func (g *Game) Reset() error {
	s, err := NewSession(g.pick(g.dict), g.dict)
	if err != nil {
		return err
	}
	g.ID = uuid.NewString()
	g.session = s
	g.state = StateActive
	g.row = g.row[:0]
	return nil
}

// Guess scores word and advances the state.
//
// State transitions:
//   - If every verdict is Correct → StateWon.
//   - Else if the guess count reaches MaxGuesses → StateLost.
func (g *Game) Guess(word string) (Record, State, error) {
	if g.state != StateActive {
		return Record{}, g.state, ErrGameFinished
	}
	rec, err := g.session.MakeGuess(word)
	if err != nil {
		return Record{}, g.state, err
	}
	if rec.AllMatch() {
		g.state = StateWon
	} else if g.session.Guesses() >= g.MaxGuesses {
		g.state = StateLost
	}
	return rec, g.state, nil
}

// AddLetter appends a lowercase letter to the current row. Letters outside
// a–z, typing into a full row, and typing after the game ended are ignored.
func (g *Game) AddLetter(c byte) bool {
	if g.state != StateActive || c < 'a' || c > 'z' || len(g.row) >= g.dict.WordLength() {
		return false
	}
	g.row = append(g.row, c)
	return true
}

// RemoveLetter deletes the last letter of the current row.
func (g *Game) RemoveLetter() bool {
	if g.state != StateActive || len(g.row) == 0 {
		return false
	}
	g.row = g.row[:len(g.row)-1]
	return true
}

// Row returns the letters typed for the current row.
func (g *Game) Row() string { return string(g.row) }

// Submit guesses the current row. The row is cleared only when the guess is
// accepted.
func (g *Game) Submit() (Record, State, error) {
	if len(g.row) != g.dict.WordLength() && g.state == StateActive {
		return Record{}, g.state, fmt.Errorf("%w: row has %d letters, want %d",
			ErrLengthMismatch, len(g.row), g.dict.WordLength())
	}
	rec, st, err := g.Guess(string(g.row))
	if err != nil {
		return rec, st, err
	}
	g.row = g.row[:0]
	return rec, st, nil
}

// State reports the current state.
func (g *Game) State() State { return g.state }

// Session exposes the round's session for guess sources.
func (g *Game) Session() *Session { return g.session }

// Remaining is the number of guesses left in this round.
func (g *Game) Remaining() int { return g.MaxGuesses - g.session.Guesses() }

// Answer reveals the hidden answer once the round is over.
func (g *Game) Answer() (string, error) {
	if g.state == StateActive {
		return "", errors.New("game: answer hidden while playing")
	}
	return g.session.Answer(), nil
}
