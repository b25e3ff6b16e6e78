// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Verdict: per-letter result of a guess (correct/misplaced/wrong).
//   - Tile: one (letter, verdict) pair of a scored guess.
//   - State: coarse game state (playing/won/lost).
//   - Sentinel errors shared by the engine, records, sessions and games.

package game

import (
	"errors"
	"fmt"
)

var (
	ErrLengthMismatch = errors.New("length mismatch")
	ErrInvalidVerdict = errors.New("invalid verdict")
	ErrIllegalAnswer  = errors.New("not an answer word")
	ErrIllegalGuess   = errors.New("not in word list")
	ErrGameFinished   = errors.New("game finished")
)

// Verdict represents the evaluation result for a single letter in a guess.
// The zero value is Blank, a placeholder that never appears in a Record.
type Verdict uint8

const (
	Blank     Verdict = iota
	Wrong             // letter not in any unaccounted position of the answer
	Misplaced         // letter in the answer, different position
	Correct           // letter in the answer at this position
)

var verdictNames = [...]string{
	Blank:     "blank",
	Wrong:     "wrong",
	Misplaced: "misplaced",
	Correct:   "correct",
}

// Valid reports whether v may appear in a finalized Record.
func (v Verdict) Valid() bool { return v >= Wrong && v <= Correct }

func (v Verdict) String() string {
	if int(v) < len(verdictNames) {
		return verdictNames[v]
	}
	return fmt.Sprintf("verdict(%d)", uint8(v))
}

// MarshalText encodes v by name so JSON output reads "correct" rather than 3.
func (v Verdict) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidVerdict, v)
	}
	return []byte(v.String()), nil
}

// UnmarshalText decodes a verdict name.
func (v *Verdict) UnmarshalText(b []byte) error {
	for i, name := range verdictNames {
		if Verdict(i).Valid() && name == string(b) {
			*v = Verdict(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidVerdict, b)
}

// Tile is one letter of a scored guess with its verdict.
type Tile struct {
	Letter  byte    `json:"-"`
	Verdict Verdict `json:"verdict"`
}

// State is the coarse game state.
type State string

const (
	StateActive State = "playing"
	StateWon    State = "won"
	StateLost   State = "lost"
)
