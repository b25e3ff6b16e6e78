// internal/game/record.go
//
// Record is the immutable result of scoring one guess: the guessed word and
// one verdict per letter. IsPossibleWord is the constraint check solvers use
// to prune candidates against observed feedback.

package game

import (
	"fmt"
	"slices"
	"strings"
)

// Record pairs a guessed word with its verdicts. The zero Record is empty and
// is never produced by NewRecord.
type Record struct {
	word     string
	verdicts []Verdict
}

// NewRecord validates and builds a Record.
// word and verdicts must both have exactly wordLength entries, and every
// verdict must be Correct, Misplaced or Wrong.
func NewRecord(word string, verdicts []Verdict, wordLength int) (Record, error) {
	if len(word) != len(verdicts) || len(word) != wordLength {
		return Record{}, fmt.Errorf("%w: word %d, verdicts %d, want %d",
			ErrLengthMismatch, len(word), len(verdicts), wordLength)
	}
	for i, v := range verdicts {
		if !v.Valid() {
			return Record{}, fmt.Errorf("%w: %s at position %d", ErrInvalidVerdict, v, i)
		}
	}
	return Record{word: word, verdicts: slices.Clone(verdicts)}, nil
}

// WordString returns the guessed word.
func (r Record) WordString() string { return r.word }

// Len is the number of letters in the record.
func (r Record) Len() int { return len(r.word) }

// Verdicts returns a copy of the verdict sequence.
func (r Record) Verdicts() []Verdict { return slices.Clone(r.verdicts) }

// AllMatch reports whether every verdict is Correct.
func (r Record) AllMatch() bool {
	if len(r.verdicts) == 0 {
		return false
	}
	for _, v := range r.verdicts {
		if v != Correct {
			return false
		}
	}
	return true
}

// Contains reports whether letter occurs anywhere in the word.
func (r Record) Contains(letter byte) bool { return strings.IndexByte(r.word, letter) >= 0 }

// Equal reports whether both records hold the same word and verdicts.
func (r Record) Equal(o Record) bool {
	return r.word == o.word && slices.Equal(r.verdicts, o.verdicts)
}

// Tiles returns the (letter, verdict) pairs left to right. Each call returns a
// fresh slice.
func (r Record) Tiles() []Tile {
	out := make([]Tile, len(r.word))
	for i := range out {
		out[i] = Tile{Letter: r.word[i], Verdict: r.verdicts[i]}
	}
	return out
}

// Pattern renders the verdicts in g/y/- notation.
func (r Record) Pattern() string { return Pattern(r.verdicts) }

func (r Record) String() string { return r.word + "=" + r.Pattern() }

// IsPossibleWord reports whether candidate could be the answer given record:
// scoring record's word against candidate must reproduce record's verdicts.
func IsPossibleWord(candidate string, record Record) bool {
	if len(candidate) != record.Len() || record.Len() == 0 {
		return false
	}
	got, err := Score(candidate, record.word)
	if err != nil {
		return false
	}
	return slices.Equal(got, record.verdicts)
}

// LetterStates aggregates the strongest verdict seen for each letter across
// records, e.g. for keyboard coloring. Correct beats Misplaced beats Wrong.
func LetterStates(records []Record) map[byte]Verdict {
	out := make(map[byte]Verdict)
	for _, r := range records {
		for i := 0; i < len(r.word); i++ {
			if v := r.verdicts[i]; v > out[r.word[i]] {
				out[r.word[i]] = v
			}
		}
	}
	return out
}
