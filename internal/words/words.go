// internal/words/words.go
//
// Dictionary of answer and guess words for a fixed word length.
//
// Word Lists:
//   - "answers": words the hidden answer may be drawn from.
//   - "guesses": legal guesses (always includes answers).
//
// Constraints:
//   • Every word has exactly the configured length.
//   • Words are lowercase a–z only; lookups are exact (callers normalize).
//   • A Dictionary is read-only after New and safe to share between sessions.

package words

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"slices"
)

var (
	ErrWordLength = errors.New("words: wrong word length")
	ErrWordChars  = errors.New("words: word must be lowercase a-z")
	ErrNoAnswers  = errors.New("words: answers list is empty")
)

// Dictionary holds the answer and guess word sets.
type Dictionary struct {
	length     int
	answers    []string            // canonical answers, load order
	answersSet map[string]struct{} // answers only
	guesses    []string            // answers ∪ guesses, sorted
	guessSet   map[string]struct{} // answers ∪ guesses
}

// New validates both lists against length and builds a Dictionary.
// Duplicates are dropped; the guess set always includes every answer.
func New(length int, answers, guesses []string) (*Dictionary, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrWordLength, length)
	}
	d := &Dictionary{
		length:     length,
		answersSet: make(map[string]struct{}, len(answers)),
		guessSet:   make(map[string]struct{}, len(answers)+len(guesses)),
	}
	for _, w := range answers {
		if err := checkWord(w, length); err != nil {
			return nil, err
		}
		if _, dup := d.answersSet[w]; dup {
			continue
		}
		d.answersSet[w] = struct{}{}
		d.answers = append(d.answers, w)
		d.guessSet[w] = struct{}{}
	}
	if len(d.answers) == 0 {
		return nil, ErrNoAnswers
	}
	for _, w := range guesses {
		if err := checkWord(w, length); err != nil {
			return nil, err
		}
		d.guessSet[w] = struct{}{}
	}
	d.guesses = make([]string, 0, len(d.guessSet))
	for w := range d.guessSet {
		d.guesses = append(d.guesses, w)
	}
	slices.Sort(d.guesses)
	return d, nil
}

// checkWord enforces the length and alphabet rules for a single word.
func checkWord(w string, length int) error {
	if len(w) != length {
		return fmt.Errorf("%w: %q has %d letters, want %d", ErrWordLength, w, len(w), length)
	}
	if !IsAlpha(w) {
		return fmt.Errorf("%w: %q", ErrWordChars, w)
	}
	return nil
}

// IsAlpha reports whether s is all lowercase ASCII letters.
func IsAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// WordLength is the fixed length of every word in the dictionary.
func (d *Dictionary) WordLength() int { return d.length }

// IsLegalGuess reports whether w is in the guess set.
func (d *Dictionary) IsLegalGuess(w string) bool {
	_, ok := d.guessSet[w]
	return ok
}

// IsLegalAnswer reports whether w is in the answer set.
func (d *Dictionary) IsLegalAnswer(w string) bool {
	_, ok := d.answersSet[w]
	return ok
}

// AnswerWords returns a copy of the answers in load order.
func (d *Dictionary) AnswerWords() []string { return slices.Clone(d.answers) }

// GuessWords returns a copy of the guess set, sorted.
func (d *Dictionary) GuessWords() []string { return slices.Clone(d.guesses) }

// AnswerAt returns the i-th answer in load order.
func (d *Dictionary) AnswerAt(i int) (string, bool) {
	if i < 0 || i >= len(d.answers) {
		return "", false
	}
	return d.answers[i], true
}

// IndexOfAnswer returns the load-order index of w, or -1.
func (d *Dictionary) IndexOfAnswer(w string) int { return slices.Index(d.answers, w) }

// RandomAnswer returns a cryptographically random answer.
func (d *Dictionary) RandomAnswer() string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(d.answers))))
	if err != nil {
		return d.answers[0]
	}
	return d.answers[n.Int64()]
}

// Stats returns counts of loaded words: (answers, guesses).
func (d *Dictionary) Stats() (answersCount int, guessesCount int) {
	return len(d.answers), len(d.guesses)
}
