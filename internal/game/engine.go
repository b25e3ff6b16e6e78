// internal/game/engine.go
//
// Feedback scoring for a guess against an answer.
//
// Score is the pure two-pass algorithm; Engine adds the dictionary check
// that a guess is legal before scoring it.

package game

import (
	"fmt"

	"github.com/robalobadob/wordle/apps/wordle-core/internal/words"
)

// Score implements the standard Wordle two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Correct.
//   - Count remaining (non-correct) answer letters.
//
// Pass 2 (left to right):
//   - For each non-correct guess letter: if there is remaining count for that
//     letter, mark Misplaced and decrement the count; otherwise mark Wrong.
//
// answer and guess must have the same non-zero length and be lowercase a–z.
func Score(answer, guess string) ([]Verdict, error) {
	n := len(answer)
	if n == 0 || len(guess) != n {
		return nil, fmt.Errorf("%w: answer has %d letters, guess has %d", ErrLengthMismatch, n, len(guess))
	}
	if !words.IsAlpha(answer) || !words.IsAlpha(guess) {
		return nil, fmt.Errorf("%w: words must be lowercase a-z", ErrIllegalGuess)
	}

	res := make([]Verdict, n)
	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			res[i] = Correct
		} else {
			counts[answer[i]-'a']++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == Correct {
			continue
		}
		j := guess[i] - 'a'
		if counts[j] > 0 {
			res[i] = Misplaced
			counts[j]--
		} else {
			res[i] = Wrong
		}
	}
	return res, nil
}

// Engine scores guesses that are legal in its dictionary.
type Engine struct {
	dict *words.Dictionary
}

// NewEngine binds an engine to a dictionary.
func NewEngine(dict *words.Dictionary) *Engine { return &Engine{dict: dict} }

// Score validates guess against the dictionary, then scores it.
func (e *Engine) Score(answer, guess string) ([]Verdict, error) {
	if !e.dict.IsLegalGuess(guess) {
		return nil, fmt.Errorf("%w: %q", ErrIllegalGuess, guess)
	}
	return Score(answer, guess)
}
