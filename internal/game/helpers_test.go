package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/wordle-core/internal/words"
)

var (
	testAnswers = []string{"arise", "coast", "beast", "rocks", "upper", "mommy", "carry", "poppy"}
	testGuesses = []string{"tacos", "hurry", "adapt", "sores", "money", "mossy", "apoop", "hello", "graph"}
)

func testDict(t *testing.T) *words.Dictionary {
	t.Helper()
	d, err := words.New(5, testAnswers, testGuesses)
	require.NoError(t, err)
	return d
}

const (
	C = Correct
	M = Misplaced
	W = Wrong
)

// sequencePicker returns answers in order, cycling.
func sequencePicker(answers ...string) Picker {
	i := 0
	return func(*words.Dictionary) string {
		a := answers[i%len(answers)]
		i++
		return a
	}
}
