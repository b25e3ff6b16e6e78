package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/wordle-core/internal/game"
	"github.com/robalobadob/wordle/apps/wordle-core/internal/words"
)

func loadDict(t *testing.T) *words.Dictionary {
	t.Helper()
	d, err := words.Load(context.Background(), words.Source{Length: 5})
	require.NoError(t, err)
	return d
}

func record(t *testing.T, answer, guess string) game.Record {
	t.Helper()
	vs, err := game.Score(answer, guess)
	require.NoError(t, err)
	rec, err := game.NewRecord(guess, vs, 5)
	require.NoError(t, err)
	return rec
}

func TestFilter(t *testing.T) {
	candidates := []string{"mommy", "mossy", "money", "coast", "rocks"}
	got := Filter(candidates, []game.Record{record(t, "mommy", "money")})
	assert.Equal(t, []string{"mommy", "mossy"}, got)

	assert.Equal(t, candidates, Filter(candidates, nil))
}

func TestStrategy_SolvesEveryAnswer(t *testing.T) {
	d := loadDict(t)
	ctx := context.Background()
	s := New(d.AnswerWords(), "arise")

	for _, answer := range d.AnswerWords() {
		g, err := game.NewGame(d, 50, game.FixedPicker(answer))
		require.NoError(t, err)

		for g.State() == game.StateActive {
			guess, err := s.NextGuess(ctx, g.Session())
			require.NoError(t, err, answer)
			_, _, err = g.Guess(guess)
			require.NoError(t, err, answer)
		}
		assert.Equal(t, game.StateWon, g.State(), answer)

		for _, rec := range g.Session().History() {
			assert.True(t, game.IsPossibleWord(answer, rec))
		}
	}
}

func TestStrategy_PrunesAndResets(t *testing.T) {
	d := loadDict(t)
	ctx := context.Background()
	s := New(d.AnswerWords(), "")

	g, err := game.NewGame(d, 6, game.FixedPicker("rocks"))
	require.NoError(t, err)

	first, err := s.NextGuess(ctx, g.Session())
	require.NoError(t, err)
	assert.Equal(t, d.AnswerWords()[0], first, "without an opener the first candidate is guessed")

	_, _, err = g.Guess("sores")
	require.NoError(t, err)
	_, err = s.NextGuess(ctx, g.Session())
	require.NoError(t, err)

	remaining := s.Remaining()
	assert.Contains(t, remaining, "rocks")
	assert.Less(t, len(remaining), len(d.AnswerWords()))
	for _, w := range remaining {
		assert.True(t, game.IsPossibleWord(w, g.Session().History()[0]), w)
	}

	require.NoError(t, g.Reset())
	_, err = s.NextGuess(ctx, g.Session())
	require.NoError(t, err)
	assert.Len(t, s.Remaining(), len(d.AnswerWords()))
}

func TestStrategy_NoCandidates(t *testing.T) {
	d := loadDict(t)
	s := New([]string{"coast"}, "")

	g, err := game.NewGame(d, 6, game.FixedPicker("rocks"))
	require.NoError(t, err)
	_, _, err = g.Guess("coast")
	require.NoError(t, err)

	_, err = s.NextGuess(context.Background(), g.Session())
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestStrategy_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New([]string{"coast"}, "").NextGuess(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
