package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession_IllegalAnswer(t *testing.T) {
	d := testDict(t)

	_, err := NewSession("tacos", d)
	assert.ErrorIs(t, err, ErrIllegalAnswer, "guess-only words cannot be answers")

	_, err = NewSession("zzzzz", d)
	assert.ErrorIs(t, err, ErrIllegalAnswer)

	for _, w := range d.AnswerWords() {
		_, err := NewSession(w, d)
		assert.NoError(t, err, w)
	}
}

func TestSession_MakeGuess(t *testing.T) {
	s, err := NewSession("rocks", testDict(t))
	require.NoError(t, err)
	assert.False(t, s.IsSolved())

	rec, err := s.MakeGuess("sores")
	require.NoError(t, err)
	assert.Equal(t, []Verdict{W, C, M, W, C}, rec.Verdicts())
	assert.False(t, s.IsSolved())

	rec, err = s.MakeGuess("rocks")
	require.NoError(t, err)
	assert.True(t, rec.AllMatch())
	assert.True(t, s.IsSolved())

	history := s.History()
	require.Len(t, history, 2)
	assert.Equal(t, "sores", history[0].WordString())
	assert.Equal(t, "rocks", history[1].WordString())
	assert.Equal(t, 2, s.Guesses())
}

func TestSession_IllegalGuessLeavesStateUnchanged(t *testing.T) {
	s, err := NewSession("arise", testDict(t))
	require.NoError(t, err)

	_, err = s.MakeGuess("tacos")
	require.NoError(t, err)

	for _, bad := range []string{"qzxjv", "ARISE", "aris", "arises", ""} {
		_, err := s.MakeGuess(bad)
		assert.ErrorIs(t, err, ErrIllegalGuess, bad)
	}
	assert.Len(t, s.History(), 1)
	assert.False(t, s.IsSolved())
}

func TestSession_HistoryIsCopy(t *testing.T) {
	s, err := NewSession("arise", testDict(t))
	require.NoError(t, err)
	_, err = s.MakeGuess("arise")
	require.NoError(t, err)

	h := s.History()
	h[0] = Record{}
	assert.True(t, s.IsSolved())
}
