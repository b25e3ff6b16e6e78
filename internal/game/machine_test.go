package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame_Validation(t *testing.T) {
	d := testDict(t)

	_, err := NewGame(d, 0, nil)
	assert.Error(t, err)

	_, err = NewGame(d, 6, FixedPicker("tacos"))
	assert.ErrorIs(t, err, ErrIllegalAnswer)

	g, err := NewGame(d, 6, nil)
	require.NoError(t, err)
	assert.Equal(t, StateActive, g.State())
	assert.True(t, d.IsLegalAnswer(g.Session().Answer()))
	assert.NotEmpty(t, g.ID)
}

func TestGame_Win(t *testing.T) {
	g, err := NewGame(testDict(t), 6, FixedPicker("coast"))
	require.NoError(t, err)

	_, st, err := g.Guess("tacos")
	require.NoError(t, err)
	assert.Equal(t, StateActive, st)
	assert.Equal(t, 5, g.Remaining())

	_, err = g.Answer()
	assert.Error(t, err, "answer stays hidden during play")

	rec, st, err := g.Guess("coast")
	require.NoError(t, err)
	assert.True(t, rec.AllMatch())
	assert.Equal(t, StateWon, st)

	_, st, err = g.Guess("coast")
	assert.ErrorIs(t, err, ErrGameFinished)
	assert.Equal(t, StateWon, st)

	ans, err := g.Answer()
	require.NoError(t, err)
	assert.Equal(t, "coast", ans)
}

func TestGame_Loss(t *testing.T) {
	g, err := NewGame(testDict(t), 3, FixedPicker("coast"))
	require.NoError(t, err)

	for i, w := range []string{"hurry", "adapt", "money"} {
		_, st, err := g.Guess(w)
		require.NoError(t, err)
		if i < 2 {
			assert.Equal(t, StateActive, st)
		} else {
			assert.Equal(t, StateLost, st)
		}
	}
	_, _, err = g.Guess("coast")
	assert.ErrorIs(t, err, ErrGameFinished)
	assert.Len(t, g.Session().History(), 3)
}

func TestGame_WinOnLastGuess(t *testing.T) {
	g, err := NewGame(testDict(t), 2, FixedPicker("coast"))
	require.NoError(t, err)

	_, _, err = g.Guess("hurry")
	require.NoError(t, err)
	_, st, err := g.Guess("coast")
	require.NoError(t, err)
	assert.Equal(t, StateWon, st)
}

func TestGame_IllegalGuessDoesNotUseTurn(t *testing.T) {
	g, err := NewGame(testDict(t), 1, FixedPicker("coast"))
	require.NoError(t, err)

	_, st, err := g.Guess("qzxjv")
	assert.ErrorIs(t, err, ErrIllegalGuess)
	assert.Equal(t, StateActive, st)
	assert.Equal(t, 1, g.Remaining())
}

func TestGame_Reset(t *testing.T) {
	g, err := NewGame(testDict(t), 6, sequencePicker("coast", "rocks"))
	require.NoError(t, err)
	firstID := g.ID

	_, st, err := g.Guess("coast")
	require.NoError(t, err)
	require.Equal(t, StateWon, st)
	g.AddLetter('a')

	require.NoError(t, g.Reset())
	assert.Equal(t, StateActive, g.State())
	assert.Empty(t, g.Session().History())
	assert.NotEqual(t, firstID, g.ID)
	assert.Equal(t, "rocks", g.Session().Answer())
	assert.Equal(t, "", g.Row())
}

func TestGame_RowEditing(t *testing.T) {
	g, err := NewGame(testDict(t), 6, FixedPicker("rocks"))
	require.NoError(t, err)

	for _, c := range []byte("sorex") {
		g.AddLetter(c)
	}
	assert.Equal(t, "sorex", g.Row())
	assert.False(t, g.AddLetter('s'), "row is full")
	assert.False(t, g.AddLetter('1'))

	_, _, err = g.Submit()
	assert.ErrorIs(t, err, ErrIllegalGuess)
	assert.Equal(t, "sorex", g.Row(), "rejected row is kept for editing")

	assert.True(t, g.RemoveLetter())
	assert.True(t, g.AddLetter('s'))
	rec, st, err := g.Submit()
	require.NoError(t, err)
	assert.Equal(t, "sores", rec.WordString())
	assert.Equal(t, StateActive, st)
	assert.Equal(t, "", g.Row())
	assert.False(t, g.RemoveLetter())

	g.AddLetter('r')
	_, _, err = g.Submit()
	assert.ErrorIs(t, err, ErrLengthMismatch)
}
