package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/wordle-core/internal/game"
	"github.com/robalobadob/wordle/apps/wordle-core/internal/share"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--log-level", "disabled"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestScoreCommand(t *testing.T) {
	out, err := run(t, "", "score", "rocks", "sores")
	require.NoError(t, err)
	assert.Contains(t, out, "sores -gy-g")
}

func TestScoreCommand_JSON(t *testing.T) {
	out, err := run(t, "", "score", "mommy", "money", "--json")
	require.NoError(t, err)

	var res scoreResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, []game.Verdict{game.Correct, game.Correct, game.Wrong, game.Wrong, game.Correct}, res.Verdicts)
	assert.Equal(t, "gg--g", res.Pattern)
	assert.False(t, res.Solved)
}

func TestScoreCommand_Errors(t *testing.T) {
	_, err := run(t, "", "score", "rocks", "qzxjv")
	assert.ErrorIs(t, err, game.ErrIllegalGuess)

	_, err = run(t, "", "score", "tacos", "rocks")
	assert.ErrorIs(t, err, game.ErrIllegalAnswer)

	_, err = run(t, "", "score", "rocks")
	assert.Error(t, err)
}

func TestCandidatesCommand(t *testing.T) {
	out, err := run(t, "", "candidates", "money=gg--g")
	require.NoError(t, err)
	assert.Contains(t, out, "2 candidates")
	assert.Contains(t, out, "mommy")
	assert.Contains(t, out, "mossy")
	assert.NotContains(t, out, "money\n")

	out, err = run(t, "", "candidates", "--limit", "1", "arise=-----")
	require.NoError(t, err)
	assert.Contains(t, out, "more")

	_, err = run(t, "", "candidates", "money=gg-?g")
	assert.ErrorIs(t, err, game.ErrInvalidVerdict)

	_, err = run(t, "", "candidates", "money=gg-")
	assert.ErrorIs(t, err, game.ErrLengthMismatch)

	_, err = run(t, "", "candidates", "money")
	assert.Error(t, err)
}

func TestPlayCommand_Win(t *testing.T) {
	out, err := run(t, "qqqqq\ntacos\ncoast\n", "play", "--answer", "coast")
	require.NoError(t, err)
	assert.Contains(t, out, "Guess the 5-letter word in 6 tries.")
	assert.Contains(t, out, "not in word list")
	assert.Contains(t, out, "tacos yyyyy")
	assert.Contains(t, out, "Solved in 2/6.")
}

func TestPlayCommand_Loss(t *testing.T) {
	t.Setenv("MAX_GUESSES", "2")
	out, err := run(t, "hurry\nadapt\n", "play", "--answer", "coast")
	require.NoError(t, err)
	assert.Contains(t, out, "Out of guesses. The word was coast.")
}

func TestPlayCommand_EndOfInput(t *testing.T) {
	out, err := run(t, "hurry\n", "play", "--answer", "coast")
	require.NoError(t, err)
	assert.Contains(t, out, "No more input.")
}

func TestPlayCommand_Solver(t *testing.T) {
	t.Setenv("MAX_GUESSES", "50")
	out, err := run(t, "", "play", "--solver", "--opener", "arise", "--answer", "rocks")
	require.NoError(t, err)
	assert.Contains(t, out, "arise ")
	assert.Contains(t, out, "rocks ggggg")
	assert.Contains(t, out, "Solved in")

	_, err = run(t, "", "play", "--solver", "--opener", "qzxjv")
	assert.ErrorIs(t, err, game.ErrIllegalGuess)
}

func TestPlayCommand_Daily(t *testing.T) {
	t.Setenv("MAX_GUESSES", "50")
	out, err := run(t, "", "play", "--daily", "--solver")
	require.NoError(t, err)
	assert.Contains(t, out, "Solved in")
}

func TestPlayCommand_Flags(t *testing.T) {
	_, err := run(t, "", "play", "--answer", "coast", "--daily")
	assert.Error(t, err)

	_, err = run(t, "", "play", "--answer", "tacos")
	assert.ErrorIs(t, err, game.ErrIllegalAnswer)
}

func TestSharePlayRoundTrip(t *testing.T) {
	tok, err := run(t, "", "share", "beast")
	require.NoError(t, err)
	tok = strings.TrimSpace(tok)
	require.NotEmpty(t, tok)

	out, err := run(t, "beast\n", "play", "--puzzle", tok)
	require.NoError(t, err)
	assert.Contains(t, out, "Solved in 1/6.")

	_, err = run(t, "", "play", "--puzzle", tok+"x")
	assert.ErrorIs(t, err, share.ErrInvalidToken)

	_, err = run(t, "", "share", "tacos")
	assert.ErrorIs(t, err, share.ErrWrongPuzzle)
}

func TestWordsCommands(t *testing.T) {
	stats, err := run(t, "", "words", "stats")
	require.NoError(t, err)
	assert.Contains(t, stats, "length=5")

	db := filepath.Join(t.TempDir(), "words.db")
	out, err := run(t, "", "words", "import", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "imported")

	// Importing again adds nothing.
	out, err = run(t, "", "words", "import", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 0 answers and 0 guesses")

	t.Setenv("WORDS_DB", db)
	fromDB, err := run(t, "", "words", "stats")
	require.NoError(t, err)
	assert.Equal(t, stats, fromDB)

	_, err = run(t, "", "words", "import")
	assert.Error(t, err, "--db is required")
}
