// Package player connects guess sources (a human at a terminal, or the
// solver) to a game round.
package player

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/wordle/apps/wordle-core/internal/game"
)

// ErrReset is returned by a Guesser that wants the round restarted.
var ErrReset = errors.New("player: reset requested")

// ResetCommand is the input line that requests a reset.
const ResetCommand = "1"

// Guesser produces the next guess for a session.
type Guesser interface {
	NextGuess(ctx context.Context, s *game.Session) (string, error)
}

// HumanInput reads one guess per line. Input is trimmed and lowercased;
// blank lines are skipped. End of input is reported as io.EOF.
type HumanInput struct {
	sc     *bufio.Scanner
	prompt io.Writer // nil disables prompts
}

// NewHumanInput reads guesses from r, writing prompts to prompt when non-nil.
func NewHumanInput(r io.Reader, prompt io.Writer) *HumanInput {
	return &HumanInput{sc: bufio.NewScanner(r), prompt: prompt}
}

func (h *HumanInput) NextGuess(ctx context.Context, s *game.Session) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if h.prompt != nil {
			fmt.Fprintf(h.prompt, "guess %d> ", s.Guesses()+1)
		}
		if !h.sc.Scan() {
			if err := h.sc.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		line := strings.ToLower(strings.TrimSpace(h.sc.Text()))
		switch line {
		case "":
			continue
		case ResetCommand:
			return "", ErrReset
		}
		return line, nil
	}
}
