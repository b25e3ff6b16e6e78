package cli

import (
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/robalobadob/wordle/apps/wordle-core/internal/game"
)

var tileColors = map[game.Verdict]string{
	game.Correct:   "#6aaa64",
	game.Misplaced: "#c9b458",
	game.Wrong:     "#787c7e",
}

// renderRecord writes one scored row: colored tiles (plain on non-terminals)
// followed by the word and its g/y/- pattern.
func renderRecord(w io.Writer, rec game.Record) {
	out := termenv.NewOutput(w)
	var b strings.Builder
	for _, t := range rec.Tiles() {
		b.WriteString(out.String(" " + strings.ToUpper(string(t.Letter)) + " ").
			Foreground(out.Color("#ffffff")).
			Background(out.Color(tileColors[t.Verdict])).
			String())
	}
	b.WriteString("  ")
	b.WriteString(rec.WordString())
	b.WriteString(" ")
	b.WriteString(rec.Pattern())
	b.WriteString("\n")
	_, _ = io.WriteString(w, b.String())
}

// renderKeyboard writes the letters seen so far grouped by their best verdict.
func renderKeyboard(w io.Writer, records []game.Record) {
	states := game.LetterStates(records)
	groups := map[game.Verdict][]byte{}
	for c := byte('a'); c <= 'z'; c++ {
		if v, ok := states[c]; ok {
			groups[v] = append(groups[v], c)
		}
	}
	var b strings.Builder
	for _, v := range []game.Verdict{game.Correct, game.Misplaced, game.Wrong} {
		if len(groups[v]) == 0 {
			continue
		}
		b.WriteString(v.String())
		b.WriteString(": ")
		b.Write(groups[v])
		b.WriteString("  ")
	}
	if b.Len() > 0 {
		_, _ = io.WriteString(w, strings.TrimRight(b.String(), " ")+"\n")
	}
}
