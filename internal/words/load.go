// internal/words/load.go
//
// Resolves the configured word-list sources into a Dictionary.
//
// Resolution order (Load):
//   1. DBPath set            → answers and guesses from the sqlite word store.
//   2. both files set        → answers from AnswersFile, guesses from AllowedFile.
//   3. only AllowedFile set  → that file is used for both lists.
//   4. nothing set           → embedded defaults from the assets package.
//
// File lines are trimmed and lowercased; blank and '#' lines are ignored.
// Lines of the wrong length or with non a–z characters are skipped and logged.

package words

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/wordle-core/assets"
	"github.com/robalobadob/wordle/apps/wordle-core/internal/wordsdb"
)

// Source describes where word lists come from.
type Source struct {
	Length      int
	AnswersFile string
	AllowedFile string
	DBPath      string
}

// Load reads both lists from src and builds a Dictionary.
func Load(ctx context.Context, src Source) (*Dictionary, error) {
	var ansList, allowList []string
	var err error

	switch {
	case src.DBPath != "":
		ansList, allowList, err = loadDB(ctx, src.DBPath)

	case src.AnswersFile != "" && src.AllowedFile != "":
		ansList, err = readWordFile(src.AnswersFile, src.Length)
		if err == nil {
			allowList, err = readWordFile(src.AllowedFile, src.Length)
		}

	case src.AnswersFile == "" && src.AllowedFile != "":
		allowList, err = readWordFile(src.AllowedFile, src.Length)
		ansList = allowList

	case src.AnswersFile != "":
		return nil, errors.New("words: answers file set without allowed file")

	default:
		ansList, allowList, err = loadEmbedded(src.Length)
	}
	if err != nil {
		return nil, err
	}

	d, err := New(src.Length, ansList, allowList)
	if err != nil {
		return nil, err
	}
	a, g := d.Stats()
	log.Debug().Int("answers", a).Int("guesses", g).Int("length", d.WordLength()).Msg("word lists loaded")
	return d, nil
}

func loadDB(ctx context.Context, path string) ([]string, []string, error) {
	st, err := wordsdb.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer st.Close()

	ans, err := st.Load(ctx, wordsdb.KindAnswer)
	if err != nil {
		return nil, nil, err
	}
	guesses, err := st.Load(ctx, wordsdb.KindGuess)
	if err != nil {
		return nil, nil, err
	}
	return ans, guesses, nil
}

func loadEmbedded(length int) ([]string, []string, error) {
	ans, err := readEmbedded(assets.Answers, assets.AnswersFile, length)
	if err != nil {
		return nil, nil, err
	}
	allow, err := readEmbedded(assets.Allowed, assets.AllowedFile, length)
	if err != nil {
		return nil, nil, err
	}
	return ans, allow, nil
}

func readEmbedded(open func() (io.ReadCloser, error), name string, length int) ([]string, error) {
	f, err := open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readList(f, name, length)
}

// readWordFile loads one word per line from a file on disk.
func readWordFile(path string, length int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()
	return readList(f, path, length)
}

// readList keeps the valid words of r, preserving order.
func readList(r io.Reader, name string, length int) ([]string, error) {
	var out []string
	skipped := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if len(w) != length || !IsAlpha(w) {
			skipped++
			continue
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read %s: %w", name, err)
	}
	if skipped > 0 {
		log.Warn().Str("list", name).Int("skipped", skipped).Int("length", length).Msg("skipped invalid words")
	}
	return out, nil
}
