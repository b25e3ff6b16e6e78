// internal/share/share.go
//
// Signed puzzle tokens so a player can hand a specific answer to someone else
// without spelling it out. A token is an HS256 JWT carrying the answer's
// index in the dictionary, the word length and the guess limit.

package share

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/robalobadob/wordle/apps/wordle-core/internal/words"
)

var (
	ErrInvalidToken = errors.New("share: invalid puzzle token")
	ErrWrongPuzzle  = errors.New("share: puzzle does not fit this dictionary")
)

const issuer = "wordle-core"

// Puzzle is the content of a shared token.
type Puzzle struct {
	AnswerIndex int
	WordLength  int
	MaxGuesses  int
}

type puzzleClaims struct {
	Index      int `json:"idx"`
	Length     int `json:"len"`
	MaxGuesses int `json:"max"`
	jwt.RegisteredClaims
}

// NewPuzzle builds a Puzzle for answer, which must be a dictionary answer.
func NewPuzzle(d *words.Dictionary, answer string, maxGuesses int) (Puzzle, error) {
	idx := d.IndexOfAnswer(answer)
	if idx < 0 {
		return Puzzle{}, fmt.Errorf("%w: %q is not an answer", ErrWrongPuzzle, answer)
	}
	return Puzzle{AnswerIndex: idx, WordLength: d.WordLength(), MaxGuesses: maxGuesses}, nil
}

// Answer resolves the puzzle against d.
func (p Puzzle) Answer(d *words.Dictionary) (string, error) {
	if p.WordLength != d.WordLength() {
		return "", fmt.Errorf("%w: token has %d-letter words, dictionary has %d", ErrWrongPuzzle, p.WordLength, d.WordLength())
	}
	w, ok := d.AnswerAt(p.AnswerIndex)
	if !ok {
		return "", fmt.Errorf("%w: answer index %d out of range", ErrWrongPuzzle, p.AnswerIndex)
	}
	return w, nil
}

// Issue signs p. A zero ttl issues a token that never expires.
func Issue(secret string, ttl time.Duration, p Puzzle) (string, error) {
	now := time.Now()
	c := puzzleClaims{
		Index:      p.AnswerIndex,
		Length:     p.WordLength,
		MaxGuesses: p.MaxGuesses,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if ttl > 0 {
		c.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
}

// Parse verifies token and returns its puzzle.
func Parse(secret, token string) (Puzzle, error) {
	var c puzzleClaims
	t, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil || !t.Valid {
		return Puzzle{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return Puzzle{AnswerIndex: c.Index, WordLength: c.Length, MaxGuesses: c.MaxGuesses}, nil
}
